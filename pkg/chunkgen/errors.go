package chunkgen

import "errors"

// ErrConfigurationInvalid is returned when a Config fails validation.
// It is fatal. NewFacade does not validate its Config, so the error is
// returned by GenerateAt, and therefore by every Facade.GetChunk call,
// when the Config is invalid.
var ErrConfigurationInvalid = errors.New("chunkgen: configuration invalid")

// ErrInternalConsistencyViolation is returned when a generated chunk
// fails its post-generation self-check: a boundary disagreement or an
// unreachable opening. It should be unreachable in a correct
// implementation; a chunk that triggers it is never cached.
var ErrInternalConsistencyViolation = errors.New("chunkgen: internal consistency violation")
