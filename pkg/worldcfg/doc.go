// Package worldcfg specifies the tunable parameters of the chunked world
// generator: world seed, chunk size, room/opening ranges, and cache
// sizing. It supports YAML parsing and validates every field before the
// generator is allowed to run.
package worldcfg
