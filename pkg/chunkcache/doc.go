// Package chunkcache provides a concurrent, capacity-bounded LRU memo
// keyed by an arbitrary comparable key, with single-flight build
// coalescing: concurrent requests for the same key result in exactly
// one builder invocation, and no lock is held while the builder runs
// (spec §4.4/§5). It knows nothing about chunks or the generator —
// that keeps it free of any import cycle with pkg/chunkgen, which
// constructs one of these over its own Chunk type.
package chunkcache
