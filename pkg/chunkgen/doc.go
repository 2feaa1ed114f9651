// Package chunkgen is the core of the chunked world generator: a
// Boundary Oracle that hands out deterministic edge profiles, a Chunk
// Generator that carves a full chunk consistent with its four
// boundaries, and a Facade that ties generation to a cache. Every
// exported operation is a pure function of (world seed, coordinates)
// for a fixed configuration (I1).
package chunkgen
