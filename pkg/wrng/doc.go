// Package wrng provides deterministic, coordinate-addressable pseudo-random
// streams for the chunked world generator. Every stream is derived from a
// master world seed plus a tag and a sequence of integer coordinates, so
// two streams built from equal inputs always produce equal output.
package wrng
