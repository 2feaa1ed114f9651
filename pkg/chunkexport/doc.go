// Package chunkexport serializes a generated chunk to the wire and
// debug formats named in spec §6: a plain ASCII grid for clients, a
// JSON envelope carrying both the grid and debug metadata, and an SVG
// rendering for visual inspection during development.
package chunkexport
