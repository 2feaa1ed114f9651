// Package chunkgrid provides the flat, row-major cell grid used by the
// chunk generator plus the carving primitives (fill, line, flood fill)
// it rasterizes rooms and corridors with.
package chunkgrid
