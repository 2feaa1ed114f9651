package chunkexport

import (
	"fmt"
	"strings"

	"github.com/przecze/rooms-of-roaming/pkg/chunkgen"
)

// Text renders a chunk as the spec §6.1 wire format: ChunkSize lines
// of ChunkSize glyphs, top row first, joined by newlines with no
// trailing newline.
func Text(chunk *chunkgen.Chunk) string {
	return strings.Join(chunk.Rows(), "\n")
}

// DebugText renders a chunk's coordinates, then its grid, then a
// human-readable block of debug metadata: wavelengths, tablet positions
// and per-phase timings (spec §6.1 "debug view"). It is meant for terminal
// inspection, not for machine consumption — use JSON for that.
func DebugText(chunk *chunkgen.Chunk) string {
	var b strings.Builder

	fmt.Fprintf(&b, "chunk (%d, %d)\n", chunk.CX, chunk.CY)
	b.WriteString(Text(chunk))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "wavelengths: alpha=%.4f beta=%.4f spatialVariation=%.4f\n",
		chunk.Wavelengths.Alpha, chunk.Wavelengths.Beta, chunk.Wavelengths.SpatialVariation)
	for _, d := range chunk.Wavelengths.Descriptions {
		fmt.Fprintf(&b, "  %s\n", d)
	}

	fmt.Fprintf(&b, "tablets (%d):\n", len(chunk.Tablets))
	for _, tb := range chunk.Tablets {
		fmt.Fprintf(&b, "  (%d, %d)\n", tb.X, tb.Y)
	}

	t := chunk.Timings
	fmt.Fprintf(&b, "timings (ms): setup=%d init=%d boundary_corridors=%d room_generation=%d "+
		"room_floors=%d room_hallways=%d boundary_connections=%d total=%d total_with_overhead=%d\n",
		t.SetupMS, t.InitMS, t.BoundaryCorridorsMS, t.RoomGenerationMS,
		t.RoomFloorsMS, t.RoomHallwaysMS, t.BoundaryConnectionsMS, t.TotalMS, t.TotalWithOverheadMS)

	return b.String()
}
