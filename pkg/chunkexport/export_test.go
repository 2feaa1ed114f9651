package chunkexport

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/przecze/rooms-of-roaming/pkg/chunkgen"
	"github.com/przecze/rooms-of-roaming/pkg/worldcfg"
)

func generateTestChunk(t *testing.T) *chunkgen.Chunk {
	t.Helper()
	cfg := worldcfg.Default()
	chunk, err := chunkgen.GenerateAt(cfg, 4242, 1, -1)
	if err != nil {
		t.Fatalf("GenerateAt: %v", err)
	}
	return chunk
}

func TestTextHasChunkSizeRowsOfChunkSizeGlyphs(t *testing.T) {
	chunk := generateTestChunk(t)
	out := Text(chunk)
	lines := strings.Split(out, "\n")
	size := chunk.Grid.Size

	if len(lines) != size {
		t.Fatalf("got %d rows, want %d", len(lines), size)
	}
	for i, line := range lines {
		if len([]rune(line)) != size {
			t.Fatalf("row %d has %d glyphs, want %d", i, len([]rune(line)), size)
		}
	}
}

func TestDebugTextIncludesCoordinatesAndTimings(t *testing.T) {
	chunk := generateTestChunk(t)
	out := DebugText(chunk)

	if !strings.Contains(out, "chunk (1, -1)") {
		t.Fatalf("debug text missing chunk coordinates:\n%s", out)
	}
	if !strings.Contains(out, "timings (ms)") {
		t.Fatalf("debug text missing timings section:\n%s", out)
	}
}

func TestJSONRoundTripsGridShape(t *testing.T) {
	chunk := generateTestChunk(t)
	data, err := JSON(chunk)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if env.CX != chunk.CX || env.CY != chunk.CY {
		t.Fatalf("envelope coordinates = (%d,%d), want (%d,%d)", env.CX, env.CY, chunk.CX, chunk.CY)
	}
	if len(env.Rows) != len(chunk.Rows()) {
		t.Fatalf("envelope has %d rows, want %d", len(env.Rows), len(chunk.Rows()))
	}
}

func TestSVGProducesNonEmptyDocument(t *testing.T) {
	chunk := generateTestChunk(t)
	data, err := SVG(chunk, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Fatalf("SVG output does not look like an SVG document:\n%s", data[:min(200, len(data))])
	}
}
