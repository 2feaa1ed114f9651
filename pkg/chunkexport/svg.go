package chunkexport

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/przecze/rooms-of-roaming/pkg/chunkgen"
	"github.com/przecze/rooms-of-roaming/pkg/chunkgrid"
)

// SVGOptions configures a chunk's debug SVG rendering.
type SVGOptions struct {
	CellSize    int    // Pixel size of one grid cell (default: 12)
	Margin      int    // Canvas margin in pixels (default: 20)
	ShowTablets bool   // Draw a marker on every tablet cell
	Title       string // Optional title drawn above the grid
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:    12,
		Margin:      20,
		ShowTablets: true,
	}
}

// SVG renders a chunk's grid as an SVG image: walls as dark squares,
// floor as light squares, tablets as a marked cell, matching the
// debug-visualization role spec §6.1 assigns to exports beyond the
// plain wire format.
func SVG(chunk *chunkgen.Chunk, opts SVGOptions) ([]byte, error) {
	if chunk == nil || chunk.Grid == nil {
		return nil, fmt.Errorf("chunkexport: chunk must have a grid")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 12
	}
	if opts.Margin < 0 {
		opts.Margin = 20
	}

	size := chunk.Grid.Size
	headerHeight := 0
	if opts.Title != "" {
		headerHeight = 24
	}
	width := size*opts.CellSize + 2*opts.Margin
	height := size*opts.CellSize + 2*opts.Margin + headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(opts.Margin, opts.Margin/2+12, opts.Title, "fill:#e2e8f0;font-size:14px;font-family:monospace")
	}

	top := opts.Margin + headerHeight
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell := chunk.Grid.Get(x, y)
			px := opts.Margin + x*opts.CellSize
			py := top + y*opts.CellSize
			canvas.Rect(px, py, opts.CellSize, opts.CellSize, cellStyle(cell))
		}
	}

	if opts.ShowTablets {
		for _, tb := range chunk.Tablets {
			cx := opts.Margin + tb.X*opts.CellSize + opts.CellSize/2
			cy := top + tb.Y*opts.CellSize + opts.CellSize/2
			canvas.Circle(cx, cy, opts.CellSize/3, "fill:#f6e05e;stroke:#744210")
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

func cellStyle(cell chunkgrid.Cell) string {
	switch cell {
	case chunkgrid.Floor:
		return "fill:#4a5568"
	case chunkgrid.Tablet:
		return "fill:#744210"
	default:
		return "fill:#0d0d15"
	}
}

// SaveSVGToFile renders a chunk's SVG export and writes it to path.
func SaveSVGToFile(chunk *chunkgen.Chunk, path string, opts SVGOptions) error {
	data, err := SVG(chunk, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
