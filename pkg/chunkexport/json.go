package chunkexport

import (
	"encoding/json"
	"os"

	"github.com/przecze/rooms-of-roaming/pkg/chunkgen"
)

// Envelope is the JSON shape of an exported chunk: the wire grid plus
// every field a debug client might want, per spec §6.1.
type Envelope struct {
	CX          int                   `json:"cx"`
	CY          int                   `json:"cy"`
	Rows        []string              `json:"rows"`
	Tablets     []chunkgen.TabletPos  `json:"tablets"`
	Wavelengths chunkgen.Wavelengths  `json:"wavelengths"`
	Timings     chunkgen.ChunkTimings `json:"timings"`
}

// ToEnvelope adapts a Chunk into its JSON-serializable shape.
func ToEnvelope(chunk *chunkgen.Chunk) Envelope {
	return Envelope{
		CX:          chunk.CX,
		CY:          chunk.CY,
		Rows:        chunk.Rows(),
		Tablets:     chunk.Tablets,
		Wavelengths: chunk.Wavelengths,
		Timings:     chunk.Timings,
	}
}

// JSON serializes a chunk to indented JSON.
func JSON(chunk *chunkgen.Chunk) ([]byte, error) {
	return json.MarshalIndent(ToEnvelope(chunk), "", "  ")
}

// JSONCompact serializes a chunk to compact JSON.
func JSONCompact(chunk *chunkgen.Chunk) ([]byte, error) {
	return json.Marshal(ToEnvelope(chunk))
}

// SaveJSONToFile writes a chunk's indented JSON export to path.
func SaveJSONToFile(chunk *chunkgen.Chunk, path string) error {
	data, err := JSON(chunk)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
