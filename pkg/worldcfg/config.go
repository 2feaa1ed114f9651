package worldcfg

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure in this package.
// Generator-facing code treats this as the core's ConfigurationInvalid
// error kind: fatal, reported at initialization, never retried.
var ErrInvalid = errors.New("worldcfg: invalid configuration")

// Config specifies every tunable parameter of the chunked world
// generator (spec §6.3). It supports YAML parsing and full validation.
type Config struct {
	// WorldSeed is the 64-bit master seed for the entire world.
	WorldSeed uint64 `yaml:"worldSeed" json:"worldSeed"`

	// ChunkSize is S, the side length of a chunk in cells.
	ChunkSize int `yaml:"chunkSize" json:"chunkSize"`

	// RoomsMin/RoomsMax bound the room count drawn per chunk.
	RoomsMin int `yaml:"roomsMin" json:"roomsMin"`
	RoomsMax int `yaml:"roomsMax" json:"roomsMax"`

	// RoomWidthMin/RoomWidthMax bound a room's width.
	RoomWidthMin int `yaml:"roomWMin" json:"roomWMin"`
	RoomWidthMax int `yaml:"roomWMax" json:"roomWMax"`

	// RoomHeightMin/RoomHeightMax bound a room's height.
	RoomHeightMin int `yaml:"roomHMin" json:"roomHMin"`
	RoomHeightMax int `yaml:"roomHMax" json:"roomHMax"`

	// OpeningsMin/OpeningsMax bound how many corridor openings a single
	// edge profile carries.
	OpeningsMin int `yaml:"openingsMin" json:"openingsMin"`
	OpeningsMax int `yaml:"openingsMax" json:"openingsMax"`

	// PlacementAttempts is T, the room-placement retry budget per chunk.
	PlacementAttempts int `yaml:"placementAttempts" json:"placementAttempts"`

	// TabletProb is the per-room chance of a tablet being placed.
	TabletProb float64 `yaml:"tabletProb" json:"tabletProb"`

	// TabletsMax caps the number of tablets placed per chunk.
	TabletsMax int `yaml:"tabletsMax" json:"tabletsMax"`

	// CacheCapacity is N_cache, the chunk cache's entry bound.
	CacheCapacity int `yaml:"cacheCapacity" json:"cacheCapacity"`
}

// Default returns the configuration with every default from spec §6.3.
func Default() *Config {
	return &Config{
		WorldSeed:         0xC0FFEE,
		ChunkSize:         48,
		RoomsMin:          3,
		RoomsMax:          8,
		RoomWidthMin:      4,
		RoomWidthMax:      10,
		RoomHeightMin:     4,
		RoomHeightMax:     10,
		OpeningsMin:       1,
		OpeningsMax:       3,
		PlacementAttempts: 40,
		TabletProb:        0.15,
		TabletsMax:        3,
		CacheCapacity:     4096,
	}
}

// LoadConfig reads and validates a YAML configuration file, applying
// Default() for any field that was left at its YAML zero value by using
// Default() as the decode target.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice,
// starting from Default() so a partial document still yields a usable
// configuration. Useful for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every configuration constraint named in spec §6.3 and
// §7 (ConfigurationInvalid). Returns the first failure, wrapped in
// ErrInvalid.
func (c *Config) Validate() error {
	if c.ChunkSize < 16 {
		return fmt.Errorf("%w: chunkSize must be >= 16, got %d", ErrInvalid, c.ChunkSize)
	}
	if c.RoomsMin < 0 || c.RoomsMax < 0 {
		return fmt.Errorf("%w: roomsMin/roomsMax must be non-negative", ErrInvalid)
	}
	if c.RoomsMin > c.RoomsMax {
		return fmt.Errorf("%w: roomsMin (%d) > roomsMax (%d)", ErrInvalid, c.RoomsMin, c.RoomsMax)
	}
	if c.RoomWidthMin <= 0 || c.RoomWidthMin > c.RoomWidthMax {
		return fmt.Errorf("%w: invalid room width range [%d,%d]", ErrInvalid, c.RoomWidthMin, c.RoomWidthMax)
	}
	if c.RoomHeightMin <= 0 || c.RoomHeightMin > c.RoomHeightMax {
		return fmt.Errorf("%w: invalid room height range [%d,%d]", ErrInvalid, c.RoomHeightMin, c.RoomHeightMax)
	}
	if c.RoomWidthMax > c.ChunkSize-4 || c.RoomHeightMax > c.ChunkSize-4 {
		return fmt.Errorf("%w: room dimensions too large for chunkSize %d", ErrInvalid, c.ChunkSize)
	}
	if c.OpeningsMin <= 0 || c.OpeningsMin > c.OpeningsMax {
		return fmt.Errorf("%w: invalid openings range [%d,%d]", ErrInvalid, c.OpeningsMin, c.OpeningsMax)
	}
	// Openings must fit in the interior sample domain [2, S-3] with a
	// minimum spacing of 2 between them (spec §4.2 step 4).
	interior := c.ChunkSize - 4
	if c.OpeningsMax*2-1 > interior {
		return fmt.Errorf("%w: openingsMax %d cannot fit in edge interior of length %d with spacing", ErrInvalid, c.OpeningsMax, interior)
	}
	if c.PlacementAttempts <= 0 {
		return fmt.Errorf("%w: placementAttempts must be positive", ErrInvalid)
	}
	if c.TabletProb < 0 || c.TabletProb > 1 {
		return fmt.Errorf("%w: tabletProb must be in [0,1], got %f", ErrInvalid, c.TabletProb)
	}
	if c.TabletsMax < 0 {
		return fmt.Errorf("%w: tabletsMax must be non-negative", ErrInvalid)
	}
	if c.CacheCapacity <= 0 {
		return fmt.Errorf("%w: cacheCapacity must be positive, got %d", ErrInvalid, c.CacheCapacity)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration. It is used
// only to version the chunk cache's keyspace (see the Open Question
// resolution in SPEC_FULL.md §8) — it never feeds chunk generation's
// RNG, since the purity contract (I1) fixes generation to depend on
// (world seed, cx, cy) alone for a given configuration.
func (c *Config) Hash() uint64 {
	data, err := c.ToYAML()
	if err != nil {
		data = []byte(fmt.Sprintf("%+v", c))
	}
	sum := sha256.Sum256(data)
	return binary.BigEndian.Uint64(sum[:8])
}
