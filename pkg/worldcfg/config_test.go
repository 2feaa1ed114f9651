package worldcfg

import "testing"

func TestLoadConfigFromBytes_ValidConfig(t *testing.T) {
	yaml := `
worldSeed: 12345
chunkSize: 48
roomsMin: 3
roomsMax: 8
roomWMin: 4
roomWMax: 10
roomHMin: 4
roomHMax: 10
openingsMin: 1
openingsMax: 3
placementAttempts: 40
tabletProb: 0.15
tabletsMax: 3
cacheCapacity: 4096
`
	cfg, err := LoadConfigFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	if cfg.WorldSeed != 12345 {
		t.Errorf("WorldSeed = %d, want 12345", cfg.WorldSeed)
	}
	if cfg.ChunkSize != 48 {
		t.Errorf("ChunkSize = %d, want 48", cfg.ChunkSize)
	}
	if cfg.CacheCapacity != 4096 {
		t.Errorf("CacheCapacity = %d, want 4096", cfg.CacheCapacity)
	}
}

func TestLoadConfigFromBytes_PartialUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`worldSeed: 99`))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	if cfg.WorldSeed != 99 {
		t.Errorf("WorldSeed = %d, want 99", cfg.WorldSeed)
	}
	if cfg.ChunkSize != Default().ChunkSize {
		t.Errorf("ChunkSize = %d, want default %d", cfg.ChunkSize, Default().ChunkSize)
	}
}

func TestValidate_ChunkSizeTooSmall(t *testing.T) {
	cfg := Default()
	cfg.ChunkSize = 8
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for chunkSize < 16")
	}
}

func TestValidate_InvertedRoomRange(t *testing.T) {
	cfg := Default()
	cfg.RoomsMin = 10
	cfg.RoomsMax = 5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for roomsMin > roomsMax")
	}
}

func TestValidate_NonPositiveCacheCapacity(t *testing.T) {
	cfg := Default()
	cfg.CacheCapacity = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive cacheCapacity")
	}
}

func TestValidate_OpeningsDontFit(t *testing.T) {
	cfg := Default()
	cfg.ChunkSize = 16
	cfg.OpeningsMax = 10
	cfg.OpeningsMin = 10
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when openings cannot fit with spacing")
	}
}

func TestValidate_TabletProbOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.TabletProb = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for tabletProb > 1")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() config should be valid: %v", err)
	}
}

func TestValidate_ZeroRoomsMaxIsValid(t *testing.T) {
	cfg := Default()
	cfg.RoomsMin = 0
	cfg.RoomsMax = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("roomsMin=roomsMax=0 should be a valid configuration (the fallback central room still satisfies reachability), got: %v", err)
	}
}

func TestHash_DeterministicAndSensitive(t *testing.T) {
	a := Default()
	b := Default()
	if a.Hash() != b.Hash() {
		t.Fatal("identical configs produced different hashes")
	}
	b.RoomsMax = 9
	if a.Hash() == b.Hash() {
		t.Fatal("different configs produced identical hashes")
	}
}
