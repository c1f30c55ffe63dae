package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuningMissingFileIsNotAnError(t *testing.T) {
	tuning, err := LoadTuning(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if tuning.Game.PinchThreshold != nil {
		t.Fatalf("missing file should yield zero tuning")
	}
}

func TestLoadTuningEmptyPathErrors(t *testing.T) {
	if _, err := LoadTuning(""); err == nil {
		t.Fatalf("empty path must error")
	}
}

func TestLoadTuningRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte("[game\nbroken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Fatalf("malformed toml must error")
	}
}

func TestApplyTuningOverridesOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	body := `
[game]
pinch-threshold = 0.08
session-seconds = 90
spawn-interval-floor-ms = 350.0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg := &Config{
		SessionSeconds:       60,
		PinchThreshold:       0.05,
		ShootCooldownMs:      200,
		SpawnIntervalStartMs: 1000,
		SpawnIntervalFloorMs: 400,
	}
	cfg.applyTuning(tuning)

	if cfg.PinchThreshold != 0.08 {
		t.Errorf("pinch threshold %f, want 0.08", cfg.PinchThreshold)
	}
	if cfg.SessionSeconds != 90 {
		t.Errorf("session seconds %d, want 90", cfg.SessionSeconds)
	}
	if cfg.SpawnIntervalFloorMs != 350 {
		t.Errorf("spawn floor %f, want 350", cfg.SpawnIntervalFloorMs)
	}
	// Keys absent from the file keep their env defaults.
	if cfg.ShootCooldownMs != 200 || cfg.SpawnIntervalStartMs != 1000 {
		t.Errorf("absent keys must stay untouched: %+v", cfg)
	}
}
