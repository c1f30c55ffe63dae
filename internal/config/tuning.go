package config

import (
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// FileTuning represents the optional TOML tuning file. Every field is a
// pointer so that absent keys leave the env-derived defaults untouched.
type FileTuning struct {
	Game GameTuning `toml:"game"`
}

type GameTuning struct {
	SessionSeconds       *int     `toml:"session-seconds"`
	PinchThreshold       *float64 `toml:"pinch-threshold"`
	ShootCooldownMs      *int     `toml:"shoot-cooldown-ms"`
	PlayAreaWidth        *float64 `toml:"play-area-width"`
	PlayAreaHeight       *float64 `toml:"play-area-height"`
	SpawnIntervalStartMs *float64 `toml:"spawn-interval-start-ms"`
	SpawnIntervalStepMs  *float64 `toml:"spawn-interval-step-ms"`
	SpawnIntervalFloorMs *float64 `toml:"spawn-interval-floor-ms"`
}

// LoadTuning reads a TOML tuning file from the given path. Missing file is
// not an error.
func LoadTuning(path string) (FileTuning, error) {
	if path == "" {
		return FileTuning{}, fmt.Errorf("tuning path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileTuning{}, nil
		}
		return FileTuning{}, fmt.Errorf("failed to stat tuning file: %w", err)
	}
	var t FileTuning
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return FileTuning{}, fmt.Errorf("failed to decode tuning file: %w", err)
	}
	log.Printf("[CONFIG] Loaded game tuning from %s", path)
	return t, nil
}

func (cfg *Config) applyTuning(t FileTuning) {
	g := t.Game
	if g.SessionSeconds != nil {
		cfg.SessionSeconds = *g.SessionSeconds
	}
	if g.PinchThreshold != nil {
		cfg.PinchThreshold = *g.PinchThreshold
	}
	if g.ShootCooldownMs != nil {
		cfg.ShootCooldownMs = *g.ShootCooldownMs
	}
	if g.PlayAreaWidth != nil {
		cfg.PlayAreaWidth = *g.PlayAreaWidth
	}
	if g.PlayAreaHeight != nil {
		cfg.PlayAreaHeight = *g.PlayAreaHeight
	}
	if g.SpawnIntervalStartMs != nil {
		cfg.SpawnIntervalStartMs = *g.SpawnIntervalStartMs
	}
	if g.SpawnIntervalStepMs != nil {
		cfg.SpawnIntervalStepMs = *g.SpawnIntervalStepMs
	}
	if g.SpawnIntervalFloorMs != nil {
		cfg.SpawnIntervalFloorMs = *g.SpawnIntervalFloorMs
	}
}
