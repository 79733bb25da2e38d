package config

import (
	"fmt"
	"strings"
)

// DifficultyConfig scales a game's speeds and toggles its ramps.
type DifficultyConfig struct {
	SpeedScale float64 `yaml:"speed_scale"` // 1.0 = reference speeds
	Ramp       bool    `yaml:"ramp"`        // impact/shot speed ramps enabled
}

// Speed scales a base speed by the configured factor.
func (d DifficultyConfig) Speed(base float64) float64 {
	if d.SpeedScale <= 0 {
		return base
	}
	return base * d.SpeedScale
}

// Accel returns the ramp increment, or zero when ramps are disabled.
func (d DifficultyConfig) Accel(base float64) float64 {
	if !d.Ramp {
		return 0
	}
	return d.Speed(base)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a preset name from the command line.
// An empty name means "leave the loaded config untouched".
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ScaleForPreset returns the speed factor for a preset.
func ScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables speed ramps.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	d.SpeedScale = ScaleForPreset(preset)
	d.Ramp = !IsFixedPreset(preset)
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyGunfightPreset modifies the config based on a difficulty preset.
// Harder presets also make the CPU fire more often.
func ApplyGunfightPreset(cfg *GunfightConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.CPU.FireMin, cfg.CPU.FireMax = 1.5, 3.0
	case DifficultyHard:
		cfg.CPU.FireMin, cfg.CPU.FireMax = 0.7, 1.8
	}
}
