package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/gunfight.yaml
var defaultGunfightYAML []byte

// DefaultPongConfig returns the default rally configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		World: WorldConfig{Width: 960, Height: 540},
		Ball: PongBall{
			Radius: 20,
			Speed:  400,
			Accel:  40,
			Color:  "white",
		},
		Paddles: PongPaddles{
			Width:    20,
			Height:   120,
			Offset:   10,
			Speed:    400,
			CPUSpeed: 400,
			Color:    "white",
		},
		Gameplay: PongGameplay{
			WinScore: 0,
		},
		Difficulty: DifficultyConfig{SpeedScale: 1.0, Ramp: true},
	}
}

// DefaultGunfightConfig returns the default duel configuration.
func DefaultGunfightConfig() GunfightConfig {
	return GunfightConfig{
		World: WorldConfig{Width: 1024, Height: 640},
		Ammo: GunfightAmmo{
			StartBullets: 5,
			StartLives:   1,
			MaxBullets:   64,
			Spread:       0.30,
			MuzzleGap:    4,
		},
		Player: GunfightPlayer{
			Radius:       18,
			Speed:        260,
			AreaX:        40,
			AreaWidth:    0.28,
			AreaMargin:   40,
			StartInset:   8,
			BulletSpeed:  450,
			BulletRadius: 0.45,
			Color:        "blue",
		},
		CPU: GunfightCPU{
			Radius:       18,
			Speed:        160,
			EdgeOffset:   40,
			AreaX:        0.6,
			AreaMargin:   40,
			BulletSpeed:  420,
			BulletRadius: 0.5,
			FireMin:      1.0,
			FireMax:      2.5,
			Color:        "red",
		},
		Obstacles: GunfightObstacles{
			Count:     2,
			Width:     20,
			Height:    120,
			CenterX:   0.45,
			Spacing:   80,
			Speed:     80,
			SpeedStep: 40,
			Accel:     8,
			AccelStep: 2,
			Margin:    60,
			Color:     "gray",
		},
		Difficulty: DifficultyConfig{SpeedScale: 1.0, Ramp: true},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pong":
		return defaultPongYAML
	case "gunfight":
		return defaultGunfightYAML
	default:
		return nil
	}
}
