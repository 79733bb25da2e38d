// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// WorldConfig is the logical playfield size in world units. The terminal
// viewport scales it to whatever cell grid is available.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongConfig contains all configuration for the rally game.
type PongConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ball       PongBall         `yaml:"ball"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongBall defines the ball.
type PongBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Accel  float64 `yaml:"accel"` // added to the ball speed on every paddle hit
	Color  string  `yaml:"color"`
}

// PongPaddles defines both paddles. The player paddle sits Offset units from
// the left edge, the CPU paddle Offset units from the right edge.
type PongPaddles struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Offset   float64 `yaml:"offset"`
	Speed    float64 `yaml:"speed"`
	CPUSpeed float64 `yaml:"cpu_speed"`
	Color    string  `yaml:"color"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"` // 0 = endless rally
}

// GunfightConfig contains all configuration for the duel game.
type GunfightConfig struct {
	World      WorldConfig       `yaml:"world"`
	Ammo       GunfightAmmo      `yaml:"ammo"`
	Player     GunfightPlayer    `yaml:"player"`
	CPU        GunfightCPU       `yaml:"cpu"`
	Obstacles  GunfightObstacles `yaml:"obstacles"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// GunfightAmmo defines starting resources and the bullet pool size.
type GunfightAmmo struct {
	StartBullets int     `yaml:"start_bullets"`
	StartLives   int     `yaml:"start_lives"`
	MaxBullets   int     `yaml:"max_bullets"`
	Spread       float64 `yaml:"spread"` // max vertical component of a shot direction
	MuzzleGap    float64 `yaml:"muzzle_gap"`
}

// GunfightPlayer defines the human shooter and its movement area.
type GunfightPlayer struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	AreaX        float64 `yaml:"area_x"`
	AreaWidth    float64 `yaml:"area_width"` // fraction of world width
	AreaMargin   float64 `yaml:"area_margin"`
	StartInset   float64 `yaml:"start_inset"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRadius float64 `yaml:"bullet_radius"` // fraction of shooter radius
	Color        string  `yaml:"color"`
}

// GunfightCPU defines the computer shooter.
type GunfightCPU struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	EdgeOffset   float64 `yaml:"edge_offset"` // distance from the right edge to the shooter's edge
	AreaX        float64 `yaml:"area_x"`      // fraction of world width where the CPU area starts
	AreaMargin   float64 `yaml:"area_margin"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRadius float64 `yaml:"bullet_radius"`
	FireMin      float64 `yaml:"fire_min"` // seconds
	FireMax      float64 `yaml:"fire_max"`
	Color        string  `yaml:"color"`
}

// GunfightObstacles defines the patrolling blockers in the middle lane.
// Obstacle i gets Speed+i*SpeedStep and Accel+i*AccelStep.
type GunfightObstacles struct {
	Count     int     `yaml:"count"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	CenterX   float64 `yaml:"center_x"` // fraction of world width
	Spacing   float64 `yaml:"spacing"`
	Speed     float64 `yaml:"speed"`
	SpeedStep float64 `yaml:"speed_step"`
	Accel     float64 `yaml:"accel"`
	AccelStep float64 `yaml:"accel_step"`
	Margin    float64 `yaml:"margin"`
	Color     string  `yaml:"color"`
}

// Validate reports configuration values the simulation cannot run with.
func (c PongConfig) Validate() error {
	var errs []error
	errs = append(errs, c.World.validate())
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball.radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddles must have positive size, got %vx%v", c.Paddles.Width, c.Paddles.Height))
	}
	if c.Paddles.Height > c.World.Height {
		errs = append(errs, fmt.Errorf("paddles.height %v exceeds world height %v", c.Paddles.Height, c.World.Height))
	}
	if c.Gameplay.WinScore < 0 {
		errs = append(errs, fmt.Errorf("gameplay.win_score must not be negative, got %d", c.Gameplay.WinScore))
	}
	return errors.Join(errs...)
}

// Validate reports configuration values the simulation cannot run with.
func (c GunfightConfig) Validate() error {
	var errs []error
	errs = append(errs, c.World.validate())
	if c.Ammo.StartBullets < 0 || c.Ammo.StartLives < 0 {
		errs = append(errs, fmt.Errorf("ammo.start_bullets and ammo.start_lives must not be negative"))
	}
	if c.Ammo.MaxBullets <= 0 {
		errs = append(errs, fmt.Errorf("ammo.max_bullets must be positive, got %d", c.Ammo.MaxBullets))
	}
	if c.Player.Radius <= 0 || c.CPU.Radius <= 0 {
		errs = append(errs, fmt.Errorf("shooter radius must be positive"))
	}
	if c.Obstacles.Count < 0 {
		errs = append(errs, fmt.Errorf("obstacles.count must not be negative, got %d", c.Obstacles.Count))
	}
	if c.CPU.FireMin <= 0 || c.CPU.FireMax < c.CPU.FireMin {
		errs = append(errs, fmt.Errorf("cpu fire interval [%v, %v] is invalid", c.CPU.FireMin, c.CPU.FireMax))
	}
	return errors.Join(errs...)
}

func (w WorldConfig) validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", w.Width, w.Height)
	}
	return nil
}
