package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var pong PongConfig
	if err := yaml.Unmarshal(GetDefaultYAML("pong"), &pong); err != nil {
		t.Fatalf("embedded pong.yaml: %v", err)
	}
	if !reflect.DeepEqual(pong, DefaultPongConfig()) {
		t.Errorf("pong.yaml = %+v\nexpected %+v", pong, DefaultPongConfig())
	}

	var gf GunfightConfig
	if err := yaml.Unmarshal(GetDefaultYAML("gunfight"), &gf); err != nil {
		t.Fatalf("embedded gunfight.yaml: %v", err)
	}
	if !reflect.DeepEqual(gf, DefaultGunfightConfig()) {
		t.Errorf("gunfight.yaml = %+v\nexpected %+v", gf, DefaultGunfightConfig())
	}

	if GetDefaultYAML("tetris") != nil {
		t.Error("unknown game should have no embedded config")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("default pong config invalid: %v", err)
	}
	if err := DefaultGunfightConfig().Validate(); err != nil {
		t.Errorf("default gunfight config invalid: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte("ball:\n  speed: 250\ngameplay:\n  win_score: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if cfg.Ball.Speed != 250 || cfg.Gameplay.WinScore != 7 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.Ball.Radius != 20 || cfg.Paddles.Height != 120 || cfg.World.Width != 960 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
		wantErr string
	}{
		{"missing file", "", false, "failed to read"},
		{"bad yaml", "world: [1, 2", true, "failed to parse"},
		{"invalid values", "world:\n  width: -5\n", true, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if tt.create {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			_, err := LoadGunfight(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadGunfight("")
	if err != nil {
		t.Fatalf("LoadGunfight: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGunfightConfig()) {
		t.Errorf("fallback config = %+v", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "gunfight.yaml"), []byte("ammo:\n  start_bullets: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGunfight("")
	if err != nil {
		t.Fatalf("LoadGunfight: %v", err)
	}
	if cfg.Ammo.StartBullets != 9 {
		t.Errorf("start_bullets = %d, expected 9 from ./configs", cfg.Ammo.StartBullets)
	}

	// A broken local file is skipped, not fatal.
	if err := os.WriteFile(filepath.Join("configs", "gunfight.yaml"), []byte("ammo: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadGunfight("")
	if err != nil || cfg.Ammo.StartBullets != 5 {
		t.Errorf("broken local config: cfg=%+v err=%v", cfg.Ammo, err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"EASY", DifficultyEasy, false},
		{" hard ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestApplyPresets(t *testing.T) {
	pong := DefaultPongConfig()
	ApplyPongPreset(&pong, DifficultyFixed)
	if pong.Difficulty.Ramp || pong.Difficulty.Accel(pong.Ball.Accel) != 0 {
		t.Error("fixed preset should disable ramps")
	}
	if pong.Difficulty.Speed(400) != 400 {
		t.Errorf("fixed speed = %v, expected reference speed", pong.Difficulty.Speed(400))
	}

	ApplyPongPreset(&pong, DifficultyHard)
	if !pong.Difficulty.Ramp || pong.Difficulty.Speed(400) != 500 {
		t.Errorf("hard preset: %+v", pong.Difficulty)
	}

	before := pong.Difficulty
	ApplyPongPreset(&pong, "")
	if pong.Difficulty != before {
		t.Error("empty preset should leave config untouched")
	}

	gf := DefaultGunfightConfig()
	ApplyGunfightPreset(&gf, DifficultyEasy)
	if gf.CPU.FireMin != 1.5 || gf.Difficulty.SpeedScale != 0.8 {
		t.Errorf("easy gunfight preset: cpu=%+v difficulty=%+v", gf.CPU, gf.Difficulty)
	}
	if err := gf.Validate(); err != nil {
		t.Errorf("preset produced invalid config: %v", err)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultGunfightConfig()
	cfg.Ammo.MaxBullets = 0
	cfg.CPU.FireMax = 0.1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "max_bullets") || !strings.Contains(msg, "fire interval") {
		t.Errorf("error should list every problem, got %q", msg)
	}
}
