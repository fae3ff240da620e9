// Package config provides YAML/TOML game configuration loading and
// difficulty presets for the arkanoid simulation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ArkanoidConfig contains all configuration for a session.
// Values are fixed at startup and never change mid-run.
type ArkanoidConfig struct {
	Playfield Playfield `yaml:"playfield" toml:"playfield"`
	Physics   Physics   `yaml:"physics" toml:"physics"`
	Ball      Ball      `yaml:"ball" toml:"ball"`
	Paddle    Paddle    `yaml:"paddle" toml:"paddle"`
	Blocks    Blocks    `yaml:"blocks" toml:"blocks"`
	Palette   []string  `yaml:"palette" toml:"palette"` // Hex colors, one per row band
	Input     Input     `yaml:"input" toml:"input"`
}

// Playfield defines the simulated area in pixels.
type Playfield struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Physics defines speeds in pixels per frame.
type Physics struct {
	BallSpeed   int `yaml:"ball_speed" toml:"ball_speed"`
	PaddleSpeed int `yaml:"paddle_speed" toml:"paddle_speed"`
}

// Ball defines the ball spawn. It launches up and to the right.
type Ball struct {
	X    int `yaml:"x" toml:"x"`
	Y    int `yaml:"y" toml:"y"`
	Size int `yaml:"size" toml:"size"`
}

// Paddle defines the paddle spawn and size.
type Paddle struct {
	X      int `yaml:"x" toml:"x"`
	Y      int `yaml:"y" toml:"y"`
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Blocks defines the block grid layout.
type Blocks struct {
	Rows         int `yaml:"rows" toml:"rows"`
	Columns      int `yaml:"columns" toml:"columns"`
	Width        int `yaml:"width" toml:"width"`
	Height       int `yaml:"height" toml:"height"`
	OriginX      int `yaml:"origin_x" toml:"origin_x"`
	OriginY      int `yaml:"origin_y" toml:"origin_y"`
	RowsPerColor int `yaml:"rows_per_color" toml:"rows_per_color"` // Rows sharing one palette entry
}

// Input tunes the platform input adapter.
type Input struct {
	// ReleaseAfterTicks synthesizes a key release for terminals that only
	// report presses. 0 disables it.
	ReleaseAfterTicks int `yaml:"release_after_ticks" toml:"release_after_ticks"`
}

// Colors parses the palette. Call Validate first to get a readable error.
func (c ArkanoidConfig) Colors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Palette))
	for i, s := range c.Palette {
		col, err := core.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Validate checks that the config describes a playable session.
func (c ArkanoidConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("ball.size", c.Ball.Size)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)
	positive("blocks.rows_per_color", c.Blocks.RowsPerColor)

	if c.Physics.BallSpeed < 0 || c.Physics.PaddleSpeed < 0 {
		errs = append(errs, errors.New("physics speeds must not be negative"))
	}
	if c.Blocks.Rows < 0 || c.Blocks.Columns < 0 {
		errs = append(errs, errors.New("blocks.rows and blocks.columns must not be negative"))
	}
	if c.Paddle.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("paddle.width %d exceeds playfield.width %d", c.Paddle.Width, c.Playfield.Width))
	}
	if c.Ball.Size > c.Playfield.Width || c.Ball.Size > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("ball.size %d does not fit the playfield", c.Ball.Size))
	}
	if c.Input.ReleaseAfterTicks < 0 {
		errs = append(errs, errors.New("input.release_after_ticks must not be negative"))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must have at least one color"))
	} else if _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI string to a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BallSpeed = 1
		cfg.Physics.PaddleSpeed = 5
		cfg.Paddle.Width = 48
	case DifficultyHard:
		cfg.Physics.BallSpeed = 3
		cfg.Physics.PaddleSpeed = 4
		cfg.Paddle.Width = 24
	}
	// Keep the paddle inside the playfield after widening.
	if cfg.Paddle.X+cfg.Paddle.Width > cfg.Playfield.Width {
		cfg.Paddle.X = core.Max(cfg.Playfield.Width-cfg.Paddle.Width, 0)
	}
}
