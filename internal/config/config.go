// Package config provides YAML-based configuration loading for t2048.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Renderer names accepted in display.renderer.
const (
	RendererBubbletea = "bubbletea"
	RendererTcell     = "tcell"
)

// FPS limits.
const (
	MinFPS = 1
	MaxFPS = 240
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config contains all configuration for a t2048 session.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// DisplayConfig defines frame rate, animation and presentation parameters.
type DisplayConfig struct {
	FPS          int     `yaml:"fps"`
	Speed        float64 `yaml:"speed"`         // cells per frame while sliding
	ExitSpeed    float64 `yaml:"exit_speed"`    // cells per frame for the game-over slide
	HurrayFrames int     `yaml:"hurray_frames"` // frames the celebration stays up
	Sound        bool    `yaml:"sound"`
	Renderer     string  `yaml:"renderer"` // "bubbletea" or "tcell"
}

// LogConfig defines where diagnostics go.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty discards logs during local play
}

// Validate checks every section and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if err := c.Settings().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Display.FPS < MinFPS || c.Display.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("display.fps %d out of range %d..%d", c.Display.FPS, MinFPS, MaxFPS))
	}
	switch c.Display.Renderer {
	case RendererBubbletea, RendererTcell:
	default:
		errs = append(errs, fmt.Errorf("display.renderer %q, want %q or %q", c.Display.Renderer, RendererBubbletea, RendererTcell))
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Motion returns the animation parameters.
func (c Config) Motion() board.Motion {
	return board.Motion{
		Speed:        c.Display.Speed,
		ExitSpeed:    c.Display.ExitSpeed,
		HurrayFrames: c.Display.HurrayFrames,
	}
}

// Settings returns the game parameters.
func (c Config) Settings() t2048.Settings {
	return t2048.Settings{
		Columns: c.Grid.Columns,
		Rows:    c.Grid.Rows,
		Motion:  c.Motion(),
	}
}
