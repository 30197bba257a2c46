package config

import (
	_ "embed"

	"github.com/vovakirdan/t2048/internal/board"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 4x4 grid at 60fps.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Columns: 4,
			Rows:    4,
		},
		Display: DisplayConfig{
			FPS:          60,
			Speed:        board.DefaultSpeed,
			ExitSpeed:    board.DefaultExitSpeed,
			HurrayFrames: board.DefaultHurrayFrames,
			Sound:        false,
			Renderer:     RendererBubbletea,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
