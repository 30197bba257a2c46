package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/t2048/internal/config"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadConfigOverrides(t *testing.T) {
	isolate(t)

	if err := rootCmd.ParseFlags([]string{"--fps", "30", "--renderer", "tcell", "--sound"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	cfg, err := loadConfig(rootCmd, []string{"5", "4"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Grid.Columns != 5 || cfg.Grid.Rows != 4 {
		t.Errorf("grid = %dx%d, want 5x4", cfg.Grid.Columns, cfg.Grid.Rows)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("FPS = %d, want 30", cfg.Display.FPS)
	}
	if cfg.Display.Renderer != config.RendererTcell {
		t.Errorf("Renderer = %q, want %q", cfg.Display.Renderer, config.RendererTcell)
	}
	if !cfg.Display.Sound {
		t.Error("Sound = false, want true")
	}
	if cfg.Display.HurrayFrames != config.Default().Display.HurrayFrames {
		t.Errorf("HurrayFrames = %d, want default", cfg.Display.HurrayFrames)
	}
}

func TestLoadConfigAcceptsSmallGrids(t *testing.T) {
	isolate(t)

	cfg, err := loadConfig(serveCmd, []string{"3", "3"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Grid.Columns != 3 || cfg.Grid.Rows != 3 {
		t.Errorf("grid = %dx%d, want 3x3", cfg.Grid.Columns, cfg.Grid.Rows)
	}
}

func TestLoadConfigRejectsBadArgs(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		args    []string
		invalid bool // rejected by validation rather than parsing
	}{
		{"not a number", []string{"four"}, false},
		{"bad rows", []string{"4", "x"}, false},
		{"zero columns", []string{"0", "4"}, true},
		{"negative rows", []string{"4", "-2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(serveCmd, tt.args)
			if err == nil {
				t.Fatal("loadConfig() = nil error")
			}
			if got := errors.Is(err, config.ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}
