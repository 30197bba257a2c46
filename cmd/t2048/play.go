package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/audio"
	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/logging"
	"github.com/vovakirdan/t2048/internal/registry"
)

var (
	flagRenderer string
	flagSound    bool
	flagLogFile  string
)

func init() {
	rootCmd.Flags().StringVar(&flagRenderer, "renderer", "", "Renderer: bubbletea or tcell")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a chime on big merges")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
}

// loadConfig reads the config file and applies flags and arguments on top.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if len(args) > 0 {
		if cfg.Grid.Columns, err = strconv.Atoi(args[0]); err != nil {
			return cfg, fmt.Errorf("columns %q: %w", args[0], err)
		}
	}
	if len(args) > 1 {
		if cfg.Grid.Rows, err = strconv.Atoi(args[1]); err != nil {
			return cfg, fmt.Errorf("rows %q: %w", args[1], err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("renderer") {
		cfg.Display.Renderer = flagRenderer
	}
	if flags.Changed("sound") {
		cfg.Display.Sound = flagSound
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	renderer, err := registry.Create(cfg.Display.Renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 't2048 renderers' to see available renderers.")
		os.Exit(1)
	}

	game, err := t2048.New(cfg.Settings(), t2048.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var chime *audio.Chime
	if cfg.Display.Sound {
		if chime, err = audio.NewChime(); err != nil {
			// Continue without sound - game still works
			logger.Warn("audio initialization failed", "err", err)
		}
		defer chime.Close()
	}

	session := registry.Session{
		Game: game,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Display.FPS,
			Seed:     flagSeed,
		},
		Logger: logger,
		Chime:  chime,
	}

	logger.Info("session start", "game", game.Title(), "renderer", renderer.Name())
	runErr := renderer.Run(cmd.Context(), session)
	snap := game.Snapshot()
	logger.Info("session end", "score", snap.Score, "max", snap.MaxTile, "state", snap.State)

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
