// t2048 is a sliding-tile merge puzzle for the terminal.
//
// Usage:
//
//	t2048 [columns] [rows]   - Play locally (default 4x4)
//	t2048 serve              - Start SSH server for remote play
//	t2048 renderers          - List available renderers
//
// Global flags:
//
//	--config <path>   - Config YAML (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--fps <rate>      - Set frame rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible games
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import renderers to register them
	_ "github.com/vovakirdan/t2048/internal/platform/console"
	_ "github.com/vovakirdan/t2048/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048 [columns] [rows]",
	Short: "2048 in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle with animated tiles.

Slide the tiles with the arrow keys, WASD or HJKL. Equal tiles merge into
their sum; new tiles appear after every move. The game ends when there is
no room left for new tiles.

Controls:
  Arrows/WASD/HJKL - Move
  Ctrl+Z/Alt+Z/U   - Undo the last move
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  t2048
  t2048 6 5
  t2048 --renderer tcell --sound
  t2048 serve --ssh :2222`,
	Args: cobra.MaximumNArgs(2),
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(renderersCmd)
	rootCmd.AddCommand(serveCmd)
}
