// Package t2048 is the tick-driven 2048 game: it wraps a board and its
// animator behind the Reset/Step/Render cycle the terminal hosts drive.
package t2048

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/core"
)

// ErrInvalidSettings is returned for settings the game cannot run with.
var ErrInvalidSettings = errors.New("t2048: invalid settings")

// Settings are the per-game parameters.
type Settings struct {
	Columns int
	Rows    int
	Motion  board.Motion
}

// DefaultSettings returns a classic 4x4 game.
func DefaultSettings() Settings {
	return Settings{Columns: 4, Rows: 4, Motion: board.DefaultMotion()}
}

// Validate checks grid dimensions and animation parameters. Grids under 16
// cells never spawn after a move; grids too big for the terminal pause until
// the window grows.
func (s Settings) Validate() error {
	if s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("%w: grid %dx%d, both sides must be positive", ErrInvalidSettings, s.Columns, s.Rows)
	}
	if err := s.Motion.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// Game implements the 2048 puzzle on top of a board.Animator.
type Game struct {
	settings Settings
	log      *log.Logger
	tick     uint64

	board *board.Board
	anim  *board.Animator

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for ignored input and game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// New creates a game. Call Reset before the first Step.
func New(s Settings, opts ...Option) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g := &Game{settings: s}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	return g, nil
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("2048 (%dx%d)", g.settings.Columns, g.settings.Rows)
}

// Settings returns the game parameters.
func (g *Game) Settings() Settings {
	return g.settings
}

// Reset starts a new game. A zero seed picks a time-based one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Settings were validated in New, so neither constructor can fail.
	b, _ := board.New(g.settings.Columns, g.settings.Rows, board.WithRand(rand.New(rand.NewSource(seed))))
	anim, _ := board.NewAnimator(b, g.settings.Motion)
	b.Spawn(b.InitialCount())

	g.board = b
	g.anim = anim
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.log.Debug("new game", "columns", g.settings.Columns, "rows", g.settings.Rows, "seed", seed)
}

// Resize records the screen size and pauses the game while it cannot fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := FrameSize(g.settings.Columns, g.settings.Rows)
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.board == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.anim.Phase() != board.PhaseOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.anim.Phase() {
	case board.PhaseIdle:
		g.handleInput(in)
	case board.PhaseAnimating, board.PhaseSettled, board.PhaseCelebrating, board.PhaseExiting:
		// Input is dropped until the move settles.
		if g.anim.Tick() == board.PhaseStuck {
			g.endGame()
		}
	case board.PhaseStuck:
		g.endGame()
	}

	return core.StepResult{State: g.State()}
}

// handleInput starts a move or reverts the last one.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionUndo) {
		if !g.anim.Undo() {
			g.log.Debug("nothing to undo")
		}
		return
	}

	dir, ok := direction(in)
	if !ok {
		return
	}
	if err := g.anim.Begin(dir); err != nil {
		g.log.Warn("move rejected", "direction", dir, "err", err)
	}
}

func (g *Game) endGame() {
	g.log.Info("no room for new tiles", "score", g.board.Score(), "max", board.Label(g.board.MaxValue()))
	g.anim.EndGame()
}

// direction picks the first move action in the frame.
func direction(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.DirUp, true
	case in.Has(core.ActionDown):
		return board.DirDown, true
	case in.Has(core.ActionLeft):
		return board.DirLeft, true
	case in.Has(core.ActionRight):
		return board.DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.anim.Phase() == board.PhaseOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Board returns the current board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Phase returns the animator phase.
func (g *Game) Phase() board.Phase {
	if g.anim == nil {
		return board.PhaseIdle
	}
	return g.anim.Phase()
}

// Celebrating returns the celebration text while it is shown.
func (g *Game) Celebrating() string {
	if g.anim == nil {
		return ""
	}
	return g.anim.Hurray()
}

// View returns what the next frame shows.
func (g *Game) View() View {
	return View{
		Board:    g.board,
		Hurray:   g.Celebrating(),
		GameOver: g.Phase() == board.PhaseOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.Clear()
		minW, minH := FrameSize(g.settings.Columns, g.settings.Rows)
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, please resize terminal", minW, minH))
		return
	}
	Draw(dst, g.View())
}
