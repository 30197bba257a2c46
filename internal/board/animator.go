package board

import (
	"context"
	"errors"
	"fmt"
)

// Animation defaults, in grid cells per frame and frames.
const (
	DefaultSpeed        = 0.45
	DefaultExitSpeed    = 0.03
	DefaultHurrayFrames = 60 // one second at 60fps
)

var (
	// ErrBusy is returned when a move is requested while another one runs.
	ErrBusy = errors.New("board: move in progress")

	// ErrGameOver is returned when a move is requested after the game ended.
	ErrGameOver = errors.New("board: game over")
)

// Motion holds the animation parameters.
type Motion struct {
	Speed        float64 // cells per frame while sliding
	ExitSpeed    float64 // cells per frame for the game-over slide
	HurrayFrames int     // frames the celebration overlay stays up
}

// DefaultMotion returns the standard animation parameters.
func DefaultMotion() Motion {
	return Motion{
		Speed:        DefaultSpeed,
		ExitSpeed:    DefaultExitSpeed,
		HurrayFrames: DefaultHurrayFrames,
	}
}

// Validate checks that every tile is guaranteed to reach its target.
func (m Motion) Validate() error {
	if m.Speed <= 0 || m.ExitSpeed <= 0 {
		return fmt.Errorf("board: speeds must be positive (speed=%g, exit=%g)", m.Speed, m.ExitSpeed)
	}
	if m.HurrayFrames < 0 {
		return fmt.Errorf("board: hurray frames must not be negative (%d)", m.HurrayFrames)
	}
	return nil
}

// Phase is the animator state.
type Phase int

const (
	PhaseIdle        Phase = iota // waiting for input
	PhaseAnimating                // tiles sliding toward their targets
	PhaseSettled                  // tiles at rest, merges not yet applied
	PhaseCelebrating              // hurray overlay held before spawning
	PhaseStuck                    // spawn failed; waiting for EndGame
	PhaseExiting                  // tiles sliding off the grid
	PhaseOver                     // game over, terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimating:
		return "animating"
	case PhaseSettled:
		return "settled"
	case PhaseCelebrating:
		return "celebrating"
	case PhaseStuck:
		return "stuck"
	case PhaseExiting:
		return "exiting"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Driver renders board state. Each call draws one frame and returns once
// the frame's time slot has passed, so the driver owns the frame rate.
type Driver interface {
	Draw(b *Board) error
	Hurray(b *Board, text string) error
	GameOver(b *Board) error
}

// Animator runs moves on a board one frame at a time.
//
// Event-driven hosts call Begin on input and Tick once per frame. Hosts with
// their own blocking loop use Move and GameOver, which tick until the move
// (or the game-over slide) completes.
type Animator struct {
	board  *Board
	motion Motion

	phase  Phase
	hold   int
	hurray string
	last   MoveResult
}

// NewAnimator creates an animator for the board.
func NewAnimator(b *Board, m Motion) (*Animator, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Animator{board: b, motion: m, last: MoveResult{Spawned: true}}, nil
}

// Board returns the animated board.
func (a *Animator) Board() *Board {
	return a.board
}

// Phase returns the current phase.
func (a *Animator) Phase() Phase {
	return a.phase
}

// Busy reports whether a move or the game-over slide is in progress.
func (a *Animator) Busy() bool {
	switch a.phase {
	case PhaseAnimating, PhaseSettled, PhaseCelebrating, PhaseExiting:
		return true
	default:
		return false
	}
}

// Hurray returns the celebration text while it is shown.
func (a *Animator) Hurray() string {
	return a.hurray
}

// LastResult returns the outcome of the most recent completed move.
func (a *Animator) LastResult() MoveResult {
	return a.last
}

// Begin resolves a move. The tiles start sliding on the next Tick.
func (a *Animator) Begin(dir Direction) error {
	switch a.phase {
	case PhaseIdle:
	case PhaseStuck, PhaseExiting, PhaseOver:
		return ErrGameOver
	default:
		return ErrBusy
	}
	if err := a.board.Resolve(dir); err != nil {
		return err
	}
	a.phase = PhaseAnimating
	return nil
}

// Undo reverts the last move. Only possible while idle.
func (a *Animator) Undo() bool {
	if a.phase != PhaseIdle {
		return false
	}
	return a.board.Undo()
}

// EndGame starts the game-over slide. The board stops accepting moves.
func (a *Animator) EndGame() {
	if a.phase == PhaseExiting || a.phase == PhaseOver {
		return
	}
	a.hurray = ""
	a.board.BeginExit()
	a.phase = PhaseExiting
}

// Tick advances one frame and returns the resulting phase.
func (a *Animator) Tick() Phase {
	switch a.phase {
	case PhaseAnimating:
		if a.board.Advance(a.motion.Speed) {
			a.phase = PhaseSettled
		}

	case PhaseSettled:
		a.hurray = a.board.Finalize()
		if a.hurray != "" && a.motion.HurrayFrames > 0 {
			a.hold = a.motion.HurrayFrames
			a.phase = PhaseCelebrating
			break
		}
		a.spawn()

	case PhaseCelebrating:
		a.hold--
		if a.hold <= 0 {
			a.spawn()
		}

	case PhaseExiting:
		if a.board.Advance(a.motion.ExitSpeed) {
			a.phase = PhaseOver
		}
	}
	return a.phase
}

// spawn runs the per-move spawn and closes the move.
func (a *Animator) spawn() {
	a.last = MoveResult{
		Celebration: a.hurray,
		Spawned:     a.board.Spawn(a.board.SpawnCount()),
	}
	a.hurray = ""
	if a.last.Spawned {
		a.phase = PhaseIdle
	} else {
		a.phase = PhaseStuck
	}
}

// Move runs a whole move, drawing every frame through the driver.
// It returns false when the spawn after the move failed, which ends the game.
func (a *Animator) Move(ctx context.Context, dir Direction, drv Driver) (bool, error) {
	if err := a.Begin(dir); err != nil {
		return a.phase != PhaseStuck && a.phase != PhaseOver, err
	}
	if err := a.run(ctx, drv); err != nil {
		return true, err
	}
	return a.last.Spawned, nil
}

// GameOver slides the tiles off the grid, then shows the game-over screen.
func (a *Animator) GameOver(ctx context.Context, drv Driver) error {
	a.EndGame()
	if err := a.run(ctx, drv); err != nil {
		return err
	}
	return drv.GameOver(a.board)
}

// run ticks until the animator is no longer busy.
func (a *Animator) run(ctx context.Context, drv Driver) error {
	for a.Busy() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		if a.Tick() == PhaseCelebrating {
			err = drv.Hurray(a.board, a.hurray)
		} else {
			err = drv.Draw(a.board)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Move resolves, animates and settles one move on the board with its own
// animator. See Animator.Move.
func (b *Board) Move(ctx context.Context, dir Direction, drv Driver, m Motion) (bool, error) {
	a, err := NewAnimator(b, m)
	if err != nil {
		return true, err
	}
	return a.Move(ctx, dir, drv)
}

// GameOver runs the game-over slide and screen. See Animator.GameOver.
func (b *Board) GameOver(ctx context.Context, drv Driver, m Motion) error {
	a, err := NewAnimator(b, m)
	if err != nil {
		return err
	}
	return a.GameOver(ctx, drv)
}
