package t2048

import "github.com/vovakirdan/t2048/internal/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateCelebrating GameStateType = "celebrating"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Columns int
	Rows    int
	Score   int
	Grid    [][]int // tile ranks by row, 0 for empty cells
	MaxTile string  // label of the highest tile on the board
	CanUndo bool
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.board == nil {
		return Snapshot{Columns: g.settings.Columns, Rows: g.settings.Rows, State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	default:
		switch g.anim.Phase() {
		case board.PhaseAnimating, board.PhaseSettled:
			state = StateAnimating
		case board.PhaseCelebrating:
			state = StateCelebrating
		case board.PhaseStuck, board.PhaseExiting, board.PhaseOver:
			state = StateGameOver
		}
	}

	return Snapshot{
		Tick:    g.tick,
		Columns: g.board.Columns(),
		Rows:    g.board.Rows(),
		Score:   g.board.Score(),
		Grid:    g.board.Grid(),
		MaxTile: board.Label(g.board.MaxValue()),
		CanUndo: g.board.CanUndo(),
		State:   state,
	}
}
