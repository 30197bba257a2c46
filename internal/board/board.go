// Package board implements the sliding-tile merge engine: tiles, move
// resolution, spawning, undo, and the frame-by-frame animation that carries
// tiles from their old cells to their new ones.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Spawn and scoring rules.
const (
	// SpawnLowProb is the chance that a spawned tile has value 1 (shows 2);
	// otherwise it has value 2 (shows 4).
	SpawnLowProb = 0.8

	// CelebrationThreshold is the merge credit above which a merge is
	// celebrated. Credits are 2^(v-1), so a tile reaching 1024 qualifies.
	CelebrationThreshold = 511
)

var (
	// ErrUnknownDirection is returned for a move in an unrecognized direction.
	ErrUnknownDirection = errors.New("board: unknown direction")

	// ErrInvalidSize is returned by New for non-positive dimensions.
	ErrInvalidSize = errors.New("board: invalid size")
)

// Cell is an integer grid coordinate.
type Cell struct {
	Col, Row int
}

// snapshot is the single-level undo record. Tiles are copied by value.
type snapshot struct {
	tiles []Tile
	score int
}

// Board owns the tiles of one game together with its score and undo history.
type Board struct {
	cols  int
	rows  int
	tiles []Tile
	score int
	undo  *snapshot
	rng   *rand.Rand
}

// Option configures a Board.
type Option func(*Board)

// WithRand sets the random source used for spawning.
// Tests pass a seeded source to make spawns reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) {
		b.rng = rng
	}
}

// New creates an empty board with the given dimensions.
func New(cols, rows int, opts ...Option) (*Board, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}

	b := &Board{cols: cols, rows: rows}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return b, nil
}

// Columns returns the grid width.
func (b *Board) Columns() int {
	return b.cols
}

// Rows returns the grid height.
func (b *Board) Rows() int {
	return b.rows
}

// Score returns the accumulated score. Only spawned tiles add to it.
func (b *Board) Score() int {
	return b.score
}

// Tiles returns a copy of the tiles currently on the board.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// TileAt returns the resting tile occupying the given cell.
func (b *Board) TileAt(col, row int) (Tile, bool) {
	for _, t := range b.tiles {
		if c, r := t.Pos.Cell(); c == col && r == row && !t.Consumed() {
			return t, true
		}
	}
	return Tile{}, false
}

// CanUndo reports whether an undo snapshot is available.
func (b *Board) CanUndo() bool {
	return b.undo != nil
}

// MaxValue returns the highest tile value on the board.
func (b *Board) MaxValue() int {
	maxVal := 0
	for _, t := range b.tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// InitialCount is the number of tiles placed when a game starts.
func (b *Board) InitialCount() int {
	return b.cols * b.rows / 8
}

// SpawnCount is the number of tiles added after every move.
func (b *Board) SpawnCount() int {
	return b.cols * b.rows / 16
}

// EmptyCells returns the cells not occupied by any tile, in column-major order.
func (b *Board) EmptyCells() []Cell {
	occupied := make(map[Cell]bool, len(b.tiles))
	for _, t := range b.tiles {
		col, row := t.Pos.Cell()
		occupied[Cell{col, row}] = true
	}

	cells := make([]Cell, 0, b.cols*b.rows-len(occupied))
	for col := range b.cols {
		for row := range b.rows {
			c := Cell{col, row}
			if !occupied[c] {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// Spawn places count new tiles on random empty cells and credits their
// displayed value to the score. It returns false as soon as a requested
// tile finds no empty cell.
func (b *Board) Spawn(count int) bool {
	empty := b.EmptyCells()
	for range count {
		if len(empty) == 0 {
			return false
		}
		i := b.rng.Intn(len(empty))
		cell := empty[i]
		empty[i] = empty[len(empty)-1]
		empty = empty[:len(empty)-1]

		value := 1
		if b.rng.Float64() >= SpawnLowProb {
			value = 2
		}
		b.tiles = append(b.tiles, NewTile(cell.Col, cell.Row, value))
		b.score += Displayed(value)
	}
	return true
}

// Place puts a tile with the given value on a cell, replacing any tile that
// is already there. It does not touch the score. Used to set up positions.
func (b *Board) Place(col, row, value int) error {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return fmt.Errorf("board: cell (%d, %d) outside %dx%d grid", col, row, b.cols, b.rows)
	}
	b.Remove(col, row)
	if value > 0 {
		b.tiles = append(b.tiles, NewTile(col, row, value))
	}
	return nil
}

// Remove deletes the tile on the given cell, if any.
func (b *Board) Remove(col, row int) {
	kept := b.tiles[:0]
	for _, t := range b.tiles {
		if c, r := t.Pos.Cell(); c == col && r == row {
			continue
		}
		kept = append(kept, t)
	}
	b.tiles = kept
}

// Undo restores the tiles and score saved by the last move.
// It returns false when there is nothing to undo.
func (b *Board) Undo() bool {
	if b.undo == nil {
		return false
	}
	b.tiles = b.undo.tiles
	b.score = b.undo.score
	b.undo = nil
	return true
}

// save records the undo snapshot, overwriting the previous one.
func (b *Board) save() {
	tiles := make([]Tile, len(b.tiles))
	for i, t := range b.tiles {
		t.delta = nil
		tiles[i] = t
	}
	b.undo = &snapshot{tiles: tiles, score: b.score}
}

// HasMoves reports whether any cell is empty or two orthogonally adjacent
// tiles share a value.
func (b *Board) HasMoves() bool {
	grid := make(map[Cell]int, len(b.tiles))
	for _, t := range b.tiles {
		col, row := t.Pos.Cell()
		grid[Cell{col, row}] = t.Value
	}
	if len(grid) < b.cols*b.rows {
		return true
	}
	for col := range b.cols {
		for row := range b.rows {
			v := grid[Cell{col, row}]
			if col < b.cols-1 && grid[Cell{col + 1, row}] == v {
				return true
			}
			if row < b.rows-1 && grid[Cell{col, row + 1}] == v {
				return true
			}
		}
	}
	return false
}

// Grid returns the resting values as rows of columns; 0 marks an empty cell.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.rows)
	for row := range grid {
		grid[row] = make([]int, b.cols)
	}
	for _, t := range b.tiles {
		col, row := t.Pos.Cell()
		if col >= 0 && col < b.cols && row >= 0 && row < b.rows {
			grid[row][col] = t.Value
		}
	}
	return grid
}
