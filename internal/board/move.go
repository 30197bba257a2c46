package board

import (
	"cmp"
	"fmt"
	"slices"
)

// Direction is the way tiles slide.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// MoveResult is the outcome of a settled move.
type MoveResult struct {
	// Celebration is the overlay text for a large merge, or "".
	Celebration string
	// Spawned is false when a new tile found no empty cell.
	Spawned bool
}

// Resolve starts a move: it saves the undo snapshot and assigns every tile
// its target cell and value. Nothing moves until Advance is called.
//
// Lines run perpendicular to the direction and are scanned from the edge the
// tiles slide toward. A tile equal to the previous survivor merges into it,
// and the survivor can take part in no further merge during this move.
func (b *Board) Resolve(dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownDirection, dir)
	}

	b.save()

	for _, line := range b.lines(dir) {
		survivor := -1
		index := 0
		for _, i := range line {
			tile := &b.tiles[i]
			if survivor >= 0 && b.tiles[survivor].Value == tile.Value {
				tile.Target = b.tiles[survivor].Target
				b.tiles[survivor].TargetValue++
				tile.TargetValue = 0
				survivor = -1
				continue
			}
			tile.Target = b.slot(dir, tile, index)
			survivor = i
			index++
		}
	}
	return nil
}

// lines groups tile indexes into the rows or columns a move collapses,
// each ordered from the leading edge.
func (b *Board) lines(dir Direction) [][]int {
	vertical := dir == DirUp || dir == DirDown
	reverse := dir == DirDown || dir == DirRight

	count := b.rows
	if vertical {
		count = b.cols
	}
	lines := make([][]int, count)

	for i, t := range b.tiles {
		col, row := t.Pos.Cell()
		key := row
		if vertical {
			key = col
		}
		if key < 0 || key >= count {
			continue
		}
		lines[key] = append(lines[key], i)
	}

	along := func(i int) float64 {
		if vertical {
			return b.tiles[i].Pos.Y
		}
		return b.tiles[i].Pos.X
	}
	for _, line := range lines {
		slices.SortStableFunc(line, func(a, c int) int {
			if reverse {
				return cmp.Compare(along(c), along(a))
			}
			return cmp.Compare(along(a), along(c))
		})
	}
	return lines
}

// slot returns the index-th compacted cell of the tile's line, counted from
// the edge the move slides toward.
func (b *Board) slot(dir Direction, t *Tile, index int) Point {
	col, row := t.Pos.Cell()
	switch dir {
	case DirUp:
		return Pt(col, index)
	case DirDown:
		return Pt(col, b.rows-1-index)
	case DirLeft:
		return Pt(index, row)
	default:
		return Pt(b.cols-1-index, row)
	}
}

// Advance moves every tile one frame toward its target and reports whether
// all of them have settled. Every tile is advanced on each call, even after
// one of them reports it is still moving.
func (b *Board) Advance(speed float64) bool {
	settled := true
	for i := range b.tiles {
		if !b.tiles[i].Advance(speed) {
			settled = false
		}
	}
	return settled
}

// Finalize applies pending merges and drops consumed tiles. It returns the
// celebration text when a merge credit exceeds CelebrationThreshold.
func (b *Board) Finalize() string {
	var hurray string
	for i := range b.tiles {
		if credit := b.tiles[i].Finalize(); credit > CelebrationThreshold {
			hurray = "Hurray! " + b.tiles[i].Label()
		}
	}

	kept := b.tiles[:0]
	for _, t := range b.tiles {
		if t.Value != 0 {
			kept = append(kept, t)
		}
	}
	b.tiles = kept
	return hurray
}

// BeginExit sends every tile below the bottom edge for the game-over slide.
func (b *Board) BeginExit() {
	for i := range b.tiles {
		b.tiles[i].Target = Point{X: b.tiles[i].Pos.X, Y: float64(b.rows + 1)}
		b.tiles[i].delta = nil
	}
}
