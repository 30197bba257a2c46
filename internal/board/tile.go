package board

import (
	"math"
	"strconv"
)

// Point is a (column, row) position on the grid. Components are whole numbers
// while a tile rests and fractional while it slides.
type Point struct {
	X, Y float64
}

// Pt creates a point from integer grid coordinates.
func Pt(col, row int) Point {
	return Point{X: float64(col), Y: float64(row)}
}

// Cell returns the grid cell nearest to the point.
func (p Point) Cell() (col, row int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Tile is a numbered piece on the board.
//
// Value is a logarithmic rank: the displayed number is 2^Value. Target and
// TargetValue hold the outcome of the move being animated; at rest they equal
// Pos and Value. A tile whose TargetValue is 0 was consumed by a merge and is
// dropped once it settles.
type Tile struct {
	Pos         Point
	Target      Point
	Value       int
	TargetValue int

	delta *Point // per-frame step, set on the first Advance of a move
}

// NewTile creates a resting tile.
func NewTile(col, row, value int) Tile {
	p := Pt(col, row)
	return Tile{Pos: p, Target: p, Value: value, TargetValue: value}
}

// Advance moves the tile one frame toward its target at the given speed.
// It snaps onto the target when less than one step remains and returns true
// once the tile has settled.
func (t *Tile) Advance(speed float64) bool {
	if t.Pos == t.Target {
		t.delta = nil
		return true
	}

	if t.delta == nil {
		t.delta = &Point{
			X: speed * sign(t.Target.X-t.Pos.X),
			Y: speed * sign(t.Target.Y-t.Pos.Y),
		}
	}

	remaining := math.Abs(t.Target.X-t.Pos.X) + math.Abs(t.Target.Y-t.Pos.Y)
	if remaining < speed {
		t.Pos = t.Target
		t.delta = nil
		return true
	}

	t.Pos.X += t.delta.X
	t.Pos.Y += t.delta.Y
	return false
}

// Settled reports whether the tile is at rest.
func (t Tile) Settled() bool {
	return t.Pos == t.Target && t.delta == nil
}

// Merging reports whether the tile's value changes when the move settles.
func (t Tile) Merging() bool {
	return t.Value != t.TargetValue
}

// Consumed reports whether the tile disappears at the end of the move.
func (t Tile) Consumed() bool {
	return t.TargetValue == 0
}

// Finalize applies the pending value change. For a surviving tile it returns
// the displayed value of each merged half, 2^(Value-1); it returns 0 when the
// value did not change or the tile was consumed.
func (t *Tile) Finalize() int {
	if t.Value == t.TargetValue {
		return 0
	}
	t.Value = t.TargetValue
	if t.Value == 0 {
		return 0
	}
	return 1 << (t.Value - 1)
}

// Label returns the displayed number with a magnitude suffix:
// 2, 4, ... 512, then 1k, 2k, ... 512k, 1M and so on.
func (t Tile) Label() string {
	return Label(t.Value)
}

// Label formats 2^value with a k/M/G suffix for values of 10, 20 and 30 up.
func Label(value int) string {
	if value <= 0 {
		return ""
	}
	prefix, p := value/10, value%10
	var suffix string
	switch prefix {
	case 0:
	case 1:
		suffix = "k"
	case 2:
		suffix = "M"
	case 3:
		suffix = "G"
	default:
		// Past G there is no short suffix left; show the exponent.
		return "2^" + strconv.Itoa(value)
	}
	return strconv.Itoa(1<<p) + suffix
}

// Displayed returns 2^value, the number the player sees.
func Displayed(value int) int {
	if value <= 0 {
		return 0
	}
	return 1 << value
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
