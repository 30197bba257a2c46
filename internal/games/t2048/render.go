package t2048

import (
	"fmt"
	"math"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/core"
)

const (
	tileWidth  = 7 // Width of a tile in characters
	tileHeight = 3 // Height of a tile in characters
	gapX       = 2 // Horizontal border between tiles
	gapY       = 1 // Vertical border between tiles
	hudHeight  = 1 // Caption line above the board
)

// View is everything a frame shows.
type View struct {
	Board    *board.Board
	Hurray   string // celebration overlay text, "" when hidden
	GameOver bool
	Paused   bool
}

// BoardSize returns the size in characters of a grid with the given
// dimensions, borders included.
func BoardSize(cols, rows int) (w, h int) {
	return gapX + cols*(tileWidth+gapX), gapY + rows*(tileHeight+gapY)
}

// FrameSize returns the screen size needed to show the board and caption.
func FrameSize(cols, rows int) (w, h int) {
	w, h = BoardSize(cols, rows)
	return w, h + hudHeight
}

// Draw renders one frame of the view into dst. The board is centered
// horizontally below the caption line.
func Draw(dst *core.Screen, v View) {
	dst.Clear()
	if v.Board == nil {
		return
	}

	b := v.Board
	w, h := BoardSize(b.Columns(), b.Rows())
	area := core.NewRect(core.Max((dst.Width()-w)/2, 0), hudHeight, w, h)

	caption := fmt.Sprintf("2048  %d points!", b.Score())
	if !v.GameOver && !b.HasMoves() {
		caption += "  No moves left"
	}
	dst.DrawTextColor(area.X+(w-len(caption))/2, 0, caption, core.ColorNumber, core.ColorDefault)

	dst.FillRect(area, ' ', core.ColorDefault, core.ColorBackground)
	for col := range b.Columns() {
		for row := range b.Rows() {
			dst.FillRect(cellRect(area, float64(col), float64(row)), ' ', core.ColorDefault, core.ColorEmpty)
		}
	}

	for _, t := range b.Tiles() {
		drawTile(dst, area, t)
	}

	switch {
	case v.GameOver:
		drawOverlay(dst, area, core.ColorNumber, "Game Over!")
	case v.Hurray != "":
		drawOverlay(dst, area, core.ColorHurray, v.Hurray)
	case v.Paused:
		drawOverlay(dst, area, core.ColorNumber, "PAUSED", "Press P to resume")
	}
}

// cellRect returns the screen rectangle of a tile at a possibly fractional
// grid position.
func cellRect(area core.Rect, col, row float64) core.Rect {
	x := area.X + gapX + int(math.Round(col*float64(tileWidth+gapX)))
	y := area.Y + gapY + int(math.Round(row*float64(tileHeight+gapY)))
	return core.NewRect(x, y, tileWidth, tileHeight)
}

// drawTile paints a tile clipped to the board area. A tile that is about to
// merge is drawn one border wider on each side.
func drawTile(dst *core.Screen, area core.Rect, t board.Tile) {
	r := cellRect(area, t.Pos.X, t.Pos.Y)
	label := t.Label()
	labelX := r.X + (tileWidth-len(label))/2
	labelY := r.Y + tileHeight/2

	if t.Merging() {
		r = core.NewRect(r.X-gapX/2, r.Y-gapY/2, r.W+gapX/2*2, r.H+gapY/2*2)
	}

	clip := r.Intersect(area)
	if clip.Empty() {
		return
	}
	bg := TileColor(t.Value)
	dst.FillRect(clip, ' ', core.ColorNumber, bg)

	if labelY < clip.Y || labelY >= clip.Bottom() {
		return
	}
	for i, ch := range label {
		if x := labelX + i; x >= clip.X && x < clip.Right() {
			dst.SetCell(x, labelY, core.Cell{Rune: ch, Fg: core.ColorNumber, Bg: bg})
		}
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, area core.Rect, fg core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	centerX, centerY := area.Center()
	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	dst.FillRect(box, ' ', fg, core.ColorBackground)
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, fg, core.ColorBackground)
	}
}
