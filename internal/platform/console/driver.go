package console

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// FrameClock paces the blocking move loop at a fixed frame rate.
type FrameClock struct {
	ticker *time.Ticker
}

// NewFrameClock starts a clock ticking fps times per second.
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = core.DefaultConfig().TickRate
	}
	return &FrameClock{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait blocks until the next frame slot.
func (c *FrameClock) Wait() {
	<-c.ticker.C
}

// Stop releases the clock.
func (c *FrameClock) Stop() {
	c.ticker.Stop()
}

// Driver draws boards on a tcell screen. It implements board.Driver; each
// animated frame waits for the clock. A nil clock draws as fast as it can.
type Driver struct {
	screen tcell.Screen
	buf    *core.Screen
	clock  *FrameClock
	paused bool
}

// NewDriver creates a driver for the screen.
func NewDriver(screen tcell.Screen, clock *FrameClock) *Driver {
	w, h := screen.Size()
	return &Driver{screen: screen, buf: core.NewScreen(w, h), clock: clock}
}

// Draw shows one animation frame.
func (d *Driver) Draw(b *board.Board) error {
	d.frame(t2048.View{Board: b})
	d.wait()
	return nil
}

// Hurray shows one frame of the celebration overlay.
func (d *Driver) Hurray(b *board.Board, text string) error {
	d.frame(t2048.View{Board: b, Hurray: text})
	d.wait()
	return nil
}

// GameOver shows the final screen. It does not wait; the caller waits for
// the player to restart or quit.
func (d *Driver) GameOver(b *board.Board) error {
	d.frame(t2048.View{Board: b, GameOver: true})
	return nil
}

// Idle redraws a settled board between moves.
func (d *Driver) Idle(b *board.Board) {
	d.frame(t2048.View{Board: b, Paused: d.paused})
}

// Fits reports whether the board fits the current screen.
func (d *Driver) Fits(b *board.Board) bool {
	w, h := d.screen.Size()
	minW, minH := t2048.FrameSize(b.Columns(), b.Rows())
	return w >= minW && h >= minH
}

func (d *Driver) wait() {
	if d.clock != nil {
		d.clock.Wait()
	}
}

// frame renders the view into the buffer and copies it to the terminal.
func (d *Driver) frame(v t2048.View) {
	w, h := d.screen.Size()
	d.buf.Resize(w, h)

	if v.Board != nil && !d.Fits(v.Board) {
		d.buf.Clear()
		minW, minH := t2048.FrameSize(v.Board.Columns(), v.Board.Rows())
		d.buf.DrawTextCentered(h/2, "Window too small")
		d.buf.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d, please resize terminal", minW, minH))
	} else {
		t2048.Draw(d.buf, v)
	}

	d.blit()
	d.screen.Show()
}

func (d *Driver) blit() {
	for y := range d.buf.Height() {
		for x := range d.buf.Width() {
			c := d.buf.GetCell(x, y)
			d.screen.SetContent(x, y, c.Rune, nil, Style(c.Fg, c.Bg))
		}
	}
}

// Style converts buffer colors to a tcell style. Default colors keep the
// terminal's own.
func Style(fg, bg core.Color) tcell.Style {
	style := tcell.StyleDefault
	if !fg.IsDefault() {
		style = style.Foreground(rgb(fg))
	}
	if !bg.IsDefault() {
		style = style.Background(rgb(bg))
	}
	return style
}

func rgb(c core.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
