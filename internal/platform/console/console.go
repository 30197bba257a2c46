// Package console plays t2048 on a tcell screen with a blocking move loop:
// every move is animated to completion, frame by frame, before the next key
// is read.
package console

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/t2048/internal/audio"
	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
)

// Name is the renderer name used with --renderer.
const Name = "tcell"

func init() {
	registry.Register(Name, func() registry.Renderer {
		return Renderer{}
	})
}

// Renderer runs sessions on a full tcell screen.
type Renderer struct{}

// Name returns the renderer name.
func (Renderer) Name() string {
	return Name
}

// Description returns a one-line summary.
func (Renderer) Description() string {
	return "tcell screen with a blocking, clock-paced move loop"
}

// Run initializes the terminal and plays until the player quits.
func (Renderer) Run(ctx context.Context, s registry.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	clock := NewFrameClock(s.Runtime.TickRate)
	defer clock.Stop()

	err = NewPlayer(screen, clock, s).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Player owns one game on one screen.
type Player struct {
	screen  tcell.Screen
	drv     *Driver
	game    *t2048.Game
	runtime core.RuntimeConfig
	log     *log.Logger
	chime   *audio.Chime
	events  chan tcell.Event
	over    bool // game-over screen is showing
}

// NewPlayer creates a player for the session. The clock may be nil.
func NewPlayer(screen tcell.Screen, clock *FrameClock, s registry.Session) *Player {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		screen:  screen,
		drv:     NewDriver(screen, clock),
		game:    s.Game,
		runtime: s.Runtime,
		log:     logger,
		chime:   s.Chime,
		events:  make(chan tcell.Event, 100),
	}
}

// Run plays games until the player quits or ctx ends.
func (p *Player) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go p.poll(ctx)

	p.game.Reset(p.runtime)
	for {
		b := p.game.Board()
		p.drv.Idle(b)

		action, err := p.next(ctx)
		if err != nil {
			return err
		}

		switch action {
		case core.ActionQuit:
			return nil
		case core.ActionPause:
			p.drv.paused = !p.drv.paused
			continue
		}
		if p.drv.paused || !p.drv.Fits(b) {
			continue
		}

		if action == core.ActionUndo {
			if !b.Undo() {
				p.log.Debug("nothing to undo")
			}
			continue
		}
		dir, ok := direction(action)
		if !ok {
			continue
		}

		more, err := p.move(ctx, b, dir)
		if err != nil {
			return err
		}
		if more {
			continue
		}

		p.log.Info("no room for new tiles", "score", b.Score(), "max", board.Label(b.MaxValue()))
		if err := b.GameOver(ctx, p.drv, p.game.Settings().Motion); err != nil {
			return err
		}
		p.over = true
		if quit, err := p.awaitRestart(ctx); err != nil || quit {
			return err
		}
		p.over = false
		p.log.Info("restart", "score", b.Score())
		p.runtime.Seed = time.Now().UnixNano()
		p.game.Reset(p.runtime)
	}
}

// move runs one move and chimes when it was celebrated.
func (p *Player) move(ctx context.Context, b *board.Board, dir board.Direction) (bool, error) {
	a, err := board.NewAnimator(b, p.game.Settings().Motion)
	if err != nil {
		return true, err
	}
	more, err := a.Move(ctx, dir, p.chimingDriver())
	if errors.Is(err, board.ErrUnknownDirection) {
		p.log.Warn("move rejected", "direction", dir, "err", err)
		return true, nil
	}
	if text := a.LastResult().Celebration; text != "" {
		p.log.Info("celebration", "text", text, "score", b.Score())
	}
	return more, err
}

// chimingDriver plays the chime on the first celebration frame of a move.
func (p *Player) chimingDriver() board.Driver {
	return &chiming{Driver: p.drv, chime: p.chime}
}

type chiming struct {
	*Driver
	chime  *audio.Chime
	played bool
}

func (c *chiming) Hurray(b *board.Board, text string) error {
	if !c.played {
		c.chime.Play()
		c.played = true
	}
	return c.Driver.Hurray(b, text)
}

// awaitRestart blocks until the player restarts or quits.
func (p *Player) awaitRestart(ctx context.Context) (quit bool, err error) {
	for {
		action, err := p.next(ctx)
		if err != nil {
			return false, err
		}
		switch action {
		case core.ActionRestart:
			return false, nil
		case core.ActionQuit:
			return true, nil
		}
	}
}

// next returns the next bound action. Resize events redraw the screen.
func (p *Player) next(ctx context.Context) (core.Action, error) {
	for {
		select {
		case <-ctx.Done():
			return core.ActionNone, ctx.Err()
		case ev := <-p.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a, ok := Action(ev); ok {
					return a, nil
				}
				p.log.Debug("ignored key", "key", ev.Name())
			case *tcell.EventResize:
				p.screen.Sync()
				if p.over {
					p.drv.GameOver(p.game.Board())
				} else {
					p.drv.Idle(p.game.Board())
				}
			}
		}
	}
}

// poll forwards terminal events until ctx ends or the screen is closed.
func (p *Player) poll(ctx context.Context) {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func direction(a core.Action) (board.Direction, bool) {
	switch a {
	case core.ActionUp:
		return board.DirUp, true
	case core.ActionDown:
		return board.DirDown, true
	case core.ActionLeft:
		return board.DirLeft, true
	case core.ActionRight:
		return board.DirRight, true
	}
	return 0, false
}
