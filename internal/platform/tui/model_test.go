package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

func newTestModel(t *testing.T, opts ...ModelOption) Model {
	t.Helper()
	game, err := t2048.New(t2048.DefaultSettings())
	if err != nil {
		t.Fatalf("t2048.New: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	opts = append([]ModelOption{WithRenderer(lipgloss.NewRenderer(io.Discard))}, opts...)
	m := NewModel(game, cfg, opts...)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelKeyStartsMoveOnTick(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.game.Phase() != board.PhaseIdle {
		t.Fatal("keys are applied on the next tick, not immediately")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.game.Phase() != board.PhaseAnimating {
		t.Errorf("Phase() = %s, want animating", m.game.Phase())
	}
	if m.inputFrame.Has(core.ActionLeft) {
		t.Error("input should be cleared after the tick")
	}

	for range 200 {
		m, _ = update(t, m, TickMsg{})
	}
	if m.game.Phase() != board.PhaseIdle {
		t.Errorf("Phase() = %s, want idle after the move", m.game.Phase())
	}
	if !m.game.Board().CanUndo() {
		t.Error("a completed move should be undoable")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey("r"))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart should be ignored while the game is running")
	}

	m.gameState.GameOver = true
	m, _ = update(t, m, runeKey("r"))
	if !m.inputFrame.Has(core.ActionRestart) {
		t.Fatal("restart should be accepted after game over")
	}

	m, _ = update(t, m, TickMsg{})
	if m.gameState.GameOver {
		t.Error("restart should start a fresh game")
	}
	if n := len(m.game.Board().Tiles()); n != 2 {
		t.Errorf("tiles after restart = %d, want 2", n)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)

	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, want 23 with the short help", m.screen.Height())
	}

	m, _ = update(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Fatal("? should show the full help")
	}
	if m.screen.Height() != 20 {
		t.Errorf("screen height = %d, want 20 with the full help", m.screen.Height())
	}
	if view := m.View(); !strings.Contains(view, "slide up") {
		t.Error("full help should describe the move keys")
	}

	m, _ = update(t, m, runeKey("?"))
	if m.help.ShowAll {
		t.Error("? should toggle the full help off")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	m, _ = update(t, m, TickMsg{})
	if !m.gameState.Paused {
		t.Error("a window that cannot fit the board should pause the game")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("View should ask for a bigger window")
	}

	tiles := len(m.game.Board().Tiles())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, TickMsg{})
	if m.gameState.Paused {
		t.Error("the game should resume once it fits")
	}
	if len(m.game.Board().Tiles()) != tiles {
		t.Error("resizing should keep the board")
	}
	if !strings.Contains(m.View(), "points!") {
		t.Error("View should show the board caption")
	}
}

func TestModelLogsIgnoredKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	m := newTestModel(t, WithLogger(logger))

	update(t, m, runeKey("x"))
	if !strings.Contains(buf.String(), "ignored key") {
		t.Errorf("log = %q, want an ignored key entry", buf.String())
	}
}
