package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/audio"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
)

// Name is the renderer name used with --renderer.
const Name = "bubbletea"

func init() {
	registry.Register(Name, func() registry.Renderer {
		return Renderer{}
	})
}

// Model is the Bubble Tea model for running a t2048 game.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	chime      *audio.Chime
	renderer   *lipgloss.Renderer
	inputFrame core.InputFrame
	gameState  core.GameState
	celebrated bool // celebration was showing on the previous tick
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for ignored keys and session events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithChime plays the chime whenever a celebration starts.
func WithChime(c *audio.Chime) ModelOption {
	return func(m *Model) {
		m.chime = c
	}
}

// WithRenderer sets the lipgloss renderer, for SSH sessions.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *t2048.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight(cfg.ScreenH))
	return m
}

// gameHeight returns the rows left for the game once the help view is drawn.
func (m Model) gameHeight(total int) int {
	helpHeight := 1
	if m.help.ShowAll {
		for _, group := range m.keys.FullHelp() {
			helpHeight = max(helpHeight, len(group))
		}
	}
	return max(total-helpHeight, 0)
}

// gameConfig is the runtime config as the game sees it.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := m.keys.Action(msg)
	if !ok {
		m.logger.Debug("ignored key", "key", msg.String())
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		// Help toggles the full key list, which changes the game's room.
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout resizes the screen buffer and tells the game how much room it has.
// The board survives a resize; the game pauses while it does not fit.
func (m *Model) layout() {
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.game.Resize(cfg.ScreenW, cfg.ScreenH)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.logger.Info("restart", "score", m.gameState.Score)
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.celebrated = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Chime on the first frame of a celebration
	hurray := m.game.Celebrating()
	if hurray != "" && !m.celebrated {
		m.logger.Info("celebration", "text", hurray, "score", m.gameState.Score)
		m.chime.Play()
	}
	m.celebrated = hurray != ""

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.renderer, m.screen) + "\n" + m.help.View(m.keys)
}

// Renderer runs sessions as a full-screen Bubble Tea program.
type Renderer struct{}

// Name returns the renderer name.
func (Renderer) Name() string {
	return Name
}

// Description returns a one-line summary.
func (Renderer) Description() string {
	return "Bubble Tea event loop with lipgloss colors (default)"
}

// Run starts the Bubble Tea program and blocks until the player quits.
func (Renderer) Run(ctx context.Context, s registry.Session) error {
	model := NewModel(s.Game, s.Runtime, WithLogger(s.Logger), WithChime(s.Chime))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
