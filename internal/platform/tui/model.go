package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// Options configures a Model beyond the runtime config.
type Options struct {
	// ReleaseAfterTicks is how long a movement key counts as held after
	// its last press or auto-repeat. Zero keeps it held until the other
	// direction is pressed.
	ReleaseAfterTicks int

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	intent   *core.PaddleIntent
	input    core.InputFrame
	state    core.GameState
	logger   *log.Logger
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already be Reset.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // last row is the help footer
		renderer: NewRenderer(),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		intent:   core.NewPaddleIntent(opts.ReleaseAfterTicks),
		input:    core.NewInputFrame(),
		state:    game.State(),
		logger:   logger.With("session", uuid.NewString(), "game", game.ID()),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "tick_rate", m.config.TickRate)
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
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", "frame", m.state.Frame, "blocks", m.state.Remaining)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.intent.Press(action)
	case core.ActionPause, core.ActionRestart:
		m.input.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The playfield keeps its pixel size; only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) {
		if err := m.game.Reset(m.config); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.intent.Reset()
		m.state = m.game.State()
		m.input.Clear()
		m.logger.Info("restarted")
		return m, tickCmd(m.config.TickRate)
	}

	wasCleared := m.state.Cleared
	m.input.Intent = m.intent.Direction()
	result := m.game.Step(m.input)
	m.state = result.State
	m.logEvents(result.Events)
	if m.state.Cleared && !wasCleared {
		m.logger.Info("level cleared", "frame", m.state.Frame)
	}

	m.intent.Tick()
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logEvents writes step events to the session logger.
func (m Model) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventBallLost:
			m.logger.Info("ball lost", "frame", m.state.Frame, "blocks", m.state.Remaining)
		case core.EventBlockDestroyed:
			m.logger.Debug(ev.Kind.String(), "frame", m.state.Frame, "index", ev.Index)
		default:
			m.logger.Debug(ev.Kind.String(), "frame", m.state.Frame)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, Frame{
		Title: m.game.Title(),
		Field: m.game.Playfield(),
		State: m.state,
		Items: m.game.Renderables(),
	})

	return m.renderer.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run resets the game and starts the Bubble Tea program.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if err := game.Reset(cfg); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
