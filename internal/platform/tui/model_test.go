package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

func newTestModel(t *testing.T, releaseAfter int) (Model, *arkanoid.Game) {
	t.Helper()
	g := arkanoid.New(config.DefaultArkanoidConfig())
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return NewModel(g, core.DefaultConfig(), Options{ReleaseAfterTicks: releaseAfter}), g
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", updated)
	}
	return next, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m, _ = send(t, m, TickMsg(time.Now()))
	}
	return m
}

func TestModelHeldKeyReleasesAfterTimeout(t *testing.T) {
	m, g := newTestModel(t, 3)
	paddle := &g.Simulation().World().Paddle

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, 6)

	// Three ticks of movement at speed 4, then the synthetic release
	if paddle.Rect.X != 172 {
		t.Errorf("paddle X = %d, expected 172", paddle.Rect.X)
	}
	if m.State().Frame != 6 {
		t.Errorf("Frame = %d, expected 6", m.State().Frame)
	}
}

func TestModelAutoRepeatKeepsMoving(t *testing.T) {
	m, g := newTestModel(t, 3)
	paddle := &g.Simulation().World().Paddle

	for range 5 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
		m = tick(t, m, 2)
	}

	if paddle.Rect.X != 160-10*4 {
		t.Errorf("paddle X = %d, expected %d", paddle.Rect.X, 160-10*4)
	}
}

func TestModelPause(t *testing.T) {
	m, _ := newTestModel(t, 0)
	m = tick(t, m, 2)

	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m, 5)

	if !m.State().Paused {
		t.Fatal("expected paused state")
	}
	if m.State().Frame != 2 {
		t.Errorf("Frame = %d while paused, expected 2", m.State().Frame)
	}
}

func TestModelRestart(t *testing.T) {
	m, g := newTestModel(t, 0)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, 10)

	m, _ = send(t, m, runeKey('r'))
	m = tick(t, m, 1)

	if m.State().Frame != 0 {
		t.Errorf("Frame = %d after restart, expected 0", m.State().Frame)
	}

	// The held direction is dropped with the old session
	m = tick(t, m, 1)
	if x := g.Simulation().World().Paddle.Rect.X; x != 160 {
		t.Errorf("paddle X = %d after restart, expected 160", x)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, 0)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, 0)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()

	if !strings.Contains(view, "ARKANOID") {
		t.Error("View() should contain the HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should contain the help footer")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 30 {
		t.Errorf("View() has %d lines, expected 30", lines)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, 0)
	short := m.View()

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if m.View() == short {
		t.Error("expanded help should change the view")
	}
}

func TestTickCmd(t *testing.T) {
	for _, rate := range []int{60, 0} {
		if tickCmd(rate) == nil {
			t.Errorf("tickCmd(%d) = nil", rate)
		}
	}
}
