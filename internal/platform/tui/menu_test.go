package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", updated)
	}
	return next
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")

	view := m.View()
	for _, title := range []string{"Arkanoid", "Arkanoid (single pass)"} {
		if !strings.Contains(view, title) {
			t.Errorf("View() missing %q", title)
		}
	}
	if !strings.Contains(view, "normal") {
		t.Error("View() should show the default difficulty")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyEasy)

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}) // clamped at the last item
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.Quit {
		t.Fatal("Result().Quit = true after select")
	}
	if res.GameID != "arkanoid_classic" {
		t.Errorf("GameID = %q, expected arkanoid_classic", res.GameID)
	}
	if res.Difficulty != config.DifficultyNormal {
		t.Errorf("Difficulty = %q, expected normal", res.Difficulty)
	}
}

func TestMenuDifficultyBounds(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard)
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if d := m.Result().Difficulty; d != config.DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", d)
	}

	m = NewMenuModel(core.DefaultConfig(), "")
	for range 5 {
		m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if d := m.Result().Difficulty; d != config.DifficultyEasy {
		t.Errorf("Difficulty = %q, expected easy", d)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	m = sendMenu(t, m, runeKey('q'))

	if !m.Result().Quit {
		t.Error("Result().Quit should be true after q")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}
