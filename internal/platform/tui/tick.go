// Package tui runs a registered game in the terminal with Bubble Tea: the
// fixed-rate tick loop, key bindings, held-key paddle intent and the
// half-block renderer that maps playfield pixels onto terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// TickMsg is sent to trigger one simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires once after one frame at
// tickRate frames per second. Rates below 1 are treated as 1.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(core.Max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
