// Package tui provides the Bubble Tea presentation layer for the
// sorting trainer. It renders the session state, maps key presses to
// core operations and persists finished games; all game decisions are
// made by the session, never here.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg refreshes the elapsed-time display once per second while a
// game is running. Purely cosmetic; the session computes the
// authoritative duration on demand.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
