package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// current room, its exits, and the player's inventory.
func (m Model) renderStatusBar() string {
	room := m.game.CurrentRoom()
	if room == nil {
		return m.styles.statusBar.Width(m.width).Render("")
	}

	var dirs []string
	for _, exit := range room.Exits() {
		name := exit.Direction().String()
		if exit.IsLocked() {
			name += "*"
		}
		dirs = append(dirs, name)
	}
	exitStr := strings.Join(dirs, ",")
	if exitStr == "" {
		exitStr = "none"
	}

	left := fmt.Sprintf(" %s | Exits: %s", room.Identifier().Name(), exitStr)

	items := m.game.Player().Items()
	right := fmt.Sprintf("%s ", m.game.Info().Title)

	// Show inventory item names if they fit, otherwise just the count.
	if len(items) > 0 {
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.Identifier().Name())
		}
		candidate := fmt.Sprintf("Inv: %s ", strings.Join(names, ", "))
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d ", len(items))
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return m.styles.statusBar.Width(m.width).Render(bar)
}
