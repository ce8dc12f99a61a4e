package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles bundles the lipgloss styles used by the TUI. A zero-value
// style renders plain text, which is what --no-color produces.
type styles struct {
	statusBar   lipgloss.Style
	inputPrompt lipgloss.Style
	narrative   lipgloss.Style
	youSee      lipgloss.Style
	exits       lipgloss.Style
	dialogue    lipgloss.Style
	system      lipgloss.Style
	errorLine   lipgloss.Style
	playerInput lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		return styles{
			statusBar: lipgloss.NewStyle().Reverse(true),
		}
	}
	return styles{
		statusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true),
		inputPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		narrative:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		youSee:      lipgloss.NewStyle().Bold(true),
		exits:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		dialogue:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		system:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		errorLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		playerInput: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	}
}

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindYouSee
	kindExits
	kindDialogue
	kindSystem
	kindError
	kindInput
)

// classifyRoomLine styles the lines produced by a room description.
func classifyRoomLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "You see:"):
		return kindYouSee
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	default:
		return kindNarrative
	}
}

// render applies the style for a given lineKind.
func (s styles) render(line string, kind lineKind) string {
	switch kind {
	case kindYouSee:
		return s.renderYouSee(line)
	case kindExits:
		return s.exits.Render(line)
	case kindDialogue:
		return s.dialogue.Render(line)
	case kindSystem:
		return s.system.Render(line)
	case kindError:
		return s.errorLine.Render(line)
	case kindInput:
		return s.playerInput.Render(line)
	default:
		return s.narrative.Render(line)
	}
}

// renderYouSee renders "You see: ..." with the listing in bold.
func (s styles) renderYouSee(line string) string {
	const prefix = "You see: "
	if !strings.HasPrefix(line, prefix) {
		return s.narrative.Render(line)
	}
	return s.narrative.Render(prefix) + s.youSee.Render(line[len(prefix):])
}
