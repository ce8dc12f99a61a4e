package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/fablecore/config"
	"github.com/nathoo/fablecore/engine"
	"github.com/nathoo/fablecore/types"
)

// GameFactory builds a fresh game. It is called once at startup and
// again whenever the player asks for a new game.
type GameFactory func() (*engine.Game, error)

// rawLine stores an unstyled output line with its classification, so
// the transcript can be re-wrapped and re-styled on terminal resize.
type rawLine struct {
	text string
	kind lineKind
}

// Model is the Bubble Tea model for the FableCore TUI.
type Model struct {
	factory GameFactory
	game    *engine.Game

	viewport viewport.Model
	input    textinput.Model
	history  *History
	styles   styles

	rawLines []rawLine // accumulated transcript (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a TUI model, building the first game from the factory.
func New(factory GameFactory, opts config.Options) (Model, error) {
	game, err := factory()
	if err != nil {
		return Model{}, err
	}

	st := newStyles(opts.NoColor)

	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = st.inputPrompt

	return Model{
		factory: factory,
		game:    game,
		input:   ti,
		history: NewHistory(100),
		styles:  st,
	}, nil
}

// Run starts the Bubble Tea program.
func Run(factory GameFactory, opts config.Options) error {
	m, err := New(factory, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// Init seeds the transcript with the intro and the opening room.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return introMsg{}
	})
}

type introMsg struct{}

// Update handles messages (key presses, window resize, intro).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case introMsg:
		m = m.appendIntro()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter runs the submitted input through the game.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	alreadyOver := m.game.HasEnded()
	inConversation := m.game.ActiveConverser() != nil

	reaction := m.game.Execute(input)
	m = m.appendTurn(input, reaction, inConversation)

	if m.game.NewRequested() {
		game, err := m.factory()
		if err != nil {
			m = m.appendLines([]string{err.Error()}, kindError)
			m.refreshViewport()
			return m, nil
		}
		m.game = game
		m = m.appendIntro()
		return m, nil
	}

	if m.game.HasEnded() && !alreadyOver {
		m = m.appendEnd()
	}

	return m, nil
}

// appendIntro adds the title block and the opening room description.
func (m Model) appendIntro() Model {
	info := m.game.Info()

	var lines []string
	title := info.Title
	if info.Author != "" {
		title += " by " + info.Author
	}
	lines = append(lines, title)
	if info.Description != "" {
		lines = append(lines, "", info.Description)
	}
	m = m.appendLines(lines, kindNarrative)
	m = m.appendRoom()
	m.rawLines = append(m.rawLines, rawLine{})
	m.refreshViewport()
	return m
}

// appendTurn echoes the input and renders the reaction.
func (m Model) appendTurn(input string, reaction types.Reaction, inConversation bool) Model {
	m.rawLines = append(m.rawLines, rawLine{text: m.input.Prompt + input, kind: kindInput})

	kind := kindNarrative
	switch reaction.Result {
	case types.Error:
		kind = kindError
	case types.None:
		kind = kindSystem
	case types.Internal:
		if inConversation || m.game.ActiveConverser() != nil {
			kind = kindDialogue
		}
	}

	if reaction.Description != "" {
		m = m.appendLines(strings.Split(reaction.Description, "\n"), kind)
	}

	if reaction.Result == types.OK && !m.game.HasEnded() {
		m.rawLines = append(m.rawLines, rawLine{})
		m = m.appendRoom()
	}

	m.rawLines = append(m.rawLines, rawLine{})
	m.refreshViewport()
	return m
}

// appendRoom adds the current room description to the transcript.
func (m Model) appendRoom() Model {
	for _, line := range engine.DescribeRoom(m.game) {
		for _, part := range strings.Split(line, "\n") {
			m.rawLines = append(m.rawLines, rawLine{text: part, kind: classifyRoomLine(part)})
		}
	}
	return m
}

// appendEnd adds the terminal state and a parting hint.
func (m Model) appendEnd() Model {
	if end, ok := m.game.EndState(); ok {
		m = m.appendLines([]string{end.Title}, kindYouSee)
		if end.Description != "" {
			m = m.appendLines(strings.Split(end.Description, "\n"), kindNarrative)
		}
	}
	m = m.appendLines([]string{`Type "new" to start over, or press Esc to leave.`}, kindSystem)
	m.rawLines = append(m.rawLines, rawLine{})
	m.refreshViewport()
	return m
}

func (m Model) appendLines(lines []string, kind lineKind) Model {
	for _, line := range lines {
		m.rawLines = append(m.rawLines, rawLine{text: line, kind: kind})
	}
	return m
}

// refreshViewport re-wraps and re-styles the transcript at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	styled := make([]string, 0, len(m.rawLines))
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}
		styled = append(styled, m.styles.render(wordWrap(rl.text, width), rl.kind))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to the given width at word boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		wLen := len(word)
		switch {
		case i == 0:
			result.WriteString(word)
			lineLen = wLen
		case lineLen+1+wLen > width:
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		default:
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}
	return result.String()
}

// View renders the full layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled,
// those keys drive the input history instead.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
