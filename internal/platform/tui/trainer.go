package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/session"
	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/storage"
)

// messageKind selects the style of the feedback line.
type messageKind int

const (
	messageInfo messageKind = iota
	messageSuccess
	messageError
)

// TrainerKeyMap defines the key bindings for the trainer screen.
type TrainerKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Check   key.Binding
	NewGame key.Binding
	Rules   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TrainerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Check, k.NewGame, k.Rules}
}

// FullHelp returns key bindings for the full help view.
func (k TrainerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Select, k.Check},
		{k.NewGame, k.Rules, k.Back, k.Quit},
	}
}

// DefaultTrainerKeyMap returns default key bindings.
func DefaultTrainerKeyMap() TrainerKeyMap {
	return TrainerKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "select/swap"),
		),
		Check: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "check"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Rules: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "rules"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Trainer screen styles.
var (
	trainerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cellCursorStyle = cellStyle.
			BorderForeground(lipgloss.Color("229")).
			Bold(true)

	cellSelectedStyle = cellStyle.
				BorderForeground(lipgloss.Color("57")).
				Background(lipgloss.Color("57")).
				Foreground(lipgloss.Color("229"))

	cellExpectedStyle = cellStyle.
				BorderForeground(lipgloss.Color("196")).
				Foreground(lipgloss.Color("196"))

	cellDoneStyle = cellStyle.
			BorderForeground(lipgloss.Color("42")).
			Foreground(lipgloss.Color("42"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	rulesStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	trainerHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// TrainerModel is the Bubble Tea model for a running training game.
type TrainerModel struct {
	game  *session.Session
	store *storage.Store
	snap  session.Snapshot

	// algorithmID is the requested algorithm; empty means random, so a
	// new game may land on a different algorithm each time.
	algorithmID string

	cursor      int
	message     string
	kind        messageKind
	expected    []int
	showRules   bool
	resultSaved bool

	keys   TrainerKeyMap
	help   help.Model
	width  int
	height int

	quitting   bool
	backToMenu bool
}

// NewTrainerModel creates a trainer model and starts its first game.
func NewTrainerModel(game *session.Session, store *storage.Store, algorithmID string, width, height int) (TrainerModel, error) {
	m := TrainerModel{
		game:        game,
		store:       store,
		algorithmID: algorithmID,
		keys:        DefaultTrainerKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
	}

	res, err := game.StartNewGame(algorithmID)
	if err != nil {
		return m, err
	}

	m.snap = game.Snapshot()
	m.message = fmt.Sprintf("New game: %s with %d elements.", res.Algorithm.Name, len(res.Sequence))
	return m, nil
}

// Init initializes the trainer.
func (m TrainerModel) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages.
func (m TrainerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		// Refresh the duration display while the game runs.
		m.snap = m.game.Snapshot()
		if m.snap.State == session.StatePlaying {
			return m, tickCmd()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m TrainerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.snap.Sequence)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		return m.handleSelect()

	case key.Matches(msg, m.keys.Check):
		if m.game.IsSorted() {
			m.message = "The sequence is sorted."
			m.kind = messageSuccess
		} else {
			m.message = "Not sorted yet. Keep going!"
			m.kind = messageError
		}

	case key.Matches(msg, m.keys.NewGame):
		return m.startNewGame()

	case key.Matches(msg, m.keys.Rules):
		m.showRules = !m.showRules
	}

	return m, nil
}

// handleSelect forwards the cursor position to the session and turns
// the structured result into feedback.
func (m TrainerModel) handleSelect() (tea.Model, tea.Cmd) {
	res := m.game.SelectElement(m.cursor)

	if !res.OK {
		m.message = res.Message
		m.kind = messageError
		m.snap = m.game.Snapshot()
		return m, nil
	}

	switch res.Action {
	case session.ActionSelected, session.ActionDeselected:
		m.message = ""
		m.expected = nil

	case session.ActionSwap:
		move := res.Move
		m.message = move.Message
		if move.Correct {
			m.kind = messageSuccess
			m.expected = nil
		} else {
			m.kind = messageError
			m.expected = move.Expected
		}
	}

	m.snap = m.game.Snapshot()

	// Persist the finished game once.
	if m.snap.State == session.StateCompleted && !m.resultSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save
			m.store.SaveResult(storage.ResultEntry{
				AlgorithmID:    m.snap.Algorithm.ID,
				SequenceLen:    len(m.snap.Sequence),
				TotalMoves:     m.snap.Stats.TotalMoves,
				CorrectMoves:   m.snap.Stats.CorrectMoves,
				IncorrectMoves: m.snap.Stats.IncorrectMoves,
				Efficiency:     m.snap.Stats.Efficiency,
				DurationSecs:   m.snap.Stats.DurationSeconds,
			})
		}
		m.resultSaved = true
	}

	return m, nil
}

// startNewGame resets the session for another round.
func (m TrainerModel) startNewGame() (tea.Model, tea.Cmd) {
	res, err := m.game.StartNewGame(m.algorithmID)
	if err != nil {
		// Unreachable for IDs validated at startup; surface it anyway.
		m.message = err.Error()
		m.kind = messageError
		return m, nil
	}

	m.snap = m.game.Snapshot()
	m.cursor = 0
	m.expected = nil
	m.resultSaved = false
	m.kind = messageInfo
	m.message = fmt.Sprintf("New game: %s with %d elements.", res.Algorithm.Name, len(res.Sequence))
	return m, tickCmd()
}

// View renders the trainer screen.
func (m TrainerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("%s  [%s]", m.snap.Algorithm.Name, m.snap.State)
	b.WriteString(centerText(trainerTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderSequence(), m.width))
	b.WriteString("\n\n")

	// Hint for the next required action
	b.WriteString(centerText(hintStyle.Render("Hint: "+m.snap.Hint), m.width))
	b.WriteString("\n")

	// Feedback from the last action
	if m.message != "" {
		var style lipgloss.Style
		switch m.kind {
		case messageSuccess:
			style = successStyle
		case messageError:
			style = errorStyle
		default:
			style = infoStyle
		}
		b.WriteString(centerText(style.Render(m.message), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(centerText(m.renderProgress(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderStats(), m.width))
	b.WriteString("\n")

	if m.showRules {
		b.WriteString("\n")
		b.WriteString(centerText(m.renderRules(), m.width))
		b.WriteString("\n")
	}

	if m.snap.State == session.StateCompleted {
		b.WriteString("\n")
		done := fmt.Sprintf("Well done! Solved in %d moves with %d%% efficiency. Press N for another round.",
			m.snap.Stats.TotalMoves, m.snap.Stats.Efficiency)
		b.WriteString(centerText(successStyle.Render(done), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(trainerHelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSequence draws the number cells with cursor, selection and
// expected-move highlighting.
func (m TrainerModel) renderSequence() string {
	cells := make([]string, len(m.snap.Sequence))

	for i, v := range m.snap.Sequence {
		style := cellStyle
		switch {
		case m.snap.State == session.StateCompleted:
			style = cellDoneStyle
		case i == m.snap.SelectedIndex:
			style = cellSelectedStyle
		case m.isExpected(i):
			style = cellExpectedStyle
		case i == m.cursor:
			style = cellCursorStyle
		}
		cells[i] = style.Render(fmt.Sprintf("%2d", v))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	// Cursor marker under the current cell
	if m.snap.State == session.StatePlaying {
		marker := strings.Repeat(" ", m.cursor*6+2) + "^"
		row = lipgloss.JoinVertical(lipgloss.Left, row, marker)
	}

	return row
}

// isExpected reports whether index i is one of the positions the plan
// required on the last rejected move.
func (m TrainerModel) isExpected(i int) bool {
	for _, e := range m.expected {
		if e == i {
			return true
		}
	}
	return false
}

// renderProgress draws the step counter and a small progress bar.
func (m TrainerModel) renderProgress() string {
	p := m.snap.Progress

	const barWidth = 20
	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Completed / p.Total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("Step %d/%d  %s  %d%%", p.Completed, p.Total, bar, p.Percentage)
}

// renderStats draws the move counters and timer.
func (m TrainerModel) renderStats() string {
	st := m.snap.Stats
	return fmt.Sprintf("Moves: %d  Correct: %d  Wrong: %d  Efficiency: %d%%  Time: %02d:%02d",
		st.TotalMoves, st.CorrectMoves, st.IncorrectMoves, st.Efficiency,
		st.DurationSeconds/60, st.DurationSeconds%60)
}

// renderRules draws the rules panel for the current algorithm.
func (m TrainerModel) renderRules() string {
	var b strings.Builder
	b.WriteString(m.snap.Algorithm.Name + "\n")
	for i, rule := range m.snap.Algorithm.Rules {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, rule))
	}
	return rulesStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// IsQuitting returns true if user requested to quit entirely.
func (m TrainerModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m TrainerModel) BackToMenu() bool {
	return m.backToMenu
}

// RunTrainer runs a standalone training game in the terminal.
// Returns true if the user asked for the menu rather than quitting.
func RunTrainer(game *session.Session, store *storage.Store, algorithmID string, width, height int) (backToMenu bool, err error) {
	model, err := NewTrainerModel(game, store, algorithmID, width, height)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(TrainerModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
