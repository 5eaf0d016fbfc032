// Package tui provides the interactive full-screen deck editor.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/deck/internal/cli"
	"github.com/jacksmith/deck/internal/model"
	"github.com/jacksmith/deck/internal/ops"
	"github.com/jacksmith/deck/internal/storage"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeSearch
	modeImport
	modeConfirmDelete
)

// chrome is the number of lines View uses besides the card list.
const chrome = 6

const helpText = "a add  e edit  d delete  / search  n next  i import  s save  q quit"

// Model is the bubbletea model for the deck editor.
// Every change goes through the session, which saves after each mutation.
type Model struct {
	sess   *ops.Session
	deck   *model.Deck // snapshot shown on screen
	cursor int
	offset int
	width  int
	height int

	mode  mode
	input textinput.Model

	matches  []int
	matchPos int
	query    string

	message string
	isError bool

	quitPending bool
	quitting    bool
}

// New returns a model editing sess.
func New(sess *ops.Session) *Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	return &Model{
		sess:  sess,
		deck:  sess.Snapshot(),
		input: ti,
	}
}

// Run starts the editor in the alternate screen and blocks until it quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// ShowError displays err in the message line.
func (m *Model) ShowError(err error) {
	m.message = err.Error()
	m.isError = true
}

// Cursor returns the position of the selected card.
func (m *Model) Cursor() int {
	return m.cursor
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-20, 10)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateInput(msg)
		}
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" {
		m.quitPending = false
	}

	switch key {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "home", "g":
		m.move(-m.cursor)
	case "end", "G":
		m.move(m.deck.Len())
	case "pgup":
		m.move(-m.listHeight())
	case "pgdown":
		m.move(m.listHeight())

	case "a":
		return m, m.prompt(modeAdd, "", "New tagline")
	case "e", "enter":
		if m.deck.Len() == 0 {
			m.info("Deck is empty")
			return m, nil
		}
		return m, m.prompt(modeEdit, m.deck.Proofs[m.cursor].Tagline, "")
	case "d":
		if m.deck.Len() == 0 {
			m.info("Deck is empty")
			return m, nil
		}
		m.mode = modeConfirmDelete
	case "/":
		return m, m.prompt(modeSearch, m.query, "Search taglines")
	case "n":
		m.nextMatch()
	case "i":
		return m, m.prompt(modeImport, "", "Path to deck file")

	case "s":
		if err := m.sess.Save(); err != nil {
			m.ShowError(err)
			return m, nil
		}
		m.info("Saved " + m.sess.Status().File)

	case "esc":
		m.clearMatches()
		m.info("")

	case "q":
		if err := m.sess.Close(); err != nil && !m.quitPending {
			m.quitPending = true
			m.message = err.Error() + "; press q again to quit without saving"
			m.isError = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	if strings.ToLower(msg.String()) != "y" {
		m.info("Delete cancelled")
		return m, nil
	}

	card, err := m.sess.DeleteCard(m.cursor)
	m.refresh()
	if err != nil {
		m.ShowError(err)
		return m, nil
	}
	m.clearMatches()
	m.info(fmt.Sprintf("Deleted %q", card.Tagline))
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endPrompt()
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		current := m.mode
		m.endPrompt()
		m.submit(current, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(md mode, value string) {
	switch md {
	case modeAdd:
		placed, err := m.sess.AddCard(value)
		m.afterMutation(err, placed.Card.Tagline, fmt.Sprintf("Added %q", placed.Card.Tagline))

	case modeEdit:
		changed, _, err := m.sess.RenameCard(m.cursor, value)
		if err == nil && !changed {
			m.info("Nothing changed")
			return
		}
		m.afterMutation(err, value, fmt.Sprintf("Renamed to %q", value))

	case modeSearch:
		m.search(value)

	case modeImport:
		path := strings.TrimSpace(value)
		if path == "" {
			return
		}
		result, err := m.sess.Import(path)
		m.refresh()
		m.clearMatches()
		if err != nil {
			m.ShowError(err)
			return
		}
		m.info(fmt.Sprintf("Imported: %d | Skipped (duplicate/invalid): %d", result.Added, result.Skipped))
	}
}

// afterMutation refreshes the snapshot and selects tagline. A save failure
// leaves the change applied, so the card is still selected.
func (m *Model) afterMutation(err error, tagline, done string) {
	var werr *storage.FileWriteError
	if err != nil && !errors.As(err, &werr) {
		m.ShowError(err)
		return
	}

	m.refresh()
	m.clearMatches()
	if i := m.deck.IndexOf(tagline); i >= 0 {
		m.cursor = i
		m.scroll()
	}
	if err != nil {
		m.ShowError(err)
		return
	}
	m.info(done)
}

func (m *Model) search(query string) {
	m.query = query
	if strings.TrimSpace(query) == "" {
		m.clearMatches()
		m.info("Enter text to search for")
		return
	}

	m.matches = m.sess.Find(query)
	m.matchPos = 0
	if len(m.matches) == 0 {
		m.info(fmt.Sprintf("No cards match %q", query))
		return
	}
	m.selectMatch()
}

func (m *Model) nextMatch() {
	if len(m.matches) == 0 {
		m.info("No active search")
		return
	}
	m.matchPos = (m.matchPos + 1) % len(m.matches)
	m.selectMatch()
}

func (m *Model) selectMatch() {
	m.cursor = m.matches[m.matchPos]
	m.scroll()
	m.info(fmt.Sprintf("Match %d of %d for %q", m.matchPos+1, len(m.matches), m.query))
}

func (m *Model) clearMatches() {
	m.matches = nil
	m.matchPos = 0
}

func (m *Model) prompt(md mode, value, placeholder string) tea.Cmd {
	m.mode = md
	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) endPrompt() {
	m.mode = modeBrowse
	m.input.Blur()
}

func (m *Model) info(msg string) {
	m.message = msg
	m.isError = false
}

func (m *Model) refresh() {
	m.deck = m.sess.Snapshot()
	if m.cursor >= m.deck.Len() {
		m.cursor = max(m.deck.Len()-1, 0)
	}
	m.scroll()
}

func (m *Model) move(delta int) {
	m.cursor += delta
	if m.cursor >= m.deck.Len() {
		m.cursor = m.deck.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	rows := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) listHeight() int {
	if m.height == 0 {
		return max(m.deck.Len(), 1)
	}
	return max(m.height-chrome, 1)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("deck: " + m.deck.DeckName))
	b.WriteString("\n\n")

	if m.deck.Len() == 0 {
		b.WriteString(emptyStyle.Render("  No cards yet. Press a to add one."))
		b.WriteString("\n")
	}

	matched := make(map[int]bool, len(m.matches))
	for _, i := range m.matches {
		matched[i] = true
	}
	end := min(m.offset+m.listHeight(), m.deck.Len())
	for i := m.offset; i < end; i++ {
		line := m.deck.Proofs[i].Tagline
		if m.width > 4 {
			line = cli.Truncate(line, m.width-4)
		}
		switch {
		case i == m.cursor:
			b.WriteString(cursorStyle.Render("> " + line))
		case matched[i]:
			b.WriteString(matchStyle.Render("  " + line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.mode {
	case modeAdd, modeEdit, modeSearch, modeImport:
		b.WriteString(promptStyle.Render(m.promptLabel()+": ") + m.input.View())
	case modeConfirmDelete:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Delete %q? (y/n)", m.deck.Proofs[m.cursor].Tagline)))
	default:
		if m.isError {
			b.WriteString(errorStyle.Render(m.message))
		} else {
			b.WriteString(infoStyle.Render(m.message))
		}
	}
	b.WriteString("\n")

	b.WriteString(statusBarStyle.Render(cli.FormatStatus(m.sess.Status())))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

func (m *Model) promptLabel() string {
	switch m.mode {
	case modeAdd:
		return "Add"
	case modeEdit:
		return "Edit"
	case modeSearch:
		return "Search"
	case modeImport:
		return "Import"
	}
	return ""
}
