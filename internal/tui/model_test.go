package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/deck/internal/model"
	"github.com/jacksmith/deck/internal/ops"
	"github.com/jacksmith/deck/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupModel(t *testing.T, taglines ...string) (*Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.txt")
	d := model.NewDeck("Test Deck")
	for _, tl := range taglines {
		_, err := d.AddCard(tl)
		require.NoError(t, err)
	}
	s := storage.New("")
	require.NoError(t, s.Save(path, d))

	sess, err := ops.OpenSession(s, path)
	require.NoError(t, err)
	return New(sess), path
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func savedTaglines(t *testing.T, path string) []string {
	t.Helper()
	d, err := storage.New("").Load(path)
	require.NoError(t, err)
	return d.Taglines()
}

func TestAddCard(t *testing.T) {
	m, path := setupModel(t, "Alpha", "Delta")

	press(m, "a", "Charlie", "enter")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"Alpha", "Charlie", "Delta"}, savedTaglines(t, path))
	assert.Equal(t, 1, m.Cursor(), "new card should be selected")
	assert.Contains(t, m.View(), `Added "Charlie"`)
	assert.Contains(t, m.View(), "File: deck.txt | Cards: 3 | Deck: Test Deck")
}

func TestAddDuplicateShowsError(t *testing.T) {
	m, path := setupModel(t, "Alpha")

	press(m, "a", "ALPHA", "enter")

	assert.True(t, m.isError)
	assert.Contains(t, m.message, "already exists")
	assert.Equal(t, []string{"Alpha"}, savedTaglines(t, path))
}

func TestAddCancelled(t *testing.T) {
	m, path := setupModel(t, "Alpha")

	press(m, "a", "Beta", "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"Alpha"}, savedTaglines(t, path))
}

func TestEditCard(t *testing.T) {
	m, path := setupModel(t, "Alpha", "Beta")

	press(m, "down", "e")
	assert.Equal(t, modeEdit, m.mode)
	assert.Equal(t, "Beta", m.input.Value())

	m.input.SetValue("Aardvark")
	press(m, "enter")

	assert.Equal(t, []string{"Aardvark", "Alpha"}, savedTaglines(t, path))
	assert.Equal(t, 0, m.Cursor(), "renamed card should stay selected after resort")
}

func TestEditUnchanged(t *testing.T) {
	m, _ := setupModel(t, "Alpha")

	press(m, "e", "enter")

	assert.False(t, m.isError)
	assert.Equal(t, "Nothing changed", m.message)
}

func TestDeleteCard(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		m, path := setupModel(t, "Alpha", "Beta", "Gamma")

		press(m, "down", "d")
		assert.Equal(t, modeConfirmDelete, m.mode)
		assert.Contains(t, m.View(), `Delete "Beta"? (y/n)`)

		press(m, "y")
		assert.Equal(t, []string{"Alpha", "Gamma"}, savedTaglines(t, path))
		assert.Equal(t, 1, m.Cursor())
	})

	t.Run("cancelled", func(t *testing.T) {
		m, path := setupModel(t, "Alpha", "Beta")

		press(m, "d", "n")
		assert.Equal(t, modeBrowse, m.mode)
		assert.Equal(t, []string{"Alpha", "Beta"}, savedTaglines(t, path))
		assert.Equal(t, "Delete cancelled", m.message)
	})

	t.Run("last card moves cursor up", func(t *testing.T) {
		m, path := setupModel(t, "Alpha", "Beta")

		press(m, "down", "d", "y")
		assert.Equal(t, []string{"Alpha"}, savedTaglines(t, path))
		assert.Equal(t, 0, m.Cursor())
	})

	t.Run("empty deck", func(t *testing.T) {
		m, _ := setupModel(t)

		press(m, "d")
		assert.Equal(t, modeBrowse, m.mode)
		assert.Equal(t, "Deck is empty", m.message)
	})
}

func TestSearch(t *testing.T) {
	m, _ := setupModel(t, "Alpha", "Beta", "Calypso")

	press(m, "/", "al", "enter")
	assert.Equal(t, []int{0, 2}, m.matches)
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, `Match 1 of 2 for "al"`, m.message)

	press(m, "n")
	assert.Equal(t, 2, m.Cursor())
	assert.Equal(t, `Match 2 of 2 for "al"`, m.message)

	press(m, "n")
	assert.Equal(t, 0, m.Cursor(), "n wraps around")

	press(m, "/")
	m.input.SetValue("zzz")
	press(m, "enter")
	assert.Empty(t, m.matches)
	assert.Equal(t, `No cards match "zzz"`, m.message)

	press(m, "n")
	assert.Equal(t, "No active search", m.message)
}

func TestImport(t *testing.T) {
	m, path := setupModel(t, "Alpha")

	importPath := filepath.Join(t.TempDir(), "other.txt")
	content := `{"proofs": [
		{"content": "Fact", "tagline": "Beta", "cardType": 4},
		{"content": "Fact", "tagline": "alpha"}
	]}`
	require.NoError(t, os.WriteFile(importPath, []byte(content), 0644))

	press(m, "i")
	m.input.SetValue(importPath)
	press(m, "enter")

	assert.False(t, m.isError, m.message)
	assert.Equal(t, "Imported: 1 | Skipped (duplicate/invalid): 1", m.message)
	assert.Equal(t, []string{"Alpha", "Beta"}, savedTaglines(t, path))
}

func TestImportMissingFile(t *testing.T) {
	m, _ := setupModel(t, "Alpha")

	press(m, "i")
	m.input.SetValue(filepath.Join(t.TempDir(), "missing.txt"))
	press(m, "enter")

	assert.True(t, m.isError)
}

func TestNavigation(t *testing.T) {
	m, _ := setupModel(t, "Alpha", "Beta", "Gamma")

	press(m, "up")
	assert.Equal(t, 0, m.Cursor())

	press(m, "down", "down", "down")
	assert.Equal(t, 2, m.Cursor())

	press(m, "g")
	assert.Equal(t, 0, m.Cursor())

	press(m, "G")
	assert.Equal(t, 2, m.Cursor())
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	m, _ := setupModel(t, "A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: chrome + 3})

	press(m, "G")
	assert.Equal(t, 7, m.Cursor())
	assert.Equal(t, 5, m.offset)

	view := m.View()
	assert.Contains(t, view, "A8")
	assert.NotContains(t, view, "A1")
}

func TestQuitSaves(t *testing.T) {
	m, path := setupModel(t, "Alpha")
	require.NoError(t, os.Remove(path))

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, []string{"Alpha"}, savedTaglines(t, path))
	assert.Equal(t, "", m.View())
}

// failingStore loads like storage.Storage but refuses every save.
type failingStore struct {
	*storage.Storage
}

func (f failingStore) Save(path string, d *model.Deck) error {
	return &storage.FileWriteError{Path: path, Err: errors.New("read-only file system")}
}

func TestSaveFailureKeepsChange(t *testing.T) {
	sess := ops.NewSession(failingStore{storage.New("")}, "deck.txt", model.NewDeck("Test Deck"))
	m := New(sess)

	press(m, "a", "Alpha", "enter")
	assert.True(t, m.isError)
	assert.Contains(t, m.message, "failed to save deck")
	assert.Equal(t, []string{"Alpha"}, m.deck.Taglines())

	cmd := press(m, "q")
	assert.Nil(t, cmd, "first quit should warn instead of exiting")
	assert.Contains(t, m.message, "press q again")

	cmd = press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
