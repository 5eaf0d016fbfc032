package ops

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/jacksmith/deck/internal/model"
	"github.com/jacksmith/deck/internal/storage"
)

// Session owns one open deck and the path it is saved to.
// Every mutation is applied to the in-memory deck and then saved.
// All methods are safe for concurrent use; calls are serialized so the
// uniqueness and sort invariants hold for service front ends.
type Session struct {
	mu     sync.Mutex
	store  Store
	path   string
	deck   *model.Deck
	logger *slog.Logger
}

// Status summarizes an open session.
type Status struct {
	File     string // base name of the deck file
	Path     string
	Cards    int
	DeckName string
}

// OpenSession loads the deck at path and sorts it.
// When the file exists but cannot be loaded, the session is still returned,
// holding a default deck, together with the *storage.FileReadError.
func OpenSession(store Store, path string) (*Session, error) {
	d, err := store.Load(path)
	var rerr *storage.FileReadError
	if err != nil && !errors.As(err, &rerr) {
		return nil, err
	}
	d.Sort()

	s := &Session{
		store:  store,
		path:   path,
		deck:   d,
		logger: slog.Default().With(slog.String("deck", path)),
	}
	return s, err
}

// NewSession wraps an already loaded deck.
func NewSession(store Store, path string, d *model.Deck) *Session {
	d.Sort()
	return &Session{
		store:  store,
		path:   path,
		deck:   d,
		logger: slog.Default().With(slog.String("deck", path)),
	}
}

// Path returns the file the session saves to.
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Snapshot returns a copy of the current deck.
// Positions in the copy are valid until the next mutation.
func (s *Session) Snapshot() *model.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Clone()
}

// Status returns the file name, card count and deck name.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		File:     filepath.Base(s.path),
		Path:     s.path,
		Cards:    s.deck.Len(),
		DeckName: s.deck.DeckName,
	}
}

// Placement is a card and its position in the sorted deck, taken while the
// session lock is held.
type Placement struct {
	Index int
	Card  model.Card
}

func (s *Session) placementLocked(tagline string) Placement {
	i := s.deck.IndexOf(tagline)
	if i < 0 {
		return Placement{Index: -1}
	}
	return Placement{Index: i, Card: s.deck.Proofs[i]}
}

// AddCard adds a card and saves the deck.
// If only the save fails, the card stays in the deck and the
// *storage.FileWriteError is returned with it.
func (s *Session) AddCard(tagline string) (Placement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.deck.AddCard(tagline)
	if err != nil {
		return Placement{Index: -1}, err
	}
	s.logger.Debug("card added", slog.String("tagline", tagline))
	return s.placementLocked(card.Tagline), s.saveLocked()
}

// RenameCard renames the card at index and saves the deck. It reports
// whether the tagline changed and where the card ended up.
// Nothing is saved when the tagline is unchanged.
func (s *Session) RenameCard(index int, newTagline string) (bool, Placement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := ""
	if index >= 0 && index < s.deck.Len() {
		old = s.deck.Proofs[index].Tagline
	}
	changed, err := s.deck.RenameCard(index, newTagline)
	if err != nil {
		return false, Placement{Index: -1}, err
	}
	if !changed {
		return false, Placement{Index: index, Card: s.deck.Proofs[index]}, nil
	}
	s.logger.Debug("card renamed", slog.String("from", old), slog.String("to", newTagline))
	return true, s.placementLocked(newTagline), s.saveLocked()
}

// DeleteCard removes the card at index and saves the deck.
func (s *Session) DeleteCard(index int) (model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.deck.DeleteCard(index)
	if err != nil {
		return model.Card{}, err
	}
	s.logger.Debug("card deleted", slog.String("tagline", card.Tagline))
	return card, s.saveLocked()
}

// Import merges the import file at path and saves the deck.
func (s *Session) Import(path string) (MergeResult, error) {
	doc, err := ReadImportFile(path)
	if err != nil {
		return MergeResult{}, err
	}
	return s.ImportDocument(doc)
}

// ImportDocument merges an already parsed document and saves the deck.
func (s *Session) ImportDocument(doc *model.ImportDocument) (MergeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := Merge(s.deck, doc)
	s.logger.Debug("import merged",
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped))
	return result, s.saveLocked()
}

// Find returns positions of cards whose tagline contains query.
func (s *Session) Find(query string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Find(s.deck, query)
}

// Save writes the deck to the session path.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// SaveAs writes the deck to path and makes it the session path.
// On failure the session keeps its previous path.
func (s *Session) SaveAs(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(path, s.deck); err != nil {
		return err
	}
	s.logger.Debug("deck saved as", slog.String("path", path))
	s.path = path
	s.logger = slog.Default().With(slog.String("deck", path))
	return nil
}

// Close saves the deck. The session should not be used afterwards.
func (s *Session) Close() error {
	return s.Save()
}

func (s *Session) saveLocked() error {
	if err := s.store.Save(s.path, s.deck); err != nil {
		s.logger.Error("save failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
