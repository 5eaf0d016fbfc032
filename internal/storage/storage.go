// Package storage provides file system operations for deck files.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/deck/internal/model"
)

// FileReadError indicates a deck file exists but could not be loaded.
// Load returns it together with a fresh default deck.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to load deck %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// FileWriteError indicates a deck could not be written.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to save deck %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

// Storage reads and writes deck files.
type Storage struct {
	deckName string // name given to fresh default decks
}

// New returns a Storage whose default decks carry the given name.
// An empty name uses model.DefaultDeckName.
func New(deckName string) *Storage {
	if deckName == "" {
		deckName = model.DefaultDeckName
	}
	return &Storage{deckName: deckName}
}

// DefaultDeck returns a fresh, empty deck.
func (s *Storage) DefaultDeck() *model.Deck {
	return model.NewDeck(s.deckName)
}

// Load reads the deck at path.
// A missing file yields a default deck and no error; the file is not created.
// An unreadable or corrupt file yields a default deck and a *FileReadError;
// the file itself is left untouched.
func (s *Storage) Load(path string) (*model.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.DefaultDeck(), nil
		}
		return s.DefaultDeck(), &FileReadError{Path: path, Err: err}
	}

	d, err := model.ParseDeck(data)
	if err != nil {
		return s.DefaultDeck(), &FileReadError{Path: path, Err: err}
	}
	return d, nil
}

// Save writes the deck to path atomically: temp file, fsync, rename.
// Any failure is returned as a *FileWriteError and the target is left as it was.
func (s *Storage) Save(path string, d *model.Deck) error {
	data, err := model.EncodeDeck(d)
	if err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	if err := writeAtomic(path, data); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	return nil
}

// Create writes a fresh default deck to path.
// Returns error if the file already exists and force is false.
func (s *Storage) Create(path string, force bool) (*model.Deck, error) {
	if !force && Exists(path) {
		return nil, fmt.Errorf("%s already exists", path)
	}

	d := s.DefaultDeck()
	if err := s.Save(path, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Exists reports whether a file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".deck-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	success = true
	return nil
}
