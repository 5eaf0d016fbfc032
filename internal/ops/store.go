package ops

import (
	"github.com/jacksmith/deck/internal/model"
)

// Store defines the persistence interface required by business logic operations.
// The concrete implementation is storage.Storage, but this interface allows
// alternative backends for testing.
type Store interface {
	Load(path string) (*model.Deck, error)
	Save(path string, d *model.Deck) error
}
