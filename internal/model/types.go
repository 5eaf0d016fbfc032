// Package model defines the core data structures for deck.
package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// FactContent is the canonical content of every stored card.
	FactContent = "Fact"

	// DefaultCardType is used when a card is created without an explicit type.
	DefaultCardType = 3

	// DefaultDeckName is the name given to freshly created decks.
	DefaultDeckName = "Superhumans"
)

// Card represents a single proof in a deck.
type Card struct {
	Content  string `json:"content"`
	Tagline  string `json:"tagline"`
	CardType int    `json:"cardType"`
}

// Validate checks that the card carries a usable tagline.
// Content is not checked here: constructors always write FactContent, and
// decks on disk are accepted as written.
func (c Card) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Tagline, validation.Required, validation.By(notBlank)),
	)
}

// Deck is the root document of a deck file.
type Deck struct {
	DeckName string `json:"deckName"`
	// IsValid is carried through load and save but never interpreted.
	IsValid bool   `json:"isValid"`
	Proofs  []Card `json:"proofs"`
}

// Validate checks every card in the deck.
func (d *Deck) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Proofs),
	)
}

// NewDeck returns a fresh, empty deck with the given name.
// An empty name falls back to DefaultDeckName.
func NewDeck(name string) *Deck {
	if name == "" {
		name = DefaultDeckName
	}
	return &Deck{
		DeckName: name,
		IsValid:  true,
		Proofs:   []Card{},
	}
}

// NewFactCard builds a card with canonical content.
// A cardType of 0 means "use default".
func NewFactCard(tagline string, cardType int) Card {
	if cardType == 0 {
		cardType = DefaultCardType
	}
	return Card{
		Content:  FactContent,
		Tagline:  tagline,
		CardType: cardType,
	}
}

// NormalizeContent maps any case variant of FactContent to FactContent.
// The second return value reports whether content is a fact at all.
func NormalizeContent(content string) (string, bool) {
	if strings.EqualFold(content, FactContent) {
		return FactContent, true
	}
	return content, false
}

// TaglineKey returns the comparison key for a tagline.
func TaglineKey(tagline string) string {
	return strings.ToLower(tagline)
}

// Clone returns a deep copy of the deck.
func (d *Deck) Clone() *Deck {
	c := *d
	c.Proofs = make([]Card, len(d.Proofs))
	copy(c.Proofs, d.Proofs)
	return &c
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.Proofs)
}

// Taglines returns the taglines of all cards in deck order.
func (d *Deck) Taglines() []string {
	out := make([]string, len(d.Proofs))
	for i, c := range d.Proofs {
		out[i] = c.Tagline
	}
	return out
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "must not be blank")
	}
	return nil
}
