package api

import "github.com/jacksmith/deck/internal/model"

// TaglineRequest is the body for adding or renaming a card.
type TaglineRequest struct {
	Tagline string `json:"tagline"`
}

// CardItem is a card together with its current position in the deck.
// Positions are zero-based and shift after every mutation.
type CardItem struct {
	Index int `json:"index"`
	model.Card
}

// CardListResponse wraps card listings.
type CardListResponse struct {
	Cards []CardItem `json:"cards"`
	Total int        `json:"total"`
}

// RenameResponse reports the outcome of a rename.
type RenameResponse struct {
	Changed bool     `json:"changed"`
	Card    CardItem `json:"card"`
}

// ImportResponse reports the outcome of an import.
type ImportResponse struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

func cardItems(d *model.Deck, positions []int) []CardItem {
	items := make([]CardItem, 0, len(positions))
	for _, i := range positions {
		items = append(items, CardItem{Index: i, Card: d.Proofs[i]})
	}
	return items
}
