package model

import (
	"sort"
	"strings"
)

// Sort orders cards ascending by case-insensitive tagline.
// Cards with equal keys keep their relative order.
func (d *Deck) Sort() {
	sort.SliceStable(d.Proofs, func(i, j int) bool {
		return TaglineKey(d.Proofs[i].Tagline) < TaglineKey(d.Proofs[j].Tagline)
	})
}

// IsSorted reports whether cards are in tagline order.
func (d *Deck) IsSorted() bool {
	return sort.SliceIsSorted(d.Proofs, func(i, j int) bool {
		return TaglineKey(d.Proofs[i].Tagline) < TaglineKey(d.Proofs[j].Tagline)
	})
}

// IndexOf returns the position of the card whose tagline matches
// case-insensitively, or -1.
func (d *Deck) IndexOf(tagline string) int {
	key := TaglineKey(tagline)
	for i, c := range d.Proofs {
		if TaglineKey(c.Tagline) == key {
			return i
		}
	}
	return -1
}

// TaglineSet returns the comparison keys of all taglines in the deck.
func (d *Deck) TaglineSet() map[string]bool {
	set := make(map[string]bool, len(d.Proofs))
	for _, c := range d.Proofs {
		set[TaglineKey(c.Tagline)] = true
	}
	return set
}

// AddCard inserts a new fact card and restores sort order.
// The tagline is stored verbatim.
func (d *Deck) AddCard(tagline string) (Card, error) {
	if err := validateTagline(tagline); err != nil {
		return Card{}, err
	}
	if i := d.IndexOf(tagline); i >= 0 {
		return Card{}, &DuplicateTaglineError{Tagline: tagline, Existing: d.Proofs[i].Tagline}
	}

	card := NewFactCard(tagline, DefaultCardType)
	d.Proofs = append(d.Proofs, card)
	d.Sort()
	return card, nil
}

// RenameCard changes the tagline of the card at index and restores sort
// order, so the card's position may change. Returns false without error
// when newTagline equals the current tagline.
func (d *Deck) RenameCard(index int, newTagline string) (bool, error) {
	if err := d.checkIndex(index); err != nil {
		return false, err
	}
	if d.Proofs[index].Tagline == newTagline {
		return false, nil
	}
	if err := validateTagline(newTagline); err != nil {
		return false, err
	}

	key := TaglineKey(newTagline)
	for i, c := range d.Proofs {
		if i != index && TaglineKey(c.Tagline) == key {
			return false, &DuplicateTaglineError{Tagline: newTagline, Existing: c.Tagline}
		}
	}

	d.Proofs[index].Tagline = newTagline
	d.Sort()
	return true, nil
}

// DeleteCard removes and returns the card at index.
func (d *Deck) DeleteCard(index int) (Card, error) {
	if err := d.checkIndex(index); err != nil {
		return Card{}, err
	}
	card := d.Proofs[index]
	d.Proofs = append(d.Proofs[:index], d.Proofs[index+1:]...)
	return card, nil
}

func (d *Deck) checkIndex(index int) error {
	if index < 0 || index >= len(d.Proofs) {
		return &IndexOutOfRangeError{Index: index, Len: len(d.Proofs)}
	}
	return nil
}

func validateTagline(tagline string) error {
	if strings.TrimSpace(tagline) == "" {
		return &ValidationError{Field: "tagline", Message: "must not be empty"}
	}
	return nil
}
