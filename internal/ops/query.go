package ops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith/deck/internal/model"
)

// Find returns the positions of cards whose tagline contains query,
// compared case-insensitively, in deck order. An empty query matches nothing.
func Find(d *model.Deck, query string) []int {
	matches := []int{}
	if query == "" {
		return matches
	}

	queryLower := strings.ToLower(query)
	for i, c := range d.Proofs {
		if strings.Contains(strings.ToLower(c.Tagline), queryLower) {
			matches = append(matches, i)
		}
	}
	return matches
}

// ResolveCard resolves a card reference to a position. A reference is either
// a 1-based position as shown by `deck list`, or a tagline matched
// case-insensitively. A tagline match takes precedence over a position, so a
// card whose tagline is a number can still be addressed by it.
func ResolveCard(d *model.Deck, ref string) (int, error) {
	if i := d.IndexOf(ref); i >= 0 {
		return i, nil
	}

	if pos, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		if pos < 1 || pos > d.Len() {
			return -1, &model.IndexOutOfRangeError{Index: pos - 1, Len: d.Len()}
		}
		return pos - 1, nil
	}

	return -1, &NotFoundError{Tagline: ref}
}

// NotFoundError indicates no card matched a tagline reference.
type NotFoundError struct {
	Tagline string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("card %q not found", e.Tagline)
}
