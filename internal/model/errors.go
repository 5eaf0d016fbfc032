package model

import "fmt"

// DuplicateTaglineError indicates a tagline already belongs to another card.
type DuplicateTaglineError struct {
	Tagline  string // the rejected tagline
	Existing string // the tagline of the card that already owns it
}

func (e *DuplicateTaglineError) Error() string {
	if e.Existing != "" && e.Existing != e.Tagline {
		return fmt.Sprintf("tagline %q already exists (as %q)", e.Tagline, e.Existing)
	}
	return fmt.Sprintf("tagline %q already exists", e.Tagline)
}

// IndexOutOfRangeError indicates a position that does not address a card.
type IndexOutOfRangeError struct {
	Index int // the requested position
	Len   int // number of cards at the time of the call
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("card index %d out of range (deck has %d cards)", e.Index, e.Len)
}

// ValidationError indicates a rejected field value.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}
