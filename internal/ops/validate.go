package ops

import (
	"fmt"

	"github.com/jacksmith/deck/internal/model"
)

// IssueType represents the kind of deck integrity issue.
type IssueType string

const (
	IssueDuplicateTagline IssueType = "duplicate_tagline"
	IssueNonCanonical     IssueType = "non_canonical_content"
	IssueNotAFact         IssueType = "not_a_fact"
	IssueUnsorted         IssueType = "unsorted"
)

// Issue represents an integrity problem in a deck file. Decks edited by
// hand can hold cards that the editor would never have written.
type Issue struct {
	Type    IssueType
	Tagline string // empty for deck-wide issues
	Message string
}

func (i Issue) Error() string {
	if i.Tagline == "" {
		return fmt.Sprintf("%s - %s", i.Type, i.Message)
	}
	return fmt.Sprintf("%q: %s - %s", i.Tagline, i.Type, i.Message)
}

// Fixable reports whether Repair can resolve the issue.
func (i Issue) Fixable() bool {
	return i.Type != IssueNotAFact
}

// Fix represents an auto-repair action taken.
type Fix struct {
	Type        IssueType
	Tagline     string
	Description string
}

// Validate checks d as stored, before any sorting, and returns every issue
// found in file order.
func Validate(d *model.Deck) []Issue {
	var issues []Issue

	seen := make(map[string]string)
	for _, c := range d.Proofs {
		key := model.TaglineKey(c.Tagline)
		if first, ok := seen[key]; ok {
			issues = append(issues, Issue{
				Type:    IssueDuplicateTagline,
				Tagline: c.Tagline,
				Message: fmt.Sprintf("same tagline as %q", first),
			})
		} else {
			seen[key] = c.Tagline
		}

		switch normalized, ok := model.NormalizeContent(c.Content); {
		case !ok:
			issues = append(issues, Issue{
				Type:    IssueNotAFact,
				Tagline: c.Tagline,
				Message: fmt.Sprintf("content is %q", c.Content),
			})
		case c.Content != normalized:
			issues = append(issues, Issue{
				Type:    IssueNonCanonical,
				Tagline: c.Tagline,
				Message: fmt.Sprintf("content %q should be %q", c.Content, normalized),
			})
		}
	}

	if !d.IsSorted() {
		issues = append(issues, Issue{
			Type:    IssueUnsorted,
			Message: "cards are not in tagline order",
		})
	}

	return issues
}

// Repair resolves fixable issues in place: later duplicates are removed,
// content is normalized and the deck is sorted. Non-fact cards are kept.
func Repair(d *model.Deck) []Fix {
	var fixes []Fix

	seen := make(map[string]bool)
	kept := d.Proofs[:0]
	for _, c := range d.Proofs {
		key := model.TaglineKey(c.Tagline)
		if seen[key] {
			fixes = append(fixes, Fix{
				Type:        IssueDuplicateTagline,
				Tagline:     c.Tagline,
				Description: "removed duplicate card",
			})
			continue
		}
		seen[key] = true

		if normalized, ok := model.NormalizeContent(c.Content); ok && c.Content != normalized {
			fixes = append(fixes, Fix{
				Type:        IssueNonCanonical,
				Tagline:     c.Tagline,
				Description: fmt.Sprintf("content %q -> %q", c.Content, normalized),
			})
			c.Content = normalized
		}
		kept = append(kept, c)
	}
	d.Proofs = kept

	if !d.IsSorted() {
		d.Sort()
		fixes = append(fixes, Fix{
			Type:        IssueUnsorted,
			Description: "sorted cards by tagline",
		})
	}

	return fixes
}

// ValidateFile loads the deck at path without sorting it and validates it.
func ValidateFile(s Store, path string) (*model.Deck, []Issue, error) {
	d, err := s.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return d, Validate(d), nil
}

// RepairFile repairs the deck at path and saves it when anything changed.
func RepairFile(s Store, path string) ([]Fix, error) {
	d, err := s.Load(path)
	if err != nil {
		return nil, err
	}

	fixes := Repair(d)
	if len(fixes) == 0 {
		return nil, nil
	}
	if err := s.Save(path, d); err != nil {
		return fixes, err
	}
	return fixes, nil
}
