package ops

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/deck/internal/model"
)

// SkipReason explains why an import record was rejected.
type SkipReason string

const (
	SkipMalformed    SkipReason = "malformed"
	SkipMissingField SkipReason = "missing-field"
	SkipNotAFact     SkipReason = "not-a-fact"
	SkipDuplicate    SkipReason = "duplicate"
)

// MergeResult contains the results of merging an import document.
type MergeResult struct {
	// Added is the number of records accepted into the deck.
	Added int
	// Skipped is the number of records rejected, for any reason.
	Skipped int
	// AddedTaglines lists accepted taglines in input order.
	AddedTaglines []string
	// Reasons counts skipped records per reason.
	Reasons map[SkipReason]int
}

func (r *MergeResult) skip(reason SkipReason) {
	r.Skipped++
	r.Reasons[reason]++
}

// Merge adds qualifying records from incoming to d. Records are processed in
// order; each is wholly accepted or wholly rejected. A record is accepted
// when it has content and a non-blank tagline, its content is a fact in any case, and
// its tagline is not yet in the deck (including taglines accepted earlier in
// the same run). The deck is sorted once at the end.
func Merge(d *model.Deck, incoming *model.ImportDocument) MergeResult {
	result := MergeResult{Reasons: make(map[SkipReason]int)}
	taglines := d.TaglineSet()

	for _, rec := range incoming.Records {
		if rec.Malformed {
			result.skip(SkipMalformed)
			continue
		}
		if rec.Content == nil || rec.Tagline == nil || strings.TrimSpace(*rec.Tagline) == "" {
			result.skip(SkipMissingField)
			continue
		}
		if _, ok := model.NormalizeContent(*rec.Content); !ok {
			result.skip(SkipNotAFact)
			continue
		}
		key := model.TaglineKey(*rec.Tagline)
		if taglines[key] {
			result.skip(SkipDuplicate)
			continue
		}

		cardType := model.DefaultCardType
		if rec.CardType != nil {
			cardType = *rec.CardType
		}
		d.Proofs = append(d.Proofs, model.Card{
			Content:  model.FactContent,
			Tagline:  *rec.Tagline,
			CardType: cardType,
		})
		taglines[key] = true
		result.Added++
		result.AddedTaglines = append(result.AddedTaglines, *rec.Tagline)
	}

	d.Sort()
	return result
}

// ReadImportFile reads and parses an import file without touching any deck.
func ReadImportFile(path string) (*model.ImportDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file %s: %w", path, err)
	}
	doc, err := model.ParseImport(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ImportFile reads the import file at path and merges it into d.
// If the file cannot be read or parsed, d is left unchanged.
func ImportFile(d *model.Deck, path string) (MergeResult, error) {
	doc, err := ReadImportFile(path)
	if err != nil {
		return MergeResult{}, err
	}
	return Merge(d, doc), nil
}
