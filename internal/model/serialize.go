package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// indent is the indentation used when writing deck files.
const indent = "    "

// ParseDeck decodes a deck document.
// The document must be valid UTF-8 holding a JSON object whose fields have
// the expected types, and every card must have a tagline. Field names are
// matched exactly; a card without a cardType gets DefaultCardType.
func ParseDeck(data []byte) (*Deck, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("deck is not valid UTF-8")
	}
	if !isObject(data) {
		return nil, fmt.Errorf("deck must be a JSON object")
	}

	obj, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}

	d := Deck{Proofs: []Card{}}
	var items []json.RawMessage
	for _, f := range []struct {
		key string
		v   any
	}{
		{"deckName", &d.DeckName},
		{"isValid", &d.IsValid},
		{"proofs", &items},
	} {
		if _, err := decodeField(obj, f.key, f.v); err != nil {
			return nil, fmt.Errorf("failed to parse deck: %w", err)
		}
	}

	for i, item := range items {
		card, err := parseCard(item)
		if err != nil {
			return nil, fmt.Errorf("failed to parse deck: proofs[%d]: %w", i, err)
		}
		d.Proofs = append(d.Proofs, card)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	return &d, nil
}

func parseCard(item json.RawMessage) (Card, error) {
	if !isObject(item) {
		return Card{}, fmt.Errorf("card must be a JSON object")
	}
	obj, err := decodeObject(item)
	if err != nil {
		return Card{}, err
	}

	c := Card{CardType: DefaultCardType}
	if _, err := decodeField(obj, "content", &c.Content); err != nil {
		return Card{}, err
	}
	if _, err := decodeField(obj, "tagline", &c.Tagline); err != nil {
		return Card{}, err
	}
	if _, err := decodeField(obj, "cardType", &c.CardType); err != nil {
		return Card{}, err
	}
	return c, nil
}

// EncodeDeck encodes a deck in the on-disk format.
// Fields keep their declared order, indentation is four spaces, and
// non-ASCII and HTML characters are written literally.
func EncodeDeck(d *Deck) ([]byte, error) {
	out := *d
	if out.Proofs == nil {
		out.Proofs = []Card{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(&out); err != nil {
		return nil, fmt.Errorf("failed to encode deck: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportRecord is one incoming card as found in an import file.
// Nil fields were absent (or null) in the source.
type ImportRecord struct {
	Content  *string `json:"content"`
	Tagline  *string `json:"tagline"`
	CardType *int    `json:"cardType"`

	// Malformed is set when the record could not be decoded at all,
	// e.g. it is not an object or a field has the wrong JSON type.
	Malformed bool `json:"-"`
}

// ImportDocument is a deck file read for merging into another deck.
type ImportDocument struct {
	DeckName string
	Records  []ImportRecord
}

// ParseImport decodes an import file. The file must be a JSON object with a
// "proofs" array; individual records that fail to decode are kept and
// flagged Malformed rather than failing the whole import.
func ParseImport(data []byte) (*ImportDocument, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("import file is not valid UTF-8")
	}
	if !isObject(data) {
		return nil, fmt.Errorf("invalid file format: expected a JSON object")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}

	proofs, ok := raw["proofs"]
	if !ok {
		return nil, fmt.Errorf("invalid file format: missing key 'proofs'")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(proofs, &items); err != nil {
		return nil, fmt.Errorf("invalid file format: 'proofs' must be an array")
	}

	doc := &ImportDocument{Records: make([]ImportRecord, 0, len(items))}
	if name, ok := raw["deckName"]; ok {
		// A non-string name is ignored; it never affects the merge.
		_ = json.Unmarshal(name, &doc.DeckName)
	}
	for _, item := range items {
		doc.Records = append(doc.Records, decodeRecord(item))
	}

	return doc, nil
}

// NewImportDocument converts a deck into an import document, so a loaded
// deck can be merged into another.
func NewImportDocument(d *Deck) *ImportDocument {
	doc := &ImportDocument{
		DeckName: d.DeckName,
		Records:  make([]ImportRecord, len(d.Proofs)),
	}
	for i, c := range d.Proofs {
		content, tagline, cardType := c.Content, c.Tagline, c.CardType
		doc.Records[i] = ImportRecord{Content: &content, Tagline: &tagline, CardType: &cardType}
	}
	return doc
}

func decodeRecord(item json.RawMessage) ImportRecord {
	if !isObject(item) {
		return ImportRecord{Malformed: true}
	}
	obj, err := decodeObject(item)
	if err != nil {
		return ImportRecord{Malformed: true}
	}

	var (
		rec              ImportRecord
		content, tagline string
		cardType         int
	)
	for _, f := range []struct {
		key string
		v   any
		set func()
	}{
		{"content", &content, func() { rec.Content = &content }},
		{"tagline", &tagline, func() { rec.Tagline = &tagline }},
		{"cardType", &cardType, func() { rec.CardType = &cardType }},
	} {
		ok, err := decodeField(obj, f.key, f.v)
		if err != nil {
			return ImportRecord{Malformed: true}
		}
		if ok {
			f.set()
		}
	}
	return rec
}

// decodeObject splits a JSON object into its members. Keys keep their exact
// spelling, unlike struct decoding which folds case.
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// decodeField decodes the member named key into v. It reports false when the
// member is absent or null, leaving v untouched.
func decodeField(obj map[string]json.RawMessage, key string, v any) (bool, error) {
	raw, ok := obj[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return true, nil
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
