package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeck(t *testing.T) {
	t.Run("parses a deck file", func(t *testing.T) {
		content := `{
    "deckName": "Сверхлюди",
    "isValid": false,
    "proofs": [
        {"content": "Fact", "tagline": "Can fly", "cardType": 3},
        {"content": "Fact", "tagline": "Breathes underwater", "cardType": 7, "extra": "ignored"}
    ]
}`
		d, err := ParseDeck([]byte(content))
		require.NoError(t, err)

		assert.Equal(t, "Сверхлюди", d.DeckName)
		assert.False(t, d.IsValid)
		require.Len(t, d.Proofs, 2)
		assert.Equal(t, Card{Content: "Fact", Tagline: "Can fly", CardType: 3}, d.Proofs[0])
		assert.Equal(t, 7, d.Proofs[1].CardType)
	})

	t.Run("missing proofs yields empty list", func(t *testing.T) {
		d, err := ParseDeck([]byte(`{"deckName": "Empty", "isValid": true}`))
		require.NoError(t, err)
		assert.NotNil(t, d.Proofs)
		assert.Empty(t, d.Proofs)
	})

	t.Run("matches field names exactly", func(t *testing.T) {
		d, err := ParseDeck([]byte(`{"DECKNAME": "X", "deckName": "Heroes", "Proofs": [{"content": "Fact", "tagline": "Ghost"}]}`))
		require.NoError(t, err)
		assert.Equal(t, "Heroes", d.DeckName)
		assert.Empty(t, d.Proofs)

		_, err = ParseDeck([]byte(`{"proofs": [{"content": "Fact", "TagLine": "Alpha"}]}`))
		assert.Error(t, err, "a card whose only tagline key is misspelled has no tagline")
	})

	t.Run("missing card type defaults", func(t *testing.T) {
		d, err := ParseDeck([]byte(`{"proofs": [
			{"content": "Fact", "tagline": "Alpha"},
			{"content": "Fact", "tagline": "Beta", "cardType": null},
			{"content": "Fact", "tagline": "Gamma", "cardType": 0}
		]}`))
		require.NoError(t, err)
		assert.Equal(t, DefaultCardType, d.Proofs[0].CardType)
		assert.Equal(t, DefaultCardType, d.Proofs[1].CardType)
		assert.Equal(t, 0, d.Proofs[2].CardType, "an explicit type is kept as written")
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		bad := map[string]string{
			"invalid json":      `{"deckName": `,
			"top-level array":   `[]`,
			"top-level null":    `null`,
			"empty":             ``,
			"proofs not array":  `{"proofs": {"a": 1}}`,
			"numeric tagline":   `{"proofs": [{"content": "Fact", "tagline": 5}]}`,
			"missing tagline":   `{"proofs": [{"content": "Fact"}]}`,
			"blank tagline":     `{"proofs": [{"content": "Fact", "tagline": "  "}]}`,
			"string is-valid":   `{"isValid": "yes"}`,
			"invalid utf-8":     "{\"deckName\": \"\xff\xfe\"}",
		}
		for name, content := range bad {
			_, err := ParseDeck([]byte(content))
			assert.Error(t, err, name)
		}
	})
}

func TestEncodeDeck(t *testing.T) {
	t.Run("writes fixed field order with four-space indent", func(t *testing.T) {
		d := &Deck{
			DeckName: "Heroes",
			IsValid:  true,
			Proofs:   []Card{{Content: "Fact", Tagline: "Alpha", CardType: 3}},
		}

		data, err := EncodeDeck(d)
		require.NoError(t, err)

		expected := `{
    "deckName": "Heroes",
    "isValid": true,
    "proofs": [
        {
            "content": "Fact",
            "tagline": "Alpha",
            "cardType": 3
        }
    ]
}
`
		assert.Equal(t, expected, string(data))
	})

	t.Run("writes non-ascii and html characters literally", func(t *testing.T) {
		d := NewDeck("Сверхлюди")
		d.Proofs = append(d.Proofs, NewFactCard("Strong & <fast>", 0))

		data, err := EncodeDeck(d)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"deckName": "Сверхлюди"`)
		assert.Contains(t, string(data), `"tagline": "Strong & <fast>"`)
	})

	t.Run("nil proofs encode as empty array", func(t *testing.T) {
		data, err := EncodeDeck(&Deck{DeckName: "X"})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"proofs": []`)
	})

	t.Run("round trip is exact", func(t *testing.T) {
		d := NewDeck("Heroes")
		d.Proofs = append(d.Proofs,
			NewFactCard("alpha", 0),
			NewFactCard("Beta", 9),
		)

		data, err := EncodeDeck(d)
		require.NoError(t, err)
		back, err := ParseDeck(data)
		require.NoError(t, err)
		assert.Equal(t, d, back)
	})
}

func TestParseImport(t *testing.T) {
	t.Run("decodes records with optional fields", func(t *testing.T) {
		content := `{
  "deckName": "Other",
  "proofs": [
    {"content": "fact", "tagline": "Alpha"},
    {"content": "Fact", "tagline": "Beta", "cardType": 5},
    {"tagline": "Gamma"},
    {"content": "Fact", "tagline": "Delta", "cardType": null},
    "not an object",
    {"content": "Fact", "tagline": 42}
  ]
}`
		doc, err := ParseImport([]byte(content))
		require.NoError(t, err)

		assert.Equal(t, "Other", doc.DeckName)
		require.Len(t, doc.Records, 6)

		require.NotNil(t, doc.Records[0].Content)
		assert.Equal(t, "fact", *doc.Records[0].Content)
		assert.Nil(t, doc.Records[0].CardType)

		require.NotNil(t, doc.Records[1].CardType)
		assert.Equal(t, 5, *doc.Records[1].CardType)

		assert.Nil(t, doc.Records[2].Content)
		assert.False(t, doc.Records[2].Malformed)

		assert.Nil(t, doc.Records[3].CardType)

		assert.True(t, doc.Records[4].Malformed)
		assert.True(t, doc.Records[5].Malformed)
	})

	t.Run("field names are case sensitive", func(t *testing.T) {
		doc, err := ParseImport([]byte(`{"proofs": [
			{"CONTENT": "Fact", "TagLine": "Alpha"},
			{"content": "Fact", "Tagline": "Beta", "CardType": 9}
		]}`))
		require.NoError(t, err)
		require.Len(t, doc.Records, 2)

		assert.False(t, doc.Records[0].Malformed)
		assert.Nil(t, doc.Records[0].Content)
		assert.Nil(t, doc.Records[0].Tagline)

		require.NotNil(t, doc.Records[1].Content)
		assert.Nil(t, doc.Records[1].Tagline)
		assert.Nil(t, doc.Records[1].CardType)

		_, err = ParseImport([]byte(`{"Proofs": []}`))
		assert.Error(t, err)
	})

	t.Run("missing proofs key fails", func(t *testing.T) {
		_, err := ParseImport([]byte(`{"deckName": "x"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing key 'proofs'")
	})

	t.Run("non-object and non-array proofs fail", func(t *testing.T) {
		for _, content := range []string{`[]`, `"x"`, `{"proofs": 3}`, `{"proofs": `} {
			_, err := ParseImport([]byte(content))
			assert.Error(t, err, content)
		}
	})

	t.Run("deck converts to import document", func(t *testing.T) {
		d := NewDeck("Src")
		d.Proofs = append(d.Proofs, NewFactCard("Alpha", 4))

		doc := NewImportDocument(d)
		assert.Equal(t, "Src", doc.DeckName)
		require.Len(t, doc.Records, 1)
		assert.Equal(t, "Alpha", *doc.Records[0].Tagline)
		assert.Equal(t, "Fact", *doc.Records[0].Content)
		assert.Equal(t, 4, *doc.Records[0].CardType)
	})
}

func TestCardValidate(t *testing.T) {
	assert.NoError(t, NewFactCard("Alpha", 0).Validate())
	assert.Error(t, Card{Content: FactContent}.Validate())
	assert.Error(t, Card{Content: FactContent, Tagline: "\t"}.Validate())
}
