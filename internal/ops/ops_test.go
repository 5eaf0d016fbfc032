package ops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/deck/internal/model"
	"github.com/jacksmith/deck/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestSession creates a deck file with the given taglines in a temp
// directory and opens a session on it.
func setupTestSession(t *testing.T, taglines ...string) (*Session, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deck.txt")
	s := storage.New("Test Deck")
	d := s.DefaultDeck()
	for _, tagline := range taglines {
		_, err := d.AddCard(tagline)
		require.NoError(t, err)
	}
	require.NoError(t, s.Save(path, d))

	sess, err := OpenSession(s, path)
	require.NoError(t, err)
	return sess, path
}

func loadDeck(t *testing.T, path string) *model.Deck {
	t.Helper()
	d, err := storage.New("").Load(path)
	require.NoError(t, err)
	return d
}

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func TestMerge(t *testing.T) {
	t.Run("normalizes content and defaults card type", func(t *testing.T) {
		d := model.NewDeck("")
		doc := &model.ImportDocument{Records: []model.ImportRecord{
			{Content: strp("fact"), Tagline: strp("Alpha")},
		}}

		result := Merge(d, doc)
		assert.Equal(t, 1, result.Added)
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, []model.Card{{Content: "Fact", Tagline: "Alpha", CardType: 3}}, d.Proofs)
	})

	t.Run("rejects non-fact content", func(t *testing.T) {
		d := model.NewDeck("")
		doc := &model.ImportDocument{Records: []model.ImportRecord{
			{Content: strp("Opinion"), Tagline: strp("Beta")},
		}}

		result := Merge(d, doc)
		assert.Equal(t, 0, result.Added)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 1, result.Reasons[SkipNotAFact])
		assert.Empty(t, d.Proofs)
	})

	t.Run("applies every rule and keeps original tagline text", func(t *testing.T) {
		d := model.NewDeck("")
		_, err := d.AddCard("Existing")
		require.NoError(t, err)

		doc := &model.ImportDocument{Records: []model.ImportRecord{
			{Content: strp("FACT"), Tagline: strp("zulu"), CardType: intp(7)},
			{Content: strp("Fact"), Tagline: strp("EXISTING")},
			{Tagline: strp("No content")},
			{Content: strp("Fact")},
			{Content: strp("Fact"), Tagline: strp("")},
			{Malformed: true},
			{Content: strp("Fact"), Tagline: strp("Mike")},
			{Content: strp("fact"), Tagline: strp("MIKE")},
		}}

		result := Merge(d, doc)
		assert.Equal(t, 2, result.Added)
		assert.Equal(t, 6, result.Skipped)
		assert.Equal(t, []string{"zulu", "Mike"}, result.AddedTaglines)
		assert.Equal(t, map[SkipReason]int{
			SkipDuplicate:    2,
			SkipMissingField: 3,
			SkipMalformed:    1,
		}, result.Reasons)

		assert.Equal(t, []string{"Existing", "Mike", "zulu"}, d.Taglines())
		assert.Equal(t, 7, d.Proofs[2].CardType)
		assert.Equal(t, "Fact", d.Proofs[2].Content)
	})

	t.Run("skips blank taglines so the saved deck stays loadable", func(t *testing.T) {
		sess, path := setupTestSession(t, "Alpha")
		doc := &model.ImportDocument{Records: []model.ImportRecord{
			{Content: strp("Fact"), Tagline: strp("   ")},
			{Content: strp("Fact"), Tagline: strp("\t\n")},
		}}

		result, err := sess.ImportDocument(doc)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Added)
		assert.Equal(t, 2, result.Reasons[SkipMissingField])
		assert.Equal(t, []string{"Alpha"}, loadDeck(t, path).Taglines())
	})

	t.Run("misspelled field names count as missing", func(t *testing.T) {
		d := model.NewDeck("")
		doc, err := model.ParseImport([]byte(`{"proofs": [{"CONTENT": "Fact", "TagLine": "Alpha"}]}`))
		require.NoError(t, err)

		result := Merge(d, doc)
		assert.Equal(t, 0, result.Added)
		assert.Equal(t, 1, result.Reasons[SkipMissingField])
		assert.Empty(t, d.Proofs)
	})

	t.Run("second run of same document adds nothing", func(t *testing.T) {
		d := model.NewDeck("")
		_, err := d.AddCard("Alpha")
		require.NoError(t, err)

		doc := &model.ImportDocument{Records: []model.ImportRecord{
			{Content: strp("Fact"), Tagline: strp("Alpha")},
			{Content: strp("Fact"), Tagline: strp("Beta")},
			{Content: strp("fact"), Tagline: strp("Gamma")},
			{Content: strp("Opinion"), Tagline: strp("Delta")},
		}}

		first := Merge(d, doc)
		assert.Equal(t, 2, first.Added)
		assert.Equal(t, 2, first.Skipped)

		second := Merge(d, doc)
		assert.Equal(t, 0, second.Added)
		assert.Equal(t, first.Added+first.Skipped, second.Skipped)
		assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, d.Taglines())
	})

	t.Run("result is sorted", func(t *testing.T) {
		d := model.NewDeck("")
		doc := &model.ImportDocument{Records: []model.ImportRecord{
			{Content: strp("Fact"), Tagline: strp("charlie")},
			{Content: strp("Fact"), Tagline: strp("Alpha")},
			{Content: strp("Fact"), Tagline: strp("bravo")},
		}}
		Merge(d, doc)
		assert.True(t, d.IsSorted())
		assert.Equal(t, []string{"Alpha", "bravo", "charlie"}, d.Taglines())
	})
}

func TestImportFile(t *testing.T) {
	t.Run("merges file contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "import.txt")
		content := `{"deckName": "Other", "isValid": true, "proofs": [
			{"content": "fact", "tagline": "Alpha", "extra": true},
			{"content": "Opinion", "tagline": "Beta"},
			{"content": "Fact", "tagline": 12}
		]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		d := model.NewDeck("")
		result, err := ImportFile(d, path)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Added)
		assert.Equal(t, 2, result.Skipped)
		assert.Equal(t, []model.Card{{Content: "Fact", Tagline: "Alpha", CardType: 3}}, d.Proofs)
	})

	t.Run("bad files leave deck unchanged", func(t *testing.T) {
		dir := t.TempDir()
		noProofs := filepath.Join(dir, "noproofs.txt")
		require.NoError(t, os.WriteFile(noProofs, []byte(`{"deckName": "x"}`), 0644))
		garbage := filepath.Join(dir, "garbage.txt")
		require.NoError(t, os.WriteFile(garbage, []byte(`not json`), 0644))

		for _, path := range []string{noProofs, garbage, filepath.Join(dir, "missing.txt")} {
			d := model.NewDeck("")
			_, err := d.AddCard("Alpha")
			require.NoError(t, err)

			_, err = ImportFile(d, path)
			assert.Error(t, err, path)
			assert.Equal(t, []string{"Alpha"}, d.Taglines())
		}
	})
}

func TestFind(t *testing.T) {
	d := model.NewDeck("")
	for _, tagline := range []string{"Alpha", "Beta", "Calypso"} {
		_, err := d.AddCard(tagline)
		require.NoError(t, err)
	}

	// "Calypso" contains "al" as well.
	assert.Equal(t, []int{0, 2}, Find(d, "al"))
	assert.Equal(t, []int{0}, Find(d, "ALP"))
	assert.Equal(t, []int{0, 2}, Find(d, "p"))
	assert.Equal(t, []int{0, 1, 2}, Find(d, "A"))
	assert.Equal(t, []int{}, Find(d, "zzz"))
	assert.Equal(t, []int{}, Find(d, ""))
}

func TestResolveCard(t *testing.T) {
	d := model.NewDeck("")
	for _, tagline := range []string{"Alpha", "Beta", "42"} {
		_, err := d.AddCard(tagline)
		require.NoError(t, err)
	}
	// Sorted: 42, Alpha, Beta

	i, err := ResolveCard(d, "beta")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = ResolveCard(d, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = ResolveCard(d, "42")
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = ResolveCard(d, "4")
	var rerr *model.IndexOutOfRangeError
	assert.True(t, errors.As(err, &rerr))

	_, err = ResolveCard(d, "0")
	assert.True(t, errors.As(err, &rerr))

	_, err = ResolveCard(d, "Gamma")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, `card "Gamma" not found`, err.Error())
}
