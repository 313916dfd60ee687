package contacts

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestBook() *Book {
	return NewBook(BookConfig{Logger: slog.New(slog.DiscardHandler)})
}

func TestBookAddSearchRemove(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	b := newTestBook()

	_, found, err := b.Search("Lovelace, Ada")
	assert.NoError(err)
	assert.False(found)

	op, err := b.Add("Lovelace, Ada", Methods{Email: "ada@example.com"})
	require.NoError(err)
	assert.True(op.IsCreate())
	assert.Equal(1, b.Len())

	ms, found, err := b.Search("Lovelace, Ada")
	assert.NoError(err)
	assert.True(found)
	assert.Equal("ada@example.com", ms[Email])

	op, err = b.Add("Lovelace, Ada", Methods{Mobile: "555-0100"})
	require.NoError(err)
	assert.True(op.IsUpdate())
	assert.Equal(Methods{Email: "ada@example.com"}, *op.Prev)
	assert.Equal(1, b.Len())

	ms, found, err = b.Remove("Lovelace, Ada")
	assert.NoError(err)
	assert.True(found)
	assert.Equal(Methods{Mobile: "555-0100"}, ms)

	_, found, err = b.Remove("Lovelace, Ada")
	assert.NoError(err)
	assert.False(found)
	assert.Equal(0, b.Len())

	_, err = b.Add("  ", Methods{})
	assert.ErrorIs(err, ErrInvalidName)
	_, _, err = b.Search("")
	assert.ErrorIs(err, ErrInvalidName)
	_, _, err = b.Remove("")
	assert.ErrorIs(err, ErrInvalidName)
	assert.NoError(b.Verify())
}

func TestBookUndo(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	b := newTestBook()

	_, err := b.Undo()
	assert.ErrorIs(err, ErrNothingToUndo)

	_, err = b.Add("Hopper, Grace", Methods{Email: "grace@example.com"})
	require.NoError(err)
	_, err = b.Add("Hopper, Grace", Methods{Email: "amazing@example.com"})
	require.NoError(err)
	_, err = b.Add("Turing, Alan", nil)
	require.NoError(err)
	_, _, err = b.Remove("Hopper, Grace")
	require.NoError(err)
	// a miss is not recorded
	_, _, err = b.Remove("Nobody, Here")
	require.NoError(err)

	op, err := b.Undo()
	require.NoError(err)
	assert.True(op.IsDelete())
	ms, _, _ := b.Search("Hopper, Grace")
	assert.Equal("amazing@example.com", ms[Email])

	op, err = b.Undo()
	require.NoError(err)
	assert.Equal("Turing, Alan", op.Key)
	assert.Equal([]string{"Hopper, Grace"}, b.Names())

	_, err = b.Undo()
	require.NoError(err)
	ms, _, _ = b.Search("Hopper, Grace")
	assert.Equal("grace@example.com", ms[Email])

	_, err = b.Undo()
	require.NoError(err)
	assert.Equal(0, b.Len())

	_, err = b.Undo()
	assert.ErrorIs(err, ErrNothingToUndo)
	assert.NoError(b.Verify())
}

func TestBookListings(t *testing.T) {
	assert := assert.New(t)
	b := newTestBook()

	b.Add("Turing, Alan", Methods{Github: "alan"})
	b.Add("Hopper, Grace", Methods{Email: "grace@example.com", Mobile: "555"})
	b.Add("Lovelace, Ada", Methods{})

	assert.Equal([]string{"Hopper, Grace", "Lovelace, Ada", "Turing, Alan"}, b.Names())
	assert.Equal(
		"\nAll Contacts\n------------\n"+
			"Hopper, Grace: {EMAIL=grace@example.com, MOBILE=555}\n"+
			"Lovelace, Ada: {}\n"+
			"Turing, Alan: {GITHUB=alan}\n",
		b.ListAll())
	assert.Equal(
		"\nAll Contacts Names\n------------\nHopper, Grace\nLovelace, Ada\nTuring, Alan\n",
		b.ListNames())
	assert.Equal(
		"\nAll Contacts Communications\n------------\n"+
			"{EMAIL=grace@example.com, MOBILE=555}\n{}\n{GITHUB=alan}\n",
		b.ListCommunications())

	empty := newTestBook()
	assert.Equal("\nAll Contacts Names\n------------\n\n", empty.ListNames())

	tree := b.DebugTree()
	assert.True(strings.HasPrefix(tree, "Turing, Alan ─◉"))
	assert.Equal(3, len(b.Entries()))
}

func TestBookCollation(t *testing.T) {
	assert := assert.New(t)

	plain := newTestBook()
	collated := NewBook(BookConfig{
		Comparator: NameComparator(language.English),
		Logger:     slog.New(slog.DiscardHandler),
	})
	for _, name := range []string{"de la Cruz, Juan", "Zhang, Wei", "Émile, Zola", "Adams, Ann", "Emile, Bert"} {
		_, err := plain.Add(name, nil)
		assert.NoError(err)
		_, err = collated.Add(name, nil)
		assert.NoError(err)
	}
	assert.Equal([]string{"Adams, Ann", "Emile, Bert", "Zhang, Wei", "de la Cruz, Juan", "Émile, Zola"}, plain.Names())
	assert.Equal([]string{"Adams, Ann", "de la Cruz, Juan", "Emile, Bert", "Émile, Zola", "Zhang, Wei"}, collated.Names())
	assert.NoError(collated.Verify())

	// names which collate equally stay distinct
	_, err := collated.Add("ADAMS, ANN", nil)
	assert.NoError(err)
	assert.Equal(6, collated.Len())
	assert.NoError(collated.Verify())
}

func TestBookMetrics(t *testing.T) {
	assert := assert.New(t)
	b := newTestBook()

	before := testutil.ToFloat64(bookOperations.WithLabelValues("add", "ok"))
	beforeErr := testutil.ToFloat64(bookOperations.WithLabelValues("add", "error"))
	b.Add("Curie, Marie", nil)
	b.Add("Noether, Emmy", nil)
	b.Add("", nil)
	assert.Equal(before+2, testutil.ToFloat64(bookOperations.WithLabelValues("add", "ok")))
	assert.Equal(beforeErr+1, testutil.ToFloat64(bookOperations.WithLabelValues("add", "error")))
	assert.Equal(float64(2), testutil.ToFloat64(bookContacts))
}

func TestSeed(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	a := newTestBook()
	require.NoError(Seed(a, 50, 215))
	b := newTestBook()
	require.NoError(Seed(b, 50, 215))

	assert.True(a.Len() > 0 && a.Len() <= 50)
	assert.Equal(a.Names(), b.Names())
	assert.NoError(a.Verify())
	for _, e := range a.Entries() {
		assert.NotEmpty(e.Value()[Email])
		assert.Contains(e.Key(), ", ")
	}
	// seeding can not be undone
	_, err := a.Undo()
	assert.ErrorIs(err, ErrNothingToUndo)
}
