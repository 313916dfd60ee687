package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ibsatassew/ContactsApp/contacts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, book *contacts.Book, lines ...string) string {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := newConsole(book, in, &out, slog.New(slog.DiscardHandler))
	require.NoError(t, c.run())
	return out.String()
}

func newBook() *contacts.Book {
	return contacts.NewBook(contacts.BookConfig{Logger: slog.New(slog.DiscardHandler)})
}

func TestConsoleAddSearchRemove(t *testing.T) {
	assert := assert.New(t)
	book := newBook()

	out := runSession(t, book,
		"2", "Ada", "Lovelace", "email: ada@example.com, m: 555-0100",
		"1", "Ada", "Lovelace",
		"1", "Grace", "Hopper",
		"3", "Ada", "Lovelace",
		"3", "Ada", "Lovelace",
		"8",
	)
	assert.Contains(out, "Contact Manager Menu")
	assert.Contains(out, "Contact added: Lovelace, Ada: {EMAIL=ada@example.com, MOBILE=555-0100}")
	assert.Contains(out, "Contact found for Lovelace, Ada: {EMAIL=ada@example.com, MOBILE=555-0100}")
	assert.Contains(out, "'Hopper, Grace' was not found.")
	assert.Contains(out, "The contact `Lovelace, Ada` has been removed.")
	assert.Contains(out, "No contact entry found for Lovelace, Ada")
	assert.Equal(0, book.Len())
}

func TestConsoleListings(t *testing.T) {
	assert := assert.New(t)
	book := newBook()

	out := runSession(t, book,
		"2", "Alan", "Turing", "g: alan",
		"2", "Grace", "Hopper", "e: grace@example.com",
		"2", "Grace", "Hopper", "e: hopper@example.com",
		"4", "5", "6",
	)
	assert.Contains(out, "Contact updated: Hopper, Grace: {EMAIL=hopper@example.com}")
	assert.Contains(out, "All Contacts\n------------\nHopper, Grace: {EMAIL=hopper@example.com}\nTuring, Alan: {GITHUB=alan}\n")
	assert.Contains(out, "All Contacts Names\n------------\nHopper, Grace\nTuring, Alan\n")
	assert.Contains(out, "All Contacts Communications\n------------\n{EMAIL=hopper@example.com}\n{GITHUB=alan}\n")
	assert.Equal(2, book.Len())
}

func TestConsoleInvalidInput(t *testing.T) {
	assert := assert.New(t)
	book := newBook()

	out := runSession(t, book,
		"nine",
		"42",
		"2", "", "Lovelace",
		"2", "Ada", "Lovelace", "fax: 555",
		"1", "Ada", " ",
		"3", "", "",
	)
	assert.Equal(2, strings.Count(out, "Select a menu choice from 1 to 8."))
	assert.Equal(3, strings.Count(out, "The contact's first or last name () was invalid."))
	assert.Contains(out, "Media option in 'fax: 555' not recognized.")
	assert.Equal(0, book.Len())
}

func TestConsoleUndo(t *testing.T) {
	assert := assert.New(t)
	book := newBook()

	out := runSession(t, book,
		"7",
		"2", "Ada", "Lovelace", "e: ada@example.com",
		"3", "Ada", "Lovelace",
		"7",
		"1", "Ada", "Lovelace",
		"7",
	)
	assert.Contains(out, "Nothing to undo.")
	assert.Contains(out, "Restored `Lovelace, Ada`.")
	assert.Contains(out, "Contact found for Lovelace, Ada: {EMAIL=ada@example.com}")
	assert.Contains(out, "Undid adding `Lovelace, Ada`.")
	assert.Equal(0, book.Len())
}

func TestConsoleEOFMidPrompt(t *testing.T) {
	assert := assert.New(t)
	book := newBook()

	// input ends while the add prompt is waiting for a last name
	out := runSession(t, book, "2", "Ada")
	assert.Contains(out, "  Last name: ")
	assert.Equal(0, book.Len())
}
