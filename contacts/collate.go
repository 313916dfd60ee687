package contacts

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ibsatassew/ContactsApp/treemap"
)

// Returns a comparator ordering names by the collation rules of the given language, ignoring case and accents ("de la Cruz" next to "De La Cruz", "Émile" next to "Emile").
//
// Names which collate equally are still distinguished by their raw bytes, so that they remain separate contacts.
func NameComparator(tag language.Tag) treemap.Comparator[string] {
	c := collate.New(tag, collate.IgnoreCase, collate.IgnoreDiacritics)
	return treemap.CompareFunc[string](func(a, b string) int {
		if r := c.CompareString(a, b); r != 0 {
			return r
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
}
