package treemap

import (
	"github.com/ibsatassew/ContactsApp/bintree"
)

// Key/value pair stored in an internal slot, along with the position of that slot.
type Entry[K any, V any] struct {
	key   K
	value V
	pos   bintree.Position
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

func (e *Entry[K, V]) Value() V {
	return e.value
}

// Position of the slot holding this entry when it was last placed in the tree. Entries returned by snapshot methods keep the position they had at snapshot time.
func (e *Entry[K, V]) Position() bintree.Position {
	return e.pos
}
