package treemap

import (
	"fmt"

	"github.com/ibsatassew/ContactsApp/bintree"
)

// Checks the structure of the whole tree: internal slots hold an entry and have two children, external slots hold nothing, entries point back at their slots, keys are strictly ascending, and the slot count matches the entry count.
func (m *Map[K, V]) Verify() error {
	m.init()
	root := m.tree.Root()
	if root == bintree.NoPosition {
		return fmt.Errorf("%w: tree missing root slot", ErrInvalidTree)
	}
	count := 0
	var last *Entry[K, V]
	for p := range m.tree.Positions() {
		e := m.entry(p)
		left, right := m.tree.Left(p), m.tree.Right(p)
		if m.tree.IsExternal(p) {
			if e != nil {
				return fmt.Errorf("%w: external slot %d holds an entry", ErrInvalidTree, p)
			}
			continue
		}
		if left == bintree.NoPosition || right == bintree.NoPosition {
			return fmt.Errorf("%w: internal slot %d has a single child", ErrInvalidTree, p)
		}
		if e == nil {
			return fmt.Errorf("%w: internal slot %d has no entry", ErrInvalidTree, p)
		}
		if e.pos != p {
			return fmt.Errorf("%w: entry at slot %d points to %d", ErrInvalidTree, p, e.pos)
		}
		if last != nil {
			c, err := m.cmp.Compare(last.key, e.key)
			if err != nil {
				return err
			}
			if c == 0 {
				return fmt.Errorf("%w: duplicate key %v", ErrInvalidTree, e.key)
			}
			if c > 0 {
				return fmt.Errorf("%w: out of order keys %v, %v", ErrInvalidTree, last.key, e.key)
			}
		}
		last = e
		count++
	}
	if m.tree.Size() != 2*count+1 {
		return fmt.Errorf("%w: %d slots for %d entries", ErrInvalidTree, m.tree.Size(), count)
	}
	return nil
}
