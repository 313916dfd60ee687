package treemap

import (
	"fmt"
	"strings"

	"github.com/ibsatassew/ContactsApp/bintree"
)

// Ordered map from K to V. Internal tree slots hold entries; external slots hold nil.
//
// The zero value is an empty map ordered by NaturalOrder. A Map is not safe for concurrent use.
type Map[K any, V any] struct {
	tree *bintree.Tree[*Entry[K, V]]
	cmp  Comparator[K]
}

// Creates an empty map ordered by NaturalOrder.
func NewMap[K any, V any]() *Map[K, V] {
	return NewMapWithComparator[K, V](NaturalOrder[K]())
}

// Creates an empty map ordered by the given comparator, which is used for the lifetime of the map.
func NewMapWithComparator[K any, V any](c Comparator[K]) *Map[K, V] {
	m := &Map[K, V]{cmp: c}
	m.init()
	return m
}

func (m *Map[K, V]) init() {
	if m.tree != nil {
		return
	}
	if f, ok := m.cmp.(CompareFunc[K]); m.cmp == nil || (ok && f == nil) {
		m.cmp = NaturalOrder[K]()
	}
	m.tree = bintree.New[*Entry[K, V]]()
	// the external root slot lives as long as the map
	m.tree.AddRoot(nil)
}

// Number of entries. Only internal slots hold entries, and every internal slot has two children.
func (m *Map[K, V]) Len() int {
	m.init()
	return (m.tree.Size() - 1) / 2
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Number of slots on the longest path from the root to an external slot, counting both.
func (m *Map[K, V]) Height() int {
	m.init()
	return m.tree.Height()
}

func (m *Map[K, V]) checkKey(key K) error {
	if isNilKey(key) {
		return ErrInvalidKey
	}
	return nil
}

func (m *Map[K, V]) entry(p bintree.Position) *Entry[K, V] {
	return m.tree.Element(p)
}

// Installs an entry at an internal position, pointing the entry back at that position. Returns the value of the entry it replaced.
func (m *Map[K, V]) replaceEntry(p bintree.Position, e *Entry[K, V]) (V, error) {
	var zero V
	if e == nil {
		return zero, ErrInvalidEntry
	}
	e.pos = p
	prev, err := m.tree.Set(p, e)
	if err != nil {
		return zero, err
	}
	if prev == nil {
		return zero, nil
	}
	return prev.value, nil
}

// Expands the external slot at p into an internal slot holding e, with two new external children. On failure the slot is left external.
func (m *Map[K, V]) insertAtExternal(p bintree.Position, e *Entry[K, V]) error {
	e.pos = p
	if _, err := m.tree.Set(p, e); err != nil {
		return err
	}
	left, err := m.tree.AddLeft(p, nil)
	if err != nil {
		m.tree.Set(p, nil)
		return fmt.Errorf("expanding external slot: %w", err)
	}
	if _, err := m.tree.AddRight(p, nil); err != nil {
		m.tree.Remove(left)
		m.tree.Set(p, nil)
		return fmt.Errorf("expanding external slot: %w", err)
	}
	return nil
}

// Removes the external slot at p and its parent; p's sibling takes the parent's place.
func (m *Map[K, V]) removeExternal(p bintree.Position) error {
	if !m.tree.IsExternal(p) {
		return fmt.Errorf("%w: collapsing internal slot %d", ErrInvalidTree, p)
	}
	parent := m.tree.Parent(p)
	if _, err := m.tree.Remove(p); err != nil {
		return err
	}
	if _, err := m.tree.Remove(parent); err != nil {
		return err
	}
	return nil
}

// Descends from p towards key. Returns the internal position holding key, or the external position where it would be inserted.
func (m *Map[K, V]) search(key K, p bintree.Position) (bintree.Position, error) {
	for m.tree.IsInternal(p) {
		c, err := m.cmp.Compare(key, m.entry(p).key)
		if err != nil {
			return bintree.NoPosition, err
		}
		switch {
		case c < 0:
			p = m.tree.Left(p)
		case c > 0:
			p = m.tree.Right(p)
		default:
			return p, nil
		}
	}
	return p, nil
}

// Reads the value for key. If key is not in the map, returns (zero, false, nil).
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	m.init()
	var zero V
	if err := m.checkKey(key); err != nil {
		return zero, false, err
	}
	p, err := m.search(key, m.tree.Root())
	if err != nil {
		return zero, false, err
	}
	if m.tree.IsExternal(p) {
		return zero, false, nil
	}
	return m.entry(p).value, true, nil
}

func (m *Map[K, V]) Contains(key K) (bool, error) {
	_, ok, err := m.Get(key)
	return ok, err
}

// Stores value under key. If the key was already present, returns the previous value and true.
func (m *Map[K, V]) Put(key K, value V) (V, bool, error) {
	m.init()
	var zero V
	if err := m.checkKey(key); err != nil {
		return zero, false, err
	}
	p, err := m.search(key, m.tree.Root())
	if err != nil {
		return zero, false, err
	}
	e := &Entry[K, V]{key: key, value: value}
	if m.tree.IsExternal(p) {
		if err := m.insertAtExternal(p, e); err != nil {
			return zero, false, err
		}
		return zero, false, nil
	}
	prev, err := m.replaceEntry(p, e)
	if err != nil {
		return zero, false, err
	}
	return prev, true, nil
}

// Removes key from the map, returning the removed value. If key is not in the map, returns (zero, false, nil).
func (m *Map[K, V]) Remove(key K) (V, bool, error) {
	m.init()
	var zero V
	if err := m.checkKey(key); err != nil {
		return zero, false, err
	}
	p, err := m.search(key, m.tree.Root())
	if err != nil {
		return zero, false, err
	}
	if m.tree.IsExternal(p) {
		return zero, false, nil
	}
	removed := m.entry(p)

	var leaf bintree.Position
	if left := m.tree.Left(p); m.tree.IsExternal(left) {
		leaf = left
	} else if right := m.tree.Right(p); m.tree.IsExternal(right) {
		leaf = right
	} else {
		// both children internal: pull up the in-order predecessor, then collapse the slot it came from
		leaf = left
		for m.tree.IsInternal(leaf) {
			leaf = m.tree.Right(leaf)
		}
		pred := m.tree.Parent(leaf)
		if _, err := m.replaceEntry(p, m.entry(pred)); err != nil {
			return zero, false, err
		}
	}
	if err := m.removeExternal(leaf); err != nil {
		return zero, false, err
	}
	return removed.value, true, nil
}

// Snapshot of all entries, in ascending key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	m.init()
	out := make([]Entry[K, V], 0, m.Len())
	for e := range m.tree.Elements() {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// Snapshot of all keys, in ascending order.
func (m *Map[K, V]) Keys() []K {
	m.init()
	out := make([]K, 0, m.Len())
	for e := range m.tree.Elements() {
		if e != nil {
			out = append(out, e.key)
		}
	}
	return out
}

// Snapshot of all values, in ascending key order.
func (m *Map[K, V]) Values() []V {
	m.init()
	out := make([]V, 0, m.Len())
	for e := range m.tree.Elements() {
		if e != nil {
			out = append(out, e.value)
		}
	}
	return out
}

// Renders entries as "(k1, v1), (k2, v2)" in key order.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	for i, e := range m.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%v, %v)", e.key, e.value)
	}
	return sb.String()
}
