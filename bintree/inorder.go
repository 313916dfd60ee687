package bintree

import (
	"iter"
)

// Lazily yields every slot position in in-order (left sub-tree, slot, right sub-tree).
//
// The tree must not be modified while the sequence is being consumed.
func (t *Tree[E]) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		var stack []Position
		p := t.Root()
		for p != NoPosition || len(stack) > 0 {
			for p != NoPosition {
				stack = append(stack, p)
				p = t.slots[p].left
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p) {
				return
			}
			p = t.slots[p].right
		}
	}
}

// Lazily yields the element of every slot in in-order, including slots holding a zero element.
func (t *Tree[E]) Elements() iter.Seq[E] {
	return func(yield func(E) bool) {
		for p := range t.Positions() {
			if !yield(t.slots[p].elem) {
				return
			}
		}
	}
}
