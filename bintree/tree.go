package bintree

import (
	"errors"
	"fmt"
)

// Handle for a slot in a Tree.
type Position int32

// Returned by navigation methods when the requested relative does not exist.
const NoPosition Position = -1

var ErrInvalidPosition = errors.New("position does not refer to a live slot")

var ErrNonEmptyTree = errors.New("tree already has a root")

var ErrChildExists = errors.New("slot already has that child")

var ErrTwoChildren = errors.New("can not remove slot with two children")

type slot[E any] struct {
	elem   E
	parent Position
	left   Position
	right  Position
	live   bool
}

// Binary tree storing one element of type E per slot.
//
// The zero value is an empty tree ready to use.
type Tree[E any] struct {
	slots []slot[E]
	// indexes of removed slots, reused before growing the arena
	free []Position
	root Position
	size int
	// set once the root field is meaningful; lets the zero value work with root index 0
	rooted bool
}

func New[E any]() *Tree[E] {
	return &Tree[E]{root: NoPosition}
}

// Number of live slots (internal and external).
func (t *Tree[E]) Size() int {
	return t.size
}

func (t *Tree[E]) IsEmpty() bool {
	return t.size == 0
}

func (t *Tree[E]) Root() Position {
	if !t.rooted {
		return NoPosition
	}
	return t.root
}

func (t *Tree[E]) get(p Position) (*slot[E], error) {
	if p < 0 || int(p) >= len(t.slots) || !t.slots[p].live {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, p)
	}
	return &t.slots[p], nil
}

func (t *Tree[E]) Parent(p Position) Position {
	s, err := t.get(p)
	if err != nil {
		return NoPosition
	}
	return s.parent
}

func (t *Tree[E]) Left(p Position) Position {
	s, err := t.get(p)
	if err != nil {
		return NoPosition
	}
	return s.left
}

func (t *Tree[E]) Right(p Position) Position {
	s, err := t.get(p)
	if err != nil {
		return NoPosition
	}
	return s.right
}

// Returns the other child of p's parent, or NoPosition if p is the root or an only child.
func (t *Tree[E]) Sibling(p Position) Position {
	parent := t.Parent(p)
	if parent == NoPosition {
		return NoPosition
	}
	ps := &t.slots[parent]
	if ps.left == p {
		return ps.right
	}
	return ps.left
}

func (t *Tree[E]) IsRoot(p Position) bool {
	return t.rooted && p == t.root
}

// True if the slot has at least one child. Invalid positions are neither internal nor external.
func (t *Tree[E]) IsInternal(p Position) bool {
	s, err := t.get(p)
	if err != nil {
		return false
	}
	return s.left != NoPosition || s.right != NoPosition
}

func (t *Tree[E]) IsExternal(p Position) bool {
	s, err := t.get(p)
	if err != nil {
		return false
	}
	return s.left == NoPosition && s.right == NoPosition
}

// Returns the element stored at p, or the zero element if p is not a live slot.
func (t *Tree[E]) Element(p Position) E {
	s, err := t.get(p)
	if err != nil {
		var zero E
		return zero
	}
	return s.elem
}

// Replaces the element at p, returning the previous one.
func (t *Tree[E]) Set(p Position, elem E) (E, error) {
	s, err := t.get(p)
	if err != nil {
		var zero E
		return zero, err
	}
	prev := s.elem
	s.elem = elem
	return prev, nil
}

// allocates a slot, preferring the free list
func (t *Tree[E]) alloc(elem E, parent Position) Position {
	s := slot[E]{
		elem:   elem,
		parent: parent,
		left:   NoPosition,
		right:  NoPosition,
		live:   true,
	}
	t.size++
	if n := len(t.free); n > 0 {
		p := t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[p] = s
		return p
	}
	t.slots = append(t.slots, s)
	return Position(len(t.slots) - 1)
}

func (t *Tree[E]) release(p Position) {
	// drop the element so the arena does not keep it reachable
	t.slots[p] = slot[E]{parent: NoPosition, left: NoPosition, right: NoPosition}
	t.free = append(t.free, p)
	t.size--
}

func (t *Tree[E]) AddRoot(elem E) (Position, error) {
	if t.rooted {
		return NoPosition, ErrNonEmptyTree
	}
	t.root = t.alloc(elem, NoPosition)
	t.rooted = true
	return t.root, nil
}

// Creates a new left child of p holding elem.
func (t *Tree[E]) AddLeft(p Position, elem E) (Position, error) {
	s, err := t.get(p)
	if err != nil {
		return NoPosition, err
	}
	if s.left != NoPosition {
		return NoPosition, fmt.Errorf("%w: left of %d", ErrChildExists, p)
	}
	c := t.alloc(elem, p)
	// alloc may have grown the arena; don't reuse s
	t.slots[p].left = c
	return c, nil
}

// Creates a new right child of p holding elem.
func (t *Tree[E]) AddRight(p Position, elem E) (Position, error) {
	s, err := t.get(p)
	if err != nil {
		return NoPosition, err
	}
	if s.right != NoPosition {
		return NoPosition, fmt.Errorf("%w: right of %d", ErrChildExists, p)
	}
	c := t.alloc(elem, p)
	t.slots[p].right = c
	return c, nil
}

// Removes the slot at p and returns its element. If p has one child, that child takes p's place under p's parent (or becomes the root).
//
// Slots with two children can not be removed.
func (t *Tree[E]) Remove(p Position) (E, error) {
	var zero E
	s, err := t.get(p)
	if err != nil {
		return zero, err
	}
	if s.left != NoPosition && s.right != NoPosition {
		return zero, fmt.Errorf("%w: %d", ErrTwoChildren, p)
	}
	child := s.left
	if child == NoPosition {
		child = s.right
	}
	parent := s.parent
	if child != NoPosition {
		t.slots[child].parent = parent
	}
	if parent == NoPosition {
		t.root = child
		t.rooted = child != NoPosition
	} else {
		ps := &t.slots[parent]
		if ps.left == p {
			ps.left = child
		} else {
			ps.right = child
		}
	}
	elem := s.elem
	t.release(p)
	return elem, nil
}

// Number of slots on the longest root-to-leaf path; zero for an empty tree.
func (t *Tree[E]) Height() int {
	if !t.rooted {
		return 0
	}
	type frame struct {
		p     Position
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > height {
			height = f.depth
		}
		s := &t.slots[f.p]
		if s.left != NoPosition {
			stack = append(stack, frame{s.left, f.depth + 1})
		}
		if s.right != NoPosition {
			stack = append(stack, frame{s.right, f.depth + 1})
		}
	}
	return height
}
