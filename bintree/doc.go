/*
Linked binary tree with position handles, backed by a slot arena.

## Terminology

slot: one node of the tree. slots live in a contiguous slice and refer to their parent and children by index, never by pointer

position: opaque handle (an index into the arena) for a slot. positions stay valid until the slot is removed; after that the index may be recycled for a new slot

internal: a slot with at least one child. external: a slot with no children

## Hacking

Removed slots go on a free list and are handed out again by later insertions. Holding on to a position across a Remove of that same slot is a bug, and is only detected when the slot has not been recycled yet.
*/
package bintree
