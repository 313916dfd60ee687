/*
Ordered key/value map on a binary search tree with sentinel leaves.

## Terminology

internal slot: a tree slot holding exactly one entry, with exactly two children

external slot: a sentinel leaf with no entry and no children. an empty map is a single external root slot

entry: key, value, and the position of the slot currently holding it. the key never changes; a Put on an existing key installs a new entry at the same position

## Tricky Bits

When inserting, the external slot where the search ends is expanded in place: it receives the entry and two fresh external children.

When removing an entry whose slot has an external child, that external child and the entry's slot are both removed, and the other child takes their place. If both children are internal, the in-order predecessor (one step left, then right until reaching an external slot) is copied into the slot being removed from, and the predecessor's slot is collapsed instead.

There is no rebalancing. Inserting keys in sorted order produces a chain, and every operation is O(n) on it.
*/
package treemap
