package treemap

import (
	"fmt"
)

// A single mutation of a Map: Value is the new value (nil for a removal) and Prev the value it replaced (nil if the key was absent).
type Operation[K any, V any] struct {
	Key   K
	Value *V
	Prev  *V
}

func (op *Operation[K, V]) IsCreate() bool {
	return op.Value != nil && op.Prev == nil
}

func (op *Operation[K, V]) IsUpdate() bool {
	return op.Value != nil && op.Prev != nil
}

func (op *Operation[K, V]) IsDelete() bool {
	return op.Value == nil && op.Prev != nil
}

// Mutates the map, returning a full `Operation`. A nil val removes the key.
func ApplyOp[K any, V any](m *Map[K, V], key K, val *V) (*Operation[K, V], error) {
	op := &Operation[K, V]{
		Key:   key,
		Value: val,
	}
	var prev V
	var found bool
	var err error
	if val != nil {
		prev, found, err = m.Put(key, *val)
	} else {
		prev, found, err = m.Remove(key)
	}
	if err != nil {
		return nil, err
	}
	if found {
		op.Prev = &prev
	}
	return op, nil
}

// Does a simple "forwards" check that the map reflects the operation. Values are compared with the supplied equality function.
func CheckOp[K any, V any](m *Map[K, V], op *Operation[K, V], equal func(a, b V) bool) error {
	val, found, err := m.Get(op.Key)
	if err != nil {
		return err
	}
	if op.IsCreate() || op.IsUpdate() {
		if !found || !equal(val, *op.Value) {
			return fmt.Errorf("map value did not match op: %v", op.Key)
		}
		return nil
	}
	if op.IsDelete() {
		if found {
			return fmt.Errorf("key still in map after deletion op: %v", op.Key)
		}
		return nil
	}
	return fmt.Errorf("invalid operation")
}

// Reverts an operation previously applied to the map.
func InvertOp[K any, V any](m *Map[K, V], op *Operation[K, V]) error {
	if op.IsCreate() {
		_, found, err := m.Remove(op.Key)
		if err != nil {
			return fmt.Errorf("failed to invert op: %w", err)
		}
		if !found {
			return fmt.Errorf("failed to invert creation")
		}
		return nil
	}
	if op.IsUpdate() || op.IsDelete() {
		_, found, err := m.Put(op.Key, *op.Prev)
		if err != nil {
			return fmt.Errorf("failed to invert op: %w", err)
		}
		if op.IsUpdate() && !found {
			return fmt.Errorf("failed to invert update")
		}
		if op.IsDelete() && found {
			return fmt.Errorf("failed to invert deletion")
		}
		return nil
	}
	return fmt.Errorf("invalid operation")
}
