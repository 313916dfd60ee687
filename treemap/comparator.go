package treemap

import (
	"cmp"
	"fmt"
	"reflect"
)

// Total order over keys. Compare returns a negative number when a sorts before b, zero when they are equal, and a positive number otherwise.
type Comparator[K any] interface {
	Compare(a, b K) (int, error)
}

// Adapts an ordinary comparison function (like cmp.Compare or strings.Compare) to a Comparator which never fails.
type CompareFunc[K any] func(a, b K) int

func (f CompareFunc[K]) Compare(a, b K) (int, error) {
	return f(a, b), nil
}

// Returns the default comparator: the natural ordering of the dynamic key values.
//
// Values of the same integer, unsigned, float, or string kind are compared with the usual ordering (named types included). Values with a `Compare(T) int` method, such as time.Time, use that method. Anything else, including values of different kinds or types, results in ErrIncomparable.
func NaturalOrder[K any]() Comparator[K] {
	return naturalOrder[K]{}
}

type naturalOrder[K any] struct{}

func (naturalOrder[K]) Compare(a, b K) (int, error) {
	// fast paths for common key types, skipping reflection
	switch av := any(a).(type) {
	case string:
		if bv, ok := any(b).(string); ok {
			return cmp.Compare(av, bv), nil
		}
	case int:
		if bv, ok := any(b).(int); ok {
			return cmp.Compare(av, bv), nil
		}
	}
	return compareValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

func compareValues(a, b reflect.Value) (int, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, fmt.Errorf("%w: nil value", ErrIncomparable)
	}
	if a.Type() != b.Type() {
		return 0, fmt.Errorf("%w: %s and %s", ErrIncomparable, a.Type(), b.Type())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float()), nil
	case reflect.String:
		return cmp.Compare(a.String(), b.String()), nil
	}
	m := a.MethodByName("Compare")
	if m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 1 && mt.In(0) == b.Type() && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Int {
			return int(m.Call([]reflect.Value{b})[0].Int()), nil
		}
	}
	return 0, fmt.Errorf("%w: %s has no natural ordering", ErrIncomparable, a.Type())
}

// Reports whether the key is a nil pointer, interface, map, slice, channel, or function. Such keys are rejected by the map.
func isNilKey[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}
