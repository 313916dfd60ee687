package treemap

import (
	"iter"
)

// Iterates over key/value pairs in ascending key order. The pairs are snapshotted when iteration starts, so the map may be modified inside the loop.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.Entries() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
