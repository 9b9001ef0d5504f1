package types

import "iter"

// DefaultMap is a generic map wrapper that returns default values for missing keys
// and remembers the order in which keys were first inserted.
//
// Iteration through All always follows first-insertion order, which makes
// "first seen wins" decisions over the map reproducible.
//
// Example use case:
//
//	m := NewDefaultMap[string](func() int { return 0 })
//	count := m.Get("key") // returns 0 if "key" is not yet in the map
type DefaultMap[K comparable, V any] struct {
	data        map[K]V  // underlying map storing the key-value pairs
	keys        []K      // keys in first-insertion order
	defaultFunc func() V // function used to generate default values for missing keys
}

// NewDefaultMap creates a new DefaultMap with a user-defined default function.
//
// Parameters:
//   - defaultFunc: function that produces a default value for the map's value type.
//
// Returns:
//   - An empty DefaultMap that uses defaultFunc for missing keys.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get retrieves the value associated with the given key.
//
// If the key is not present, it invokes the defaultFunc to generate a default value,
// stores it in the map, and then returns it.
//
// Parameters:
//   - key: the key to look up.
//
// Returns:
//   - The stored value, or the newly stored default value.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.Set(key, val)
	return val
}

// Lookup returns the value stored for key without creating a default entry.
func (d *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := d.data[key]
	return val, ok
}

// Set assigns a value to the given key. Overwriting an existing key keeps
// its original position in the iteration order.
//
// Parameters:
//   - key: the key to assign.
//   - val: the value to store under key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	if _, ok := d.data[key]; !ok {
		d.keys = append(d.keys, key)
	}

	d.data[key] = val
}

// Len returns the number of keys stored in the map.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.keys)
}

// All returns an iterator over the key-value pairs in first-insertion order.
func (d *DefaultMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range d.keys {
			if !yield(key, d.data[key]) {
				return
			}
		}
	}
}
