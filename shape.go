package reprint

import "iter"

// Pair is a two-component record rendered with the tuple style.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns Pair{a, b}.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Parts implements [Pairer].
func (p Pair[A, B]) Parts() (any, any) { return p.First, p.Second }

// Tuple is a fixed sequence of heterogeneous components. It renders with the
// tuple style even though it is a slice underneath.
type Tuple []any

// MakeTuple returns a Tuple holding vs.
func MakeTuple(vs ...any) Tuple { return Tuple(vs) }

// Fields implements [Tupler].
func (t Tuple) Fields() []any { return t }

// Set is a hash set. Like any map with a zero-size value type it renders as
// a set with its members in sorted order.
type Set[K comparable] map[K]struct{}

// NewSet returns a set holding keys.
func NewSet[K comparable](keys ...K) Set[K] {
	s := make(Set[K], len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts k.
func (s Set[K]) Add(k K) { s[k] = struct{}{} }

// Has reports whether k is a member.
func (s Set[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of members.
func (s Set[K]) Len() int { return len(s) }

// OrderedMap is a map that iterates in insertion order. Updating an
// existing key keeps its position.
type OrderedMap[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{vals: make(map[K]V)}
}

// Set stores v under k.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if m.vals == nil {
		m.vals = make(map[K]V)
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// Delete removes k.
func (m *OrderedMap[K, V]) Delete(k K) {
	if _, ok := m.vals[k]; !ok {
		return
	}
	delete(m.vals, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// All yields entries in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// Entries implements [Mappable].
func (m *OrderedMap[K, V]) Entries() iter.Seq2[any, any] {
	return erase2(m.All())
}

// Multimap is an insertion-ordered map that keeps duplicate keys.
type Multimap[K comparable, V any] struct {
	entries []Pair[K, V]
}

// Add appends the entry k, v.
func (m *Multimap[K, V]) Add(k K, v V) {
	m.entries = append(m.entries, Pair[K, V]{First: k, Second: v})
}

// Get returns every value stored under k, in insertion order.
func (m *Multimap[K, V]) Get(k K) []V {
	var out []V
	for _, e := range m.entries {
		if e.First == k {
			out = append(out, e.Second)
		}
	}
	return out
}

// Len returns the number of entries, counting duplicates.
func (m *Multimap[K, V]) Len() int { return len(m.entries) }

// All yields entries in insertion order.
func (m *Multimap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.First, e.Second) {
				return
			}
		}
	}
}

// Entries implements [Mappable].
func (m *Multimap[K, V]) Entries() iter.Seq2[any, any] {
	return erase2(m.All())
}

func erase[T any](seq iter.Seq[T]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

func erase2[K, V any](seq iter.Seq2[K, V]) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range seq {
			if !yield(k, v) {
				return
			}
		}
	}
}
