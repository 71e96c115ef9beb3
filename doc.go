// Package reprint renders arbitrary Go values as one-line debug text.
//
// A value is classified into a [Shape] (scalar, pair, tuple, sequence, set,
// mapping, or adaptor) and written with the bracket and separator strings of
// a [Printer]. Composites are rendered recursively; each element is
// classified on its own, so a map of slices of pairs needs no per-type code:
//
//	reprint.Sprint(map[string][]reprint.Pair[int, int]{"a": {{1, 2}}})
//	// {a: [(1, 2)]}
//
// The central entry points are [Printer.Fprint] and [Printer.Sprint]. The
// package-level [Fprint] and [Sprint] use [Pretty]; [Fprintb] and [Sprintb]
// use [Basic].
//
// # Styles
//
// A [Printer] holds one [Style] per composite shape:
//
//   - Tuple: pairs and tuples
//   - List: sequences and sets
//   - Dict: mappings, with KeyValueSep between key and value
//
// [Pretty] brackets everything: (1, 2), [1, 2], {a: 1}. [Basic] drops the
// brackets and separates items with single spaces: 1 2. Custom printers are
// plain values, or can be loaded from YAML with [ParseStyles].
//
// # Classification
//
// [Classify] checks capability interfaces first, in this order:
//
//   - [Pairer] → pair
//   - [Tupler] → tuple
//   - [Mappable] → mapping
//   - [Membered] → set
//   - [Sequencer] → sequence
//   - [Snapshotter] → adaptor
//
// A type implementing [fmt.Stringer] or error is a scalar even when it is a
// slice or array underneath. Otherwise the shape follows from the type:
//
//   - map[K]struct{} → set
//   - any other map → mapping
//   - slice, array, *list.List → sequence
//   - func(yield func(T) bool), or an All method returning one → sequence
//   - func(yield func(K, V) bool), or an All method returning one → mapping
//   - Push and Pop methods without iteration → adaptor
//   - anything else → scalar
//
// Pointers to maps, slices, and arrays are rendered as their target, even when
// the pointer has Push and Pop methods (a container/heap slice, say). A value
// whose capability methods have pointer receivers is rendered through a
// pointer to a copy, so an [OrderedMap] stored by value still renders as a
// mapping.
// Classification depends only on the dynamic type and is cached per type.
//
// # Ordering
//
// Built-in maps are rendered in sorted key order so repeated renders are
// identical. Everything else, including [OrderedMap] and [Multimap], is
// rendered in its own iteration order.
//
// # Adaptors
//
// Stacks, queues, and priority queues hide their storage. Such a type opts
// into printing by implementing [Snapshotter], returning a copy of its
// storage in observation order; package adaptor provides implementations.
// A Push/Pop type without Snapshot renders as "<adaptor>".
//
// # Limits
//
// [Printer.MaxDepth] replaces composites nested deeper than the limit with
// "...". [Printer.MaxWidth] truncates wide scalars using terminal column
// widths. Cyclic data is not supported.
//
// # Errors
//
// Rendering fails only when the writer does; the writer's first error is
// returned unchanged. The package exports sentinel errors for style lookup:
//
//   - [ErrUnknownStyle]: no built-in or custom style has that name
//   - [ErrInvalidStyles]: a styles document could not be parsed
package reprint
