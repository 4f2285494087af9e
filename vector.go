// Package vector implements a persistent, indexed sequence: an immutable
// ordered collection supporting O(log n) positional reads (O(1) for
// elements in the tail) and O(log n) append,
// positional update, and last-element removal, all realised as a
// bit-partitioned hash-array-mapped trie with a small tail buffer, in the
// style popularised by Clojure's PersistentVector.
//
// Every mutating method returns a new Vector while sharing the bulk of its
// interior nodes with the receiver, so a long derivation chain costs
// O(log n) time and O(log n) fresh nodes per step rather than O(n) copying.
// A Vector's zero value is a valid, empty vector.
package vector

// Vector is an immutable, indexed sequence of values of type T.
//
// tail holds the most recently appended elements (1..width of them,
// unless the vector is empty, in which case it is nil). tree is the root
// of the main trie, or nil if size <= width (everything lives in tail).
// shifts is the bit offset to apply when descending from tree's root.
type Vector[T any] struct {
	tree   *node[T]
	tail   []T
	size   int
	shifts int
}

// New returns an empty Vector. The zero value of Vector[T] is equally
// usable; New exists for symmetry with FromSlice.
func New[T any]() Vector[T] {
	return Vector[T]{}
}

// Len returns the number of elements in v.
func (v Vector[T]) Len() int {
	return v.size
}

// IsEmpty reports whether v contains no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// tailOffset returns the index of the first element held in the tail.
func (v Vector[T]) tailOffset() int {
	return v.size - len(v.tail)
}

// leafFor returns the leaf node containing index i, which must not lie in
// the tail (callers check tailOffset first).
func (v Vector[T]) leafFor(i int) *node[T] {
	n := v.tree
	for level := v.shifts; level > 0; level -= bits {
		n = n.children[(i>>level)&mask]
	}
	return n
}

// Get returns the element at position i. It panics with *OutOfBoundsError
// if i is outside [0, Len()).
func (v Vector[T]) Get(i int) T {
	if i < 0 || i >= v.size {
		outOfBounds(i, v.size)
	}

	tailOff := v.tailOffset()
	if i >= tailOff {
		return v.tail[i-tailOff]
	}

	n := v.leafFor(i)
	return n.values[i&mask]
}
