package vector

import "iter"

// All returns an iterator over v's elements paired with their 0-based
// index, striding leaf-by-leaf (one tree descent per width elements)
// rather than performing one descent per index.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		tailOff := v.tailOffset()

		i := 0
		for i < tailOff {
			n := v.leafFor(i)
			offset := i & mask
			for _, val := range n.values[offset:] {
				if !yield(i, val) {
					return
				}
				i++
			}
		}

		for j, val := range v.tail {
			if !yield(tailOff+j, val) {
				return
			}
		}
	}
}

// Values returns an iterator over v's elements in index order, without
// their indices.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.All() {
			if !yield(val) {
				return
			}
		}
	}
}
