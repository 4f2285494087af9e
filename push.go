package vector

// Push returns a new Vector with e appended after the last element.
//
// If the tail has room, the new vector shares tree and shifts and carries a
// freshly copied tail. Otherwise the full tail is flushed into the trie as
// a new leaf (growing the tree's height first if its right spine is
// completely saturated), and the new tail becomes [e].
func (v Vector[T]) Push(e T) Vector[T] {
	if len(v.tail) < width {
		tail := make([]T, len(v.tail)+1)
		copy(tail, v.tail)
		tail[len(v.tail)] = e
		return Vector[T]{tree: v.tree, tail: tail, size: v.size + 1, shifts: v.shifts}
	}

	flushed := newLeaf(v.tail)
	newTail := []T{e}

	switch {
	case v.tree == nil:
		return Vector[T]{tree: flushed, tail: newTail, size: v.size + 1, shifts: 0}

	case v.tree.leaf:
		branch := newBranch([]*node[T]{v.tree, flushed})
		return Vector[T]{tree: branch, tail: newTail, size: v.size + 1, shifts: bits}

	default:
		tailOff := v.tailOffset()
		n := tailOff
		for n&mask == 0 {
			n >>= bits
		}

		if n == 1 {
			root := newBranch([]*node[T]{v.tree, path(v.shifts, flushed)})
			return Vector[T]{tree: root, tail: newTail, size: v.size + 1, shifts: v.shifts + bits}
		}

		root := pushSpine(v.shifts, v.tree, flushed, tailOff)
		return Vector[T]{tree: root, tail: newTail, size: v.size + 1, shifts: v.shifts}
	}
}

// pushSpine path-copies the right spine of n (a branch at the given level)
// down to the point flushed must be grafted in, extending the spine with
// fresh nodes where the branch has no child yet and cloning-then-descending
// where one already exists. Every sibling left of the spine is shared by
// reference.
func pushSpine[T any](level int, n *node[T], flushed *node[T], tailOff int) *node[T] {
	idx := (tailOff >> level) & mask

	if idx == len(n.children) {
		children := make([]*node[T], idx+1)
		copy(children, n.children)
		children[idx] = path(level-bits, flushed)
		return newBranch(children)
	}

	clone := n.cloneBranch()
	if level == bits {
		clone.children[idx] = flushed
	} else {
		clone.children[idx] = pushSpine(level-bits, n.children[idx], flushed, tailOff)
	}
	return clone
}

// Append folds Push over es in order, returning the resulting Vector.
// Append() with no arguments returns v unchanged.
func (v Vector[T]) Append(es ...T) Vector[T] {
	for _, e := range es {
		v = v.Push(e)
	}
	return v
}
