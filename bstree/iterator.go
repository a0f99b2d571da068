package bstree

// Iterator is a cursor over the nodes of a Tree. It navigates using only
// the node links, so multiple iterators over one tree can coexist for
// reading. Two iterators are equal (==) exactly when they reference the
// same node; the value returned by End compares equal to every iterator
// that has walked off the back of the same tree.
//
// An iterator stays valid as long as the node it references is alive.
// Erasing a node invalidates only the iterators referencing that node.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns an iterator at the smallest value in the tree, or End
// when the tree is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{t.header.left}
}

// End returns the iterator one past the largest value in the tree.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{t.header}
}

// Value returns the value at the iterator.
// It panics with ErrInvalidIterator at End.
func (it Iterator[T]) Value() T {
	if it.n == nil || it.n.sentinel {
		panic(ErrInvalidIterator)
	}
	return it.n.value
}

// Next returns the iterator at the in-order successor: the next larger
// value, or End after the largest. It panics with ErrInvalidIterator when
// called on End.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil || it.n.sentinel {
		panic(ErrInvalidIterator)
	}
	return Iterator[T]{successor(it.n)}
}

// Prev returns the iterator at the in-order predecessor. Prev of End is
// the iterator at the largest value, anchoring backward scans. It panics
// with ErrInvalidIterator when called on Begin (or on End of an empty
// tree, where Begin and End coincide).
func (it Iterator[T]) Prev() Iterator[T] {
	if it.n == nil {
		panic(ErrInvalidIterator)
	}
	if it.n.sentinel {
		// The header's right slot caches the maximum; on an empty tree
		// it points back at the header.
		if it.n.right.sentinel {
			panic(ErrInvalidIterator)
		}
		return Iterator[T]{it.n.right}
	}
	return Iterator[T]{predecessor(it.n)}
}

// successor finds the next node in order. If n has a right subtree the
// successor is its leftmost node. Otherwise it is the first ancestor from
// which n's subtree hangs on the left; climbing off the root lands on the
// sentinel, which is the end position.
func successor[T any](n *node[T]) *node[T] {
	if n.right != nil {
		return minimum(n.right)
	}
	p := n.parent
	for !p.sentinel && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// predecessor mirrors successor. Climbing off the root means n was the
// minimum, which has no predecessor.
func predecessor[T any](n *node[T]) *node[T] {
	if n.left != nil {
		return maximum(n.left)
	}
	p := n.parent
	for !p.sentinel && n == p.left {
		n, p = p, p.parent
	}
	if p.sentinel {
		panic(ErrInvalidIterator)
	}
	return p
}
