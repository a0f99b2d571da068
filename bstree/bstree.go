// Package bstree implements an in-memory ordered set backed by an
// unbalanced binary search tree.
//
// The tree keeps a sentinel header node whose three link slots are
// overloaded: parent holds the root of the real tree, left caches the
// minimum node and right caches the maximum node. When the tree is empty
// all three point back at the header itself. The cache makes Front, Back
// and Begin O(1) instead of O(depth).
//
// No rebalancing is performed, so a sorted insertion sequence degrades to
// O(n) depth. Write operations are not safe for concurrent mutation by
// multiple goroutines, but Read operations are.
package bstree

import (
	"cmp"
	"sync"
)

type (
	// LessFunc determines how to order a type 'T'. It should implement a
	// strict weak ordering; if neither less(a, b) nor less(b, a) holds, a
	// and b are treated as equal and only one of them can live in the tree.
	LessFunc[T any] func(a, b T) bool

	// node is a data node of the tree, or the sentinel header when the
	// sentinel flag is set. A node owns its left and right subtrees; the
	// parent link is used only for traversal, never for teardown.
	node[T any] struct {
		value    T
		parent   *node[T]
		left     *node[T]
		right    *node[T]
		sentinel bool
	}

	// FreeList represents a free list of tree nodes. By default each Tree
	// has its own FreeList, but multiple Trees can share the same FreeList,
	// in particular when they're created with Clone.
	FreeList[T any] struct {
		mu       sync.Mutex
		freelist []*node[T]
	}

	// Tree is an ordered set of values of type T. Duplicate values are
	// rejected on insertion, so an in-order walk yields strictly
	// increasing values.
	Tree[T any] struct {
		header   *node[T]
		size     int
		less     LessFunc[T]
		freelist *FreeList[T]
	}

	// ValueIterator allows callers of Ascend and Descend to iterate the
	// tree in order. When this function returns false, iteration stops
	// and the Ascend/Descend call returns immediately.
	ValueIterator[T any] func(v T) bool
)

const (
	DefaultFreeListSize = 32
)

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

func (f *FreeList[T]) newNode() (n *node[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	index := len(f.freelist) - 1
	if index < 0 {
		return new(node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	return
}

// freeNode adds the given node to the list, returning true if it was added
// and false if it was discarded.
func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	return
}

// Less returns a LessFunc for types satisfying the cmp.Ordered constraint.
func Less[T cmp.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// New creates a new tree ordered by the natural ordering of T.
func New[T cmp.Ordered]() *Tree[T] {
	return NewWithFreeList(NewFreeList[T](DefaultFreeListSize))
}

// NewWithFreeList creates a new tree that uses the given node free list.
func NewWithFreeList[T cmp.Ordered](f *FreeList[T]) *Tree[T] {
	return NewFuncWithFreeList(Less[T](), f)
}

// NewFunc creates a new tree ordered by the given less function.
func NewFunc[T any](less LessFunc[T]) *Tree[T] {
	return NewFuncWithFreeList(less, NewFreeList[T](DefaultFreeListSize))
}

// NewFuncWithFreeList creates a new tree ordered by the given less function
// that uses the given node free list.
func NewFuncWithFreeList[T any](less LessFunc[T], f *FreeList[T]) *Tree[T] {
	if less == nil {
		panic("nil less function")
	}
	h := &node[T]{sentinel: true}
	h.parent, h.left, h.right = h, h, h
	return &Tree[T]{header: h, less: less, freelist: f}
}

// Of creates a new tree holding the given values.
func Of[T cmp.Ordered](vals ...T) *Tree[T] {
	t := New[T]()
	for _, v := range vals {
		t.Insert(v)
	}
	return t
}

// header slot accessors. The header's parent holds the root, its left the
// cached minimum and its right the cached maximum.

func (t *Tree[T]) root() *node[T] { return t.header.parent }

// reset points the header back at itself, leaving an empty tree. It does
// not free any nodes.
func (t *Tree[T]) reset() {
	h := t.header
	h.parent, h.left, h.right = h, h, h
	t.size = 0
}

func (t *Tree[T]) newNode(v T) (n *node[T]) {
	n = t.freelist.newNode()
	n.value = v
	return
}

func (t *Tree[T]) freeNode(n *node[T]) {
	var zero T
	// clear to allow GC
	n.value = zero
	n.parent, n.left, n.right = nil, nil, nil
	t.freelist.freeNode(n)
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.root() == t.header
}

// Front returns the smallest value in the tree.
// It panics with ErrEmptyTree if the tree is empty.
func (t *Tree[T]) Front() T {
	if t.Empty() {
		panic(ErrEmptyTree)
	}
	return t.header.left.value
}

// Back returns the largest value in the tree.
// It panics with ErrEmptyTree if the tree is empty.
func (t *Tree[T]) Back() T {
	if t.Empty() {
		panic(ErrEmptyTree)
	}
	return t.header.right.value
}

// locate descends from the root looking for v. cur is the node holding v,
// or nil if v is absent; prev is the last node visited on the way down,
// which is where a new node holding v would be attached. Both are nil when
// the tree is empty.
func (t *Tree[T]) locate(v T) (cur, prev *node[T]) {
	if t.Empty() {
		return nil, nil
	}
	cur = t.root()
	for cur != nil {
		if !t.less(v, cur.value) && !t.less(cur.value, v) {
			return cur, prev
		}
		prev = cur
		if t.less(v, cur.value) {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil, prev
}

// link attaches n under prev according to the ordering, or as the root
// when prev is nil, and re-derives the cached extremes. n must arrive with
// nil children.
func (t *Tree[T]) link(n, prev *node[T]) {
	h := t.header
	if prev == nil {
		n.parent = h
		h.parent, h.left, h.right = n, n, n
	} else {
		n.parent = prev
		if t.less(n.value, prev.value) {
			prev.left = n
		} else {
			prev.right = n
		}
		// A new minimum can only appear as the left child of the old
		// minimum; symmetrically for the maximum.
		if h.left.left != nil {
			h.left = h.left.left
		}
		if h.right.right != nil {
			h.right = h.right.right
		}
	}
	t.size++
}

// Insert adds v to the tree and reports whether it was added. If an equal
// value is already present the tree is left untouched and Insert returns
// false.
func (t *Tree[T]) Insert(v T) bool {
	cur, prev := t.locate(v)
	if cur != nil {
		return false
	}
	n := t.newNode(v)
	t.link(n, prev)
	return true
}

// Find returns an iterator at the value equal to v, or End if no such
// value is in the tree.
func (t *Tree[T]) Find(v T) Iterator[T] {
	cur, _ := t.locate(v)
	if cur == nil {
		return t.End()
	}
	return Iterator[T]{cur}
}

// Has reports whether a value equal to v is in the tree.
func (t *Tree[T]) Has(v T) bool {
	cur, _ := t.locate(v)
	return cur != nil
}

// owns reports whether n belongs to this tree, by climbing the parent
// links up to a sentinel.
func (t *Tree[T]) owns(n *node[T]) bool {
	for !n.sentinel {
		n = n.parent
	}
	return n == t.header
}

// Erase removes the node referenced by pos from the tree. pos must
// reference a data node of this tree; Erase panics with ErrInvalidIterator
// when handed End or an iterator belonging to another tree.
//
// Only iterators referencing the physically removed node are invalidated.
// When the erased node has two children its in-order successor's value is
// moved into place and the successor node is the one unlinked, so
// iterators at the successor are the ones that die.
func (t *Tree[T]) Erase(pos Iterator[T]) {
	n := pos.n
	if n == nil || n.sentinel || !t.owns(n) {
		panic(ErrInvalidIterator)
	}
	t.erase(n)
}

func (t *Tree[T]) erase(n *node[T]) {
	if n.left != nil && n.right != nil {
		// Two children: splice out the in-order successor instead. Its
		// own left child is nil by construction.
		s := minimum(n.right)
		n.value = s.value
		n = s
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	t.unlink(n, child)
	t.freeNode(n)
	t.size--
}

// unlink detaches n, which has at most one child, splicing child into its
// place and refreshing the cached extremes.
func (t *Tree[T]) unlink(n, child *node[T]) {
	h := t.header
	p := n.parent
	if child != nil {
		child.parent = p
	}
	switch {
	case p.sentinel:
		// n was the root.
		if child == nil {
			h.parent = h
		} else {
			h.parent = child
		}
	case p.left == n:
		p.left = child
	default:
		p.right = child
	}
	if h.parent == h {
		h.left, h.right = h, h
		return
	}
	if h.left == n {
		h.left = minimum(h.parent)
	}
	if h.right == n {
		h.right = maximum(h.parent)
	}
}

// Remove erases the value equal to v and reports whether it was present.
// Removing an absent value is a no-op, never an error.
func (t *Tree[T]) Remove(v T) bool {
	cur, _ := t.locate(v)
	if cur == nil {
		return false
	}
	t.erase(cur)
	return true
}

// Clear removes every value from the tree. Nodes are returned to the
// freelist until it is full; the rest are left to the garbage collector.
func (t *Tree[T]) Clear() {
	if !t.Empty() {
		t.freeSubtree(t.root())
	}
	t.reset()
}

func (t *Tree[T]) freeSubtree(n *node[T]) {
	if n.left != nil {
		t.freeSubtree(n.left)
	}
	if n.right != nil {
		t.freeSubtree(n.right)
	}
	t.freeNode(n)
}

// Swap exchanges the contents of the two trees in O(1) by trading their
// header triples and sizes. Iterators at data nodes stay valid and
// logically move to the other tree; End iterators stay with their tree.
// The trees keep their own less functions and freelists.
func (t *Tree[T]) Swap(other *Tree[T]) {
	if t == other {
		return
	}
	th, oh := t.header, other.header
	th.parent, oh.parent = oh.parent, th.parent
	th.left, oh.left = oh.left, th.left
	th.right, oh.right = oh.right, th.right
	t.size, other.size = other.size, t.size
	for _, tr := range []*Tree[T]{t, other} {
		h := tr.header
		if h.parent.sentinel {
			// Adopted an empty tree; its triple pointed at the other
			// header.
			h.parent, h.left, h.right = h, h, h
		} else {
			h.parent.parent = h
		}
	}
}

// Take moves the contents of other into t in O(1), discarding whatever t
// held before. other is left empty and remains safe to reuse.
func (t *Tree[T]) Take(other *Tree[T]) {
	if t == other {
		return
	}
	t.Clear()
	if other.Empty() {
		return
	}
	h, oh := t.header, other.header
	h.parent, h.left, h.right = oh.parent, oh.left, oh.right
	h.parent.parent = h
	t.size = other.size
	other.reset()
}

// Splice transplants the nodes of other into t without reallocating them,
// so iterators at moved nodes stay valid and now walk t. Values already
// present in t are not moved; other is left holding exactly those.
func (t *Tree[T]) Splice(other *Tree[T]) {
	if t == other || other.Empty() {
		return
	}
	nodes := make([]*node[T], 0, other.size)
	for n := other.header.left; !n.sentinel; n = successor(n) {
		nodes = append(nodes, n)
	}
	other.reset()
	var kept []*node[T]
	for _, n := range nodes {
		n.parent, n.left, n.right = nil, nil, nil
		if cur, prev := t.locate(n.value); cur == nil {
			t.link(n, prev)
		} else {
			kept = append(kept, n)
		}
	}
	for _, n := range kept {
		_, prev := other.locate(n.value)
		other.link(n, prev)
	}
}

// Clone returns a deep copy of the tree. Every node is cloned top-down
// with its parent link rebuilt as the clone proceeds, so the two trees
// share no node ownership. The freelist is shared, which is safe for
// concurrent use by both trees.
func (t *Tree[T]) Clone() *Tree[T] {
	out := NewFuncWithFreeList(t.less, t.freelist)
	if t.Empty() {
		return out
	}
	root := out.cloneSubtree(t.root(), out.header)
	out.header.parent = root
	out.header.left = minimum(root)
	out.header.right = maximum(root)
	out.size = t.size
	return out
}

func (t *Tree[T]) cloneSubtree(src, parent *node[T]) *node[T] {
	n := t.newNode(src.value)
	n.parent = parent
	if src.left != nil {
		n.left = t.cloneSubtree(src.left, n)
	}
	if src.right != nil {
		n.right = t.cloneSubtree(src.right, n)
	}
	return n
}

// Ascend calls iter for every value in the tree in increasing order,
// until iter returns false.
func (t *Tree[T]) Ascend(iter ValueIterator[T]) {
	for it := t.Begin(); it != t.End(); it = it.Next() {
		if !iter(it.Value()) {
			return
		}
	}
}

// Descend calls iter for every value in the tree in decreasing order,
// until iter returns false.
func (t *Tree[T]) Descend(iter ValueIterator[T]) {
	for it := t.End(); it != t.Begin(); {
		it = it.Prev()
		if !iter(it.Value()) {
			return
		}
	}
}

func minimum[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
