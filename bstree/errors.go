package bstree

import "errors"

// Precondition violations are signaled by panicking with one of these
// values at the offending call. Absent values are normal outcomes, not
// errors: Find returns End and Remove returns false.
var (
	// ErrEmptyTree is the panic value of Front and Back on an empty tree.
	ErrEmptyTree = errors.New("bstree: tree is empty")

	// ErrInvalidIterator is the panic value of dereferencing or
	// incrementing End, decrementing Begin, or erasing through an
	// iterator that does not reference a data node of the target tree.
	ErrInvalidIterator = errors.New("bstree: invalid iterator")
)
