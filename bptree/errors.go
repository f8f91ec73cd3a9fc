package bptree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bptree: invalid configuration")
	// ErrInvalidStructure signals a structural invariant violation found by Check.
	ErrInvalidStructure = errors.New("bptree: invalid tree structure")
)
