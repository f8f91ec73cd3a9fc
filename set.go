package ordset

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"io"

	"github.com/npillmayer/ordset/bptree"
)

// Set is an ordered set of unique keys with O(log n) membership, insertion
// and removal, and ordered forward iteration.
//
// A set must be created by one of the constructor functions; the zero value
// is not usable. Sets are value types wrapping a shared tree: copying a Set
// variable aliases the same container, while Clone creates an independent
// one.
type Set[K any] struct {
	tree *bptree.Tree[K]
}

// New creates an empty set ordered by less, using the default branching
// parameter of the underlying tree.
func New[K any](less func(a, b K) bool) Set[K] {
	tree, err := bptree.New(bptree.Config[K]{Less: less})
	assert(err == nil, "New: cannot create tree")
	T().Debugf("ordered set constructed with default order")
	return Set[K]{tree: tree}
}

// NewWithOrder creates an empty set ordered by less over a tree with
// branching parameter order. Every tree node except the root will hold
// between order and 2*order keys.
func NewWithOrder[K any](less func(a, b K) bool, order int) (Set[K], error) {
	tree, err := bptree.New(bptree.Config[K]{Less: less, Order: order})
	if err != nil {
		return Set[K]{}, err
	}
	T().Debugf("ordered set constructed with order %d", order)
	return Set[K]{tree: tree}, nil
}

// NewOrdered creates an empty set for a naturally ordered key type.
func NewOrdered[K cmp.Ordered]() Set[K] {
	return New(cmp.Less[K])
}

// FromKeys creates a set ordered by less and inserts the given keys.
// Duplicate keys under the induced equivalence are stored once.
func FromKeys[K any](less func(a, b K) bool, keys ...K) Set[K] {
	s := New(less)
	s.InsertAll(keys...)
	return s
}

// FromOrderedKeys creates a set for a naturally ordered key type and inserts
// the given keys.
func FromOrderedKeys[K cmp.Ordered](keys ...K) Set[K] {
	return FromKeys(cmp.Less[K], keys...)
}

// Insert places key into the set unless an equivalent key is present. It
// returns an iterator at the key's position and whether the key was
// inserted.
func (s Set[K]) Insert(key K) (bptree.Iterator[K], bool) {
	assert(s.tree != nil, "set not initialized, use a constructor")
	T().Debugf("inserting element: %v", key)
	it, inserted := s.tree.Insert(key)
	if !inserted {
		T().Debugf("insert ignored, element exists already")
	}
	return it, inserted
}

// InsertAll inserts every given key, skipping keys already present.
func (s Set[K]) InsertAll(keys ...K) {
	for _, key := range keys {
		s.Insert(key)
	}
}

// Erase removes key from the set, returning the number of removed keys
// (0 or 1).
func (s Set[K]) Erase(key K) int {
	assert(s.tree != nil, "set not initialized, use a constructor")
	T().Debugf("erasing element: %v", key)
	n := s.tree.Erase(key)
	if n == 0 {
		T().Debugf("erase ignored, element does not exist")
	}
	return n
}

// Count returns 1 when a key equivalent to key is present, 0 otherwise.
func (s Set[K]) Count(key K) int {
	return s.tree.Count(key)
}

// Contains reports whether a key equivalent to key is present.
func (s Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// Find returns an iterator at the key equivalent to key, or the end
// iterator when no such key is present.
func (s Set[K]) Find(key K) bptree.Iterator[K] {
	return s.tree.Find(key)
}

// Size returns the number of keys in the set.
func (s Set[K]) Size() int {
	return s.tree.Size()
}

// Empty reports whether the set has no keys.
func (s Set[K]) Empty() bool {
	return s.tree.IsEmpty()
}

// Begin returns an iterator at the smallest key; for an empty set it equals
// End.
func (s Set[K]) Begin() bptree.Iterator[K] {
	return s.tree.Begin()
}

// End returns the end iterator.
func (s Set[K]) End() bptree.Iterator[K] {
	return s.tree.End()
}

// Clear removes all keys.
func (s Set[K]) Clear() {
	T().Debugf("clearing ordered set")
	s.tree.Clear()
}

// Swap exchanges contents with another set created with the same order and
// an agreeing ordering.
func (s Set[K]) Swap(other Set[K]) {
	s.tree.Swap(other.tree)
}

// Clone returns an independent set holding the same keys.
func (s Set[K]) Clone() Set[K] {
	return Set[K]{tree: s.tree.Clone()}
}

// Assign replaces the receiver's contents with the keys of other.
func (s Set[K]) Assign(other Set[K]) {
	s.tree.Clear()
	for it := other.Begin(); it != other.End(); it = it.Next() {
		s.tree.Insert(it.Key())
	}
}

// AssignKeys replaces the receiver's contents with the given keys.
func (s Set[K]) AssignKeys(keys ...K) {
	s.tree.Clear()
	s.InsertAll(keys...)
}

// Equal reports whether both sets contain pairwise equivalent keys.
func (s Set[K]) Equal(other Set[K]) bool {
	return s.tree.Equal(other.tree)
}

// Dump emits a human-readable rendering of the set's tree structure to w,
// for debugging purposes.
func (s Set[K]) Dump(w io.Writer) {
	s.tree.Dump(w)
}

// Tree exposes the underlying B+ tree, for diagnostic renderers and tests.
func (s Set[K]) Tree() *bptree.Tree[K] {
	return s.tree
}

// Swap exchanges the contents of two sets.
func Swap[K any](a, b Set[K]) {
	a.Swap(b)
}
