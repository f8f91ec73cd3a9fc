package ordset

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"
)

// FromSeq creates a set ordered by less and inserts every key produced by
// seq.
func FromSeq[K any](less func(a, b K) bool, seq iter.Seq[K]) Set[K] {
	s := New(less)
	s.InsertSeq(seq)
	return s
}

// FromOrderedSeq creates a set for a naturally ordered key type and inserts
// every key produced by seq.
func FromOrderedSeq[K cmp.Ordered](seq iter.Seq[K]) Set[K] {
	return FromSeq(cmp.Less[K], seq)
}

// InsertSeq inserts every key produced by seq, skipping keys already
// present.
func (s Set[K]) InsertSeq(seq iter.Seq[K]) {
	for key := range seq {
		s.Insert(key)
	}
}

// All returns an iterator over the keys in ascending order, for use with
// range-over-func loops.
func (s Set[K]) All() iter.Seq[K] {
	return s.tree.All()
}

// Each visits all keys in ascending order.
//
// Iteration stops at the first callback error and returns that error to the
// caller.
func (s Set[K]) Each(f func(key K) error) error {
	var err error
	s.tree.ForEach(func(key K) bool {
		err = f(key)
		return err == nil
	})
	return err
}
