package ordset

import (
	"errors"
	"slices"
	"testing"
)

func TestFromSeq(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	s := FromOrderedSeq(slices.Values([]int{5, 3, 5, 1}))
	if !sameKeys(keysOf(s), []int{1, 3, 5}) {
		t.Errorf("unexpected contents: %v", keysOf(s))
	}
}

func TestInsertSeq(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	s := FromOrderedKeys(2)
	s.InsertSeq(slices.Values([]int{1, 2, 3}))
	if !sameKeys(keysOf(s), []int{1, 2, 3}) {
		t.Errorf("unexpected contents: %v", keysOf(s))
	}
}

func TestEachPropagatesError(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	boom := errors.New("boom")
	s := FromOrderedKeys(1, 2, 3, 4)
	visited := 0
	err := s.Each(func(key int) error {
		visited++
		if key == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected callback error to propagate, got %v", err)
	}
	if visited != 3 {
		t.Errorf("expected iteration to stop at the error, visited %d", visited)
	}
}
