package bptree

import "testing"

func TestIteratorAscends(t *testing.T) {
	tree := newIntTree(t, 2)
	tree.InsertAll(12, 5, 9, 1, 17, 3, 14, 8, 2, 11)
	var prev int
	count := 0
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		if count > 0 && it.Key() <= prev {
			t.Fatalf("iteration not strictly ascending at %v", it.Key())
		}
		prev = it.Key()
		count++
	}
	if count != tree.Size() {
		t.Fatalf("iteration visited %d keys, size is %d", count, tree.Size())
	}
}

func TestIteratorEquality(t *testing.T) {
	tree := newIntTree(t, 2)
	tree.InsertAll(1, 2, 3)
	if tree.Begin() != tree.Begin() {
		t.Fatalf("expected equal iterators for equal positions")
	}
	if tree.Begin() == tree.End() {
		t.Fatalf("expected Begin != End for non-empty tree")
	}
	second := tree.Begin().Next()
	if second == tree.Begin() || second.Key() != 2 {
		t.Fatalf("unexpected iterator after advance")
	}
}

func TestIteratorEndIsAbsorbing(t *testing.T) {
	tree := newIntTree(t, 2)
	end := tree.End()
	if end.Valid() {
		t.Fatalf("end iterator must not be valid")
	}
	if end.Next() != end {
		t.Fatalf("advancing the end iterator must yield the end iterator")
	}
}

func TestIteratorCrossesLeafBoundary(t *testing.T) {
	tree := newIntTree(t, 2)
	tree.InsertAll(1, 2, 3, 4, 5)
	// left leaf holds [1 2 3]; stepping off position 2 must land on the
	// right leaf's first key
	it := tree.Begin()
	for i := 0; i < 3; i++ {
		it = it.Next()
	}
	if !it.Valid() || it.Key() != 4 {
		t.Fatalf("expected iterator to jump to next leaf at key 4, got valid=%v", it.Valid())
	}
}

func TestLeafChainMatchesDepthFirstOrder(t *testing.T) {
	tree := newIntTree(t, 2)
	for i := 1; i <= 64; i++ {
		tree.Insert(i * 3 % 101)
	}
	mustCheck(t, tree)
	var dfs []int
	for _, info := range tree.Structure() {
		if info.Kind == LeafNode {
			dfs = append(dfs, info.Keys...)
		}
	}
	if !equalInts(dfs, collectKeys(tree)) {
		t.Fatalf("leaf chain and depth-first traversal disagree:\n%v\n%v", collectKeys(tree), dfs)
	}
}

func TestForEachStopsEarly(t *testing.T) {
	tree := newIntTree(t, 2)
	tree.InsertAll(1, 2, 3, 4, 5)
	visited := 0
	tree.ForEach(func(key int) bool {
		visited++
		return key < 3
	})
	if visited != 3 {
		t.Fatalf("expected ForEach to stop after 3 keys, visited %d", visited)
	}
}

func TestRangeOverAll(t *testing.T) {
	tree := newIntTree(t, 2)
	tree.InsertAll(4, 2, 6)
	var out []int
	for key := range tree.All() {
		out = append(out, key)
	}
	if !equalInts(out, []int{2, 4, 6}) {
		t.Fatalf("unexpected range output: %v", out)
	}
}
