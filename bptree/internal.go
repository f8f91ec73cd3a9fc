package bptree

import (
	"fmt"
	"io"
)

// innerNode stores separator keys in sorted order and one more owning child
// link than keys. The separator at index i is a strict upper bound for every
// key under children[i] and an inclusive lower bound for every key under
// children[i+1].
type innerNode[K any] struct {
	keys     []K
	children []treeNode[K]
}

func (t *Tree[K]) newInner() *innerNode[K] {
	return &innerNode[K]{
		keys:     make([]K, 0, t.maxKeys()+1),
		children: make([]treeNode[K], 0, t.maxKeys()+2),
	}
}

// newInnerRoot builds the internal node installed when the root splits.
func (t *Tree[K]) newInnerRoot(sep K, left, right treeNode[K]) *innerNode[K] {
	n := t.newInner()
	n.keys = appendSlots(n.keys, sep)
	n.children = appendSlots(n.children, left, right)
	return n
}

func (n *innerNode[K]) kind() nodeKind { return internalKind }
func (n *innerNode[K]) keyCount() int  { return len(n.keys) }

func (n *innerNode[K]) firstKey() K {
	assert(len(n.keys) > 0, "firstKey called on empty internal node")
	return n.keys[0]
}

func (n *innerNode[K]) beginIter() Iterator[K] {
	return n.children[0].beginIter()
}

// childPos resolves the child index that must be descended for key. An
// equivalent separator at index i routes to child i+1, since the separator
// itself is the smallest key of the right subtree.
func (n *innerNode[K]) childPos(t *Tree[K], key K) int {
	pos := findpos(t.cfg.Less, n.keys, key)
	if pos >= 0 {
		return pos + 1
	}
	return invert(pos)
}

func (n *innerNode[K]) find(t *Tree[K], key K) Iterator[K] {
	return n.children[n.childPos(t, key)].find(t, key)
}

func (n *innerNode[K]) insert(t *Tree[K], key K) (Iterator[K], insertState) {
	pos := n.childPos(t, key)
	it, state := n.children[pos].insert(t, key)
	if state != insertSplit {
		return it, state
	}
	right, promoted := t.splitDefault(n.children[pos])
	sep := separatorFor(right, promoted)
	at := findposAutoinvert(t.cfg.Less, n.keys, sep)
	n.keys = insertSlot(n.keys, at, sep)
	n.children = insertSlot(n.children, at+1, right)
	if len(n.keys) <= t.maxKeys() {
		return n.find(t, key), insertDone
	}
	return n.find(t, key), insertSplit
}

func (n *innerNode[K]) erase(t *Tree[K], key K) eraseState {
	pos := n.childPos(t, key)
	state := n.children[pos].erase(t, key)
	if state != eraseMerge {
		return state
	}
	if t.cfg.Order > 1 {
		n.rebalanceChild(t, pos)
	} else {
		n.rebalanceChildUnary(t, pos)
	}
	if len(n.keys) >= t.minKeys() {
		return eraseDone
	}
	return eraseMerge
}

// rebalanceChild repairs an underflowing child by pairing it with a
// neighbour. The pair is redistributed across two fresh halves when the
// combined occupancy would overflow a single node, and merged into the left
// sibling otherwise.
func (n *innerNode[K]) rebalanceChild(t *Tree[K], pos int) {
	if pos == 0 {
		pos = 1
	}
	left := n.children[pos-1]
	right := n.children[pos]
	sep := n.keys[pos-1]
	total := left.keyCount() + right.keyCount()
	if right.kind() == internalKind {
		// an internal merge absorbs the pulled-down separator as a key
		total++
	}
	if total > t.maxKeys() {
		mid := (total - 1) / 2
		var rightNew treeNode[K]
		var promoted *K
		if mid < left.keyCount() {
			// split left; its upper half absorbs the old right node
			rightNew, promoted = left.split(t, mid)
			rightNew.prepareMerge(sep)
			rightNew.merge(right)
		} else {
			// split right; its lower half is absorbed by the left node
			at := mid - left.keyCount()
			if right.kind() == internalKind {
				// the pulled-down separator precedes right's keys
				at--
			}
			rightNew, promoted = right.split(t, at)
			left.prepareMerge(sep)
			left.merge(right)
		}
		n.children[pos] = rightNew
		n.keys[pos-1] = separatorFor(rightNew, promoted)
	} else {
		left.prepareMerge(sep)
		left.merge(right)
		n.removeSeparatorAt(pos - 1)
	}
}

// rebalanceChildUnary handles order 1, where a merged pair can end up one
// key over the maximum (an internal node with two keys on the left of the
// absorbed separator). That shape is resolved by splitting at index 1.
func (n *innerNode[K]) rebalanceChildUnary(t *Tree[K], pos int) {
	if pos == 0 {
		pos = 1
	}
	left := n.children[pos-1]
	left.prepareMerge(n.keys[pos-1])
	left.merge(n.children[pos])
	if left.keyCount() > t.maxKeys() {
		rightNew, promoted := left.split(t, 1)
		n.children[pos] = rightNew
		n.keys[pos-1] = separatorFor(rightNew, promoted)
	} else {
		n.removeSeparatorAt(pos - 1)
	}
}

// removeSeparatorAt drops the separator at index at together with the child
// link to its right, whose contents have been transferred already.
func (n *innerNode[K]) removeSeparatorAt(at int) {
	n.keys = removeSlot(n.keys, at)
	n.children = removeSlot(n.children, at+1)
}

// split moves keys right of position at and their children into a new
// sibling and promotes the middle key: it lives only in the parent after the
// split.
func (n *innerNode[K]) split(t *Tree[K], at int) (treeNode[K], *K) {
	assert(at >= 0 && at < len(n.keys), "internal split index out of range")
	right := t.newInner()
	right.keys = appendSlots(right.keys, n.keys[at+1:]...)
	right.children = appendSlots(right.children, n.children[at+1:]...)
	promoted := n.keys[at]
	n.keys = truncateSlots(n.keys, at)
	n.children = truncateSlots(n.children, at+1)
	return right, &promoted
}

// prepareMerge pulls the separator down as an additional key, leaving one
// more key than fits the separator/child relation until the subsequent merge
// appends the right sibling's children.
func (n *innerNode[K]) prepareMerge(sep K) {
	n.keys = appendSlots(n.keys, sep)
}

func (n *innerNode[K]) merge(right treeNode[K]) {
	keys, children := right.extractAll()
	assert(children != nil, "internal merge requires an internal right sibling")
	n.keys = appendSlots(n.keys, keys...)
	n.children = appendSlots(n.children, children...)
}

// extractAll yields copies of the key and child slices and renounces
// ownership of the children, so that dropping this node does not keep them
// reachable through its backing array.
func (n *innerNode[K]) extractAll() ([]K, []treeNode[K]) {
	keys := append([]K(nil), n.keys...)
	children := append([]treeNode[K](nil), n.children...)
	n.children = truncateSlots(n.children, 0)
	return keys, children
}

func (n *innerNode[K]) dump(w io.Writer, level, max int) {
	dumpNodeHeader(w, level, "internal", len(n.keys), max)
	for i, key := range n.keys {
		fmt.Fprintf(w, " (%d)%v", i, key)
	}
	for i, child := range n.children {
		fmt.Fprintf(w, "\n%s%d. ", dumpIndent(level+1), i)
		child.dump(w, level+1, max)
	}
}
