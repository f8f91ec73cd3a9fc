package bptree

// Tree is an in-memory B+ tree with set semantics.
//
// K is the key type; keys are unique under the equivalence induced by the
// configured ordering. The tree owns its root subtree and tracks the element
// count. Mutation is single-threaded by contract: the tree performs no
// internal synchronisation.
type Tree[K any] struct {
	cfg  Config[K]
	root treeNode[K]
	size int
}

// New creates an empty tree with validated configuration. A fresh tree
// consists of a single empty leaf as its root.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K]{cfg: cfg}
	t.root = t.newLeaf()
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// Order returns the branching parameter N. Nodes except the root hold
// between N and 2N keys.
func (t *Tree[K]) Order() int {
	return t.cfg.Order
}

func (t *Tree[K]) maxKeys() int { return 2 * t.cfg.Order }
func (t *Tree[K]) minKeys() int { return t.cfg.Order }

// splitDefault splits a node at the default midpoint (len-1)/2. For a leaf
// this leaves ceil(len/2) keys on the left; for an internal node the middle
// key is promoted and the halves share the remaining len-1 keys.
func (t *Tree[K]) splitDefault(n treeNode[K]) (treeNode[K], *K) {
	return n.split(t, (n.keyCount()-1)/2)
}

// Size returns the number of keys in the tree.
func (t *Tree[K]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.Size() == 0
}

// Height returns the number of node levels, following the left spine. A
// tree whose root is a leaf has height 1, even when empty.
func (t *Tree[K]) Height() int {
	h := 1
	n := t.root
	for {
		inner, ok := n.(*innerNode[K])
		if !ok {
			return h
		}
		h++
		n = inner.children[0]
	}
}

// Insert places key into the tree unless an equivalent key is present. It
// returns an iterator at the key's position and whether the key was
// inserted. A root-level overflow grows the tree by one level.
func (t *Tree[K]) Insert(key K) (Iterator[K], bool) {
	it, state := t.root.insert(t, key)
	switch state {
	case insertDone:
		t.size++
		return it, true
	case insertExists:
		return it, false
	case insertSplit:
		right, promoted := t.splitDefault(t.root)
		sep := separatorFor(right, promoted)
		t.root = t.newInnerRoot(sep, t.root, right)
		t.size++
		return t.root.find(t, key), true
	}
	assert(false, "insert reached an impossible state")
	return Iterator[K]{}, false
}

// InsertAll inserts every given key, skipping keys already present.
func (t *Tree[K]) InsertAll(keys ...K) {
	for _, key := range keys {
		t.Insert(key)
	}
}

// Erase removes key from the tree and returns the number of removed keys
// (0 or 1). The root may hold fewer than N keys; an internal root left
// without separators is replaced by its only child, which lowers the tree by
// one level, and erasing the last key replaces the root with a fresh empty
// leaf.
func (t *Tree[K]) Erase(key K) int {
	switch t.root.erase(t, key) {
	case eraseNotFound:
		return 0
	case eraseDone:
		t.size--
		return 1
	case eraseMerge:
		// the root may underflow; collapse only when it ran empty
		if t.root.keyCount() == 0 {
			if root, ok := t.root.(*innerNode[K]); ok {
				_, children := root.extractAll()
				t.root = children[0]
			} else {
				t.root = t.newLeaf()
			}
		}
		t.size--
		return 1
	}
	assert(false, "erase reached an impossible state")
	return 0
}

// Find returns an iterator at the key equivalent to key, or the end iterator
// when no such key is present.
func (t *Tree[K]) Find(key K) Iterator[K] {
	return t.root.find(t, key)
}

// Count returns 1 when a key equivalent to key is present, 0 otherwise.
func (t *Tree[K]) Count(key K) int {
	if t.Find(key) != t.End() {
		return 1
	}
	return 0
}

// Contains reports whether a key equivalent to key is present.
func (t *Tree[K]) Contains(key K) bool {
	return t.Count(key) == 1
}

// Clear releases the root subtree and installs a fresh empty leaf.
func (t *Tree[K]) Clear() {
	t.root = t.newLeaf()
	t.size = 0
}

// Swap exchanges roots and sizes with another tree. Both trees must have
// been created with the same order and with orderings that agree; otherwise
// the structural invariants of the exchanged subtrees no longer hold.
func (t *Tree[K]) Swap(other *Tree[K]) {
	assert(t.cfg.Order == other.cfg.Order, "swap requires trees of equal order")
	t.root, other.root = other.root, t.root
	t.size, other.size = other.size, t.size
}

// Equal reports whether both trees contain pairwise equivalent keys under
// the receiver's ordering.
func (t *Tree[K]) Equal(other *Tree[K]) bool {
	if t.Size() != other.Size() {
		return false
	}
	less := t.cfg.Less
	itl, itr := t.Begin(), other.Begin()
	for itl != t.End() {
		a, b := itl.Key(), itr.Key()
		if less(a, b) || less(b, a) {
			return false
		}
		itl, itr = itl.Next(), itr.Next()
	}
	return true
}

// Clone returns an independent tree with the same configuration and keys.
func (t *Tree[K]) Clone() *Tree[K] {
	cloned := &Tree[K]{cfg: t.cfg}
	cloned.root = cloned.newLeaf()
	for it := t.Begin(); it != t.End(); it = it.Next() {
		cloned.Insert(it.Key())
	}
	return cloned
}
