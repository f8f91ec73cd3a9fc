package bptree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and should be used in tests after
// every mutation:
//   - non-root nodes hold between N and 2N keys; the root holds at most 2N,
//   - keys within a node ascend strictly under the ordering,
//   - every key under child i is less than separator i, every key under
//     child i+1 is not less than separator i,
//   - all leaves sit at the same depth,
//   - the leaf chain links the leaves in exactly depth-first order and is
//     null-terminated,
//   - node storage keeps its fixed capacity (one slot beyond the maximum),
//   - the tracked size matches the number of stored keys.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidStructure)
	}
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidStructure)
	}
	var leaves []*leafNode[K]
	count, _, _, _, err := t.checkNode(t.root, true, &leaves)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d stored, %d tracked)", ErrInvalidStructure, count, t.size)
	}
	for i, leaf := range leaves {
		var want *leafNode[K]
		if i+1 < len(leaves) {
			want = leaves[i+1]
		}
		if leaf.next != want {
			return fmt.Errorf("%w: leaf chain broken after leaf %d", ErrInvalidStructure, i)
		}
	}
	return nil
}

func (t *Tree[K]) checkNode(n treeNode[K], isRoot bool, leaves *[]*leafNode[K]) (count, height int, min, max K, err error) {
	switch n := n.(type) {
	case *leafNode[K]:
		if err = t.checkOccupancy(len(n.keys), isRoot, n.kind()); err != nil {
			return
		}
		if cap(n.keys) != t.maxKeys()+1 {
			err = fmt.Errorf("%w: leaf key capacity %d, want %d", ErrInvalidStructure, cap(n.keys), t.maxKeys()+1)
			return
		}
		if err = t.checkAscending(n.keys); err != nil {
			return
		}
		*leaves = append(*leaves, n)
		count, height = len(n.keys), 1
		if count > 0 {
			min, max = n.keys[0], n.keys[count-1]
		}
		return
	case *innerNode[K]:
		if err = t.checkOccupancy(len(n.keys), isRoot, n.kind()); err != nil {
			return
		}
		if cap(n.keys) != t.maxKeys()+1 || cap(n.children) != t.maxKeys()+2 {
			err = fmt.Errorf("%w: internal node capacity %d/%d, want %d/%d",
				ErrInvalidStructure, cap(n.keys), cap(n.children), t.maxKeys()+1, t.maxKeys()+2)
			return
		}
		if len(n.children) != len(n.keys)+1 {
			err = fmt.Errorf("%w: internal node has %d children for %d keys",
				ErrInvalidStructure, len(n.children), len(n.keys))
			return
		}
		if err = t.checkAscending(n.keys); err != nil {
			return
		}
		less := t.cfg.Less
		childHeight := 0
		for i, child := range n.children {
			cCount, cHeight, cMin, cMax, cErr := t.checkNode(child, false, leaves)
			if cErr != nil {
				err = cErr
				return
			}
			if i == 0 {
				childHeight = cHeight
				min = cMin
			} else if cHeight != childHeight {
				err = fmt.Errorf("%w: non-uniform leaf depth", ErrInvalidStructure)
				return
			}
			if i < len(n.keys) && !less(cMax, n.keys[i]) {
				err = fmt.Errorf("%w: key under child %d not less than separator %d", ErrInvalidStructure, i, i)
				return
			}
			if i > 0 && less(cMin, n.keys[i-1]) {
				err = fmt.Errorf("%w: key under child %d less than separator %d", ErrInvalidStructure, i, i-1)
				return
			}
			count += cCount
			max = cMax
		}
		height = childHeight + 1
		return
	}
	err = fmt.Errorf("%w: unknown node type", ErrInvalidStructure)
	return
}

func (t *Tree[K]) checkOccupancy(size int, isRoot bool, kind nodeKind) error {
	if size > t.maxKeys() {
		return fmt.Errorf("%w: node holds %d keys, maximum is %d", ErrInvalidStructure, size, t.maxKeys())
	}
	if isRoot {
		if kind == internalKind && size < 1 {
			return fmt.Errorf("%w: internal root without separator", ErrInvalidStructure)
		}
		return nil
	}
	if size < t.minKeys() {
		return fmt.Errorf("%w: node holds %d keys, minimum is %d", ErrInvalidStructure, size, t.minKeys())
	}
	return nil
}

func (t *Tree[K]) checkAscending(keys []K) error {
	less := t.cfg.Less
	for i := 1; i < len(keys); i++ {
		if !less(keys[i-1], keys[i]) {
			return fmt.Errorf("%w: keys not strictly ascending at index %d", ErrInvalidStructure, i)
		}
	}
	return nil
}
