package bptree

import (
	"fmt"
	"io"
	"strings"
)

// Dump emits a human-readable multi-line rendering of the tree to w: a
// header with order and size, a single line of sorted keys, and an indented
// per-level structural listing. The format is diagnostic only and not a
// compatibility contract.
func (t *Tree[K]) Dump(w io.Writer) {
	var zero K
	fmt.Fprintf(w, "B+ tree: order %d, key type %T, size %d\n", t.cfg.Order, zero, t.size)
	fmt.Fprint(w, "Sorted elements:")
	for it := t.Begin(); it != t.End(); it = it.Next() {
		fmt.Fprintf(w, " %v", it.Key())
	}
	fmt.Fprint(w, "\nStructure:\n")
	t.root.dump(w, 0, t.maxKeys())
	fmt.Fprintln(w)
}

func dumpIndent(level int) string {
	return strings.Repeat("\t", level)
}

func dumpNodeHeader(w io.Writer, level int, kind string, size, max int) {
	if level == 0 {
		fmt.Fprint(w, "[root]")
	} else {
		fmt.Fprintf(w, "[%d]", level)
	}
	fmt.Fprintf(w, " [%s <%d/%d> (%.0f%%)]", kind, size, max, float64(size)*100/float64(max))
}
