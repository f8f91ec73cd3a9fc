package ordset

import (
	"fmt"
	"io"

	"github.com/npillmayer/ordset/bptree"
)

// Set2Dot outputs the internal structure of a Set in Graphviz DOT format
// (for debugging purposes).
func Set2Dot[K any](s Set[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for _, info := range s.Tree().Structure() {
		label := keysLabel(info.Keys)
		styles := nodeDotStyles(info.Kind)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", info.ID, label, styles)
		if info.Parent >= 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", info.Parent, info.ID)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func keysLabel[K any](keys []K) string {
	label := ""
	for i, key := range keys {
		if i > 0 {
			label += " "
		}
		label += fmt.Sprintf("%v", key)
	}
	if label == "" {
		label = "∅"
	}
	return label
}

func nodeDotStyles(kind bptree.NodeKind) string {
	s := ",style=filled"
	if kind == bptree.LeafNode {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}
