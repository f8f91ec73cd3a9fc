package ordset

import (
	"strings"
	"testing"
)

func TestSet2Dot(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	s := FromOrderedKeys(1, 2, 3, 4, 5)
	var b strings.Builder
	Set2Dot(s, &b)
	out := b.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("malformed DOT output:\n%s", out)
	}
	if strings.Count(out, "->") != 2 {
		t.Errorf("expected 2 edges for a root with two leaves:\n%s", out)
	}
	if !strings.Contains(out, "label=\"1 2 3\"") || !strings.Contains(out, "label=\"4 5\"") {
		t.Errorf("expected leaf labels in DOT output:\n%s", out)
	}
}

func TestSet2DotEmpty(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	s := NewOrdered[int]()
	var b strings.Builder
	Set2Dot(s, &b)
	out := b.String()
	if strings.Contains(out, "->") {
		t.Errorf("expected no edges for an empty set:\n%s", out)
	}
	if !strings.Contains(out, "label=\"∅\"") {
		t.Errorf("expected empty-leaf placeholder label:\n%s", out)
	}
}
