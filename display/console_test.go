package display

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/ordset/bptree"
	"github.com/npillmayer/uax/uax11"
)

func newIntTree(t *testing.T) *bptree.Tree[int] {
	t.Helper()
	tree, err := bptree.New(bptree.Config[int]{Less: func(a, b int) bool { return a < b }})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func TestRenderLevels(t *testing.T) {
	color.NoColor = true
	tree := newIntTree(t)
	tree.InsertAll(1, 2, 3, 4, 5)
	var b strings.Builder
	err := Render(tree, &b, &Options{LineWidth: 80, Context: uax11.LatinContext})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 levels, got %d:\n%s", len(lines), b.String())
	}
	if !strings.HasPrefix(lines[0], "0:") || !strings.Contains(lines[0], "[4]") {
		t.Errorf("unexpected root level rendering: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[1 2 3]") || !strings.Contains(lines[1], "[4 5]") {
		t.Errorf("unexpected leaf level rendering: %q", lines[1])
	}
}

func TestRenderClipsLongLines(t *testing.T) {
	color.NoColor = true
	tree := newIntTree(t)
	for i := 100; i < 200; i++ {
		tree.Insert(i)
	}
	var b strings.Builder
	err := Render(tree, &b, &Options{LineWidth: 24, Context: uax11.LatinContext})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		if len([]rune(line)) > 24+2 { // the " …" marker may exceed the target by two cells
			t.Errorf("line exceeds width limit: %q", line)
		}
	}
	if !strings.Contains(b.String(), "…") {
		t.Errorf("expected clipped output to contain an ellipsis:\n%s", b.String())
	}
}

func TestRenderNilTree(t *testing.T) {
	var b strings.Builder
	if err := Render[int](nil, &b, &Options{LineWidth: 40}); err == nil {
		t.Errorf("expected error for nil tree")
	}
}
