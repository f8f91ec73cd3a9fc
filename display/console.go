package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordset/bptree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Options configures console rendering of a tree structure.
type Options struct {
	// LineWidth is the target line length in fixed-width positions.
	LineWidth int
	// Context informs character-width measurement (UAX#11); nil selects a
	// context from the user environment.
	Context *uax11.Context
	// Colors maps node kinds to display colors. It may cover just a subset
	// of kinds; uncovered kinds print uncolored.
	Colors map[bptree.NodeKind]*color.Color
}

// OptionsFromTerminal is a simple helper for creating rendering options.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the LineWidth parameter accordingly.
func OptionsFromTerminal() *Options {
	opts := &Options{}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil {
			opts.LineWidth = 65
		} else {
			if w > 65 {
				opts.LineWidth = w - 10
			} else if w > 10 {
				opts.LineWidth = w
			} else {
				opts.LineWidth = 10
			}
		}
	} else {
		opts.LineWidth = 65
	}
	T().P("format", "console").Infof("setting line length to %d en", opts.LineWidth)
	return opts
}

func makeDefaultPalette() map[bptree.NodeKind]*color.Color {
	palette := map[bptree.NodeKind]*color.Color{
		bptree.InternalNode: color.New(color.FgBlue),
		bptree.LeafNode:     color.New(color.FgGreen),
	}
	return palette
}

// Render outputs the tree structure level by level to w. Nodes print as
// bracketed key cells, colorized by node kind; lines longer than the target
// line width are clipped with an ellipsis.
//
// If opts is nil, a heuristic will create options from the current
// terminal's properties (if stdout is interactive).
func Render[K any](t *bptree.Tree[K], w io.Writer, opts *Options) error {
	if t == nil {
		return fmt.Errorf("display: no tree to render")
	}
	if opts == nil {
		opts = OptionsFromTerminal()
		opts.Context = uax11.ContextFromEnvironment()
	}
	context := opts.Context
	if context == nil {
		context = uax11.ContextFromEnvironment()
	}
	colors := opts.Colors
	if colors == nil {
		colors = makeDefaultPalette()
	}
	levels := levelCells(t)
	for depth, cells := range levels {
		fmt.Fprintf(w, "%d:", depth)
		used := cellWidth(fmt.Sprintf("%d:", depth), context)
		for _, cell := range cells {
			width := cellWidth(cell.text, context) + 1
			if opts.LineWidth > 0 && used+width > opts.LineWidth {
				fmt.Fprint(w, " …")
				break
			}
			fmt.Fprint(w, " ")
			if c, ok := colors[cell.kind]; ok {
				c.Fprint(w, cell.text)
			} else {
				fmt.Fprint(w, cell.text)
			}
			used += width
		}
		fmt.Fprintln(w)
	}
	return nil
}

type cell struct {
	text string
	kind bptree.NodeKind
}

func levelCells[K any](t *bptree.Tree[K]) [][]cell {
	var levels [][]cell
	for _, info := range t.Structure() {
		for len(levels) <= info.Level {
			levels = append(levels, nil)
		}
		levels[info.Level] = append(levels[info.Level], cell{
			text: formatKeys(info.Keys),
			kind: info.Kind,
		})
	}
	return levels
}

func formatKeys[K any](keys []K) string {
	var b strings.Builder
	b.WriteString("[")
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", key)
	}
	b.WriteString("]")
	return b.String()
}

// cellWidth measures a cell in fixed-width positions, respecting East Asian
// full-width characters.
func cellWidth(s string, context *uax11.Context) int {
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}
