/*
Package display renders the structure of an ordered set's B+ tree on
terminals with fixed-width fonts. It is intended for interactive debugging
sessions where the textual dump of the tree is too dense to read at a
glance: nodes are laid out level by level, colorized by node kind, and
clipped to the terminal width.

Keys are rendered through `fmt` verbs and may therefore contain scripts of
any width. Cell measurement applies rules from UAX#29 (graphemes) and
UAX#11 (character width) so that columns line up for full-width scripts as
well; pass a uax11 context to override the environment heuristics.

This package is diagnostic only. The rendering format is not a
compatibility contract.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
