/*
Package ordset implements an ordered set container backed by a B+ tree.

Ordered Sets

An ordered set stores unique keys under a caller-supplied strict weak
ordering and enumerates them from smallest to largest. Internally keys are
organized in a B+ tree: data keys live in leaf nodes only, internal nodes
route descent with separator keys, and all leaves are chained by forward
links. Iteration therefore walks the leaf chain with one step per key and
never visits internal nodes.

Sets have stable performance characteristics which differ from Go maps
or sorted slices:

	Operation     |   Set            |  Sorted slice
	--------------+------------------+--------------
	Membership    |   O(log n)       |   O(log n)
	Insert        |   O(log n)       |   O(n)
	Erase         |   O(log n)       |   O(n)
	Iterate       |   O(n)           |   O(n)

Unlike a hash map, an ordered set needs no hash function and no equality
predicate: two keys are considered equivalent iff neither is less than the
other. The branching parameter of the underlying tree is configurable at
construction; see package bptree for the structural details.

The containers in this package assume single-threaded mutation. Callers are
responsible for excluding overlapping reads and writes.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package ordset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
