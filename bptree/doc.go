/*
Package bptree provides an in-memory B+ tree with set semantics.

The package is intentionally not a generic map: it stores unique keys under a
caller-supplied strict weak ordering and offers ordered forward iteration.
Keys live in leaf nodes only; internal nodes hold separator keys that route
descent. All leaves are chained by forward links, so iteration never touches
internal nodes.

Structure is governed by a branching parameter N (`Config.Order`): every node
except the root holds between N and 2N keys. Nodes reserve one slot beyond
the maximum so that an insertion may overflow transiently before the
enclosing split, and a merge may absorb a pulled-down separator before the
enclosing rebalance. Top-level operations never return with a node in such a
transient state.

Current status:
  - distinct leaf and internal node representations behind a node protocol,
  - fixed-capacity key/child storage with a transient overflow slot,
  - recursive insert with split propagation up to the root,
  - recursive erase with redistribute-or-merge rebalancing and root collapse,
  - leaf chaining and a forward iterator over it,
  - structural invariant checking (`Check`) for tests,
  - diagnostic text dump and a structural walker for external renderers.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bptree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
