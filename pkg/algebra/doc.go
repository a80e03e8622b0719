// Package algebra implements immutable algebraic graphs.
//
// # Overview
//
// A [Graph] is built from four constructions:
//
//   - [Empty]: no vertices, no edges
//   - [Vertex]: a single vertex
//   - [Overlay]: the union of two graphs' vertices and edges
//   - [Connect]: an overlay plus an edge from every vertex of the left operand
//     to every vertex of the right operand
//
// Overlay is associative and commutative. Connect is associative but not
// commutative, and distributes over Overlay. [Edge], [Vertices], [Edges] and
// [Overlays] are shorthands defined in terms of these.
//
// # Values
//
// Graphs are immutable expression trees. Combining two graphs allocates one
// node and shares both operands, so every earlier graph value stays valid and
// unchanged. The vertex and edge sets are derived on first use by folding the
// tree once; the result is memoized on that graph value.
//
// # Equality
//
// Vertices are compared through their [Keyed.Key]. Two vertices with the same
// key are the same set member, so inserting an equal vertex twice is a no-op.
// Graphs are compared by their vertex and edge sets with [Equal], never by
// expression shape:
//
//	a := algebra.Overlay(algebra.Vertex(x), algebra.Vertex(y))
//	b := algebra.Overlay(algebra.Vertex(y), algebra.Vertex(x))
//	algebra.Equal(a, b) // true
//
// # Concurrency
//
// Graph values may be shared freely between goroutines. Memoization is guarded
// by [sync.Once].
package algebra
