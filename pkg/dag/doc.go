// Package dag provides the mutable, rank-organised working graph used by
// the pinboard layout.
//
// # Overview
//
// The board graph itself is an immutable algebraic value. Drawing it as a
// layered diagram needs a different structure: one with explicit ranks,
// a per-rank left-to-right order and the freedom to insert bend points.
// [DAG] is that structure. The layout builds a fresh DAG for every call,
// transforms it in place and discards it.
//
// # Basic Usage
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "ent-1", Row: 0})
//	g.AddNode(dag.Node{ID: "ann-1", Row: 1})
//	g.AddEdge(dag.Edge{From: "ent-1", To: "ann-1"})
//
// Query with [DAG.Children], [DAG.Parents] and [DAG.NodesInRow]; reorder a
// rank with [DAG.SetRowOrder]. Enumeration follows insertion order so
// layouts are reproducible.
//
// # Node Kinds
//
//   - [NodeKindVertex]: stands for a board vertex
//   - [NodeKindSubdivider]: a bend point on an edge spanning several ranks
//
// # Edge Crossings
//
// [CountCrossings] and [CountLayerCrossings] count crossings between
// consecutive ranks with a Fenwick tree in O(E log V). The layout uses them
// to pick the best of several ordering sweeps; [CountPairCrossings] drives
// the adjacent-swap refinement.
//
// # Concurrency
//
// A DAG is not safe for concurrent use. Counting crossings on a graph that
// nobody mutates is safe from several goroutines.
//
// The [transform] subpackage provides cycle breaking, rank assignment and
// edge subdivision.
//
// [transform]: github.com/matzehuels/pinboard/pkg/dag/transform
package dag
