// Package layout turns a board graph into positioned elements for a
// node-and-edge canvas.
//
// [Compute] runs a layered (Sugiyama-style) layout on a working
// [dag.DAG] built fresh for each call:
//
//  1. break cycles, which only graphs built with Connect can contain
//  2. assign ranks by longest path, so entities precede annotations and
//     annotations precede documents
//  3. insert bend points on edges that span several ranks
//  4. reduce crossings with barycentric sweeps and adjacent swaps
//  5. place nodes by median alignment, then convert centres to top-left
//     corners
//
// The output lists one [Node] per vertex, tagged with a [NodeType] so the
// canvas can pick a component, and one [Edge] per graph edge with id
// "<source>-<target>". Nodes are sorted by id and edges by source id.
//
// A tiny optional x jitter ([Options.Jitter]) exists for canvases that skip
// redrawing when positions are unchanged. It is off by default.
//
// [dag.DAG]: github.com/matzehuels/pinboard/pkg/dag
package layout
