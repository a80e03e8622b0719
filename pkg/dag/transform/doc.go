// Package transform prepares a [dag.DAG] for layered drawing.
//
// The layout applies the transformations in this order:
//
//	transform.BreakCycles(g)  // drop back edges
//	transform.AssignLayers(g) // longest-path ranks
//	transform.Subdivide(g)    // bend points on long edges
//
// After these steps every edge connects consecutive ranks and
// [dag.DAG.Validate] succeeds.
//
// [BreakCycles] exists because a board graph assembled with Connect can
// contain cycles; graphs built through the attachment operations never do.
package transform
