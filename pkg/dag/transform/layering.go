package transform

import "github.com/matzehuels/pinboard/pkg/dag"

// AssignLayers assigns every node a rank equal to the length of the longest
// path reaching it from a source.
//
// It runs Kahn's topological sort: sources start at rank 0 and each child
// is pushed to one past its deepest parent. For a board this puts mentioned
// entities first, annotations next and annotated documents last. Documents
// without annotations are sources and stay on rank 0.
//
// Existing rank assignments are overwritten.
//
// # Cycles
//
// AssignLayers assumes the graph is acyclic. Nodes on a cycle never reach
// zero in-degree and keep rank 0. Run [BreakCycles] first.
//
// Time complexity is O(V + E).
func AssignLayers(g *dag.DAG) {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRows(rows)
}
