package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/pinboard/pkg/dag"
)

const maxTransposePasses = 4

// orderRanks reorders the nodes of every rank to reduce edge crossings and
// returns the number of crossings left.
//
// Sweeps alternate downwards (sort by the barycentre of parents) and
// upwards (children), each followed by a transpose pass that swaps
// neighbours while that helps. The best ordering seen wins, so extra sweeps
// never make the result worse.
func orderRanks(w *dag.DAG, sweeps int) int {
	rows := w.RowIDs()
	best := w.Orders()
	bestCrossings := dag.CountCrossings(w, best)

	for i := 0; i < sweeps && bestCrossings > 0; i++ {
		if i%2 == 0 {
			for k := 1; k < len(rows); k++ {
				sortByBarycenter(w, rows[k], rows[k-1], true)
			}
		} else {
			for k := len(rows) - 2; k >= 0; k-- {
				sortByBarycenter(w, rows[k], rows[k+1], false)
			}
		}
		transpose(w, rows)

		orders := w.Orders()
		if c := dag.CountCrossings(w, orders); c < bestCrossings {
			best, bestCrossings = orders, c
		}
	}

	for row, ids := range best {
		w.SetRowOrder(row, ids)
	}
	return bestCrossings
}

// sortByBarycenter orders a rank by the mean position of each node's
// neighbours in the adjacent rank. Nodes without neighbours there keep
// their current index as the sort key.
func sortByBarycenter(w *dag.DAG, row, adj int, useParents bool) {
	nodes := w.NodesInRow(row)
	adjPos := dag.PosMap(dag.NodeIDs(w.NodesInRow(adj)))

	type keyed struct {
		id string
		bc float64
	}
	ks := make([]keyed, len(nodes))
	for i, n := range nodes {
		sum, cnt := 0.0, 0
		for _, m := range neighbours(w, n.ID, useParents) {
			if p, ok := adjPos[m]; ok {
				sum += float64(p)
				cnt++
			}
		}
		bc := float64(i)
		if cnt > 0 {
			bc = sum / float64(cnt)
		}
		ks[i] = keyed{n.ID, bc}
	}

	slices.SortStableFunc(ks, func(a, b keyed) int { return cmp.Compare(a.bc, b.bc) })
	ids := make([]string, len(ks))
	for i, k := range ks {
		ids[i] = k.id
	}
	w.SetRowOrder(row, ids)
}

// transpose swaps adjacent nodes whenever that strictly lowers the
// crossings with both neighbouring ranks.
func transpose(w *dag.DAG, rows []int) {
	for range maxTransposePasses {
		improved := false
		for k, row := range rows {
			var up, down map[string]int
			if k > 0 {
				up = dag.PosMap(dag.NodeIDs(w.NodesInRow(rows[k-1])))
			}
			if k < len(rows)-1 {
				down = dag.PosMap(dag.NodeIDs(w.NodesInRow(rows[k+1])))
			}

			ids := dag.NodeIDs(w.NodesInRow(row))
			swapped := false
			for i := 0; i+1 < len(ids); i++ {
				a, b := ids[i], ids[i+1]
				if pairCrossings(w, b, a, up, down) < pairCrossings(w, a, b, up, down) {
					ids[i], ids[i+1] = b, a
					swapped = true
				}
			}
			if swapped {
				w.SetRowOrder(row, ids)
				improved = true
			}
		}
		if !improved {
			return
		}
	}
}

func pairCrossings(w *dag.DAG, left, right string, up, down map[string]int) int {
	c := 0
	if up != nil {
		c += dag.CountPairCrossings(w, left, right, up, true)
	}
	if down != nil {
		c += dag.CountPairCrossings(w, left, right, down, false)
	}
	return c
}

func neighbours(w *dag.DAG, id string, parents bool) []string {
	if parents {
		return w.Parents(id)
	}
	return w.Children(id)
}
