package dag

import (
	"cmp"
	"maps"
	"slices"
)

// CountCrossings sums [CountLayerCrossings] over consecutive rows of orders.
// Rows are paired in ascending key order, so gaps in the row numbers are
// skipped and a map from [DAG.Orders] can be passed directly. The layout
// calls this after every sweep to keep the ordering with fewest crossings.
func CountCrossings(g *DAG, orders map[int][]string) int {
	rows := slices.Sorted(maps.Keys(orders))
	total := 0
	for i := 1; i < len(rows); i++ {
		total += CountLayerCrossings(g, orders[rows[i-1]], orders[rows[i]])
	}
	return total
}

// CountLayerCrossings counts pairs of edges between upper and lower that
// cross. Edges (u1,v1) and (u2,v2) cross when u1 is left of u2 but v1 is
// right of v2, so the count is the number of inversions in the lower
// endpoints once edges are sorted by upper endpoint. A binary indexed tree
// keeps this O(E log V).
func CountLayerCrossings(g *DAG, upper, lower []string) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}
	lowerPos := PosMap(lower)

	var ends [][2]int
	for i, id := range upper {
		for _, child := range g.Children(id) {
			if p, ok := lowerPos[child]; ok {
				ends = append(ends, [2]int{i, p})
			}
		}
	}
	if len(ends) < 2 {
		return 0
	}
	slices.SortFunc(ends, func(a, b [2]int) int {
		return cmp.Or(cmp.Compare(a[0], b[0]), cmp.Compare(a[1], b[1]))
	})

	seen := make(bitree, len(lower)+1)
	crossings := 0
	for n, e := range ends {
		crossings += n - seen.prefix(e[1])
		seen.add(e[1])
	}
	return crossings
}

// bitree is a Fenwick tree of counts over positions 0..len-2.
type bitree []int

// prefix returns the count recorded at positions <= pos.
func (t bitree) prefix(pos int) int {
	sum := 0
	for i := pos + 1; i > 0; i -= i & -i {
		sum += t[i]
	}
	return sum
}

func (t bitree) add(pos int) {
	for i := pos + 1; i < len(t); i += i & -i {
		t[i]++
	}
}

// CountPairCrossings counts crossings between the edges of left and right,
// two neighbours in one row, as currently ordered. adjPos indexes the row
// above when useParents is set and the row below otherwise; neighbours
// missing from it are ignored. Comparing the result with the swapped call
// tells whether a transposition helps.
func CountPairCrossings(g *DAG, left, right string, adjPos map[string]int, useParents bool) int {
	neighbours := g.Children
	if useParents {
		neighbours = g.Parents
	}
	rightPos := make([]int, 0, len(neighbours(right)))
	for _, n := range neighbours(right) {
		if p, ok := adjPos[n]; ok {
			rightPos = append(rightPos, p)
		}
	}

	crossings := 0
	for _, n := range neighbours(left) {
		lp, ok := adjPos[n]
		if !ok {
			continue
		}
		for _, rp := range rightPos {
			if lp > rp {
				crossings++
			}
		}
	}
	return crossings
}
