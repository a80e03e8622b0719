package layout

import (
	"math"
	"slices"

	"github.com/matzehuels/pinboard/pkg/dag"
)

const coordinatePasses = 4

// assignCoordinates returns the centre of every working node, bend points
// included.
//
// Along the rank axis each rank gets a band of the node size plus RankSep.
// Across it, each rank starts packed and centred on zero, then nodes are
// pulled towards the median of their neighbours for a few alternating
// passes while keeping order and spacing. Finally the drawing is shifted so
// no box starts left of or above the origin.
func assignCoordinates(w *dag.DAG, opts Options) map[string]Position {
	rankSize, breadth := opts.NodeHeight, opts.NodeWidth
	if opts.Direction.Horizontal() {
		rankSize, breadth = opts.NodeWidth, opts.NodeHeight
	}
	p := placer{w: w, breadth: breadth, sep: opts.NodeSep, cross: make(map[string]float64, w.NodeCount())}

	rows := w.RowIDs()
	for _, row := range rows {
		p.pack(row)
	}
	for i := range coordinatePasses {
		if i%2 == 0 {
			for k := 1; k < len(rows); k++ {
				p.align(rows[k], true)
			}
		} else {
			for k := len(rows) - 2; k >= 0; k-- {
				p.align(rows[k], false)
			}
		}
	}

	minEdge := math.Inf(1)
	for _, n := range w.Nodes() {
		minEdge = math.Min(minEdge, p.cross[n.ID]-p.size(n)/2)
	}

	centers := make(map[string]Position, w.NodeCount())
	for k, row := range rows {
		along := float64(k)*(rankSize+opts.RankSep) + rankSize/2
		for _, n := range w.NodesInRow(row) {
			across := p.cross[n.ID] - minEdge
			if opts.Direction.Horizontal() {
				centers[n.ID] = Position{X: along, Y: across}
			} else {
				centers[n.ID] = Position{X: across, Y: along}
			}
		}
	}
	return centers
}

type placer struct {
	w       *dag.DAG
	breadth float64
	sep     float64
	cross   map[string]float64
}

// size is the extent of a node across the rank axis. Bend points take no
// room beyond the separation.
func (p *placer) size(n *dag.Node) float64 {
	if n.IsSynthetic() {
		return 0
	}
	return p.breadth
}

func (p *placer) gap(a, b *dag.Node) float64 {
	return (p.size(a)+p.size(b))/2 + p.sep
}

func (p *placer) pack(row int) {
	nodes := p.w.NodesInRow(row)
	x := 0.0
	for i, n := range nodes {
		if i > 0 {
			x += p.gap(nodes[i-1], n)
		}
		p.cross[n.ID] = x
	}
	for _, n := range nodes {
		p.cross[n.ID] -= x / 2
	}
}

// align moves the nodes of a rank towards the median of their neighbours.
// A forward pass pushes overlapping nodes right and a backward pass pushes
// them left; the mean of both keeps order and spacing and splits the
// displacement evenly.
func (p *placer) align(row int, useParents bool) {
	nodes := p.w.NodesInRow(row)
	if len(nodes) == 0 {
		return
	}

	desired := make([]float64, len(nodes))
	for i, n := range nodes {
		desired[i] = p.cross[n.ID]
		var xs []float64
		for _, m := range neighbours(p.w, n.ID, useParents) {
			xs = append(xs, p.cross[m])
		}
		if len(xs) > 0 {
			desired[i] = median(xs)
		}
	}

	last := len(nodes) - 1
	left := make([]float64, len(nodes))
	right := make([]float64, len(nodes))
	for i := range nodes {
		left[i] = desired[i]
		if i > 0 {
			left[i] = math.Max(left[i], left[i-1]+p.gap(nodes[i-1], nodes[i]))
		}
	}
	for i := last; i >= 0; i-- {
		right[i] = desired[i]
		if i < last {
			right[i] = math.Min(right[i], right[i+1]-p.gap(nodes[i], nodes[i+1]))
		}
	}
	for i, n := range nodes {
		p.cross[n.ID] = (left[i] + right[i]) / 2
	}
}

func median(xs []float64) float64 {
	xs = slices.Clone(xs)
	slices.Sort(xs)
	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}
	return (xs[mid-1] + xs[mid]) / 2
}
