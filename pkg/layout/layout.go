package layout

import (
	"cmp"
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/matzehuels/pinboard/pkg/dag"
	"github.com/matzehuels/pinboard/pkg/dag/transform"
	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/observability"
	"github.com/matzehuels/pinboard/pkg/pinboard"
	"github.com/matzehuels/pinboard/pkg/record"
)

const metaVertex = "vertex"

// Layout computes a drawing of g in the given direction with default
// sizes and no jitter.
func Layout(g pinboard.Graph, dir Direction) (Elements, error) {
	return Compute(context.Background(), g, Options{Direction: dir})
}

// Compute places every vertex of g and routes every edge.
//
// Each call builds its own working graph; nothing is cached between calls,
// so the result depends only on g and opts. With Jitter off the output is
// fully deterministic.
func Compute(ctx context.Context, g pinboard.Graph, opts Options) (el Elements, err error) {
	if err := opts.Validate(); err != nil {
		return Elements{}, err
	}

	start := time.Now()
	vertices := g.Vertices()
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, string(opts.Direction), len(vertices))

	var res observability.LayoutResult
	defer func() {
		hooks.OnLayoutComplete(ctx, string(opts.Direction), res, time.Since(start), err)
	}()

	w, err := build(vertices, g.Edges())
	if err != nil {
		return Elements{}, err
	}

	removed := transform.BreakCycles(w)
	transform.AssignLayers(w)
	res.BendPoints = transform.Subdivide(w)
	if err := w.Validate(); err != nil {
		return Elements{}, errors.Wrap(errors.ErrCodeInternal, err, "layered graph")
	}
	res.Crossings = orderRanks(w, opts.Sweeps)
	res.Ranks = w.RowCount()

	centers := assignCoordinates(w, opts)
	el = emit(w, g.Edges(), centers, opts)
	res.Nodes, res.Edges = len(el.Nodes), len(el.Edges)

	opts.Logger.Debug("layout computed",
		"direction", opts.Direction,
		"nodes", res.Nodes,
		"edges", res.Edges,
		"ranks", res.Ranks,
		"bends", res.BendPoints,
		"crossings", res.Crossings,
		"cycle_edges_dropped", removed,
		"elapsed", time.Since(start),
	)
	return el, nil
}

// build registers vertices sorted by id and edges sorted by endpoint ids,
// so the initial rank order is independent of how the graph was composed.
func build(vertices []record.Vertex, edges []pinboard.Edge) (*dag.DAG, error) {
	vertices = slices.Clone(vertices)
	slices.SortFunc(vertices, record.CompareVertices)

	w := dag.New()
	for _, v := range vertices {
		if err := w.AddNode(dag.Node{ID: v.ID(), Meta: dag.Metadata{metaVertex: v}}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "vertex %s", v.ID())
		}
	}

	edges = sortedEdges(edges)
	for _, e := range edges {
		if err := w.AddEdge(dag.Edge{From: e.Source.ID(), To: e.Target.ID()}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "edge %s", EdgeID(e.Source.ID(), e.Target.ID()))
		}
	}
	return w, nil
}

func sortedEdges(edges []pinboard.Edge) []pinboard.Edge {
	edges = slices.Clone(edges)
	slices.SortFunc(edges, func(a, b pinboard.Edge) int {
		return cmp.Or(
			cmp.Compare(a.Source.ID(), b.Source.ID()),
			cmp.Compare(a.Target.ID(), b.Target.ID()),
		)
	})
	return edges
}

func emit(w *dag.DAG, edges []pinboard.Edge, centers map[string]Position, opts Options) Elements {
	source, target := SideBottom, SideTop
	if opts.Direction.Horizontal() {
		source, target = SideRight, SideLeft
	}

	var jitter func() float64
	if opts.Jitter > 0 {
		jitter = rand.Float64
		if opts.Seed != 0 {
			jitter = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x5eed)).Float64
		}
	}

	var el Elements
	for _, n := range w.Nodes() {
		if n.IsSynthetic() {
			continue
		}
		v := n.Meta[metaVertex].(record.Vertex)
		c := centers[n.ID]
		pos := Position{X: c.X - opts.NodeWidth/2, Y: c.Y - opts.NodeHeight/2}
		if jitter != nil {
			pos.X += jitter() * opts.Jitter
		}
		el.Nodes = append(el.Nodes, Node{
			ID:             n.ID,
			Type:           TypeOf(v),
			Data:           v,
			Position:       pos,
			Width:          opts.NodeWidth,
			Height:         opts.NodeHeight,
			SourcePosition: source,
			TargetPosition: target,
		})
	}
	slices.SortFunc(el.Nodes, func(a, b Node) int { return cmp.Compare(a.ID, b.ID) })

	bends := bendPoints(w, centers)
	for _, e := range edges {
		src, dst := e.Source.ID(), e.Target.ID()
		el.Edges = append(el.Edges, Edge{
			ID:       EdgeID(src, dst),
			Source:   src,
			Target:   dst,
			Animated: true,
			Bends:    bends[[2]string{src, dst}],
		})
	}
	slices.SortFunc(el.Edges, func(a, b Edge) int {
		return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.ID, b.ID))
	})
	return el
}

// bendPoints collects bend node centres per original edge, in rank order.
func bendPoints(w *dag.DAG, centers map[string]Position) map[[2]string][]Position {
	type bend struct {
		row int
		pos Position
	}
	chains := make(map[[2]string][]bend)
	for _, n := range w.Nodes() {
		if !n.IsSubdivider() {
			continue
		}
		target, _ := n.Meta["target"].(string)
		key := [2]string{n.MasterID, target}
		chains[key] = append(chains[key], bend{n.Row, centers[n.ID]})
	}

	out := make(map[[2]string][]Position, len(chains))
	for key, chain := range chains {
		slices.SortFunc(chain, func(a, b bend) int { return a.row - b.row })
		pts := make([]Position, len(chain))
		for i, b := range chain {
			pts[i] = b.pos
		}
		out[key] = pts
	}
	return out
}
