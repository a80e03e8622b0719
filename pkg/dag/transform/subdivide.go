package transform

import (
	"fmt"

	"github.com/matzehuels/pinboard/pkg/dag"
)

// Subdivide replaces every edge spanning more than one rank by a chain of
// single-rank edges through [dag.NodeKindSubdivider] bend points, and
// returns the number of bend points it inserted.
//
//	Before: ent (row 0) → doc (row 2)
//	After:  ent → ent_sub_1 → doc
//
// Each bend point carries the edge's source as MasterID and the original
// target under the "target" metadata key, so a renderer can route the
// edge through them. Edge metadata is kept on the final hop only.
//
// Bend point IDs have the form "master_sub_row" with a "__N" suffix on
// collision.
//
// Sinks are left where they are; a board drawing has no need for a flat
// bottom rank.
func Subdivide(g *dag.DAG) int {
	gen := newIDGen(g.Nodes())
	var toRemove []dag.Edge
	inserted := 0

	for _, e := range g.Edges() {
		src, srcOK := g.Node(e.From)
		dst, dstOK := g.Node(e.To)
		if !srcOK || !dstOK || dst.Row <= src.Row+1 {
			continue
		}

		toRemove = append(toRemove, e)
		prevID := src.ID
		for row := src.Row + 1; row < dst.Row; row++ {
			prevID = addSubdivider(g, gen, prevID, src.ID, dst.ID, row)
			inserted++
		}
		if err := g.AddEdge(dag.Edge{From: prevID, To: dst.ID, Meta: e.Meta}); err != nil {
			panic(err)
		}
	}

	for _, e := range toRemove {
		g.RemoveEdge(e.From, e.To)
	}
	return inserted
}

func addSubdivider(g *dag.DAG, gen *idGen, from, master, target string, row int) string {
	id := gen.next(master, row)
	if err := g.AddNode(dag.Node{
		ID:       id,
		Row:      row,
		Kind:     dag.NodeKindSubdivider,
		MasterID: master,
		Meta:     dag.Metadata{"target": target},
	}); err != nil {
		panic(err)
	}
	if err := g.AddEdge(dag.Edge{From: from, To: id}); err != nil {
		panic(err)
	}
	return id
}

type idGen struct {
	used map[string]struct{}
}

func newIDGen(nodes []*dag.Node) *idGen {
	m := make(map[string]struct{}, len(nodes)*2)
	for _, n := range nodes {
		m[n.ID] = struct{}{}
	}
	return &idGen{used: m}
}

func (gen *idGen) next(base string, row int) string {
	prefix := fmt.Sprintf("%s_sub_%d", base, row)
	id := prefix
	for i := 1; ; i++ {
		if _, exists := gen.used[id]; !exists {
			gen.used[id] = struct{}{}
			return id
		}
		id = fmt.Sprintf("%s__%d", prefix, i)
	}
}
