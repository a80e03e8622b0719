package algebra

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// Keyed is the vertex constraint. Equal keys mean equal vertices.
type Keyed interface {
	Key() string
}

// Pair is a directed edge from Source to Target.
type Pair[V Keyed] struct {
	Source V
	Target V
}

// Key returns a canonical encoding of the edge.
func (p Pair[V]) Key() string {
	return edgeKey(p.Source.Key(), p.Target.Key())
}

func edgeKey(src, dst string) string {
	return strconv.Itoa(len(src)) + ":" + src + dst
}

type op uint8

const (
	opVertex op = iota + 1
	opOverlay
	opConnect
)

type node[V Keyed] struct {
	op    op
	v     V
	left  Graph[V]
	right Graph[V]
	size  int

	once sync.Once
	memo atomic.Pointer[sets[V]]
}

// Graph is an immutable graph over V. The zero value is the empty graph.
type Graph[V Keyed] struct {
	n *node[V]
}

// Empty returns the graph with no vertices.
func Empty[V Keyed]() Graph[V] { return Graph[V]{} }

// Vertex returns the graph containing only v.
func Vertex[V Keyed](v V) Graph[V] {
	return Graph[V]{n: &node[V]{op: opVertex, v: v, size: 1}}
}

// Overlay returns the union of a and b.
func Overlay[V Keyed](a, b Graph[V]) Graph[V] {
	if a.n == nil {
		return b
	}
	if b.n == nil {
		return a
	}
	return Graph[V]{n: &node[V]{op: opOverlay, left: a, right: b, size: a.n.size + b.n.size}}
}

// Connect returns the union of a and b plus an edge from every vertex of a
// to every vertex of b.
func Connect[V Keyed](a, b Graph[V]) Graph[V] {
	if a.n == nil {
		return b
	}
	if b.n == nil {
		return a
	}
	return Graph[V]{n: &node[V]{op: opConnect, left: a, right: b, size: a.n.size + b.n.size}}
}

// Edge returns the graph with vertices a and b and the single edge a → b.
func Edge[V Keyed](a, b V) Graph[V] {
	return Connect(Vertex(a), Vertex(b))
}

// Vertices returns the graph with the given isolated vertices.
func Vertices[V Keyed](vs ...V) Graph[V] {
	g := Empty[V]()
	for _, v := range vs {
		g = Overlay(g, Vertex(v))
	}
	return g
}

// Edges returns the graph made of the given edges and their endpoints.
func Edges[V Keyed](es ...Pair[V]) Graph[V] {
	g := Empty[V]()
	for _, e := range es {
		g = Overlay(g, Edge(e.Source, e.Target))
	}
	return g
}

// Overlays folds Overlay over gs.
func Overlays[V Keyed](gs ...Graph[V]) Graph[V] {
	g := Empty[V]()
	for _, x := range gs {
		g = Overlay(g, x)
	}
	return g
}

// IsEmpty reports whether g has no vertices.
func (g Graph[V]) IsEmpty() bool { return g.n == nil }

// Size returns the number of leaves in the expression, counting repeated
// vertices. It bounds the work of the first set query.
func (g Graph[V]) Size() int {
	if g.n == nil {
		return 0
	}
	return g.n.size
}

// VertexSet returns the distinct vertices of g in first-occurrence order of a
// left-to-right walk. The slice is a copy.
func (g Graph[V]) VertexSet() []V {
	s := g.sets()
	out := make([]V, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// EdgeSet returns the distinct edges of g. The slice is a copy.
func (g Graph[V]) EdgeSet() []Pair[V] {
	s := g.sets()
	out := make([]Pair[V], len(s.edges))
	copy(out, s.edges)
	return out
}

// VertexCount returns the number of distinct vertices.
func (g Graph[V]) VertexCount() int { return len(g.sets().vertices) }

// EdgeCount returns the number of distinct edges.
func (g Graph[V]) EdgeCount() int { return len(g.sets().edges) }

// HasVertex reports whether v is a member of g.
func (g Graph[V]) HasVertex(v V) bool {
	_, ok := g.sets().vindex[v.Key()]
	return ok
}

// HasEdge reports whether g contains the edge a → b.
func (g Graph[V]) HasEdge(a, b V) bool {
	_, ok := g.sets().eindex[edgeKey(a.Key(), b.Key())]
	return ok
}

// PreSet returns the distinct sources of edges whose target equals v.
func (g Graph[V]) PreSet(v V) []V {
	key := v.Key()
	var out []V
	for _, e := range g.sets().edges {
		if e.Target.Key() == key {
			out = append(out, e.Source)
		}
	}
	return out
}

// PostSet returns the distinct targets of edges whose source equals v.
func (g Graph[V]) PostSet(v V) []V {
	key := v.Key()
	var out []V
	for _, e := range g.sets().edges {
		if e.Source.Key() == key {
			out = append(out, e.Target)
		}
	}
	return out
}

// Equal reports whether a and b have the same vertex and edge sets.
func Equal[V Keyed](a, b Graph[V]) bool {
	sa, sb := a.sets(), b.sets()
	if len(sa.vertices) != len(sb.vertices) || len(sa.edges) != len(sb.edges) {
		return false
	}
	for k := range sa.vindex {
		if _, ok := sb.vindex[k]; !ok {
			return false
		}
	}
	for k := range sa.eindex {
		if _, ok := sb.eindex[k]; !ok {
			return false
		}
	}
	return true
}
