package pinboard

import (
	"github.com/matzehuels/pinboard/pkg/algebra"
	"github.com/matzehuels/pinboard/pkg/record"
)

// Edge is a directed edge between two records.
type Edge = algebra.Pair[record.Vertex]

// Graph is an immutable pinboard. The zero value is an empty board.
type Graph struct {
	g algebra.Graph[record.Vertex]
}

// New returns an empty graph.
func New() Graph { return Graph{} }

// FromAlgebra wraps a raw algebraic graph. The result is not checked; call
// [Graph.Validate] when the input did not come from this package.
func FromAlgebra(g algebra.Graph[record.Vertex]) Graph { return Graph{g: g} }

// Algebra returns the underlying algebraic graph.
func (g Graph) Algebra() algebra.Graph[record.Vertex] { return g.g }

// Op derives a new graph from an old one.
type Op func(Graph) Graph

// Apply runs ops in order, starting from g.
func Apply(g Graph, ops ...Op) Graph {
	for _, op := range ops {
		g = op(g)
	}
	return g
}

// AddDocument returns an op inserting doc as an isolated vertex.
func AddDocument(doc record.Document) Op {
	return func(g Graph) Graph { return g.AddDocument(doc) }
}

// AddEntity returns an op inserting e as an isolated vertex.
func AddEntity(e record.Entity) Op {
	return func(g Graph) Graph { return g.AddEntity(e) }
}

// AttachAnnotation returns an op adding the edge ann → doc.
func AttachAnnotation(ann record.Annotation, doc record.Document) Op {
	return func(g Graph) Graph { return g.AttachAnnotation(ann, doc) }
}

// AttachEntity returns an op adding the edge e → ann.
func AttachEntity(e record.Entity, ann record.Annotation) Op {
	return func(g Graph) Graph { return g.AttachEntity(e, ann) }
}

// AddDocument returns g with doc added and no new edges.
func (g Graph) AddDocument(doc record.Document) Graph {
	return g.overlay(algebra.Vertex[record.Vertex](doc))
}

// AddEntity returns g with e added and no new edges.
func (g Graph) AddEntity(e record.Entity) Graph {
	return g.overlay(algebra.Vertex[record.Vertex](e))
}

// AttachAnnotation returns g with the edge ann → doc. Either endpoint is
// inserted if missing.
func (g Graph) AttachAnnotation(ann record.Annotation, doc record.Document) Graph {
	return Graph{g: algebra.Overlay(algebra.Edge[record.Vertex](ann, doc), g.g)}
}

// AttachEntity returns g with the edge e → ann. Either endpoint is inserted
// if missing.
func (g Graph) AttachEntity(e record.Entity, ann record.Annotation) Graph {
	return Graph{g: algebra.Overlay(algebra.Edge[record.Vertex](e, ann), g.g)}
}

// Annotate creates an annotation on doc and attaches it in one step.
// A nil factory uses [record.DefaultFactory].
func (g Graph) Annotate(f *record.Factory, doc record.Document, areas []record.HighlightArea, quote string, content record.Optional) (Graph, record.Annotation) {
	ann := factory(f).Annotation(areas, quote, content)
	return g.AttachAnnotation(ann, doc), ann
}

// Mention creates an entity and attaches it to ann in one step.
// A nil factory uses [record.DefaultFactory].
func (g Graph) Mention(f *record.Factory, ann record.Annotation, firstName, lastName string, pictureURL record.Optional) (Graph, record.Entity) {
	e := factory(f).Entity(firstName, lastName, pictureURL)
	return g.AttachEntity(e, ann), e
}

// Merge overlays other onto g.
func (g Graph) Merge(other Graph) Graph {
	return g.overlay(other.g)
}

func (g Graph) overlay(x algebra.Graph[record.Vertex]) Graph {
	return Graph{g: algebra.Overlay(g.g, x)}
}

func factory(f *record.Factory) *record.Factory {
	if f == nil {
		return record.DefaultFactory
	}
	return f
}

// Vertices returns every vertex, in no particular order.
func (g Graph) Vertices() []record.Vertex { return g.g.VertexSet() }

// Edges returns every edge, in no particular order.
func (g Graph) Edges() []Edge { return g.g.EdgeSet() }

// IsEmpty reports whether g has no vertices.
func (g Graph) IsEmpty() bool { return g.g.IsEmpty() }

// Contains reports whether v is a vertex of g.
func (g Graph) Contains(v record.Vertex) bool { return g.g.HasVertex(v) }

// Equal reports whether g and other have the same vertex and edge sets.
func (g Graph) Equal(other Graph) bool { return algebra.Equal(g.g, other.g) }
