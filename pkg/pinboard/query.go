package pinboard

import (
	"slices"

	"github.com/matzehuels/pinboard/pkg/record"
)

// DocumentNodes returns all documents sorted by name.
func (g Graph) DocumentNodes() []record.Document {
	docs := ofKind[record.Document](g.g.VertexSet())
	slices.SortFunc(docs, record.CompareDocuments)
	return docs
}

// AnnotationNodes returns all annotations sorted by quote.
func (g Graph) AnnotationNodes() []record.Annotation {
	anns := ofKind[record.Annotation](g.g.VertexSet())
	slices.SortFunc(anns, record.CompareAnnotations)
	return anns
}

// EntityNodes returns all entities sorted by first name.
func (g Graph) EntityNodes() []record.Entity {
	ents := ofKind[record.Entity](g.g.VertexSet())
	slices.SortFunc(ents, record.CompareEntities)
	return ents
}

// DocumentAnnotations returns the annotations attached to doc, sorted by
// quote. Each annotation appears once.
func (g Graph) DocumentAnnotations(doc record.Document) []record.Annotation {
	anns := ofKind[record.Annotation](g.g.PreSet(doc))
	slices.SortFunc(anns, record.CompareAnnotations)
	return anns
}

// AnnotationEntities returns the entities attached to ann, sorted by first
// name. Each entity appears once.
func (g Graph) AnnotationEntities(ann record.Annotation) []record.Entity {
	ents := ofKind[record.Entity](g.g.PreSet(ann))
	slices.SortFunc(ents, record.CompareEntities)
	return ents
}

// AnnotationDocuments returns the documents ann is attached to, sorted by
// name.
func (g Graph) AnnotationDocuments(ann record.Annotation) []record.Document {
	docs := ofKind[record.Document](g.g.PostSet(ann))
	slices.SortFunc(docs, record.CompareDocuments)
	return docs
}

// EntityAnnotations returns the annotations mentioning e, sorted by quote.
func (g Graph) EntityAnnotations(e record.Entity) []record.Annotation {
	anns := ofKind[record.Annotation](g.g.PostSet(e))
	slices.SortFunc(anns, record.CompareAnnotations)
	return anns
}

// FindDocByID returns the first document, in name order, whose id is id.
func (g Graph) FindDocByID(id string) (record.Document, bool) {
	return findByID(g.DocumentNodes(), id)
}

// FindEntityByID returns the first entity, in first-name order, whose id is id.
func (g Graph) FindEntityByID(id string) (record.Entity, bool) {
	return findByID(g.EntityNodes(), id)
}

// FindAnnotationByID returns the first annotation, in quote order, whose id
// is id.
func (g Graph) FindAnnotationByID(id string) (record.Annotation, bool) {
	return findByID(g.AnnotationNodes(), id)
}

// Stats summarizes the size of a graph.
type Stats struct {
	Documents   int
	Annotations int
	Entities    int
	Edges       int
}

// Vertices returns the total vertex count.
func (s Stats) Vertices() int { return s.Documents + s.Annotations + s.Entities }

// Stats counts vertices by kind and edges.
func (g Graph) Stats() Stats {
	var s Stats
	for _, v := range g.g.VertexSet() {
		switch v.Kind() {
		case record.KindDocument:
			s.Documents++
		case record.KindAnnotation:
			s.Annotations++
		case record.KindEntity:
			s.Entities++
		}
	}
	s.Edges = g.g.EdgeCount()
	return s
}

func ofKind[T record.Vertex](vs []record.Vertex) []T {
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		if x, ok := v.(T); ok {
			out = append(out, x)
		}
	}
	return out
}

func findByID[T record.Vertex](vs []T, id string) (T, bool) {
	i := slices.IndexFunc(vs, func(v T) bool { return v.ID() == id })
	if i < 0 {
		var zero T
		return zero, false
	}
	return vs[i], true
}
