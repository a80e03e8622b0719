package record

import "strings"

// CompareDocuments orders documents by name, then id.
func CompareDocuments(a, b Document) int {
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	return strings.Compare(a.id, b.id)
}

// CompareAnnotations orders annotations by quote, then id.
func CompareAnnotations(a, b Annotation) int {
	if c := strings.Compare(a.quote, b.quote); c != 0 {
		return c
	}
	return strings.Compare(a.id, b.id)
}

// CompareEntities orders entities by first name, then id.
func CompareEntities(a, b Entity) int {
	if c := strings.Compare(a.firstName, b.firstName); c != 0 {
		return c
	}
	return strings.Compare(a.id, b.id)
}

// CompareVertices orders vertices of any kind by id, then kind, then key.
// The layout uses it for deterministic node output.
func CompareVertices(a, b Vertex) int {
	if c := strings.Compare(a.ID(), b.ID()); c != 0 {
		return c
	}
	if a.Kind() != b.Kind() {
		return int(a.Kind()) - int(b.Kind())
	}
	return strings.Compare(a.Key(), b.Key())
}
