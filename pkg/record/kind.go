package record

import "fmt"

// Kind discriminates the vertex variants.
type Kind int

const (
	// KindDocument tags a [Document].
	KindDocument Kind = iota + 1
	// KindAnnotation tags an [Annotation].
	KindAnnotation
	// KindEntity tags an [Entity].
	KindEntity
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindAnnotation:
		return "annotation"
	case KindEntity:
		return "entity"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Vertex is the sealed union of [Document], [Annotation] and [Entity].
type Vertex interface {
	// ID returns the identifier stamped at construction.
	ID() string
	// Kind returns the variant tag.
	Kind() Kind
	// Key returns a canonical encoding of the kind and every field.
	Key() string

	sealed()
}

var (
	_ Vertex = Document{}
	_ Vertex = Annotation{}
	_ Vertex = Entity{}
)

// Match dispatches v to the callback for its kind.
func Match[T any](v Vertex, doc func(Document) T, ann func(Annotation) T, ent func(Entity) T) T {
	switch x := v.(type) {
	case Document:
		return doc(x)
	case Annotation:
		return ann(x)
	case Entity:
		return ent(x)
	default:
		// Vertex is sealed; only a nil interface gets here.
		panic(fmt.Sprintf("record: unexpected vertex %T", v))
	}
}

// Equal reports whether a and b are the same kind of vertex with equal
// identity and fields.
func Equal(a, b Vertex) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Document:
		return x.Equal(b.(Document))
	case Annotation:
		return x.Equal(b.(Annotation))
	case Entity:
		return x.Equal(b.(Entity))
	}
	return false
}
