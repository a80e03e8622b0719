package pinboard

import (
	"slices"
	"testing"

	"github.com/matzehuels/pinboard/pkg/record"
)

func TestQueryOrdering(t *testing.T) {
	f := newFactory()
	docs := []record.Document{f.Document("zeta", ""), f.Document("alpha", ""), f.Document("mid", "")}
	ents := []record.Entity{f.Entity("Yann", "", record.None()), f.Entity("Ada", "", record.None())}

	tests := []struct {
		name  string
		order []int
	}{
		{"forward", []int{0, 1, 2}},
		{"reverse", []int{2, 1, 0}},
		{"shuffled", []int{1, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for i, idx := range tt.order {
				d := docs[idx]
				g = g.AddDocument(d)
				g, _ = g.Annotate(f, d, area(0), d.Name()+" quote", record.None())
				if i < len(ents) {
					g = g.AddEntity(ents[(i+idx)%len(ents)])
				}
			}

			var names []string
			for _, d := range g.DocumentNodes() {
				names = append(names, d.Name())
			}
			if !slices.Equal(names, []string{"alpha", "mid", "zeta"}) {
				t.Errorf("DocumentNodes() = %v", names)
			}

			var quotes []string
			for _, a := range g.AnnotationNodes() {
				quotes = append(quotes, a.Quote())
			}
			if !slices.IsSorted(quotes) {
				t.Errorf("AnnotationNodes() not sorted: %v", quotes)
			}

			var firsts []string
			for _, e := range g.EntityNodes() {
				firsts = append(firsts, e.FirstName())
			}
			if !slices.IsSorted(firsts) {
				t.Errorf("EntityNodes() not sorted: %v", firsts)
			}
		})
	}
}

func TestDocumentAnnotationsSorted(t *testing.T) {
	f := newFactory()
	d := f.Document("A", "")
	other := f.Document("B", "")
	g := New().AddDocument(d).AddDocument(other)
	for _, q := range []string{"charlie", "alpha", "bravo"} {
		g, _ = g.Annotate(f, d, area(0), q, record.None())
	}
	g, _ = g.Annotate(f, other, area(0), "elsewhere", record.None())

	var quotes []string
	for _, a := range g.DocumentAnnotations(d) {
		quotes = append(quotes, a.Quote())
	}
	if !slices.Equal(quotes, []string{"alpha", "bravo", "charlie"}) {
		t.Errorf("DocumentAnnotations() = %v", quotes)
	}
}

func TestAnnotationEntitiesSorted(t *testing.T) {
	f := newFactory()
	d := f.Document("A", "")
	g, a := New().Annotate(f, d, area(0), "q", record.None())
	for _, name := range []string{"Zoe", "Bob", "Mia"} {
		g, _ = g.Mention(f, a, name, "", record.None())
	}

	var names []string
	for _, e := range g.AnnotationEntities(a) {
		names = append(names, e.FirstName())
	}
	if !slices.Equal(names, []string{"Bob", "Mia", "Zoe"}) {
		t.Errorf("AnnotationEntities() = %v", names)
	}
}

func TestQueriesMatchByIdentity(t *testing.T) {
	f := newFactory()
	d := f.Document("A", "")
	lookalike := f.Document("A", "") // same fields, different id
	g, _ := New().Annotate(f, d, area(0), "q", record.None())

	if got := g.DocumentAnnotations(lookalike); len(got) != 0 {
		t.Errorf("lookalike document matched %d annotations", len(got))
	}
}

func TestFindByID(t *testing.T) {
	f := newFactory()
	d := f.Document("A", "")
	e := f.Entity("E", "", record.None())
	g, a := New().AddDocument(d).AddEntity(e).Annotate(f, d, area(0), "q", record.None())

	tests := []struct {
		name   string
		find   func(string) (string, bool)
		id     string
		wantOK bool
	}{
		{"doc hit", wrap(g.FindDocByID), d.ID(), true},
		{"doc miss", wrap(g.FindDocByID), "nope", false},
		{"doc id of entity", wrap(g.FindDocByID), e.ID(), false},
		{"entity hit", wrap(g.FindEntityByID), e.ID(), true},
		{"entity miss", wrap(g.FindEntityByID), d.ID(), false},
		{"annotation hit", wrap(g.FindAnnotationByID), a.ID(), true},
		{"annotation miss", wrap(g.FindAnnotationByID), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.find(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && id != tt.id {
				t.Errorf("id = %q, want %q", id, tt.id)
			}
		})
	}

	if _, ok := New().FindDocByID(d.ID()); ok {
		t.Error("empty graph should not find anything")
	}
}

func wrap[T record.Vertex](find func(string) (T, bool)) func(string) (string, bool) {
	return func(id string) (string, bool) {
		v, ok := find(id)
		if !ok {
			return "", false
		}
		return v.ID(), true
	}
}
