package record

import (
	"math"
	"slices"
	"testing"
)

func testFactory() *Factory {
	return NewFactory(NewSequenceSource("t"))
}

func TestFactoryStampsIDs(t *testing.T) {
	f := testFactory()
	d := f.Document("Paper A", "https://example.com/a.pdf")
	a := f.Annotation([]HighlightArea{{PageIndex: 0}}, "quote1", None())
	e := f.Entity("John", "Doe", None())

	if got := []string{d.ID(), a.ID(), e.ID()}; !slices.Equal(got, []string{"t-1", "t-2", "t-3"}) {
		t.Errorf("ids = %v, want [t-1 t-2 t-3]", got)
	}
	if d.Kind() != KindDocument || a.Kind() != KindAnnotation || e.Kind() != KindEntity {
		t.Error("constructors set the wrong kind")
	}
}

func TestConstructorsAcceptAnyStrings(t *testing.T) {
	d := NewDocument("", "")
	if d.ID() == "" {
		t.Error("NewDocument should stamp an id even for empty fields")
	}
	if d.Name() != "" || d.URL() != "" {
		t.Errorf("fields = (%q, %q), want empty", d.Name(), d.URL())
	}
}

func TestAnnotationCopiesAreas(t *testing.T) {
	areas := []HighlightArea{{PageIndex: 1, Top: 10, Left: 20, Width: 30, Height: 2}}
	a := testFactory().Annotation(areas, "q", Some("note"))

	areas[0].Top = 99
	if got := a.HighlightAreas()[0].Top; got != 10 {
		t.Errorf("Top = %v after caller mutation, want 10", got)
	}

	out := a.HighlightAreas()
	out[0].Left = 99
	if got := a.HighlightAreas()[0].Left; got != 20 {
		t.Errorf("Left = %v after accessor mutation, want 20", got)
	}
}

func TestAnnotationPages(t *testing.T) {
	a := testFactory().Annotation([]HighlightArea{
		{PageIndex: 3}, {PageIndex: 1}, {PageIndex: 3}, {PageIndex: 2},
	}, "q", None())
	if got := a.Pages(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Pages() = %v, want [1 2 3]", got)
	}
}

func TestEqual(t *testing.T) {
	f := testFactory()
	d := f.Document("Paper A", "u")
	d2 := f.Document("Paper A", "u")
	a := f.Annotation([]HighlightArea{{PageIndex: 0, Top: 1}}, "q", None())
	e := f.Entity("John", "Doe", Some("pic"))

	aSameFields := a
	aSameFields.areas = []HighlightArea{{PageIndex: 0, Top: 1}}
	aOtherArea := a
	aOtherArea.areas = []HighlightArea{{PageIndex: 0, Top: 2}}
	eNoPicture := e
	eNoPicture.pictureURL = None()

	tests := []struct {
		name string
		a, b Vertex
		want bool
	}{
		{"same document", d, d, true},
		{"same fields different id", d, d2, false},
		{"annotation equal areas", a, aSameFields, true},
		{"annotation different area", a, aOtherArea, false},
		{"entity same", e, e, true},
		{"entity picture absent", e, eNoPicture, false},
		{"kind mismatch", d, a, false},
		{"kind mismatch reversed", e, d, false},
		{"nil both", nil, nil, true},
		{"nil one", d, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if tt.a != nil && tt.b != nil {
				if got := tt.a.Key() == tt.b.Key(); got != tt.want {
					t.Errorf("Key equality = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestKeyDistinguishesSeparators(t *testing.T) {
	a := Document{id: "x", name: `a"|b`, url: "c"}
	b := Document{id: "x", name: "a", url: `b"|c`}
	if a.Key() == b.Key() {
		t.Errorf("keys collide: %s", a.Key())
	}
}

func TestKeyNegativeZero(t *testing.T) {
	negZero := 0.0
	negZero = -negZero
	a := Annotation{id: "x", areas: []HighlightArea{{Top: 0}}}
	b := Annotation{id: "x", areas: []HighlightArea{{Top: negZero}}}
	if !a.Equal(b) {
		t.Fatal("Equal should treat -0 and 0 alike")
	}
	if a.Key() != b.Key() {
		t.Errorf("Key() differs for -0 and 0: %s vs %s", a.Key(), b.Key())
	}
}

func TestKeyAgreesWithEqual(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		a, b HighlightArea
	}{
		{"nan", HighlightArea{Top: nan}, HighlightArea{Top: nan}},
		{"nan and number", HighlightArea{Left: nan}, HighlightArea{Left: 1}},
		{"infinities", HighlightArea{Width: math.Inf(1)}, HighlightArea{Width: math.Inf(-1)}},
		{"same", HighlightArea{PageIndex: 2, Height: 1.5}, HighlightArea{PageIndex: 2, Height: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Annotation{id: "x", areas: []HighlightArea{tt.a}}
			b := Annotation{id: "x", areas: []HighlightArea{tt.b}}
			if eq, keys := a.Equal(b), a.Key() == b.Key(); eq != keys {
				t.Errorf("Equal() = %v but keys equal = %v (%s, %s)", eq, keys, a.Key(), b.Key())
			}
		})
	}
}

func TestCompare(t *testing.T) {
	f := testFactory()
	docs := []Document{f.Document("b", ""), f.Document("a", ""), f.Document("a", "")}
	slices.SortFunc(docs, CompareDocuments)
	if docs[0].Name() != "a" || docs[1].Name() != "a" || docs[2].Name() != "b" {
		t.Errorf("documents not sorted by name: %v", docs)
	}
	if docs[0].ID() > docs[1].ID() {
		t.Errorf("ties not broken by id: %s > %s", docs[0].ID(), docs[1].ID())
	}

	anns := []Annotation{f.Annotation(nil, "zeta", None()), f.Annotation(nil, "alpha", None())}
	slices.SortFunc(anns, CompareAnnotations)
	if anns[0].Quote() != "alpha" {
		t.Errorf("first quote = %q, want alpha", anns[0].Quote())
	}

	ents := []Entity{f.Entity("Martin", "K", None()), f.Entity("Ada", "L", None())}
	slices.SortFunc(ents, CompareEntities)
	if ents[0].FirstName() != "Ada" {
		t.Errorf("first entity = %q, want Ada", ents[0].FirstName())
	}
}

func TestMatch(t *testing.T) {
	f := testFactory()
	kinds := func(v Vertex) string {
		return Match(v,
			func(Document) string { return "doc" },
			func(Annotation) string { return "ann" },
			func(Entity) string { return "ent" },
		)
	}
	got := []string{
		kinds(f.Document("", "")),
		kinds(f.Annotation(nil, "", None())),
		kinds(f.Entity("", "", None())),
	}
	if !slices.Equal(got, []string{"doc", "ann", "ent"}) {
		t.Errorf("Match = %v", got)
	}
}

func TestEntityFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Martin", "Kleppmann", "Martin Kleppmann"},
		{"Martin", "", "Martin"},
		{"", "Kleppmann", "Kleppmann"},
	}
	for _, tt := range tests {
		e := NewEntity(tt.first, tt.last, None())
		if got := e.FullName(); got != tt.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestOptional(t *testing.T) {
	if _, ok := None().Get(); ok {
		t.Error("None().Get() reported present")
	}
	if v, ok := Some("x").Get(); !ok || v != "x" {
		t.Errorf("Some(x).Get() = (%q, %v)", v, ok)
	}
	if got := None().OrElse("fallback"); got != "fallback" {
		t.Errorf("OrElse = %q, want fallback", got)
	}
	if None().Ptr() != nil {
		t.Error("None().Ptr() should be nil")
	}
	s := "y"
	if got := FromPtr(&s); !got.IsSome() || *got.Ptr() != "y" {
		t.Errorf("FromPtr round trip = %v", got)
	}
	if FromPtr(nil).IsSome() {
		t.Error("FromPtr(nil) should be absent")
	}
}

func TestKindString(t *testing.T) {
	if KindDocument.String() != "document" || KindAnnotation.String() != "annotation" || KindEntity.String() != "entity" {
		t.Error("unexpected kind names")
	}
	if Kind(0).String() != "kind(0)" {
		t.Errorf("Kind(0).String() = %q", Kind(0).String())
	}
}
