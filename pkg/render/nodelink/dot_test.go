package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/pinboard/pkg/layout"
	"github.com/matzehuels/pinboard/pkg/pinboard"
	"github.com/matzehuels/pinboard/pkg/record"
)

func testGraph() (pinboard.Graph, record.Document, record.Annotation, record.Entity) {
	f := record.NewFactory(record.NewSequenceSource("v"))
	d := f.Document("Paper A", "https://example.com/a.pdf")
	g := pinboard.New().AddDocument(d)
	g, a := g.Annotate(f, d, []record.HighlightArea{{PageIndex: 2, Width: 5, Height: 1}}, "quote1", record.Some("important"))
	g, e := g.Mention(f, a, "John", "Doe", record.None())
	return g, d, a, e
}

func TestToDOT_Basic(t *testing.T) {
	g, d, a, e := testGraph()
	dot := ToDOT(g, Options{})

	wants := []string{
		"digraph G",
		"rankdir=TB",
		`"` + d.ID() + `" [label="Paper A", shape=note`,
		`"` + e.ID() + `" [label="John Doe", shape=ellipse`,
		`"` + a.ID() + `" -> "` + d.ID() + `"`,
		`"` + e.ID() + `" -> "` + a.ID() + `"`,
	}
	for _, w := range wants {
		if !strings.Contains(dot, w) {
			t.Errorf("ToDOT() output missing %q\n%s", w, dot)
		}
	}
	if strings.Contains(dot, "example.com") {
		t.Error("simple labels should not include URLs")
	}
}

func TestToDOT_Direction(t *testing.T) {
	g, _, _, _ := testGraph()
	if dot := ToDOT(g, Options{Direction: layout.LeftRight}); !strings.Contains(dot, "rankdir=LR") {
		t.Error("LR direction not applied")
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	g, _, _, _ := testGraph()
	first := ToDOT(g, Options{Detailed: true})
	for range 5 {
		if ToDOT(g, Options{Detailed: true}) != first {
			t.Fatal("ToDOT() output differs between calls")
		}
	}
}

func TestFmtLabel(t *testing.T) {
	_, d, a, e := testGraph()
	long := record.NewFactory(nil).Annotation(nil, strings.Repeat("x", 100), record.None())

	tests := []struct {
		name     string
		v        record.Vertex
		detailed bool
		want     string
	}{
		{"document", d, false, "Paper A"},
		{"document detailed", d, true, "Paper A\nhttps://example.com/a.pdf\nid: " + d.ID()},
		{"annotation", a, false, `"quote1"`},
		{"annotation detailed", a, true, "\"quote1\"\nnote: important\np. 3\nid: " + a.ID()},
		{"entity", e, false, "John Doe"},
		{"long quote", long, false, `"` + strings.Repeat("x", maxQuoteLabel-1) + `…"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtLabel(tt.v, tt.detailed); got != tt.want {
				t.Errorf("fmtLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromElements(t *testing.T) {
	g, d, a, _ := testGraph()
	el, err := layout.Layout(g, layout.TopBottom)
	if err != nil {
		t.Fatal(err)
	}
	dot := FromElements(el)

	// The document sits on the last rank, so after flipping y it has the
	// smallest y: its centre is half a node above the bottom edge.
	wants := []string{
		"layout=neato",
		"inputscale=72",
		`"` + d.ID() + `" [label="Paper A"`,
		`pos="100,125!"`,
		"fixedsize=true",
		`[id="` + a.ID() + "-" + d.ID() + `"]`,
	}
	for _, w := range wants {
		if !strings.Contains(dot, w) {
			t.Errorf("FromElements() output missing %q\n%s", w, dot)
		}
	}
}

func TestRenderDOT(t *testing.T) {
	g, _, _, _ := testGraph()
	dot := ToDOT(g, Options{})
	out, err := Render(context.Background(), dot, FormatDOT)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != dot {
		t.Error("dot format should return the source unchanged")
	}
	if _, err := Render(context.Background(), dot, "gif"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping graphviz rendering in short mode")
	}
	g, _, _, _ := testGraph()

	for name, dot := range map[string]string{
		"dot":    ToDOT(g, Options{}),
		"pinned": FromElements(mustLayout(t, g)),
	} {
		t.Run(name, func(t *testing.T) {
			svg, err := RenderSVG(context.Background(), dot)
			if err != nil {
				t.Fatalf("RenderSVG() error = %v", err)
			}
			if !strings.Contains(string(svg), "<svg") {
				t.Error("output is not SVG")
			}
		})
	}
}

func mustLayout(t *testing.T, g pinboard.Graph) layout.Elements {
	t.Helper()
	el, err := layout.Layout(g, layout.TopBottom)
	if err != nil {
		t.Fatal(err)
	}
	return el
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg></svg>")); string(got) != "<svg></svg>" {
		t.Error("input without viewBox should be unchanged")
	}
}
