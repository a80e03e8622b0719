package nodelink

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pinboard/pkg/layout"
	"github.com/matzehuels/pinboard/pkg/observability"
	"github.com/matzehuels/pinboard/pkg/pinboard"
	"github.com/matzehuels/pinboard/pkg/record"
)

// Output formats accepted by [Render].
const (
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// Formats lists the output formats accepted by [Render].
var Formats = []string{FormatSVG, FormatDOT}

const maxQuoteLabel = 48

// Options configures diagram generation.
type Options struct {
	// Direction sets rankdir. Empty means top to bottom.
	Direction layout.Direction
	// Detailed adds ids, URLs, notes and pages to node labels.
	Detailed bool
}

type style struct {
	shape, fill, border string
}

var styles = map[record.Kind]style{
	record.KindDocument:   {shape: "note", fill: "#dbeafe", border: "#1d4ed8"},
	record.KindAnnotation: {shape: "box", fill: "#fef9c3", border: "#a16207"},
	record.KindEntity:     {shape: "ellipse", fill: "#dcfce7", border: "#15803d"},
}

// ToDOT converts a board graph to Graphviz DOT source, leaving placement to
// the dot engine. Vertices are emitted in id order and edges in
// source-then-target order, so equal graphs give identical output.
func ToDOT(g pinboard.Graph, opts Options) string {
	rankdir := layout.TopBottom
	if opts.Direction.Horizontal() {
		rankdir = layout.LeftRight
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	writeDefaults(&buf)

	vertices := g.Vertices()
	slices.SortFunc(vertices, record.CompareVertices)
	for _, v := range vertices {
		fmt.Fprintf(&buf, "  %q [%s];\n", v.ID(), strings.Join(fmtAttrs(v, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	edges := g.Edges()
	slices.SortFunc(edges, func(a, b pinboard.Edge) int {
		return cmp.Or(cmp.Compare(a.Source.ID(), b.Source.ID()), cmp.Compare(a.Target.ID(), b.Target.ID()))
	})
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source.ID(), e.Target.ID())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// FromElements converts a computed layout to DOT source with every node
// pinned at its layout position, for the neato engine. The picture then
// matches what a canvas fed the same elements would show. Graphviz puts
// the origin bottom-left, so y is flipped.
func FromElements(el layout.Elements) string {
	bounds := el.Bounds()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=true;\n")
	writeDefaults(&buf)

	for _, n := range el.Nodes {
		c := n.Center()
		attrs := fmtAttrs(n.Data, false)
		attrs = append(attrs,
			fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(c.X-bounds.X), fmtFloat(bounds.Y+bounds.Height-c.Y)),
			fmt.Sprintf("width=%s", fmtFloat(n.Width/72)),
			fmt.Sprintf("height=%s", fmtFloat(n.Height/72)),
			"fixedsize=true",
		)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range el.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [id=%q];\n", e.Source, e.Target, e.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDefaults(buf *bytes.Buffer) {
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=\"rounded,filled\", fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#64748b\", arrowsize=0.8];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")
}

func fmtAttrs(v record.Vertex, detailed bool) []string {
	s := styles[v.Kind()]
	return []string{
		fmt.Sprintf("label=%q", fmtLabel(v, detailed)),
		"shape=" + s.shape,
		fmt.Sprintf("fillcolor=%q", s.fill),
		fmt.Sprintf("color=%q", s.border),
	}
}

func fmtLabel(v record.Vertex, detailed bool) string {
	lines := record.Match(v,
		func(d record.Document) []string {
			lines := []string{d.Name()}
			if detailed && d.URL() != "" {
				lines = append(lines, d.URL())
			}
			return lines
		},
		func(a record.Annotation) []string {
			lines := []string{strconv.Quote(truncate(a.Quote(), maxQuoteLabel))}
			if !detailed {
				return lines
			}
			if note, ok := a.Content().Get(); ok {
				lines = append(lines, "note: "+note)
			}
			pages := make([]string, 0, len(a.Pages()))
			for _, p := range a.Pages() {
				pages = append(pages, strconv.Itoa(p+1))
			}
			if len(pages) > 0 {
				lines = append(lines, "p. "+strings.Join(pages, ", "))
			}
			return lines
		},
		func(e record.Entity) []string {
			lines := []string{e.FullName()}
			if pic, ok := e.PictureURL().Get(); ok && detailed {
				lines = append(lines, pic)
			}
			return lines
		},
	)
	if detailed {
		lines = append(lines, "id: "+v.ID())
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Render produces the diagram in the given format: DOT source is returned
// as is, SVG goes through [RenderSVG].
func Render(ctx context.Context, dot, format string) (data []byte, err error) {
	start := time.Now()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format)
	defer func() {
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	}()

	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

var layoutAttrRe = regexp.MustCompile(`(?m)^\s*layout\s*=\s*"?(\w+)"?\s*;`)

// RenderSVG renders DOT source to SVG with Graphviz. The engine is dot
// unless the source sets a graph-level layout attribute (FromElements sets
// neato).
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	if m := layoutAttrRe.FindStringSubmatch(dot); m != nil {
		gv.SetLayout(graphviz.Layout(m[1]))
	}

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
