// Package nodelink renders board graphs as node-link diagrams with
// Graphviz.
//
// # Usage
//
// Let Graphviz place the nodes:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Direction: layout.LeftRight})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Or draw a computed layout exactly as the canvas would:
//
//	el, _ := layout.Layout(g, layout.TopBottom)
//	svg, err := nodelink.RenderSVG(ctx, nodelink.FromElements(el))
//
// Documents are drawn as blue notes, annotations as yellow boxes showing
// the quote and entities as green ellipses. [Options.Detailed] adds ids,
// URLs, notes and page numbers to the labels.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], which embeds Graphviz
// as WebAssembly, so no system installation is needed.
package nodelink
