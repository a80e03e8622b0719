package record

import (
	"math"
	"slices"
)

// HighlightArea locates part of a quote on a document page. Coordinates are
// percentages of the page size, as reported by the PDF viewer.
type HighlightArea struct {
	PageIndex int     `json:"pageIndex" toml:"page" yaml:"page"`
	Top       float64 `json:"top" toml:"top" yaml:"top"`
	Left      float64 `json:"left" toml:"left" yaml:"left"`
	Width     float64 `json:"width" toml:"width" yaml:"width"`
	Height    float64 `json:"height" toml:"height" yaml:"height"`
}

// Annotation is a passage quoted from a document, with an optional note.
type Annotation struct {
	id      string
	content Optional
	quote   string
	areas   []HighlightArea
}

// NewAnnotation creates an annotation with a fresh id from [DefaultFactory].
// The areas slice is copied.
func NewAnnotation(areas []HighlightArea, quote string, content Optional) Annotation {
	return DefaultFactory.Annotation(areas, quote, content)
}

func (a Annotation) ID() string        { return a.id }
func (a Annotation) Kind() Kind        { return KindAnnotation }
func (a Annotation) Quote() string     { return a.quote }
func (a Annotation) Content() Optional { return a.content }
func (Annotation) sealed()             {}

// HighlightAreas returns a copy of the highlight rectangles in capture order.
func (a Annotation) HighlightAreas() []HighlightArea {
	return slices.Clone(a.areas)
}

// Pages returns the distinct page indexes covered by the highlight areas,
// in ascending order.
func (a Annotation) Pages() []int {
	pages := make([]int, 0, len(a.areas))
	for _, h := range a.areas {
		pages = append(pages, h.PageIndex)
	}
	slices.Sort(pages)
	return slices.Compact(pages)
}

// Key returns the canonical encoding of a.
func (a Annotation) Key() string {
	k := newKey(KindAnnotation).str(a.id).opt(a.content).str(a.quote)
	for _, h := range a.areas {
		k.integer(h.PageIndex).num(h.Top).num(h.Left).num(h.Width).num(h.Height)
	}
	return k.String()
}

// Equal reports whether a and o agree on id, note, quote and every
// highlight area in order.
func (a Annotation) Equal(o Annotation) bool {
	return a.id == o.id &&
		a.content == o.content &&
		a.quote == o.quote &&
		slices.EqualFunc(a.areas, o.areas, sameArea)
}

// sameArea compares coordinates the way Key encodes them: NaN matches NaN.
func sameArea(x, y HighlightArea) bool {
	return x.PageIndex == y.PageIndex &&
		sameFloat(x.Top, y.Top) &&
		sameFloat(x.Left, y.Left) &&
		sameFloat(x.Width, y.Width) &&
		sameFloat(x.Height, y.Height)
}

func sameFloat(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}
