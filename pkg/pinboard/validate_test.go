package pinboard

import (
	"testing"

	"github.com/matzehuels/pinboard/pkg/algebra"
	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/record"
)

func TestValidate(t *testing.T) {
	f := newFactory()
	d := f.Document("A", "")
	a := f.Annotation(area(0), "q", record.None())
	e := f.Entity("E", "", record.None())

	type raw = algebra.Graph[record.Vertex]
	vertex := algebra.Vertex[record.Vertex]
	edge := algebra.Edge[record.Vertex]

	tests := []struct {
		name      string
		g         raw
		wantCodes []errors.Code
	}{
		{
			name: "valid",
			g:    algebra.Overlay(edge(a, d), edge(e, a)),
		},
		{
			name:      "detached annotation",
			g:         algebra.Overlay(vertex(d), vertex(a)),
			wantCodes: []errors.Code{errors.ErrCodeDetachedAnnotation},
		},
		{
			name:      "entity to document",
			g:         algebra.Overlay(edge(a, d), edge(e, d)),
			wantCodes: []errors.Code{errors.ErrCodeInvalidEdge},
		},
		{
			// Inserting a document with Connect draws an edge from every
			// existing vertex to it. Only the annotation edge is legal.
			name: "connect used for insertion",
			g:    algebra.Connect(algebra.Overlay(edge(a, d), edge(e, a)), vertex(f.Document("B", ""))),
			wantCodes: []errors.Code{
				errors.ErrCodeInvalidEdge,
				errors.ErrCodeInvalidEdge,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromAlgebra(tt.g).Validate()
			if len(tt.wantCodes) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			list, ok := err.(errors.List)
			if !ok {
				t.Fatalf("Validate() = %T (%v), want errors.List", err, err)
			}
			if len(list) != len(tt.wantCodes) {
				t.Fatalf("got %d errors (%v), want %d", len(list), list, len(tt.wantCodes))
			}
			for i, code := range tt.wantCodes {
				if list[i].Code != code {
					t.Errorf("error %d code = %s, want %s", i, list[i].Code, code)
				}
			}
		})
	}
}
