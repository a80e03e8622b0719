package pinboard

import (
	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/record"
)

// Validate checks the structural rules that the attachment operations
// uphold by construction:
//
//   - every edge is Entity → Annotation or Annotation → Document
//   - every annotation is attached to at least one document
//
// It returns nil for a valid graph, otherwise an [errors.List] with one
// entry per violation (codes INVALID_EDGE and DETACHED_ANNOTATION).
func (g Graph) Validate() error {
	var errs errors.List

	for _, e := range g.g.EdgeSet() {
		if !allowedEdge(e.Source.Kind(), e.Target.Kind()) {
			errs = append(errs, errors.New(errors.ErrCodeInvalidEdge,
				"edge %s %s → %s %s is not allowed",
				e.Source.Kind(), e.Source.ID(), e.Target.Kind(), e.Target.ID()))
		}
	}

	for _, ann := range g.AnnotationNodes() {
		if len(g.AnnotationDocuments(ann)) == 0 {
			errs = append(errs, errors.New(errors.ErrCodeDetachedAnnotation,
				"annotation %s (%q) is not attached to a document", ann.ID(), ann.Quote()))
		}
	}

	return errs.Err()
}

func allowedEdge(src, dst record.Kind) bool {
	switch {
	case src == record.KindEntity && dst == record.KindAnnotation:
		return true
	case src == record.KindAnnotation && dst == record.KindDocument:
		return true
	}
	return false
}
