// Package pinboard is the graph core: documents, annotations and entities
// linked into one immutable directed graph.
//
// # Structure
//
// Edges point from the more specific record to the one it is attached to:
//
//	Entity → Annotation → Document
//
// Every operation returns a new [Graph] and leaves its receiver untouched,
// so a host keeps exactly one "current" value and replaces it after each
// change (see package session).
//
// # Building
//
//	g := pinboard.New().
//	    AddDocument(doc).
//	    AttachAnnotation(ann, doc).
//	    AttachEntity(ent, ann)
//
// The same steps are available as [Op] values for composition with [Apply].
// [Graph.Annotate] and [Graph.Mention] create a record and attach it in one
// step, which keeps annotations from ever existing without a document.
//
// Attachment operations take concrete record types, so an edge of the wrong
// kind cannot be built through this package. Graphs assembled directly from
// package algebra bypass that guarantee; [Graph.Validate] checks them.
//
// # Queries
//
// [Graph.DocumentNodes], [Graph.AnnotationNodes] and [Graph.EntityNodes] list
// vertices of one kind sorted for display. [Graph.DocumentAnnotations] and
// [Graph.AnnotationEntities] follow incoming edges. The Find methods report
// absence with a boolean instead of an error.
package pinboard
