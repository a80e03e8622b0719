// Package record defines the three vertex kinds of a pinboard: reference
// documents, annotations quoted from them, and entities mentioned in
// annotations.
//
// # Vertices
//
// [Document], [Annotation] and [Entity] are immutable values. Their fields
// are unexported and only readable through accessors; slices are copied on
// the way in and on the way out. Each value carries its kind explicitly
// through [Vertex.Kind], and [Vertex] is sealed: no type outside this
// package can implement it, so a type switch over the three record types is
// exhaustive. [Match] performs that switch with one callback per kind.
//
// # Identity
//
// Constructors stamp a fresh identifier from an [IDSource]. The package-level
// constructors ([NewDocument], [NewAnnotation], [NewEntity]) use
// [DefaultFactory], which draws UUIDs. Tests and fixtures can build a
// [Factory] over a [SequenceSource] for deterministic ids:
//
//	f := record.NewFactory(record.NewSequenceSource("doc"))
//	d := f.Document("Paper A", "https://example.com/a.pdf") // id "doc-1"
//
// No validation happens here. A Document is constructible from any two
// strings; rejecting blank input belongs to whoever collects it.
//
// # Equality and Ordering
//
// [Equal] compares the kind first and then all stored fields, identity
// included. [Vertex.Key] renders the same information as a canonical string,
// so two vertices are equal exactly when their keys are equal; graph sets
// deduplicate on it.
//
// Display order is by name for documents ([CompareDocuments]), by first name
// for entities ([CompareEntities]) and by quote for annotations
// ([CompareAnnotations]). Ties fall back to the id so that sorting is
// deterministic.
package record
