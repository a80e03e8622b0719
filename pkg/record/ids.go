package record

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/matzehuels/pinboard/pkg/errors"
)

// IDSource produces unique vertex identifiers.
type IDSource interface {
	NewID() string
}

// IDFunc adapts a plain function to [IDSource].
type IDFunc func() string

// NewID calls f.
func (f IDFunc) NewID() string { return f() }

// UUIDSource draws random version 4 UUIDs.
type UUIDSource struct{}

// NewID returns a new UUID string.
func (UUIDSource) NewID() string { return uuid.NewString() }

// NanoIDSource draws URL-safe nano ids of the given length.
// A zero Size uses the library default of 21 characters.
type NanoIDSource struct {
	Size int
}

// NewID returns a new nano id.
func (s NanoIDSource) NewID() string {
	if s.Size > 0 {
		return gonanoid.Must(s.Size)
	}
	return gonanoid.Must()
}

// SequenceSource yields "prefix-1", "prefix-2", ... and is safe for
// concurrent use. It is meant for tests and reproducible fixtures.
type SequenceSource struct {
	prefix string
	n      atomic.Uint64
}

// NewSequenceSource creates a sequence starting at 1.
func NewSequenceSource(prefix string) *SequenceSource {
	return &SequenceSource{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *SequenceSource) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

// ID source names accepted by [ParseIDSource].
const (
	IDSourceUUID     = "uuid"
	IDSourceNanoID   = "nanoid"
	IDSourceSequence = "sequence"
)

// IDSourceNames lists the names accepted by [ParseIDSource].
var IDSourceNames = []string{IDSourceUUID, IDSourceNanoID, IDSourceSequence}

// ParseIDSource maps a configuration name to an [IDSource].
// The sequence source uses "v" as its prefix.
func ParseIDSource(name string) (IDSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", IDSourceUUID:
		return UUIDSource{}, nil
	case IDSourceNanoID:
		return NanoIDSource{}, nil
	case IDSourceSequence:
		return NewSequenceSource("v"), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidIDSource,
		"unknown id source %q (want one of: %s)", name, strings.Join(IDSourceNames, ", "))
}

// Factory stamps identifiers onto new records.
type Factory struct {
	ids IDSource
}

// DefaultFactory is used by the package-level constructors.
var DefaultFactory = NewFactory(UUIDSource{})

// NewFactory creates a factory drawing ids from ids. A nil source falls
// back to [UUIDSource].
func NewFactory(ids IDSource) *Factory {
	if ids == nil {
		ids = UUIDSource{}
	}
	return &Factory{ids: ids}
}

// Document creates a document with a fresh id.
func (f *Factory) Document(name, url string) Document {
	return Document{id: f.ids.NewID(), name: name, url: url}
}

// Annotation creates an annotation with a fresh id. The areas slice is
// copied so later changes by the caller do not leak into the record.
func (f *Factory) Annotation(areas []HighlightArea, quote string, content Optional) Annotation {
	return Annotation{
		id:      f.ids.NewID(),
		content: content,
		quote:   quote,
		areas:   slices.Clone(areas),
	}
}

// Entity creates an entity with a fresh id.
func (f *Factory) Entity(firstName, lastName string, pictureURL Optional) Entity {
	return Entity{
		id:         f.ids.NewID(),
		firstName:  firstName,
		lastName:   lastName,
		pictureURL: pictureURL,
	}
}
