// Package board reads board files: hand-written lists of documents,
// annotations and entities applied on top of a pinboard graph.
//
// A board is inbound data only. Keys name records within one file so that
// annotations can point at documents and entities at annotations; the
// records themselves still get fresh ids from a [record.Factory].
//
// TOML example:
//
//	[[documents]]
//	key  = "crdt"
//	name = "A Conflict-Free Replicated JSON Datatype"
//	url  = "https://arxiv.org/pdf/1608.03960.pdf"
//
//	[[annotations]]
//	key      = "author"
//	document = "crdt"
//	quote    = "Martin Kleppmann"
//	content  = "Paper author"
//	areas    = [{ page = 0, top = 11.9, left = 32.4, width = 14.6, height = 1.6 }]
//
//	[[entities]]
//	first_name  = "Martin"
//	last_name   = "Kleppmann"
//	annotations = ["author"]
//
// The same structure is accepted as YAML.
package board

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/observability"
	"github.com/matzehuels/pinboard/pkg/pinboard"
	"github.com/matzehuels/pinboard/pkg/record"
)

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// File is the decoded content of a board file.
type File struct {
	Documents   []Document   `toml:"documents" yaml:"documents"`
	Annotations []Annotation `toml:"annotations" yaml:"annotations"`
	Entities    []Entity     `toml:"entities" yaml:"entities"`
}

// Document describes one reference document.
type Document struct {
	Key  string `toml:"key" yaml:"key"`
	Name string `toml:"name" yaml:"name"`
	URL  string `toml:"url" yaml:"url"`
}

// Annotation describes a quote taken from the document named by Document.
type Annotation struct {
	Key      string                 `toml:"key" yaml:"key"`
	Document string                 `toml:"document" yaml:"document"`
	Quote    string                 `toml:"quote" yaml:"quote"`
	Content  *string                `toml:"content" yaml:"content"`
	Areas    []record.HighlightArea `toml:"areas" yaml:"areas"`
}

// Entity describes a person. Annotations lists the keys of the annotations
// that mention them; an entity without any is added unattached.
type Entity struct {
	Key         string   `toml:"key" yaml:"key"`
	FirstName   string   `toml:"first_name" yaml:"first_name"`
	LastName    string   `toml:"last_name" yaml:"last_name"`
	PictureURL  *string  `toml:"picture_url" yaml:"picture_url"`
	Annotations []string `toml:"annotations" yaml:"annotations"`
}

// FormatOf maps a file name to its board format by extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported board file %q (want .toml, .yaml or .yml)", filepath.Base(path))
}

// Load reads, decodes and validates the board file at path.
func Load(ctx context.Context, path string) (f *File, err error) {
	start := time.Now()
	defer func() {
		facts := 0
		if f != nil {
			facts = f.Facts()
		}
		observability.Graph().OnBoardLoad(ctx, path, facts, time.Since(start), err)
	}()

	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "board file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read board file %s", path)
	}
	return Parse(data, format)
}

// Parse decodes data in the given format and validates it. Unknown keys
// are rejected so that typos do not silently drop facts.
func Parse(data []byte, format string) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "decode toml board")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidBoard, "unknown board key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "decode yaml board")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported board format %q", format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Facts counts the graph operations the board turns into.
func (f *File) Facts() int {
	n := len(f.Documents) + len(f.Annotations)
	for _, e := range f.Entities {
		n += max(len(e.Annotations), 1)
	}
	return n
}

// Validate checks required fields, key uniqueness and references. All
// problems are reported together.
func (f *File) Validate() error {
	var errs errors.List
	add := func(format string, args ...any) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidBoard, format, args...))
	}

	docs := make(map[string]bool, len(f.Documents))
	for i, d := range f.Documents {
		where := fmt.Sprintf("documents[%d]", i)
		switch {
		case d.Key == "":
			add("%s: key is required", where)
		case docs[d.Key]:
			add("%s: duplicate document key %q", where, d.Key)
		}
		docs[d.Key] = true
		if strings.TrimSpace(d.Name) == "" {
			add("%s: name is required", where)
		}
		if d.URL != "" {
			if err := errors.ValidateURL(d.URL); err != nil {
				add("%s: %s", where, errors.UserMessage(err))
			}
		}
	}

	anns := make(map[string]bool, len(f.Annotations))
	for i, a := range f.Annotations {
		where := fmt.Sprintf("annotations[%d]", i)
		switch {
		case a.Key == "":
			add("%s: key is required", where)
		case anns[a.Key]:
			add("%s: duplicate annotation key %q", where, a.Key)
		}
		anns[a.Key] = true
		if !docs[a.Document] || a.Document == "" {
			add("%s: unknown document key %q", where, a.Document)
		}
		if strings.TrimSpace(a.Quote) == "" {
			add("%s: quote is required", where)
		}
		if len(a.Areas) == 0 {
			add("%s: at least one highlight area is required", where)
		}
		for j, area := range a.Areas {
			if area.PageIndex < 0 {
				add("%s.areas[%d]: page must not be negative", where, j)
			}
			for _, v := range []float64{area.Top, area.Left, area.Width, area.Height} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					add("%s.areas[%d]: coordinates must be finite", where, j)
					break
				}
			}
		}
	}

	for i, e := range f.Entities {
		where := fmt.Sprintf("entities[%d]", i)
		if strings.TrimSpace(e.FirstName) == "" && strings.TrimSpace(e.LastName) == "" {
			add("%s: first_name or last_name is required", where)
		}
		for _, key := range e.Annotations {
			if !anns[key] || key == "" {
				add("%s: unknown annotation key %q", where, key)
			}
		}
	}
	return errs.Err()
}

// Ops converts the board into graph operations, creating records with
// fresh ids from fac. A nil factory uses [record.DefaultFactory]. The file
// must have passed [File.Validate].
func (f *File) Ops(fac *record.Factory) []pinboard.Op {
	if fac == nil {
		fac = record.DefaultFactory
	}
	ops := make([]pinboard.Op, 0, f.Facts())

	docs := make(map[string]record.Document, len(f.Documents))
	for _, d := range f.Documents {
		doc := fac.Document(d.Name, d.URL)
		docs[d.Key] = doc
		ops = append(ops, pinboard.AddDocument(doc))
	}

	anns := make(map[string]record.Annotation, len(f.Annotations))
	for _, a := range f.Annotations {
		ann := fac.Annotation(a.Areas, a.Quote, record.FromPtr(a.Content))
		anns[a.Key] = ann
		ops = append(ops, pinboard.AttachAnnotation(ann, docs[a.Document]))
	}

	for _, e := range f.Entities {
		ent := fac.Entity(e.FirstName, e.LastName, record.FromPtr(e.PictureURL))
		if len(e.Annotations) == 0 {
			ops = append(ops, pinboard.AddEntity(ent))
			continue
		}
		for _, key := range e.Annotations {
			ops = append(ops, pinboard.AttachEntity(ent, anns[key]))
		}
	}
	return ops
}

// Apply returns g with every fact of the board added.
func (f *File) Apply(g pinboard.Graph, fac *record.Factory) pinboard.Graph {
	return pinboard.Apply(g, f.Ops(fac)...)
}
