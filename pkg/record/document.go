package record

// Document is a reference document, typically a PDF reachable by URL.
type Document struct {
	id   string
	name string
	url  string
}

// NewDocument creates a document with a fresh id from [DefaultFactory].
func NewDocument(name, url string) Document {
	return DefaultFactory.Document(name, url)
}

func (d Document) ID() string   { return d.id }
func (d Document) Kind() Kind   { return KindDocument }
func (d Document) Name() string { return d.name }
func (d Document) URL() string  { return d.url }
func (Document) sealed()        {}

// Key returns the canonical encoding of d.
func (d Document) Key() string {
	return newKey(KindDocument).str(d.id).str(d.name).str(d.url).String()
}

// Equal reports whether d and o have the same id, name and URL.
func (d Document) Equal(o Document) bool {
	return d == o
}
