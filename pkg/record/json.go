package record

import "encoding/json"

type documentJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type annotationJSON struct {
	ID             string          `json:"id"`
	Content        *string         `json:"content,omitempty"`
	Quote          string          `json:"quote"`
	HighlightAreas []HighlightArea `json:"highlightAreas"`
}

type entityJSON struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	PictureURL *string `json:"pictureUrl,omitempty"`
}

// MarshalJSON encodes d as {"id", "name", "url"}.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{ID: d.id, Name: d.name, URL: d.url})
}

// MarshalJSON encodes a with its highlight areas; an absent note is omitted.
func (a Annotation) MarshalJSON() ([]byte, error) {
	areas := a.areas
	if areas == nil {
		areas = []HighlightArea{}
	}
	return json.Marshal(annotationJSON{
		ID:             a.id,
		Content:        a.content.Ptr(),
		Quote:          a.quote,
		HighlightAreas: areas,
	})
}

// MarshalJSON encodes e; an absent picture URL is omitted.
func (e Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(entityJSON{
		ID:         e.id,
		FirstName:  e.firstName,
		LastName:   e.lastName,
		PictureURL: e.pictureURL.Ptr(),
	})
}
