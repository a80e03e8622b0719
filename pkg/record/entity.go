package record

// Entity is a person or organisation mentioned in annotations.
type Entity struct {
	id         string
	firstName  string
	lastName   string
	pictureURL Optional
}

// NewEntity creates an entity with a fresh id from [DefaultFactory].
// An absent pictureURL means the UI shows a placeholder.
func NewEntity(firstName, lastName string, pictureURL Optional) Entity {
	return DefaultFactory.Entity(firstName, lastName, pictureURL)
}

func (e Entity) ID() string           { return e.id }
func (e Entity) Kind() Kind           { return KindEntity }
func (e Entity) FirstName() string    { return e.firstName }
func (e Entity) LastName() string     { return e.lastName }
func (e Entity) PictureURL() Optional { return e.pictureURL }
func (Entity) sealed()                {}

// FullName joins first and last name with a space.
func (e Entity) FullName() string {
	switch {
	case e.firstName == "":
		return e.lastName
	case e.lastName == "":
		return e.firstName
	}
	return e.firstName + " " + e.lastName
}

// Key returns the canonical encoding of e.
func (e Entity) Key() string {
	return newKey(KindEntity).str(e.id).str(e.firstName).str(e.lastName).opt(e.pictureURL).String()
}

// Equal reports whether e and o agree on id, names and picture.
func (e Entity) Equal(o Entity) bool {
	return e == o
}
