package record

// Optional is a string that may be absent. The zero value is absent.
type Optional struct {
	value string
	ok    bool
}

// Some returns a present Optional holding s.
func Some(s string) Optional { return Optional{value: s, ok: true} }

// None returns an absent Optional.
func None() Optional { return Optional{} }

// FromPtr returns None for nil and Some(*p) otherwise.
func FromPtr(p *string) Optional {
	if p == nil {
		return None()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Optional) Get() (string, bool) { return o.value, o.ok }

// IsSome reports whether a value is present.
func (o Optional) IsSome() bool { return o.ok }

// OrElse returns the value, or fallback when absent.
func (o Optional) OrElse(fallback string) string {
	if o.ok {
		return o.value
	}
	return fallback
}

// Ptr returns nil when absent and a pointer to a copy of the value otherwise.
func (o Optional) Ptr() *string {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}
