package record

import (
	"strconv"
	"strings"
)

// keyBuilder writes the canonical vertex encoding used by Key.
// Strings are quoted so that separators inside values cannot collide.
type keyBuilder struct{ sb strings.Builder }

func newKey(k Kind) *keyBuilder {
	b := &keyBuilder{}
	b.sb.WriteString(k.String())
	return b
}

func (b *keyBuilder) str(s string) *keyBuilder {
	b.sb.WriteByte('|')
	b.sb.WriteString(strconv.Quote(s))
	return b
}

func (b *keyBuilder) opt(o Optional) *keyBuilder {
	if v, ok := o.Get(); ok {
		return b.str(v)
	}
	b.sb.WriteString("|-")
	return b
}

func (b *keyBuilder) num(f float64) *keyBuilder {
	b.sb.WriteByte(',')
	// +0 folds negative zero into zero, matching ==.
	b.sb.WriteString(strconv.FormatFloat(f+0, 'g', -1, 64))
	return b
}

func (b *keyBuilder) integer(i int) *keyBuilder {
	b.sb.WriteByte(',')
	b.sb.WriteString(strconv.Itoa(i))
	return b
}

func (b *keyBuilder) String() string { return b.sb.String() }
