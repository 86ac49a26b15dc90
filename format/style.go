package format

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Style describes how a formatted representation should look. It carries
// an identifier, a locale and free-form attributes. A Style is immutable
// once constructed.
type Style struct {
	id     string
	locale language.Tag
	attrs  map[string]string
}

// StyleOption configures a Style during construction.
type StyleOption func(*Style)

// WithAttr sets a named attribute on the style.
func WithAttr(key, value string) StyleOption {
	return func(s *Style) {
		if s.attrs == nil {
			s.attrs = make(map[string]string)
		}
		s.attrs[key] = value
	}
}

// NewStyle returns a Style with the given id and locale.
func NewStyle(id string, locale language.Tag, opts ...StyleOption) *Style {
	s := &Style{id: id, locale: locale}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StyleOf returns a Style derived from locale alone. Its id is the
// locale's BCP 47 string.
func StyleOf(locale language.Tag, opts ...StyleOption) *Style {
	return NewStyle(locale.String(), locale, opts...)
}

// ID returns the style identifier.
func (s *Style) ID() string { return s.id }

// Locale returns the style's locale.
func (s *Style) Locale() language.Tag { return s.locale }

// Attr returns the named attribute.
func (s *Style) Attr(key string) (string, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// Attrs returns a copy of all attributes.
func (s *Style) Attrs() map[string]string {
	return maps.Clone(s.attrs)
}

// String renders the style as "id[locale]{k=v,...}".
func (s *Style) String() string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(s.id)
	b.WriteByte('[')
	b.WriteString(s.locale.String())
	b.WriteByte(']')
	if len(s.attrs) > 0 {
		b.WriteByte('{')
		for i, k := range slices.Sorted(maps.Keys(s.attrs)) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(s.attrs[k])
		}
		b.WriteByte('}')
	}
	return b.String()
}
