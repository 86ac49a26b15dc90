package textfmt

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedStyle = errors.New("unsupported style")
	ErrInvalidAttr      = errors.New("invalid style attribute")
	ErrMalformed        = errors.New("malformed amount")
)

// StyleID names a rendering style.
type StyleID string

const (
	Symbol  StyleID = "symbol"
	Code    StyleID = "code"
	Narrow  StyleID = "narrow"
	JSON    StyleID = "json"
	YAML    StyleID = "yaml"
	CSV     StyleID = "csv"
	Plain   StyleID = "plain"
	Aligned StyleID = "aligned"
)

var styleIDs = []StyleID{Symbol, Code, Narrow, JSON, YAML, CSV, Plain, Aligned}

// Style attribute keys.
const (
	AttrScale     = "scale"
	AttrWidth     = "width"
	AttrAlign     = "align"
	AttrDelimiter = "delimiter"
	AttrHeader    = "header"
	AttrIndent    = "indent"
)

// String returns the style id.
func (s StyleID) String() string { return string(s) }

// StyleIDs returns all static style ids. Locale-derived ids are not
// included because they are open-ended.
func StyleIDs() []StyleID {
	return slices.Clone(styleIDs)
}

// ParseStyleID resolves s to a static style. A valid BCP 47 tag resolves to
// Symbol, so locale-derived styles render like the symbol style.
func ParseStyleID(s string) (StyleID, error) {
	if slices.Contains(styleIDs, StyleID(s)) {
		return StyleID(s), nil
	}
	if s != "" {
		if _, err := language.Parse(s); err == nil {
			return Symbol, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
}

// Alignment controls padding in the Aligned style.
type Alignment int

const (
	AlignRight Alignment = iota
	AlignLeft
	AlignCenter
)

// ParseAlignment parses "left", "right" or "center".
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "", "right":
		return AlignRight, nil
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	default:
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidAttr, AttrAlign, s)
	}
}
