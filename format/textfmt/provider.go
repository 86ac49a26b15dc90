package textfmt

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/currency"

	"github.com/bjaus/money"
	"github.com/bjaus/money/format"
)

// Name is the registration name used by Register.
const Name = "text"

// Default attribute values.
const DefaultWidth = 16

var (
	amountType   = format.TypeOf[money.Amount]()
	currencyType = format.TypeOf[money.Currency]()
)

// Provider renders money.Amount and money.Currency values with
// golang.org/x/text. It implements format.Provider.
type Provider struct {
	kind  currency.Kind
	width int
}

// Option configures a Provider.
type Option func(*Provider)

// WithCashRounding uses cash fraction digits instead of the standard ones
// when a style does not set a scale.
func WithCashRounding() Option {
	return func(p *Provider) {
		p.kind = currency.Cash
	}
}

// WithDefaultWidth sets the Aligned width used when a style has none.
func WithDefaultWidth(w int) Option {
	return func(p *Provider) {
		if w > 0 {
			p.width = w
		}
	}
}

// New returns a Provider.
func New(opts ...Option) *Provider {
	p := &Provider{kind: currency.Standard, width: DefaultWidth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register records a new Provider on r under Name.
func Register(r *format.Registry, opts ...Option) error {
	return r.Register(Name, New(opts...))
}

// SupportedStyleIDs returns the static style ids for money types and an
// empty slice for anything else.
func (p *Provider) SupportedStyleIDs(t reflect.Type) []string {
	if !supported(t) {
		return []string{}
	}
	out := make([]string, len(styleIDs))
	for i, s := range styleIDs {
		out[i] = s.String()
	}
	return out
}

// IsSupportedStyle reports whether styleID is a static style or a locale
// tag, and t is a money type.
func (p *Provider) IsSupportedStyle(t reflect.Type, styleID string) bool {
	if !supported(t) {
		return false
	}
	_, err := ParseStyleID(styleID)
	return err == nil
}

// ItemFormat returns a formatter for t, or nil if t or the style id is not
// supported. Malformed attributes are reported as errors.
func (p *Provider) ItemFormat(t reflect.Type, style *format.Style) (format.Formatter, error) {
	if !supported(t) {
		return nil, nil
	}
	id, err := ParseStyleID(style.ID())
	if err != nil {
		return nil, nil
	}
	opts, err := p.options(id, style)
	if err != nil {
		return nil, err
	}
	if t == currencyType {
		return format.FormatterFunc(style, func(c money.Currency) (string, error) {
			return renderCurrency(id, c, opts)
		}), nil
	}
	return format.FormatterFunc(style, func(a money.Amount) (string, error) {
		return renderAmount(id, a, opts)
	}), nil
}

func supported(t reflect.Type) bool {
	return t == amountType || t == currencyType
}

// renderOptions is the parsed form of a style's attributes.
type renderOptions struct {
	style     *format.Style
	kind      currency.Kind
	scale     int // -1 means the currency's own fraction digits
	width     int
	align     Alignment
	delimiter rune
	header    bool
	indent    string
	hasIndent bool
}

func (p *Provider) options(id StyleID, style *format.Style) (renderOptions, error) {
	o := renderOptions{style: style, kind: p.kind, scale: -1, width: p.width, delimiter: ','}
	if v, ok := style.Attr(AttrScale); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return o, fmt.Errorf("%w: %s=%q", ErrInvalidAttr, AttrScale, v)
		}
		o.scale = n
	}
	if v, ok := style.Attr(AttrWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return o, fmt.Errorf("%w: %s=%q", ErrInvalidAttr, AttrWidth, v)
		}
		o.width = n
	}
	if v, ok := style.Attr(AttrAlign); ok {
		a, err := ParseAlignment(v)
		if err != nil {
			return o, err
		}
		o.align = a
	}
	if v, ok := style.Attr(AttrDelimiter); ok {
		r := []rune(v)
		if len(r) != 1 || !validDelimiter(r[0]) {
			return o, fmt.Errorf("%w: %s=%q", ErrInvalidAttr, AttrDelimiter, v)
		}
		o.delimiter = r[0]
	}
	if v, ok := style.Attr(AttrHeader); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return o, fmt.Errorf("%w: %s=%q", ErrInvalidAttr, AttrHeader, v)
		}
		o.header = b
	}
	if v, ok := style.Attr(AttrIndent); ok {
		if !validIndent(id, v) {
			return o, fmt.Errorf("%w: %s=%q", ErrInvalidAttr, AttrIndent, v)
		}
		o.indent, o.hasIndent = v, true
	}
	return o, nil
}

// validIndent accepts spaces and tabs for JSON. YAML counts characters
// and forbids tabs; yaml.v3 only honours widths from 2 to 9.
func validIndent(id StyleID, v string) bool {
	if id != YAML {
		return strings.Trim(v, " \t") == ""
	}
	return strings.Trim(v, " ") == "" && len(v) >= 2 && len(v) <= 9
}

// validDelimiter mirrors the delimiters encoding/csv accepts.
func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

func (o renderOptions) scaleFor(c money.Currency) int {
	if o.scale >= 0 {
		return o.scale
	}
	scale, _ := o.kind.Rounding(c.Unit())
	return scale
}
