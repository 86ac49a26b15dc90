package textfmt

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/bjaus/money"
	"github.com/bjaus/money/format"
)

var _ format.ParserProvider = (*Provider)(nil)

// parsable lists the styles ItemParser can read back.
var parsable = []StyleID{Plain, Code}

// ItemParser returns a parser for t, or nil if t or the style id cannot be
// parsed. Only the Plain and Code styles are parsable.
func (p *Provider) ItemParser(t reflect.Type, style *format.Style) (format.Parser, error) {
	if !supported(t) || !slices.Contains(parsable, StyleID(style.ID())) {
		return nil, nil
	}
	if t == currencyType {
		return format.ParserFunc(style, parseCurrency), nil
	}
	sep := separators{decimal: "."}
	if StyleID(style.ID()) == Code {
		sep = separatorsFor(style.Locale())
	}
	return format.ParserFunc(style, func(text string) (money.Amount, error) {
		return parseAmount(text, sep)
	}), nil
}

func parseCurrency(text string) (money.Currency, error) {
	return money.ParseCurrency(strings.TrimSpace(text))
}

// parseAmount reads "CODE number" with the number written using sep.
func parseAmount(text string, sep separators) (money.Amount, error) {
	code, num, ok := strings.Cut(strings.TrimSpace(text), " ")
	if !ok {
		return money.Amount{}, fmt.Errorf("%w: %q: want currency code and number", ErrMalformed, text)
	}
	return money.Parse(code, sep.normalize(strings.TrimSpace(num)))
}

// separators are the grouping and decimal marks of a locale. group is
// empty when the locale does not group digits.
type separators struct {
	group   string
	decimal string
}

// separatorsFor reads the marks x/text uses for tag by rendering a sample
// number with both a grouping and a decimal position.
func separatorsFor(tag language.Tag) separators {
	sample := message.NewPrinter(tag).Sprint(number.Decimal(1234567.5, number.Scale(1)))
	var marks []string
	for _, r := range sample {
		if !unicode.IsDigit(r) {
			marks = append(marks, string(r))
		}
	}
	switch len(marks) {
	case 0:
		return separators{decimal: "."}
	case 1:
		return separators{decimal: marks[0]}
	default:
		return separators{group: marks[0], decimal: marks[len(marks)-1]}
	}
}

func (s separators) normalize(num string) string {
	if s.group != "" {
		num = strings.ReplaceAll(num, s.group, "")
	}
	if s.decimal != "." {
		num = strings.ReplaceAll(num, s.decimal, ".")
	}
	return num
}
