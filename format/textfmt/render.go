package textfmt

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/bjaus/money"
)

// amountRecord is the structured shape used by JSON, YAML and CSV. Number
// encodes as a decimal string so no precision is lost.
type amountRecord struct {
	Currency  string          `json:"currency" yaml:"currency"`
	Number    decimal.Decimal `json:"number" yaml:"number"`
	Formatted string          `json:"formatted" yaml:"formatted"`
}

type currencyRecord struct {
	Code           string `json:"code" yaml:"code"`
	Symbol         string `json:"symbol" yaml:"symbol"`
	FractionDigits int    `json:"fraction_digits" yaml:"fraction_digits"`
}

func renderAmount(id StyleID, a money.Amount, o renderOptions) (string, error) {
	switch id {
	case Symbol, Code, Narrow:
		return localize(id, a, o), nil
	case Aligned:
		return alignCell(localize(Symbol, a, o), o.width, o.align), nil
	case Plain:
		return writePlain(a), nil
	case JSON:
		return writeJSON(newAmountRecord(a, o), o)
	case YAML:
		return writeYAML(newAmountRecord(a, o), o)
	case CSV:
		r := newAmountRecord(a, o)
		return writeCSV([]string{"currency", "number", "formatted"},
			[]string{r.Currency, r.Number.String(), r.Formatted}, o)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, id)
	}
}

func renderCurrency(id StyleID, c money.Currency, o renderOptions) (string, error) {
	switch id {
	case Symbol, Code, Narrow:
		return symbol(id, c, o), nil
	case Aligned:
		return alignCell(symbol(Symbol, c, o), o.width, o.align), nil
	case Plain:
		return writePlain(c), nil
	case JSON:
		return writeJSON(newCurrencyRecord(c, o), o)
	case YAML:
		return writeYAML(newCurrencyRecord(c, o), o)
	case CSV:
		r := newCurrencyRecord(c, o)
		return writeCSV([]string{"code", "symbol", "fraction_digits"},
			[]string{r.Code, r.Symbol, fmt.Sprint(r.FractionDigits)}, o)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, id)
	}
}

func newAmountRecord(a money.Amount, o renderOptions) amountRecord {
	return amountRecord{
		Currency:  a.Currency().Code(),
		Number:    a.Number(),
		Formatted: localize(Symbol, a, o),
	}
}

func newCurrencyRecord(c money.Currency, o renderOptions) currencyRecord {
	return currencyRecord{
		Code:           c.Code(),
		Symbol:         symbol(Symbol, c, o),
		FractionDigits: o.scaleFor(c),
	}
}

func formatterFor(id StyleID) currency.Formatter {
	switch id {
	case Code:
		return currency.ISO
	case Narrow:
		return currency.NarrowSymbol
	default:
		return currency.Symbol
	}
}

func symbol(id StyleID, c money.Currency, o renderOptions) string {
	p := message.NewPrinter(o.style.Locale())
	return p.Sprint(formatterFor(id)(c.Unit()))
}

// localize renders "<symbol> <number>" with the number formatted for the
// style's locale at the currency's scale. x/text only formats native
// numbers, so the exact value is rounded to the scale before conversion.
func localize(id StyleID, a money.Amount, o renderOptions) string {
	p := message.NewPrinter(o.style.Locale())
	scale := o.scaleFor(a.Currency())
	n := a.Number().Round(int32(scale)).InexactFloat64()
	num := p.Sprint(number.Decimal(n, number.Scale(scale)))
	return symbol(id, a.Currency(), o) + " " + num
}
