package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidNumber   = errors.New("invalid number")
)

// Currency is an ISO 4217 currency unit.
type Currency struct {
	unit currency.Unit
}

// ParseCurrency parses an ISO 4217 code such as "CHF" or "usd".
func ParseCurrency(code string) (Currency, error) {
	u, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return Currency{unit: u}, nil
}

// MustCurrency is like ParseCurrency but panics on error.
func MustCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// CurrencyOf wraps an x/text currency unit.
func CurrencyOf(u currency.Unit) Currency { return Currency{unit: u} }

// Code returns the ISO 4217 code.
func (c Currency) Code() string { return c.unit.String() }

// Unit returns the underlying x/text currency unit.
func (c Currency) Unit() currency.Unit { return c.unit }

// FractionDigits returns the CLDR default number of fraction digits.
func (c Currency) FractionDigits() int {
	scale, _ := currency.Standard.Rounding(c.unit)
	return scale
}

// String returns the ISO 4217 code.
func (c Currency) String() string { return c.Code() }

// IsZero reports whether c is the zero Currency.
func (c Currency) IsZero() bool { return c.unit == currency.Unit{} }

// Amount is an exact decimal value in a currency.
type Amount struct {
	currency Currency
	number   decimal.Decimal
}

// Of returns an Amount of n in cur.
func Of(cur Currency, n decimal.Decimal) Amount {
	return Amount{currency: cur, number: n}
}

// OfFloat returns an Amount of f in cur. The float is converted to the
// shortest decimal that round-trips, so OfFloat(c, 0.1) holds exactly 0.1.
func OfFloat(cur Currency, f float64) Amount {
	return Of(cur, decimal.NewFromFloat(f))
}

// Parse returns an Amount from a currency code and a decimal string.
func Parse(code, number string) (Amount, error) {
	cur, err := ParseCurrency(code)
	if err != nil {
		return Amount{}, err
	}
	n, err := decimal.NewFromString(number)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	return Of(cur, n), nil
}

// Currency returns the amount's currency.
func (a Amount) Currency() Currency { return a.currency }

// Number returns the amount's numeric value.
func (a Amount) Number() decimal.Decimal { return a.number }

// Float64 returns the nearest float64 to the amount's value.
func (a Amount) Float64() float64 { return a.number.InexactFloat64() }

// Multiply returns a new Amount scaled by f.
func (a Amount) Multiply(f decimal.Decimal) Amount {
	return Amount{currency: a.currency, number: a.number.Mul(f)}
}

// Negate returns a new Amount with the sign flipped.
func (a Amount) Negate() Amount {
	return Amount{currency: a.currency, number: a.number.Neg()}
}

// WithNumber returns a new Amount in the same currency holding n.
func (a Amount) WithNumber(n decimal.Decimal) Amount {
	return Amount{currency: a.currency, number: n}
}

// Equal reports whether a and b have the same currency and numeric value.
// Trailing zeros are ignored: 1.0 equals 1.00.
func (a Amount) Equal(b Amount) bool {
	return a.currency == b.currency && a.number.Equal(b.number)
}

// String renders the amount as "CODE number" without localization.
func (a Amount) String() string {
	return a.currency.Code() + " " + a.number.String()
}
