// Package money provides minimal currency and amount value types.
//
// [Currency] wraps an ISO 4217 unit from golang.org/x/text/currency.
// [Amount] pairs a currency with an exact decimal value from
// github.com/shopspring/decimal:
//
//	chf := money.MustCurrency("CHF")
//	a := money.Of(chf, decimal.RequireFromString("1.00"))
//	b, err := money.Parse("CHF", "1.03")
//
// Formatting lives in the format package, which binds a single provider
// (see format/textfmt for the bundled one). Rounding lives in the rounding
// package.
//
// # Errors
//
//   - [ErrUnknownCurrency] — code is not an ISO 4217 currency
//   - [ErrInvalidNumber] — number string does not parse
package money
