// Package textfmt is a format.Provider for money values built on
// golang.org/x/text.
//
// It supports [money.Amount] and [money.Currency] with these styles:
//
//   - [Symbol] — localized currency symbol and number, e.g. "CHF 1’234.50"
//   - [Code] — ISO 4217 code and localized number
//   - [Narrow] — narrow symbol and localized number
//   - [Aligned] — like Symbol, padded to a display width
//   - [Plain] — unlocalized "CODE number"
//   - [JSON], [YAML], [CSV] — structured records
//
// Any style whose id is a BCP 47 tag (as built by format.StyleOf) renders
// like Symbol in that locale.
//
// # Attributes
//
//   - "scale" — fraction digits; default is the currency's CLDR digits
//   - "width", "align" — Aligned layout (default right, [DefaultWidth])
//   - "delimiter", "header" — CSV field separator and header row
//   - "indent" — JSON indentation string of spaces and tabs; for YAML only
//     its length in characters counts, so "    " indents by four. YAML
//     rejects tabs and widths outside 2 to 9
//
// # Parsing
//
// The provider also implements format.ParserProvider for the [Plain] and
// [Code] styles. A parser reads back what the matching formatter writes,
// using the style locale's grouping and decimal separators for Code:
//
//	p, _ := format.ItemParserFor[money.Amount](reg, format.NewStyle("code", language.German))
//	a, err := p.Parse("EUR 1.234,50")
//
// Register the provider at startup:
//
//	if err := textfmt.Register(format.Default()); err != nil { ... }
package textfmt
