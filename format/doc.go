// Package format binds a single formatting [Provider] and hands out
// formatters for money values.
//
// # Providers
//
// A [Provider] reports which style ids it supports for a target type and
// builds a [Formatter] for a (type, [Style]) pair. Providers are registered
// explicitly during startup:
//
//	reg := format.New()
//	reg.Register("text", textfmt.New())
//
// The binding is resolved once, on first use, and never changes. If a
// [Config] names a provider, that one binds. Otherwise exactly one
// registered provider binds; more than one is [ErrAmbiguousProvider].
// When nothing can be bound the registry logs at info level and falls back
// to a default provider that supports no styles.
//
// # Formatters
//
//	f, err := format.ItemFormatFor[money.Amount](reg, format.NewStyle("code", language.German))
//	s, err := f.Format(money.OfFloat(money.MustCurrency("EUR"), 12.5))
//
// [Registry.ItemFormatForLocale] derives the style from a locale alone.
//
// # Parsers
//
// A provider that also implements [ParserProvider] hands out a [Parser]
// through [Registry.ItemParser], with the same argument checks, fallback
// and error kinds as formatters:
//
//	p, err := format.ItemParserFor[money.Amount](reg, format.NewStyle("code", language.English))
//	a, err := p.Parse("EUR 12.50")
//
// # Errors
//
//   - [ErrInvalidArgument] — nil style or target type; no provider call is made
//   - [*ItemFormatError] — every provider-side failure; matches [ErrItemFormat]
//   - [ErrNoFormatter] — the provider returned no formatter
//   - [ErrNoParser] — the provider returned no parser, or cannot parse
//   - [ErrProviderNotRegistered] — the default provider is bound
//
// The package-level functions operate on the process-wide [Default]
// registry.
package format
