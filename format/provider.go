package format

import (
	"fmt"
	"io"
	"reflect"
)

// Provider is the contract implemented by formatting back ends. A Registry
// binds exactly one Provider and delegates to it.
type Provider interface {
	// SupportedStyleIDs returns the style ids usable with t.
	SupportedStyleIDs(t reflect.Type) []string
	// IsSupportedStyle reports whether styleID can format values of t.
	IsSupportedStyle(t reflect.Type, styleID string) bool
	// ItemFormat returns a Formatter for t configured by style.
	ItemFormat(t reflect.Type, style *Style) (Formatter, error)
}

// Factory constructs a Provider during binding.
type Factory func() (Provider, error)

// Formatter renders values of a single type according to its Style.
type Formatter interface {
	Style() *Style
	Format(v any) (string, error)
}

// TypedFormat is a Formatter narrowed to values of type T.
type TypedFormat[T any] interface {
	Style() *Style
	Format(v T) (string, error)
	Write(w io.Writer, v T) error
}

// TypeOf returns the target type for T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

type typedFormat[T any] struct {
	f Formatter
}

func (t typedFormat[T]) Style() *Style { return t.f.Style() }

func (t typedFormat[T]) Format(v T) (string, error) {
	return t.f.Format(v)
}

func (t typedFormat[T]) Write(w io.Writer, v T) error {
	s, err := t.f.Format(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Typed adapts f to values of type T.
func Typed[T any](f Formatter) TypedFormat[T] {
	return typedFormat[T]{f: f}
}

// Parser reads values of a single type according to its Style.
type Parser interface {
	Style() *Style
	Parse(text string) (any, error)
}

// ParserProvider is implemented by providers that can also parse. A bound
// provider without it has no parsers.
type ParserProvider interface {
	// ItemParser returns a Parser for t configured by style.
	ItemParser(t reflect.Type, style *Style) (Parser, error)
}

// TypedParser is a Parser narrowed to values of type T.
type TypedParser[T any] interface {
	Style() *Style
	Parse(text string) (T, error)
}

type typedParser[T any] struct {
	p Parser
}

func (t typedParser[T]) Style() *Style { return t.p.Style() }

func (t typedParser[T]) Parse(text string) (T, error) {
	var zero T
	v, err := t.p.Parse(text)
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %s, got %T", ErrTypeMismatch, TypeOf[T](), v)
	}
	return tv, nil
}

// TypedParserOf adapts p to values of type T.
func TypedParserOf[T any](p Parser) TypedParser[T] {
	return typedParser[T]{p: p}
}

// ParserFunc adapts a function to the Parser interface.
func ParserFunc[T any](style *Style, fn func(string) (T, error)) Parser {
	return funcParser[T]{style: style, fn: fn}
}

type funcParser[T any] struct {
	style *Style
	fn    func(string) (T, error)
}

func (p funcParser[T]) Style() *Style { return p.style }

func (p funcParser[T]) Parse(text string) (any, error) {
	return p.fn(text)
}

// FormatterFunc adapts a function to the Formatter interface for values
// of type T. Values of any other dynamic type fail with ErrTypeMismatch.
func FormatterFunc[T any](style *Style, fn func(T) (string, error)) Formatter {
	return funcFormatter[T]{style: style, fn: fn}
}

type funcFormatter[T any] struct {
	style *Style
	fn    func(T) (string, error)
}

func (f funcFormatter[T]) Style() *Style { return f.style }

func (f funcFormatter[T]) Format(v any) (string, error) {
	tv, ok := v.(T)
	if !ok {
		return "", fmt.Errorf("%w: want %s, got %T", ErrTypeMismatch, TypeOf[T](), v)
	}
	return f.fn(tv)
}

// defaultProvider is bound when no provider was registered or binding
// failed.
type defaultProvider struct{}

func (defaultProvider) SupportedStyleIDs(reflect.Type) []string { return []string{} }

func (defaultProvider) IsSupportedStyle(reflect.Type, string) bool { return false }

func (defaultProvider) ItemFormat(reflect.Type, *Style) (Formatter, error) {
	return nil, ErrProviderNotRegistered
}

func (defaultProvider) ItemParser(reflect.Type, *Style) (Parser, error) {
	return nil, ErrProviderNotRegistered
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// map, slice, func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// DefaultProviderName names the fallback binding.
const DefaultProviderName = "default"
