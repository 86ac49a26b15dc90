package format

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"
)

// registryHolder publishes the process-wide Registry. Once get has
// returned a registry, the held pointer never changes.
type registryHolder struct {
	mu   sync.Mutex
	reg  atomic.Pointer[Registry]
	used atomic.Bool
}

var defaultHolder registryHolder

func (h *registryHolder) get() *Registry {
	if h.used.Load() {
		return h.reg.Load()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	r := h.reg.Load()
	if r == nil {
		r = New()
		h.reg.Store(r)
	}
	h.used.Store(true)
	return r
}

func (h *registryHolder) set(r *Registry) error {
	if r == nil {
		return fmt.Errorf("%w: registry is nil", ErrInvalidArgument)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.used.Load() {
		return fmt.Errorf("%w: default registry in use", ErrAlreadyBound)
	}
	h.reg.Store(r)
	return nil
}

// Default returns the process-wide Registry. The first call creates it
// with default options unless SetDefault ran earlier.
func Default() *Registry { return defaultHolder.get() }

// SetDefault installs r as the process-wide Registry. It fails with
// ErrAlreadyBound once Default has been used.
func SetDefault(r *Registry) error { return defaultHolder.set(r) }

// Register records p on the default registry.
func Register(name string, p Provider) error { return Default().Register(name, p) }

// RegisterFunc records a provider factory on the default registry.
func RegisterFunc(name string, f Factory) error { return Default().RegisterFunc(name, f) }

// SupportedStyleIDs queries the default registry.
func SupportedStyleIDs(t reflect.Type) []string { return Default().SupportedStyleIDs(t) }

// IsSupportedStyle queries the default registry.
func IsSupportedStyle(t reflect.Type, styleID string) bool {
	return Default().IsSupportedStyle(t, styleID)
}

// ItemFormat acquires a formatter from the default registry.
func ItemFormat(t reflect.Type, style *Style) (Formatter, error) {
	return Default().ItemFormat(t, style)
}

// ItemFormatForLocale acquires a locale-styled formatter from the default
// registry.
func ItemFormatForLocale(t reflect.Type, locale language.Tag) (Formatter, error) {
	return Default().ItemFormatForLocale(t, locale)
}

// ItemFormatOf acquires a typed formatter for T from the default registry.
func ItemFormatOf[T any](style *Style) (TypedFormat[T], error) {
	return ItemFormatFor[T](Default(), style)
}

// LocaleItemFormatOf acquires a typed, locale-styled formatter for T from
// the default registry.
func LocaleItemFormatOf[T any](locale language.Tag) (TypedFormat[T], error) {
	return LocaleItemFormatFor[T](Default(), locale)
}

// ItemParser acquires a parser from the default registry.
func ItemParser(t reflect.Type, style *Style) (Parser, error) {
	return Default().ItemParser(t, style)
}

// ItemParserForLocale acquires a locale-styled parser from the default
// registry.
func ItemParserForLocale(t reflect.Type, locale language.Tag) (Parser, error) {
	return Default().ItemParserForLocale(t, locale)
}

// ItemParserOf acquires a typed parser for T from the default registry.
func ItemParserOf[T any](style *Style) (TypedParser[T], error) {
	return ItemParserFor[T](Default(), style)
}

// LocaleItemParserOf acquires a typed, locale-styled parser for T from the
// default registry.
func LocaleItemParserOf[T any](locale language.Tag) (TypedParser[T], error) {
	return LocaleItemParserFor[T](Default(), locale)
}
