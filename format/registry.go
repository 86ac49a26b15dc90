package format

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Registry binds exactly one Provider and exposes it safely. Candidates
// are registered explicitly during startup; the binding is resolved once,
// on first use, and never changes afterwards.
//
// A Registry is safe for concurrent use.
type Registry struct {
	cfg        Config
	log        logrus.FieldLogger
	registerer prometheus.Registerer
	lookups    *prometheus.CounterVec

	mu         sync.Mutex
	candidates []candidate
	bound      bool

	once     sync.Once
	provider Provider
	name     string
}

type candidate struct {
	name    string
	factory Factory
}

// New returns an unbound Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		log:     logrus.StandardLogger(),
		lookups: newLookupCounter(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if c, err := registerCounter(r.registerer, r.lookups); err != nil {
		r.log.WithError(err).Warn("format: lookup counter not registered")
	} else {
		r.lookups = c
	}
	return r
}

// Register records p as a binding candidate under name.
func (r *Registry) Register(name string, p Provider) error {
	if isNil(p) {
		return fmt.Errorf("%w: provider %q is nil", ErrInvalidArgument, name)
	}
	return r.RegisterFunc(name, func() (Provider, error) { return p, nil })
}

// RegisterFunc records a provider factory under name. The factory runs
// during binding, and only if its candidate is selected.
func (r *Registry) RegisterFunc(name string, f Factory) error {
	if name == "" {
		return fmt.Errorf("%w: provider name required", ErrInvalidArgument)
	}
	if f == nil {
		return fmt.Errorf("%w: factory %q is nil", ErrInvalidArgument, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bound {
		return fmt.Errorf("%w: cannot register %q", ErrAlreadyBound, name)
	}
	for _, c := range r.candidates {
		if c.name == name {
			return fmt.Errorf("%w: %q", ErrDuplicateProvider, name)
		}
	}
	r.candidates = append(r.candidates, candidate{name: name, factory: f})
	return nil
}

// Bound returns the bound provider, resolving the binding if needed.
func (r *Registry) Bound() Provider {
	r.bind()
	return r.provider
}

// Name returns the name of the bound provider, or DefaultProviderName
// for the fallback.
func (r *Registry) Name() string {
	r.bind()
	return r.name
}

func (r *Registry) bind() {
	r.once.Do(func() {
		r.mu.Lock()
		r.bound = true
		candidates := slices.Clone(r.candidates)
		r.mu.Unlock()

		p, name, err := r.discover(candidates)
		switch {
		case err != nil:
			r.log.WithError(err).Info("format: provider discovery failed, using default")
		case p == nil:
			r.log.Info("format: no provider registered, using default")
		}
		if err != nil || p == nil {
			p, name = defaultProvider{}, DefaultProviderName
		} else {
			r.log.WithField("provider", name).Debug("format: provider bound")
		}
		r.provider, r.name = p, name
	})
}

func (r *Registry) discover(candidates []candidate) (Provider, string, error) {
	var c candidate
	switch {
	case r.cfg.Provider != "":
		i := slices.IndexFunc(candidates, func(c candidate) bool { return c.name == r.cfg.Provider })
		if i < 0 {
			return nil, "", fmt.Errorf("%w: %q", ErrUnknownProvider, r.cfg.Provider)
		}
		c = candidates[i]
	case len(candidates) == 0:
		return nil, "", nil
	case len(candidates) > 1:
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = c.name
		}
		return nil, "", fmt.Errorf("%w: %v registered, none selected", ErrAmbiguousProvider, names)
	default:
		c = candidates[0]
	}
	p, err := callFactory(c.factory)
	if err != nil {
		return nil, "", fmt.Errorf("provider %q: %w", c.name, err)
	}
	if isNil(p) {
		return nil, "", fmt.Errorf("%w: provider %q factory returned nil", ErrInvalidArgument, c.name)
	}
	return p, c.name, nil
}

func callFactory(f Factory) (p Provider, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("factory panicked: %v", rec)
		}
	}()
	return f()
}

// SupportedStyleIDs returns the style ids the bound provider supports for
// t. The result is never nil; a nil answer from the provider is logged and
// replaced with an empty slice.
func (r *Registry) SupportedStyleIDs(t reflect.Type) []string {
	ids := r.Bound().SupportedStyleIDs(t)
	if ids == nil {
		r.log.WithFields(logrus.Fields{
			"provider":    r.name,
			"target_type": fmt.Sprint(t),
		}).Warn("format: provider returned nil style ids")
		return []string{}
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

// IsSupportedStyle reports whether the bound provider supports styleID
// for t.
func (r *Registry) IsSupportedStyle(t reflect.Type, styleID string) bool {
	return r.Bound().IsSupportedStyle(t, styleID)
}

// ItemFormat returns a Formatter for t configured by style. A nil t or
// style fails with ErrInvalidArgument before the provider is consulted.
// Every provider-side failure is an *ItemFormatError.
func (r *Registry) ItemFormat(t reflect.Type, style *Style) (Formatter, error) {
	f, err := acquire(r, HandleFormatter, t, style, func(p Provider) (Formatter, error) {
		return p.ItemFormat(t, style)
	})
	r.lookups.WithLabelValues(HandleFormatter, outcomeOf(err)).Inc()
	return f, err
}

// ItemFormatForLocale is ItemFormat with a style derived from locale.
func (r *Registry) ItemFormatForLocale(t reflect.Type, locale language.Tag) (Formatter, error) {
	return r.ItemFormat(t, StyleOf(locale))
}

// ItemParser returns a Parser for t configured by style, with the same
// argument checks and error kinds as ItemFormat. A bound provider that
// does not implement ParserProvider has no parsers.
func (r *Registry) ItemParser(t reflect.Type, style *Style) (Parser, error) {
	p, err := acquire(r, HandleParser, t, style, func(p Provider) (Parser, error) {
		pp, ok := p.(ParserProvider)
		if !ok {
			return nil, nil
		}
		return pp.ItemParser(t, style)
	})
	r.lookups.WithLabelValues(HandleParser, outcomeOf(err)).Inc()
	return p, err
}

// ItemParserForLocale is ItemParser with a style derived from locale.
func (r *Registry) ItemParserForLocale(t reflect.Type, locale language.Tag) (Parser, error) {
	return r.ItemParser(t, StyleOf(locale))
}

func acquire[H any](r *Registry, handle string, t reflect.Type, style *Style, get func(Provider) (H, error)) (H, error) {
	var zero H
	if style == nil {
		return zero, fmt.Errorf("%w: style required", ErrInvalidArgument)
	}
	if t == nil {
		return zero, fmt.Errorf("%w: target type required", ErrInvalidArgument)
	}
	h, err := guard(r.Bound(), get)
	if err != nil {
		return zero, &ItemFormatError{Handle: handle, Type: t, Style: style, Err: err}
	}
	if isNil(h) {
		missing := ErrNoFormatter
		if handle == HandleParser {
			missing = ErrNoParser
		}
		return zero, &ItemFormatError{Handle: handle, Type: t, Style: style, Err: missing}
	}
	return h, nil
}

func guard[H any](p Provider, get func(Provider) (H, error)) (h H, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero H
			h, err = zero, fmt.Errorf("provider panicked: %v", rec)
		}
	}()
	return get(p)
}

// ItemFormatFor returns a typed formatter for T from r.
func ItemFormatFor[T any](r *Registry, style *Style) (TypedFormat[T], error) {
	f, err := r.ItemFormat(TypeOf[T](), style)
	if err != nil {
		return nil, err
	}
	return Typed[T](f), nil
}

// LocaleItemFormatFor returns a typed formatter for T with a style derived
// from locale.
func LocaleItemFormatFor[T any](r *Registry, locale language.Tag) (TypedFormat[T], error) {
	return ItemFormatFor[T](r, StyleOf(locale))
}

// ItemParserFor returns a typed parser for T from r.
func ItemParserFor[T any](r *Registry, style *Style) (TypedParser[T], error) {
	p, err := r.ItemParser(TypeOf[T](), style)
	if err != nil {
		return nil, err
	}
	return TypedParserOf[T](p), nil
}

// LocaleItemParserFor returns a typed parser for T with a style derived
// from locale.
func LocaleItemParserFor[T any](r *Registry, locale language.Tag) (TypedParser[T], error) {
	return ItemParserFor[T](r, StyleOf(locale))
}
