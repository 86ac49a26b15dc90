// Package rounding defines rounding providers for money amounts and a
// registry that queries them in registration order.
package rounding

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"

	"github.com/bjaus/money"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoRounding      = errors.New("no rounding available")
)

// Context describes a rounding.
type Context struct {
	Provider  string
	ID        string
	Scale     int
	Increment int
}

// Rounding transforms an amount.
type Rounding interface {
	Context() Context
	Apply(money.Amount) money.Amount
}

// Query selects a rounding. Name takes precedence over Currency.
type Query struct {
	Name     string
	Currency *money.Currency
	Cash     bool
}

// Provider supplies roundings. Rounding returns (nil, nil) for queries it
// does not handle.
type Provider interface {
	Rounding(q Query) (Rounding, error)
	RoundingIDs() []string
}

// Func adapts a function to the Rounding interface.
func Func(ctx Context, fn func(money.Amount) money.Amount) Rounding {
	return funcRounding{ctx: ctx, fn: fn}
}

type funcRounding struct {
	ctx Context
	fn  func(money.Amount) money.Amount
}

func (r funcRounding) Context() Context                  { return r.ctx }
func (r funcRounding) Apply(a money.Amount) money.Amount { return r.fn(a) }

// Registry queries providers in registration order. It is safe for
// concurrent use.
type Registry struct {
	log       logrus.FieldLogger
	mu        sync.RWMutex
	providers []Provider
}

// NewRegistry returns a Registry holding providers.
func NewRegistry(log logrus.FieldLogger, providers ...Provider) *Registry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := &Registry{log: log}
	for _, p := range providers {
		if p != nil {
			r.providers = append(r.providers, p)
		}
	}
	return r
}

// Register appends p to the query order.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("%w: provider is nil", ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, p)
	return nil
}

// Rounding returns the first rounding a provider supplies for q.
func (r *Registry) Rounding(q Query) (Rounding, error) {
	if q.Name == "" && q.Currency == nil {
		return nil, fmt.Errorf("%w: query needs a name or a currency", ErrInvalidArgument)
	}
	r.mu.RLock()
	providers := slices.Clone(r.providers)
	r.mu.RUnlock()

	for _, p := range providers {
		rnd, err := p.Rounding(q)
		if err != nil {
			return nil, fmt.Errorf("rounding %s: %w", describe(q), err)
		}
		if rnd != nil {
			return rnd, nil
		}
	}
	r.log.WithField("query", describe(q)).Debug("rounding: no provider matched")
	return nil, fmt.Errorf("%w: %s", ErrNoRounding, describe(q))
}

// RoundingIDs returns the sorted union of every provider's named
// roundings.
func (r *Registry) RoundingIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for _, p := range r.providers {
		ids = append(ids, p.RoundingIDs()...)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func describe(q Query) string {
	switch {
	case q.Name != "":
		return fmt.Sprintf("name=%q", q.Name)
	case q.Cash:
		return "currency=" + q.Currency.Code() + " cash"
	default:
		return "currency=" + q.Currency.Code()
	}
}

// DefaultProviderName identifies roundings from DefaultProvider.
const DefaultProviderName = "default"

// DefaultProvider rounds to a currency's CLDR fraction digits and
// rounding increment. It handles currency queries without a name.
type DefaultProvider struct{}

// Rounding implements Provider.
func (DefaultProvider) Rounding(q Query) (Rounding, error) {
	if q.Name != "" || q.Currency == nil {
		return nil, nil
	}
	kind := currency.Standard
	if q.Cash {
		kind = currency.Cash
	}
	scale, inc := kind.Rounding(q.Currency.Unit())
	ctx := Context{Provider: DefaultProviderName, ID: q.Currency.Code(), Scale: scale, Increment: inc}
	return Func(ctx, func(a money.Amount) money.Amount {
		return a.WithNumber(Round(a.Number(), scale, inc))
	}), nil
}

// RoundingIDs implements Provider. Currency roundings are not named.
func (DefaultProvider) RoundingIDs() []string { return nil }

// Round rounds n half away from zero to a multiple of increment at scale
// fraction digits. An increment below 1 is treated as 1. A negative scale
// rounds to tens, hundreds and so on.
func Round(n decimal.Decimal, scale, increment int) decimal.Decimal {
	shifted := n.Shift(int32(scale))
	if increment <= 1 {
		return shifted.Round(0).Shift(-int32(scale))
	}
	inc := decimal.NewFromInt(int64(increment))
	// QuoRem truncates toward zero; a remainder of at least half an
	// increment steps away from zero.
	q, rem := shifted.QuoRem(inc, 0)
	if rem.Abs().Shift(1).GreaterThanOrEqual(inc.Mul(decimal.NewFromInt(5))) {
		q = q.Add(decimal.NewFromInt(int64(shifted.Sign())))
	}
	return q.Mul(inc).Shift(-int32(scale))
}
