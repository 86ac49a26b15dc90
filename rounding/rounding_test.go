package rounding_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/money"
	"github.com/bjaus/money/rounding"
)

// testRoundingProvider answers every query. Named roundings "custom1" and
// "custom2" double and triple the amount; anything else is the identity.
type testRoundingProvider struct{}

func (testRoundingProvider) Rounding(q rounding.Query) (rounding.Rounding, error) {
	switch {
	case q.Name != "":
		return customRounding(q.Name), nil
	case q.Currency != nil:
		return customRounding(q.Currency.Code()), nil
	default:
		return customRounding("test"), nil
	}
}

func (testRoundingProvider) RoundingIDs() []string { return []string{"custom1", "custom2"} }

func customRounding(id string) rounding.Rounding {
	ctx := rounding.Context{Provider: "TestRoundingProvider", ID: id}
	return rounding.Func(ctx, func(a money.Amount) money.Amount {
		switch id {
		case "custom1":
			return a.Multiply(decimal.NewFromInt(2))
		case "custom2":
			return a.Multiply(decimal.NewFromInt(3))
		default:
			return a
		}
	})
}

type failingProvider struct{ err error }

func (p failingProvider) Rounding(rounding.Query) (rounding.Rounding, error) { return nil, p.err }
func (failingProvider) RoundingIDs() []string                                { return []string{"custom1"} }

func chf() *money.Currency {
	c := money.MustCurrency("CHF")
	return &c
}

func newRegistry(providers ...rounding.Provider) *rounding.Registry {
	logger, _ := logtest.NewNullLogger()
	return rounding.NewRegistry(logger, providers...)
}

func TestTestRoundingProvider(t *testing.T) {
	t.Parallel()
	reg := newRegistry(testRoundingProvider{})
	amount, err := money.Parse("CHF", "1.5")
	require.NoError(t, err)

	tests := map[string]struct {
		q    rounding.Query
		id   string
		want string
	}{
		"custom1":       {q: rounding.Query{Name: "custom1"}, id: "custom1", want: "3"},
		"custom2":       {q: rounding.Query{Name: "custom2"}, id: "custom2", want: "4.5"},
		"other name":    {q: rounding.Query{Name: "other"}, id: "other", want: "1.5"},
		"currency only": {q: rounding.Query{Currency: chf()}, id: "CHF", want: "1.5"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r, err := reg.Rounding(tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.id, r.Context().ID)
			assert.Equal(t, "TestRoundingProvider", r.Context().Provider)
			got := r.Apply(amount)
			assert.Equal(t, tt.want, got.Number().String())
			assert.Equal(t, "CHF", got.Currency().Code())
		})
	}
}

func TestDefaultProvider(t *testing.T) {
	t.Parallel()
	reg := newRegistry(rounding.DefaultProvider{})
	tests := map[string]struct {
		code string
		cash bool
		in   string
		want string
	}{
		"chf half up":  {code: "CHF", in: "1.005", want: "1.01"},
		"chf down":     {code: "CHF", in: "2.344", want: "2.34"},
		"chf cash":     {code: "CHF", cash: true, in: "1.03", want: "1.05"},
		"chf cash low": {code: "CHF", cash: true, in: "1.02", want: "1"},
		"jpy":          {code: "JPY", in: "99.5", want: "100"},
		"negative":     {code: "USD", in: "-1.005", want: "-1.01"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a, err := money.Parse(tt.code, tt.in)
			require.NoError(t, err)
			cur := a.Currency()
			r, err := reg.Rounding(rounding.Query{Currency: &cur, Cash: tt.cash})
			require.NoError(t, err)
			assert.Equal(t, rounding.DefaultProviderName, r.Context().Provider)
			assert.Equal(t, tt.code, r.Context().ID)
			assert.Equal(t, tt.want, r.Apply(a).Number().String())
		})
	}
}

func TestDefaultProviderIgnoresNamedQueries(t *testing.T) {
	t.Parallel()
	reg := newRegistry(rounding.DefaultProvider{})
	_, err := reg.Rounding(rounding.Query{Name: "custom1", Currency: chf()})
	assert.ErrorIs(t, err, rounding.ErrNoRounding)
}

func TestRegistryOrder(t *testing.T) {
	t.Parallel()
	reg := newRegistry(rounding.DefaultProvider{})
	require.NoError(t, reg.Register(testRoundingProvider{}))

	r, err := reg.Rounding(rounding.Query{Currency: chf()})
	require.NoError(t, err)
	assert.Equal(t, rounding.DefaultProviderName, r.Context().Provider)

	r, err = reg.Rounding(rounding.Query{Name: "custom2"})
	require.NoError(t, err)
	assert.Equal(t, "TestRoundingProvider", r.Context().Provider)
}

func TestRegistryErrors(t *testing.T) {
	t.Parallel()
	errBroken := errors.New("broken")
	reg := newRegistry(failingProvider{err: errBroken})

	assert.ErrorIs(t, reg.Register(nil), rounding.ErrInvalidArgument)

	_, err := reg.Rounding(rounding.Query{})
	assert.ErrorIs(t, err, rounding.ErrInvalidArgument)

	_, err = reg.Rounding(rounding.Query{Name: "custom1"})
	assert.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), `name="custom1"`)

	_, err = newRegistry().Rounding(rounding.Query{Currency: chf()})
	assert.ErrorIs(t, err, rounding.ErrNoRounding)
}

func TestRoundingIDs(t *testing.T) {
	t.Parallel()
	reg := newRegistry(rounding.DefaultProvider{}, testRoundingProvider{}, failingProvider{})
	assert.Equal(t, []string{"custom1", "custom2"}, reg.RoundingIDs())
}

func TestRound(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in        string
		scale     int
		increment int
		want      string
	}{
		"scale one":            {in: "0.125", scale: 1, increment: 0, want: "0.1"},
		"increment five":       {in: "0.125", scale: 2, increment: 5, want: "0.15"},
		"negative scale":       {in: "12", scale: -1, increment: 1, want: "10"},
		"just below half":      {in: "1.0049999999", scale: 2, increment: 1, want: "1"},
		"exact half":           {in: "1.005", scale: 2, increment: 1, want: "1.01"},
		"below half increment": {in: "1.0249999", scale: 2, increment: 5, want: "1"},
		"negative increment":   {in: "-1.03", scale: 2, increment: 5, want: "-1.05"},
		"huge":                 {in: "1e305", scale: 2, increment: 1, want: "1" + strings.Repeat("0", 305)},
		"huge with increment":  {in: "1e305", scale: 2, increment: 5, want: "1" + strings.Repeat("0", 305)},
		"zero":                 {in: "0", scale: 2, increment: 5, want: "0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := rounding.Round(decimal.RequireFromString(tt.in), tt.scale, tt.increment)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
