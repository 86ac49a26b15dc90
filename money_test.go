package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/bjaus/money"
)

func TestParseCurrency(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in      string
		want    string
		digits  int
		wantErr bool
	}{
		"upper":    {in: "CHF", want: "CHF", digits: 2},
		"lower":    {in: "usd", want: "USD", digits: 2},
		"no minor": {in: "JPY", want: "JPY", digits: 0},
		"unknown":  {in: "QQQ", wantErr: true},
		"length":   {in: "EURO", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, err := money.ParseCurrency(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrUnknownCurrency)
				assert.True(t, c.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Code())
			assert.Equal(t, tt.want, c.String())
			assert.Equal(t, tt.digits, c.FractionDigits())
		})
	}
}

func TestMustCurrencyPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { money.MustCurrency("???") })
}

func TestCurrencyOf(t *testing.T) {
	t.Parallel()
	c := money.CurrencyOf(currency.EUR)
	assert.Equal(t, currency.EUR, c.Unit())
	assert.Equal(t, "EUR", c.Code())
}

func TestParse(t *testing.T) {
	t.Parallel()
	a, err := money.Parse("CHF", "123.45")
	require.NoError(t, err)
	assert.Equal(t, "CHF", a.Currency().Code())
	assert.True(t, decimal.RequireFromString("123.45").Equal(a.Number()))
	assert.Equal(t, "CHF 123.45", a.String())
	assert.InDelta(t, 123.45, a.Float64(), 1e-12)

	_, err = money.Parse("CHF", "12,3")
	assert.ErrorIs(t, err, money.ErrInvalidNumber)

	_, err = money.Parse("XYZW", "1")
	assert.ErrorIs(t, err, money.ErrUnknownCurrency)
}

func TestParseKeepsPrecision(t *testing.T) {
	t.Parallel()
	a, err := money.Parse("USD", "0.1")
	require.NoError(t, err)
	sum := a.Number().Add(decimal.RequireFromString("0.2"))
	assert.Equal(t, "0.3", sum.String())

	big, err := money.Parse("USD", "123456789012345678901234567890.12")
	require.NoError(t, err)
	assert.Equal(t, "USD 123456789012345678901234567890.12", big.String())
}

func TestAmountOperations(t *testing.T) {
	t.Parallel()
	eur := money.MustCurrency("EUR")
	a := money.OfFloat(eur, 1.5)

	assert.Equal(t, "3", a.Multiply(decimal.NewFromInt(2)).Number().String())
	assert.Equal(t, "-1.5", a.Negate().Number().String())
	assert.Equal(t, "7", a.WithNumber(decimal.NewFromInt(7)).Number().String())
	assert.Equal(t, "EUR", a.Multiply(decimal.NewFromInt(2)).Currency().Code())
	assert.Equal(t, "1.5", a.Number().String(), "operations must not mutate the receiver")
}

func TestAmountEqual(t *testing.T) {
	t.Parallel()
	eur := money.MustCurrency("EUR")
	tests := map[string]struct {
		a, b money.Amount
		want bool
	}{
		"same":           {a: money.OfFloat(eur, 1), b: money.OfFloat(eur, 1), want: true},
		"trailing zeros": {a: money.Of(eur, decimal.RequireFromString("1.00")), b: money.OfFloat(eur, 1), want: true},
		"value":          {a: money.OfFloat(eur, 1), b: money.OfFloat(eur, 2)},
		"currency":       {a: money.OfFloat(eur, 1), b: money.OfFloat(money.MustCurrency("USD"), 1)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}
