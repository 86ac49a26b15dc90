package format_test

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/bjaus/money"
	"github.com/bjaus/money/format"
)

// The process-wide registry binds once, so every assertion against it
// lives in this single test.
func TestDefaultRegistry(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	reg := format.New(format.WithLogger(logger))
	require.NoError(t, format.SetDefault(reg))
	assert.ErrorIs(t, format.SetDefault(nil), format.ErrInvalidArgument)

	style := format.NewStyle("short", language.English)
	require.NoError(t, format.Register("stub", &stubProvider{
		ids:  []string{"short", "long"},
		fmtr: upperFormatter(style),
	}))
	assert.Same(t, reg, format.Default())
	assert.ErrorIs(t, format.SetDefault(format.New()), format.ErrAlreadyBound)

	assert.Equal(t, []string{"long", "short"}, format.SupportedStyleIDs(amountType()))
	assert.True(t, format.IsSupportedStyle(amountType(), "long"))
	assert.False(t, format.IsSupportedStyle(amountType(), "medium"))

	f, err := format.ItemFormat(amountType(), style)
	require.NoError(t, err)
	assert.Same(t, style, f.Style())

	_, err = format.ItemFormatForLocale(amountType(), language.German)
	require.NoError(t, err)

	typed, err := format.ItemFormatOf[money.Amount](style)
	require.NoError(t, err)
	s, err := typed.Format(money.OfFloat(money.MustCurrency("USD"), 3))
	require.NoError(t, err)
	assert.Equal(t, "USD 3", s)

	_, err = format.LocaleItemFormatOf[money.Amount](language.French)
	require.NoError(t, err)

	_, err = format.ItemFormat(amountType(), nil)
	assert.ErrorIs(t, err, format.ErrInvalidArgument)

	_, err = format.ItemParser(amountType(), style)
	assert.ErrorIs(t, err, format.ErrNoParser)
	_, err = format.ItemParserForLocale(amountType(), language.German)
	assert.ErrorIs(t, err, format.ErrNoParser)
	_, err = format.ItemParserOf[money.Amount](style)
	assert.ErrorIs(t, err, format.ErrNoParser)
	_, err = format.LocaleItemParserOf[money.Amount](language.French)
	assert.ErrorIs(t, err, format.ErrNoParser)

	assert.ErrorIs(t, format.RegisterFunc("late", func() (format.Provider, error) { return nil, nil }), format.ErrAlreadyBound)
}
