package main

import (
	"fmt"
	"io"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/bjaus/money"
	"github.com/bjaus/money/format"
	"github.com/bjaus/money/format/textfmt"
	"github.com/bjaus/money/rounding"
)

// setup builds the logger and a registry with the text provider
// registered.
func setup(cmd *cobra.Command) (*format.Registry, *logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())

	level, _ := cmd.Flags().GetString("log-level")
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(lvl)

	var cfg format.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if cfg, err = format.LoadConfigFile(path); err != nil {
			return nil, nil, err
		}
	}

	reg := format.New(format.WithLogger(logger), format.WithConfig(cfg))
	if err := textfmt.Register(reg); err != nil {
		return nil, nil, err
	}
	return reg, logger, nil
}

func newFormatCmd() *cobra.Command {
	var (
		amount string
		code   string
		locale string
		style  string
		attrs  map[string]string
	)
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format an amount for a locale and style",
		Example: `  money-samples format --amount 1234.5 --currency CHF --locale de-CH
  money-samples format --amount 1 --currency EUR --style json --attr indent="  "`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			a, err := money.Parse(code, amount)
			if err != nil {
				return err
			}
			tag, err := language.Parse(locale)
			if err != nil {
				return fmt.Errorf("locale %q: %w", locale, err)
			}
			f, err := itemFormat(reg, tag, style, attrs)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), f, a)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "1", "numeric amount")
	cmd.Flags().StringVar(&code, "currency", "CHF", "ISO 4217 currency code")
	cmd.Flags().StringVar(&locale, "locale", "de-DE", "BCP 47 locale")
	cmd.Flags().StringVar(&style, "style", "", "style id (default: derived from locale)")
	cmd.Flags().StringToStringVar(&attrs, "attr", nil, "style attributes as key=value")
	return cmd
}

func itemFormat(reg *format.Registry, tag language.Tag, style string, attrs map[string]string) (format.TypedFormat[money.Amount], error) {
	opts := make([]format.StyleOption, 0, len(attrs))
	for k, v := range attrs {
		opts = append(opts, format.WithAttr(k, v))
	}
	if style == "" {
		return format.ItemFormatFor[money.Amount](reg, format.StyleOf(tag, opts...))
	}
	return format.ItemFormatFor[money.Amount](reg, format.NewStyle(style, tag, opts...))
}

func writeLine(w io.Writer, f format.TypedFormat[money.Amount], a money.Amount) error {
	s, err := f.Format(a)
	if err != nil {
		return err
	}
	if len(s) > 0 && s[len(s)-1] == '\n' {
		_, err = io.WriteString(w, s)
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func newParseCmd() *cobra.Command {
	var (
		locale string
		style  string
	)
	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Parse an amount written in a plain or code style",
		Example: `  money-samples parse "CHF 1234.50"
  money-samples parse --style code --locale de-DE "EUR 1.234,50"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			tag, err := language.Parse(locale)
			if err != nil {
				return fmt.Errorf("locale %q: %w", locale, err)
			}
			p, err := format.ItemParserFor[money.Amount](reg, format.NewStyle(style, tag))
			if err != nil {
				return err
			}
			a, err := p.Parse(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a)
			return err
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "en", "BCP 47 locale of the text")
	cmd.Flags().StringVar(&style, "style", string(textfmt.Plain), "style id (plain|code)")
	return cmd
}

var targetTypes = map[string]reflect.Type{
	"amount":   format.TypeOf[money.Amount](),
	"currency": format.TypeOf[money.Currency](),
}

func newStylesCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the style ids the bound provider supports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			t, ok := targetTypes[target]
			if !ok {
				return fmt.Errorf("%w: unknown type %q", format.ErrInvalidArgument, target)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "provider: %s\n", reg.Name())
			for _, id := range reg.SupportedStyleIDs(t) {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "type", "amount", "target type (amount|currency)")
	return cmd
}

func newRoundCmd() *cobra.Command {
	var (
		amount string
		code   string
		name   string
		cash   bool
	)
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round an amount with the default currency rounding",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			a, err := money.Parse(code, amount)
			if err != nil {
				return err
			}
			cur := a.Currency()
			reg := rounding.NewRegistry(logger, rounding.DefaultProvider{})
			r, err := reg.Rounding(rounding.Query{Name: name, Currency: &cur, Cash: cash})
			if err != nil {
				return err
			}
			ctx := r.Context()
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (scale %d, increment %d)\n", a, r.Apply(a), ctx.Scale, ctx.Increment)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "1", "numeric amount")
	cmd.Flags().StringVar(&code, "currency", "CHF", "ISO 4217 currency code")
	cmd.Flags().StringVar(&name, "name", "", "named rounding id")
	cmd.Flags().BoolVar(&cash, "cash", false, "use cash rounding")
	return cmd
}
