package textfmt

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

func writeJSON(v any, o renderOptions) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if o.hasIndent {
		enc.SetIndent("", o.indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeYAML(v any, o renderOptions) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if o.hasIndent {
		enc.SetIndent(len(o.indent))
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeCSV(header, row []string, o renderOptions) (string, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Comma = o.delimiter
	if o.header {
		if err := cw.Write(header); err != nil {
			return "", err
		}
	}
	if err := cw.Write(row); err != nil {
		return "", err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writePlain(v fmt.Stringer) string {
	return v.String()
}

// alignCell pads s to width display columns. Wide currency symbols count
// as two columns.
func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignLeft:
		return s + strings.Repeat(" ", pad)
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return strings.Repeat(" ", pad) + s
	}
}
