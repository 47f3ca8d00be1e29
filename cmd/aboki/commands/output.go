package commands

import (
	"aboki/lib/currency"
	"aboki/lib/scrapers/abokifx"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJson  Format = "json"
)

var ErrUnsupportedFormat = fmt.Errorf("unsupported output format")

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTable:
		return FormatTable, nil
	case FormatJson:
		return FormatJson, nil
	}
	return "", fmt.Errorf("%w %q, expected table or json", ErrUnsupportedFormat, s)
}

// printer renders command results, a new one is made for every command
// run so nothing is shared between invocations.
type printer struct {
	out    io.Writer
	errOut io.Writer
	format Format
	color  bool
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// line prints informational text, it is left out of json output so that
// stays machine readable.
func (p printer) line(a ...any) {
	if p.format != FormatTable {
		return
	}
	fmt.Fprintln(p.out, a...)
}

func (p printer) warn(a ...any) {
	msg := fmt.Sprint(a...)
	if p.color {
		msg = text.FgYellow.Sprint(msg)
	}
	fmt.Fprintln(p.errOut, msg)
}

func (p printer) writeJson(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) listing(result abokifx.Result, header table.Row) error {
	if p.format == FormatJson {
		return p.writeJson(result)
	}

	p.line(result.Title)
	t := newTable(p.out)
	// a header that is narrower than the rows would mislabel them
	if header != nil && result.Width() <= len(header) {
		t.AppendHeader(header)
	}
	for _, row := range result.Data {
		r := make(table.Row, len(row))
		for i, token := range row {
			r[i] = token
		}
		t.AppendRow(r)
	}
	t.Render()
	return nil
}

func (p printer) rates(rates currency.RateMap) error {
	if p.format == FormatJson {
		return p.writeJson(rates)
	}

	t := newTable(p.out)
	for _, r := range rates.Entries() {
		t.AppendRow(table.Row{r.Code.Upper(), formatNumber(r.Value)})
	}
	t.Render()
	return nil
}

func (p printer) conversion(c currency.Conversion) error {
	if p.format == FormatJson {
		rounded := c
		rounded.Converted = c.Rounded()
		return p.writeJson(rounded)
	}

	t := newTable(p.out)
	t.AppendRows([]table.Row{
		{c.From.Upper(), formatNumber(c.Amount)},
		{c.To.Upper(), formatNumber(c.Rounded())},
		{"RATE", formatNumber(c.Rate)},
	})
	t.Render()
	return nil
}
