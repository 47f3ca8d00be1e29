package abokifx

import (
	"aboki/lib/htmlutil"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// html5 parsing wraps bare rows in a tbody, so rows are matched as
// descendants rather than direct children of the table
const rowSelector = ".lagos-market-rates table tr"

type Table struct {
	Title string
	Rows  []Row
}

func Extract(ctx context.Context, content []byte) (Table, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return Table{}, fmt.Errorf("%w: parse html: %s", ErrStructure, err.Error())
	}

	table := ExtractDocument(ctx, doc)
	span.SetAttributes(
		attribute.String("title", table.Title),
		attribute.Int("rows", len(table.Rows)),
	)
	return table, nil
}

// ExtractDocument finds the market rates table in doc. A page without
// the table yields no rows rather than an error.
func ExtractDocument(ctx context.Context, doc *goquery.Document) Table {
	table := Table{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Rows:  []Row{},
	}

	skipped := 0
	doc.Find(rowSelector).Each(func(_ int, tr *goquery.Selection) {
		row := Tokenize(htmlutil.SelectionText(tr))
		if IsNoiseRow(row) {
			skipped++
			return
		}
		table.Rows = append(table.Rows, row)
	})

	slog.DebugContext(
		ctx, "extracted rate table",
		"title", table.Title,
		"rows", len(table.Rows),
		"skipped", skipped,
	)
	if len(table.Rows) == 0 {
		slog.WarnContext(ctx, "no rate rows found, the page layout may have changed", "selector", rowSelector)
	}
	return table
}
