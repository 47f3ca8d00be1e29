package abokifx

import (
	"context"
	"fmt"
	"strings"
	"testing"

	_ "embed"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed front_page_test.html
var frontPageTest []byte

func TestExtractFrontPage(t *testing.T) {
	table, err := Extract(context.Background(), frontPageTest)
	require.NoError(t, err)

	require.Equal(t, "AbokiFX | Lagos Parallel Market Rates", table.Title)

	expected := []Row{
		{"25/12/2023", "755 / 765*", "400 / 410**", "470 / 480***"},
		{"24/12/2023", "750 / 760", "398 / 405", "468.5", "478"},
		{"23/12/2023", "748 / 758*", "395 / 402", "465 / 475"},
	}
	if diff := cmp.Diff(expected, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractPreservesOrder(t *testing.T) {
	lines := []string{
		"01/02/2024 900 / 910",
		"31/01/2024 890 / 905**",
		"30/01/2024 880.25 / 899",
		"29/01/2024",
		"28/01/2024 870 / 880***",
	}

	var body strings.Builder
	body.WriteString(`<html><head><title>Rates</title></head><body><div class="lagos-market-rates"><table>`)
	for _, line := range lines {
		body.WriteString("<tr>")
		for _, cell := range strings.SplitAfter(line, " ") {
			fmt.Fprintf(&body, "<td>%s</td>", cell)
		}
		body.WriteString("</tr>")
	}
	body.WriteString(`</table></div></body></html>`)

	table, err := Extract(context.Background(), []byte(body.String()))
	require.NoError(t, err)

	expected := make([]Row, len(lines))
	for i, line := range lines {
		expected[i] = Tokenize(line)
	}
	if diff := cmp.Diff(expected, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractWithoutTable(t *testing.T) {
	page := `<html><head><title>Maintenance</title></head><body><p>back soon</p></body></html>`

	table, err := Extract(context.Background(), []byte(page))
	require.NoError(t, err)
	require.Equal(t, "Maintenance", table.Title)
	require.NotNil(t, table.Rows)
	require.Len(t, table.Rows, 0)
}

func TestExtractWithoutTitle(t *testing.T) {
	page := `<div class="lagos-market-rates"><table><tr><td>25/12/2023</td><td>755 / 765</td></tr></table></div>`

	table, err := Extract(context.Background(), []byte(page))
	require.NoError(t, err)
	require.Equal(t, "", table.Title)
	require.Equal(t, []Row{{"25/12/2023", "755 / 765"}}, table.Rows)
}

func TestAssemble(t *testing.T) {
	table := Table{
		Title: "Rates",
		Rows: []Row{
			{"25/12/2023", "755 / 765*"},
			{"24/12/2023", "750 / 760", "398 / 405"},
		},
	}

	result := Assemble(table)
	require.Equal(t, "Rates", result.Title)
	require.Equal(t, [][]string{
		{"25/12/2023", "755 / 765*"},
		{"24/12/2023", "750 / 760", "398 / 405"},
	}, result.Data)
	require.Equal(t, 3, result.Width())

	// the result does not alias the table
	result.Data[0][0] = "changed"
	require.Equal(t, "25/12/2023", table.Rows[0][0])

	empty := Assemble(Table{Title: "Empty"})
	require.Equal(t, 0, empty.Width())
	require.NotNil(t, empty.Data)
}
