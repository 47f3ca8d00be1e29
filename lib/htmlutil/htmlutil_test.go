package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWhitespace(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		{text: "", expected: ""},
		{text: "   ", expected: ""},
		{text: "\n\t755  /\n765*\t", expected: "755 / 765*"},
		{text: "a b", expected: "a b"},
		{text: "x\u200by", expected: "xy"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeWhitespace(test.text), "%q", test.text)
	}
}

func TestSelectionTextSeparatesCells(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<table><tr><td>25/12/2023</td><td>755 / 765*</td><td><b>400</b> / 410</td></tr></table>`,
	))
	if err != nil {
		t.Fatal(err)
	}

	text := SelectionText(doc.Find("tr"))
	require.Equal(t, "25/12/2023 755 / 765* 400 / 410", text)
}
