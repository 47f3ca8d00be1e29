package htmlutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText returns the text nodes under node, each separated by a single
// space so adjacent table cells do not run together.
func GetText(node *html.Node) string {
	var parts []string
	getTextRecursive(node, &parts)
	return strings.Join(parts, " ")
}

func getTextRecursive(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		*out = append(*out, node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, out)
		child = child.NextSibling
	}
}

var whitespace = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// NormalizeWhitespace collapses every run of whitespace into a single
// space and trims both ends.
func NormalizeWhitespace(s string) string {
	s = removeNonPrintable(s)
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SelectionText is GetText over every node of sel, normalized.
func SelectionText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		getTextRecursive(n, &parts)
	}
	return NormalizeWhitespace(strings.Join(parts, " "))
}
