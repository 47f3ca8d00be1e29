package abokifx

import "regexp"

// Row is one line of a rate table split into tokens, in source order.
type Row []string

// tried left to right at every position, go's regexp alternation is
// leftmost-first so earlier shapes win:
// 1. dates         25/12/2023
// 2. rate pairs    755 / 765**
// 3. decimals      755.50
// 4. plain words
var tokenRegex = regexp.MustCompile(`\w+/\w+/\w+|\w+\s/\s\w+\**|\w+\.\w*|\w+`)

// Tokenize splits the whitespace normalized text of a row into tokens.
// Characters that fit none of the shapes are skipped.
func Tokenize(text string) Row {
	matches := tokenRegex.FindAllString(text, -1)
	if matches == nil {
		return Row{}
	}
	return Row(matches)
}
