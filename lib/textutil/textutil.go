package textutil

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// minSimilarity is the Jaro-Winkler score below which a candidate is not
// worth suggesting.
const minSimilarity = 0.7

// Closest returns the candidate most similar to name, or "" if nothing
// is close enough to be a plausible typo.
func Closest(name string, candidates []string) string {
	name = NormalizeName(name)
	if name == "" {
		return ""
	}

	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		score := matchr.JaroWinkler(name, NormalizeName(c), false)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	if bestScore < minSimilarity {
		return ""
	}
	return best
}
