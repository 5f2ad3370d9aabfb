package scraper

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeMarkup flattens raw markup into a single-line, whitespace-collapsed
// string. The target pages are not reliably well-formed, so extraction works
// on this surface form instead of trusting the document structure.
func NormalizeMarkup(raw string) string {
	s := strings.ReplaceAll(raw, `\`, "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "> <", "><")
	return strings.TrimSpace(s)
}

// NormalizeScript prepares markup for token extraction: all whitespace is
// removed and single quotes become double quotes so the script patterns
// match regardless of how the page quotes its literals.
func NormalizeScript(raw string) string {
	s := strings.ReplaceAll(raw, `\`, "")
	s = whitespaceRegex.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, "'", `"`)
}
