package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeName lowercases a name and collapses runs of whitespace into
// single spaces, this is the key used to de-duplicate scraped miners.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return name
}

// Slugify turns a name into a lowercase hyphenated identifier,
// "Bitmain Antminer S21 XP+" becomes "bitmain-antminer-s21-xp".
func Slugify(name string) string {
	slug := nonAlphanumericRegex.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
