package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes and drops combining marks, so "Côte" folds
// to "Cote" before ASCII filtering.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeWord converts a raw word or phrase into its guessable form:
// lowercase ASCII letters with runs of separators collapsed to single
// hyphens. "&" expands to "and". Anything else is dropped.
func NormalizeWord(s string) string {
	s = stripAccents(strings.ToLower(s))
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	prevHyphen := true // also strips leading separators
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '-' || r == '\'' || r == '’' || r == '.' ||
			r == ',' || r == '(' || r == ')' || r == '/':
			if !prevHyphen {
				b.WriteRune('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// NormalizeCountry converts a country name into its guessable form:
// lowercase ASCII letters only, accents stripped, spaces and
// punctuation removed ("Côte d'Ivoire" becomes "cotedivoire").
func NormalizeCountry(s string) string {
	s = stripAccents(strings.ToLower(s))
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
