package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// tatweel (kashida) is the Arabic elongation character users sometimes type
// inside city names; it carries no meaning for matching.
const tatweel = 'ـ'

// NormalizeCity canonicalizes a city name for comparison: lowercase (a no-op
// for Arabic but kept for mixed Latin input), trimmed, NFD-decomposed, with
// Arabic diacritic marks (tashkeel) and tatweel stripped.
func NormalizeCity(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) || r == tatweel {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CityEqual reports whether two city names are the same after normalization
func CityEqual(a, b string) bool {
	return NormalizeCity(a) == NormalizeCity(b)
}

// CityContains reports whether either normalized city name contains the
// other. Used as the loosest matching tier.
func CityContains(a, b string) bool {
	na, nb := NormalizeCity(a), NormalizeCity(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
