package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

// ToLower lowercases s with Unicode case mapping.
func ToLower(s string) string {
	return lower.String(s)
}

// RemoveDiacritics decomposes and strips combining marks.
func RemoveDiacritics(s string) string {
	t := norm.NFD.String(s)
	return norm.NFC.String(strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, t))
}

// CollapseSpaces replaces every run of whitespace inside a line with one
// space. Newlines are kept so paragraph breaks survive.
func CollapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r != '\n' && unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

// Normalize applies NFC composition and lowercasing, folding diacritics when
// fold is set.
func Normalize(s string, fold bool) string {
	s = norm.NFC.String(s)
	if fold {
		s = RemoveDiacritics(s)
	}
	return ToLower(s)
}
