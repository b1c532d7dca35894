// Package text canonicalizes Arabic/Latin strings for matching.
//
// Normalize folds the orthographic variation that makes naive string
// comparison useless for Arabic search input: optional vowel marks
// (tashkeel), decorative elongation (tatweel), and the letter variants
// writers use interchangeably (alef with/without hamza, alef-maqsura vs
// yaa, taa-marbuta vs haa). Latin input is lowercased and accent-folded
// by the same pipeline.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const tatweel = 'ـ'

// foldChain decomposes, strips combining marks (tashkeel and Latin
// accents are both category Mn), then recomposes. NFD also folds the
// precomposed hamza carriers (آ أ إ ؤ ئ) onto their base letters once
// the mark is removed.
var foldChain = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// letterFolds maps the variants NFD cannot reach onto their canonical
// search forms: alef wasla to plain alef, alef-maqsura to yaa,
// taa-marbuta to haa.
var letterFolds = strings.NewReplacer(
	"ٱ", "ا", // ٱ -> ا
	"ى", "ي", // ى -> ي
	"ة", "ه", // ة -> ه
)

// Normalize returns the canonical matching form of s.
// Empty input yields the empty string; Normalize never fails.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)

	out, _, err := transform.String(foldChain, s)
	if err == nil {
		s = out
	}

	s = letterFolds.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	space := true // collapse leading separators
	for _, r := range s {
		if r == tatweel {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		// punctuation, separators, symbols all collapse to one space
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}
