package text

import (
	"sort"
	"strings"
)

// Arabic surface morphology handled without a stemmer: the waw
// conjunction glues onto the following word, and taa-marbuta (already
// folded to haa by Normalize) marks the feminine form of the same
// lexeme.
const (
	conjunctionPrefix = "و" // و
	feminineSuffix    = "ه" // ه (taa-marbuta after folding)
)

// minTokenLen is the shortest surface token worth indexing; shorter
// fragments are almost always particles.
const minTokenLen = 2

// Tokens splits a normalized string into its set of token variants.
// For every whitespace token longer than minTokenLen runes it emits the
// token itself plus, when applicable, the token without the
// conjunction prefix and without the feminine suffix. Variants are
// added alongside the original, never instead of it. The result is
// deduplicated and order-free.
func Tokens(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		if len([]rune(tok)) <= minTokenLen {
			continue
		}
		set[tok] = struct{}{}
		if rest, ok := strings.CutPrefix(tok, conjunctionPrefix); ok && rest != "" {
			set[rest] = struct{}{}
		}
		if rest, ok := strings.CutSuffix(tok, feminineSuffix); ok && rest != "" {
			set[rest] = struct{}{}
		}
	}
	return set
}

// SortedKey joins the token set in lexical order into a single string,
// used for cheap set-overlap comparisons between entries.
func SortedKey(set map[string]struct{}) string {
	toks := make([]string, 0, len(set))
	for t := range set {
		toks = append(toks, t)
	}
	sort.Strings(toks)
	return strings.Join(toks, " ")
}
