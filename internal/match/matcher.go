package match

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ImComy/Modaresy-sub002/internal/text"
)

// Field weights for the approximate pass. Token-set hits count the
// most, hits on the normalized label less, raw-label hits least.
const (
	weightTokens     = 3.0
	weightNormalized = 2.0
	weightRaw        = 1.0
)

// DefaultMaxDistanceRatio is the default edit-distance budget relative
// to token length. Lower is stricter.
const DefaultMaxDistanceRatio = 0.4

// Matcher ranks entries against a query. The zero value is not usable;
// construct with New.
type Matcher struct {
	maxDistanceRatio float64
}

// New creates a matcher with the given edit-distance ratio; zero or
// negative falls back to DefaultMaxDistanceRatio.
func New(maxDistanceRatio float64) *Matcher {
	if maxDistanceRatio <= 0 {
		maxDistanceRatio = DefaultMaxDistanceRatio
	}
	return &Matcher{maxDistanceRatio: maxDistanceRatio}
}

// Match returns the entries most relevant to query, best first.
// selected (an Entry.Value, may be empty) is pinned to the front of
// the result. An empty query returns every entry. The result is
// deduplicated by Value and the function is deterministic for a fixed
// matcher and entry slice.
func (m *Matcher) Match(query, selected string, entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}

	normQuery := text.Normalize(query)
	if normQuery == "" {
		return pinAndDedup(entries, entries, selected)
	}

	queryTokens := sortedTokens(normQuery)

	fuzzyList := m.rank(queryTokens, entries)
	strict := strictFilter(queryTokens, fuzzyList)
	if len(strict) > 0 {
		return pinAndDedup(strict, entries, selected)
	}
	return pinAndDedup(fuzzyList, entries, selected)
}

// rank runs the weighted approximate pass and returns candidates in
// score order, ties keeping input order.
func (m *Matcher) rank(queryTokens []string, entries []Entry) []Entry {
	type scored struct {
		entry Entry
		score float64
		pos   int
	}
	candidates := make([]scored, 0, len(entries))

	for i, e := range entries {
		var total float64
		for _, qt := range queryTokens {
			total += weightTokens * m.tokenQuality(qt, e.Tokens)
			total += weightNormalized * subsequenceQuality(qt, e.Normalized)
			total += weightRaw * subsequenceQuality(qt, strings.ToLower(e.Label))
		}
		if total > 0 {
			candidates = append(candidates, scored{entry: e, score: total, pos: i})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].pos < candidates[j].pos
	})

	out := make([]Entry, len(candidates))
	for i, c := range candidates {
		out[i] = c.entry
	}
	return out
}

// tokenQuality is the best edit-distance quality of qt against the
// entry's token set, 0 when every token is outside the distance budget.
func (m *Matcher) tokenQuality(qt string, tokens map[string]struct{}) float64 {
	best := 0.0
	qlen := len([]rune(qt))
	for tok := range tokens {
		tlen := len([]rune(tok))
		longer := qlen
		if tlen > longer {
			longer = tlen
		}
		if longer == 0 {
			continue
		}
		d := fuzzy.LevenshteinDistance(qt, tok)
		if float64(d) > m.maxDistanceRatio*float64(longer) {
			continue
		}
		q := 1 - float64(d)/float64(longer)
		if q > best {
			best = q
		}
	}
	return best
}

// subsequenceQuality scores qt against a whole label: 1 for a
// substring hit, a rank-damped score for a fuzzy subsequence hit,
// 0 otherwise.
func subsequenceQuality(qt, label string) float64 {
	if label == "" {
		return 0
	}
	if strings.Contains(label, qt) {
		return 1
	}
	if rank := fuzzy.RankMatchNormalizedFold(qt, label); rank >= 0 {
		return 1 / (1 + float64(rank))
	}
	return 0
}

// strictFilter keeps candidates where every query token appears as a
// substring of some entry token, of the normalized label, or of the
// sorted-token key.
func strictFilter(queryTokens []string, candidates []Entry) []Entry {
	var out []Entry
	for _, e := range candidates {
		if containsAllTokens(queryTokens, e) {
			out = append(out, e)
		}
	}
	return out
}

func containsAllTokens(queryTokens []string, e Entry) bool {
	for _, qt := range queryTokens {
		if !containsToken(qt, e) {
			return false
		}
	}
	return true
}

func containsToken(qt string, e Entry) bool {
	for tok := range e.Tokens {
		if strings.Contains(tok, qt) {
			return true
		}
	}
	return strings.Contains(e.Normalized, qt) || strings.Contains(e.SortedKey, qt)
}

// pinAndDedup moves the selected entry to the front, prepending it
// from the full entry set when the result lacks it, then deduplicates
// by Value preserving order.
func pinAndDedup(result, all []Entry, selected string) []Entry {
	out := make([]Entry, 0, len(result)+1)
	if selected != "" && !containsValue(result, selected) {
		for _, e := range all {
			if e.Value == selected {
				out = append(out, e)
				break
			}
		}
	} else if selected != "" {
		for _, e := range result {
			if e.Value == selected {
				out = append(out, e)
				break
			}
		}
	}
	seen := make(map[string]struct{}, len(result))
	for _, e := range out {
		seen[e.Value] = struct{}{}
	}
	for _, e := range result {
		if _, dup := seen[e.Value]; dup {
			continue
		}
		seen[e.Value] = struct{}{}
		out = append(out, e)
	}
	return out
}

func containsValue(entries []Entry, value string) bool {
	for _, e := range entries {
		if e.Value == value {
			return true
		}
	}
	return false
}

// sortedTokens returns the query's token variants in lexical order so
// scoring is independent of map iteration.
func sortedTokens(normQuery string) []string {
	set := text.Tokens(normQuery)
	if len(set) == 0 {
		// queries shorter than the tokenizer's minimum still match
		for _, f := range strings.Fields(normQuery) {
			set[f] = struct{}{}
		}
	}
	toks := make([]string, 0, len(set))
	for t := range set {
		toks = append(toks, t)
	}
	sort.Strings(toks)
	return toks
}
