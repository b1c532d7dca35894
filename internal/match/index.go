// Package match scores searchable records against free-text queries.
package match

import "github.com/ImComy/Modaresy-sub002/internal/text"

// Entry is one searchable item: the original label plus its
// precomputed matching forms.
type Entry struct {
	// Value identifies the item; results are deduplicated by it.
	Value string
	// Label is the original display label.
	Label string
	// Normalized is the canonical form of Label.
	Normalized string
	// Tokens is the token-variant set of Normalized.
	Tokens map[string]struct{}
	// SortedKey is the token set sorted and joined, for set-overlap
	// substring checks.
	SortedKey string
}

// NewEntry builds an Entry from a label and its identity value.
func NewEntry(value, label string) Entry {
	normalized := text.Normalize(label)
	tokens := text.Tokens(normalized)
	return Entry{
		Value:      value,
		Label:      label,
		Normalized: normalized,
		Tokens:     tokens,
		SortedKey:  text.SortedKey(tokens),
	}
}

// NewIndex builds entries for a label list, using each label as its
// own identity.
func NewIndex(labels []string) []Entry {
	entries := make([]Entry, len(labels))
	for i, l := range labels {
		entries[i] = NewEntry(l, l)
	}
	return entries
}
