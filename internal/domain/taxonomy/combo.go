package taxonomy

import "strings"

// Facet sentinels. "all" means no restriction, "none" means not yet
// selected; narrower facets use "none" so UIs can require a choice.
const (
	All  = "all"
	None = "none"
)

// comboSep joins the three combo fields. Field values must not contain it.
const comboSep = "||"

// Combo bundles the education system, sector and language facets into
// one selectable value so the dependent trio stays in sync.
type Combo struct {
	System   string
	Sector   string
	Language string
}

// AllCombo is the synthetic unrestricted combo.
func AllCombo() Combo {
	return Combo{System: All, Sector: All, Language: All}
}

// EncodeCombo joins the three fields into a selectable value.
// Fields containing the separator cannot round-trip and encode to the
// all sentinel instead.
func EncodeCombo(system, sector, language string) string {
	if system == "" || sector == "" || language == "" {
		return All
	}
	if strings.Contains(system, comboSep) ||
		strings.Contains(sector, comboSep) ||
		strings.Contains(language, comboSep) {
		return All
	}
	return system + comboSep + sector + comboSep + language
}

// Encode returns the combo's selectable value.
func (c Combo) Encode() string {
	return EncodeCombo(c.System, c.Sector, c.Language)
}

// DecodeCombo parses a selectable value. The all sentinel, the empty
// string and any malformed value decode to the all-sentinel triple
// rather than failing.
func DecodeCombo(value string) Combo {
	if value == "" || value == All {
		return AllCombo()
	}
	parts := strings.Split(value, comboSep)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return AllCombo()
	}
	return Combo{System: parts[0], Sector: parts[1], Language: parts[2]}
}
