// Package facet derives selectable filter options from the education
// taxonomy. Every derivation degrades to an empty list on sparse or
// mis-shaped reference data; the UI renders disabled filters instead
// of crashing.
package facet

import (
	"sort"

	"github.com/ImComy/Modaresy-sub002/internal/domain"
	"github.com/ImComy/Modaresy-sub002/internal/domain/taxonomy"
)

// AllSystemsLabel is the display label of the synthetic unrestricted combo.
const AllSystemsLabel = "All Systems"

// lastResortLanguages keeps language-less systems selectable when no
// fallback list is configured.
var lastResortLanguages = []string{"Arabic", "English"}

// Option is one selectable facet option.
type Option struct {
	Value string
	Label string
}

// Deriver walks a taxonomy tree. The tree is read-only shared state;
// a Deriver is safe for concurrent readers.
type Deriver struct {
	tree              *taxonomy.Tree
	fallbackLanguages []string
}

// New creates a deriver. fallbackLanguages is used for systems that
// declare no languages of their own; pass nil to use
// lastResortLanguages for such systems.
func New(tree *taxonomy.Tree, fallbackLanguages []string) *Deriver {
	if tree == nil {
		tree = taxonomy.Empty()
	}
	return &Deriver{tree: tree, fallbackLanguages: fallbackLanguages}
}

// Combos returns every selectable system/sector/language bundle,
// beginning with the synthetic all-systems option. Each system yields
// at least one combo: sectorless systems synthesize the General
// sector, and language-less systems fall back to the configured
// default language list.
func (d *Deriver) Combos() []Option {
	out := []Option{{Value: taxonomy.All, Label: AllSystemsLabel}}

	for _, name := range d.tree.SystemNames() {
		sys, _ := d.tree.System(name)

		sectors := sys.Sectors.Flatten()
		if len(sectors) == 0 {
			sectors = []string{domain.SectorGeneral}
		}

		languages := sys.Languages
		if len(languages) == 0 {
			languages = d.fallbackLanguages
		}
		if len(languages) == 0 {
			languages = lastResortLanguages
		}

		for _, sector := range sectors {
			for _, lang := range languages {
				value := taxonomy.EncodeCombo(name, sector, lang)
				if value == taxonomy.All {
					continue
				}
				out = append(out, Option{
					Value: value,
					Label: name + " - " + sector + " - " + lang,
				})
			}
		}
	}
	return out
}

// Systems returns the sorted education system names.
func (d *Deriver) Systems() []string {
	return d.tree.SystemNames()
}

// Sectors returns the union of sectors across every system, sorted.
// Used for reverse lookups from a sector back to candidate systems.
func (d *Deriver) Sectors() []string {
	seen := make(map[string]struct{})
	for _, name := range d.tree.SystemNames() {
		sys, _ := d.tree.System(name)
		for _, s := range sys.Sectors.Flatten() {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// GradesFor returns the grades of a concretely selected system. The
// all/none sentinels and unknown systems yield an empty list.
func (d *Deriver) GradesFor(system string) []string {
	if system == "" || system == taxonomy.All || system == taxonomy.None {
		return nil
	}
	sys, ok := d.tree.System(system)
	if !ok {
		return nil
	}
	return sys.Grades
}

// SubjectsFor returns the subjects for a selected (system, grade) or
// (system, grade, sector) tuple. When the taxonomy keys subjects by
// sector and no concrete sector is selected, it returns empty rather
// than guessing one.
func (d *Deriver) SubjectsFor(system, grade, sector string) []string {
	if !concrete(system) || !concrete(grade) {
		return nil
	}
	sys, ok := d.tree.System(system)
	if !ok {
		return nil
	}

	node := sys.Subjects.Child(grade)
	if node == nil {
		return nil
	}

	switch node.Kind() {
	case taxonomy.KindList:
		return node.Leaves()
	case taxonomy.KindMap:
		if !concrete(sector) {
			return nil
		}
		return node.Child(sector).Leaves()
	}
	return nil
}

func concrete(v string) bool {
	return v != "" && v != taxonomy.All && v != taxonomy.None
}
