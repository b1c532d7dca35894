package modaresy

import (
	"context"

	"github.com/ImComy/Modaresy-sub002/internal/facet"
)

// FacetService derives selectable filter options from the education
// taxonomy. The taxonomy is fetched once per session and cached; pass
// force to Refresh to re-fetch.
type FacetService struct {
	client *Client
}

// Refresh fetches the taxonomy, bypassing the session cache when force
// is set. Other FacetService calls load lazily, so calling Refresh
// first is optional.
func (f *FacetService) Refresh(ctx context.Context, force bool) error {
	_, err := f.client.taxoRepo.Load(ctx, force)
	return err
}

// Combos returns every selectable system/sector/language bundle,
// beginning with the unrestricted all-systems option. On a taxonomy
// load failure the error is returned alongside the degraded (empty)
// derivation, so callers can render disabled filters and retry later.
func (f *FacetService) Combos(ctx context.Context) ([]FacetOption, error) {
	d, err := f.deriver(ctx)
	return fromOptions(d.Combos()), err
}

// Systems returns the sorted education system names.
func (f *FacetService) Systems(ctx context.Context) ([]string, error) {
	d, err := f.deriver(ctx)
	return d.Systems(), err
}

// Sectors returns the union of sectors across every system, sorted.
func (f *FacetService) Sectors(ctx context.Context) ([]string, error) {
	d, err := f.deriver(ctx)
	return d.Sectors(), err
}

// GradesFor returns the grades of a concretely selected system;
// sentinels and unknown systems yield an empty list.
func (f *FacetService) GradesFor(ctx context.Context, system string) ([]string, error) {
	d, err := f.deriver(ctx)
	return d.GradesFor(system), err
}

// SubjectsFor returns the subjects of a selected (system, grade,
// sector) tuple. When the taxonomy keys subjects by sector and no
// concrete sector is selected, the list is empty rather than guessed.
func (f *FacetService) SubjectsFor(ctx context.Context, system, grade, sector string) ([]string, error) {
	d, err := f.deriver(ctx)
	return d.SubjectsFor(system, grade, sector), err
}

// deriver always returns a usable deriver; on load failure it walks
// the empty tree and passes the error through.
func (f *FacetService) deriver(ctx context.Context) (*facet.Deriver, error) {
	tree, err := f.client.taxoRepo.Load(ctx, false)
	return facet.New(tree, f.client.fallbackLanguages), err
}
