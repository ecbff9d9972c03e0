package voronoi

import (
	"fmt"
	"image"
)

// Builder collects sites (centres of voronoi cells) within some bounds,
// filtering out any that the diagram can't use.
type Builder struct {
	bounds image.Rectangle
	sites  []image.Point
	sfilt  []SiteFilter
	cfilt  []CandidateFilter
}

// NewBuilder returns a new Voronoi diagram builder
func NewBuilder(bounds image.Rectangle) *Builder {
	return &Builder{
		bounds: bounds,
		sites:  []image.Point{},
	}
}

// SiteCount returns how many sites we've currently got
func (b *Builder) SiteCount() int {
	return len(b.sites)
}

// Voronoi returns the Voronoi diagram given our current sites.
func (b *Builder) Voronoi() (*Voronoi, error) {
	if len(b.sites) == 0 {
		return nil, fmt.Errorf("voronoi diagram requires at least one site")
	}
	if b.bounds.Empty() {
		return nil, fmt.Errorf("voronoi diagram requires non-empty bounds, got %v", b.bounds)
	}
	return newVoronoi(b), nil
}

// SetCandidateFilters sets filters that accept / reject a proposed site without
// reference to other currently set site(s).
func (b *Builder) SetCandidateFilters(f ...CandidateFilter) {
	b.cfilt = f
}

// SetSiteFilters sets filters that compare proposed sites to all current sites.
func (b *Builder) SetSiteFilters(f ...SiteFilter) {
	b.sfilt = f
}

// AddSite places a site at the given location, assuming it obeys currently set filters.
// Returns the ID of the new site.
func (b *Builder) AddSite(x, y int) (int, bool) {
	if !b.accepted(x, y) {
		return 0, false
	}
	id := len(b.sites)
	b.sites = append(b.sites, image.Pt(x, y))
	return id, true
}

// accepted returns if the proposed site (x, y) is acceptable to our filters.
// CandidateFilter(s) run first so we can hopefully reject early.
func (b *Builder) accepted(x, y int) bool {
	for _, fn := range b.cfilt {
		if !fn(x, y) {
			return false
		}
	}
	for _, s := range b.sites {
		for _, fn := range b.sfilt {
			if !fn(x, y, s.X, s.Y) {
				return false
			}
		}
	}
	return true
}
