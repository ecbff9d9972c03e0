package voronoi

import (
	"image"

	"github.com/unixpickle/model3d/model2d"
)

// repairEpsilon is how close two cell vertices must be to be merged
const repairEpsilon = 1e-8

// Voronoi is a bounded voronoi diagram over a set of integer sites.
type Voronoi struct {
	cells  VoronoiDiagram
	sites  []Site
	bounds image.Rectangle
}

// newVoronoi clips one convex polytope per builder site to the bounds,
// repairs shared vertices, then wraps each cell as a Site keeping the
// builder's site order (so site IDs match AddSite IDs).
func newVoronoi(b *Builder) *Voronoi {
	centres := make([]model2d.Coord, len(b.sites))
	for i, s := range b.sites {
		centres[i] = toCoord(s)
	}

	cells := VoronoiCells(toCoord(b.bounds.Min), toCoord(b.bounds.Max), centres)
	cells.Repair(repairEpsilon)

	v := &Voronoi{cells: cells, bounds: b.bounds, sites: make([]Site, len(cells))}
	for i, cell := range cells {
		v.sites[i] = &vSite{id: i, cell: cell, parent: v}
	}
	return v
}

// toCoord converts a pixel to model2d's float co-ords
func toCoord(p image.Point) model2d.Coord {
	return model2d.Coord{X: float64(p.X), Y: float64(p.Y)}
}

// Bounds returns the rectangle the diagram is clipped to.
func (v *Voronoi) Bounds() image.Rectangle {
	return v.bounds
}

// Sites returns every site, indexed by ID.
func (v *Voronoi) Sites() []Site {
	return v.sites
}

// SiteByID returns the site with the given ID, or nil if there isn't one.
func (v *Voronoi) SiteByID(id int) Site {
	if id < 0 || id >= len(v.sites) {
		return nil
	}
	return v.sites[id]
}

// SiteFor returns the site whose cell holds the pixel (x, y), ie. the
// nearest site. Ties go to the lowest ID.
func (v *Voronoi) SiteFor(x, y int) Site {
	var (
		pick Site
		best int
	)
	for _, site := range v.sites {
		dx, dy := site.X()-x, site.Y()-y
		if d := dx*dx + dy*dy; pick == nil || d < best {
			pick, best = site, d
		}
	}
	return pick
}

// Render writes a debug image of the diagram (sites & cell edges) to a png.
func (v *Voronoi) Render(fpath string) error {
	return v.cells.Render(fpath)
}
