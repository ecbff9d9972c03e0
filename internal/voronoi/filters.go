package voronoi

// CandidateFilter accepts or rejects a proposed site (x, y) based
// purely on the given (x, y).
// These filters are run before SiteFilter(s) which naturally require
// us to iterate each site.
type CandidateFilter func(x, y int) bool

// SiteFilter is a filter for a proposed site (x, y) that is run
// against every current site in the builder.
type SiteFilter func(ax, ay, sx, sy int) bool

// InBounds rejects sites that fall outside of the builder bounds.
func (b *Builder) InBounds() CandidateFilter {
	return func(x, y int) bool {
		return x >= b.bounds.Min.X && x < b.bounds.Max.X && y >= b.bounds.Min.Y && y < b.bounds.Max.Y
	}
}

// Distinct rejects a site that is already present.
// A diagram can't have two cells with the same centre.
func (b *Builder) Distinct() SiteFilter {
	return func(ax, ay, sx, sy int) bool {
		return ax != sx || ay != sy
	}
}
