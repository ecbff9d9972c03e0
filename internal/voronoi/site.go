package voronoi

import (
	"image"
	"math"
)

// Site exposes useful functions of a voronoi diagram Site
type Site interface {
	ID() int
	X() int
	Y() int

	Edges() [][2]image.Point
	Vertices() []image.Point
	AllContains() PointGenerator
	Bounds() image.Rectangle
}

// PointGenerator returns all points within a Site, in a somewhat
// sane fashion that doesn't involve pre-computing a huge set
type PointGenerator interface {
	Next() *image.Point
}

// vSite is a wrapper around Voronoi & VoronoiCell
type vSite struct {
	id     int
	parent *Voronoi
	cell   *VoronoiCell
	poly   *Polygon
	edges  [][2]image.Point
}

// vPGen satisties PointGenerator by scanning the site bounds row by row.
type vPGen struct {
	bounds image.Rectangle
	poly   *Polygon
	x      int
	y      int
}

// Next return the next point contained in a Site.
// A nil value indicates that there are no more.
func (v *vPGen) Next() *image.Point {
	for ; v.y < v.bounds.Max.Y; v.y++ {
		for ; v.x < v.bounds.Max.X; v.x++ {
			p := image.Pt(v.x, v.y)
			if v.poly.Contains(p) {
				v.x++
				return &p
			}
		}
		v.x = v.bounds.Min.X
	}
	return nil
}

// AllContains returns a PointGenerator for the given site.
// Points are clipped to the diagram bounds.
func (s *vSite) AllContains() PointGenerator {
	bnds := s.Bounds().Intersect(s.parent.bounds)
	return &vPGen{
		bounds: bnds,
		poly:   s.polygon(),
		x:      bnds.Min.X,
		y:      bnds.Min.Y,
	}
}

// ID of this site
func (s *vSite) ID() int {
	return s.id
}

// X value of site centre
func (s *vSite) X() int {
	return int(s.cell.Center.X)
}

// Y value of site centre
func (s *vSite) Y() int {
	return int(s.cell.Center.Y)
}

// polygon lazily builds the polygon from the vertices surrounding the site
func (s *vSite) polygon() *Polygon {
	if s.poly != nil {
		return s.poly
	}

	s.poly = &Polygon{Points: []image.Point{}}
	s.edges = [][2]image.Point{}
	for _, edge := range s.cell.Edges {
		start := image.Pt(int(math.Round(edge[0].X)), int(math.Round(edge[0].Y)))
		end := image.Pt(int(math.Round(edge[1].X)), int(math.Round(edge[1].Y)))

		s.poly.Points = append(s.poly.Points, start)
		s.edges = append(s.edges, [2]image.Point{start, end})
	}
	return s.poly
}

// Edges returns all edges surrounding this site
func (s *vSite) Edges() [][2]image.Point {
	s.polygon()
	return s.edges
}

// Vertices returns all vertexes (through which edges pass) of the site,
// in order around the cell.
func (s *vSite) Vertices() []image.Point {
	return s.polygon().Points
}

// Bounds returns a rectangle that necessarily contains all points in the site
// and more besides.
func (s *vSite) Bounds() image.Rectangle {
	return s.polygon().Bounds()
}
