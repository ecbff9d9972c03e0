package voronoi

import (
	"image"
)

// A Polygon is a closed ring of points, the last point joining the first.
type Polygon struct {
	Points []image.Point
}

// NewPolygon returns a Polygon of the given points, in order around the ring.
func NewPolygon(points []image.Point) *Polygon {
	return &Polygon{Points: points}
}

// Bounds returns the smallest rectangle containing every point of the polygon.
// Nb. unlike the vertices, Max is exclusive.
func (p *Polygon) Bounds() image.Rectangle {
	if len(p.Points) == 0 {
		return image.Rectangle{}
	}

	r := image.Rectangle{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		if pt.X < r.Min.X {
			r.Min.X = pt.X
		} else if pt.X > r.Max.X {
			r.Max.X = pt.X
		}
		if pt.Y < r.Min.Y {
			r.Min.Y = pt.Y
		} else if pt.Y > r.Max.Y {
			r.Max.Y = pt.Y
		}
	}
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}

// IsClosed returns whether the polygon has enough points to enclose anything.
func (p *Polygon) IsClosed() bool {
	return len(p.Points) >= 3
}

// Contains returns whether the polygon contains the given point, via the
// even-odd rule: cast a ray towards +x and count the edges it crosses.
// Points exactly on an edge may land either side.
func (p *Polygon) Contains(point image.Point) bool {
	if !p.IsClosed() {
		return false
	}

	px, py := float64(point.X), float64(point.Y)
	inside := false
	for i, j := 0, len(p.Points)-1; i < len(p.Points); j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		ay, by := float64(a.Y), float64(b.Y)
		if (ay > py) == (by > py) {
			continue
		}
		cross := float64(a.X) + (py-ay)/(by-ay)*float64(b.X-a.X)
		if px < cross {
			inside = !inside
		}
	}
	return inside
}
