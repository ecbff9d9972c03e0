package pointsample

import (
	"image"
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Point is a single location within a Domain.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Ceil returns the point with both coordinates rounded up to the next integer.
func (p Point) Ceil() Point {
	return Point{X: math.Ceil(p.X), Y: math.Ceil(p.Y)}
}

// ImagePoint truncates the point to pixel co-ords.
func (p Point) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// Distance standard pythag.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Domain is the rectangle [0, Width] x [0, Height] that points are placed in.
type Domain struct {
	Width  float64
	Height float64
}

// Validate returns ErrInvalidDomain if either side is not a positive, finite number.
func (d Domain) Validate() error {
	for _, v := range []float64{d.Width, d.Height} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidDomain, "domain %gx%g", d.Width, d.Height)
		}
	}
	return nil
}

// Contains returns if p sits within the domain, edges included.
func (d Domain) Contains(p Point) bool {
	return p.X >= 0 && p.X <= d.Width && p.Y >= 0 && p.Y <= d.Height
}

// Bounds returns the smallest pixel rectangle covering the domain.
func (d Domain) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(math.Ceil(d.Width)), int(math.Ceil(d.Height)))
}

// randomPoint picks a point uniformly in [0, Width) x [0, Height).
func (d Domain) randomPoint(rng *rand.Rand) Point {
	return Point{X: below(rng.Float64()*d.Width, d.Width), Y: below(rng.Float64()*d.Height, d.Height)}
}

// below keeps v under max; f*max can round up to max for f just under 1.
func below(v, max float64) float64 {
	if v >= max {
		return math.Nextafter(max, 0)
	}
	return v
}

// Sample is an ordered set of points, in the order they were generated.
// The order is handy for animation but otherwise carries no meaning.
type Sample []Point

// Len returns the number of points.
func (s Sample) Len() int {
	return len(s)
}

// At returns the i'th generated point.
func (s Sample) At(i int) Point {
	return s[i]
}

// Points returns a copy of the underlying points.
func (s Sample) Points() []Point {
	out := make([]Point, len(s))
	copy(out, s)
	return out
}

// Quantize returns a new sample with every coordinate rounded up (ceiling)
// to an integer, ie. snapped onto the pixel grid.
func (s Sample) Quantize() Sample {
	out := make(Sample, len(s))
	for i, p := range s {
		out[i] = p.Ceil()
	}
	return out
}

// ImagePoints returns the sample as (x, y) index pairs suitable for pixel
// lookup or feeding into a voronoi diagram.
func (s Sample) ImagePoints() []image.Point {
	out := make([]image.Point, len(s))
	for i, p := range s {
		out[i] = p.ImagePoint()
	}
	return out
}

// MinDistance returns the smallest distance between any two points.
// Samples with fewer than two points return +Inf.
func (s Sample) MinDistance() float64 {
	best := math.Inf(1)
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if d := Distance(s[i], s[j]); d < best {
				best = d
			}
		}
	}
	return best
}

// Bounds returns the smallest pixel rectangle containing all points.
func (s Sample) Bounds() image.Rectangle {
	if len(s) == 0 {
		return image.Rect(0, 0, 0, 0)
	}
	x0, y0 := s[0].X, s[0].Y
	x1, y1 := x0, y0
	for _, p := range s[1:] {
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}
