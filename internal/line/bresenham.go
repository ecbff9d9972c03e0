package line

import (
	"image"
)

// Plotter receives each pixel along a line.
type Plotter func(x, y int)

// Bresenham calls plot for every pixel on the line from a to b, both ends
// included, using integer error accumulation (works in all octants).
func Bresenham(a, b image.Point, plot Plotter) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)

	err := dx + dy
	x, y := a.X, a.Y
	for {
		plot(x, y)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// PointsBetween returns all points on a line between a,b
func PointsBetween(a, b image.Point) []image.Point {
	pts := []image.Point{}
	Bresenham(a, b, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
