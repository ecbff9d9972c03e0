package pointsample

import (
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/pkg/errors"
)

const (
	// maxGridCells caps the background grid regardless of configured limits
	maxGridCells = 1 << 24

	// cells allowed per permitted point before we refuse to build a grid
	cellsPerPoint = 8
)

// grid is a background acceleration grid for Bridson sampling.
// Cells are sized so that no two points at least `r` apart can share one,
// so each cell holds at most one point. Occupancy is a bitmap with one bit per
// cell; an occupied cell's slot is the index of its point in pts.
type grid struct {
	cell float64
	cols int
	rows int
	used bitmap.Bitmap
	slot []int32
	pts  []Point
}

// newGrid returns a grid covering the domain for points `r` apart.
func newGrid(d Domain, r float64, maxPoints int) (*grid, error) {
	// a hair under r/sqrt(2) so that rounding can't let two valid points share a cell
	cell := r / (math.Sqrt2 + 1e-9)

	cols := math.Floor(d.Width/cell) + 1
	rows := math.Floor(d.Height/cell) + 1
	cells := cols * rows

	if cells > maxGridCells || (maxPoints > 0 && cells > float64(maxPoints)*cellsPerPoint) {
		return nil, errors.Wrapf(
			ErrResourceExhausted,
			"min distance %g over %gx%g needs %.0f grid cells",
			r, d.Width, d.Height, cells,
		)
	}

	return &grid{
		cell: cell,
		cols: int(cols),
		rows: int(rows),
		used: bitmap.New(int(cells)),
		slot: make([]int32, int(cells)),
	}, nil
}

// index returns the column & row of the cell containing p
func (g *grid) index(p Point) (int, int) {
	cx := clampInt(int(p.X/g.cell), 0, g.cols-1)
	cy := clampInt(int(p.Y/g.cell), 0, g.rows-1)
	return cx, cy
}

// insert records p in its cell.
func (g *grid) insert(p Point) {
	cx, cy := g.index(p)
	i := cy*g.cols + cx
	g.used.Set(i, true)
	g.slot[i] = int32(len(g.pts))
	g.pts = append(g.pts, p)
}

// near returns if any recorded point is closer than r to p.
// Anything within r is at most two cells away in each direction.
func (g *grid) near(p Point, r float64) bool {
	cx, cy := g.index(p)
	for y := clampInt(cy-2, 0, g.rows-1); y <= clampInt(cy+2, 0, g.rows-1); y++ {
		for x := clampInt(cx-2, 0, g.cols-1); x <= clampInt(cx+2, 0, g.cols-1); x++ {
			i := y*g.cols + x
			if g.used.Get(i) && Distance(g.pts[g.slot[i]], p) < r {
				return true
			}
		}
	}
	return false
}
