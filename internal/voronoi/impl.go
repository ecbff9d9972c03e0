package voronoi

import (
	"image/color"
	"math"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// Cell construction & repair after
// https://github.com/unixpickle/voronoi-glass/blob/main/voronoi.go
// with edges ordered so they walk around the cell.

// VoronoiCell is a single cell: its centre (site) and bounding edges.
type VoronoiCell struct {
	Center model2d.Coord
	Edges  []*model2d.Segment
}

// VoronoiDiagram is every cell in a diagram
type VoronoiDiagram []*VoronoiCell

// VoronoiCells computes the voronoi cells for a list of distinct
// coordinates, all contained within the box min-max.
// Each cell is the box cut by the perpendicular bisector between its
// centre and every other centre.
//
// Adjacent edges' coordinates may differ slightly due to
// rounding errors. See VoronoiDiagram.Repair().
func VoronoiCells(min, max model2d.Coord, coords []model2d.Coord) VoronoiDiagram {
	cells := make(VoronoiDiagram, len(coords))
	for i, c := range coords {
		constraints := model2d.NewConvexPolytopeRect(min, max)
		for j, other := range coords {
			if i == j {
				continue
			}
			normal := other.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(c.Mid(other)),
			})
		}
		cells[i] = &VoronoiCell{
			Center: c,
			Edges:  constraints.Mesh().SegmentSlice(),
		}
	}
	return cells
}

// Repair merges coordinates within epsilon of each other so that
// neighbouring cells share vertices exactly, drops edges that collapse to a
// point, then orders each cell's edges end to start.
func (v VoronoiDiagram) Repair(epsilon float64) {
	seen := map[model2d.Coord]bool{}
	coords := []model2d.Coord{}
	for _, cell := range v {
		for _, s := range cell.Edges {
			for _, p := range s {
				if !seen[p] {
					seen[p] = true
					coords = append(coords, p)
				}
			}
		}
	}
	tree := model2d.NewCoordTree(coords)

	// seen[c] == true means c is still its own canonical coord
	mapping := map[model2d.Coord]model2d.Coord{}
	for _, c := range coords {
		if !seen[c] {
			continue
		}
		for _, n := range neighborsInDistance(tree, c, epsilon) {
			if seen[n] {
				seen[n] = false
				mapping[n] = c
			}
		}
	}

	for _, cell := range v {
		for i := 0; i < len(cell.Edges); i++ {
			edge := cell.Edges[i]
			for j, c := range edge {
				if m, ok := mapping[c]; ok {
					edge[j] = m
				}
			}
			if edge[0] == edge[1] {
				essentials.UnorderedDelete(&cell.Edges, i)
				i--
			}
		}
		cell.orderEdges()
	}
}

// orderEdges sorts edges so each starts where the last ended.
// Cells whose edges don't chain are left as they are.
func (c *VoronoiCell) orderEdges() {
	if len(c.Edges) == 0 {
		return
	}

	starts := map[model2d.Coord]*model2d.Segment{}
	for _, e := range c.Edges {
		starts[e[0]] = e
	}

	ordered := make([]*model2d.Segment, 0, len(c.Edges))
	ordered = append(ordered, c.Edges[0])
	for len(ordered) < len(c.Edges) {
		next, ok := starts[ordered[len(ordered)-1][1]]
		if !ok {
			return
		}
		ordered = append(ordered, next)
	}

	c.Edges = ordered
}

// Render rasterizes the diagram (edges red, sites blue) to a png at path.
func (v VoronoiDiagram) Render(path string) error {
	mesh := model2d.NewMesh()
	for _, cell := range v {
		mesh.AddMesh(model2d.NewMeshSegments(cell.Edges))
	}
	size := mesh.Max().Sub(mesh.Min())
	maxSize := math.Max(size.X, size.Y)

	sites := model2d.JoinedSolid{}
	for _, cell := range v {
		sites = append(sites, &model2d.Circle{
			Center: cell.Center,
			Radius: math.Max(2, maxSize/200),
		})
	}

	bg := model2d.NewRect(mesh.Min(), mesh.Max())
	return model2d.RasterizeColor(path, []interface{}{
		bg,
		model2d.IntersectedSolid{sites.Optimize(), bg},
		mesh,
	}, []color.Color{
		color.Gray{Y: 0xff},
		color.RGBA{B: 0xff, A: 0xff},
		color.RGBA{R: 0xff, A: 0xff},
	}, 1.0)
}

// neighborsInDistance returns all coords in tree within epsilon of c
// (c itself included).
func neighborsInDistance(tree *model2d.CoordTree, c model2d.Coord, epsilon float64) []model2d.Coord {
	for k := 2; ; k++ {
		neighbors := tree.KNN(k, c)
		if len(neighbors) < k {
			return neighbors
		}
		if neighbors[len(neighbors)-1].Dist(c) > epsilon {
			return neighbors[:len(neighbors)-1]
		}
	}
}
