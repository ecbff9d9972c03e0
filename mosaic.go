package pointsample

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/voidshard/pointsample/internal/line"
	"github.com/voidshard/pointsample/internal/voronoi"
)

// ColourMode decides how a mosaic cell picks its colour.
type ColourMode int

const (
	// ColourCentre uses the source pixel under the cell's site
	ColourCentre ColourMode = iota

	// ColourMean uses the average of every source pixel in the cell
	ColourMean
)

// MosaicOptions configures Mosaic.
type MosaicOptions struct {
	// Colouring of each cell
	Colouring ColourMode

	// Opacity of cell fills, 0-1
	Opacity float64

	// Background shows through where fills are translucent
	Background color.Color

	// Outline colour for cell edges, no outlines drawn if nil
	Outline color.Color
}

// DefaultMosaicOptions returns reasonable MosaicOptions.
func DefaultMosaicOptions() *MosaicOptions {
	return &MosaicOptions{
		Colouring:  ColourCentre,
		Opacity:    0.88,
		Background: colornames.White,
	}
}

// Mosaic colours the voronoi diagram of the sample's points using the
// source image. Points are used as pixel co-ords: a point sitting exactly on
// the far edge of the image (as ceiling quantization can produce) is pulled
// back onto the last pixel; other points outside of the image & duplicates
// are dropped.
func Mosaic(sample Sample, src image.Image, opts *MosaicOptions) (image.Image, error) {
	if opts == nil {
		opts = DefaultMosaicOptions()
	}

	img := toNRGBA(src)
	bnds := img.Bounds()

	graph, err := diagram(sample, bnds)
	if err != nil {
		return nil, err
	}
	logf("mosaic: %d cells from %d points", len(graph.Sites()), len(sample))

	ctx := gg.NewContext(bnds.Dx(), bnds.Dy())
	ctx.SetColor(opts.Background)
	ctx.Clear()

	alpha := clampInt(int(opts.Opacity*255), 0, 255)
	for _, site := range graph.Sites() {
		verts := site.Vertices()
		if len(verts) < 3 {
			continue
		}

		var col color.NRGBA
		switch opts.Colouring {
		case ColourMean:
			col = meanColour(img, site)
		default:
			col = img.NRGBAAt(site.X(), site.Y())
		}

		ctx.NewSubPath()
		ctx.MoveTo(float64(verts[0].X), float64(verts[0].Y))
		for _, v := range verts[1:] {
			ctx.LineTo(float64(v.X), float64(v.Y))
		}
		ctx.ClosePath()
		ctx.SetRGBA255(int(col.R), int(col.G), int(col.B), alpha)
		ctx.Fill()
	}

	if opts.Outline != nil {
		ctx.SetColor(opts.Outline)
		for _, site := range graph.Sites() {
			for _, e := range site.Edges() {
				line.Bresenham(e[0], e[1], ctx.SetPixel)
			}
		}
	}

	return ctx.Image(), nil
}

// SaveMosaic writes the Mosaic of the sample over src to a png at fpath.
func SaveMosaic(fpath string, sample Sample, src image.Image, opts *MosaicOptions) error {
	im, err := Mosaic(sample, src, opts)
	if err != nil {
		return err
	}
	return savePNG(fpath, im)
}

// meanColour averages all pixels within the site. Sites too thin to
// contain a whole pixel use the pixel under the site.
func meanColour(img *image.NRGBA, site voronoi.Site) color.NRGBA {
	var r, g, b, a, n int
	gen := site.AllContains()
	for p := gen.Next(); p != nil; p = gen.Next() {
		c := img.NRGBAAt(p.X, p.Y)
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		a += int(c.A)
		n++
	}
	if n == 0 {
		return img.NRGBAAt(site.X(), site.Y())
	}
	return color.NRGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: uint8(a / n)}
}

// PointRegions returns for each point of the sample the index of the
// voronoi cell (within bounds) it belongs to. Duplicate points share a cell,
// points outside of bounds get -1.
func PointRegions(sample Sample, bounds image.Rectangle) ([]int, error) {
	graph, err := diagram(sample, bounds)
	if err != nil {
		return nil, err
	}

	regions := make([]int, len(sample))
	for i, p := range sample {
		ip, ok := snapToBounds(p, bounds)
		if !ok {
			regions[i] = -1
			continue
		}
		regions[i] = graph.SiteFor(ip.X, ip.Y).ID()
	}
	return regions, nil
}

// RenderVoronoi writes a debug image of the sample's voronoi diagram
// (within bounds) to a png at fpath.
func RenderVoronoi(fpath string, sample Sample, bounds image.Rectangle) error {
	graph, err := diagram(sample, bounds)
	if err != nil {
		return err
	}
	return graph.Render(fpath)
}

// diagram builds the voronoi diagram of the sample's points within bnds.
func diagram(sample Sample, bnds image.Rectangle) (*voronoi.Voronoi, error) {
	if len(sample) == 0 {
		return nil, errors.Wrap(ErrNoSampleAvailable, "voronoi of empty sample")
	}

	b := voronoi.NewBuilder(bnds)
	b.SetCandidateFilters(b.InBounds())
	b.SetSiteFilters(b.Distinct())
	for _, p := range sample {
		ip, _ := snapToBounds(p, bnds)
		b.AddSite(ip.X, ip.Y)
	}
	if b.SiteCount() == 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "no sample points fall within bounds %v", bnds)
	}
	return b.Voronoi()
}

// snapToBounds converts p to pixel co-ords, pulling a point exactly on the
// far edge (as ceiling quantization can produce) back onto the last pixel.
// Returns false if the result is still outside of bnds.
func snapToBounds(p Point, bnds image.Rectangle) (image.Point, bool) {
	ip := p.ImagePoint()
	if ip.X == bnds.Max.X {
		ip.X--
	}
	if ip.Y == bnds.Max.Y {
		ip.Y--
	}
	return ip, ip.In(bnds)
}
