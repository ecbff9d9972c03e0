package pointsample

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// PlotOptions configures how a sample is plotted.
type PlotOptions struct {
	// Margin in pixels around the domain
	Margin int

	// PointRadius of each plotted point
	PointRadius float64

	Points     color.Color
	Border     color.Color
	Background color.Color
}

// DefaultPlotOptions returns reasonable PlotOptions (red points on white).
func DefaultPlotOptions() *PlotOptions {
	return &PlotOptions{
		Margin:      10,
		PointRadius: 3,
		Points:      colornames.Red,
		Border:      colornames.Lightgray,
		Background:  colornames.White,
	}
}

// FrameFunc receives each frame of an animation in order.
// Returning an error stops the animation.
type FrameFunc func(frame int, im image.Image) error

// plotter draws points incrementally onto a single context
type plotter struct {
	ctx    *gg.Context
	opts   *PlotOptions
	height float64
}

func newPlotter(domain Domain, opts *PlotOptions) *plotter {
	if opts == nil {
		opts = DefaultPlotOptions()
	}
	w := math.Ceil(domain.Width)
	h := math.Ceil(domain.Height)
	m := float64(opts.Margin)

	ctx := gg.NewContext(int(w+2*m), int(h+2*m))
	ctx.SetColor(opts.Background)
	ctx.Clear()
	ctx.SetColor(opts.Border)
	ctx.SetLineWidth(1)
	ctx.DrawRectangle(m, m, w, h)
	ctx.Stroke()

	return &plotter{ctx: ctx, opts: opts, height: h}
}

// draw a single point. y grows upwards, as on a chart.
func (p *plotter) draw(pt Point) {
	m := float64(p.opts.Margin)
	p.ctx.SetColor(p.opts.Points)
	p.ctx.DrawCircle(m+pt.X, m+p.height-pt.Y, p.opts.PointRadius)
	p.ctx.Fill()
}

// snapshot copies the current image, since the context keeps drawing
func (p *plotter) snapshot() image.Image {
	src := p.ctx.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// Plot draws the first n points of the sample (all of them if n is
// out of range) within the domain.
func Plot(sample Sample, domain Domain, n int, opts *PlotOptions) (image.Image, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	if n < 0 || n > len(sample) {
		n = len(sample)
	}
	p := newPlotter(domain, opts)
	for _, pt := range sample[:n] {
		p.draw(pt)
	}
	return p.ctx.Image(), nil
}

// Animate plots the sample in generation order, `step` points at a time,
// handing each frame to fn. The final frame always holds every point; an
// empty sample gives a single empty frame.
func Animate(sample Sample, domain Domain, step int, opts *PlotOptions, fn FrameFunc) error {
	if step < 1 {
		return errors.Wrapf(ErrInvalidParameter, "step %d", step)
	}
	if err := domain.Validate(); err != nil {
		return err
	}

	p := newPlotter(domain, opts)
	if len(sample) == 0 {
		return fn(0, p.snapshot())
	}

	frame := 0
	for i, pt := range sample {
		p.draw(pt)
		if (i+1)%step != 0 && i != len(sample)-1 {
			continue
		}
		if err := fn(frame, p.snapshot()); err != nil {
			return err
		}
		frame++
	}
	return nil
}

// SaveFrames writes each Animate frame as frame_NNNN.png into dir (created
// if required) and returns the number of frames written.
func SaveFrames(dir string, sample Sample, domain Domain, step int, opts *PlotOptions) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	count := 0
	err := Animate(sample, domain, step, opts, func(frame int, im image.Image) error {
		count++
		return savePNG(filepath.Join(dir, fmt.Sprintf("frame_%04d.png", frame)), im)
	})
	return count, err
}
