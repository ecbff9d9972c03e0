package pointsample

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image at the given path (png, jpeg, gif, bmp or webp).
func LoadImage(fpath string) (image.Image, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	im, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", fpath)
	}
	return im, nil
}

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// toNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	bnds := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && bnds.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(bnds.Sub(bnds.Min))
	draw.Draw(dst, dst.Bounds(), img, bnds.Min, draw.Src)
	return dst
}

// clampInt returns v limited to [lo, hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
