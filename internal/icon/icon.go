// Package icon holds the raster primitives shared by the icon generators:
// canvas creation, uniform fills, anti-aliased ellipses and PNG output.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/rebroad/androidballs/internal/paths"
)

// kappa places cubic Bézier control points so four arcs approximate a
// quarter ellipse each.
const kappa = 0.5522847498

// NewCanvas returns a transparent size×size RGBA image.
func NewCanvas(size int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

// Fill replaces every pixel of img with c.
func Fill(img draw.Image, c color.Color) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillEllipse composites a filled ellipse centered at (cx, cy) with radii
// rx, ry over the existing pixels. Parts outside the canvas are clipped.
func FillEllipse(img draw.Image, cx, cy, rx, ry float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	pt := func(x, y float64) (float32, float32) {
		return float32(x - ox), float32(y - oy)
	}
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(pt(cx+rx, cy))
	cubeTo(z, pt, cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	cubeTo(z, pt, cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	cubeTo(z, pt, cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	cubeTo(z, pt, cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()

	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

func cubeTo(z *vector.Rasterizer, pt func(x, y float64) (float32, float32), x1, y1, x2, y2, x3, y3 float64) {
	ax, ay := pt(x1, y1)
	bx, by := pt(x2, y2)
	dx, dy := pt(x3, y3)
	z.CubeTo(ax, ay, bx, by, dx, dy)
}

// FillBox composites the ellipse inscribed in the box (x0, y0)-(x1, y1).
func FillBox(img draw.Image, x0, y0, x1, y1 float64, c color.Color) {
	FillEllipse(img, (x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2, c)
}

// Encode returns img as PNG bytes. The encoder is deterministic, so equal
// images always encode to equal bytes.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Save encodes img as PNG and writes it to path atomically, creating the
// parent directory if needed.
func Save(path string, img image.Image) error {
	data, err := Encode(img)
	if err != nil {
		return err
	}
	if err := paths.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
