// Package launcher renders the bouncing-balls launcher icon at every Android
// density bucket. Ball geometry is stored relative to the icon size and
// resolved afresh for each resolution.
package launcher

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/rebroad/androidballs/internal/icon"
	"github.com/rebroad/androidballs/internal/paths"
)

// Ball is a ball position and radius as fractions of the icon size.
type Ball struct {
	X, Y        float64
	RadiusRatio float64
}

// Density is an Android launcher density bucket and its icon size in pixels.
type Density struct {
	Name string
	Size int
}

// Placed is a ball resolved to pixel geometry for one icon size.
type Placed struct {
	X, Y            float64
	Radius          int
	ShadowOffset    int
	HighlightRadius int
	HighlightOffset int
	Color           color.RGBA
}

var (
	Background = color.RGBA{30, 30, 50, 255}
	Shadow     = color.NRGBA{0, 0, 0, 100}
	Highlight  = color.NRGBA{255, 255, 255, 150}

	// Colors are assigned to balls by index, wrapping around.
	Colors = []color.RGBA{
		{255, 100, 100, 255}, // red
		{100, 255, 100, 255}, // green
		{100, 100, 255, 255}, // blue
		{255, 255, 100, 255}, // yellow
		{255, 100, 255, 255}, // magenta
		{100, 255, 255, 255}, // cyan
	}

	Balls = []Ball{
		{0.3, 0.3, 0.15},
		{0.7, 0.4, 0.12},
		{0.4, 0.7, 0.14},
		{0.8, 0.8, 0.11},
		{0.5, 0.5, 0.13},
	}

	Densities = []Density{
		{"mdpi", 48},
		{"hdpi", 72},
		{"xhdpi", 96},
		{"xxhdpi", 144},
		{"xxxhdpi", 192},
	}
)

// FileName returns the output file name for d.
func FileName(d Density) string {
	return paths.LauncherFileName(d.Name)
}

// Scene resolves Balls to pixel geometry for a size×size icon.
func Scene(size int) []Placed {
	s := float64(size)
	placed := make([]Placed, len(Balls))
	for i, b := range Balls {
		r := int(s * b.RadiusRatio)
		placed[i] = Placed{
			X:               s * b.X,
			Y:               s * b.Y,
			Radius:          r,
			ShadowOffset:    max(2, r/8),
			HighlightRadius: r / 3,
			HighlightOffset: r / 4,
			Color:           Colors[i%len(Colors)],
		}
	}
	return placed
}

// Render draws the scene at size×size: background, then for each ball its
// drop shadow, the ball and its highlight.
func Render(size int) *image.RGBA {
	img := icon.NewCanvas(size)
	icon.Fill(img, Background)
	for _, p := range Scene(size) {
		r := float64(p.Radius)
		so := float64(p.ShadowOffset)
		icon.FillEllipse(img, p.X+so, p.Y+so, r, r, Shadow)
		icon.FillEllipse(img, p.X, p.Y, r, r, p.Color)

		hr := float64(p.HighlightRadius)
		ho := float64(p.HighlightOffset)
		icon.FillEllipse(img, p.X+ho, p.Y+ho, hr, hr, Highlight)
	}
	return img
}

// Generate renders every density into dir, creating it first if missing,
// and returns the written paths in Densities order.
func Generate(dir string) ([]string, error) {
	if err := paths.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	written := make([]string, 0, len(Densities))
	for _, d := range Densities {
		p := filepath.Join(dir, FileName(d))
		if err := icon.Save(p, Render(d.Size)); err != nil {
			return written, fmt.Errorf("%s icon: %w", d.Name, err)
		}
		written = append(written, p)
	}
	return written, nil
}
