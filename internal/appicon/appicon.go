// Package appicon draws the single 512×512 application icon: two nested
// discs on a cornflower-blue square with the label centered on top.
package appicon

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rebroad/androidballs/internal/fonts"
	"github.com/rebroad/androidballs/internal/icon"
)

const (
	Size        = 512
	Text        = "SDL"
	FontName    = "DejaVuSans-Bold.ttf"
	FontSize    = 200
	OuterMargin = 32
	InnerMargin = 64
)

var (
	Background = color.RGBA{100, 149, 237, 255} // cornflower blue
	Ring       = color.RGBA{255, 255, 255, 255}
	TextColor  = color.RGBA{255, 255, 255, 255}
)

// Result describes a generated icon file.
type Result struct {
	Path     string
	Fallback bool // true when the built-in face replaced FontName
}

// Compose renders the icon with face used for the label.
func Compose(face font.Face) *image.RGBA {
	img := icon.NewCanvas(Size)
	icon.Fill(img, Background)
	icon.FillBox(img, OuterMargin, OuterMargin, Size-OuterMargin, Size-OuterMargin, Ring)
	icon.FillBox(img, InnerMargin, InnerMargin, Size-InnerMargin, Size-InnerMargin, Background)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(TextColor),
		Face: face,
		Dot:  TextOrigin(face, Text, Size),
	}
	d.DrawString(Text)
	return img
}

// TextOrigin returns the baseline origin that puts the midpoint of text's
// ink bounding box on the center of a size×size canvas.
func TextOrigin(face font.Face, text string, size int) fixed.Point26_6 {
	b, _ := font.BoundString(face, text)
	w := b.Max.X - b.Min.X
	h := b.Max.Y - b.Min.Y
	return fixed.Point26_6{
		X: (fixed.I(size)-w)/2 - b.Min.X,
		Y: (fixed.I(size)-h)/2 - b.Min.Y,
	}
}

// Generate loads the label font from fontDirs, falling back to the built-in
// face, renders the icon and writes it to path.
func Generate(path string, fontDirs []string) (Result, error) {
	face, ok := fonts.Load(FontName, FontSize, fontDirs)
	if ok {
		defer face.Close()
	}
	if err := icon.Save(path, Compose(face)); err != nil {
		return Result{}, fmt.Errorf("app icon: %w", err)
	}
	return Result{Path: path, Fallback: !ok}, nil
}
