// Package fonts loads a preferred TrueType/OpenType face by file name and
// falls back to the built-in bitmap face when it cannot be used.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DPI is fixed at 72 so that a face's size in points equals its size in pixels.
const DPI = 72

// SearchDirs are the directories tried, in order, when looking up a font file
// by name. The working directory comes first.
var SearchDirs = []string{
	".",
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/dejavu",
	"/usr/share/fonts/TTF",
	"/usr/share/fonts/truetype",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	`C:\Windows\Fonts`,
}

// Default is the face used when the preferred font is unavailable.
func Default() font.Face {
	return basicfont.Face7x13
}

// Find returns the first regular file named name inside dirs.
func Find(name string, dirs []string) (string, bool) {
	if filepath.IsAbs(name) {
		if isFile(name) {
			return name, true
		}
		return "", false
	}
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if isFile(p) {
			return p, true
		}
	}
	return "", false
}

// Open parses the font file at path into a face of the given pixel size.
func Open(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s: %w", path, err)
	}
	return face, nil
}

// Load looks up name in dirs and opens it at size. Any failure (missing,
// unreadable or unparsable file) yields Default() and false; Load never
// returns an error.
func Load(name string, size float64, dirs []string) (font.Face, bool) {
	p, ok := Find(name, dirs)
	if !ok {
		return Default(), false
	}
	face, err := Open(p, size)
	if err != nil {
		return Default(), false
	}
	return face, true
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
