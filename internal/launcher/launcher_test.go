package launcher

import (
	"bytes"
	"crypto/sha256"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rebroad/androidballs/internal/icon"
)

func TestDensityTable(t *testing.T) {
	want := []Density{
		{"mdpi", 48}, {"hdpi", 72}, {"xhdpi", 96}, {"xxhdpi", 144}, {"xxxhdpi", 192},
	}
	if len(Densities) != len(want) {
		t.Fatalf("len(Densities) = %d, want %d", len(Densities), len(want))
	}
	for i, d := range want {
		if Densities[i] != d {
			t.Errorf("Densities[%d] = %+v, want %+v", i, Densities[i], d)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(Density{"xhdpi", 96}); got != "ic_launcher_xhdpi.png" {
		t.Errorf("FileName = %q", got)
	}
}

func TestSceneAlwaysFiveBalls(t *testing.T) {
	for _, d := range Densities {
		if n := len(Scene(d.Size)); n != 5 {
			t.Errorf("Scene(%d) has %d balls, want 5", d.Size, n)
		}
	}
}

func TestSceneGeometry(t *testing.T) {
	tests := []struct {
		size     int
		radius   []int
		shadow   []int
		hlRadius []int
		hlOffset []int
	}{
		{48, []int{7, 5, 6, 5, 6}, []int{2, 2, 2, 2, 2}, []int{2, 1, 2, 1, 2}, []int{1, 1, 1, 1, 1}},
		{192, []int{28, 23, 26, 21, 24}, []int{3, 2, 3, 2, 3}, []int{9, 7, 8, 7, 8}, []int{7, 5, 6, 5, 6}},
	}
	for _, tt := range tests {
		for i, p := range Scene(tt.size) {
			if p.Radius != tt.radius[i] {
				t.Errorf("Scene(%d)[%d].Radius = %d, want %d", tt.size, i, p.Radius, tt.radius[i])
			}
			if p.ShadowOffset != tt.shadow[i] {
				t.Errorf("Scene(%d)[%d].ShadowOffset = %d, want %d", tt.size, i, p.ShadowOffset, tt.shadow[i])
			}
			if p.HighlightRadius != tt.hlRadius[i] {
				t.Errorf("Scene(%d)[%d].HighlightRadius = %d, want %d", tt.size, i, p.HighlightRadius, tt.hlRadius[i])
			}
			if p.HighlightOffset != tt.hlOffset[i] {
				t.Errorf("Scene(%d)[%d].HighlightOffset = %d, want %d", tt.size, i, p.HighlightOffset, tt.hlOffset[i])
			}
		}
	}
}

func TestSceneColorsCycleByIndex(t *testing.T) {
	for i, p := range Scene(96) {
		if p.Color != Colors[i%len(Colors)] {
			t.Errorf("ball %d color = %v, want %v", i, p.Color, Colors[i%len(Colors)])
		}
	}
}

func TestRenderSizes(t *testing.T) {
	for _, d := range Densities {
		b := Render(d.Size).Bounds()
		if b.Dx() != d.Size || b.Dy() != d.Size {
			t.Errorf("Render(%d) bounds = %v", d.Size, b)
		}
	}
}

func TestRenderBallsAndBackground(t *testing.T) {
	for _, d := range Densities {
		img := Render(d.Size)
		if got := img.RGBAAt(0, 0); got != Background {
			t.Errorf("%s: corner = %v, want background %v", d.Name, got, Background)
		}
		scene := Scene(d.Size)
		// Sample up-left of center, away from the highlight.
		for _, i := range []int{0, 4} {
			p := scene[i]
			x := int(p.X) - p.Radius/2
			y := int(p.Y) - p.Radius/2
			if got := img.RGBAAt(x, y); got != p.Color {
				t.Errorf("%s: ball %d at (%d,%d) = %v, want %v", d.Name, i, x, y, got, p.Color)
			}
		}
	}
}

func TestRenderShadowAndHighlight(t *testing.T) {
	img := Render(192)

	// Below-right of ball 3, outside the ball but inside its shadow.
	sh := img.RGBAAt(169, 169)
	if sh.A != 255 || sh.R >= Background.R || sh.B >= Background.B {
		t.Errorf("shadow pixel = %v, want darker than %v", sh, Background)
	}

	// Highlight of ball 0 lightens the red ball.
	hl := img.RGBAAt(64, 64)
	if hl.R != 255 || hl.G <= 150 {
		t.Errorf("highlight pixel = %v, want red lightened towards white", hl)
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, d := range Densities {
		a, err := icon.Encode(Render(d.Size))
		if err != nil {
			t.Fatal(err)
		}
		b, err := icon.Encode(Render(d.Size))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("Render(%d) not deterministic", d.Size)
		}
	}
}

func TestGenerateCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "icon_physics_demo_tmp")
	written, err := Generate(dir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(written) != len(Densities) {
		t.Fatalf("wrote %d files, want %d", len(written), len(Densities))
	}
	for i, d := range Densities {
		want := filepath.Join(dir, FileName(d))
		if written[i] != want {
			t.Errorf("written[%d] = %q, want %q", i, written[i], want)
		}
		f, err := os.Open(want)
		if err != nil {
			t.Errorf("%s: %v", d.Name, err)
			continue
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("%s: decode: %v", d.Name, err)
			continue
		}
		if cfg.Width != d.Size || cfg.Height != d.Size {
			t.Errorf("%s: %dx%d, want %dx%d", d.Name, cfg.Width, cfg.Height, d.Size, d.Size)
		}
	}
}

func TestGenerateStableHashes(t *testing.T) {
	hashes := func() map[string][32]byte {
		dir := t.TempDir()
		if _, err := Generate(dir); err != nil {
			t.Fatal(err)
		}
		m := make(map[string][32]byte)
		for _, d := range Densities {
			data, err := os.ReadFile(filepath.Join(dir, FileName(d)))
			if err != nil {
				t.Fatal(err)
			}
			m[d.Name] = sha256.Sum256(data)
		}
		return m
	}
	first, second := hashes(), hashes()
	for name, h := range first {
		if second[name] != h {
			t.Errorf("%s: hash changed between runs", name)
		}
	}
}

func TestGenerateFailsWhenDirIsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(p, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(p); err == nil {
		t.Error("expected error when the output dir is a regular file")
	}
}
