//go:build !tinygo

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"tivagc/lcd"
)

func TestRenderEveryScene(t *testing.T) {
	for _, name := range sceneNames() {
		img, err := render(name, &lcd.Config{}, 1)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		lit := 0
		for i := 0; i < len(img.Pix); i += 4 {
			if img.Pix[i]|img.Pix[i+1]|img.Pix[i+2] != 0 {
				lit++
			}
		}
		if lit == 0 {
			t.Fatalf("%s: blank frame", name)
		}
	}
}

func TestRenderScaled(t *testing.T) {
	img, err := render("palette", &lcd.Config{Stroke: lcd.StrokeCentered}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 264 || b.Dy() != 264 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := render("nope", nil, 1); err == nil {
		t.Fatal("expected unknown scene error")
	}
	if _, err := render("text", nil, 0); err == nil {
		t.Fatal("expected scale error")
	}
}

func TestWritePNG(t *testing.T) {
	img, err := render("lines", nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatal(err)
	}
}
