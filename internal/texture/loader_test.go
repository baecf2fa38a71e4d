package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_PNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 1, color.NRGBA{10, 20, 30, 255})
	p := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Fatalf("pixel = %v", got)
	}
}

func TestLoad_TGA(t *testing.T) {
	// 1×1 uncompressed true-color image, BGR order.
	data := []byte{
		0, 0, 2, // id length, no color map, uncompressed true-color
		0, 0, 0, 0, 0, // color map spec
		0, 0, 0, 0, // origin
		1, 0, 1, 0, // width, height
		24, 0x20, // bpp, top-left origin
		30, 20, 10,
	}
	p := filepath.Join(t.TempDir(), "tex.tga")
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatal(err)
	}
	img, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Fatalf("pixel = %v", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
	p := filepath.Join(dir, "tex.bmp")
	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for unknown extension")
	}
}

func TestToNRGBA_Offset(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 7, 6))
	src.SetGray(6, 5, color.Gray{200})
	dst := ToNRGBA(src)
	if dst.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds = %v", dst.Bounds())
	}
	if got := dst.NRGBAAt(1, 0); got != (color.NRGBA{200, 200, 200, 255}) {
		t.Fatalf("pixel = %v", got)
	}
}
