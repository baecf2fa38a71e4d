package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"plane-rotator/internal/mathutil"
)

func TestNewFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	if len(fb.Color) != 4*3*4 || len(fb.ZBuf) != 12 {
		t.Fatalf("sizes: color=%d z=%d", len(fb.Color), len(fb.ZBuf))
	}
	for _, z := range fb.ZBuf {
		if !math.IsInf(z, -1) {
			t.Fatalf("z init = %v", z)
		}
	}
	fb.Fill(color.NRGBA{1, 2, 3, 4})
	img := fb.Image()
	if got := img.NRGBAAt(3, 2); got != (color.NRGBA{1, 2, 3, 4}) {
		t.Fatalf("fill = %v", got)
	}
}

func TestRasterizeTriangle_DepthTest(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	lc := Unlit()
	quad := func(z float64, c color.NRGBA) {
		a := [3]mathutil.Vec3{{0, 0, z}, {16, 0, z}, {16, 16, z}}
		b := [3]mathutil.Vec3{{0, 0, z}, {16, 16, z}, {0, 16, z}}
		RasterizeTriangle(fb, a, [3][2]float64{}, nil, c, &lc)
		RasterizeTriangle(fb, b, [3][2]float64{}, nil, c, &lc)
	}
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}

	quad(1, red)
	quad(0, blue) // behind, must not overwrite
	img := fb.Image()
	if got := img.NRGBAAt(8, 8); got != red {
		t.Fatalf("center = %v, want red", got)
	}

	quad(2, blue)
	img = fb.Image()
	if got := img.NRGBAAt(8, 8); got != blue {
		t.Fatalf("center = %v, want blue", got)
	}
}

func TestRasterizeTriangle_SkipsDegenerate(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	lc := DefaultLightConfig()
	nan := math.NaN()
	RasterizeTriangle(fb, [3]mathutil.Vec3{{0, 0, 0}, {nan, 0, 0}, {0, 8, 0}}, [3][2]float64{}, nil, color.NRGBA{255, 255, 255, 255}, &lc)
	RasterizeTriangle(fb, [3]mathutil.Vec3{{0, 0, 0}, {4, 4, 0}, {8, 8, 0}}, [3][2]float64{}, nil, color.NRGBA{255, 255, 255, 255}, &lc)
	for _, b := range fb.Color {
		if b != 0 {
			t.Fatal("degenerate triangle wrote pixels")
		}
	}
}

func TestRasterizeTriangle_Lit(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	lc := DefaultLightConfig()
	gray := color.NRGBA{128, 128, 128, 255}
	RasterizeTriangle(fb, [3]mathutil.Vec3{{0, 0, 0}, {8, 0, 0}, {0, 8, 0}}, [3][2]float64{}, nil, gray, &lc)
	got := fb.Image().NRGBAAt(1, 1)
	if got.A != 255 || got.R == 0 {
		t.Fatalf("lit pixel = %v", got)
	}
}

func TestSampleTexture(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{200, 100, 50, 255})

	cases := []struct {
		u    float64
		want uint8
	}{
		{0, 0},
		{1, 200},
		{0.5, 100},
		{-3, 0},
		{7, 200},
	}
	for _, tc := range cases {
		r, _, _, a := SampleTexture(tex, tc.u, 0)
		if r != tc.want || a != 255 {
			t.Fatalf("SampleTexture(u=%v) r=%d a=%d, want r=%d", tc.u, r, a, tc.want)
		}
	}
}

func TestRender_CentersContent(t *testing.T) {
	sq := Mesh{
		Verts: []mathutil.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}},
		Tris:  [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 9, 1}},
		Color: color.NRGBA{255, 255, 255, 255},
		Unlit: true,
	}
	img := Render([]Mesh{sq}, View{Rot: mathutil.Mat3Identity(), Size: 32, Margin: 4})
	if got := img.NRGBAAt(16, 16); got != sq.Color {
		t.Fatalf("center = %v", got)
	}
	if got := img.NRGBAAt(1, 1); got.A != 0 {
		t.Fatalf("margin pixel drawn: %v", got)
	}
}

func TestRender_Empty(t *testing.T) {
	bg := color.NRGBA{10, 20, 30, 255}
	img := Render(nil, View{Rot: mathutil.Mat3Identity(), Size: 8, Background: bg})
	if img.Bounds().Dx() != 8 || img.NRGBAAt(4, 4) != bg {
		t.Fatalf("empty render = %v at %v", img.Bounds(), img.NRGBAAt(4, 4))
	}
}
