package raster

import (
	"image"
	"image/color"
	"math"

	"plane-rotator/internal/mathutil"
)

// Mesh is a triangle list in world space.
type Mesh struct {
	Verts   []mathutil.Vec3
	UVs     [][2]float64 // optional, parallel to Verts
	Tris    [][3]int
	Color   color.NRGBA
	Texture *image.NRGBA
	Unlit   bool
}

// View describes how world coordinates reach the screen.
type View struct {
	Rot        mathutil.Mat3 // world → screen rotation (x right, y down, z to viewer)
	Size       int           // output is Size×Size
	Margin     int
	Span       float64 // world extent mapped onto Size-2*Margin; 0 fits to content
	Background color.NRGBA
}

// Render rasterizes meshes into a Size×Size image. Meshes are centered on
// the bounding box of all transformed vertices.
func Render(meshes []Mesh, v View) *image.NRGBA {
	fb := NewFrameBuffer(v.Size, v.Size)
	fb.Fill(v.Background)

	// Bounding box of all transformed vertices
	allMin := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, m := range meshes {
		for _, p := range m.Verts {
			tv := v.Rot.MulVec3(p)
			if !tv.IsFinite() {
				continue
			}
			for k := 0; k < 3; k++ {
				allMin[k] = math.Min(allMin[k], tv[k])
				allMax[k] = math.Max(allMax[k], tv[k])
			}
		}
	}
	if math.IsInf(allMin[0], 1) {
		return fb.Image()
	}

	center := allMin.Add(allMax).Scale(0.5)
	span := v.Span
	if span <= 0 {
		span = math.Max(allMax[0]-allMin[0], allMax[1]-allMin[1])
	}
	if span < 0.001 {
		span = 0.001
	}
	scale := float64(v.Size-2*v.Margin) / span
	half := float64(v.Size) / 2

	project := func(p mathutil.Vec3) mathutil.Vec3 {
		tv := v.Rot.MulVec3(p).Sub(center)
		return mathutil.Vec3{tv[0]*scale + half, tv[1]*scale + half, tv[2]}
	}

	lit := DefaultLightConfig()
	unlit := Unlit()
	for _, m := range meshes {
		lc := &lit
		if m.Unlit {
			lc = &unlit
		}
		screen := make([]mathutil.Vec3, len(m.Verts))
		for i, p := range m.Verts {
			screen[i] = project(p)
		}
		for _, tri := range m.Tris {
			var pts [3]mathutil.Vec3
			var uv [3][2]float64
			ok := true
			for k, idx := range tri {
				if idx < 0 || idx >= len(screen) {
					ok = false
					break
				}
				pts[k] = screen[idx]
				if idx < len(m.UVs) {
					uv[k] = m.UVs[idx]
				}
			}
			if !ok {
				continue
			}
			RasterizeTriangle(fb, pts, uv, m.Texture, m.Color, lc)
		}
	}

	return fb.Image()
}
