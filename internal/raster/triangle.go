package raster

import (
	"image"
	"image/color"
	"math"

	"plane-rotator/internal/mathutil"
)

// RasterizeTriangle fills a screen-space triangle with z-buffering and flat
// shading. Vertices are (x, y, depth) with larger depth closer to the viewer.
// If tex is non-nil it is sampled at the interpolated uv, otherwise col is
// used.
func RasterizeTriangle(
	fb *FrameBuffer,
	p [3]mathutil.Vec3,
	uv [3][2]float64,
	tex *image.NRGBA,
	col color.NRGBA,
	lc *LightConfig,
) {
	x0, y0, z0 := p[0][0], p[0][1], p[0][2]
	x1, y1, z1 := p[1][0], p[1][1], p[1][2]
	x2, y2, z2 := p[2][0], p[2][1], p[2][2]

	for _, v := range p {
		if !v.IsFinite() {
			return
		}
	}

	// Face normal for flat shading
	n := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
	if n.Len() < 1e-8 {
		return
	}
	n = n.Normalize()

	shade := 1.0
	if !lc.Flat {
		shade = lc.ComputeShade(n)
	}

	// Bounding box
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			c := col
			if tex != nil {
				u := w0*uv[0][0] + w1*uv[1][0] + w2*uv[2][0]
				v := w0*uv[0][1] + w1*uv[1][1] + w2*uv[2][1]
				c.R, c.G, c.B, c.A = SampleTexture(tex, u, v)
			}

			// Skip transparent texels
			if c.A < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx+3] = c.A
			if lc.Flat {
				fb.Color[pxIdx] = c.R
				fb.Color[pxIdx+1] = c.G
				fb.Color[pxIdx+2] = c.B
				continue
			}
			fb.Color[pxIdx] = lc.tone(c.R, shade)
			fb.Color[pxIdx+1] = lc.tone(c.G, shade)
			fb.Color[pxIdx+2] = lc.tone(c.B, shade)
		}
	}
}

// tone maps one sRGB channel through linear space, shading and ACES.
func (lc *LightConfig) tone(ch uint8, shade float64) uint8 {
	lin := srgbToLinear[ch] * shade * lc.Exposure
	return clamp255(math.Pow(ACESTonemap(lin), lc.InvGamma) * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
