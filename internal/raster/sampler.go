package raster

import "image"

// SampleTexture reads tex at normalized (u, v) with bilinear filtering.
// Coordinates outside [0, 1] are clamped to the edge texels.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0
	}

	fx := clampUnit(u) * float64(w-1)
	fy := clampUnit(v) * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := min(x0+1, w-1), min(y0+1, h-1)
	dx, dy := fx-float64(x0), fy-float64(y0)

	at := func(x, y int) int { return y*tex.Stride + x*4 }
	i00, i10, i01, i11 := at(x0, y0), at(x1, y0), at(x0, y1), at(x1, y1)

	var out [4]uint8
	for c := 0; c < 4; c++ {
		top := float64(tex.Pix[i00+c])*(1-dx) + float64(tex.Pix[i10+c])*dx
		bot := float64(tex.Pix[i01+c])*(1-dx) + float64(tex.Pix[i11+c])*dx
		out[c] = uint8(top*(1-dy) + bot*dy + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}

func clampUnit(x float64) float64 {
	if x < 0 || x != x {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
