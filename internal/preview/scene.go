// Package preview renders a plane before and after rotation.
package preview

import (
	"errors"
	"image"
	"image/color"

	"plane-rotator/internal/mathutil"
	"plane-rotator/internal/plane"
	"plane-rotator/internal/raster"
)

// ErrDegenerate is returned for planes or matrices that cannot be drawn.
var ErrDegenerate = errors.New("preview: degenerate plane or rotation")

// Scene is what gets drawn: the plane, its rotation and the goal direction.
type Scene struct {
	Plane    plane.Plane
	Rotation mathutil.Mat3
	Goal     mathutil.Vec3
	Texture  *image.NRGBA
}

var (
	patchColor  = color.NRGBA{96, 150, 210, 255}
	normalColor = color.NRGBA{230, 80, 60, 255}
	goalColor   = color.NRGBA{70, 190, 90, 255}
	axisColor   = color.NRGBA{150, 150, 150, 255}
)

const (
	patchHalf   = 1.0
	arrowLen    = 1.6
	arrowWidth  = 0.06
	headLen     = 0.3
	headWidth   = 0.18
	axisLen     = 1.3
	axisWidth   = 0.015
	worldExtent = 4.2
)

// patch is a square of half-size patchHalf centered at the origin, spanned
// by the in-plane basis and mapped through rot.
func patch(p plane.Plane, rot mathutil.Mat3, tex *image.NRGBA) raster.Mesh {
	u, v := p.Basis()
	u, v = rot.MulVec3(u).Scale(patchHalf), rot.MulVec3(v).Scale(patchHalf)
	return raster.Mesh{
		Verts: []mathutil.Vec3{
			u.Neg().Sub(v),
			u.Sub(v),
			u.Add(v),
			u.Neg().Add(v),
		},
		UVs:     [][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
		Tris:    [][3]int{{0, 1, 2}, {0, 2, 3}},
		Color:   patchColor,
		Texture: tex,
	}
}

// arrow is a flat ribbon from the origin along dir, turned to face the
// camera described by view.
func arrow(dir mathutil.Vec3, length, width float64, head bool, c color.NRGBA, view mathutil.Mat3) raster.Mesh {
	d := dir.Normalize()
	toViewer := view.Transpose().MulVec3(mathutil.Vec3{0, 0, 1})
	side := d.Cross(toViewer)
	if side.Len() < 1e-9 {
		// Pointing at the camera: any perpendicular will do.
		side = mathutil.AxisLeastAligned(d).Cross(d)
	}
	side = side.Normalize()

	shaft := length
	if head {
		shaft -= headLen
	}
	w := side.Scale(width / 2)
	tip := d.Scale(shaft)
	m := raster.Mesh{
		Verts: []mathutil.Vec3{w.Neg(), w, tip.Add(w), tip.Sub(w)},
		Tris:  [][3]int{{0, 1, 2}, {0, 2, 3}},
		Color: c,
		Unlit: true,
	}
	if head {
		hw := side.Scale(headWidth / 2)
		m.Verts = append(m.Verts, tip.Sub(hw), tip.Add(hw), d.Scale(length))
		m.Tris = append(m.Tris, [3]int{4, 5, 6})
	}
	return m
}

func axes(view mathutil.Mat3) []raster.Mesh {
	return []raster.Mesh{
		arrow(mathutil.Vec3{1, 0, 0}, axisLen, axisWidth, false, axisColor, view),
		arrow(mathutil.Vec3{0, 1, 0}, axisLen, axisWidth, false, axisColor, view),
		arrow(mathutil.Vec3{0, 0, 1}, axisLen, axisWidth, false, axisColor, view),
	}
}

// Before is the unrotated plane with its normal.
func (s Scene) Before(view mathutil.Mat3) []raster.Mesh {
	n := s.Plane.Normal
	meshes := axes(view)
	meshes = append(meshes,
		patch(s.Plane, mathutil.Mat3Identity(), s.Texture),
		arrow(n, arrowLen, arrowWidth, true, normalColor, view),
	)
	return meshes
}

// After is the rotated plane, the rotated normal and the goal.
func (s Scene) After(view mathutil.Mat3) []raster.Mesh {
	n := s.Rotation.MulVec3(s.Plane.Normal)
	meshes := axes(view)
	meshes = append(meshes,
		patch(s.Plane, s.Rotation, s.Texture),
		// Equal depths keep the first-drawn pixel, so the wider goal arrow
		// only shows around the rotated normal when the two coincide.
		arrow(n, arrowLen, arrowWidth, true, normalColor, view),
		arrow(s.Goal, arrowLen*1.1, arrowWidth*1.8, true, goalColor, view),
	)
	return meshes
}

func (s Scene) validate() error {
	if s.Plane.Degenerate() || !s.Plane.Normal.IsFinite() {
		return ErrDegenerate
	}
	if !s.Rotation.IsFinite() || s.Goal.Len() == 0 || !s.Goal.IsFinite() {
		return ErrDegenerate
	}
	return nil
}
