// Package plane extracts plane normals from equation coefficients or from
// three points on the plane.
package plane

import "plane-rotator/internal/mathutil"

// Plane is ax + by + cz + d = 0 with Normal = (a, b, c).
// Normal is not normalized and may be zero for degenerate input.
type Plane struct {
	Normal mathutil.Vec3
	D      float64
}

// FromEquation takes the coefficients verbatim. d does not affect the normal.
func FromEquation(a, b, c, d float64) Plane {
	return Plane{Normal: mathutil.Vec3{a, b, c}, D: d}
}

// FromCoefficients is FromEquation over a coefficient array.
func FromCoefficients(k [4]float64) Plane {
	return FromEquation(k[0], k[1], k[2], k[3])
}

// FromPoints builds the plane through p1, p2, p3 with
// normal (p2-p1) × (p3-p1). Collinear points give a zero normal.
func FromPoints(p1, p2, p3 mathutil.Vec3) Plane {
	v1 := p2.Sub(p1)
	v2 := p3.Sub(p1)
	n := v1.Cross(v2)
	return Plane{Normal: n, D: -n.Dot(p1)}
}

// Homogeneous returns the normal extended with a zero fourth slot, the form
// the rotation solver consumes.
func (p Plane) Homogeneous() mathutil.Vec4 {
	return mathutil.Vec4{p.Normal[0], p.Normal[1], p.Normal[2], 0}
}

// Degenerate reports whether the normal has zero length.
func (p Plane) Degenerate() bool {
	return p.Normal.Len() == 0
}

// Anchor is the point of the plane closest to the origin.
func (p Plane) Anchor() mathutil.Vec3 {
	l2 := p.Normal.Dot(p.Normal)
	if l2 == 0 {
		return mathutil.Vec3{}
	}
	return p.Normal.Scale(-p.D / l2)
}

// Basis returns two orthonormal in-plane directions u, v with u × v along
// the unit normal. The plane must not be degenerate.
func (p Plane) Basis() (u, v mathutil.Vec3) {
	n := p.Normal.Normalize()
	u = mathutil.AxisLeastAligned(n).Cross(n).Normalize()
	v = n.Cross(u)
	return u, v
}

// Contains reports whether pt satisfies the equation within eps, measured
// as distance from the plane.
func (p Plane) Contains(pt mathutil.Vec3, eps float64) bool {
	l := p.Normal.Len()
	if l == 0 {
		return false
	}
	dist := (p.Normal.Dot(pt) + p.D) / l
	return dist <= eps && dist >= -eps
}
