package mathutil

// Preview camera matrices.
var (
	// IsoView looks down on the scene from above-front: Rx(-55°) @ Rz(-30°).
	// With it the +Z axis points up-screen and slightly towards the viewer.
	IsoView = Mat3Mul(RotX(Deg2Rad(-55)), RotZ(Deg2Rad(-30)))

	// FlipY converts math Y-up to image Y-down: diag(1, -1, 1)
	FlipY = Mat3Diag(1, -1, 1)

	// PreviewView is the full world-to-screen rotation used by the preview.
	PreviewView = Mat3Mul(FlipY, IsoView)
)

// AxisLeastAligned returns the basis axis with the smallest absolute
// component in v. Crossing v with it never yields a zero vector for v != 0.
func AxisLeastAligned(v Vec3) Vec3 {
	ax, ay, az := abs(v[0]), abs(v[1]), abs(v[2])
	switch {
	case ax <= ay && ax <= az:
		return Vec3{1, 0, 0}
	case ay <= az:
		return Vec3{0, 1, 0}
	default:
		return Vec3{0, 0, 1}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
