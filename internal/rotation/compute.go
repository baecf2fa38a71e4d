// Package rotation derives the rotation matrix that carries a plane normal
// onto a goal direction, and checks matrices for being rotations.
package rotation

import "plane-rotator/internal/mathutil"

// DefaultGoal is the direction normals are rotated onto when no goal is given.
var DefaultGoal = mathutil.Vec3{0, 0, 1}

// FromNormal is Compute with DefaultGoal.
func FromNormal(normal mathutil.Vec4) mathutil.Mat3 {
	return Compute(normal, DefaultGoal)
}

// Compute returns R such that R × normalize(normal.XYZ()) == goal, using
// Rodrigues' formula R = I + K + K²·(1−c)/s².
//
// goal must be unit length. If the normalized normal equals goal exactly the
// identity is returned. A zero normal, or a normal pointing exactly away
// from goal, produces a non-finite matrix; Solver can resolve the latter.
func Compute(normal mathutil.Vec4, goal mathutil.Vec3) mathutil.Mat3 {
	return rodrigues(normal.XYZ().Normalize(), goal)
}

func rodrigues(n, goal mathutil.Vec3) mathutil.Mat3 {
	identity := mathutil.Mat3Identity()
	if n == goal {
		return identity
	}

	v := n.Cross(goal)
	s := v.Len()
	c := goal.Dot(n)
	k := mathutil.Skew(v)
	k2 := mathutil.Mat3Mul(k, k)

	return identity.Add(k).Add(k2.Scale((1 - c) / (s * s)))
}

// Rotate applies m to v.
func Rotate(v mathutil.Vec3, m mathutil.Mat3) mathutil.Vec3 {
	return m.MulVec3(v)
}
