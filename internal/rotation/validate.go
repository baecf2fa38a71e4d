package rotation

import (
	"math"

	"plane-rotator/internal/mathutil"
)

const (
	// OrthogonalityTolerance bounds ‖MᵗM − I‖ for IsRotationMatrix.
	OrthogonalityTolerance = 1e-10

	// DeterminantTolerance bounds |det M − 1| for IsProperRotation.
	DeterminantTolerance = 1e-9
)

// OrthogonalityError is the Frobenius distance between MᵗM and I.
// NaN for non-finite input.
func OrthogonalityError(m mathutil.Mat3) float64 {
	return mathutil.Mat3Mul(m.Transpose(), m).Distance(mathutil.Mat3Identity())
}

// IsRotationMatrix reports whether m is orthogonal within
// OrthogonalityTolerance. Reflections (det = −1) also pass; use
// IsProperRotation to reject them.
func IsRotationMatrix(m mathutil.Mat3) bool {
	return OrthogonalityError(m) < OrthogonalityTolerance
}

// IsProperRotation is IsRotationMatrix plus det(m) ≈ +1.
func IsProperRotation(m mathutil.Mat3) bool {
	return IsRotationMatrix(m) && math.Abs(m.Det()-1) < DeterminantTolerance
}
