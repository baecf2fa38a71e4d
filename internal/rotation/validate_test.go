package rotation

import (
	"math"
	"testing"

	"plane-rotator/internal/mathutil"
)

func TestIsRotationMatrix(t *testing.T) {
	cases := []struct {
		name   string
		m      mathutil.Mat3
		valid  bool
		proper bool
	}{
		{"identity", mathutil.Mat3Identity(), true, true},
		{"rotX", mathutil.RotX(0.7), true, true},
		{"composed", mathutil.Mat3Mul(mathutil.RotZ(1.1), mathutil.RotY(-0.4)), true, true},
		{"zero row", mathutil.Mat3{1, 0, 0, 0, 0, 0, 0, 0, 1}, false, false},
		{"arbitrary", mathutil.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, false, false},
		{"scaled", mathutil.Mat3Identity().Scale(1.001), false, false},
		{"reflection", mathutil.Mat3Diag(-1, 1, 1), true, false},
		{"nan", mathutil.Mat3{math.NaN(), 0, 0, 0, 1, 0, 0, 0, 1}, false, false},
		{"inf", mathutil.Mat3{math.Inf(1), 0, 0, 0, 1, 0, 0, 0, 1}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRotationMatrix(tc.m); got != tc.valid {
				t.Fatalf("IsRotationMatrix = %v, want %v (err %.3g)", got, tc.valid, OrthogonalityError(tc.m))
			}
			if got := IsProperRotation(tc.m); got != tc.proper {
				t.Fatalf("IsProperRotation = %v, want %v", got, tc.proper)
			}
		})
	}
}

func TestOrthogonalityError_Identity(t *testing.T) {
	if e := OrthogonalityError(mathutil.Mat3Identity()); e != 0 {
		t.Fatalf("identity error = %g", e)
	}
}
