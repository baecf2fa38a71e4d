package raster

import (
	"math"

	"plane-rotator/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters. Directions are in
// screen space (x right, y down, z towards the viewer).
type LightConfig struct {
	LightDir  mathutil.Vec3
	RimDir    mathutil.Vec3
	HalfMain  mathutil.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient   float64
	Direct    float64
	Rim       float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
	Flat      bool // draw colors as given
}

// DefaultLightConfig is a key light from the upper left and a weak rim
// light from behind.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{-0.4, -0.6, 0.7}.Normalize()
	rimDir := mathutil.Vec3{0.5, 0.3, -0.8}.Normalize()
	viewDir := mathutil.Vec3{0, 0, 1}

	halfMain := lightDir.Add(viewDir).Normalize()

	return LightConfig{
		LightDir:  lightDir,
		RimDir:    rimDir,
		HalfMain:  halfMain,
		Ambient:   0.45,
		Direct:    0.85,
		Rim:       0.25,
		SpecInt:   0.20,
		SpecPow:   16.0,
		Exposure:  1.0,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// Unlit draws colors as given, without shading or tone mapping.
// Used for arrows.
func Unlit() LightConfig {
	return LightConfig{Flat: true}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	// Blinn-Phong specular
	ndh := math.Abs(normal.Dot(lc.HalfMain))
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
