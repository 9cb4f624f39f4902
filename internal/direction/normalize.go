package direction

import "math"

// DefaultEpsilon is the minimum magnitude treated as normalizable.
const DefaultEpsilon = 1e-12

// Unit is the result of normalizing a raw vector. When OK is false the
// component fields are unusable, but Magnitude still carries the computed
// value for diagnostics.
type Unit struct {
	X, Y, Z   float64
	Magnitude float64
	OK        bool
}

// Magnitude returns the Euclidean length of v.
func Magnitude(v Vector) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize scales v to unit length. Normalization fails when the magnitude
// is non-finite or below eps; pass eps <= 0 to use DefaultEpsilon.
func Normalize(v Vector, eps float64) Unit {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	mag := Magnitude(v)
	if math.IsInf(mag, 0) || math.IsNaN(mag) || mag < eps {
		return Unit{Magnitude: mag}
	}
	return Unit{
		X:         v.X / mag,
		Y:         v.Y / mag,
		Z:         v.Z / mag,
		Magnitude: mag,
		OK:        true,
	}
}
