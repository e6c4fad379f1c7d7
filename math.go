package dayspark

import (
	"math"

	"github.com/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// norm returns the norm of a given vector which is supposed to be 3x1.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// sign returns the sign of a given number.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// Wrap360 wraps an angle in degrees to [0, 360).
func Wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Wrap180 wraps an angle in degrees to (-180, 180].
func Wrap180(a float64) float64 {
	a = Wrap360(a)
	if a > 180 {
		a -= 360
	}
	return a
}

// sinD and friends keep the series formulas readable: almost every published
// coefficient is in degrees.
func sinD(a float64) float64 { return math.Sin(a * deg2rad) }

func cosD(a float64) float64 { return math.Cos(a * deg2rad) }

func asinD(x float64) float64 { return math.Asin(x) * rad2deg }

func atan2D(y, x float64) float64 { return math.Atan2(y, x) * rad2deg }
