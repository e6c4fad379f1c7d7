package dayspark

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// Orb2Ecl rotates a vector from the orbital plane frame to the heliocentric
// ecliptic frame via a 3-1-3 sequence over the node, inclination and argument
// of perihelion. From Schaub and Junkins.
func Orb2Ecl(Ω, i, ω float64, v []float64) []float64 {
	v = MxV33(R3(-ω), v)
	v = MxV33(R1(-i), v)
	return MxV33(R3(-Ω), v)
}
