package dayspark

import (
	"fmt"
	"math"
)

const (
	keplerε       = 1e-6 // radians
	keplerMaxIter = 8    // converges in ≤5 at planetary eccentricities
)

// solveKepler solves M = E - e·sin(E) for the eccentric anomaly E by
// fixed-point iteration, seeded with the first-order series. M in radians.
// Realistic eccentricities (< 0.5) converge in a handful of steps; the
// iteration cap only guards against malformed element tables.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)*(1+e*math.Cos(M))
	for iter := 0; iter < keplerMaxIter; iter++ {
		δ := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= δ
		if math.Abs(δ) < keplerε {
			break
		}
	}
	return E
}

// keplerPosition solves the two-body problem for a planet and refers the
// result to the geocenter: heliocentric position in the orbital plane, a
// 3-1-3 rotation into the ecliptic frame, plus the Earth-Sun vector.
func keplerPosition(el OrbitalElements, d float64) EclipticPosition {
	N, i, w, a, e, M := el.At(d)
	if e >= 1 {
		panic(fmt.Errorf("eccentricity %f is not elliptical", e))
	}

	E := solveKepler(Deg2rad(M), e)

	// position in the orbital plane, AU
	xv := a * (math.Cos(E) - e)
	yv := a * math.Sqrt(1-e*e) * math.Sin(E)

	helio := Orb2Ecl(Deg2rad(N), Deg2rad(i), Deg2rad(w), []float64{xv, yv, 0})

	// geocentric = heliocentric + the Sun's geocentric vector
	sun := sunPosition(d)
	geo := []float64{
		helio[0] + sun.Dist*cosD(sun.Lon),
		helio[1] + sun.Dist*sinD(sun.Lon),
		helio[2],
	}

	r := norm(geo)
	return EclipticPosition{
		Lon:  Wrap360(atan2D(geo[1], geo[0])),
		Lat:  asinD(geo[2] / r),
		Dist: r,
	}
}
