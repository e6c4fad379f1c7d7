package dayspark

import (
	"fmt"

	"github.com/soniakeys/unit"
)

// Obliquity of the ecliptic in degrees. Treated as a constant: its secular
// drift is below a degree per century, invisible at almanac precision.
const Obliquity = 23.4393

// EclipticPosition is a geocentric position in the ecliptic frame. Longitude
// in [0, 360) and latitude in degrees. Dist is populated only where a caller
// needs it (AU for Sun and planets, km for the Moon, zero otherwise).
type EclipticPosition struct {
	Lon, Lat, Dist float64
}

func (p EclipticPosition) String() string {
	return fmt.Sprintf("λ=%.4f β=%.4f", p.Lon, p.Lat)
}

// EquatorialPosition is a geocentric position in the equatorial frame. It is
// never stored: always derived from an EclipticPosition.
type EquatorialPosition struct {
	RA  unit.RA
	Dec unit.Angle
}

func (p EquatorialPosition) String() string {
	return fmt.Sprintf("α=%.4f δ=%.4f", p.RA.Deg(), p.Dec.Deg())
}

// ToEquatorial rotates the position about the vernal axis by the obliquity.
func (p EclipticPosition) ToEquatorial() EquatorialPosition {
	v := []float64{
		cosD(p.Lat) * cosD(p.Lon),
		cosD(p.Lat) * sinD(p.Lon),
		sinD(p.Lat),
	}
	v = MxV33(R1(-Obliquity*deg2rad), v)
	return EquatorialPosition{
		RA:  unit.RAFromDeg(atan2D(v[1], v[0])),
		Dec: unit.AngleFromDeg(asinD(v[2])),
	}
}
