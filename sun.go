package dayspark

// Approximate solar coordinates, per USNO: a mean longitude and mean anomaly
// linear in the day count, corrected by a two-term equation of center. Good to
// well under an arcminute over a couple of centuries, which is all the almanac
// needs.

// sunMeanAnomaly in degrees at d days past J2000.0.
func sunMeanAnomaly(d float64) float64 {
	return Wrap360(357.529 + 0.98560028*d)
}

// sunPosition returns the geocentric ecliptic position of the Sun. Latitude is
// zero by definition of the ecliptic; distance is in AU.
func sunPosition(d float64) EclipticPosition {
	g := sunMeanAnomaly(d)
	q := 280.459 + 0.98564736*d // mean longitude

	// equation of center, first and second harmonic
	l := q + 1.915*sinD(g) + 0.020*sinD(2*g)
	r := 1.00014 - 0.01671*cosD(g) - 0.00014*cosD(2*g)

	return EclipticPosition{Lon: Wrap360(l), Dist: r}
}
