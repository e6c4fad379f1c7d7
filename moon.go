package dayspark

// Truncated lunar theory, Meeus Ch. 47 dominant terms. The fundamental
// arguments are linear in the day count; longitude carries the five largest
// periodic corrections, latitude four, distance three. Positions land within
// a few arcminutes, distance within a couple hundred km.

// Fundamental arguments, all in degrees at d days past J2000.0.

// moonMeanLongitude L'.
func moonMeanLongitude(d float64) float64 {
	return Wrap360(218.3164477 + 13.17639648*d)
}

// moonElongation D, Moon minus Sun.
func moonElongation(d float64) float64 {
	return Wrap360(297.8501921 + 12.19074912*d)
}

// moonMeanAnomaly M'.
func moonMeanAnomaly(d float64) float64 {
	return Wrap360(134.9633964 + 13.06499295*d)
}

// moonArgLatitude F, the argument of latitude.
func moonArgLatitude(d float64) float64 {
	return Wrap360(93.2720950 + 13.22935024*d)
}

// moonPosition returns the geocentric ecliptic position of the Moon.
// Distance is in kilometers, unlike the planets (AU): the only consumer of
// lunar distance is apsis detection, which only cares about the trend.
func moonPosition(d float64) EclipticPosition {
	L := moonMeanLongitude(d)
	D := moonElongation(d)
	Mp := moonMeanAnomaly(d)
	F := moonArgLatitude(d)
	Ms := sunMeanAnomaly(d)

	lon := L +
		6.289*sinD(Mp) + // equation of center
		1.274*sinD(2*D-Mp) + // evection
		0.658*sinD(2*D) + // variation
		-0.186*sinD(Ms) + // annual equation
		0.214*sinD(2*Mp) // second-order center

	lat := 5.128*sinD(F) +
		0.2806*sinD(Mp+F) +
		0.2777*sinD(Mp-F) +
		0.1732*sinD(2*D-F)

	dist := 385000.56 -
		20905.355*cosD(Mp) -
		3699.111*cosD(2*D-Mp) -
		2955.968*cosD(2*D)

	return EclipticPosition{Lon: Wrap360(lon), Lat: lat, Dist: dist}
}
