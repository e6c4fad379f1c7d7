package dayspark

import (
	"fmt"
	"strings"
	"time"
)

// Body enumerates every object the engine computes. The set is closed: the
// almanac knows nothing about arbitrary bodies, so asking for the position of
// anything else is a bug, not a runtime condition.
type Body uint8

const (
	// Sun is our closest star.
	Sun Body = iota + 1
	// Moon is the only natural satellite modeled, with its own series.
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	// Pluto is not a planet and had that down ranking coming, but the deep
	// astrology tables still want it.
	Pluto
	// Chiron is a centaur between Saturn and Uranus, astrology only.
	Chiron
	// Node is the mean ascending lunar node, a point rather than a body.
	Node
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	case Pluto:
		return "Pluto"
	case Chiron:
		return "Chiron"
	case Node:
		return "Node"
	default:
		panic(fmt.Errorf("unknown body %d", uint8(b)))
	}
}

// BodyFromString returns the body from its name.
func BodyFromString(name string) (Body, error) {
	for b := Sun; b <= Node; b++ {
		if strings.EqualFold(b.String(), name) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("undefined body '%s'", name)
}

// Planets returns the classical planets, Mercury through Neptune.
func Planets() []Body {
	return []Body{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}
}

// OrbitalElements defines heliocentric Keplerian elements as linear functions
// of the day count: value at the table epoch plus a rate per day. Angles in
// degrees, semi-major axis in AU.
type OrbitalElements struct {
	N, Nr float64 // longitude of the ascending node
	I, Ir float64 // inclination to the ecliptic
	W, Wr float64 // argument of perihelion
	A, Ar float64 // semi-major axis
	E, Er float64 // eccentricity
	M, Mr float64 // mean anomaly
}

// At evaluates the elements at d days past J2000.0. The table itself is
// referenced to 2000 Jan 0.0, hence the fixed offset.
func (el OrbitalElements) At(d float64) (N, i, w, a, e, M float64) {
	d += elementsEpochOffset
	N = Wrap360(el.N + el.Nr*d)
	i = el.I + el.Ir*d
	w = Wrap360(el.W + el.Wr*d)
	a = el.A + el.Ar*d
	e = el.E + el.Er*d
	M = Wrap360(el.M + el.Mr*d)
	return
}

// planetElements holds the constant element tables, one record per Keplerian
// body. Values follow Schlyter's low-precision set, adequate at almanac
// accuracy across 1900-2100. Loaded once, never mutated.
var planetElements = map[Body]OrbitalElements{
	Mercury: {48.3313, 3.24587e-5, 7.0047, 5.00e-8, 29.1241, 1.01444e-5, 0.387098, 0, 0.205635, 5.59e-10, 168.6562, 4.0923344368},
	Venus:   {76.6799, 2.46590e-5, 3.3946, 2.75e-8, 54.8910, 1.38374e-5, 0.723330, 0, 0.006773, -1.302e-9, 48.0052, 1.6021302244},
	Mars:    {49.5574, 2.11081e-5, 1.8497, -1.78e-8, 286.5016, 2.92961e-5, 1.523688, 0, 0.093405, 2.516e-9, 18.6021, 0.5240207766},
	Jupiter: {100.4542, 2.76854e-5, 1.3030, -1.557e-7, 273.8777, 1.64505e-5, 5.20256, 0, 0.048498, 4.469e-9, 19.8950, 0.0830853001},
	Saturn:  {113.6634, 2.38980e-5, 2.4886, -1.081e-7, 339.3939, 2.97661e-5, 9.55475, 0, 0.055546, -9.499e-9, 316.9670, 0.0334442282},
	Uranus:  {74.0005, 1.3978e-5, 0.7733, 1.9e-8, 96.6612, 3.0565e-5, 19.18171, -1.55e-8, 0.047318, 7.45e-9, 142.5905, 0.011725806},
	Neptune: {131.7806, 3.0173e-5, 1.7700, -2.55e-7, 272.8461, -6.027e-6, 30.05826, 3.313e-8, 0.008606, 2.15e-9, 260.2471, 0.005995147},
	Pluto:   {110.30347, 0, 17.14175, 0, 113.76329, 0, 39.48169, 0, 0.24880766, 0, 14.86205, 0.00396},
	Chiron:  {209.29, 0, 6.9352, 0, 339.35, 0, 13.6702, 0, 0.38310, 0, 52.06, 0.01953},
}

// Position returns the geocentric ecliptic position of b at the given instant.
// Sun and Moon use dedicated series, the Node a linear regression formula, and
// everything else the Keplerian machinery.
func (b Body) Position(t time.Time) EclipticPosition {
	d := ToEpochDays(t)
	switch b {
	case Sun:
		return sunPosition(d)
	case Moon:
		return moonPosition(d)
	case Node:
		return nodePosition(d)
	default:
		el, ok := planetElements[b]
		if !ok {
			panic(fmt.Errorf("no orbital elements for %s", b))
		}
		return keplerPosition(el, d)
	}
}

// Equatorial returns the geocentric equatorial position of b at t.
func (b Body) Equatorial(t time.Time) EquatorialPosition {
	return b.Position(t).ToEquatorial()
}

// nodePosition is the mean longitude of the Moon's ascending node. It sits on
// the ecliptic so its latitude is identically zero.
func nodePosition(d float64) EclipticPosition {
	return EclipticPosition{Lon: Wrap360(125.1228 - 0.0529538083*(d+elementsEpochOffset))}
}
