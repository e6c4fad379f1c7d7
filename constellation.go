package dayspark

// Constellation mapping along the zodiac band. The ecliptic crosses thirteen
// constellations with very unequal longitude spans (the IAU boundaries give
// Scorpius barely 7° and Virgo over 43°), and a body with enough ecliptic
// latitude can stray into a handful of neighbors the ecliptic itself never
// touches. Those intruders are tested first as longitude×latitude boxes.

// Constellation is a name plus a short symbol: the astrological glyph for the
// zodiac thirteen, the IAU abbreviation for the intruders.
type Constellation struct {
	Name, Symbol string
}

// Unknown should be unreachable: the zodiac table covers the full circle.
var Unknown = Constellation{"Unknown", "?"}

type intruderBox struct {
	lonMin, lonMax float64
	latLimit       float64
	south          bool // true: match below latLimit, false: above
	c              Constellation
}

// intruders are checked in order before the zodiac table. Boxes are crude
// polygon approximations, good enough for the Moon and planets which stay
// within ~7° of the ecliptic.
var intruders = []intruderBox{
	{5, 25, -3.5, true, Constellation{"Cetus", "Cet"}},
	{83.6, 86.7, -0.9, true, Constellation{"Orion", "Ori"}},
	{86.7, 89.4, 4.3, false, Constellation{"Auriga", "Aur"}},
	{151, 157, -6.3, true, Constellation{"Sextans", "Sex"}},
}

type zodiacBin struct {
	from float64 // inclusive boundary, degrees of ecliptic longitude
	c    Constellation
}

// zodiac holds the IAU-derived boundary longitudes in ascending order.
// A longitude belongs to the bin whose boundary it is greater than or equal
// to; Pisces wraps across 0°.
var zodiac = []zodiacBin{
	{29.09, Constellation{"Aries", "♈"}},
	{53.47, Constellation{"Taurus", "♉"}},
	{90.44, Constellation{"Gemini", "♊"}},
	{118.26, Constellation{"Cancer", "♋"}},
	{138.18, Constellation{"Leo", "♌"}},
	{174.15, Constellation{"Virgo", "♍"}},
	{217.80, Constellation{"Libra", "♎"}},
	{241.14, Constellation{"Scorpius", "♏"}},
	{248.04, Constellation{"Ophiuchus", "⛎"}},
	{266.60, Constellation{"Sagittarius", "♐"}},
	{299.71, Constellation{"Capricornus", "♑"}},
	{327.89, Constellation{"Aquarius", "♒"}},
	{351.57, Constellation{"Pisces", "♓"}},
}

// ConstellationAt maps geocentric ecliptic coordinates to a constellation.
// First matching rule wins.
func ConstellationAt(lon, lat float64) Constellation {
	lon = Wrap360(lon)
	for _, box := range intruders {
		if lon < box.lonMin || lon >= box.lonMax {
			continue
		}
		if box.south && lat < box.latLimit {
			return box.c
		}
		if !box.south && lat > box.latLimit {
			return box.c
		}
	}
	// Pisces wraps the origin.
	if lon >= zodiac[len(zodiac)-1].from || lon < zodiac[0].from {
		return zodiac[len(zodiac)-1].c
	}
	for i := len(zodiac) - 2; i >= 0; i-- {
		if lon >= zodiac[i].from {
			return zodiac[i].c
		}
	}
	return Unknown
}
