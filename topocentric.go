package dayspark

import (
	"math"
	"time"
)

// Observer is a geographic location in degrees, east longitude positive.
// No elevation: the horizon dip constant absorbs it at almanac precision.
type Observer struct {
	Latitude, Longitude float64
}

const (
	// HorizonDip is the altitude of the apparent horizon in degrees,
	// refraction plus solar semi-diameter folded into one constant.
	HorizonDip = 0.833
	// CivilTwilightDip is the Sun depression angle bounding civil twilight.
	CivilTwilightDip = 6.0

	// siderealHourDeg is the sky rotation in degrees per clock hour.
	siderealHourDeg = 15.04106864
)

// GMST returns Greenwich Mean Sidereal Time in degrees at d days past
// J2000.0, from the standard linear polynomial.
func GMST(d float64) float64 {
	return Wrap360(280.46061837 + 360.98564736629*d)
}

// LST returns the local sidereal time in degrees.
func LST(t time.Time, lonDeg float64) float64 {
	return Wrap360(GMST(ToEpochDays(t)) + lonDeg)
}

// RiseSet holds the outcome of a rise/set/transit query. A polar-type
// condition leaves Rise and Set at their zero values and tags which of the
// two degeneracies occurred; callers render different messages for each.
type RiseSet struct {
	Rise, Set, Transit    time.Time
	NeverRises, NeverSets bool
}

// Valid returns whether this result carries usable rise and set instants.
func (rs RiseSet) Valid() bool {
	return !rs.NeverRises && !rs.NeverSets
}

// RiseSetTransit solves rise, set and transit for any body from its
// equatorial coordinates. Body agnostic: Sun, Moon and planet callers all
// pass their own coordinate function. dayStart must be the UTC instant of
// local midnight on the target date so that the returned instants land on
// the queried civil day regardless of the offset in force then.
func (obs Observer) RiseSetTransit(eq func(time.Time) EquatorialPosition, dayStart time.Time, dip float64) RiseSet {
	p := eq(dayStart.Add(12 * time.Hour))
	ra := p.RA.Deg()
	dec := p.Dec.Deg()

	gmst0 := GMST(ToEpochDays(dayStart))
	transitH := Wrap360(ra-gmst0-obs.Longitude) / siderealHourDeg

	rs := RiseSet{Transit: dayStart.Add(durHours(transitH))}
	cosH := (sinD(-dip) - sinD(dec)*sinD(obs.Latitude)) / (cosD(dec) * cosD(obs.Latitude))
	switch {
	case cosH > 1:
		rs.NeverRises = true
		return rs
	case cosH < -1:
		rs.NeverSets = true
		return rs
	}

	H := math.Acos(cosH) * rad2deg / siderealHourDeg // hours
	riseH := math.Mod(transitH-H+24, 24)
	setH := math.Mod(transitH+H+24, 24)
	if setH < riseH {
		// the body's arc spans midnight
		setH += 24
	}
	rs.Rise = dayStart.Add(durHours(riseH))
	rs.Set = dayStart.Add(durHours(setH))
	return rs
}

// Altitude returns the altitude of b above the horizon in degrees at t.
// This is the scanning primitive of the event engine.
func (obs Observer) Altitude(b Body, t time.Time) float64 {
	p := b.Equatorial(t)
	dec := p.Dec.Deg()
	H := LST(t, obs.Longitude) - p.RA.Deg()
	return asinD(sinD(obs.Latitude)*sinD(dec) + cosD(obs.Latitude)*cosD(dec)*cosD(H))
}

// Azimuth returns the azimuth of b in degrees at t, 0 = North, clockwise.
func (obs Observer) Azimuth(b Body, t time.Time) float64 {
	p := b.Equatorial(t)
	dec := p.Dec.Deg()
	H := LST(t, obs.Longitude) - p.RA.Deg()
	return Wrap360(atan2D(sinD(H), cosD(H)*sinD(obs.Latitude)-sinD(dec)/cosD(dec)*cosD(obs.Latitude)) + 180)
}

// BodyRiseSet returns rise and set of b on the day starting at dayStart.
// The Moon moves too fast for the closed-form solver to hold across a full
// day, so it falls back to a fixed-cadence altitude scan.
func (obs Observer) BodyRiseSet(b Body, dayStart time.Time) RiseSet {
	if b == Moon {
		return obs.riseSetByScan(b, dayStart, HorizonDip)
	}
	return obs.RiseSetTransit(b.Equatorial, dayStart, HorizonDip)
}

// riseSetByScan samples altitude over the day window and records sign
// changes of altitude + dip, interpolating each crossing linearly.
func (obs Observer) riseSetByScan(b Body, dayStart time.Time, dip float64) RiseSet {
	step := dsConfig().scanStep
	var rs RiseSet

	prev := obs.Altitude(b, dayStart) + dip
	crossed := false
	maxAlt, maxAt := prev, dayStart
	for el := step; el <= 24*time.Hour; el += step {
		t := dayStart.Add(el)
		cur := obs.Altitude(b, t) + dip
		if cur > maxAlt {
			maxAlt, maxAt = cur, t
		}
		if prev <= 0 && cur > 0 && rs.Rise.IsZero() {
			frac := prev / (prev - cur)
			rs.Rise = t.Add(-step).Add(time.Duration(frac * float64(step)))
			crossed = true
		}
		if prev > 0 && cur <= 0 && rs.Set.IsZero() {
			frac := prev / (prev - cur)
			rs.Set = t.Add(-step).Add(time.Duration(frac * float64(step)))
			crossed = true
		}
		prev = cur
	}
	rs.Transit = maxAt
	if !crossed {
		if maxAlt > 0 {
			rs.NeverSets = true
		} else {
			rs.NeverRises = true
		}
	}
	return rs
}

func durHours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
