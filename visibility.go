package dayspark

import (
	"fmt"
	"time"
)

// Planet observability classification. The labels below are part of the
// output contract and must not be reworded.

// PlanetVisibility pairs a planet with its rendered observability line.
// An empty description means the classification degenerated (e.g. the planet
// never rises for this observer) and the entry should be omitted.
type PlanetVisibility struct {
	Body        Body
	Description string
}

// classifyVisibility buckets a planet's night visibility from its rise/set,
// the Sun's rise/set and the Sun-planet elongation. clock renders an instant
// as a local wall-clock string.
func classifyVisibility(rs, sun RiseSet, elongation float64, clock func(time.Time) string) string {
	if elongation < dsConfig().elongationLimit {
		return "not visible — too close to the Sun"
	}
	if !rs.Valid() || !sun.Valid() {
		// no usable geometry on polar-type days
		return ""
	}

	sunset := sun.Set
	nextSunrise := sun.Rise.Add(24 * time.Hour)
	halfNight := sunset.Add(nextSunrise.Sub(sunset) / 2)
	margin := dsConfig().twilightMargin

	// The solver pins rise and set to the queried civil day; the pair
	// recurs near-daily, so project it forward until it overlaps tonight's
	// dark window.
	rise, set := rs.Rise, rs.Set
	for set.Before(sunset) {
		rise = rise.Add(24 * time.Hour)
		set = set.Add(24 * time.Hour)
	}

	switch {
	case rise.After(nextSunrise):
		return "not visible — up during the day"
	case set.After(nextSunrise) && rise.Before(sunset.Add(time.Hour)):
		return "visible all night"
	case set.After(nextSunrise) && rise.Before(halfNight):
		return "visible most of the night"
	case set.Before(nextSunrise) && !rise.After(sunset):
		desc := fmt.Sprintf("visible tonight (sets %s)", clock(set))
		if set.Sub(sunset) <= margin {
			desc += " (difficult)"
		}
		return desc
	case rise.After(sunset) && rise.Before(nextSunrise):
		desc := fmt.Sprintf("visible in the morning (rises %s)", clock(rise))
		if nextSunrise.Sub(rise) <= margin {
			desc += " (difficult)"
		}
		return desc
	default:
		return "not visible — up during the day"
	}
}
