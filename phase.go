package dayspark

import (
	"fmt"
	"time"
)

// meanElongationRate is the mean angular rate of the Moon relative to the
// Sun in degrees per day, the corrector of the new-moon search.
const meanElongationRate = 12.1907

// PhaseInfo describes the lunar phase at an instant.
type PhaseInfo struct {
	Angle        float64 // elongation Moon-Sun in [0, 360)
	Illumination float64 // illuminated fraction in [0, 1]
	Name         string  // one of the eight buckets
}

func (p PhaseInfo) String() string {
	return fmt.Sprintf("%s (%.0f%% illuminated)", p.Name, p.Illumination*100)
}

var phaseNames = [8]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Third Quarter",
	"Waning Crescent",
}

// Phase returns the lunar phase at t. The bucket is the nearest 45° segment
// of the phase angle.
func Phase(t time.Time) PhaseInfo {
	d := ToEpochDays(t)
	elong := Wrap360(moonPosition(d).Lon - sunPosition(d).Lon)
	return PhaseInfo{
		Angle:        elong,
		Illumination: (1 - cosD(elong)) / 2,
		Name:         phaseNames[int(elong/45+0.5)%8],
	}
}

// PreviousNewMoon locates the most recent new moon at or before t by
// iteratively correcting a time estimate with the elongation error over the
// mean relative rate. Converges to sub-minute precision within ~5 steps.
func PreviousNewMoon(t time.Time) time.Time {
	d := ToEpochDays(t)
	est := d - elongation(d)/meanElongationRate
	for iter := 0; iter < 8; iter++ {
		err := Wrap180(elongation(est))
		est -= err / meanElongationRate
		if err < 1e-4 && err > -1e-4 {
			break
		}
	}
	return FromEpochDays(est)
}

// MoonAge reports the age of the Moon in whole local calendar days: the
// day-count difference between the query date and the date of the last new
// moon, both truncated to local midnight. This matches naive almanac day
// counting rather than a fractional-day age.
func MoonAge(t time.Time, utcOffsetMin int) int {
	nm := PreviousNewMoon(t)
	return localCalendarDayNumber(t, utcOffsetMin) - localCalendarDayNumber(nm, utcOffsetMin)
}

func elongation(d float64) float64 {
	return Wrap360(moonPosition(d).Lon - sunPosition(d).Lon)
}
