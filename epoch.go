package dayspark

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// J2000 is the Julian date of the J2000.0 epoch, the zero of the
	// continuous day count every series formula runs on.
	J2000 = 2451545.0

	// elementsEpochOffset relates the orbital element tables (referenced to
	// 2000 Jan 0.0, JD 2451543.5) to the J2000.0 day count.
	elementsEpochOffset = 1.5
)

// ToEpochDays converts an instant to fractional days since J2000.0.
func ToEpochDays(t time.Time) float64 {
	return julian.TimeToJD(t.UTC()) - J2000
}

// FromEpochDays converts fractional days since J2000.0 back to an instant.
func FromEpochDays(d float64) time.Time {
	return julian.JDToTime(d + J2000)
}

// LocalDayStart returns the UTC instant of local midnight for the given civil
// date and UTC offset in minutes. All day windows of the engine start there.
func LocalDayStart(year int, month time.Month, day, utcOffsetMin int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Add(-time.Duration(utcOffsetMin) * time.Minute)
}

// localCalendarDayNumber returns the Julian day number of the local calendar
// date containing t. Whole-day almanac arithmetic (moon age) counts these.
func localCalendarDayNumber(t time.Time, utcOffsetMin int) int {
	lt := t.UTC().Add(time.Duration(utcOffsetMin) * time.Minute)
	y, m, d := lt.Date()
	return int(julian.CalendarGregorianToJD(y, int(m), float64(d)) + 0.5)
}
