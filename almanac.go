package dayspark

import (
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// CivilDate is a calendar date with no time-of-day attached.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// SunTimes are the Sun's instants for the day, including civil twilight.
type SunTimes struct {
	RiseSet
	Dawn, Dusk time.Time
}

// MoonInfo gathers the day's lunar facts.
type MoonInfo struct {
	RiseSet       RiseSet
	Phase         PhaseInfo
	Age           int // whole calendar days since new moon
	Constellation Constellation
}

// DailyAlmanac is the result of a single query: a fresh, independent value
// with no shared state, so queries may run in parallel without coordination.
type DailyAlmanac struct {
	Date             CivilDate
	Observer         Observer
	UTCOffsetMinutes int
	Sun              SunTimes
	Moon             MoonInfo
	Planets          []PlanetVisibility
	Events           []Event
}

// Almanac computes daily almanacs for one observer and offset convention.
// The host resolves time zone and location; the engine only consumes the
// numeric offset in force on the queried date.
type Almanac struct {
	Observer         Observer
	UTCOffsetMinutes int
	Features         Features
	logger           kitlog.Logger
}

// New returns an Almanac with a logfmt logger on stdout.
func New(obs Observer, utcOffsetMin int, f Features) *Almanac {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "subsys", "almanac")
	return &Almanac{Observer: obs, UTCOffsetMinutes: utcOffsetMin, Features: f, logger: klog}
}

// SetLogger should be called prior to any computation to take effect.
func (a *Almanac) SetLogger(l kitlog.Logger) {
	a.logger = l
}

// Compute runs the full daily query: sun and moon times, lunar phase and
// placement, planet visibility, and the event scan.
func (a *Almanac) Compute(date CivilDate) DailyAlmanac {
	dayStart := LocalDayStart(date.Year, date.Month, date.Day, a.UTCOffsetMinutes)
	noon := dayStart.Add(12 * time.Hour)

	sunRS := a.Observer.RiseSetTransit(Sun.Equatorial, dayStart, HorizonDip)
	twilight := a.Observer.RiseSetTransit(Sun.Equatorial, dayStart, CivilTwilightDip)
	sun := SunTimes{RiseSet: sunRS}
	if twilight.Valid() {
		sun.Dawn = twilight.Rise
		sun.Dusk = twilight.Set
	}

	moonPos := Moon.Position(noon)
	moon := MoonInfo{
		RiseSet:       a.Observer.BodyRiseSet(Moon, dayStart),
		Phase:         Phase(noon),
		Age:           MoonAge(noon, a.UTCOffsetMinutes),
		Constellation: ConstellationAt(moonPos.Lon, moonPos.Lat),
	}

	var planets []PlanetVisibility
	for _, b := range Planets() {
		rs := a.Observer.BodyRiseSet(b, dayStart)
		elong := Wrap360(b.Position(noon).Lon - Sun.Position(noon).Lon)
		if elong > 180 {
			elong = 360 - elong
		}
		desc := classifyVisibility(rs, sunRS, elong, a.clock)
		if desc == "" {
			continue
		}
		planets = append(planets, PlanetVisibility{Body: b, Description: desc})
	}

	events := ScanEvents(date, a.UTCOffsetMinutes, a.Features)

	a.logger.Log("level", "info", "date", dayStart.Format("2006-01-02"),
		"lat", a.Observer.Latitude, "lon", a.Observer.Longitude,
		"planets", len(planets), "events", len(events))

	return DailyAlmanac{
		Date:             date,
		Observer:         a.Observer,
		UTCOffsetMinutes: a.UTCOffsetMinutes,
		Sun:              sun,
		Moon:             moon,
		Planets:          planets,
		Events:           events,
	}
}

// clock renders an instant as local wall-clock time using the query offset.
func (a *Almanac) clock(t time.Time) string {
	return t.UTC().Add(time.Duration(a.UTCOffsetMinutes) * time.Minute).Format("3:04 PM")
}
