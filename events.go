package dayspark

import (
	"fmt"
	"sort"
	"time"
)

// Features gates the optional computation classes. Purely a filter on which
// event kinds are computed and emitted, never a change to the math.
type Features struct {
	AdvancedAstronomy bool // apsis, declination and equator events, node crossings
	Astrology         bool // 60/90/120° aspects
	DeepAstrology     bool // minor aspects and the extra bodies
}

// EventKind tags a celestial event.
type EventKind uint8

const (
	NodeCrossingAscending EventKind = iota + 1
	NodeCrossingDescending
	EquatorCrossing
	ApsisPerigee
	ApsisApogee
	DeclinationHigh
	DeclinationLow
	AspectCrossing
	StationaryPoint
	MeteorShowerPeak
)

// Event is a discrete celestial event on the queried day. Events are plain
// values: a query produces a fresh list and nothing persists between calls.
type Event struct {
	Time   time.Time
	Kind   EventKind
	BodyA  Body   // aspect pair member or stationary body
	BodyB  Body   // second aspect pair member
	Aspect Aspect // populated for AspectCrossing
	Shower string // populated for MeteorShowerPeak
}

// Label renders the event's fixed text. Labels are part of the output
// contract and double as the deduplication key.
func (e Event) Label() string {
	switch e.Kind {
	case NodeCrossingAscending:
		return "Moon crosses ascending node"
	case NodeCrossingDescending:
		return "Moon crosses descending node"
	case EquatorCrossing:
		return "Moon crosses celestial equator"
	case ApsisPerigee:
		return "Moon at perigee"
	case ApsisApogee:
		return "Moon at apogee"
	case DeclinationHigh:
		return "Moon at highest declination"
	case DeclinationLow:
		return "Moon at lowest declination"
	case AspectCrossing:
		return fmt.Sprintf("%s: %s & %s", e.Aspect.Name, e.BodyA, e.BodyB)
	case StationaryPoint:
		return fmt.Sprintf("%s stationary", e.BodyA)
	case MeteorShowerPeak:
		return fmt.Sprintf("Meteor shower peak: %s", e.Shower)
	default:
		panic(fmt.Errorf("unknown event kind %d", uint8(e.Kind)))
	}
}

// ScanEvents samples the day window starting at dayStart (UTC instant of
// local midnight) and emits every enabled event. The result is sorted
// ascending by instant and deduplicated by label text; meteor shower peaks
// are appended last since they carry only a date.
func ScanEvents(date CivilDate, utcOffsetMin int, f Features) []Event {
	dayStart := LocalDayStart(date.Year, date.Month, date.Day, utcOffsetMin)

	var events []Event
	if f.AdvancedAstronomy {
		events = append(events, moonTrendEvents(dayStart)...)
	}
	events = append(events, stationaryEvents(dayStart, f)...)
	events = append(events, aspectEvents(dayStart, f)...)

	events = dedupeByLabel(events)
	sort.Slice(events, func(i, j int) bool { return events[i].Time.Before(events[j].Time) })

	for _, name := range ShowerPeaks(date.Year, date.Month, date.Day) {
		events = append(events, Event{Time: dayStart, Kind: MeteorShowerPeak, Shower: name})
	}
	return events
}

// moonTrendEvents runs the hourly scan over the Moon's latitude, declination
// and distance. Value sign changes (latitude, declination) interpolate the
// crossing instant linearly; derivative reversals (distance, declination
// extremes) take the exact sample time.
func moonTrendEvents(dayStart time.Time) []Event {
	const samples = 25 // hourly, inclusive of both window edges
	var (
		lats, decs, dists [samples]float64
		times             [samples]time.Time
	)
	for i := 0; i < samples; i++ {
		t := dayStart.Add(time.Duration(i) * time.Hour)
		p := moonPosition(ToEpochDays(t))
		times[i] = t
		lats[i] = p.Lat
		dists[i] = p.Dist
		decs[i] = p.ToEquatorial().Dec.Deg()
	}

	var events []Event
	for i := 1; i < samples; i++ {
		if lats[i-1] < 0 && lats[i] >= 0 {
			events = append(events, Event{Time: crossing(times[i-1], lats[i-1], lats[i]), Kind: NodeCrossingAscending})
		}
		if lats[i-1] > 0 && lats[i] <= 0 {
			events = append(events, Event{Time: crossing(times[i-1], lats[i-1], lats[i]), Kind: NodeCrossingDescending})
		}
		if (decs[i-1] < 0 && decs[i] >= 0) || (decs[i-1] > 0 && decs[i] <= 0) {
			events = append(events, Event{Time: crossing(times[i-1], decs[i-1], decs[i]), Kind: EquatorCrossing})
		}
	}

	events = append(events, reversals(times, dists, ApsisPerigee, ApsisApogee)...)
	events = append(events, reversals(times, decs, DeclinationLow, DeclinationHigh)...)
	return events
}

// crossing interpolates the zero-crossing instant between two hourly samples.
func crossing(t0 time.Time, v0, v1 float64) time.Time {
	frac := v0 / (v0 - v1)
	return t0.Add(time.Duration(frac * float64(time.Hour)))
}

// reversals emits an event at each sample where the first difference of the
// series changes sign against the previous non-zero difference. A minimum
// (falling then rising) yields atMin, a maximum atMax.
func reversals(times [25]time.Time, vals [25]float64, atMin, atMax EventKind) []Event {
	var events []Event
	prev := 0.0
	for i := 1; i < len(vals); i++ {
		diff := vals[i] - vals[i-1]
		if diff == 0 {
			continue
		}
		if prev != 0 && sign(diff) != sign(prev) {
			kind := atMax
			if diff > 0 {
				kind = atMin
			}
			events = append(events, Event{Time: times[i-1], Kind: kind})
		}
		prev = diff
	}
	return events
}

// stationaryEvents checks each planet's apparent longitude motion across
// three coarse samples: previous day, start of day, next day. A sign flip of
// the daily motion marks a station (retrograde or direct turn).
func stationaryEvents(dayStart time.Time, f Features) []Event {
	bodies := Planets()
	if f.DeepAstrology {
		bodies = append(bodies, Pluto, Chiron)
	}
	var events []Event
	for _, b := range bodies {
		prev := b.Position(dayStart.Add(-24 * time.Hour)).Lon
		cur := b.Position(dayStart).Lon
		next := b.Position(dayStart.Add(24 * time.Hour)).Lon
		d1 := Wrap180(cur - prev)
		d2 := Wrap180(next - cur)
		if d1*d2 < 0 {
			events = append(events, Event{Time: dayStart, Kind: StationaryPoint, BodyA: b})
		}
	}
	return events
}

// aspectBodies is the pair universe for aspect detection.
func aspectBodies(f Features) []Body {
	bodies := []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}
	if f.DeepAstrology {
		bodies = append(bodies, Pluto, Chiron, Node)
	}
	return bodies
}

// aspectEvents detects aspect crossings for every body pair across the day.
// Pairs involving the Moon (~13°/day) are sub-sampled at a finer cadence so
// fast crossings are neither missed nor double counted; slow pairs use the
// day endpoints only.
func aspectEvents(dayStart time.Time, f Features) []Event {
	bodies := aspectBodies(f)
	aspects := enabledAspects(f)
	var events []Event
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			step := 24 * time.Hour
			if a == Moon || b == Moon {
				step = dsConfig().aspectStep
			}
			pairSet := aspects
			if f.AdvancedAstronomy && isMoonNodePair(a, b) {
				pairSet = dropNodeDuplicates(aspects)
			}
			events = append(events, pairAspects(a, b, dayStart, step, pairSet)...)
		}
	}
	return events
}

// pairAspects scans one body pair. The separation is assumed linear within
// each segment; the crossing fraction is interpolated from the signed
// distance to the target angle.
func pairAspects(a, b Body, dayStart time.Time, step time.Duration, aspects []Aspect) []Event {
	var events []Event
	for seg := time.Duration(0); seg < 24*time.Hour; seg += step {
		t1 := dayStart.Add(seg)
		t2 := t1.Add(step)
		δ1 := Wrap180(a.Position(t1).Lon - b.Position(t1).Lon)
		// unwrap the end separation so the segment never fakes a ±180° jump
		δ2 := δ1 + Wrap180(Wrap180(a.Position(t2).Lon-b.Position(t2).Lon)-δ1)
		for _, asp := range aspects {
			for _, target := range aspectTargets(asp.Angle) {
				f1 := δ1 - target
				f2 := δ2 - target
				if f1*f2 >= 0 {
					continue
				}
				frac := f1 / (f1 - f2)
				events = append(events, Event{
					Time:   t1.Add(time.Duration(frac * float64(step))),
					Kind:   AspectCrossing,
					BodyA:  a,
					BodyB:  b,
					Aspect: asp,
				})
			}
		}
	}
	return events
}

// aspectTargets expands an aspect angle into the signed separations to test.
// Every non-0/180 angle is checked on both sides.
func aspectTargets(angle float64) []float64 {
	switch angle {
	case 0:
		return []float64{0}
	case 180:
		return []float64{180, -180}
	default:
		return []float64{angle, -angle}
	}
}

func isMoonNodePair(a, b Body) bool {
	return (a == Moon && b == Node) || (a == Node && b == Moon)
}

// dropNodeDuplicates removes conjunction and opposition from an aspect set.
// Applied to the Moon-Node pair only while the node-crossing scan runs: the
// crossing reports the same physical moment under its own label, and two
// entries for one astronomical event is one too many. Without that scan the
// aspect entry is the only record of the passage and must stay.
func dropNodeDuplicates(aspects []Aspect) []Aspect {
	out := make([]Aspect, 0, len(aspects))
	for _, a := range aspects {
		if a.Angle == 0 || a.Angle == 180 {
			continue
		}
		out = append(out, a)
	}
	return out
}

// dedupeByLabel collapses events rendering identical label text.
func dedupeByLabel(events []Event) []Event {
	seen := make(map[string]bool, len(events))
	out := events[:0]
	for _, e := range events {
		if seen[e.Label()] {
			continue
		}
		seen[e.Label()] = true
		out = append(out, e)
	}
	return out
}
