package dayspark

import (
	"fmt"
	"io"
	"time"
)

// Report rendering: one human-readable line per fact, in a fixed order.
// A downstream formatter owns where these lines end up; the engine only owns
// the labels and the ordering.

// WriteReport renders the almanac as text lines to w.
func (al DailyAlmanac) WriteReport(w io.Writer) error {
	clock := func(t time.Time) string {
		return t.UTC().Add(time.Duration(al.UTCOffsetMinutes) * time.Minute).Format("3:04 PM")
	}

	var lines []string
	switch {
	case al.Sun.NeverRises:
		lines = append(lines, "Sun: never rises today")
	case al.Sun.NeverSets:
		lines = append(lines, "Sun: never sets today")
	default:
		lines = append(lines,
			fmt.Sprintf("Sunrise: %s", clock(al.Sun.Rise)),
			fmt.Sprintf("Sunset: %s", clock(al.Sun.Set)))
		if !al.Sun.Dawn.IsZero() {
			lines = append(lines,
				fmt.Sprintf("Civil dawn: %s", clock(al.Sun.Dawn)),
				fmt.Sprintf("Civil dusk: %s", clock(al.Sun.Dusk)))
		}
	}

	switch {
	case al.Moon.RiseSet.NeverRises:
		lines = append(lines, "Moon: never rises today")
	case al.Moon.RiseSet.NeverSets:
		lines = append(lines, "Moon: never sets today")
	default:
		if !al.Moon.RiseSet.Rise.IsZero() {
			lines = append(lines, fmt.Sprintf("Moonrise: %s", clock(al.Moon.RiseSet.Rise)))
		}
		if !al.Moon.RiseSet.Set.IsZero() {
			lines = append(lines, fmt.Sprintf("Moonset: %s", clock(al.Moon.RiseSet.Set)))
		}
	}
	lines = append(lines,
		fmt.Sprintf("Moon phase: %s", al.Moon.Phase),
		fmt.Sprintf("Moon age: %d days", al.Moon.Age),
		fmt.Sprintf("Moon in %s %s", al.Moon.Constellation.Name, al.Moon.Constellation.Symbol))

	for _, p := range al.Planets {
		lines = append(lines, fmt.Sprintf("%s: %s", p.Body, p.Description))
	}

	for _, e := range al.Events {
		if e.Kind == MeteorShowerPeak {
			lines = append(lines, e.Label())
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", e.Label(), clock(e.Time)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
