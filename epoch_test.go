package dayspark

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestEpochDaysAtJ2000(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if d := ToEpochDays(j2000); !floats.EqualWithinAbs(d, 0, 1e-9) {
		t.Fatalf("J2000.0 is %f days, expected 0", d)
	}
}

func TestEpochRoundTrip(t *testing.T) {
	// Sub-second round trips from 1900 through 2100.
	for year := 1900; year <= 2100; year += 7 {
		in := time.Date(year, time.March, 14, 15, 9, 26, 0, time.UTC)
		out := FromEpochDays(ToEpochDays(in))
		if diff := math.Abs(out.Sub(in).Seconds()); diff > 1 {
			t.Fatalf("round trip for %s off by %fs", in, diff)
		}
	}
}

func TestEpochMonotonic(t *testing.T) {
	t0 := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	prev := ToEpochDays(t0)
	for i := 1; i < 48; i++ {
		cur := ToEpochDays(t0.Add(time.Duration(i) * time.Hour))
		if cur <= prev {
			t.Fatal("epoch days not monotonic with wall clock")
		}
		prev = cur
	}
}

func TestLocalDayStart(t *testing.T) {
	// Local midnight in New York (UTC-4 in June) is 04:00 UTC.
	start := LocalDayStart(2024, time.June, 21, -240)
	expected := time.Date(2024, time.June, 21, 4, 0, 0, 0, time.UTC)
	if !start.Equal(expected) {
		t.Fatalf("day start %s, expected %s", start, expected)
	}
}

func TestLocalCalendarDayNumber(t *testing.T) {
	// 23:30 UTC on the 1st is already the 2nd at UTC+1.
	late := time.Date(2024, time.May, 1, 23, 30, 0, 0, time.UTC)
	if localCalendarDayNumber(late, 60)-localCalendarDayNumber(late, 0) != 1 {
		t.Fatal("offset should advance the local calendar day")
	}
}
