package dayspark

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

var newYork = Observer{Latitude: 40.7128, Longitude: -74.0060}

func TestGMST(t *testing.T) {
	// GMST at 2000-01-01 00:00 UT is 6h39m52s ≈ 99.97°.
	d := ToEpochDays(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	if g := GMST(d); !floats.EqualWithinAbs(g, 99.97, 0.02) {
		t.Fatalf("GMST at 2000-01-01 0h is %f, expected ~99.97", g)
	}
}

func TestSunriseNewYorkSolstice(t *testing.T) {
	// Reference almanac for New York, 2024-06-21 (EDT): sunrise 5:25 AM,
	// sunset 8:31 PM.
	dayStart := LocalDayStart(2024, time.June, 21, -240)
	rs := newYork.RiseSetTransit(Sun.Equatorial, dayStart, HorizonDip)
	if !rs.Valid() {
		t.Fatal("sun must rise and set in New York")
	}
	expectedRise := time.Date(2024, time.June, 21, 9, 25, 0, 0, time.UTC)
	expectedSet := time.Date(2024, time.June, 22, 0, 31, 0, 0, time.UTC)
	if diff := math.Abs(rs.Rise.Sub(expectedRise).Minutes()); diff > 5 {
		t.Fatalf("sunrise %s off by %.1f minutes", rs.Rise, diff)
	}
	if diff := math.Abs(rs.Set.Sub(expectedSet).Minutes()); diff > 5 {
		t.Fatalf("sunset %s off by %.1f minutes", rs.Set, diff)
	}
	if !rs.Set.After(rs.Rise) {
		t.Fatal("sunset must follow sunrise")
	}
}

func TestPolarDayAndNight(t *testing.T) {
	longyearbyen := Observer{Latitude: 78.2232, Longitude: 15.6267}
	summer := longyearbyen.RiseSetTransit(Sun.Equatorial, LocalDayStart(2024, time.June, 21, 120), HorizonDip)
	if !summer.NeverSets || summer.NeverRises {
		t.Fatal("midnight sun expected at the Arctic in June")
	}
	winter := longyearbyen.RiseSetTransit(Sun.Equatorial, LocalDayStart(2024, time.December, 21, 60), HorizonDip)
	if !winter.NeverRises || winter.NeverSets {
		t.Fatal("polar night expected at the Arctic in December")
	}
}

func TestAltitudeAgainstRiseSet(t *testing.T) {
	// The Sun must be below the horizon dip before sunrise and above after.
	dayStart := LocalDayStart(2024, time.June, 21, -240)
	rs := newYork.RiseSetTransit(Sun.Equatorial, dayStart, HorizonDip)
	if alt := newYork.Altitude(Sun, rs.Rise.Add(-time.Hour)); alt > -HorizonDip {
		t.Fatalf("sun altitude %f an hour before sunrise", alt)
	}
	if alt := newYork.Altitude(Sun, rs.Rise.Add(time.Hour)); alt < -HorizonDip {
		t.Fatalf("sun altitude %f an hour after sunrise", alt)
	}
	if alt := newYork.Altitude(Sun, rs.Transit); alt < 60 {
		t.Fatalf("sun altitude %f at June transit in New York, expected ~72", alt)
	}
}

func TestMoonRiseSetByScan(t *testing.T) {
	dayStart := LocalDayStart(2024, time.June, 21, -240)
	rs := newYork.BodyRiseSet(Moon, dayStart)
	if rs.NeverRises || rs.NeverSets {
		t.Fatal("the moon rises and sets at mid latitudes")
	}
	if rs.Rise.IsZero() && rs.Set.IsZero() {
		t.Fatal("scan found no crossings")
	}
	// Any crossing the scan reports must sit at the horizon.
	if !rs.Rise.IsZero() {
		if alt := newYork.Altitude(Moon, rs.Rise); math.Abs(alt+HorizonDip) > 0.5 {
			t.Fatalf("moonrise altitude %f, expected ~%f", alt, -HorizonDip)
		}
	}
	if !rs.Set.IsZero() {
		if alt := newYork.Altitude(Moon, rs.Set); math.Abs(alt+HorizonDip) > 0.5 {
			t.Fatalf("moonset altitude %f, expected ~%f", alt, -HorizonDip)
		}
	}
}

func TestAzimuthQuadrants(t *testing.T) {
	// At transit the Sun sits due south from New York.
	dayStart := LocalDayStart(2024, time.June, 21, -240)
	rs := newYork.RiseSetTransit(Sun.Equatorial, dayStart, HorizonDip)
	if az := newYork.Azimuth(Sun, rs.Transit); math.Abs(az-180) > 5 {
		t.Fatalf("transit azimuth %f, expected ~180", az)
	}
}
