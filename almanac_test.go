package dayspark

import (
	"bytes"
	"strings"
	"testing"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

func testAlmanac(f Features) *Almanac {
	a := New(newYork, -240, f)
	a.SetLogger(kitlog.NewNopLogger())
	return a
}

func TestComputeDailyAlmanac(t *testing.T) {
	al := testAlmanac(Features{AdvancedAstronomy: true, Astrology: true}).Compute(CivilDate{2024, time.June, 21})

	if !al.Sun.Valid() {
		t.Fatal("sun must rise and set in New York")
	}
	if al.Sun.Dawn.IsZero() || al.Sun.Dusk.IsZero() {
		t.Fatal("civil twilight missing")
	}
	if !al.Sun.Dawn.Before(al.Sun.Rise) || !al.Sun.Dusk.After(al.Sun.Set) {
		t.Fatal("twilight must bracket sunrise and sunset")
	}
	if al.Moon.Phase.Name == "" {
		t.Fatal("no moon phase")
	}
	if al.Moon.Age < 0 || al.Moon.Age > 30 {
		t.Fatalf("moon age %d out of range", al.Moon.Age)
	}
	if al.Moon.Constellation == Unknown {
		t.Fatal("moon constellation unresolved")
	}
	if len(al.Planets) == 0 {
		t.Fatal("no planet visibility entries")
	}
	for _, p := range al.Planets {
		if p.Description == "" {
			t.Fatalf("%s: empty description", p.Body)
		}
	}
}

func TestComputeIsPure(t *testing.T) {
	// Two identical queries must agree field for field.
	a := testAlmanac(Features{Astrology: true})
	date := CivilDate{2024, time.March, 15}
	first := a.Compute(date)
	second := a.Compute(date)
	if first.Sun.Rise != second.Sun.Rise || first.Moon.Age != second.Moon.Age {
		t.Fatal("repeated queries disagree")
	}
	if len(first.Events) != len(second.Events) {
		t.Fatalf("repeated queries found %d vs %d events", len(first.Events), len(second.Events))
	}
}

func TestWriteReport(t *testing.T) {
	al := testAlmanac(Features{AdvancedAstronomy: true}).Compute(CivilDate{2024, time.August, 12})

	var buf bytes.Buffer
	if err := al.WriteReport(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Sunrise: ",
		"Sunset: ",
		"Moon phase: ",
		"Moon age: ",
		"Moon in ",
		"Meteor shower peak: Perseids",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReportPolarNight(t *testing.T) {
	a := New(Observer{Latitude: 78.2232, Longitude: 15.6267}, 60, Features{})
	a.SetLogger(kitlog.NewNopLogger())
	al := a.Compute(CivilDate{2024, time.December, 21})

	var buf bytes.Buffer
	if err := al.WriteReport(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Sun: never rises today") {
		t.Fatalf("polar night not reported:\n%s", buf.String())
	}
}
