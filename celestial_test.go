package dayspark

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestBodyFromString(t *testing.T) {
	for b := Sun; b <= Node; b++ {
		got, err := BodyFromString(b.String())
		if err != nil || got != b {
			t.Fatalf("round trip failed for %s", b)
		}
	}
	if _, err := BodyFromString("Vulcan"); err == nil {
		t.Fatal("expected an error for an undefined body")
	}
}

func TestSolveKepler(t *testing.T) {
	for _, e := range []float64{0, 0.0167, 0.2056, 0.3831, 0.49} {
		for M := 0.0; M < 2*math.Pi; M += 0.1 {
			E := solveKepler(M, e)
			if resid := math.Abs(E - e*math.Sin(E) - M); resid > 1e-6 {
				t.Fatalf("Kepler residual %e for M=%f e=%f", resid, M, e)
			}
		}
	}
	if E := solveKepler(0, 0.3); !floats.EqualWithinAbs(E, 0, 1e-12) {
		t.Fatal("E(M=0) must be 0")
	}
}

func TestSunAtEquinoxAndSolstice(t *testing.T) {
	// March equinox 2024: 2024-03-20 03:06 UTC, solar longitude 0.
	equinox := time.Date(2024, time.March, 20, 3, 6, 0, 0, time.UTC)
	if lon := Wrap180(Sun.Position(equinox).Lon); math.Abs(lon) > 0.1 {
		t.Fatalf("solar longitude at equinox is %f, expected ~0", lon)
	}
	// June solstice 2024: 2024-06-20 20:51 UTC, solar longitude 90.
	solstice := time.Date(2024, time.June, 20, 20, 51, 0, 0, time.UTC)
	if lon := Sun.Position(solstice).Lon; math.Abs(lon-90) > 0.1 {
		t.Fatalf("solar longitude at solstice is %f, expected ~90", lon)
	}
}

func TestInnerPlanetElongationBounds(t *testing.T) {
	// Geometry check: an inner planet can never stray past its maximum
	// elongation from the Sun.
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 400; i += 3 {
		dt := start.Add(time.Duration(i*24) * time.Hour)
		sunLon := Sun.Position(dt).Lon
		for b, limit := range map[Body]float64{Mercury: 28.5, Venus: 48.5} {
			elong := math.Abs(Wrap180(b.Position(dt).Lon - sunLon))
			if elong > limit {
				t.Fatalf("%s elongation %f exceeds %f on %s", b, elong, limit, dt)
			}
		}
	}
}

func TestMoonPositionBounds(t *testing.T) {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 800; i++ {
		p := Moon.Position(start.Add(time.Duration(i*13) * time.Hour))
		if p.Lon < 0 || p.Lon >= 360 {
			t.Fatalf("lunar longitude %f out of range", p.Lon)
		}
		if math.Abs(p.Lat) > 6 {
			t.Fatalf("lunar latitude %f out of range", p.Lat)
		}
		if p.Dist < 350000 || p.Dist > 420000 {
			t.Fatalf("lunar distance %f km out of range", p.Dist)
		}
	}
}

func TestNodeRegression(t *testing.T) {
	// The mean node regresses ~19.3° per year.
	t0 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	l0 := Node.Position(t0).Lon
	l1 := Node.Position(t0.AddDate(1, 0, 0)).Lon
	if drift := Wrap180(l1 - l0); !floats.EqualWithinAbs(drift, -19.3, 0.2) {
		t.Fatalf("node drifted %f°/yr, expected ~-19.3", drift)
	}
	if lat := Node.Position(t0).Lat; lat != 0 {
		t.Fatal("node latitude must be identically zero")
	}
}

func TestUnknownBodyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-enum body")
		}
	}()
	Body(250).Position(time.Now())
}
