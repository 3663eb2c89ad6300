package astro

import (
	"math"
	"testing"
	"time"
)

// testObservers used across the astro tests.
var testObservers = map[string]Observer{
	"goldstone":  {LatDeg: 35.4267, LonDeg: -116.8900, Name: "Goldstone"},
	"canberra":   {LatDeg: -35.4014, LonDeg: 148.9817, Name: "Canberra"},
	"madrid":     {LatDeg: 40.4314, LonDeg: -4.2481, Name: "Madrid"},
	"north_pole": {LatDeg: 90.0, LonDeg: 0.0, Name: "North Pole"},
}

// Well-known star positions (J2000)
var testStars = map[string]EquatorialPosition{
	"vega":     {RAdeg: 279.2347, DecDeg: 38.7837},  // Alpha Lyrae
	"sirius":   {RAdeg: 101.2875, DecDeg: -16.7161}, // Alpha CMa
	"polaris":  {RAdeg: 37.9542, DecDeg: 89.2641},   // North star
	"canopus":  {RAdeg: 95.9879, DecDeg: -52.6957},  // Alpha Car
	"arcturus": {RAdeg: 213.9150, DecDeg: 19.1825},  // Alpha Boo
}

func TestJulianDate_J2000Epoch(t *testing.T) {
	// J2000.0 reference epoch: 2000-01-01 12:00:00 UTC = JD 2451545.0
	jd := julianDate(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(jd-2451545.0) > 1e-9 {
		t.Errorf("julianDate(J2000) = %.9f, want 2451545.0", jd)
	}
}

func TestGMST_J2000Epoch(t *testing.T) {
	// At the epoch the polynomial reduces to its constant term.
	gmst := greenwichMeanSiderealTime(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(gmst-280.46061837) > 1e-6 {
		t.Errorf("GMST(J2000) = %.8f°, want 280.46061837°", gmst)
	}
}

func TestEquatorialToHorizontal_AzimuthRange(t *testing.T) {
	// Azimuth must land in [0, 360) for any combination of RA sign/magnitude,
	// observer longitude, and instant.
	instants := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 15, 4, 30, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, obs := range testObservers {
		for ra := -720.0; ra <= 720.0; ra += 73.0 {
			for dec := -80.0; dec <= 80.0; dec += 40.0 {
				for _, instant := range instants {
					pos := EquatorialToHorizontal(EquatorialPosition{RAdeg: ra, DecDeg: dec}, obs, instant)
					if pos.AzDeg < 0 || pos.AzDeg >= 360 {
						t.Fatalf("azimuth %.6f° out of [0,360) for ra=%.1f dec=%.1f obs=%s",
							pos.AzDeg, ra, dec, obs.Name)
					}
					if pos.AltDeg < -90 || pos.AltDeg > 90 {
						t.Fatalf("altitude %.6f° out of [-90,90] for ra=%.1f dec=%.1f obs=%s",
							pos.AltDeg, ra, dec, obs.Name)
					}
				}
			}
		}
	}
}

func TestEquatorialToHorizontal_Polaris(t *testing.T) {
	// Polaris altitude approximates the observer's latitude at any hour.
	tests := []struct {
		name     string
		observer string
		wantMin  float64
		wantMax  float64
	}{
		{name: "from Goldstone", observer: "goldstone", wantMin: 33, wantMax: 38},
		{name: "from Madrid", observer: "madrid", wantMin: 38, wantMax: 43},
		{name: "from North Pole", observer: "north_pole", wantMin: 88, wantMax: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := testObservers[tt.observer]
			for hour := 0; hour < 24; hour += 3 {
				instant := time.Date(2024, 3, 10, hour, 0, 0, 0, time.UTC)
				pos := EquatorialToHorizontal(testStars["polaris"], obs, instant)
				if pos.AltDeg < tt.wantMin || pos.AltDeg > tt.wantMax {
					t.Errorf("Polaris altitude at %02d:00 = %.2f°, want between %.0f° and %.0f°",
						hour, pos.AltDeg, tt.wantMin, tt.wantMax)
				}
			}
		})
	}
}

func TestEquatorialToHorizontal_SouthernStar(t *testing.T) {
	// Canopus (dec -52.7°) never rises above ~2° from Madrid (lat 40.4°)
	// and can reach ~82° from Canberra.
	obs := testObservers["madrid"]
	for hour := 0; hour < 24; hour++ {
		instant := time.Date(2024, 1, 15, hour, 0, 0, 0, time.UTC)
		pos := EquatorialToHorizontal(testStars["canopus"], obs, instant)
		if pos.AltDeg > 0 {
			t.Errorf("Canopus above horizon from Madrid at %02d:00 (%.2f°)", hour, pos.AltDeg)
		}
	}
}

func TestEquatorialToHorizontal_Deterministic(t *testing.T) {
	// Identical inputs must produce bit-identical outputs.
	obs := testObservers["canberra"]
	instant := time.Date(2024, 9, 1, 13, 37, 42, 123456789, time.UTC)

	first := EquatorialToHorizontal(testStars["sirius"], obs, instant)
	for i := 0; i < 10; i++ {
		again := EquatorialToHorizontal(testStars["sirius"], obs, instant)
		if first != again {
			t.Fatalf("non-deterministic result: %+v != %+v", first, again)
		}
	}
}

func TestEquatorialToHorizontal_PolarObserver(t *testing.T) {
	// cos(lat) = 0 exactly; the atan2 form must still yield finite numbers.
	obs := testObservers["north_pole"]
	instant := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)

	for name, star := range testStars {
		pos := EquatorialToHorizontal(star, obs, instant)
		if math.IsNaN(pos.AltDeg) || math.IsNaN(pos.AzDeg) {
			t.Errorf("%s: NaN result at polar latitude: %+v", name, pos)
		}
		// From the pole, altitude equals declination.
		if math.Abs(pos.AltDeg-star.DecDeg) > 0.01 {
			t.Errorf("%s: altitude %.4f° != declination %.4f° at the pole", name, pos.AltDeg, star.DecDeg)
		}
	}
}

func TestNormalize360(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{720, 0},
		{-1, 359},
		{-360, 0},
		{361.5, 1.5},
		{180, 180},
		{-540, 180},
	}

	for _, tt := range tests {
		if got := Normalize360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize360(%.1f) = %.6f, want %.6f", tt.in, got, tt.want)
		}
	}
}

func TestForwardSpan(t *testing.T) {
	tests := []struct {
		from, to float64
		want     float64
	}{
		{0, 90, 90},
		{90, 0, 270},
		{350, 10, 20},
		{10, 350, 340},
		{180, 180, 0},
	}

	for _, tt := range tests {
		if got := ForwardSpan(tt.from, tt.to); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ForwardSpan(%.0f, %.0f) = %.6f, want %.6f", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestLerpCircular(t *testing.T) {
	tests := []struct {
		name           string
		from, to, at   float64
		fromVal, toVal float64
		want           float64
	}{
		{name: "midpoint plain", from: 0, to: 180, at: 90, fromVal: 10, toVal: 30, want: 20},
		{name: "midpoint over seam", from: 350, to: 10, at: 0, fromVal: 0, toVal: 8, want: 4},
		{name: "quarter over seam", from: 350, to: 10, at: 355, fromVal: 0, toVal: 8, want: 2},
		{name: "zero span", from: 45, to: 45, at: 45, fromVal: 7, toVal: 9, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpCircular(tt.from, tt.to, tt.at, tt.fromVal, tt.toVal)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LerpCircular() = %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestMidpointArc(t *testing.T) {
	tests := []struct {
		from, to float64
		want     float64
	}{
		{0, 90, 45},
		{350, 10, 0},
		{300, 80, 10},
		{100, 100, 100},
	}

	for _, tt := range tests {
		if got := MidpointArc(tt.from, tt.to); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("MidpointArc(%.0f, %.0f) = %.6f, want %.6f", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCompassDirection(t *testing.T) {
	tests := []struct {
		az   float64
		want string
	}{
		{0, "N"},
		{11.24, "N"},
		{11.26, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{348.76, "NNW"},
		{359.9, "N"},
		{360, "N"},
		{-90, "W"},
	}

	for _, tt := range tests {
		if got := CompassDirection(tt.az); got != tt.want {
			t.Errorf("CompassDirection(%.2f) = %q, want %q", tt.az, got, tt.want)
		}
	}
}
