// Package astro provides the pure sky-math leaves of the planning engine:
// equatorial to horizontal conversion, circular-degree arithmetic, and
// solar position/event times.
package astro

import (
	"math"
	"time"
)

// EquatorialPosition holds the invariant celestial coordinates of a target.
type EquatorialPosition struct {
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// HorizontalPosition is an observer-relative position at one instant.
type HorizontalPosition struct {
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith)
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
}

// Observer represents a ground-based observing location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional site name
}

// EquatorialToHorizontal converts an equatorial position to the observer's
// horizontal frame at the given instant. The instant is always explicit;
// the function never reads a clock and is bit-for-bit deterministic.
//
// Azimuth is measured from north, increasing eastward, and is computed with
// atan2 so that polar latitudes (cos(lat) = 0) stay well defined.
func EquatorialToHorizontal(eq EquatorialPosition, obs Observer, t time.Time) HorizontalPosition {
	lat := degToRad(obs.LatDeg)
	dec := degToRad(eq.DecDeg)

	lst := localSiderealTime(t, obs.LonDeg)
	ha := degToRad(lst - eq.RAdeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	// Clamp to [-1, 1] to absorb floating point drift
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	alt := math.Asin(sinAlt)

	// atan2 form of the azimuth formula; the +180 shift moves the result
	// from the south-referenced convention to north-referenced.
	az := math.Atan2(math.Sin(ha), math.Cos(ha)*math.Sin(lat)-math.Tan(dec)*math.Cos(lat))
	azDeg := Normalize360(radToDeg(az) + 180)

	return HorizontalPosition{
		AltDeg: radToDeg(alt),
		AzDeg:  azDeg,
	}
}

// localSiderealTime calculates the Local Sidereal Time in degrees
// for a given UTC time and observer longitude.
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	return Normalize360(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime calculates GMST in degrees for a given UTC time.
// Uses the IAU 1982 polynomial based on Julian Date.
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := julianDate(t)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return Normalize360(gmst)
}

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January/February count as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5

	return jd
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
