package astro

import (
	"math"
	"time"
)

// Horizon altitudes used for solar event times, in degrees.
// Rise/set uses the conventional -0.833 (refraction + solar radius).
const (
	SunsetAltitude       = -0.833
	CivilTwilightAlt     = -6.0
	NauticalTwilightAlt  = -12.0
	AstronomicalTwilight = -18.0
)

// SunPosition calculates the apparent equatorial coordinates of the Sun.
// Uses a simplified solar ephemeris based on the Astronomical Almanac.
// Accuracy is on the order of 0.01 degrees, plenty for event times.
func SunPosition(t time.Time) EquatorialPosition {
	jd := julianDate(t)

	// Julian centuries from J2000.0
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude of the Sun (degrees)
	L0 := Normalize360(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := Normalize360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// True longitude, then apparent longitude (aberration + nutation)
	sunLon := L0 + C
	omega := 125.04 - 1934.136*T
	sunLonApp := sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Mean obliquity of the ecliptic, corrected
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(degToRad(omega))

	sunLonRad := degToRad(sunLonApp)
	epsRad := degToRad(eps)

	ra := radToDeg(math.Atan2(math.Cos(epsRad)*math.Sin(sunLonRad), math.Cos(sunLonRad)))
	dec := radToDeg(math.Asin(math.Sin(epsRad) * math.Sin(sunLonRad)))

	return EquatorialPosition{RAdeg: Normalize360(ra), DecDeg: dec}
}

// SunTimes holds solar event times bracketing one night: the evening
// events for the given date and the morning events of the following day.
// A zero time means the event does not occur (polar day or polar night).
type SunTimes struct {
	Sunset  time.Time
	Sunrise time.Time

	CivilDusk time.Time
	CivilDawn time.Time

	NauticalDusk time.Time
	NauticalDawn time.Time

	AstronomicalDusk time.Time
	AstronomicalDawn time.Time
}

// NightTimes computes the solar event times for the night starting on the
// given date (interpreted as a UTC calendar day) at the observer's site.
func NightTimes(obs Observer, date time.Time) SunTimes {
	evening := date.UTC()
	morning := evening.Add(24 * time.Hour)

	return SunTimes{
		Sunset:           SunEventTime(obs, evening, SunsetAltitude, false),
		Sunrise:          SunEventTime(obs, morning, SunsetAltitude, true),
		CivilDusk:        SunEventTime(obs, evening, CivilTwilightAlt, false),
		CivilDawn:        SunEventTime(obs, morning, CivilTwilightAlt, true),
		NauticalDusk:     SunEventTime(obs, evening, NauticalTwilightAlt, false),
		NauticalDawn:     SunEventTime(obs, morning, NauticalTwilightAlt, true),
		AstronomicalDusk: SunEventTime(obs, evening, AstronomicalTwilight, false),
		AstronomicalDawn: SunEventTime(obs, morning, AstronomicalTwilight, true),
	}
}

// SunEventTime finds the instant on the given UTC day when the Sun crosses
// the given altitude, either rising (morning) or setting (evening).
// Returns the zero time when the Sun never crosses that altitude
// (circumpolar day or night at high latitudes).
//
// Uses the hour-angle method: solar transit is located from Local Sidereal
// Time, then offset by the half-arc at the target altitude. Two refinement
// passes re-evaluate the solar position at the estimate, which is enough
// for sub-minute agreement with almanac tables.
func SunEventTime(obs Observer, day time.Time, altDeg float64, morning bool) time.Time {
	day = day.UTC()

	// First guess: local solar noon
	guess := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC).
		Add(-time.Duration(obs.LonDeg / 15 * float64(time.Hour)))

	for i := 0; i < 3; i++ {
		sun := SunPosition(guess)

		latRad := degToRad(obs.LatDeg)
		decRad := degToRad(sun.DecDeg)

		cosH := (math.Sin(degToRad(altDeg)) - math.Sin(latRad)*math.Sin(decRad)) /
			(math.Cos(latRad) * math.Cos(decRad))
		if cosH < -1 || cosH > 1 {
			// Sun never reaches this altitude today
			return time.Time{}
		}
		halfArc := radToDeg(math.Acos(cosH))

		// Hour angle of the Sun at the current guess, in [-180, 180)
		ha := localSiderealTime(guess, obs.LonDeg) - sun.RAdeg
		ha = Normalize360(ha)
		if ha >= 180 {
			ha -= 360
		}

		target := halfArc
		if morning {
			target = -halfArc
		}

		// Convert the hour-angle error to time at the sidereal rate
		deltaDeg := target - ha
		guess = guess.Add(time.Duration(deltaDeg / 360.98564736629 * 24 * float64(time.Hour)))
	}

	return guess
}
