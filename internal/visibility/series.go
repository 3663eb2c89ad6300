// Package visibility derives per-night altitude series and observation
// windows for a fixed celestial target, honoring the observer's horizon
// obstruction profile.
package visibility

import (
	"time"

	"github.com/litescript/astra-sky/internal/astro"
)

// IdealAltitudeFloor is the default comfortable observing altitude in
// degrees. The floor applies even where the local horizon is clear; it is
// a tunable planning preference, not a physical limit.
const IdealAltitudeFloor = 20.0

// minSampleStep bounds the cost of very long nights (high-latitude winter).
const minSampleStep = 10 * time.Minute

// Sample is one instant in a generated night series. Ideal is derived
// against the static floor only; callers holding a horizon profile should
// judge ideality through EffectiveThreshold instead.
type Sample struct {
	Time   time.Time
	AltDeg float64
	AzDeg  float64
	Ideal  bool
}

// NightSeries samples the target's horizontal position between sunset and
// sunrise inclusive. The step is max(10 minutes, totalMinutes/60), which
// yields roughly sixty samples regardless of season.
//
// A malformed range (sunset at or after sunrise) returns an empty series;
// downstream summaries degrade to "no visibility".
func NightSeries(eq astro.EquatorialPosition, obs astro.Observer, sunset, sunrise time.Time) []Sample {
	return NightSeriesWithFloor(eq, obs, sunset, sunrise, IdealAltitudeFloor)
}

// NightSeriesWithFloor is NightSeries with an explicit ideal-altitude
// floor for the derived Ideal flag.
func NightSeriesWithFloor(eq astro.EquatorialPosition, obs astro.Observer, sunset, sunrise time.Time, floorDeg float64) []Sample {
	if !sunset.Before(sunrise) {
		return nil
	}

	total := sunrise.Sub(sunset)
	step := time.Duration(total.Minutes()/60) * time.Minute
	if step < minSampleStep {
		step = minSampleStep
	}

	var samples []Sample
	for t := sunset; !t.After(sunrise); t = t.Add(step) {
		pos := astro.EquatorialToHorizontal(eq, obs, t)
		samples = append(samples, Sample{
			Time:   t,
			AltDeg: pos.AltDeg,
			AzDeg:  pos.AzDeg,
			Ideal:  pos.AltDeg > floorDeg,
		})
	}
	return samples
}
