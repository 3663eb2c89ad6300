// Package plan assembles per-target night plans from the astro, horizon
// and visibility leaves, and keeps the caller-side footprint caches.
package plan

import (
	"time"

	"github.com/litescript/astra-sky/internal/astro"
	"github.com/litescript/astra-sky/internal/horizon"
	"github.com/litescript/astra-sky/internal/visibility"
)

// Target is a named fixed celestial target.
type Target struct {
	Name     string
	Position astro.EquatorialPosition
}

// NightPlan is the full visibility picture for one target over one night.
type NightPlan struct {
	Target   Target
	Observer astro.Observer
	Sun      astro.SunTimes
	FloorDeg float64

	Series []visibility.Sample
	Window visibility.Window

	Best          visibility.Sample
	BestClearance float64
	HasBest       bool

	GeneratedAt time.Time
}

// Compute builds a night plan for a target. The horizon profile may be
// nil (clear horizon). Missing sun events (polar day) or an inverted
// sunset/sunrise pair produce an empty series and a "no visibility" plan.
func Compute(target Target, obs astro.Observer, sun astro.SunTimes, profile *horizon.Profile, floorDeg float64, now time.Time) *NightPlan {
	p := &NightPlan{
		Target:      target,
		Observer:    obs,
		Sun:         sun,
		FloorDeg:    floorDeg,
		GeneratedAt: now,
	}

	if sun.Sunset.IsZero() || sun.Sunrise.IsZero() {
		return p
	}

	p.Series = visibility.NightSeriesWithFloor(target.Position, obs, sun.Sunset, sun.Sunrise, floorDeg)
	p.Window = visibility.IdealWindow(p.Series, profile, floorDeg)

	// Only surface a best time when the target actually clears the
	// threshold at some point; a "best" moment of a blocked night is noise.
	if best, clearance, ok := visibility.BestTime(p.Series, profile, floorDeg); ok && p.Window.Valid() {
		p.Best, p.BestClearance, p.HasBest = best, clearance, true
	}

	return p
}

// Observable reports whether the target clears the effective threshold at
// any point during the night.
func (p *NightPlan) Observable() bool {
	return p.Window.Valid()
}

// ObservableDuration returns the length of the ideal window.
func (p *NightPlan) ObservableDuration() time.Duration {
	if !p.Window.Valid() {
		return 0
	}
	return p.Window.End.Sub(*p.Window.Start)
}

// MaxAltitude returns the highest sampled altitude of the night, or false
// for an empty series. Distinct from the best time: this is the raw
// altitude peak regardless of obstruction.
func (p *NightPlan) MaxAltitude() (visibility.Sample, bool) {
	if len(p.Series) == 0 {
		return visibility.Sample{}, false
	}
	best := p.Series[0]
	for _, s := range p.Series[1:] {
		if s.AltDeg > best.AltDeg {
			best = s
		}
	}
	return best, true
}
