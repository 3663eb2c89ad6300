package visibility

import (
	"time"

	"github.com/litescript/astra-sky/internal/horizon"
)

// Window is the contiguous region of a night series above the effective
// threshold. Nil bounds mean the target never qualifies.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// Valid reports whether the window has both bounds.
func (w Window) Valid() bool {
	return w.Start != nil && w.End != nil
}

// EffectiveThreshold returns the altitude a target must exceed at the
// given azimuth to count as observable: the ideal floor, or the local
// horizon obstruction wherever that is higher. A nil profile means a
// clear horizon.
func EffectiveThreshold(profile *horizon.Profile, azDeg, floorDeg float64) float64 {
	if profile == nil {
		return floorDeg
	}
	if h := profile.AltitudeAt(azDeg); h > floorDeg {
		return h
	}
	return floorDeg
}

// IdealWindow reduces a night series to the first and last samples at or
// above the effective threshold. Both bounds are recomputed from the raw
// series on every call so they can never drift from it.
func IdealWindow(series []Sample, profile *horizon.Profile, floorDeg float64) Window {
	var w Window
	for i := range series {
		s := &series[i]
		if s.AltDeg < EffectiveThreshold(profile, s.AzDeg, floorDeg) {
			continue
		}
		if w.Start == nil {
			start := s.Time
			w.Start = &start
		}
		end := s.Time
		w.End = &end
	}
	return w
}

// BestTime selects the sample with the greatest clearance, the margin of
// altitude over the effective threshold at that sample's azimuth. This is
// not the same as the altitude maximum: with an anisotropic horizon the
// highest sample can sit behind an obstruction while a lower sample in a
// clear direction offers more sky. Ties go to the earliest sample.
//
// Returns false when the series is empty.
func BestTime(series []Sample, profile *horizon.Profile, floorDeg float64) (Sample, float64, bool) {
	if len(series) == 0 {
		return Sample{}, 0, false
	}

	best := series[0]
	bestClearance := best.AltDeg - EffectiveThreshold(profile, best.AzDeg, floorDeg)

	for _, s := range series[1:] {
		clearance := s.AltDeg - EffectiveThreshold(profile, s.AzDeg, floorDeg)
		if clearance > bestClearance {
			best = s
			bestClearance = clearance
		}
	}
	return best, bestClearance, true
}
