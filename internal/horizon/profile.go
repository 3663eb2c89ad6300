// Package horizon models an observer-specific terrain obstruction profile:
// for each azimuth, the minimum altitude at which the sky is clear.
package horizon

import (
	"sort"

	"github.com/litescript/astra-sky/internal/astro"
)

// Point is one measured obstruction: at this azimuth the sky is blocked
// below this altitude.
type Point struct {
	AzDeg  float64 // Azimuth in degrees, normalized to [0, 360)
	AltDeg float64 // Minimum unobstructed altitude in degrees
}

// azimuthEpsilon is the span below which two profile points are treated
// as coincident and no interpolation is attempted.
const azimuthEpsilon = 0.01

// Profile is a closed circular piecewise-linear obstruction curve, sorted
// ascending by azimuth. The segment from the last point back to the first
// wraps through the 0/360 seam. A Profile may be empty (clear horizon) or
// hold a single point (constant obstruction).
type Profile struct {
	points []Point
}

// NewProfile builds a profile from points in any order. Azimuths are
// normalized into [0, 360) and the points sorted ascending by azimuth;
// the returned Profile is the only way to obtain the invariant the
// interpolation relies on.
func NewProfile(points []Point) *Profile {
	normalized := make([]Point, len(points))
	for i, p := range points {
		normalized[i] = Point{AzDeg: astro.Normalize360(p.AzDeg), AltDeg: p.AltDeg}
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].AzDeg < normalized[j].AzDeg
	})
	return &Profile{points: normalized}
}

// Points returns a copy of the stored points in ascending azimuth order.
func (p *Profile) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Len returns the number of stored points.
func (p *Profile) Len() int {
	return len(p.points)
}

// AltitudeAt returns the obstruction altitude at the given azimuth.
//
//   - empty profile: 0 (no obstruction)
//   - single point: that point's altitude everywhere
//   - otherwise: linear interpolation between the bracketing points,
//     wrapping through the 0/360 seam on either side
func (p *Profile) AltitudeAt(azDeg float64) float64 {
	switch len(p.points) {
	case 0:
		return 0
	case 1:
		return p.points[0].AltDeg
	}

	az := astro.Normalize360(azDeg)

	// low: largest stored azimuth <= az, wrapping to the last point.
	// high: smallest stored azimuth >= az, wrapping to the first point.
	n := len(p.points)
	hi := sort.Search(n, func(i int) bool { return p.points[i].AzDeg >= az })

	var low, high Point
	if hi == n {
		low, high = p.points[n-1], p.points[0]
	} else if p.points[hi].AzDeg == az {
		return p.points[hi].AltDeg
	} else if hi == 0 {
		low, high = p.points[n-1], p.points[0]
	} else {
		low, high = p.points[hi-1], p.points[hi]
	}

	// Near-duplicate azimuths: return an endpoint instead of dividing by
	// a vanishing span.
	if astro.ForwardSpan(low.AzDeg, high.AzDeg) < azimuthEpsilon {
		return low.AltDeg
	}

	return astro.LerpCircular(low.AzDeg, high.AzDeg, az, low.AltDeg, high.AltDeg)
}
