package astro

import "math"

// Circular-degree helpers shared by the horizon interpolation and the
// footprint aggregator. Azimuth and right ascension both live on a
// 0-360 circle, and both need the same seam-aware arithmetic.

// Normalize360 reduces an angle in degrees into [0, 360).
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ForwardSpan returns the span in degrees travelling forward (eastward)
// from one angle to another, in [0, 360). A span that crosses the 0/360
// seam is measured through the seam, not the long way around.
func ForwardSpan(fromDeg, toDeg float64) float64 {
	return Normalize360(toDeg - fromDeg)
}

// LerpCircular linearly interpolates a value across a forward arc from
// fromDeg to toDeg, evaluated at deg. All three angles are normalized
// first; deg is assumed to lie on the arc.
func LerpCircular(fromDeg, toDeg, deg, fromVal, toVal float64) float64 {
	span := ForwardSpan(fromDeg, toDeg)
	if span == 0 {
		return fromVal
	}
	offset := ForwardSpan(fromDeg, deg)
	return fromVal + (toVal-fromVal)*(offset/span)
}

// MidpointArc returns the midpoint of the forward arc from fromDeg to
// toDeg, normalized into [0, 360).
func MidpointArc(fromDeg, toDeg float64) float64 {
	return Normalize360(fromDeg + ForwardSpan(fromDeg, toDeg)/2)
}
