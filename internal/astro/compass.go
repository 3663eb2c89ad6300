package astro

import "math"

// compassDirections are the 16 points of the compass rose, clockwise from north.
var compassDirections = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassDirection returns the 16-point compass direction for an azimuth
// in degrees (0 = north, increasing eastward).
func CompassDirection(azDeg float64) string {
	idx := int(math.Round(Normalize360(azDeg)/22.5)) % 16
	return compassDirections[idx]
}
