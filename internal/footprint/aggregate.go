package footprint

import (
	"math"
	"sort"

	"github.com/litescript/astra-sky/internal/astro"
)

// ViewBounds describes a sky-map view containing a set of footprints.
type ViewBounds struct {
	CenterRA  float64
	CenterDec float64
	FOVDeg    float64
}

// WholeSkyView is the fallback for an empty footprint set.
var WholeSkyView = ViewBounds{CenterRA: 180, CenterDec: 0, FOVDeg: 180}

// BoundingView computes a map view that contains every footprint.
//
// Each footprint contributes its half-diagonal as a conservative radius,
// which is cheaper than re-deriving rotated corners and can only
// overestimate. Declination bounds clamp to the poles. Right ascension is
// circular: when the naive span exceeds 180° the set straddles the 0/360
// seam, and the bounding arc is found as the complement of the largest
// empty arc between consecutive centers. A naive RA mean at the seam
// lands the view center on the far side of the sky, which is exactly the
// failure mode the gap walk avoids.
func BoundingView(fps []Footprint) ViewBounds {
	switch len(fps) {
	case 0:
		return WholeSkyView
	case 1:
		fp := fps[0]
		return ViewBounds{
			CenterRA:  fp.CenterRA,
			CenterDec: fp.CenterDec,
			FOVDeg:    2 * math.Max(fp.WidthDeg, fp.HeightDeg),
		}
	}

	maxRadius := 0.0
	minDec, maxDec := 90.0, -90.0
	minRA, maxRA := 360.0, 0.0
	ras := make([]float64, len(fps))

	for i, fp := range fps {
		r := math.Sqrt(fp.WidthDeg*fp.WidthDeg+fp.HeightDeg*fp.HeightDeg) / 2
		if r > maxRadius {
			maxRadius = r
		}

		ra := astro.Normalize360(fp.CenterRA)
		ras[i] = ra
		minRA = math.Min(minRA, ra)
		maxRA = math.Max(maxRA, ra)
		minDec = math.Min(minDec, fp.CenterDec)
		maxDec = math.Max(maxDec, fp.CenterDec)
	}

	minDec = math.Max(-90, minDec-maxRadius)
	maxDec = math.Min(90, maxDec+maxRadius)
	decSpan := maxDec - minDec
	centerDec := (minDec + maxDec) / 2

	var raSpan, centerRA float64
	if maxRA-minRA <= 180 {
		raSpan = (maxRA - minRA) + 2*maxRadius
		centerRA = astro.Normalize360((minRA + maxRA) / 2)
	} else {
		// Likely straddling the seam: walk the sorted centers for the
		// largest angular gap; the true bounding arc is its complement.
		sort.Float64s(ras)

		maxGap := 0.0
		gapStart := ras[len(ras)-1]
		for i := 1; i < len(ras); i++ {
			if gap := ras[i] - ras[i-1]; gap > maxGap {
				maxGap = gap
				gapStart = ras[i-1]
			}
		}
		if wrap := 360 - ras[len(ras)-1] + ras[0]; wrap > maxGap {
			maxGap = wrap
			gapStart = ras[len(ras)-1]
		}

		raSpan = (360 - maxGap) + 2*maxRadius
		centerRA = astro.Normalize360(gapStart + maxGap + (360-maxGap)/2)
	}

	fov := 1.5 * math.Max(raSpan, decSpan)
	fov = math.Min(180, math.Max(1, fov))

	return ViewBounds{CenterRA: centerRA, CenterDec: centerDec, FOVDeg: fov}
}
