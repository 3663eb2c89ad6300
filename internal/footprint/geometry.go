// Package footprint computes oriented rectangular sky projections of
// camera sensors and aggregate map views over sets of them.
package footprint

import (
	"math"
)

// Footprint describes a camera sensor's projected rectangle on the sky,
// as extracted from plate-solve output by an upstream collaborator.
// ID and display metadata are owned by the caller; this package only
// derives geometry and never mutates a footprint.
type Footprint struct {
	ID        string
	CenterRA  float64 // degrees, [0, 360)
	CenterDec float64 // degrees, [-90, 90]
	WidthDeg  float64
	HeightDeg float64
	// RotationDeg is a counter-clockwise mathematical rotation in the
	// local east/north tangent plane. Plate-solve position angles measured
	// clockwise from north must be negated before they get here.
	RotationDeg float64
}

// SkyPoint is an (RA, Dec) pair in degrees.
type SkyPoint struct {
	RA  float64
	Dec float64
}

// Corners returns the four corners of the footprint rectangle in sky
// coordinates, in a consistent winding order.
//
// The model is a flat-sky tangent-plane approximation, valid for the
// small fields of view cameras produce. The 1/cos(dec) factor compensates
// for meridian convergence: an RA degree subtends less true angle away
// from the celestial equator. Near the poles the factor diverges; that is
// a documented limitation of the approximation, deliberately not clamped,
// since clamping would return plausible-looking but wrong geometry.
func Corners(fp Footprint) [4]SkyPoint {
	hw := fp.WidthDeg / 2
	hh := fp.HeightDeg / 2

	theta := fp.RotationDeg * math.Pi / 180
	cosT := math.Cos(theta)
	sinT := math.Sin(theta)

	offsets := [4][2]float64{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	}

	cosDec := math.Cos(fp.CenterDec * math.Pi / 180)

	var corners [4]SkyPoint
	for i, off := range offsets {
		dx := off[0]*cosT - off[1]*sinT
		dy := off[0]*sinT + off[1]*cosT

		corners[i] = SkyPoint{
			RA:  fp.CenterRA + dx/cosDec,
			Dec: fp.CenterDec + dy,
		}
	}
	return corners
}

// PointInPolygon tests whether a sky point falls inside a polygon by ray
// casting. The polygon is treated as open in RA: footprints are small
// enough that none spans the 0/360 seam, so no wraparound correction is
// applied here. Zero-area polygons contain nothing; points exactly on an
// edge follow the ray-casting half-open convention, which is stable but
// not otherwise specified.
func PointInPolygon(ra, dec float64, corners []SkyPoint) bool {
	n := len(corners)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := corners[i], corners[j]
		if (vi.Dec > dec) != (vj.Dec > dec) &&
			ra < (vj.RA-vi.RA)*(dec-vi.Dec)/(vj.Dec-vi.Dec)+vi.RA {
			inside = !inside
		}
	}
	return inside
}
