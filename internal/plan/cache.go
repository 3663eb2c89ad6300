package plan

import (
	"sort"
	"sync"

	"github.com/litescript/astra-sky/internal/footprint"
)

// CornersCache caches projected corner quads for a set of footprints so
// that hit testing and rendering do not recompute the rotation and
// meridian-convergence math on every query.
type CornersCache struct {
	mu sync.RWMutex

	// Cache keyed by footprint ID.
	corners map[string][4]footprint.SkyPoint

	// The footprint set the cache was built from, for bounding views.
	footprints []footprint.Footprint
}

// NewCornersCache creates an empty corners cache.
func NewCornersCache() *CornersCache {
	return &CornersCache{
		corners: make(map[string][4]footprint.SkyPoint),
	}
}

// Update replaces the cached set with the given footprints, recomputing
// every corner quad. Footprints no longer present are dropped.
func (cc *CornersCache) Update(fps []footprint.Footprint) {
	fresh := make(map[string][4]footprint.SkyPoint, len(fps))
	for _, fp := range fps {
		fresh[fp.ID] = footprint.Corners(fp)
	}

	cc.mu.Lock()
	cc.corners = fresh
	cc.footprints = append([]footprint.Footprint(nil), fps...)
	cc.mu.Unlock()
}

// Corners returns the cached corner quad for a footprint ID.
func (cc *CornersCache) Corners(id string) ([4]footprint.SkyPoint, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	quad, ok := cc.corners[id]
	return quad, ok
}

// Len returns the number of cached footprints.
func (cc *CornersCache) Len() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.corners)
}

// HitTest returns the IDs of all cached footprints whose projected quad
// contains the given sky point, sorted for stable display order.
func (cc *CornersCache) HitTest(raDeg, decDeg float64) []string {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	var hits []string
	for id, quad := range cc.corners {
		if footprint.PointInPolygon(raDeg, decDeg, quad[:]) {
			hits = append(hits, id)
		}
	}
	sort.Strings(hits)
	return hits
}

// BoundingView computes the view bounds covering the cached set.
func (cc *CornersCache) BoundingView() footprint.ViewBounds {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return footprint.BoundingView(cc.footprints)
}

// Clear removes all cached footprints.
func (cc *CornersCache) Clear() {
	cc.mu.Lock()
	cc.corners = make(map[string][4]footprint.SkyPoint)
	cc.footprints = nil
	cc.mu.Unlock()
}
