// Package state provides thread-safe session state for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/astra-sky/internal/astro"
	"github.com/litescript/astra-sky/internal/footprint"
	"github.com/litescript/astra-sky/internal/horizon"
	"github.com/litescript/astra-sky/internal/plan"
)

// Manager handles all shared session state with thread-safe access. The
// TUI reads through Snapshot; the compute path writes through Update and
// the setters.
type Manager struct {
	mu sync.RWMutex

	// Session inputs
	observer   astro.Observer
	profile    *horizon.Profile
	floorDeg   float64
	targets    []plan.Target
	footprints []footprint.Footprint

	// Computed state
	sun             astro.SunTimes
	plans           []*plan.NightPlan
	lastCompute     time.Time
	computeDuration time.Duration
	lastError       error

	// Derived/cached data
	corners *plan.CornersCache
	view    footprint.ViewBounds

	// UI selection
	selected int
}

// NewManager creates a session manager for an observer and ideal floor.
func NewManager(obs astro.Observer, floorDeg float64) *Manager {
	return &Manager{
		observer: obs,
		floorDeg: floorDeg,
		corners:  plan.NewCornersCache(),
		view:     footprint.WholeSkyView,
	}
}

// SetProfile replaces the horizon obstruction profile. Nil means a clear
// horizon.
func (m *Manager) SetProfile(p *horizon.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p
}

// SetTargets replaces the target list and clamps the selection.
func (m *Manager) SetTargets(targets []plan.Target) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.targets = append([]plan.Target(nil), targets...)
	if m.selected >= len(m.targets) {
		m.selected = 0
	}
}

// SetFootprints replaces the footprint set, rebuilding the corners cache
// and the bounding view in one step so they can never disagree.
func (m *Manager) SetFootprints(fps []footprint.Footprint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.footprints = append([]footprint.Footprint(nil), fps...)
	m.corners.Update(fps)
	m.view = footprint.BoundingView(fps)
}

// Update atomically stores a freshly computed set of night plans.
func (m *Manager) Update(sun astro.SunTimes, plans []*plan.NightPlan, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.computeDuration = computeDuration
	m.lastError = err

	if err != nil {
		return
	}
	m.sun = sun
	m.plans = plans
}

// Inputs returns the computation inputs as one consistent read, for the
// goroutine that recomputes plans.
func (m *Manager) Inputs() (astro.Observer, *horizon.Profile, float64, []plan.Target) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	targets := make([]plan.Target, len(m.targets))
	copy(targets, m.targets)
	return m.observer, m.profile, m.floorDeg, targets
}

// HitTest returns footprint IDs under a sky point, via the corners cache.
func (m *Manager) HitTest(raDeg, decDeg float64) []string {
	m.mu.RLock()
	cc := m.corners
	m.mu.RUnlock()
	return cc.HitTest(raDeg, decDeg)
}

// SelectNext moves the target selection down, wrapping.
func (m *Manager) SelectNext() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.targets) > 0 {
		m.selected = (m.selected + 1) % len(m.targets)
	}
}

// SelectPrev moves the target selection up, wrapping.
func (m *Manager) SelectPrev() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.targets) > 0 {
		m.selected = (m.selected - 1 + len(m.targets)) % len(m.targets)
	}
}

// HasData returns true once at least one successful compute has landed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plans) > 0
}

// Snapshot represents an immutable snapshot of the session.
type Snapshot struct {
	Observer astro.Observer
	FloorDeg float64
	Profile  *horizon.Profile
	Sun      astro.SunTimes

	Plans      []*plan.NightPlan
	Footprints []footprint.Footprint
	View       footprint.ViewBounds

	Selected        int
	LastCompute     time.Time
	ComputeDuration time.Duration
	LastError       error
}

// Snapshot returns a consistent snapshot of the session.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	plans := make([]*plan.NightPlan, len(m.plans))
	copy(plans, m.plans)

	fps := make([]footprint.Footprint, len(m.footprints))
	copy(fps, m.footprints)

	return Snapshot{
		Observer:        m.observer,
		FloorDeg:        m.floorDeg,
		Profile:         m.profile,
		Sun:             m.sun,
		Plans:           plans,
		Footprints:      fps,
		View:            m.view,
		Selected:        m.selected,
		LastCompute:     m.lastCompute,
		ComputeDuration: m.computeDuration,
		LastError:       m.lastError,
	}
}

// SelectedPlan returns the plan for the currently selected target, or nil.
func (s Snapshot) SelectedPlan() *plan.NightPlan {
	if s.Selected < 0 || s.Selected >= len(s.Plans) {
		return nil
	}
	return s.Plans[s.Selected]
}
