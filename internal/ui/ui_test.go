package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/astra-sky/internal/astro"
	"github.com/litescript/astra-sky/internal/footprint"
	"github.com/litescript/astra-sky/internal/plan"
	"github.com/litescript/astra-sky/internal/state"
)

func testManager(t *testing.T) *state.Manager {
	t.Helper()

	obs := astro.Observer{Name: "Backyard", LatDeg: 48.137, LonDeg: 11.575}
	targets := []plan.Target{
		{Name: "Vega", Position: astro.EquatorialPosition{RAdeg: 279.2347, DecDeg: 38.7837}},
		{Name: "Canopus", Position: astro.EquatorialPosition{RAdeg: 95.9880, DecDeg: -52.6957}},
	}
	sun := astro.SunTimes{
		Sunset:  time.Date(2025, 7, 15, 19, 30, 0, 0, time.UTC),
		Sunrise: time.Date(2025, 7, 16, 4, 30, 0, 0, time.UTC),
	}

	m := state.NewManager(obs, 20)
	m.SetTargets(targets)

	var plans []*plan.NightPlan
	for _, tgt := range targets {
		plans = append(plans, plan.Compute(tgt, obs, sun, nil, 20, time.Now()))
	}
	m.Update(sun, plans, time.Millisecond, nil)

	m.SetFootprints([]footprint.Footprint{
		{ID: "img-001", CenterRA: 10, CenterDec: 40, WidthDeg: 2, HeightDeg: 1.5},
		{ID: "img-002", CenterRA: 10.8, CenterDec: 40.3, WidthDeg: 2, HeightDeg: 1.5},
	})

	return m
}

func TestRenderDashboard(t *testing.T) {
	snap := testManager(t).Snapshot()
	out := RenderDashboard(snap, 100)

	for _, want := range []string{"Backyard", "Vega", "Canopus", "Sunset 19:30", "not observable tonight"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDashboard_NoTargets(t *testing.T) {
	m := state.NewManager(astro.Observer{LatDeg: 0, LonDeg: 0}, 20)
	out := RenderDashboard(m.Snapshot(), 100)
	if !strings.Contains(out, "No targets configured") {
		t.Errorf("empty dashboard = %q", out)
	}
}

func TestRenderAltitudePanel(t *testing.T) {
	snap := testManager(t).Snapshot()
	out := RenderAltitudePanel(snap, 100)

	if !strings.Contains(out, "Vega") {
		t.Errorf("panel missing target name:\n%s", out)
	}
	if !strings.Contains(out, "Best ") {
		t.Errorf("panel missing best-time line:\n%s", out)
	}
	if !strings.Contains(out, "90°") || !strings.Contains(out, " 0°") {
		t.Errorf("panel missing altitude axis:\n%s", out)
	}
}

func TestRenderAltitudePanel_BlockedTarget(t *testing.T) {
	m := testManager(t)
	m.SelectNext() // Canopus
	out := RenderAltitudePanel(m.Snapshot(), 100)

	if !strings.Contains(out, "Canopus") {
		t.Errorf("panel missing target name:\n%s", out)
	}
	if !strings.Contains(out, "Never clears") {
		t.Errorf("panel should flag an unobservable target:\n%s", out)
	}
}

func TestRenderAltitudePanel_NoSelection(t *testing.T) {
	m := state.NewManager(astro.Observer{}, 20)
	out := RenderAltitudePanel(m.Snapshot(), 100)
	if !strings.Contains(out, "No target selected") {
		t.Errorf("empty panel = %q", out)
	}
}

func TestRenderFootprintPanel(t *testing.T) {
	snap := testManager(t).Snapshot()
	out := RenderFootprintPanel(snap, 100, 30)

	for _, want := range []string{"2 footprints", "img-001", "img-002", "░"} {
		if !strings.Contains(out, want) {
			t.Errorf("footprint panel missing %q:\n%s", want, out)
		}
	}
	// The two footprints overlap, so some cell must show the dense shade.
	if !strings.Contains(out, "▓") {
		t.Errorf("overlapping footprints should produce an overlap cell:\n%s", out)
	}
}

func TestRenderFootprintPanel_Empty(t *testing.T) {
	m := state.NewManager(astro.Observer{}, 20)
	out := RenderFootprintPanel(m.Snapshot(), 100, 30)
	if !strings.Contains(out, "No footprints loaded") {
		t.Errorf("empty panel = %q", out)
	}
}

func TestModel_ViewBeforeReady(t *testing.T) {
	m := New(testManager(t))
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before size = %q", got)
	}
}

func TestModel_KeyHandling(t *testing.T) {
	m := New(testManager(t))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if !m.ready {
		t.Fatal("window size should mark the model ready")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)
	if m.viewMode != ViewAltitude {
		t.Errorf("view after '2' = %v, want altitude", m.viewMode)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.viewMode != ViewFootprints {
		t.Errorf("view after tab = %v, want footprints", m.viewMode)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.viewMode != ViewDashboard {
		t.Errorf("view should cycle back to dashboard, got %v", m.viewMode)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if cmd == nil {
		t.Error("'q' should produce a quit command")
	}
}

func TestModel_SelectionKeys(t *testing.T) {
	mgr := testManager(t)
	m := New(mgr)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	if m.snapshot.Selected != 1 {
		t.Errorf("selection after 'j' = %d, want 1", m.snapshot.Selected)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(Model)
	if m.snapshot.Selected != 0 {
		t.Errorf("selection after 'k' = %d, want 0", m.snapshot.Selected)
	}
}

func TestModel_DataUpdate(t *testing.T) {
	mgr := testManager(t)
	m := New(state.NewManager(astro.Observer{}, 20))

	next, _ := m.Update(DataUpdateMsg{Snapshot: mgr.Snapshot()})
	m = next.(Model)
	if len(m.snapshot.Plans) != 2 {
		t.Errorf("snapshot plans after data update = %d, want 2", len(m.snapshot.Plans))
	}
}
