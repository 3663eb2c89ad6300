package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/astra-sky/internal/plan"
	"github.com/litescript/astra-sky/internal/state"
	"github.com/litescript/astra-sky/internal/visibility"
)

// chartRows is the vertical resolution of the altitude chart, covering
// 0 to 90 degrees.
const chartRows = 12

// RenderAltitudePanel renders the altitude-over-night chart for the
// selected target. Columns are night samples; filled cells sit below the
// sampled altitude. Samples above the effective threshold are green,
// obstructed or low samples dim.
func RenderAltitudePanel(snap state.Snapshot, width int) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)

	p := snap.SelectedPlan()
	if p == nil {
		return "  " + dimStyle.Render("No target selected") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + labelStyle.Render(p.Target.Name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("   RA %.2f° Dec %+.2f°",
		p.Target.Position.RAdeg, p.Target.Position.DecDeg)))
	b.WriteString("\n\n")

	if len(p.Series) == 0 {
		b.WriteString("  " + dimStyle.Render("No night to sample") + "\n")
		return b.String()
	}

	b.WriteString(renderAltitudeChart(p, snap))
	b.WriteString("\n")

	if p.HasBest {
		best := lipgloss.NewStyle().Foreground(lipgloss.Color(colorObservable))
		b.WriteString("  " + best.Render(fmt.Sprintf("Best %s at %.0f° altitude, clearance %+.1f°",
			p.Best.Time.Format("15:04"), p.Best.AltDeg, p.BestClearance)) + "\n")
	} else {
		blocked := lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlocked))
		b.WriteString("  " + blocked.Render("Never clears the observing threshold tonight") + "\n")
	}

	return b.String()
}

func renderAltitudeChart(p *plan.NightPlan, snap state.Snapshot) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	clearStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorObservable))
	bestStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	series := p.Series

	var b strings.Builder
	for row := chartRows - 1; row >= 0; row-- {
		// Altitude band this row covers.
		rowAlt := float64(row) * 90 / chartRows

		label := "    "
		if row == chartRows-1 {
			label = "90° "
		} else if rowAlt <= p.FloorDeg && float64(row+1)*90/chartRows > p.FloorDeg {
			label = fmt.Sprintf("%2.0f° ", p.FloorDeg)
		} else if row == 0 {
			label = " 0° "
		}
		b.WriteString("  " + dimStyle.Render(label))

		for i := range series {
			s := &series[i]
			threshold := visibility.EffectiveThreshold(snap.Profile, s.AzDeg, p.FloorDeg)

			cell := " "
			switch {
			case s.AltDeg >= rowAlt && s.AltDeg >= threshold:
				cell = clearStyle.Render("█")
			case s.AltDeg >= rowAlt:
				cell = dimStyle.Render("█")
			case rowAlt <= threshold && float64(row+1)*90/chartRows > threshold:
				cell = dimStyle.Render("·")
			}
			if p.HasBest && s.Time.Equal(p.Best.Time) && s.AltDeg >= rowAlt {
				cell = bestStyle.Render("█")
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	// Time axis: sunset, midpoint, sunrise.
	first, last := series[0].Time, series[len(series)-1].Time
	mid := first.Add(last.Sub(first) / 2)
	n := len(series)
	axis := first.Format("15:04")
	pad := n - len(axis) - 5
	if pad > 7 {
		half := pad / 2
		axis += strings.Repeat(" ", half-2) + mid.Format("15:04") + strings.Repeat(" ", pad-half-3)
	} else if pad > 0 {
		axis += strings.Repeat(" ", pad)
	}
	axis += last.Format("15:04")
	b.WriteString("      " + dimStyle.Render(axis) + "\n")

	return b.String()
}
