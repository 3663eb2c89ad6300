package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/astra-sky/internal/astro"
	"github.com/litescript/astra-sky/internal/state"
)

// Dashboard colors
const (
	colorObservable = "#7CFC00" // Lawn green - target clears the threshold
	colorMarginal   = "#FFD700" // Gold - clears by less than 10 degrees
	colorBlocked    = "#FF6347" // Tomato - never observable tonight
)

// RenderDashboard renders the per-target planning table.
// Format:
//
//	M31    22:14 to 03:40   Best 00:55   61°/E    +41.2°
//	M42    not observable tonight
func RenderDashboard(snap state.Snapshot, width int) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	var b strings.Builder

	b.WriteString("  " + labelStyle.Render(siteLabel(snap)) + "\n")
	b.WriteString("  " + dimStyle.Render(nightLabel(snap.Sun)) + "\n\n")

	if len(snap.Plans) == 0 {
		b.WriteString("  " + dimStyle.Render("No targets configured") + "\n")
		return b.String()
	}

	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%-16s %-5s %-18s %-12s %-9s %s",
		"Target", "Vis", "Window", "Best", "Alt/Az", "Clearance")) + "\n")

	for i, p := range snap.Plans {
		cursor := "  "
		nameStyle := lipgloss.NewStyle()
		if i == snap.Selected {
			cursor = selectedStyle.Render("▶ ")
			nameStyle = selectedStyle
		}

		name := nameStyle.Render(fmt.Sprintf("%-16s", truncate(p.Target.Name, 16)))

		if !p.Window.Valid() {
			blocked := lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlocked))
			b.WriteString(cursor + name + blocked.Render("░░░░  not observable tonight") + "\n")
			continue
		}

		window := fmt.Sprintf("%s to %s",
			p.Window.Start.Format("15:04"), p.Window.End.Format("15:04"))

		best, altAz, clearance := "", "", ""
		rowColor := colorMarginal
		if p.HasBest {
			best = p.Best.Time.Format("15:04")
			altAz = fmt.Sprintf("%2.0f°/%s", p.Best.AltDeg, astro.CompassDirection(p.Best.AzDeg))
			clearance = fmt.Sprintf("%+.1f°", p.BestClearance)
			if p.BestClearance >= 10 {
				rowColor = colorObservable
			}
		}

		row := lipgloss.NewStyle().Foreground(lipgloss.Color(rowColor))
		b.WriteString(cursor + name + row.Render(fmt.Sprintf("%-5s %-18s %-12s %-9s %s",
			clearanceBar(p.BestClearance), window, best, altAz, clearance)) + "\n")
	}

	return b.String()
}

// clearanceBar renders a 4-cell visibility bar from the best clearance.
func clearanceBar(clearance float64) string {
	switch {
	case clearance >= 30:
		return "████"
	case clearance >= 15:
		return "███░"
	case clearance >= 5:
		return "██░░"
	default:
		return "█░░░"
	}
}

func siteLabel(snap state.Snapshot) string {
	if snap.Observer.Name != "" {
		return snap.Observer.Name
	}
	return fmt.Sprintf("%.4f, %.4f", snap.Observer.LatDeg, snap.Observer.LonDeg)
}

func nightLabel(sun astro.SunTimes) string {
	if sun.Sunset.IsZero() || sun.Sunrise.IsZero() {
		return "No sunset/sunrise at this site and date"
	}
	label := fmt.Sprintf("Sunset %s · Sunrise %s",
		sun.Sunset.Format("15:04"), sun.Sunrise.Format("15:04"))
	if !sun.AstronomicalDusk.IsZero() && !sun.AstronomicalDawn.IsZero() {
		label += fmt.Sprintf(" · Dark %s to %s",
			sun.AstronomicalDusk.Format("15:04"), sun.AstronomicalDawn.Format("15:04"))
	}
	return label
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
