package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/astra-sky/internal/footprint"
	"github.com/litescript/astra-sky/internal/state"
)

// RenderFootprintPanel renders a character-cell sky map of the imaged
// footprints inside the aggregate view bounds. Each cell is hit tested
// against every footprint polygon; overlap shows as a denser shade.
func RenderFootprintPanel(snap state.Snapshot, width, height int) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)

	if len(snap.Footprints) == 0 {
		return "  " + dimStyle.Render("No footprints loaded") + "\n"
	}

	view := snap.View
	var b strings.Builder
	b.WriteString("  " + labelStyle.Render(fmt.Sprintf("%d footprints", len(snap.Footprints))))
	b.WriteString(dimStyle.Render(fmt.Sprintf("   view RA %.1f° Dec %+.1f° FOV %.1f°",
		view.CenterRA, view.CenterDec, view.FOVDeg)))
	b.WriteString("\n\n")

	b.WriteString(renderSkyGrid(snap, width, height))

	hits := hitIDsAt(snap, view.CenterRA, view.CenterDec)
	if len(hits) > 0 {
		b.WriteString("  " + dimStyle.Render("at center: "+strings.Join(hits, ", ")) + "\n")
	} else {
		b.WriteString("  " + dimStyle.Render("at center: no footprint") + "\n")
	}
	b.WriteString("\n")

	for _, fp := range snap.Footprints {
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%-12s RA %7.3f° Dec %+8.3f°  %.2f×%.2f°",
			truncate(fp.ID, 12), fp.CenterRA, fp.CenterDec, fp.WidthDeg, fp.HeightDeg)) + "\n")
	}

	return b.String()
}

// hitIDsAt returns the IDs of footprints covering a sky point, in
// display order.
func hitIDsAt(snap state.Snapshot, ra, dec float64) []string {
	var ids []string
	for _, fp := range snap.Footprints {
		quad := footprint.Corners(fp)
		if footprint.PointInPolygon(ra, dec, quad[:]) ||
			footprint.PointInPolygon(ra-360, dec, quad[:]) ||
			footprint.PointInPolygon(ra+360, dec, quad[:]) {
			ids = append(ids, fp.ID)
		}
	}
	return ids
}

func renderSkyGrid(snap state.Snapshot, width, height int) string {
	gridW := width - 6
	if gridW > 72 {
		gridW = 72
	}
	if gridW < 20 {
		gridW = 20
	}
	gridH := height - 4 - len(snap.Footprints)
	if gridH > 24 {
		gridH = 24
	}
	if gridH < 8 {
		gridH = 8
	}

	view := snap.View
	quads := make([][]footprint.SkyPoint, len(snap.Footprints))
	for i, fp := range snap.Footprints {
		quad := footprint.Corners(fp)
		quads[i] = quad[:]
	}

	singleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6"))
	overlapStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D946EF"))
	frameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString("  " + frameStyle.Render("┌"+strings.Repeat("─", gridW)+"┐") + "\n")

	for row := 0; row < gridH; row++ {
		b.WriteString("  " + frameStyle.Render("│"))
		for col := 0; col < gridW; col++ {
			// RA increases to the left on sky maps. Character cells are
			// roughly twice as tall as wide, so the RA axis spans twice
			// the FOV to keep footprints visually square.
			ra := view.CenterRA + (0.5-float64(col)/float64(gridW))*view.FOVDeg*2
			dec := view.CenterDec + (0.5-float64(row)/float64(gridH))*view.FOVDeg

			hits := 0
			for _, quad := range quads {
				// Corners near the 0/360 seam may sit one revolution away
				// from the computed cell RA.
				if footprint.PointInPolygon(ra, dec, quad) ||
					footprint.PointInPolygon(ra-360, dec, quad) ||
					footprint.PointInPolygon(ra+360, dec, quad) {
					hits++
				}
			}

			switch {
			case row == gridH/2 && col == gridW/2:
				b.WriteString(frameStyle.Render("┼"))
			case hits > 1:
				b.WriteString(overlapStyle.Render("▓"))
			case hits == 1:
				b.WriteString(singleStyle.Render("░"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString(frameStyle.Render("│") + "\n")
	}

	b.WriteString("  " + frameStyle.Render("└"+strings.Repeat("─", gridW)+"┘") + "\n")
	return b.String()
}
