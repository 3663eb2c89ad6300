package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/astra-sky/internal/astro"
)

// PlanExport is the JSON-serializable representation of a night's plans.
type PlanExport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Observer    ObserverExport `json:"observer"`
	Night       NightExport    `json:"night"`
	Targets     []TargetExport `json:"targets"`
}

// ObserverExport is a JSON-friendly observing site.
type ObserverExport struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NightExport carries the sun event times bounding the plans.
type NightExport struct {
	Sunset           time.Time `json:"sunset"`
	Sunrise          time.Time `json:"sunrise"`
	AstronomicalDusk time.Time `json:"astronomical_dusk,omitempty"`
	AstronomicalDawn time.Time `json:"astronomical_dawn,omitempty"`
}

// TargetExport is one target's plan with derived fields.
type TargetExport struct {
	Name          string     `json:"name"`
	RADeg         float64    `json:"ra_deg"`
	DecDeg        float64    `json:"dec_deg"`
	Observable    bool       `json:"observable"`
	WindowStart   *time.Time `json:"window_start,omitempty"`
	WindowEnd     *time.Time `json:"window_end,omitempty"`
	BestTime      *time.Time `json:"best_time,omitempty"`
	BestAltDeg    float64    `json:"best_alt_deg,omitempty"`
	BestAzDeg     float64    `json:"best_az_deg,omitempty"`
	BestClearance float64    `json:"best_clearance_deg,omitempty"`
	SampleCount   int        `json:"sample_count"`
}

// ExportPlans converts a slice of night plans to an exportable format.
// All plans are assumed to share an observer and night.
func ExportPlans(plans []*NightPlan, generatedAt time.Time) *PlanExport {
	export := &PlanExport{GeneratedAt: generatedAt}
	if len(plans) == 0 {
		return export
	}

	first := plans[0]
	export.Observer = ObserverExport{
		Name:      first.Observer.Name,
		Latitude:  first.Observer.LatDeg,
		Longitude: first.Observer.LonDeg,
	}
	export.Night = NightExport{
		Sunset:           first.Sun.Sunset,
		Sunrise:          first.Sun.Sunrise,
		AstronomicalDusk: first.Sun.AstronomicalDusk,
		AstronomicalDawn: first.Sun.AstronomicalDawn,
	}

	for _, p := range plans {
		te := TargetExport{
			Name:        p.Target.Name,
			RADeg:       p.Target.Position.RAdeg,
			DecDeg:      p.Target.Position.DecDeg,
			Observable:  p.Observable(),
			WindowStart: p.Window.Start,
			WindowEnd:   p.Window.End,
			SampleCount: len(p.Series),
		}
		if p.HasBest {
			t := p.Best.Time
			te.BestTime = &t
			te.BestAltDeg = p.Best.AltDeg
			te.BestAzDeg = p.Best.AzDeg
			te.BestClearance = p.BestClearance
		}
		export.Targets = append(export.Targets, te)
	}

	return export
}

// WriteJSON writes the plan export as JSON to the given writer.
func (e *PlanExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteReport writes a text table of the night's plans to the given writer.
func WriteReport(w io.Writer, plans []*NightPlan, timestamp time.Time) {
	fmt.Fprintf(w, "Night plan @ %s\n", timestamp.Format(time.RFC3339))

	if len(plans) > 0 {
		first := plans[0]
		site := first.Observer.Name
		if site == "" {
			site = fmt.Sprintf("%.4f, %.4f", first.Observer.LatDeg, first.Observer.LonDeg)
		}
		fmt.Fprintf(w, "Site: %s\n", site)
		if !first.Sun.Sunset.IsZero() && !first.Sun.Sunrise.IsZero() {
			fmt.Fprintf(w, "Night: %s to %s\n",
				first.Sun.Sunset.Format("15:04"), first.Sun.Sunrise.Format("15:04"))
		} else {
			fmt.Fprintln(w, "Night: no sunset/sunrise at this site and date")
		}
	}
	fmt.Fprintln(w, strings.Repeat("─", 78))

	if len(plans) == 0 {
		fmt.Fprintln(w, "No targets")
		return
	}

	fmt.Fprintf(w, "%-16s %-9s %-13s %-7s %-9s %-10s\n",
		"Target", "Window", "", "Best", "Alt/Az", "Clearance")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	observable := 0
	for _, p := range plans {
		name := truncateStr(p.Target.Name, 16)

		if !p.Window.Valid() {
			fmt.Fprintf(w, "%-16s not observable tonight\n", name)
			continue
		}
		observable++

		bestCol, altAz, clearance := "-", "-", "-"
		if p.HasBest {
			bestCol = p.Best.Time.Format("15:04")
			altAz = fmt.Sprintf("%2.0f°/%s", p.Best.AltDeg, astro.CompassDirection(p.Best.AzDeg))
			clearance = fmt.Sprintf("%+.1f°", p.BestClearance)
		}

		fmt.Fprintf(w, "%-16s %-9s %-13s %-7s %-9s %-10s\n",
			name,
			p.Window.Start.Format("15:04"),
			fmt.Sprintf("to %s", p.Window.End.Format("15:04")),
			bestCol,
			altAz,
			clearance,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d of %d targets observable\n", observable, len(plans))
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
