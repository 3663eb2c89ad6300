// Command astra-sky plans a night of astrophotography: visibility windows
// and best observation times for configured targets, plus a sky map of
// already-imaged footprints.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/astra-sky/internal/astro"
	"github.com/litescript/astra-sky/internal/config"
	"github.com/litescript/astra-sky/internal/footprint"
	"github.com/litescript/astra-sky/internal/horizon"
	"github.com/litescript/astra-sky/internal/logging"
	"github.com/litescript/astra-sky/internal/plan"
	"github.com/litescript/astra-sky/internal/state"
	"github.com/litescript/astra-sky/internal/ui"
)

// CLI flags for headless mode
var (
	reportMode bool
	jsonPath   string
	targetName string
)

// recomputeInterval keeps TUI plans fresh as the evening progresses.
const recomputeInterval = time.Minute

func main() {
	configPath := flag.String("config", "astra-sky.yaml", "Path to session configuration")
	dateStr := flag.String("date", "", "Night to plan, as YYYY-MM-DD (default: today)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	lat := flag.Float64("lat", math.NaN(), "Override observer latitude in degrees")
	lon := flag.Float64("lon", math.NaN(), "Override observer longitude in degrees")
	flag.BoolVar(&reportMode, "report", false, "Print a text planning report instead of the TUI")
	flag.StringVar(&jsonPath, "json", "", "Export the plan as JSON to a file (use - for stdout)")
	flag.StringVar(&targetName, "target", "", "Plan only this target: a configured name or ad-hoc \"ra,dec\" degrees")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	date, err := parseDate(*dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	obs := astro.Observer{
		Name:   cfg.Observer.Name,
		LatDeg: cfg.Observer.Latitude,
		LonDeg: cfg.Observer.Longitude,
	}
	if !math.IsNaN(*lat) {
		obs.LatDeg = *lat
		obs.Name = ""
	}
	if !math.IsNaN(*lon) {
		obs.LonDeg = *lon
		obs.Name = ""
	}

	var profile *horizon.Profile
	if cfg.HorizonFile != "" {
		profile, err = horizon.LoadProfile(cfg.HorizonFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("Loaded horizon profile: %d points", profile.Len())
	}

	targets, err := selectTargets(cfg, targetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stateMgr := state.NewManager(obs, cfg.IdealAltitudeDeg)
	stateMgr.SetProfile(profile)
	stateMgr.SetTargets(targets)
	stateMgr.SetFootprints(footprintsFromConfig(cfg))

	computePlans(stateMgr, date, logger)

	// Headless mode: no TUI
	headless := reportMode || jsonPath != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		runHeadless(stateMgr, logger)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	p := tea.NewProgram(ui.New(stateMgr), tea.WithAltScreen())

	go runComputeLoop(ctx, stateMgr, date, p, logger)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return date, nil
}

func selectTargets(cfg *config.Config, name string) ([]plan.Target, error) {
	// Ad-hoc coordinates bypass the configured catalog entirely.
	if tgt, ok := parseAdHocTarget(name); ok {
		return []plan.Target{tgt}, nil
	}

	var targets []plan.Target
	for _, t := range cfg.Targets {
		if name != "" && !strings.EqualFold(t.Name, name) {
			continue
		}
		targets = append(targets, plan.Target{
			Name:     t.Name,
			Position: astro.EquatorialPosition{RAdeg: t.RADeg, DecDeg: t.DecDeg},
		})
	}
	if name != "" && len(targets) == 0 {
		return nil, fmt.Errorf("target %q not found in configuration", name)
	}
	return targets, nil
}

// parseAdHocTarget interprets a -target value of the form "ra,dec" in
// degrees, e.g. "10.68,41.27".
func parseAdHocTarget(s string) (plan.Target, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return plan.Target{}, false
	}
	ra, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	dec, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return plan.Target{}, false
	}
	return plan.Target{
		Name:     fmt.Sprintf("%.2f,%.2f", ra, dec),
		Position: astro.EquatorialPosition{RAdeg: astro.Normalize360(ra), DecDeg: dec},
	}, true
}

func footprintsFromConfig(cfg *config.Config) []footprint.Footprint {
	var fps []footprint.Footprint
	for _, fc := range cfg.Footprints {
		fps = append(fps, footprint.Footprint{
			ID:        fc.ID,
			CenterRA:  fc.CenterRA,
			CenterDec: fc.CenterDec,
			WidthDeg:  fc.WidthDeg,
			HeightDeg: fc.HeightDeg,
			// Config rotation is a position angle, clockwise from north.
			RotationDeg: -fc.RotationDeg,
		})
	}
	return fps
}

// computePlans recomputes every target's night plan and stores the result.
func computePlans(stateMgr *state.Manager, date time.Time, logger *logging.Logger) {
	start := time.Now()
	obs, profile, floor, targets := stateMgr.Inputs()

	sun := astro.NightTimes(obs, date)
	if sun.Sunset.IsZero() || sun.Sunrise.IsZero() {
		logger.Warn("No sunset/sunrise on %s at this site", date.Format("2006-01-02"))
	}

	plans := make([]*plan.NightPlan, 0, len(targets))
	for _, tgt := range targets {
		plans = append(plans, plan.Compute(tgt, obs, sun, profile, floor, start))
	}

	stateMgr.Update(sun, plans, time.Since(start), nil)
	logger.Debug("Computed %d plans in %v", len(plans), time.Since(start))
}

func runComputeLoop(ctx context.Context, stateMgr *state.Manager, date time.Time, p *tea.Program, logger *logging.Logger) {
	ticker := time.NewTicker(recomputeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Compute loop shutting down")
			p.Quit()
			return
		case <-ticker.C:
			computePlans(stateMgr, date, logger)
			p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot()})
		}
	}
}

// runHeadless prints the report and/or JSON export without starting a TUI.
func runHeadless(stateMgr *state.Manager, logger *logging.Logger) {
	snap := stateMgr.Snapshot()

	if jsonPath != "" {
		export := plan.ExportPlans(snap.Plans, snap.LastCompute)
		if jsonPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: write JSON to stdout: %v\n", err)
				os.Exit(1)
			}
		} else {
			f, err := os.Create(jsonPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: create export file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				fmt.Fprintf(os.Stderr, "Error: write JSON: %v\n", err)
				os.Exit(1)
			}
			logger.Info("Wrote plan export to %s", jsonPath)
		}
	}

	if reportMode || jsonPath == "" {
		plan.WriteReport(os.Stdout, snap.Plans, snap.LastCompute)
	}
}
