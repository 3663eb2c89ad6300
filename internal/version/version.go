// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Footprint aggregation with seam-aware bounding views, hit testing
// 0.2.0 - Horizon obstruction profiles, clearance-based best time
// 0.1.0 - Initial release: night series, ideal windows, TUI dashboard
