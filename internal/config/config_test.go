package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "astra-sky.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
observer:
  name: Backyard
  latitude: 48.137
  longitude: 11.575
ideal_altitude_deg: 25
horizon_file: horizon.txt
targets:
  - name: M31
    ra_deg: 10.6847
    dec_deg: 41.2690
  - name: M42
    ra_deg: 83.8221
    dec_deg: -5.3911
footprints:
  - id: img-001
    center_ra: 10.7
    center_dec: 41.3
    width_deg: 2.1
    height_deg: 1.4
    rotation_deg: 12.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Observer.Name != "Backyard" || cfg.Observer.Latitude != 48.137 {
		t.Errorf("observer = %+v", cfg.Observer)
	}
	if cfg.IdealAltitudeDeg != 25 {
		t.Errorf("ideal altitude = %.1f, want 25", cfg.IdealAltitudeDeg)
	}
	if len(cfg.Targets) != 2 || cfg.Targets[1].Name != "M42" {
		t.Errorf("targets = %+v", cfg.Targets)
	}
	if len(cfg.Footprints) != 1 || cfg.Footprints[0].RotationDeg != 12.5 {
		t.Errorf("footprints = %+v", cfg.Footprints)
	}
}

func TestLoad_DefaultIdealAltitude(t *testing.T) {
	path := writeConfig(t, `
observer:
  latitude: 0
  longitude: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.IdealAltitudeDeg != DefaultIdealAltitude {
		t.Errorf("ideal altitude = %.1f, want default %.1f", cfg.IdealAltitudeDeg, DefaultIdealAltitude)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "latitude out of range",
			content: "observer:\n  latitude: 91\n  longitude: 0\n",
			wantErr: "latitude",
		},
		{
			name:    "longitude out of range",
			content: "observer:\n  latitude: 0\n  longitude: -200\n",
			wantErr: "longitude",
		},
		{
			name:    "target ra out of range",
			content: "observer:\n  latitude: 0\n  longitude: 0\ntargets:\n  - name: bad\n    ra_deg: 400\n    dec_deg: 0\n",
			wantErr: "ra_deg",
		},
		{
			name:    "footprint missing id",
			content: "observer:\n  latitude: 0\n  longitude: 0\nfootprints:\n  - center_ra: 10\n    center_dec: 0\n    width_deg: 1\n    height_deg: 1\n",
			wantErr: "missing id",
		},
		{
			name:    "footprint zero size",
			content: "observer:\n  latitude: 0\n  longitude: 0\nfootprints:\n  - id: x\n    center_ra: 10\n    center_dec: 0\n    width_deg: 0\n    height_deg: 1\n",
			wantErr: "non-positive",
		},
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() on missing file expected error")
	}
}
