// Package config loads the observing session configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ObserverConfig is the observing site.
type ObserverConfig struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// TargetConfig is one celestial target to plan for.
type TargetConfig struct {
	Name   string  `yaml:"name"`
	RADeg  float64 `yaml:"ra_deg"`
	DecDeg float64 `yaml:"dec_deg"`
}

// FootprintConfig is one plate-solved image footprint.
type FootprintConfig struct {
	ID          string  `yaml:"id"`
	CenterRA    float64 `yaml:"center_ra"`
	CenterDec   float64 `yaml:"center_dec"`
	WidthDeg    float64 `yaml:"width_deg"`
	HeightDeg   float64 `yaml:"height_deg"`
	RotationDeg float64 `yaml:"rotation_deg"`
}

// Config is the top-level structure for astra-sky.yaml.
type Config struct {
	Observer ObserverConfig `yaml:"observer"`

	// IdealAltitudeDeg is the comfortable observing floor in degrees.
	// Zero means "use the default".
	IdealAltitudeDeg float64 `yaml:"ideal_altitude_deg"`

	// HorizonFile points at a plain-text obstruction profile
	// ("azimuth altitude" per line); empty means a clear horizon.
	HorizonFile string `yaml:"horizon_file"`

	Targets    []TargetConfig    `yaml:"targets"`
	Footprints []FootprintConfig `yaml:"footprints"`
}

// DefaultIdealAltitude is applied when ideal_altitude_deg is unset.
const DefaultIdealAltitude = 20.0

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.IdealAltitudeDeg == 0 {
		cfg.IdealAltitudeDeg = DefaultIdealAltitude
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks coordinate ranges.
func (c *Config) Validate() error {
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		return fmt.Errorf("observer latitude %.4f out of [-90, 90]", c.Observer.Latitude)
	}
	if c.Observer.Longitude < -180 || c.Observer.Longitude > 180 {
		return fmt.Errorf("observer longitude %.4f out of [-180, 180]", c.Observer.Longitude)
	}
	if c.IdealAltitudeDeg < 0 || c.IdealAltitudeDeg >= 90 {
		return fmt.Errorf("ideal_altitude_deg %.2f out of [0, 90)", c.IdealAltitudeDeg)
	}

	for _, t := range c.Targets {
		if t.RADeg < 0 || t.RADeg >= 360 {
			return fmt.Errorf("target %q: ra_deg %.4f out of [0, 360)", t.Name, t.RADeg)
		}
		if t.DecDeg < -90 || t.DecDeg > 90 {
			return fmt.Errorf("target %q: dec_deg %.4f out of [-90, 90]", t.Name, t.DecDeg)
		}
	}

	for _, fp := range c.Footprints {
		if fp.ID == "" {
			return fmt.Errorf("footprint at ra %.4f: missing id", fp.CenterRA)
		}
		if fp.WidthDeg <= 0 || fp.HeightDeg <= 0 {
			return fmt.Errorf("footprint %q: non-positive dimensions", fp.ID)
		}
	}

	return nil
}
