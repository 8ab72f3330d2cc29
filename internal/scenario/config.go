package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical scenario defaults file.
const DefaultConfigPath = "config/scenarios.defaults.json"

// Override holds partial scenario parameters loaded from JSON. Fields left
// out of the file keep the base scenario's values, so partial configs are
// safe. The schema matches the /api/scenarios endpoint.
type Override struct {
	SatelliteModel *string  `json:"satellite_model,omitempty"`
	ResolutionMPx  *float64 `json:"resolution_m_px,omitempty"`
	AltitudeMeters *float64 `json:"altitude_m,omitempty"`
	FOVDegrees     *float64 `json:"fov_degrees,omitempty"`
	SensorWidthMM  *float64 `json:"sensor_width_mm,omitempty"`
	SensorHeightMM *float64 `json:"sensor_height_mm,omitempty"`
	PixelPitchUM   *float64 `json:"pixel_pitch_um,omitempty"`
	Channels       *int     `json:"channels,omitempty"`
	OverlapPercent *float64 `json:"overlap_percent,omitempty"`
	PeriodMinutes  *float64 `json:"orbital_period_minutes,omitempty"`
}

// Apply copies the set fields onto base and returns the result.
func (o Override) Apply(base Scenario) Scenario {
	if o.SatelliteModel != nil {
		base.SatelliteModel = *o.SatelliteModel
	}
	if o.ResolutionMPx != nil {
		base.ResolutionMPx = *o.ResolutionMPx
	}
	if o.AltitudeMeters != nil {
		base.AltitudeMeters = *o.AltitudeMeters
	}
	if o.FOVDegrees != nil {
		base.FOVDegrees = *o.FOVDegrees
	}
	if o.SensorWidthMM != nil {
		base.SensorWidthMM = *o.SensorWidthMM
	}
	if o.SensorHeightMM != nil {
		base.SensorHeightMM = *o.SensorHeightMM
	}
	if o.PixelPitchUM != nil {
		base.PixelPitchUM = *o.PixelPitchUM
	}
	if o.Channels != nil {
		base.Channels = *o.Channels
	}
	if o.OverlapPercent != nil {
		base.OverlapPercent = *o.OverlapPercent
	}
	if o.PeriodMinutes != nil {
		base.PeriodMinutes = *o.PeriodMinutes
	}
	return base
}

// Config is the root scenario configuration file: partial overrides for the
// high and low resolution scenarios.
type Config struct {
	HighRes *Override `json:"high_res,omitempty"`
	LowRes  *Override `json:"low_res,omitempty"`
}

// LoadConfig loads a Config from a JSON file. The file must have a .json
// extension and stay under the max file size.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// Scenarios resolves the config into concrete, validated scenarios over the
// built-in defaults.
func (c *Config) Scenarios() (high, low Scenario, err error) {
	high = DefaultHighRes()
	low = DefaultLowRes()
	if c != nil {
		if c.HighRes != nil {
			high = c.HighRes.Apply(high)
		}
		if c.LowRes != nil {
			low = c.LowRes.Apply(low)
		}
	}
	if err := high.Validate(); err != nil {
		return Scenario{}, Scenario{}, fmt.Errorf("high_res: %w", err)
	}
	if err := low.Validate(); err != nil {
		return Scenario{}, Scenario{}, fmt.Errorf("low_res: %w", err)
	}
	return high, low, nil
}
