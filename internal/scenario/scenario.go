// Package scenario defines imaging scenario parameters and runs the full
// analysis pipeline over them.
package scenario

import (
	"fmt"

	"github.com/orbita-labs/imaging.report/internal/orbit"
)

// Scenario is one satellite/resolution configuration to analyse.
type Scenario struct {
	SatelliteModel string  `json:"satellite_model"`
	ResolutionMPx  float64 `json:"resolution_m_px"`
	AltitudeMeters float64 `json:"altitude_m"`
	FOVDegrees     float64 `json:"fov_degrees"`
	SensorWidthMM  float64 `json:"sensor_width_mm"`
	SensorHeightMM float64 `json:"sensor_height_mm"`
	PixelPitchUM   float64 `json:"pixel_pitch_um"`
	Channels       int     `json:"channels"`
	OverlapPercent float64 `json:"overlap_percent"`
	PeriodMinutes  float64 `json:"orbital_period_minutes"`
}

// Orbit returns the scenario's orbit parameters.
func (s Scenario) Orbit() orbit.Orbit {
	return orbit.Orbit{AltitudeMeters: s.AltitudeMeters, PeriodMinutes: s.PeriodMinutes}
}

// Validate checks all scenario parameters before analysis.
func (s Scenario) Validate() error {
	if s.SatelliteModel == "" {
		return fmt.Errorf("satellite model must be set")
	}
	if s.ResolutionMPx <= 0 {
		return fmt.Errorf("resolution must be positive, got %f", s.ResolutionMPx)
	}
	if err := s.Orbit().Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", s.SatelliteModel, err)
	}
	if s.FOVDegrees <= 0 || s.FOVDegrees >= 180 {
		return fmt.Errorf("field of view must be in (0, 180) degrees, got %f", s.FOVDegrees)
	}
	if s.SensorWidthMM <= 0 || s.SensorHeightMM <= 0 {
		return fmt.Errorf("sensor dimensions must be positive, got %fx%f mm", s.SensorWidthMM, s.SensorHeightMM)
	}
	if s.PixelPitchUM <= 0 {
		return fmt.Errorf("pixel pitch must be positive, got %f", s.PixelPitchUM)
	}
	if s.Channels <= 0 {
		return fmt.Errorf("channel count must be positive, got %d", s.Channels)
	}
	if s.OverlapPercent < 0 || s.OverlapPercent >= 100 {
		return fmt.Errorf("overlap must be in [0, 100) percent, got %f", s.OverlapPercent)
	}
	return nil
}

// DefaultHighRes returns the built-in 1 m/px scenario modelled on a
// WorldView-4 class satellite.
func DefaultHighRes() Scenario {
	return Scenario{
		SatelliteModel: "WorldView-4",
		ResolutionMPx:  1.0,
		AltitudeMeters: 500000,
		FOVDegrees:     5.0,
		SensorWidthMM:  36.0,
		SensorHeightMM: 24.0,
		PixelPitchUM:   5.0,
		Channels:       4,
		OverlapPercent: 10,
		PeriodMinutes:  95,
	}
}

// DefaultLowRes returns the built-in 250 m/px scenario modelled on a
// MODIS Terra class satellite.
func DefaultLowRes() Scenario {
	return Scenario{
		SatelliteModel: "MODIS Terra",
		ResolutionMPx:  250.0,
		AltitudeMeters: 800000,
		FOVDegrees:     15.0,
		SensorWidthMM:  30.0,
		SensorHeightMM: 20.0,
		PixelPitchUM:   20.0,
		Channels:       7,
		OverlapPercent: 5,
		PeriodMinutes:  100,
	}
}
