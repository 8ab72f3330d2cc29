package scenario

import (
	"testing"
)

func TestDefaultScenariosValidate(t *testing.T) {
	if err := DefaultHighRes().Validate(); err != nil {
		t.Errorf("DefaultHighRes().Validate() = %v", err)
	}
	if err := DefaultLowRes().Validate(); err != nil {
		t.Errorf("DefaultLowRes().Validate() = %v", err)
	}
}

func TestDefaultHighResValues(t *testing.T) {
	s := DefaultHighRes()
	if s.SatelliteModel != "WorldView-4" {
		t.Errorf("SatelliteModel = %q, want WorldView-4", s.SatelliteModel)
	}
	if s.ResolutionMPx != 1.0 {
		t.Errorf("ResolutionMPx = %f, want 1.0", s.ResolutionMPx)
	}
	if s.AltitudeMeters != 500000 {
		t.Errorf("AltitudeMeters = %f, want 500000", s.AltitudeMeters)
	}
	if s.Channels != 4 {
		t.Errorf("Channels = %d, want 4", s.Channels)
	}
}

func TestDefaultLowResValues(t *testing.T) {
	s := DefaultLowRes()
	if s.SatelliteModel != "MODIS Terra" {
		t.Errorf("SatelliteModel = %q, want MODIS Terra", s.SatelliteModel)
	}
	if s.ResolutionMPx != 250.0 {
		t.Errorf("ResolutionMPx = %f, want 250.0", s.ResolutionMPx)
	}
	if s.PeriodMinutes != 100 {
		t.Errorf("PeriodMinutes = %f, want 100", s.PeriodMinutes)
	}
}

func TestValidateRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"empty model", func(s *Scenario) { s.SatelliteModel = "" }},
		{"zero resolution", func(s *Scenario) { s.ResolutionMPx = 0 }},
		{"negative altitude", func(s *Scenario) { s.AltitudeMeters = -500 }},
		{"zero period", func(s *Scenario) { s.PeriodMinutes = 0 }},
		{"fov too wide", func(s *Scenario) { s.FOVDegrees = 200 }},
		{"zero sensor width", func(s *Scenario) { s.SensorWidthMM = 0 }},
		{"zero pitch", func(s *Scenario) { s.PixelPitchUM = 0 }},
		{"zero channels", func(s *Scenario) { s.Channels = 0 }},
		{"full overlap", func(s *Scenario) { s.OverlapPercent = 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultHighRes()
			tt.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
