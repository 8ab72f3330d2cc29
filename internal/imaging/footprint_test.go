package imaging

import (
	"math"
	"testing"
)

func TestGroundCoverage(t *testing.T) {
	// 500 km altitude, 5 degree FOV, full-frame 36x24 mm sensor, 5 um pitch.
	fp, err := GroundCoverage(500000, 5.0, 36.0, 24.0, 5.0)
	if err != nil {
		t.Fatalf("GroundCoverage() error = %v", err)
	}

	wantWidth := 2 * 500000 * math.Tan(5.0*math.Pi/180/2)
	if math.Abs(fp.SwathWidthMeters-wantWidth) > 1e-6 {
		t.Errorf("SwathWidthMeters = %f, want %f", fp.SwathWidthMeters, wantWidth)
	}

	// Aspect ratio 36/24 = 1.5, so the along-track extent is width/1.5.
	if math.Abs(fp.SwathHeightMeters-wantWidth/1.5) > 1e-6 {
		t.Errorf("SwathHeightMeters = %f, want %f", fp.SwathHeightMeters, wantWidth/1.5)
	}

	if fp.WidthPixels != 7200 {
		t.Errorf("WidthPixels = %d, want 7200", fp.WidthPixels)
	}
	if fp.HeightPixels != 4800 {
		t.Errorf("HeightPixels = %d, want 4800", fp.HeightPixels)
	}
}

func TestGroundCoverageScalesWithFOV(t *testing.T) {
	narrow, err := GroundCoverage(500000, 5.0, 36.0, 24.0, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	wide, err := GroundCoverage(500000, 15.0, 36.0, 24.0, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	if wide.SwathWidthMeters <= narrow.SwathWidthMeters {
		t.Errorf("wider FOV should cover more ground: %f <= %f",
			wide.SwathWidthMeters, narrow.SwathWidthMeters)
	}
	// Pixel grid depends only on sensor geometry, not FOV.
	if wide.WidthPixels != narrow.WidthPixels || wide.HeightPixels != narrow.HeightPixels {
		t.Error("pixel dimensions should not depend on FOV")
	}
}

func TestGroundCoverageInvalidInputs(t *testing.T) {
	tests := []struct {
		name                    string
		alt, fov, sw, sh, pitch float64
	}{
		{"zero altitude", 0, 5, 36, 24, 5},
		{"negative altitude", -1, 5, 36, 24, 5},
		{"zero fov", 500000, 0, 36, 24, 5},
		{"fov too wide", 500000, 180, 36, 24, 5},
		{"zero sensor width", 500000, 5, 0, 24, 5},
		{"zero sensor height", 500000, 5, 36, 0, 5},
		{"zero pitch", 500000, 5, 36, 24, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GroundCoverage(tt.alt, tt.fov, tt.sw, tt.sh, tt.pitch); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEffectiveExtents(t *testing.T) {
	fp := Footprint{SwathWidthMeters: 1000, SwathHeightMeters: 500}

	if got := fp.EffectiveWidthMeters(10); math.Abs(got-900) > 1e-9 {
		t.Errorf("EffectiveWidthMeters(10) = %f, want 900", got)
	}
	if got := fp.EffectiveHeightMeters(10); math.Abs(got-450) > 1e-9 {
		t.Errorf("EffectiveHeightMeters(10) = %f, want 450", got)
	}
	if got := fp.EffectiveWidthMeters(0); got != 1000 {
		t.Errorf("EffectiveWidthMeters(0) = %f, want 1000", got)
	}
}
