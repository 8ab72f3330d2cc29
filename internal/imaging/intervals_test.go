package imaging

import (
	"math"
	"testing"

	"github.com/orbita-labs/imaging.report/internal/orbit"
)

func TestImagingIntervals(t *testing.T) {
	o := orbit.Orbit{AltitudeMeters: 500000, PeriodMinutes: 95}
	fp := Footprint{SwathWidthMeters: 43000, SwathHeightMeters: 29000}

	iv, err := ImagingIntervals(o, fp, 10)
	if err != nil {
		t.Fatalf("ImagingIntervals() error = %v", err)
	}

	// Along-track spacing is the effective swath height.
	if math.Abs(iv.AlongTrackKM-29000*0.9/1000) > 1e-9 {
		t.Errorf("AlongTrackKM = %f, want %f", iv.AlongTrackKM, 29000*0.9/1000)
	}

	// Shot period * ground velocity reproduces the along-track spacing.
	groundVelMS := iv.GroundVelocityKMH / 3.6
	if math.Abs(iv.ShotPeriodSeconds*groundVelMS-29000*0.9) > 1e-6 {
		t.Errorf("shot period %fs at %f m/s does not cover %f m",
			iv.ShotPeriodSeconds, groundVelMS, 29000*0.9)
	}

	// Strips tile the equator: strips * cross-track spacing = circumference.
	if math.Abs(float64(iv.EquatorStrips)*iv.CrossTrackKM*1000-orbit.EarthCircumferenceMeters) > 1 {
		t.Errorf("strips (%d) x cross-track (%f km) should equal the equator circumference",
			iv.EquatorStrips, iv.CrossTrackKM)
	}

	// Longitude steps sum to a full revolution.
	if math.Abs(float64(iv.EquatorStrips)*iv.LongitudeStepDegrees-360) > 1e-6 {
		t.Errorf("strips x longitude step = %f, want 360",
			float64(iv.EquatorStrips)*iv.LongitudeStepDegrees)
	}

	// Polar orbit covers two strips per revolution.
	if math.Abs(iv.OrbitsForCoverage-float64(iv.EquatorStrips)/2) > 1e-9 {
		t.Errorf("OrbitsForCoverage = %f, want %f", iv.OrbitsForCoverage, float64(iv.EquatorStrips)/2)
	}

	wantHours := iv.OrbitsForCoverage * 95 / 60
	if math.Abs(iv.CoverageHours-wantHours) > 1e-9 {
		t.Errorf("CoverageHours = %f, want %f", iv.CoverageHours, wantHours)
	}
}

func TestImagingIntervalsInvalid(t *testing.T) {
	fp := Footprint{SwathWidthMeters: 43000, SwathHeightMeters: 29000}

	if _, err := ImagingIntervals(orbit.Orbit{}, fp, 10); err == nil {
		t.Error("expected error for zero orbit")
	}

	o := orbit.Orbit{AltitudeMeters: 500000, PeriodMinutes: 95}
	if _, err := ImagingIntervals(o, fp, 120); err == nil {
		t.Error("expected error for overlap above 100%")
	}
	if _, err := ImagingIntervals(o, Footprint{}, 10); err == nil {
		t.Error("expected error for zero footprint")
	}
}

func TestWiderSwathNeedsFewerStrips(t *testing.T) {
	o := orbit.Orbit{AltitudeMeters: 800000, PeriodMinutes: 100}
	narrow := Footprint{SwathWidthMeters: 40000, SwathHeightMeters: 27000}
	wide := Footprint{SwathWidthMeters: 210000, SwathHeightMeters: 140000}

	nIv, err := ImagingIntervals(o, narrow, 5)
	if err != nil {
		t.Fatal(err)
	}
	wIv, err := ImagingIntervals(o, wide, 5)
	if err != nil {
		t.Fatal(err)
	}

	if wIv.EquatorStrips >= nIv.EquatorStrips {
		t.Errorf("wide swath strips %d should be below narrow swath strips %d",
			wIv.EquatorStrips, nIv.EquatorStrips)
	}
	if wIv.CoverageHours >= nIv.CoverageHours {
		t.Errorf("wide swath coverage %fh should be faster than narrow %fh",
			wIv.CoverageHours, nIv.CoverageHours)
	}
}
