// Package imaging implements the closed-form footprint, data volume and
// revisit-spacing estimates for a single imaging satellite. The functions
// are pure; callers chain them per scenario.
package imaging

import (
	"fmt"
	"math"
)

// Footprint is the ground area captured by one exposure, together with the
// detector's pixel grid.
type Footprint struct {
	SwathWidthMeters  float64 // across-track extent
	SwathHeightMeters float64 // along-track extent
	WidthPixels       int
	HeightPixels      int
}

// GroundCoverage computes the footprint of a single image from the orbit
// altitude and the sensor geometry. The across-track swath follows from the
// field of view; the along-track extent preserves the sensor aspect ratio.
// Pixel dimensions come from the physical sensor size and pixel pitch.
func GroundCoverage(altitudeMeters, fovDegrees, sensorWidthMM, sensorHeightMM, pixelPitchUM float64) (Footprint, error) {
	if altitudeMeters <= 0 {
		return Footprint{}, fmt.Errorf("altitude must be positive, got %f", altitudeMeters)
	}
	if fovDegrees <= 0 || fovDegrees >= 180 {
		return Footprint{}, fmt.Errorf("field of view must be in (0, 180) degrees, got %f", fovDegrees)
	}
	if sensorWidthMM <= 0 || sensorHeightMM <= 0 {
		return Footprint{}, fmt.Errorf("sensor dimensions must be positive, got %fx%f mm", sensorWidthMM, sensorHeightMM)
	}
	if pixelPitchUM <= 0 {
		return Footprint{}, fmt.Errorf("pixel pitch must be positive, got %f", pixelPitchUM)
	}

	fovRad := fovDegrees * math.Pi / 180
	swathWidth := 2 * altitudeMeters * math.Tan(fovRad/2)

	aspectRatio := sensorWidthMM / sensorHeightMM
	swathHeight := swathWidth / aspectRatio

	// mm -> um before dividing by the pitch
	widthPx := int(sensorWidthMM * 1000 / pixelPitchUM)
	heightPx := int(sensorHeightMM * 1000 / pixelPitchUM)

	return Footprint{
		SwathWidthMeters:  swathWidth,
		SwathHeightMeters: swathHeight,
		WidthPixels:       widthPx,
		HeightPixels:      heightPx,
	}, nil
}

// EffectiveWidthMeters returns the across-track extent after removing the
// configured overlap percentage.
func (f Footprint) EffectiveWidthMeters(overlapPercent float64) float64 {
	return f.SwathWidthMeters * (1 - overlapPercent/100)
}

// EffectiveHeightMeters returns the along-track extent after removing the
// configured overlap percentage.
func (f Footprint) EffectiveHeightMeters(overlapPercent float64) float64 {
	return f.SwathHeightMeters * (1 - overlapPercent/100)
}
