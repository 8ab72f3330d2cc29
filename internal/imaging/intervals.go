package imaging

import (
	"fmt"
	"math"

	"github.com/orbita-labs/imaging.report/internal/orbit"
)

// Intervals holds the spatial and temporal spacing between captures needed
// for gapless full-Earth coverage, assuming a polar orbit.
type Intervals struct {
	SatelliteVelocityKMH float64 `json:"satellite_velocity_km_h"`
	GroundVelocityKMH    float64 `json:"ground_velocity_km_h"`

	// Along-track: one exposure every ShotPeriodSeconds, covering
	// AlongTrackKM of ground.
	ShotPeriodSeconds float64 `json:"shot_period_seconds"`
	AlongTrackKM      float64 `json:"along_track_km"`

	// Cross-track: ground-track strips at the equator.
	CrossTrackKM         float64 `json:"cross_track_km"`
	LongitudeStepDegrees float64 `json:"longitude_step_degrees"`
	EquatorStrips        int64   `json:"equator_strips"`

	OrbitsForCoverage float64 `json:"orbits_for_coverage"`
	CoverageHours     float64 `json:"coverage_hours"`
}

// ImagingIntervals computes the capture cadence for full coverage given the
// orbit and the effective footprint.
func ImagingIntervals(o orbit.Orbit, fp Footprint, overlapPercent float64) (Intervals, error) {
	if err := o.Validate(); err != nil {
		return Intervals{}, err
	}
	if overlapPercent < 0 || overlapPercent >= 100 {
		return Intervals{}, fmt.Errorf("overlap must be in [0, 100) percent, got %f", overlapPercent)
	}

	effectiveHeight := fp.EffectiveHeightMeters(overlapPercent)
	if effectiveHeight <= 0 {
		return Intervals{}, fmt.Errorf("effective along-track extent must be positive, got %f m", effectiveHeight)
	}

	satVel := o.SatelliteVelocity()
	groundVel := o.GroundVelocity()

	// Along-track cadence: the next exposure fires once the sub-satellite
	// point has travelled one effective footprint.
	shotPeriod := effectiveHeight / groundVel

	// Cross-track: how many ground-track strips tile the equator.
	effectiveWidth := fp.EffectiveWidthMeters(overlapPercent)
	strips := math.Ceil(orbit.EarthCircumferenceMeters / effectiveWidth)
	longitudeStep := 360 / strips
	crossTrack := orbit.EarthCircumferenceMeters / strips

	// A polar orbit images two strips per revolution (ascending and
	// descending passes).
	orbitsForCoverage := strips / 2
	coverageHours := (orbitsForCoverage * o.PeriodMinutes) / 60

	return Intervals{
		SatelliteVelocityKMH: satVel * 3.6,
		GroundVelocityKMH:    groundVel * 3.6,
		ShotPeriodSeconds:    shotPeriod,
		AlongTrackKM:         effectiveHeight / 1000,
		CrossTrackKM:         crossTrack / 1000,
		LongitudeStepDegrees: longitudeStep,
		EquatorStrips:        int64(strips),
		OrbitsForCoverage:    orbitsForCoverage,
		CoverageHours:        coverageHours,
	}, nil
}
