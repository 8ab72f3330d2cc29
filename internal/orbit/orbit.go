// Package orbit holds the Earth constants and the circular-orbit geometry
// used by the coverage estimates. All distances are metres and all speeds
// m/s unless a name says otherwise.
package orbit

import (
	"fmt"
	"math"
)

const (
	// EarthRadiusMeters is the mean Earth radius.
	EarthRadiusMeters = 6371000.0
)

// EarthSurfaceAreaSqMeters is 4*pi*R^2.
var EarthSurfaceAreaSqMeters = 4 * math.Pi * EarthRadiusMeters * EarthRadiusMeters

// EarthCircumferenceMeters is 2*pi*R.
var EarthCircumferenceMeters = 2 * math.Pi * EarthRadiusMeters

// Orbit describes a circular orbit by altitude above the surface and period.
type Orbit struct {
	AltitudeMeters float64
	PeriodMinutes  float64
}

// Validate checks the orbit parameters are usable.
func (o Orbit) Validate() error {
	if o.AltitudeMeters <= 0 {
		return fmt.Errorf("altitude must be positive, got %f", o.AltitudeMeters)
	}
	if o.PeriodMinutes <= 0 {
		return fmt.Errorf("orbital period must be positive, got %f", o.PeriodMinutes)
	}
	return nil
}

// RadiusMeters returns the orbital radius from the Earth centre.
func (o Orbit) RadiusMeters() float64 {
	return EarthRadiusMeters + o.AltitudeMeters
}

// SatelliteVelocity returns the satellite's speed along its orbit in m/s,
// assuming a circular orbit traversed once per period.
func (o Orbit) SatelliteVelocity() float64 {
	circumference := 2 * math.Pi * o.RadiusMeters()
	return circumference / (o.PeriodMinutes * 60)
}

// GroundVelocity returns the speed of the sub-satellite point over the
// surface in m/s. The orbital velocity is scaled down by the ratio of the
// Earth radius to the orbital radius.
func (o Orbit) GroundVelocity() float64 {
	return o.SatelliteVelocity() * (EarthRadiusMeters / o.RadiusMeters())
}
