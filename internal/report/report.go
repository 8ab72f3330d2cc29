// Package report formats analysis results as a plain-text report.
package report

import (
	"fmt"
	"io"

	"github.com/orbita-labs/imaging.report/internal/scenario"
)

// Write prints the full two-scenario analysis report to w.
func Write(w io.Writer, high, low scenario.Analysis) error {
	if _, err := fmt.Fprintf(w, "SATELLITE IMAGING PARAMETER ANALYSIS\n\n"); err != nil {
		return err
	}
	if err := writeScenario(w, 1, "HIGH RESOLUTION", high); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := writeScenario(w, 2, "LOW RESOLUTION", low); err != nil {
		return err
	}
	return writeSummary(w, high, low)
}

func writeScenario(w io.Writer, index int, label string, a scenario.Analysis) error {
	s := a.Scenario
	iv := a.Intervals

	lines := []string{
		fmt.Sprintf("%d. %s SCENARIO (%g m/px) - SATELLITE: %s", index, label, s.ResolutionMPx, s.SatelliteModel),
		fmt.Sprintf("   Orbit altitude: %.0f km", s.AltitudeMeters/1000),
		fmt.Sprintf("   Field of view: %.1f deg", s.FOVDegrees),
		fmt.Sprintf("   Sensor size: %.1f x %.1f mm", s.SensorWidthMM, s.SensorHeightMM),
		fmt.Sprintf("   Pixel pitch: %.1f um", s.PixelPitchUM),
		fmt.Sprintf("   Spectral channels: %d", s.Channels),
		fmt.Sprintf("   Single image footprint: %.2f x %.2f km", a.SwathWidthKM, a.SwathHeightKM),
		fmt.Sprintf("   Image resolution: %d x %d pixels", a.ImageWidthPx, a.ImageHeightPx),
		fmt.Sprintf("   Single image size: %.2f MB", a.ImageSizeMB),
		fmt.Sprintf("   Images for full-Earth coverage: %d", a.NumImages),
		fmt.Sprintf("   Total daily data volume: %.2f TB", a.TotalDataTB),
		"",
		"   IMAGING INTERVALS:",
		fmt.Sprintf("   Ground velocity: %.2f km/h", iv.GroundVelocityKMH),
		fmt.Sprintf("   Time between images: %.2f s", iv.ShotPeriodSeconds),
		fmt.Sprintf("   Along-track spacing: %.2f km", iv.AlongTrackKM),
		fmt.Sprintf("   Cross-track strip spacing: %.2f km", iv.CrossTrackKM),
		fmt.Sprintf("   Strips to cover the equator: %d", iv.EquatorStrips),
		fmt.Sprintf("   Orbits for full coverage: %.2f", iv.OrbitsForCoverage),
		fmt.Sprintf("   Time for full coverage: %.2f h", iv.CoverageHours),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(w io.Writer, high, low scenario.Analysis) error {
	lines := []string{
		"",
		"SUMMARY FOR COMMUNICATION TEAMS:",
		fmt.Sprintf("High resolution satellite: %s", high.Scenario.SatelliteModel),
		fmt.Sprintf("Low resolution satellite: %s", low.Scenario.SatelliteModel),
		fmt.Sprintf("Daily data volume - %s (%g m/px): %.2f TB", high.Scenario.SatelliteModel, high.Scenario.ResolutionMPx, high.TotalDataTB),
		fmt.Sprintf("Daily data volume - %s (%g m/px): %.2f TB", low.Scenario.SatelliteModel, low.Scenario.ResolutionMPx, low.TotalDataTB),
		fmt.Sprintf("Image spacing - %s: %.2f km", high.Scenario.SatelliteModel, high.Intervals.AlongTrackKM),
		fmt.Sprintf("Image spacing - %s: %.2f km", low.Scenario.SatelliteModel, low.Intervals.AlongTrackKM),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
