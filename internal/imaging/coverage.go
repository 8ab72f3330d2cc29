package imaging

import (
	"fmt"
	"math"

	"github.com/orbita-labs/imaging.report/internal/orbit"
)

// CurvatureCorrectionFactor inflates the flat-footprint image count to
// absorb Earth curvature, pointing slop and other unmodelled losses.
const CurvatureCorrectionFactor = 1.2

// ImagesForFullCoverage returns the number of images needed to tile the
// whole Earth surface with the given footprint and overlap.
func ImagesForFullCoverage(fp Footprint, overlapPercent float64) (int64, error) {
	if overlapPercent < 0 || overlapPercent >= 100 {
		return 0, fmt.Errorf("overlap must be in [0, 100) percent, got %f", overlapPercent)
	}

	effectiveWidth := fp.EffectiveWidthMeters(overlapPercent)
	effectiveHeight := fp.EffectiveHeightMeters(overlapPercent)
	effectiveArea := effectiveWidth * effectiveHeight
	if effectiveArea <= 0 {
		return 0, fmt.Errorf("effective footprint area must be positive, got %f m^2", effectiveArea)
	}

	numImages := (orbit.EarthSurfaceAreaSqMeters / effectiveArea) * CurvatureCorrectionFactor
	return int64(math.Ceil(numImages)), nil
}
