package scenario

import (
	"fmt"

	"github.com/orbita-labs/imaging.report/internal/imaging"
)

// Analysis is the complete derived output for one scenario.
type Analysis struct {
	Scenario Scenario `json:"scenario"`

	SwathWidthKM  float64 `json:"swath_width_km"`
	SwathHeightKM float64 `json:"swath_height_km"`
	ImageWidthPx  int     `json:"image_width_px"`
	ImageHeightPx int     `json:"image_height_px"`
	TotalPixels   int64   `json:"total_pixels"`
	ImageSizeMB   float64 `json:"image_size_mb"`

	NumImages int64 `json:"num_images"`

	TotalDataMB float64 `json:"total_data_mb"`
	TotalDataGB float64 `json:"total_data_gb"`
	TotalDataTB float64 `json:"total_data_tb"`

	Intervals imaging.Intervals `json:"imaging_intervals"`
}

// Analyze chains the footprint, image size, coverage count, interval and
// data volume estimates for one scenario.
func Analyze(s Scenario) (Analysis, error) {
	if err := s.Validate(); err != nil {
		return Analysis{}, fmt.Errorf("invalid scenario: %w", err)
	}

	fp, err := imaging.GroundCoverage(s.AltitudeMeters, s.FOVDegrees, s.SensorWidthMM, s.SensorHeightMM, s.PixelPitchUM)
	if err != nil {
		return Analysis{}, fmt.Errorf("ground coverage: %w", err)
	}

	size, err := imaging.CalculateImageSize(fp.WidthPixels, fp.HeightPixels, s.Channels)
	if err != nil {
		return Analysis{}, fmt.Errorf("image size: %w", err)
	}

	numImages, err := imaging.ImagesForFullCoverage(fp, s.OverlapPercent)
	if err != nil {
		return Analysis{}, fmt.Errorf("coverage count: %w", err)
	}

	intervals, err := imaging.ImagingIntervals(s.Orbit(), fp, s.OverlapPercent)
	if err != nil {
		return Analysis{}, fmt.Errorf("imaging intervals: %w", err)
	}

	volume := imaging.TotalDataVolume(numImages, size.SizeMB)

	return Analysis{
		Scenario:      s,
		SwathWidthKM:  fp.SwathWidthMeters / 1000,
		SwathHeightKM: fp.SwathHeightMeters / 1000,
		ImageWidthPx:  fp.WidthPixels,
		ImageHeightPx: fp.HeightPixels,
		TotalPixels:   size.TotalPixels,
		ImageSizeMB:   size.SizeMB,
		NumImages:     numImages,
		TotalDataMB:   volume.MB,
		TotalDataGB:   volume.GB,
		TotalDataTB:   volume.TB,
		Intervals:     intervals,
	}, nil
}
