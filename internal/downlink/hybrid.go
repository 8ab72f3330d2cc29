package downlink

import "fmt"

// TerrainMix splits the imaged surface into terrain classes by area share.
// Urban areas get the high-resolution product, everything else the
// low-resolution one.
type TerrainMix struct {
	UrbanPercent float64 `json:"urban_percent"`
	LandPercent  float64 `json:"land_percent"`
	OceanPercent float64 `json:"ocean_percent"`
}

// Validate checks the mix shares.
func (m TerrainMix) Validate() error {
	for _, p := range []float64{m.UrbanPercent, m.LandPercent, m.OceanPercent} {
		if p < 0 || p > 100 {
			return fmt.Errorf("terrain share must be in [0, 100] percent, got %f", p)
		}
	}
	if total := m.UrbanPercent + m.LandPercent + m.OceanPercent; total > 100 {
		return fmt.Errorf("terrain shares sum to %f percent, max 100", total)
	}
	return nil
}

// HybridParams configures a mixed-resolution acquisition estimate.
type HybridParams struct {
	HighResGB float64 `json:"high_res_gb"` // full-coverage high-res daily volume
	LowResGB  float64 `json:"low_res_gb"`  // full-coverage low-res daily volume

	Mix TerrainMix `json:"terrain_mix"`

	CompressionHighRes float64 `json:"compression_high_res"` // ratio, e.g. 2 = 2:1
	CompressionLowRes  float64 `json:"compression_low_res"`

	DaylightFraction float64 `json:"daylight_fraction"` // optical imaging only in daylight
}

// Validate checks the hybrid parameters.
func (p HybridParams) Validate() error {
	if p.HighResGB < 0 || p.LowResGB < 0 {
		return fmt.Errorf("daily volumes must be non-negative, got high=%f low=%f", p.HighResGB, p.LowResGB)
	}
	if err := p.Mix.Validate(); err != nil {
		return err
	}
	if p.CompressionHighRes < 1 || p.CompressionLowRes < 1 {
		return fmt.Errorf("compression ratios must be >= 1, got high=%f low=%f", p.CompressionHighRes, p.CompressionLowRes)
	}
	if p.DaylightFraction < 0 || p.DaylightFraction > 1 {
		return fmt.Errorf("daylight fraction must be in [0, 1], got %f", p.DaylightFraction)
	}
	return nil
}

// HybridDailyVolumeGB estimates the compressed daily volume for a hybrid
// acquisition: urban areas at high resolution, remaining land and ocean at
// low resolution. Ocean scenes compress twice as well as land scenes.
func HybridDailyVolumeGB(p HybridParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("invalid hybrid params: %w", err)
	}

	urban := (p.HighResGB * p.Mix.UrbanPercent / 100) / p.CompressionHighRes
	land := (p.LowResGB * p.Mix.LandPercent / 100) / p.CompressionLowRes
	ocean := (p.LowResGB * p.Mix.OceanPercent / 100) / (p.CompressionLowRes * 2)

	return (urban + land + ocean) * p.DaylightFraction, nil
}

// Variant is a named acquisition strategy with its estimated daily volume.
type Variant struct {
	Name     string  `json:"name"`
	VolumeGB float64 `json:"volume_gb"`
}

// DefaultVariants builds the three standard acquisition strategies from the
// full-coverage daily volumes of the two scenarios.
func DefaultVariants(highResGB, lowResGB float64) ([]Variant, error) {
	type variantSpec struct {
		name    string
		params  HybridParams
		revisit float64
	}

	specs := []variantSpec{
		{
			name: "Minimal",
			params: HybridParams{
				HighResGB:          0,
				LowResGB:           lowResGB,
				Mix:                TerrainMix{UrbanPercent: 0, LandPercent: 30, OceanPercent: 70},
				CompressionHighRes: 2,
				CompressionLowRes:  20,
				DaylightFraction:   0.5,
			},
			revisit: 5,
		},
		{
			name: "Cautious",
			params: HybridParams{
				HighResGB:          highResGB,
				LowResGB:           lowResGB,
				Mix:                TerrainMix{UrbanPercent: 5, LandPercent: 30, OceanPercent: 65},
				CompressionHighRes: 5,
				CompressionLowRes:  10,
				DaylightFraction:   0.5,
			},
			revisit: 4,
		},
		{
			name: "Balanced",
			params: HybridParams{
				HighResGB:          highResGB,
				LowResGB:           lowResGB,
				Mix:                TerrainMix{UrbanPercent: 10, LandPercent: 30, OceanPercent: 60},
				CompressionHighRes: 2,
				CompressionLowRes:  4,
				DaylightFraction:   0.5,
			},
			revisit: 3,
		},
	}

	variants := make([]Variant, 0, len(specs))
	for _, spec := range specs {
		vol, err := HybridDailyVolumeGB(spec.params)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", spec.name, err)
		}
		scaled, err := ScaleByRevisit(vol, spec.revisit)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", spec.name, err)
		}
		variants = append(variants, Variant{Name: spec.name, VolumeGB: scaled})
	}
	return variants, nil
}
