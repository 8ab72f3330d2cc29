package imaging

import "fmt"

// BytesPerChannelSample is the assumed radiometric depth: 16 bits per pixel
// per spectral channel.
const BytesPerChannelSample = 2

// ImageSize describes a single raw image product.
type ImageSize struct {
	TotalPixels int64
	SizeMB      float64
}

// CalculateImageSize returns the pixel count and the uncompressed size in MB
// of one image with the given dimensions and channel count.
func CalculateImageSize(widthPx, heightPx, channels int) (ImageSize, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return ImageSize{}, fmt.Errorf("image dimensions must be positive, got %dx%d", widthPx, heightPx)
	}
	if channels <= 0 {
		return ImageSize{}, fmt.Errorf("channel count must be positive, got %d", channels)
	}

	totalPixels := int64(widthPx) * int64(heightPx)
	sizeBytes := totalPixels * int64(channels) * BytesPerChannelSample
	return ImageSize{
		TotalPixels: totalPixels,
		SizeMB:      float64(sizeBytes) / (1024 * 1024),
	}, nil
}

// DataVolume is a daily full-coverage data total in the three usual units.
type DataVolume struct {
	MB float64
	GB float64
	TB float64
}

// TotalDataVolume returns the data produced by capturing numImages images of
// the given per-image size.
func TotalDataVolume(numImages int64, imageSizeMB float64) DataVolume {
	mb := float64(numImages) * imageSizeMB
	return DataVolume{
		MB: mb,
		GB: mb / 1024,
		TB: mb / (1024 * 1024),
	}
}
