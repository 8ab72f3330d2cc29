package imaging

import (
	"math"
	"testing"
)

func TestCalculateImageSize(t *testing.T) {
	// 7200x4800 px, 4 channels, 2 bytes per sample.
	size, err := CalculateImageSize(7200, 4800, 4)
	if err != nil {
		t.Fatalf("CalculateImageSize() error = %v", err)
	}

	if size.TotalPixels != 7200*4800 {
		t.Errorf("TotalPixels = %d, want %d", size.TotalPixels, 7200*4800)
	}

	wantMB := float64(7200*4800*4*2) / (1024 * 1024)
	if math.Abs(size.SizeMB-wantMB) > 1e-9 {
		t.Errorf("SizeMB = %f, want %f", size.SizeMB, wantMB)
	}
}

func TestCalculateImageSizeScalesWithChannels(t *testing.T) {
	four, err := CalculateImageSize(1000, 1000, 4)
	if err != nil {
		t.Fatal(err)
	}
	eight, err := CalculateImageSize(1000, 1000, 8)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(eight.SizeMB-2*four.SizeMB) > 1e-9 {
		t.Errorf("doubling channels should double size: %f vs %f", eight.SizeMB, four.SizeMB)
	}
}

func TestCalculateImageSizeInvalid(t *testing.T) {
	tests := []struct {
		name          string
		w, h, channel int
	}{
		{"zero width", 0, 100, 4},
		{"zero height", 100, 0, 4},
		{"zero channels", 100, 100, 0},
		{"negative channels", 100, 100, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CalculateImageSize(tt.w, tt.h, tt.channel); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestTotalDataVolume(t *testing.T) {
	vol := TotalDataVolume(1000, 512)

	if math.Abs(vol.MB-512000) > 1e-9 {
		t.Errorf("MB = %f, want 512000", vol.MB)
	}
	if math.Abs(vol.GB-500) > 1e-9 {
		t.Errorf("GB = %f, want 500", vol.GB)
	}
	if math.Abs(vol.TB-500.0/1024) > 1e-9 {
		t.Errorf("TB = %f, want %f", vol.TB, 500.0/1024)
	}
}

// Image count times per-image size must reproduce the total volume exactly;
// the derived units are fixed factors of 1024.
func TestDataVolumeIdentity(t *testing.T) {
	const numImages = 123457
	const imageMB = 316.4

	vol := TotalDataVolume(numImages, imageMB)
	if math.Abs(vol.MB-numImages*imageMB) > 1e-6 {
		t.Errorf("MB = %f, want %f", vol.MB, float64(numImages)*imageMB)
	}
	if math.Abs(vol.MB/vol.GB-1024) > 1e-9 {
		t.Errorf("MB/GB ratio = %f, want 1024", vol.MB/vol.GB)
	}
	if math.Abs(vol.GB/vol.TB-1024) > 1e-9 {
		t.Errorf("GB/TB ratio = %f, want 1024", vol.GB/vol.TB)
	}
}
