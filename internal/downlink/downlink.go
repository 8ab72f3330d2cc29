// Package downlink estimates daily downlink budgets and checks acquisition
// volumes against ground-station transmission limits.
package downlink

import (
	"fmt"
	"math"
)

// Reference downlink rates measured for the constellation's three orbit
// altitudes, in Mbit/s.
const (
	RateMbps500KM = 13796.3
	RateMbps700KM = 2685.19
	RateMbps800KM = 40.74
)

// stationKBPerSec is the sustained per-station downlink throughput in KB/s.
const stationKBPerSec = 750

// GBPerDay converts a link rate in Mbit/s into a daily volume in GB.
func GBPerDay(rateMbps float64) float64 {
	// Mbit/s -> MB/s -> MB/day -> GB/day
	return rateMbps * 0.125 * 86400 / 1024
}

// StationLimitGBPerDay returns the daily transmission ceiling for a ground
// segment with the given number of stations.
func StationLimitGBPerDay(stations int) float64 {
	return float64(stations) * stationKBPerSec * 86400 / (1024 * 1024)
}

// WithinDailyLimit reports whether a daily volume fits the transmission limit.
func WithinDailyLimit(volumeGB, limitGB float64) bool {
	return volumeGB <= limitGB
}

// ScaleByRevisit divides a daily volume by the orbit revisit factor (imaging
// every n-th pass instead of every pass) and rounds up.
func ScaleByRevisit(volumeGB, revisitFactor float64) (float64, error) {
	if revisitFactor <= 0 {
		return 0, fmt.Errorf("revisit factor must be positive, got %f", revisitFactor)
	}
	return math.Ceil(volumeGB / revisitFactor), nil
}
