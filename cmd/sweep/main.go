// Command sweep evaluates compressed daily volume over a range of
// compression ratios and emits the results as CSV.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/orbita-labs/imaging.report/internal/charts"
	"github.com/orbita-labs/imaging.report/internal/downlink"
)

var (
	baseGB    = flag.Float64("gb", 0, "Uncompressed daily volume in GB (default: 500 km link budget)")
	ratioList = flag.String("ratios", "", "Comma-separated compression ratios (overrides start/end/step)")
	start     = flag.Float64("start", 1, "Start compression ratio")
	end       = flag.Float64("end", 20, "End compression ratio")
	step      = flag.Float64("step", 1, "Step increment")
	stations  = flag.Int("stations", 32, "Ground station count for the daily limit column")
	chartPath = flag.String("chart", "", "Also render the sweep as a PNG line chart at this path")
)

func parseRatios() ([]float64, error) {
	if *ratioList != "" {
		var ratios []float64
		for _, part := range strings.Split(*ratioList, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("invalid ratio %q", part)
			}
			ratios = append(ratios, v)
		}
		return ratios, nil
	}

	if *start <= 0 || *end < *start || *step <= 0 {
		return nil, fmt.Errorf("invalid sweep range %g:%g:%g", *start, *end, *step)
	}
	var ratios []float64
	for v := *start; v <= *end+1e-9; v += *step {
		ratios = append(ratios, v)
	}
	return ratios, nil
}

func main() {
	flag.Parse()

	gb := *baseGB
	if gb == 0 {
		gb = downlink.GBPerDay(downlink.RateMbps500KM)
	}
	if gb <= 0 {
		fmt.Fprintf(os.Stderr, "volume must be positive, got %g\n", gb)
		os.Exit(1)
	}

	ratios, err := parseRatios()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	limitGB := downlink.StationLimitGBPerDay(*stations)

	fmt.Println("ratio,volume_gb,within_daily_limit")
	volumes := make([]float64, 0, len(ratios))
	for _, r := range ratios {
		v := gb / r
		volumes = append(volumes, v)
		fmt.Printf("%g,%.3f,%t\n", r, v, downlink.WithinDailyLimit(v, limitGB))
	}

	fmt.Fprintf(os.Stderr, "swept %d ratios over %.1f GB: mean %.2f GB, stddev %.2f GB, daily limit %.1f GB\n",
		len(ratios), gb, stat.Mean(volumes, nil), stat.StdDev(volumes, nil), limitGB)

	if *chartPath != "" {
		if err := charts.CompressionEffects(gb, ratios, *chartPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to render chart: %v\n", err)
			os.Exit(1)
		}
	}
}
