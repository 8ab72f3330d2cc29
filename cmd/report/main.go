// Command report runs the full scenario comparison: it prints the console
// report, renders the PNG charts, and optionally records the runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/orbita-labs/imaging.report/internal/charts"
	"github.com/orbita-labs/imaging.report/internal/db"
	"github.com/orbita-labs/imaging.report/internal/downlink"
	"github.com/orbita-labs/imaging.report/internal/report"
	"github.com/orbita-labs/imaging.report/internal/scenario"
)

var (
	outDir      = flag.String("out", "charts", "Base directory for chart output")
	scenarioCfg = flag.String("scenarios", "", "Optional scenario overrides JSON file")
	dbFile      = flag.String("db", "", "Record runs to this SQLite database")
	noCharts    = flag.Bool("no-charts", false, "Skip chart rendering")
)

func main() {
	flag.Parse()

	var cfg *scenario.Config
	if *scenarioCfg != "" {
		var err error
		cfg, err = scenario.LoadConfig(*scenarioCfg)
		if err != nil {
			log.Fatalf("failed to load scenario config: %v", err)
		}
	}
	high, low, err := cfg.Scenarios()
	if err != nil {
		log.Fatalf("invalid scenario config: %v", err)
	}

	highAnalysis, err := scenario.Analyze(high)
	if err != nil {
		log.Fatalf("high-res analysis failed: %v", err)
	}
	lowAnalysis, err := scenario.Analyze(low)
	if err != nil {
		log.Fatalf("low-res analysis failed: %v", err)
	}

	if err := report.Write(os.Stdout, highAnalysis, lowAnalysis); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}

	if *dbFile != "" {
		database, err := db.NewDB(*dbFile)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer database.Close()

		for _, a := range []scenario.Analysis{highAnalysis, lowAnalysis} {
			runID, err := database.RecordRun(a)
			if err != nil {
				log.Fatalf("failed to record %s run: %v", a.Scenario.SatelliteModel, err)
			}
			log.Printf("recorded %s run as %s", a.Scenario.SatelliteModel, runID)
		}
	}

	if *noCharts {
		return
	}

	dir, err := charts.MakeOutputDir(*outDir)
	if err != nil {
		log.Fatalf("failed to create chart directory: %v", err)
	}

	if err := charts.DataVolumeComparison(highAnalysis, lowAnalysis,
		filepath.Join(dir, "data_volume.png")); err != nil {
		log.Fatalf("data volume chart: %v", err)
	}
	if err := charts.IntervalCharts(highAnalysis, lowAnalysis, dir); err != nil {
		log.Fatalf("interval charts: %v", err)
	}

	highGB := downlink.GBPerDay(downlink.RateMbps500KM)
	lowGB := downlink.GBPerDay(downlink.RateMbps700KM)
	variants, err := downlink.DefaultVariants(highGB, lowGB)
	if err != nil {
		log.Fatalf("failed to build variants: %v", err)
	}
	if err := charts.VariantComparison(variants,
		filepath.Join(dir, "variants.png")); err != nil {
		log.Fatalf("variants chart: %v", err)
	}

	ratios := []float64{1, 2, 4, 5, 8, 10, 15, 20}
	if err := charts.CompressionEffects(highGB, ratios,
		filepath.Join(dir, "compression.png")); err != nil {
		log.Fatalf("compression chart: %v", err)
	}

	fmt.Printf("\nCharts written to %s\n", dir)
}
