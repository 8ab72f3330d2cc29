// Package charts renders the comparison charts as PNG artifacts using
// gonum/plot. Each function writes one file; callers pick the output
// directory via MakeOutputDir.
package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/orbita-labs/imaging.report/internal/downlink"
	"github.com/orbita-labs/imaging.report/internal/monitoring"
	"github.com/orbita-labs/imaging.report/internal/scenario"
)

var (
	highResColor = color.RGBA{R: 139, A: 255} // dark red
	lowResColor  = color.RGBA{B: 128, A: 255} // navy
	variantColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

var barWidth = vg.Points(60)

// MakeOutputDir creates a timestamped chart output directory under baseDir
// and returns its path.
func MakeOutputDir(baseDir string) (string, error) {
	dir := filepath.Join(baseDir, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	return dir, nil
}

// scenarioLabel renders the satellite model with its resolution, matching
// the axis labels of the comparison charts.
func scenarioLabel(s scenario.Scenario) string {
	return fmt.Sprintf("%s (%g m/px)", s.SatelliteModel, s.ResolutionMPx)
}

// barPair draws a two-bar comparison chart with value labels above the bars.
func barPair(p *plot.Plot, names []string, values []float64, colors []color.Color, labelFormat string) error {
	for i, v := range values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, barWidth)
		if err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
		bar.Color = colors[i%len(colors)]
		bar.Offset = 0
		bar.XMin = float64(i)
		p.Add(bar)
	}
	p.NominalX(names...)

	labels := plotter.XYLabels{}
	for i, v := range values {
		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: v})
		labels.Labels = append(labels.Labels, fmt.Sprintf(labelFormat, v))
	}
	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	p.Add(lbl)

	p.Add(plotter.NewGrid())
	return nil
}

// logScaled returns the bar heights to plot when the volumes span more
// than two orders of magnitude. Heights are log10 values shifted so the
// smallest bar still rises above the axis; callers keep labelling bars
// with the true values. The second return reports whether scaling applied.
func logScaled(values []float64) ([]float64, bool) {
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if minVal <= 0 || maxVal/minVal <= 100 {
		return values, false
	}

	base := math.Log10(minVal)
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = math.Log10(v) - base + 0.25
	}
	return scaled, true
}

// DataVolumeComparison renders the daily data volume bar chart for the two
// scenarios. When the volumes differ by more than two orders of magnitude
// the bar heights switch to a shifted log10 scale so the smaller bar stays
// visible; the bar labels always carry the true TB values.
func DataVolumeComparison(high, low scenario.Analysis, path string) error {
	p := plot.New()
	p.Title.Text = "Daily data volume by satellite and resolution"
	p.Y.Label.Text = "Daily data volume [TB]"

	labelValues := []float64{high.TotalDataTB, low.TotalDataTB}
	values, scaled := logScaled(labelValues)
	if scaled {
		p.Y.Label.Text = "Daily data volume [log10 scale]"
	}

	names := []string{scenarioLabel(high.Scenario), scenarioLabel(low.Scenario)}
	if err := barPairWithLabels(p, names, values, labelValues,
		[]color.Color{highResColor, lowResColor}, "%.2f TB"); err != nil {
		return err
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save data volume chart: %w", err)
	}
	monitoring.Logf("charts: wrote %s", path)
	return nil
}

// barPairWithLabels draws bars at plotValues but labels them with
// labelValues, for the log-scaled data volume chart.
func barPairWithLabels(p *plot.Plot, names []string, plotValues, labelValues []float64, colors []color.Color, labelFormat string) error {
	for i, v := range plotValues {
		bar, err := plotter.NewBarChart(plotter.Values{v}, barWidth)
		if err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
		bar.Color = colors[i%len(colors)]
		bar.Offset = 0
		bar.XMin = float64(i)
		p.Add(bar)
	}
	p.NominalX(names...)

	labels := plotter.XYLabels{}
	for i, v := range plotValues {
		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: v})
		labels.Labels = append(labels.Labels, fmt.Sprintf(labelFormat, labelValues[i]))
	}
	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	p.Add(lbl)

	p.Add(plotter.NewGrid())
	return nil
}

// IntervalCharts renders the imaging interval comparison as two PNGs: the
// shot period in seconds and the along-track spacing in km.
func IntervalCharts(high, low scenario.Analysis, dir string) error {
	names := []string{scenarioLabel(high.Scenario), scenarioLabel(low.Scenario)}
	colors := []color.Color{highResColor, lowResColor}

	pTime := plot.New()
	pTime.Title.Text = "Time between consecutive images"
	pTime.Y.Label.Text = "Shot period [s]"
	if err := barPair(pTime, names,
		[]float64{high.Intervals.ShotPeriodSeconds, low.Intervals.ShotPeriodSeconds},
		colors, "%.2f s"); err != nil {
		return err
	}
	timePath := filepath.Join(dir, "intervals_time.png")
	if err := pTime.Save(7*vg.Inch, 6*vg.Inch, timePath); err != nil {
		return fmt.Errorf("save interval time chart: %w", err)
	}
	monitoring.Logf("charts: wrote %s", timePath)

	pDist := plot.New()
	pDist.Title.Text = "Distance between consecutive images"
	pDist.Y.Label.Text = "Along-track spacing [km]"
	if err := barPair(pDist, names,
		[]float64{high.Intervals.AlongTrackKM, low.Intervals.AlongTrackKM},
		colors, "%.2f km"); err != nil {
		return err
	}
	distPath := filepath.Join(dir, "intervals_distance.png")
	if err := pDist.Save(7*vg.Inch, 6*vg.Inch, distPath); err != nil {
		return fmt.Errorf("save interval distance chart: %w", err)
	}
	monitoring.Logf("charts: wrote %s", distPath)

	return nil
}

// CompressionEffects renders the compressed volume as a line over the given
// compression ratios.
func CompressionEffects(originalGB float64, ratios []float64, path string) error {
	if originalGB <= 0 {
		return fmt.Errorf("original volume must be positive, got %f", originalGB)
	}
	if len(ratios) == 0 {
		return fmt.Errorf("no compression ratios given")
	}

	pts := make(plotter.XYs, 0, len(ratios))
	for _, r := range ratios {
		if r <= 0 {
			return fmt.Errorf("compression ratio must be positive, got %f", r)
		}
		pts = append(pts, plotter.XY{X: r, Y: originalGB / r})
	}

	p := plot.New()
	p.Title.Text = "Compression effect on data volume"
	p.X.Label.Text = "Compression ratio (2 = 2:1)"
	p.Y.Label.Text = "Volume after compression [GB]"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	p.Add(scatter)

	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save compression chart: %w", err)
	}
	monitoring.Logf("charts: wrote %s", path)
	return nil
}

// VariantComparison renders the acquisition variants bar chart.
func VariantComparison(variants []downlink.Variant, path string) error {
	if len(variants) == 0 {
		return fmt.Errorf("no variants given")
	}

	p := plot.New()
	p.Title.Text = "Daily data volume by acquisition variant"
	p.Y.Label.Text = "Data volume [GB]"

	names := make([]string, 0, len(variants))
	labels := plotter.XYLabels{}
	for i, v := range variants {
		bar, err := plotter.NewBarChart(plotter.Values{v.VolumeGB}, barWidth)
		if err != nil {
			return fmt.Errorf("bar %s: %w", v.Name, err)
		}
		bar.Color = variantColor
		bar.Offset = 0
		bar.XMin = float64(i)
		p.Add(bar)

		names = append(names, v.Name)
		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: v.VolumeGB})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%.1f GB", v.VolumeGB))
	}
	p.NominalX(names...)

	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	p.Add(lbl)

	p.Add(plotter.NewGrid())

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save variants chart: %w", err)
	}
	monitoring.Logf("charts: wrote %s", path)
	return nil
}
