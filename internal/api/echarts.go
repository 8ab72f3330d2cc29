package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/orbita-labs/imaging.report/internal/downlink"
	"github.com/orbita-labs/imaging.report/internal/scenario"
)

func scenarioAxisLabel(s scenario.Scenario) string {
	return fmt.Sprintf("%s (%g m/px)", s.SatelliteModel, s.ResolutionMPx)
}

type chartRenderer interface {
	Render(w io.Writer) error
}

func (s *Server) renderChart(w http.ResponseWriter, c chartRenderer) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) analyzeBoth(w http.ResponseWriter) (high, low scenario.Analysis, ok bool) {
	high, err := scenario.Analyze(s.high)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("high-res analysis failed: %v", err))
		return high, low, false
	}
	low, err = scenario.Analyze(s.low)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("low-res analysis failed: %v", err))
		return high, low, false
	}
	return high, low, true
}

// handleDataVolumeChart renders the daily data volume comparison as an
// interactive bar chart.
func (s *Server) handleDataVolumeChart(w http.ResponseWriter, r *http.Request) {
	high, low, ok := s.analyzeBoth(w)
	if !ok {
		return
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Daily Data Volume", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily data volume by satellite and resolution",
			Subtitle: fmt.Sprintf("%s vs %s", high.Scenario.SatelliteModel, low.Scenario.SatelliteModel),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "TB/day"}),
	)
	bar.SetXAxis([]string{scenarioAxisLabel(high.Scenario), scenarioAxisLabel(low.Scenario)}).
		AddSeries("daily volume", []opts.BarData{
			{Value: high.TotalDataTB},
			{Value: low.TotalDataTB},
		}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))

	s.renderChart(w, bar)
}

// handleIntervalsChart renders the shot period and along-track spacing
// comparison as a grouped bar chart.
func (s *Server) handleIntervalsChart(w http.ResponseWriter, r *http.Request) {
	high, low, ok := s.analyzeBoth(w)
	if !ok {
		return
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Imaging Intervals", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Spacing between consecutive images",
			Subtitle: "shot period [s] and along-track spacing [km]",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis([]string{scenarioAxisLabel(high.Scenario), scenarioAxisLabel(low.Scenario)}).
		AddSeries("shot period [s]", []opts.BarData{
			{Value: high.Intervals.ShotPeriodSeconds},
			{Value: low.Intervals.ShotPeriodSeconds},
		}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"})).
		AddSeries("along-track spacing [km]", []opts.BarData{
			{Value: high.Intervals.AlongTrackKM},
			{Value: low.Intervals.AlongTrackKM},
		}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))

	s.renderChart(w, bar)
}

// handleVariantsChart renders the acquisition variants derived from the
// link budgets of the two orbits.
func (s *Server) handleVariantsChart(w http.ResponseWriter, r *http.Request) {
	highGB := downlink.GBPerDay(downlink.RateMbps500KM)
	lowGB := downlink.GBPerDay(downlink.RateMbps700KM)

	variants, err := downlink.DefaultVariants(highGB, lowGB)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to build variants: %v", err))
		return
	}

	limitGB := downlink.StationLimitGBPerDay(32)

	names := make([]string, 0, len(variants))
	data := make([]opts.BarData, 0, len(variants))
	for _, v := range variants {
		verdict := "over limit"
		if downlink.WithinDailyLimit(v.VolumeGB, limitGB) {
			verdict = "ok"
		}
		names = append(names, fmt.Sprintf("%s (%s)", v.Name, verdict))
		data = append(data, opts.BarData{Value: v.VolumeGB})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Acquisition Variants", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily data volume by acquisition variant",
			Subtitle: fmt.Sprintf("daily transmission limit %.0f GB", limitGB),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "GB/day"}),
	)
	bar.SetXAxis(names).
		AddSeries("volume", data, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))

	s.renderChart(w, bar)
}

// handleCompressionChart renders compressed volume over a set of
// compression ratios. Query params:
//   - gb (optional; defaults to the 500 km link budget)
//   - ratios (optional; comma-separated, defaults to 1..20)
func (s *Server) handleCompressionChart(w http.ResponseWriter, r *http.Request) {
	originalGB := downlink.GBPerDay(downlink.RateMbps500KM)
	if v := r.URL.Query().Get("gb"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			s.writeJSONError(w, http.StatusBadRequest, "Invalid 'gb' parameter")
			return
		}
		originalGB = parsed
	}

	ratios := []float64{1, 2, 4, 5, 8, 10, 15, 20}
	if v := r.URL.Query().Get("ratios"); v != "" {
		ratios = ratios[:0]
		for _, part := range strings.Split(v, ",") {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil || parsed <= 0 {
				s.writeJSONError(w, http.StatusBadRequest, "Invalid 'ratios' parameter")
				return
			}
			ratios = append(ratios, parsed)
		}
	}

	x := make([]string, 0, len(ratios))
	data := make([]opts.LineData, 0, len(ratios))
	for _, ratio := range ratios {
		x = append(x, fmt.Sprintf("%g:1", ratio))
		data = append(data, opts.LineData{Value: originalGB / ratio})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Compression Effects", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Compression effect on data volume",
			Subtitle: fmt.Sprintf("uncompressed %.1f GB/day", originalGB),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "GB after compression"}),
	)
	line.SetXAxis(x).
		AddSeries("compressed volume", data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))

	s.renderChart(w, line)
}
