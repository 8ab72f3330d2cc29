// Package api exposes the scenario analysis as a JSON API together with the
// interactive chart routes.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/orbita-labs/imaging.report/internal/db"
	"github.com/orbita-labs/imaging.report/internal/scenario"
	"github.com/orbita-labs/imaging.report/internal/version"
)

// ANSI escape codes for request logging
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

type Server struct {
	db   *db.DB
	high scenario.Scenario
	low  scenario.Scenario
}

// NewServer creates an API server over the given database and the two
// configured comparison scenarios. db may be nil; run recording and listing
// are then disabled.
func NewServer(database *db.DB, high, low scenario.Scenario) *Server {
	return &Server{db: database, high: high, low: low}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	default:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	}
}

// LoggingMiddleware logs method, path, status, and duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

// ServeMux returns the API routes.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/scenarios", s.showScenarios)
	mux.HandleFunc("/analyze", s.analyzeScenario)
	mux.HandleFunc("/runs", s.listRuns)
	mux.HandleFunc("/version", s.showVersion)
	mux.HandleFunc("/charts/data-volume", s.handleDataVolumeChart)
	mux.HandleFunc("/charts/intervals", s.handleIntervalsChart)
	mux.HandleFunc("/charts/variants", s.handleVariantsChart)
	mux.HandleFunc("/charts/compression", s.handleCompressionChart)
	return mux
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) showVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":    version.Version,
		"git_sha":    version.GitSHA,
		"build_time": version.BuildTime,
	})
}

func (s *Server) showScenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSON(w, map[string]scenario.Scenario{
		"high_res": s.high,
		"low_res":  s.low,
	})
}

// analyzeScenario runs the pipeline over a scenario posted as JSON. With
// ?record=true the result is also persisted and the run ID returned.
func (s *Server) analyzeScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var sc scenario.Scenario
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid scenario JSON: "+err.Error())
		return
	}

	analysis, err := scenario.Analyze(sc)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := struct {
		scenario.Analysis
		RunID string `json:"run_id,omitempty"`
	}{Analysis: analysis}

	if r.URL.Query().Get("record") == "true" {
		if s.db == nil {
			s.writeJSONError(w, http.StatusServiceUnavailable, "run recording not configured")
			return
		}
		runID, err := s.db.RecordRun(analysis)
		if err != nil {
			s.writeJSONError(w, http.StatusInternalServerError, "Failed to record run: "+err.Error())
			return
		}
		resp.RunID = runID
	}

	s.writeJSON(w, resp)
}

func (s *Server) listRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if s.db == nil {
		s.writeJSONError(w, http.StatusServiceUnavailable, "run store not configured")
		return
	}

	if id := r.URL.Query().Get("id"); id != "" {
		run, err := s.db.GetRun(id)
		if err != nil {
			s.writeJSONError(w, http.StatusNotFound, "Run not found: "+id)
			return
		}
		s.writeJSON(w, run)
		return
	}

	limit := 100
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 {
			s.writeJSONError(w, http.StatusBadRequest, "Invalid 'limit' parameter")
			return
		}
		limit = parsed
	}

	runs, err := s.db.ListRuns(limit)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to list runs: "+err.Error())
		return
	}
	if runs == nil {
		runs = []db.Run{}
	}
	s.writeJSON(w, runs)
}
