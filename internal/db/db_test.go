package db

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbita-labs/imaging.report/internal/scenario"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := NewDB(filepath.Join(t.TempDir(), "report_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func analyzeDefault(t *testing.T) scenario.Analysis {
	t.Helper()
	a, err := scenario.Analyze(scenario.DefaultHighRes())
	require.NoError(t, err)
	return a
}

func TestNewDBAppliesMigrations(t *testing.T) {
	database := newTestDB(t)

	var count int
	err := database.QueryRow("SELECT COUNT(*) FROM analysis_runs").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNewDBIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report_test.db")

	first, err := NewDB(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Re-opening must not fail on already-applied migrations.
	second, err := NewDB(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestRecordAndGetRun(t *testing.T) {
	database := newTestDB(t)
	analysis := analyzeDefault(t)

	runID, err := database.RecordRun(analysis)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	run, err := database.GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, run.RunID)
	assert.Equal(t, "WorldView-4", run.SatelliteModel)
	assert.Equal(t, 1.0, run.ResolutionMPx)
	assert.Equal(t, analysis.NumImages, run.Results.NumImages)
	assert.Equal(t, analysis.Scenario, run.Scenario)
	assert.False(t, run.CreatedAt.IsZero())
}

func TestGetRunMissing(t *testing.T) {
	database := newTestDB(t)
	_, err := database.GetRun("no-such-run")
	assert.Error(t, err)
}

func TestListRuns(t *testing.T) {
	database := newTestDB(t)
	analysis := analyzeDefault(t)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := database.RecordRun(analysis)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	runs, err := database.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	seen := make(map[string]bool)
	for _, r := range runs {
		seen[r.RunID] = true
	}
	for _, id := range ids {
		assert.True(t, seen[id], "run %s missing from listing", id)
	}
}

func TestListRunsLimit(t *testing.T) {
	database := newTestDB(t)
	analysis := analyzeDefault(t)

	for i := 0; i < 5; i++ {
		_, err := database.RecordRun(analysis)
		require.NoError(t, err)
	}

	runs, err := database.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	// Non-positive limits fall back to the default.
	runs, err = database.ListRuns(-1)
	require.NoError(t, err)
	assert.Len(t, runs, 5)
}

func TestListRunsClampsOversizedLimit(t *testing.T) {
	database := newTestDB(t)
	analysis := analyzeDefault(t)

	// More rows than the default page size, so a clamped limit is
	// distinguishable from a fallback to the default.
	const n = 120
	for i := 0; i < n; i++ {
		_, err := database.RecordRun(analysis)
		require.NoError(t, err)
	}

	runs, err := database.ListRuns(501)
	require.NoError(t, err)
	assert.Len(t, runs, n)
}

func TestAttachAdminRoutes(t *testing.T) {
	database := newTestDB(t)

	mux := http.NewServeMux()
	database.AttachAdminRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/debug/tailsql/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusNotFound, rec.Code, "tailsql route should be registered")
}
