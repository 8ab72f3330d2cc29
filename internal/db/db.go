// Package db persists analysis runs to SQLite and exposes the admin
// debugging routes.
package db

import (
	"compress/gzip"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	msqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/tailscale/tailsql/server/tailsql"
	_ "modernc.org/sqlite"
	"tailscale.com/tsweb"

	"github.com/orbita-labs/imaging.report/internal/scenario"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type DB struct {
	*sql.DB
	path string
}

// NewDB opens (or creates) the SQLite database at path and applies any
// pending schema migrations.
func NewDB(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := applyMigrations(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &DB{DB: sqlDB, path: path}, nil
}

func applyMigrations(sqlDB *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migration source: %w", err)
	}

	driver, err := msqlite.WithInstance(sqlDB, &msqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Run is one persisted analysis run.
type Run struct {
	RunID          string            `json:"run_id"`
	SatelliteModel string            `json:"satellite_model"`
	ResolutionMPx  float64           `json:"resolution_m_px"`
	Scenario       scenario.Scenario `json:"scenario"`
	Results        scenario.Analysis `json:"results"`
	CreatedAt      time.Time         `json:"created_at"`
}

// RecordRun stores an analysis result and returns the generated run ID.
func (db *DB) RecordRun(a scenario.Analysis) (string, error) {
	runID := uuid.NewString()

	scenarioJSON, err := json.Marshal(a.Scenario)
	if err != nil {
		return "", fmt.Errorf("failed to marshal scenario: %w", err)
	}
	resultsJSON, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO analysis_runs (run_id, satellite_model, resolution_m_px, scenario_json, results_json)
		 VALUES (?, ?, ?, ?, ?)`,
		runID, a.Scenario.SatelliteModel, a.Scenario.ResolutionMPx,
		string(scenarioJSON), string(resultsJSON),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	return runID, nil
}

// GetRun loads a single run by ID.
func (db *DB) GetRun(runID string) (*Run, error) {
	row := db.QueryRow(
		`SELECT run_id, satellite_model, resolution_m_px, scenario_json, results_json, created_at
		 FROM analysis_runs WHERE run_id = ?`, runID)
	return scanRun(row)
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var r Run
	var scenarioJSON, resultsJSON string
	if err := row.Scan(&r.RunID, &r.SatelliteModel, &r.ResolutionMPx,
		&scenarioJSON, &resultsJSON, &r.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(scenarioJSON), &r.Scenario); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := json.Unmarshal([]byte(resultsJSON), &r.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	return &r, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 100
	} else if limit > 500 {
		limit = 500
	}
	rows, err := db.Query(
		`SELECT run_id, satellite_model, resolution_m_px, scenario_json, results_json, created_at
		 FROM analysis_runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// AttachAdminRoutes mounts the tailsql live SQL UI and the backup download
// handler on the debug mux.
func (db *DB) AttachAdminRoutes(mux *http.ServeMux) {
	debug := tsweb.Debugger(mux)

	tsql, err := tailsql.NewServer(tailsql.Options{
		RoutePrefix: "/debug/tailsql/",
	})
	if err != nil {
		log.Fatalf("failed to create tailsql server: %v", err)
	}
	tsql.SetDB("sqlite://"+db.path, db.DB, &tailsql.DBOptions{
		Label: "Imaging Report DB",
	})
	debug.Handle("tailsql/", "SQL live debugging", tsql.NewMux())

	debug.Handle("backup", "Create and download a backup of the database now", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backupPath := fmt.Sprintf("backup-%d.db", time.Now().Unix())
		if _, err := db.Exec("VACUUM INTO ?", backupPath); err != nil {
			http.Error(w, fmt.Sprintf("Failed to create backup: %v", err), http.StatusInternalServerError)
			return
		}
		defer func() {
			if err := os.Remove(backupPath); err != nil {
				log.Printf("Failed to remove backup file: %v", err)
			}
		}()

		backupFile, err := os.Open(backupPath)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to open backup file: %v", err), http.StatusInternalServerError)
			return
		}
		defer backupFile.Close()

		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", backupPath))
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Encoding", "gzip")

		gzipWriter := gzip.NewWriter(w)
		defer gzipWriter.Close()
		if _, err := io.Copy(gzipWriter, backupFile); err != nil {
			log.Printf("Failed to stream backup file: %v", err)
		}
	}))
}
