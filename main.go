package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/orbita-labs/imaging.report/internal/api"
	"github.com/orbita-labs/imaging.report/internal/db"
	"github.com/orbita-labs/imaging.report/internal/scenario"
	"github.com/orbita-labs/imaging.report/internal/version"
)

var (
	listen      = flag.String("listen", ":8080", "Listen address")
	dbFile      = flag.String("db", "imaging_runs.db", "Path to the SQLite run store")
	scenarioCfg = flag.String("scenarios", "", "Optional scenario overrides JSON file")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		log.Printf("imaging.report %s", version.String())
		return
	}

	if *listen == "" {
		log.Fatal("Listen address is required")
	}

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

	database, err := db.NewDB(*dbFile)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// HTTP server goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()

		mux := http.NewServeMux()

		// mount the admin debugging routes (live SQL UI and backup download)
		database.AttachAdminRoutes(mux)

		apiMux := api.NewServer(database, high, low).ServeMux()
		mux.Handle("/api/", http.StripPrefix("/api", apiMux))

		server := &http.Server{
			Addr:    *listen,
			Handler: api.LoggingMiddleware(mux),
		}

		go func() {
			log.Printf("listening on %s", *listen)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("failed to start server: %v", err)
				stop()
			}
		}()

		<-ctx.Done()
		log.Println("shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}

		log.Printf("HTTP server routine stopped")
	}()

	wg.Wait()
	log.Printf("Graceful shutdown complete")
}
