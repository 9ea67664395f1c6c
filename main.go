package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/covid-trends/cliparse"
	"github.com/danielhkuo/covid-trends/db"
	"github.com/danielhkuo/covid-trends/middleware"
	"github.com/danielhkuo/covid-trends/router"
)

func main() {
	var err error

	// Optional .env for local development; env vars win when both are set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the tabular store (sqlite by default, postgres via -t)
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create base relations if absent and (re)register the
	// percent_population_vaccinated view
	if err := db.CreateSchema(dbConn, cfg); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	// Fail fast if a required column is missing; no query runs partially
	// against a malformed relation
	if err := db.ValidateSchema(dbConn, cfg); err != nil {
		slog.Error("schema validation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready",
		"deaths_table", cfg.DeathsTable,
		"vaccinations_table", cfg.VaccinationsTable,
	)

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
