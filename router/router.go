// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/covid-trends/cliparse"
	"github.com/danielhkuo/covid-trends/handlers"
	"github.com/danielhkuo/covid-trends/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	statsHandler := handlers.NewStatsHandler(db, cfg)
	vaccinationHandler := handlers.NewVaccinationHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Case/death statistics
	mux.HandleFunc("GET /stats/ratios", middleware.WithLogging(statsHandler.GetRatios))
	mux.HandleFunc("GET /stats/infection-rates", middleware.WithLogging(statsHandler.GetInfectionRates))
	mux.HandleFunc("GET /stats/death-counts", middleware.WithLogging(statsHandler.GetDeathCounts))
	mux.HandleFunc("GET /stats/global", middleware.WithLogging(statsHandler.GetGlobal))

	// Vaccination series (the percent_population_vaccinated view, over HTTP)
	mux.HandleFunc("GET /vaccinations/rolling", middleware.WithLogging(vaccinationHandler.GetRolling))
	mux.HandleFunc("GET /vaccinations/coverage", middleware.WithLogging(vaccinationHandler.GetCoverage))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("covid-trends API v1"))
	})

	return mux
}
