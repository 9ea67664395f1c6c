// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/covid-trends/cliparse"
	"github.com/danielhkuo/covid-trends/middleware"
)

type VaccinationHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVaccinationHandler(db *sql.DB, cfg cliparse.Config) *VaccinationHandler {
	return &VaccinationHandler{db: db, cfg: cfg}
}

// GetRolling handles GET /vaccinations/rolling?location=...
// Returns the per-location running vaccination total, ordered by
// (location, date). This is the same series the
// percent_population_vaccinated view exposes to BI tools, recomputed on
// every call against the current base relations.
func (h *VaccinationHandler) GetRolling(w http.ResponseWriter, r *http.Request) {
	rolling, err := ComputeRollingVaccinations(h.db, h.cfg, r.URL.Query().Get("location"))
	if err != nil {
		slog.Error("failed to compute rolling vaccinations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rolling)
}

// GetCoverage handles GET /vaccinations/coverage?location=...
// Returns the rolling series with vaccinated_percentage layered on top.
func (h *VaccinationHandler) GetCoverage(w http.ResponseWriter, r *http.Request) {
	coverage, err := ComputeCoverage(h.db, h.cfg, r.URL.Query().Get("location"))
	if err != nil {
		slog.Error("failed to compute vaccination coverage", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, coverage)
}
