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

type StatsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{db: db, cfg: cfg}
}

// GetRatios handles GET /stats/ratios?location=...
// Returns per-(location, date) death and infection percentages, ordered by
// (location, date). An unknown location yields an empty array, not a 404 -
// absence of rows is data, not an error.
func (h *StatsHandler) GetRatios(w http.ResponseWriter, r *http.Request) {
	ratios, err := ComputeRatios(h.db, h.cfg, r.URL.Query().Get("location"))
	if err != nil {
		slog.Error("failed to compute ratios", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ratios)
}

// GetInfectionRates handles GET /stats/infection-rates
// Returns locations ranked by peak infection share of population,
// descending, ties broken by location ascending.
func (h *StatsHandler) GetInfectionRates(w http.ResponseWriter, r *http.Request) {
	rates, err := ComputeInfectionRates(h.db, h.cfg)
	if err != nil {
		slog.Error("failed to compute infection rates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rates)
}

// GetDeathCounts handles GET /stats/death-counts?by=continent
// Default granularity is location; by=continent switches to the
// continent-level comparison. Both are ordered by count descending.
func (h *StatsHandler) GetDeathCounts(w http.ResponseWriter, r *http.Request) {
	switch by := r.URL.Query().Get("by"); by {
	case "", "location":
		counts, err := ComputeDeathCounts(h.db, h.cfg)
		if err != nil {
			slog.Error("failed to compute death counts", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, counts)
	case "continent":
		counts, err := ComputeContinentDeathCounts(h.db, h.cfg)
		if err != nil {
			slog.Error("failed to compute continent death counts", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, counts)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "by must be location or continent")
	}
}

// GetGlobal handles GET /stats/global
// Returns the single-row worldwide rollup.
func (h *StatsHandler) GetGlobal(w http.ResponseWriter, r *http.Request) {
	summary, err := ComputeGlobalSummary(h.db, h.cfg)
	if err != nil {
		slog.Error("failed to compute global summary", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}
