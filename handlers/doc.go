// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers and the aggregation
queries behind them.

# Handler Types

Each handler is a struct with database and config dependencies:

  - StatsHandler: case/death statistics (ratios, rankings, global rollup)
  - VaccinationHandler: the rolling vaccination series and coverage

Handlers are created via constructor functions that accept *sql.DB and Config:

	statsHandler := handlers.NewStatsHandler(db, cfg)

Every operation is a read-only GET over the two base relations; handlers
hold no other state, so each invocation is independent.

# Aggregation Queries

The compute functions in aggregates.go are callable without the HTTP
layer:

	ratios, err := handlers.ComputeRatios(db, cfg, "Canada")
	rates, err := handlers.ComputeInfectionRates(db, cfg)
	counts, err := handlers.ComputeDeathCounts(db, cfg)
	summary, err := handlers.ComputeGlobalSummary(db, cfg)

SQL does the joining, filtering, grouping, and ordering; ratio math and
loose-count conversion happen in Go so the null-propagation and
skip-on-unparsable policies live in one place (package models).

# Rolling Vaccination Series

The core computation is implemented in rolling.go:

	rolling, err := handlers.ComputeRollingVaccinations(db, cfg, "")

It joins the two relations on (location, date), partitions by location,
orders by date, and prefix-sums null-as-zero new_vaccinations, resetting
the running total at every location boundary. The
percent_population_vaccinated view in package db is the SQL rendering of
the same query for BI tools.

# Ordering

Result sets are deterministically ordered: series by (location, date),
rankings by their metric descending with ties broken by name ascending.
*/
package handlers
