// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/covid-trends/cliparse"
)

// ViewName is the fixed identifier BI tools query for the rolling
// vaccination series.
const ViewName = "percent_population_vaccinated"

// CreateSchema creates the two base relations if they do not exist and
// (re)registers the percent_population_vaccinated view.
// Safe to call multiple times - uses IF NOT EXISTS for the tables; the
// view is dropped and recreated so its definition always tracks the
// configured relation names.
//
// The view is a saved query, not a snapshot: every read re-executes the
// join and the windowed sum against the then-current base relations.
func CreateSchema(db *sql.DB, cfg cliparse.Config) error {
	_, err := db.Exec(baseSchema(cfg))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	_, err = db.Exec(fmt.Sprintf(`DROP VIEW IF EXISTS %s`, ViewName))
	if err != nil {
		return fmt.Errorf("failed to drop view: %w", err)
	}
	_, err = db.Exec(viewSchema(cfg))
	if err != nil {
		return fmt.Errorf("failed to create view: %w", err)
	}

	return nil
}

// The DDL sticks to the subset both sqlite and postgres accept: TEXT
// dates in ISO yyyy-mm-dd form (lexicographic order is date order),
// BIGINT counts, and text-typed cumulative death columns mirroring the
// source dataset's loose typing. Conversion of the loose columns happens
// in Go, at the aggregation boundary.
func baseSchema(cfg cliparse.Config) string {
	return fmt.Sprintf(`
-- Case/death records: one row per (location, date).
-- continent IS NULL marks aggregate pseudo-rows (e.g. "World", income
-- groups) that are excluded from per-country analysis.
CREATE TABLE IF NOT EXISTS %[1]s (
    location TEXT NOT NULL,
    continent TEXT,
    date TEXT NOT NULL,
    population BIGINT,
    total_cases BIGINT,
    new_cases BIGINT,
    total_deaths TEXT,
    new_deaths TEXT,
    PRIMARY KEY (location, date)
);

CREATE INDEX IF NOT EXISTS idx_%[1]s_continent ON %[1]s(continent);

-- Vaccination records: one row per (location, date).
-- new_vaccinations NULL means no reported vaccinations that day.
CREATE TABLE IF NOT EXISTS %[2]s (
    location TEXT NOT NULL,
    date TEXT NOT NULL,
    new_vaccinations BIGINT,
    PRIMARY KEY (location, date)
);
`, cfg.DeathsTable, cfg.VaccinationsTable)
}

// viewSchema is the SQL twin of handlers.ComputeRollingVaccinations: an
// inner join on (location, date) restricted to real countries, with a
// per-location running sum of null-as-zero new_vaccinations.
func viewSchema(cfg cliparse.Config) string {
	return fmt.Sprintf(`
CREATE VIEW %[3]s AS
SELECT
    d.continent,
    d.location,
    d.date,
    d.population,
    v.new_vaccinations,
    SUM(COALESCE(v.new_vaccinations, 0)) OVER (
        PARTITION BY d.location ORDER BY d.date
    ) AS rolling_people_vaccinated
FROM %[1]s d
JOIN %[2]s v ON d.location = v.location AND d.date = v.date
WHERE d.continent IS NOT NULL
`, cfg.DeathsTable, cfg.VaccinationsTable, ViewName)
}
