// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/covid-trends/cliparse"
	"github.com/danielhkuo/covid-trends/models"
)

// ComputeRollingVaccinations joins the case and vaccination relations on
// (location, date) and computes the per-location running vaccination total.
//
// The rows come back ordered by (location, date); the running sum is a
// prefix sum over each location's date-ordered sequence, counting NULL
// new_vaccinations as zero. It resets at every location boundary and never
// reads across locations. Aggregate pseudo-rows (continent IS NULL) are
// excluded.
//
// location narrows the series to a single location; empty means all.
func ComputeRollingVaccinations(db *sql.DB, cfg cliparse.Config, location string) ([]models.RollingVaccinationRow, error) {
	query := fmt.Sprintf(`
		SELECT d.continent, d.location, d.date, d.population, v.new_vaccinations
		FROM %s d
		JOIN %s v ON d.location = v.location AND d.date = v.date
		WHERE d.continent IS NOT NULL
	`, cfg.DeathsTable, cfg.VaccinationsTable)

	var args []any
	if location != "" {
		query += ` AND d.location = $1`
		args = append(args, location)
	}
	query += ` ORDER BY d.location, d.date`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rolling vaccinations: %w", err)
	}
	defer rows.Close()

	results := []models.RollingVaccinationRow{}
	var running int64
	var prevLocation string
	for rows.Next() {
		var continent, loc, date string
		var population, newVaccinations sql.NullInt64
		if err := rows.Scan(&continent, &loc, &date, &population, &newVaccinations); err != nil {
			return nil, fmt.Errorf("failed to scan rolling vaccination row: %w", err)
		}

		// Partition boundary: a new location starts a fresh prefix sum
		if len(results) == 0 || loc != prevLocation {
			running = 0
			prevLocation = loc
		}
		if newVaccinations.Valid {
			running += newVaccinations.Int64
		}

		results = append(results, models.RollingVaccinationRow{
			Continent:               continent,
			Location:                loc,
			Date:                    date,
			Population:              nullableInt(population),
			NewVaccinations:         nullableInt(newVaccinations),
			RollingPeopleVaccinated: running,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rolling vaccination rows: %w", err)
	}

	return results, nil
}

// ComputeCoverage layers vaccinated_percentage on the rolling series.
// A zero or absent population yields a null percentage, the same
// undefined-ratio policy as every other percentage.
func ComputeCoverage(db *sql.DB, cfg cliparse.Config, location string) ([]models.CoverageRow, error) {
	rolling, err := ComputeRollingVaccinations(db, cfg, location)
	if err != nil {
		return nil, err
	}

	results := make([]models.CoverageRow, len(rolling))
	for i, row := range rolling {
		cov := models.CoverageRow{RollingVaccinationRow: row}
		if row.Population != nil {
			cov.VaccinatedPercentage = models.Ratio(float64(row.RollingPeopleVaccinated), float64(*row.Population))
		}
		results[i] = cov
	}
	return results, nil
}

func nullableInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
