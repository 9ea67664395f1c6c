// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/danielhkuo/covid-trends/cliparse"
	"github.com/danielhkuo/covid-trends/models"
)

// ComputeRatios returns death_percentage and percent_population_infected
// for every (location, date) observation with a real continent, ordered by
// (location, date). Ratios with a zero denominator come back null; rows
// are never dropped for having undefined ratios.
func ComputeRatios(db *sql.DB, cfg cliparse.Config, location string) ([]models.RatioRow, error) {
	query := fmt.Sprintf(`
		SELECT continent, location, date, population, total_cases, total_deaths
		FROM %s
		WHERE continent IS NOT NULL
	`, cfg.DeathsTable)

	var args []any
	if location != "" {
		query += ` AND location = $1`
		args = append(args, location)
	}
	query += ` ORDER BY location, date`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratios: %w", err)
	}
	defer rows.Close()

	results := []models.RatioRow{}
	for rows.Next() {
		var continent, loc, date string
		var population, totalCases sql.NullInt64
		var totalDeathsRaw sql.NullString
		if err := rows.Scan(&continent, &loc, &date, &population, &totalCases, &totalDeathsRaw); err != nil {
			return nil, fmt.Errorf("failed to scan ratio row: %w", err)
		}

		row := models.RatioRow{
			Continent:  continent,
			Location:   loc,
			Date:       date,
			Population: nullableInt(population),
			TotalCases: nullableInt(totalCases),
		}

		// total_deaths is text in the source data; unparsable values leave
		// both the count and the ratio null
		if deaths, ok := models.ParseCount(totalDeathsRaw); ok {
			row.TotalDeaths = &deaths
			if totalCases.Valid {
				row.DeathPercentage = models.Ratio(float64(deaths), float64(totalCases.Int64))
			}
		}
		if totalCases.Valid && population.Valid {
			row.PercentPopulationInfected = models.Ratio(float64(totalCases.Int64), float64(population.Int64))
		}

		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ratio rows: %w", err)
	}

	return results, nil
}

// ComputeInfectionRates ranks locations by their peak infection share of
// population, descending. Ties (including rows whose share is undefined)
// break by location ascending so the ranking is a deterministic total
// order.
func ComputeInfectionRates(db *sql.DB, cfg cliparse.Config) ([]models.InfectionRateRow, error) {
	query := fmt.Sprintf(`
		SELECT location, population, MAX(total_cases)
		FROM %s
		WHERE continent IS NOT NULL
		GROUP BY location, population
	`, cfg.DeathsTable)

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query infection rates: %w", err)
	}
	defer rows.Close()

	results := []models.InfectionRateRow{}
	for rows.Next() {
		var loc string
		var population, highest sql.NullInt64
		if err := rows.Scan(&loc, &population, &highest); err != nil {
			return nil, fmt.Errorf("failed to scan infection rate row: %w", err)
		}

		row := models.InfectionRateRow{
			Location:              loc,
			Population:            nullableInt(population),
			HighestInfectionCount: nullableInt(highest),
		}
		if highest.Valid && population.Valid {
			row.PercentPopulationInfected = models.Ratio(float64(highest.Int64), float64(population.Int64))
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read infection rate rows: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]

		// 1. Defined percentages come before undefined ones
		if (a.PercentPopulationInfected == nil) != (b.PercentPopulationInfected == nil) {
			return b.PercentPopulationInfected == nil
		}

		// 2. Higher percentage wins
		if a.PercentPopulationInfected != nil && *a.PercentPopulationInfected != *b.PercentPopulationInfected {
			return *a.PercentPopulationInfected > *b.PercentPopulationInfected
		}

		// 3. Stable tie-breaking by location (ascending)
		return a.Location < b.Location
	})

	return results, nil
}

// ComputeDeathCounts returns each location's peak cumulative death count,
// descending, ties broken by location ascending. Rows whose text-typed
// total_deaths never parses are skipped rather than reported as zero.
func ComputeDeathCounts(db *sql.DB, cfg cliparse.Config) ([]models.DeathCountRow, error) {
	maxima, err := maxDeathsByKey(db, cfg, "location")
	if err != nil {
		return nil, err
	}

	results := make([]models.DeathCountRow, 0, len(maxima))
	for key, count := range maxima {
		results = append(results, models.DeathCountRow{Location: key, TotalDeathCount: count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalDeathCount != results[j].TotalDeathCount {
			return results[i].TotalDeathCount > results[j].TotalDeathCount
		}
		return results[i].Location < results[j].Location
	})
	return results, nil
}

// ComputeContinentDeathCounts is the same aggregation at continent
// granularity.
func ComputeContinentDeathCounts(db *sql.DB, cfg cliparse.Config) ([]models.ContinentDeathCountRow, error) {
	maxima, err := maxDeathsByKey(db, cfg, "continent")
	if err != nil {
		return nil, err
	}

	results := make([]models.ContinentDeathCountRow, 0, len(maxima))
	for key, count := range maxima {
		results = append(results, models.ContinentDeathCountRow{Continent: key, TotalDeathCount: count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalDeathCount != results[j].TotalDeathCount {
			return results[i].TotalDeathCount > results[j].TotalDeathCount
		}
		return results[i].Continent < results[j].Continent
	})
	return results, nil
}

// maxDeathsByKey scans (key, total_deaths) pairs and keeps the maximum
// parsed count per key. The conversion happens here, in Go, because
// total_deaths is text and SQL MAX over text compares lexically.
func maxDeathsByKey(db *sql.DB, cfg cliparse.Config, keyColumn string) (map[string]int64, error) {
	query := fmt.Sprintf(`
		SELECT %s, total_deaths
		FROM %s
		WHERE continent IS NOT NULL
	`, keyColumn, cfg.DeathsTable)

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query death counts: %w", err)
	}
	defer rows.Close()

	maxima := make(map[string]int64)
	for rows.Next() {
		var key string
		var raw sql.NullString
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan death count row: %w", err)
		}

		count, ok := models.ParseCount(raw)
		if !ok {
			continue
		}
		if current, seen := maxima[key]; !seen || count > current {
			maxima[key] = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read death count rows: %w", err)
	}

	return maxima, nil
}

// ComputeGlobalSummary sums daily cases and deaths worldwide (real
// countries only) into a single row. Unparsable new_deaths values count as
// zero; death_percentage is null when no cases were recorded.
func ComputeGlobalSummary(db *sql.DB, cfg cliparse.Config) (models.GlobalSummary, error) {
	query := fmt.Sprintf(`
		SELECT new_cases, new_deaths
		FROM %s
		WHERE continent IS NOT NULL
	`, cfg.DeathsTable)

	rows, err := db.Query(query)
	if err != nil {
		return models.GlobalSummary{}, fmt.Errorf("failed to query global summary: %w", err)
	}
	defer rows.Close()

	var summary models.GlobalSummary
	for rows.Next() {
		var newCases sql.NullInt64
		var newDeathsRaw sql.NullString
		if err := rows.Scan(&newCases, &newDeathsRaw); err != nil {
			return models.GlobalSummary{}, fmt.Errorf("failed to scan global summary row: %w", err)
		}

		if newCases.Valid {
			summary.TotalCases += newCases.Int64
		}
		if deaths, ok := models.ParseCount(newDeathsRaw); ok {
			summary.TotalDeaths += deaths
		}
	}
	if err := rows.Err(); err != nil {
		return models.GlobalSummary{}, fmt.Errorf("failed to read global summary rows: %w", err)
	}

	summary.DeathPercentage = models.Ratio(float64(summary.TotalDeaths), float64(summary.TotalCases))
	return summary, nil
}
