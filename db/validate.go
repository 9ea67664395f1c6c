// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/covid-trends/cliparse"
)

// Required columns per base relation, as read by the aggregation queries.
var (
	deathsColumns       = []string{"location", "continent", "date", "population", "total_cases", "new_cases", "total_deaths", "new_deaths"}
	vaccinationsColumns = []string{"location", "date", "new_vaccinations"}
)

// ValidateSchema verifies that every column the engine reads exists in the
// configured base relations. A missing column is fatal: the server refuses
// to start rather than failing inside an arbitrary later query.
func ValidateSchema(db *sql.DB, cfg cliparse.Config) error {
	if err := probeColumns(db, cfg.DeathsTable, deathsColumns); err != nil {
		return err
	}
	return probeColumns(db, cfg.VaccinationsTable, vaccinationsColumns)
}

// probeColumns runs a zero-row SELECT naming every required column; the
// store itself reports which relation or column is absent.
func probeColumns(db *sql.DB, table string, columns []string) error {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE 1 = 0`, strings.Join(columns, ", "), table)
	rows, err := db.Query(query)
	if err != nil {
		return fmt.Errorf("schema validation failed for relation %s: %w", table, err)
	}
	return rows.Close()
}
