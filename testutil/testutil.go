// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gocarina/gocsv"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/covid-trends/cliparse"
	"github.com/danielhkuo/covid-trends/db"
)

//go:embed testdata/*.csv
var fixtures embed.FS

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3319,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		DeathsTable:       "covid_deaths",
		VaccinationsTable: "covid_vaccinations",
	}
}

// SetupTestDB creates a fresh in-memory database with the full schema,
// including the percent_population_vaccinated view
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Each connection to :memory: is its own database; pin the pool to one
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, GetTestConfig()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// CaseRow seeds one covid_deaths record. Nil pointers store SQL NULL;
// Continent nil marks an aggregate pseudo-row.
type CaseRow struct {
	Location    string
	Continent   *string
	Date        string
	Population  *int64
	TotalCases  *int64
	NewCases    *int64
	TotalDeaths *string
	NewDeaths   *string
}

// VaccinationRow seeds one covid_vaccinations record.
type VaccinationRow struct {
	Location        string
	Date            string
	NewVaccinations *int64
}

// InsertCaseRow inserts a case/death record into the test database
func InsertCaseRow(t *testing.T, conn *sql.DB, row CaseRow) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO covid_deaths (location, continent, date, population, total_cases, new_cases, total_deaths, new_deaths)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, row.Location, row.Continent, row.Date, row.Population, row.TotalCases, row.NewCases, row.TotalDeaths, row.NewDeaths)
	if err != nil {
		t.Fatalf("Failed to insert case row: %v", err)
	}
}

// InsertVaccinationRow inserts a vaccination record into the test database
func InsertVaccinationRow(t *testing.T, conn *sql.DB, row VaccinationRow) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO covid_vaccinations (location, date, new_vaccinations)
		VALUES ($1, $2, $3)
	`, row.Location, row.Date, row.NewVaccinations)
	if err != nil {
		t.Fatalf("Failed to insert vaccination row: %v", err)
	}
}

// StringPtr returns a pointer to s, for seeding nullable text columns
func StringPtr(s string) *string { return &s }

// Int64Ptr returns a pointer to n, for seeding nullable count columns
func Int64Ptr(n int64) *int64 { return &n }

// CSV fixture rows; everything loosely typed comes in as string, exactly
// like the real dataset exports.
type deathsFixture struct {
	Location    string `csv:"location"`
	Continent   string `csv:"continent"`
	Date        string `csv:"date"`
	Population  string `csv:"population"`
	TotalCases  string `csv:"total_cases"`
	NewCases    string `csv:"new_cases"`
	TotalDeaths string `csv:"total_deaths"`
	NewDeaths   string `csv:"new_deaths"`
}

type vaccinationsFixture struct {
	Location        string `csv:"location"`
	Date            string `csv:"date"`
	NewVaccinations string `csv:"new_vaccinations"`
}

// LoadFixtures seeds the test database from the embedded CSV snapshot, a
// small slice of the real dataset including an aggregate pseudo-row, a
// missing join partner, blank cells, and a garbage death count.
func LoadFixtures(t *testing.T, conn *sql.DB) {
	t.Helper()

	var deaths []deathsFixture
	readFixture(t, "testdata/covid_deaths.csv", &deaths)
	for _, d := range deaths {
		InsertCaseRow(t, conn, CaseRow{
			Location:    d.Location,
			Continent:   textOrNil(d.Continent),
			Date:        d.Date,
			Population:  intOrNil(t, d.Population),
			TotalCases:  intOrNil(t, d.TotalCases),
			NewCases:    intOrNil(t, d.NewCases),
			TotalDeaths: textOrNil(d.TotalDeaths),
			NewDeaths:   textOrNil(d.NewDeaths),
		})
	}

	var vaccinations []vaccinationsFixture
	readFixture(t, "testdata/covid_vaccinations.csv", &vaccinations)
	for _, v := range vaccinations {
		InsertVaccinationRow(t, conn, VaccinationRow{
			Location:        v.Location,
			Date:            v.Date,
			NewVaccinations: intOrNil(t, v.NewVaccinations),
		})
	}
}

func readFixture(t *testing.T, path string, out interface{}) {
	t.Helper()

	f, err := fixtures.Open(path)
	if err != nil {
		t.Fatalf("Failed to open fixture %s: %v", path, err)
	}
	defer f.Close()

	if err := gocsv.Unmarshal(f, out); err != nil {
		t.Fatalf("Failed to parse fixture %s: %v", path, err)
	}
}

func textOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intOrNil(t *testing.T, s string) *int64 {
	t.Helper()
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		t.Fatalf("Fixture cell %q is not an integer: %v", s, err)
	}
	return &n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// SeriesDates is a convenience for building consecutive ISO dates in tests
func SeriesDates(yearMonth string, days int) []string {
	dates := make([]string, days)
	for i := 0; i < days; i++ {
		dates[i] = fmt.Sprintf("%s-%02d", yearMonth, i+1)
	}
	return dates
}
