// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/covid-trends/models"
	"github.com/danielhkuo/covid-trends/testutil"
)

func TestGetRolling(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.LoadFixtures(t, db)

	handler := NewVaccinationHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/vaccinations/rolling?location=Albania")
	w := httptest.NewRecorder()
	handler.GetRolling(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rolling []models.RollingVaccinationRow
	testutil.AssertJSON(t, w, &rolling)
	if len(rolling) != 4 {
		t.Fatalf("Expected 4 Albania rows, got %d", len(rolling))
	}

	// [10, null, 20, 5] -> [10, 10, 30, 35]
	want := []int64{10, 10, 30, 35}
	for i, row := range rolling {
		if row.RollingPeopleVaccinated != want[i] {
			t.Errorf("Row %d: expected rolling total %d, got %d", i, want[i], row.RollingPeopleVaccinated)
		}
	}
}

func TestGetRolling_EmptyForUnknownLocation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.LoadFixtures(t, db)

	handler := NewVaccinationHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/vaccinations/rolling?location=Narnia")
	w := httptest.NewRecorder()
	handler.GetRolling(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var rolling []models.RollingVaccinationRow
	testutil.AssertJSON(t, w, &rolling)
	if len(rolling) != 0 {
		t.Errorf("Expected empty array for unknown location, got %d rows", len(rolling))
	}
	// Explicitly an empty JSON array, not null
	if body := w.Body.String(); body == "null\n" {
		t.Error("Expected [] body, got null")
	}
}

func TestGetCoverage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.LoadFixtures(t, db)

	handler := NewVaccinationHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/vaccinations/coverage?location=Albania")
	w := httptest.NewRecorder()
	handler.GetCoverage(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var coverage []models.CoverageRow
	testutil.AssertJSON(t, w, &coverage)
	if len(coverage) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(coverage))
	}

	// 35 of 2877797 on the last day
	last := coverage[3]
	if last.VaccinatedPercentage == nil {
		t.Fatal("Expected a defined vaccinated percentage")
	}
	want := float64(35) / float64(2877797) * 100
	if *last.VaccinatedPercentage != want {
		t.Errorf("Expected %v%%, got %v%%", want, *last.VaccinatedPercentage)
	}
}
