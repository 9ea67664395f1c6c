// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"

	"github.com/danielhkuo/covid-trends/testutil"
)

func TestComputeRatios_InfectionPercentage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	// (D1, 100 cases) and (D2, 150 cases) in a population of 1000
	testutil.InsertCaseRow(t, db, testutil.CaseRow{
		Location:   "Wakanda",
		Continent:  testutil.StringPtr("Africa"),
		Date:       "2021-04-01",
		Population: testutil.Int64Ptr(1000),
		TotalCases: testutil.Int64Ptr(100),
	})
	testutil.InsertCaseRow(t, db, testutil.CaseRow{
		Location:   "Wakanda",
		Continent:  testutil.StringPtr("Africa"),
		Date:       "2021-04-02",
		Population: testutil.Int64Ptr(1000),
		TotalCases: testutil.Int64Ptr(150),
	})

	ratios, err := ComputeRatios(db, cfg, "")
	if err != nil {
		t.Fatalf("ComputeRatios failed: %v", err)
	}
	if len(ratios) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(ratios))
	}

	if got := ratios[0].PercentPopulationInfected; got == nil || *got != 10.0 {
		t.Errorf("Expected 10.0%% infected at D1, got %v", got)
	}
	if got := ratios[1].PercentPopulationInfected; got == nil || *got != 15.0 {
		t.Errorf("Expected 15.0%% infected at D2, got %v", got)
	}
}

func TestComputeRatios_ZeroCasesDoesNotCrash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	// total_cases = 0 with a recorded death count: the ratio is undefined
	// and must come back null, not crash or divide by zero
	testutil.InsertCaseRow(t, db, testutil.CaseRow{
		Location:    "Wakanda",
		Continent:   testutil.StringPtr("Africa"),
		Date:        "2021-04-01",
		Population:  testutil.Int64Ptr(1000),
		TotalCases:  testutil.Int64Ptr(0),
		TotalDeaths: testutil.StringPtr("5"),
	})

	ratios, err := ComputeRatios(db, cfg, "")
	if err != nil {
		t.Fatalf("ComputeRatios failed: %v", err)
	}
	if len(ratios) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(ratios))
	}
	if ratios[0].DeathPercentage != nil {
		t.Errorf("Expected null death percentage for zero cases, got %v", *ratios[0].DeathPercentage)
	}
	// The row itself stays in the output
	if got := ratios[0].PercentPopulationInfected; got == nil || *got != 0.0 {
		t.Errorf("Expected 0.0%% infected, got %v", got)
	}
}

func TestComputeRatios_UnparsableDeaths(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	testutil.InsertCaseRow(t, db, testutil.CaseRow{
		Location:    "Wakanda",
		Continent:   testutil.StringPtr("Africa"),
		Date:        "2021-04-01",
		Population:  testutil.Int64Ptr(1000),
		TotalCases:  testutil.Int64Ptr(100),
		TotalDeaths: testutil.StringPtr("n/a"),
	})

	ratios, err := ComputeRatios(db, cfg, "")
	if err != nil {
		t.Fatalf("ComputeRatios failed: %v", err)
	}
	if ratios[0].TotalDeaths != nil {
		t.Errorf("Expected null total deaths for unparsable value, got %d", *ratios[0].TotalDeaths)
	}
	if ratios[0].DeathPercentage != nil {
		t.Errorf("Expected null death percentage for unparsable deaths, got %v", *ratios[0].DeathPercentage)
	}
}

func TestComputeRatios_LocationFilterAndOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.LoadFixtures(t, db)

	all, err := ComputeRatios(db, cfg, "")
	if err != nil {
		t.Fatalf("ComputeRatios failed: %v", err)
	}

	// Ordered by (location, date)
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.Location > cur.Location || (prev.Location == cur.Location && prev.Date > cur.Date) {
			t.Fatalf("Rows out of (location, date) order at %d: %s/%s after %s/%s",
				i, cur.Location, cur.Date, prev.Location, prev.Date)
		}
	}

	// Aggregate pseudo-rows excluded
	for _, row := range all {
		if row.Location == "World" {
			t.Error("Aggregate pseudo-row World must not appear in ratios")
		}
	}

	canada, err := ComputeRatios(db, cfg, "Canada")
	if err != nil {
		t.Fatalf("ComputeRatios failed: %v", err)
	}
	if len(canada) != 4 {
		t.Fatalf("Expected 4 Canada rows, got %d", len(canada))
	}
	for _, row := range canada {
		if row.Location != "Canada" {
			t.Errorf("Location filter leaked row for %s", row.Location)
		}
	}

	// Unknown location yields an empty result, not an error
	none, err := ComputeRatios(db, cfg, "Narnia")
	if err != nil {
		t.Fatalf("ComputeRatios failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no rows for unknown location, got %d", len(none))
	}
}

func TestComputeInfectionRates_Ranking(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	// Peak shares: Aland 20%, Borduria 20% (tie), Cydonia 50%,
	// Ghost Town undefined (zero population)
	seed := []struct {
		location string
		pop      int64
		peaks    []int64
	}{
		{"Borduria", 500, []int64{50, 100}},
		{"Aland", 1000, []int64{150, 200}},
		{"Cydonia", 200, []int64{80, 100}},
		{"Ghost Town", 0, []int64{10, 10}},
	}
	for _, s := range seed {
		dates := testutil.SeriesDates("2021-04", len(s.peaks))
		for i, cases := range s.peaks {
			testutil.InsertCaseRow(t, db, testutil.CaseRow{
				Location:   s.location,
				Continent:  testutil.StringPtr("Europe"),
				Date:       dates[i],
				Population: testutil.Int64Ptr(s.pop),
				TotalCases: testutil.Int64Ptr(cases),
			})
		}
	}

	rates, err := ComputeInfectionRates(db, cfg)
	if err != nil {
		t.Fatalf("ComputeInfectionRates failed: %v", err)
	}

	wantOrder := []string{"Cydonia", "Aland", "Borduria", "Ghost Town"}
	if len(rates) != len(wantOrder) {
		t.Fatalf("Expected %d rows, got %d", len(wantOrder), len(rates))
	}
	for i, want := range wantOrder {
		if rates[i].Location != want {
			t.Errorf("Rank %d: expected %s, got %s", i+1, want, rates[i].Location)
		}
	}

	// Peak counts are the max of the cumulative series
	if got := rates[0].HighestInfectionCount; got == nil || *got != 100 {
		t.Errorf("Expected Cydonia peak 100, got %v", got)
	}
	if got := rates[0].PercentPopulationInfected; got == nil || *got != 50.0 {
		t.Errorf("Expected Cydonia 50%%, got %v", got)
	}

	// Undefined share sorts last and stays null
	if rates[3].PercentPopulationInfected != nil {
		t.Errorf("Expected null share for zero population, got %v", *rates[3].PercentPopulationInfected)
	}
}

func TestComputeDeathCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.LoadFixtures(t, db)

	counts, err := ComputeDeathCounts(db, cfg)
	if err != nil {
		t.Fatalf("ComputeDeathCounts failed: %v", err)
	}

	// Canada 60, Mexico 28, Albania 5 (the "n/a" cell is skipped, not
	// treated as the maximum); World excluded
	want := []struct {
		location string
		count    int64
	}{
		{"Canada", 60},
		{"Mexico", 28},
		{"Albania", 5},
	}
	if len(counts) != len(want) {
		t.Fatalf("Expected %d rows, got %d: %+v", len(want), len(counts), counts)
	}
	for i, w := range want {
		if counts[i].Location != w.location || counts[i].TotalDeathCount != w.count {
			t.Errorf("Row %d: expected %s=%d, got %s=%d",
				i, w.location, w.count, counts[i].Location, counts[i].TotalDeathCount)
		}
	}
}

func TestComputeContinentDeathCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.LoadFixtures(t, db)

	counts, err := ComputeContinentDeathCounts(db, cfg)
	if err != nil {
		t.Fatalf("ComputeContinentDeathCounts failed: %v", err)
	}

	// North America peaks at Canada's 60, Europe at Albania's 5
	want := []struct {
		continent string
		count     int64
	}{
		{"North America", 60},
		{"Europe", 5},
	}
	if len(counts) != len(want) {
		t.Fatalf("Expected %d rows, got %d: %+v", len(want), len(counts), counts)
	}
	for i, w := range want {
		if counts[i].Continent != w.continent || counts[i].TotalDeathCount != w.count {
			t.Errorf("Row %d: expected %s=%d, got %s=%d",
				i, w.continent, w.count, counts[i].Continent, counts[i].TotalDeathCount)
		}
	}
}

func TestComputeGlobalSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.LoadFixtures(t, db)

	summary, err := ComputeGlobalSummary(db, cfg)
	if err != nil {
		t.Fatalf("ComputeGlobalSummary failed: %v", err)
	}

	// Sums over real countries only: cases 260+2800+1400, deaths with the
	// blank Albania/Mexico cells counting as zero
	if summary.TotalCases != 4460 {
		t.Errorf("Expected 4460 total cases, got %d", summary.TotalCases)
	}
	if summary.TotalDeaths != 93 {
		t.Errorf("Expected 93 total deaths, got %d", summary.TotalDeaths)
	}
	if summary.DeathPercentage == nil {
		t.Fatal("Expected a defined global death percentage")
	}
	want := float64(93) / float64(4460) * 100
	if *summary.DeathPercentage != want {
		t.Errorf("Expected death percentage %v, got %v", want, *summary.DeathPercentage)
	}
}

func TestComputeGlobalSummary_EmptyStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	summary, err := ComputeGlobalSummary(db, cfg)
	if err != nil {
		t.Fatalf("ComputeGlobalSummary failed: %v", err)
	}
	if summary.TotalCases != 0 || summary.TotalDeaths != 0 {
		t.Errorf("Expected zero totals, got %+v", summary)
	}
	if summary.DeathPercentage != nil {
		t.Errorf("Expected null death percentage with no cases, got %v", *summary.DeathPercentage)
	}
}
