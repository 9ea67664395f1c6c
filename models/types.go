package models

// Response types
//
// Ratio fields are pointers: nil means the ratio is undefined for that row
// (zero denominator or unparsable numerator) and serializes as JSON null.
// The policy is the same for every ratio the API returns.

// RatioRow is one (location, date) observation with its derived death and
// infection percentages.
type RatioRow struct {
	Continent                 string   `json:"continent"`
	Location                  string   `json:"location"`
	Date                      string   `json:"date"`
	Population                *int64   `json:"population"`
	TotalCases                *int64   `json:"total_cases"`
	TotalDeaths               *int64   `json:"total_deaths"`
	DeathPercentage           *float64 `json:"death_percentage"`
	PercentPopulationInfected *float64 `json:"percent_population_infected"`
}

// InfectionRateRow is a location's peak infection count relative to its
// population.
type InfectionRateRow struct {
	Location                  string   `json:"location"`
	Population                *int64   `json:"population"`
	HighestInfectionCount     *int64   `json:"highest_infection_count"`
	PercentPopulationInfected *float64 `json:"percent_population_infected"`
}

// DeathCountRow is a location's peak cumulative death count.
type DeathCountRow struct {
	Location        string `json:"location"`
	TotalDeathCount int64  `json:"total_death_count"`
}

// ContinentDeathCountRow is the same aggregation at continent granularity.
type ContinentDeathCountRow struct {
	Continent       string `json:"continent"`
	TotalDeathCount int64  `json:"total_death_count"`
}

// GlobalSummary is the single-row worldwide rollup.
type GlobalSummary struct {
	TotalCases      int64    `json:"total_cases"`
	TotalDeaths     int64    `json:"total_deaths"`
	DeathPercentage *float64 `json:"death_percentage"`
}

// RollingVaccinationRow is one row of the rolling-vaccination series:
// RollingPeopleVaccinated is the running sum of new_vaccinations
// (null counted as zero) over all dates up to and including Date for the
// same Location. NewVaccinations carries the raw, unconverted value.
type RollingVaccinationRow struct {
	Continent               string `json:"continent"`
	Location                string `json:"location"`
	Date                    string `json:"date"`
	Population              *int64 `json:"population"`
	NewVaccinations         *int64 `json:"new_vaccinations"`
	RollingPeopleVaccinated int64  `json:"rolling_people_vaccinated"`
}

// CoverageRow layers the vaccinated share of the population on top of the
// rolling series.
type CoverageRow struct {
	RollingVaccinationRow
	VaccinatedPercentage *float64 `json:"vaccinated_percentage"`
}

// ErrorResponse is the JSON error body for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
