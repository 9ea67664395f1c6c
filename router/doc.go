// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all HTTP routes for the API.

# Routes

Every query operation is an independently invokable GET:

	GET /health                      Liveness check
	GET /stats/ratios                Death/infection percentages per (location, date)
	GET /stats/infection-rates       Locations ranked by peak infection share
	GET /stats/death-counts          Peak death counts (?by=continent for continent level)
	GET /stats/global                Single-row worldwide rollup
	GET /vaccinations/rolling        Rolling vaccination series
	GET /vaccinations/coverage       Rolling series with vaccinated_percentage
	GET /                            API banner

/stats/ratios, /vaccinations/rolling, and /vaccinations/coverage accept an
optional ?location= filter.

# Design

Uses Go 1.22+ method-aware routing on the stdlib ServeMux. Handlers are
constructed once with the shared *sql.DB handle and config; there is no
other state, so every invocation is independent and stateless.
*/
package router
