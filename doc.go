// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the covid-trends API server.

covid-trends is a read-only descriptive-analytics API over two pre-loaded
relations: COVID-19 case/death records and vaccination records, joined on
(location, date). Every endpoint is an independently invokable aggregation
query; the rolling-vaccination series is additionally registered in the
store as the percent_population_vaccinated SQL view for BI tools that
query the database directly.

# Starting the Server

The server requires a database URL via environment variable or CLI flag:

	DATABASE_URL=covid.db go run main.go

Or with flags:

	go run main.go -p 3319 -d covid.db
	go run main.go -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DEATHS_TABLE (--deaths-table): case/death relation name (default: covid_deaths)
  - VACCINATIONS_TABLE (--vaccinations-table): vaccination relation name (default: covid_vaccinations)

The two base relations are externally owned; the server never writes to
them. CreateSchema only creates them when absent (IF NOT EXISTS) and
re-registers the view.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: aggregation queries (ratios, rankings, global rollup, rolling vaccinations)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: result-row types and the loose-count conversion boundary
  - db: schema/view creation and required-column validation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
