// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and validation.

# Schema Creation

CreateSchema initializes the base relations and the reporting view:

	if err := db.CreateSchema(conn, cfg); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the tables. The base
relations are externally owned and pre-loaded; CreateSchema only brings up
empty ones (useful for tests and fresh stores) and never alters existing
data.

# Tables

  - covid_deaths (configurable): one row per (location, date) with
    population, cumulative/new case counts, and text-typed cumulative/new
    death counts mirroring the source dataset's loose typing
  - covid_vaccinations (configurable): one row per (location, date) with
    nullable new_vaccinations

(location, date) is the primary key of each relation, so the join between
them is at most one-to-one and never fans out.

# The percent_population_vaccinated View

CreateSchema drops and recreates the view on every start so its definition
tracks the configured relation names. The view is a saved query with no
independent storage: each read re-executes the inner join and the
per-location running sum

	SUM(COALESCE(new_vaccinations, 0)) OVER (PARTITION BY location ORDER BY date)

against the then-current contents of the base relations. There is no
materialized mode; results are never stale.

# Validation

ValidateSchema probes every column the aggregation queries read, in both
relations, before the server starts serving. A missing column is fatal
and no query executes partially.
*/
package db
