// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines result-row types and the numeric-conversion
boundary for the API.

# Response Types

Types for JSON responses, one per query surface:

  - RatioRow: per-(location, date) death and infection percentages
  - InfectionRateRow: peak infection count and share per location
  - DeathCountRow / ContinentDeathCountRow: peak death counts
  - GlobalSummary: single-row worldwide rollup
  - RollingVaccinationRow: the rolling-vaccination series
  - CoverageRow: rolling series plus vaccinated_percentage
  - ErrorResponse: error, message

# Null Policy

Ratio fields are *float64 throughout. A nil ratio means the value is
undefined for that row - the denominator (total_cases or population) was
zero, or the numerator could not be parsed - and serializes as JSON null.
Rows are never dropped from output because of an undefined ratio.

# Loose-Count Conversion

The source dataset stores cumulative death counts as text. ParseCount is
the single place that text meets arithmetic: it accepts plain integers,
spreadsheet float forms ("559.0"), and reports empty/"NULL"/garbage values
as absent instead of failing. Aggregations skip absent values for max and
count them as zero for sums.
*/
package models
