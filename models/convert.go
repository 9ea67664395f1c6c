// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"database/sql"
	"strconv"
	"strings"
)

// ParseCount converts a loosely typed count column (total_deaths,
// new_deaths) to an integer. The source dataset stores cumulative death
// counts as text, including empty strings, "NULL" markers, and float-form
// integers like "559.0" left over from spreadsheet exports.
//
// The second return value reports whether a usable number was present.
// Callers decide what absence means: skipped for max-style aggregates,
// zero for sums. Unparsable values never abort a query.
func ParseCount(raw sql.NullString) (int64, bool) {
	if !raw.Valid {
		return 0, false
	}
	s := strings.TrimSpace(raw.String)
	if s == "" || strings.EqualFold(s, "null") {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	// Spreadsheet float form
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// Ratio returns numerator/denominator*100, or nil when the denominator is
// zero. Every percentage the API emits goes through this guard so the
// undefined-ratio policy (null propagation) is uniform.
func Ratio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	v := numerator / denominator * 100
	return &v
}
