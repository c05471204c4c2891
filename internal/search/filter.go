package search

import (
	"strings"
	"time"

	"design-radar/internal/domain/job"
)

type DateRange string

const (
	DateRange24h DateRange = "24h"
	DateRange3d  DateRange = "3d"
	DateRange7d  DateRange = "7d"
	DateRange30d DateRange = "30d"
	DateRangeAll DateRange = "all"
)

var dateRangeDays = map[DateRange]int{
	DateRange24h: 1,
	DateRange3d:  3,
	DateRange7d:  7,
	DateRange30d: 30,
}

// Filters is the session-scoped filter state. It is passed by value and
// never mutated by the pipeline.
type Filters struct {
	Query       string             `json:"query"`
	Regions     []string           `json:"regions"`
	RemoteTypes []job.RemoteStatus `json:"remote_types"`
	DateRange   DateRange          `json:"date_range"`
	TimezoneMin float64            `json:"timezone_min"`
	TimezoneMax float64            `json:"timezone_max"`
}

// DefaultFilters selects everything: all regions, all work modes, the
// full timezone span, no date cutoff.
func DefaultFilters() Filters {
	return Filters{
		Regions:     AllRegionCodes(),
		RemoteTypes: []job.RemoteStatus{job.RemoteStatusRemote, job.RemoteStatusHybrid, job.RemoteStatusOnSite},
		DateRange:   DateRangeAll,
		TimezoneMin: -12,
		TimezoneMax: 14,
	}
}

// Apply keeps the jobs passing every filter predicate, preserving input
// order. The result is a fresh slice; inputs are never modified.
func Apply(jobs []job.Matched, f Filters, now time.Time) []job.Matched {
	out := make([]job.Matched, 0, len(jobs))
	for _, j := range jobs {
		if f.match(j, now) {
			out = append(out, j)
		}
	}
	return out
}

func (f Filters) match(j job.Matched, now time.Time) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !matchesQuery(j, q) {
			return false
		}
	}

	if !intersects(f.Regions, RegionsFromLocation(j.Location)) {
		return false
	}

	// The timezone window only constrains listings with a physical
	// location; fully remote listings pass regardless.
	if j.RemoteStatus != job.RemoteStatusRemote {
		tz := TimezoneFromLocation(j.Location)
		if tz < f.TimezoneMin || tz > f.TimezoneMax {
			return false
		}
	}

	if !containsMode(f.RemoteTypes, j.RemoteStatus) {
		return false
	}

	if days, ok := dateRangeDays[f.DateRange]; ok && f.DateRange != DateRangeAll {
		cutoff := now.AddDate(0, 0, -days)
		if j.PostedAt.Before(cutoff) {
			return false
		}
	}

	return true
}

func matchesQuery(j job.Matched, q string) bool {
	if strings.Contains(strings.ToLower(j.Role), q) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Company), q) {
		return true
	}
	for _, s := range j.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func intersects(selected, jobRegions []string) bool {
	for _, s := range selected {
		for _, r := range jobRegions {
			if s == r {
				return true
			}
		}
	}
	return false
}

func containsMode(modes []job.RemoteStatus, m job.RemoteStatus) bool {
	for _, mode := range modes {
		if mode == m {
			return true
		}
	}
	return false
}
