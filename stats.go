// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package profiler

import (
	"fmt"
)

// Stats is a copy of the data recorded during a session, detached from the
// Profiler that produced it.
type Stats struct {
	Label string `json:"label"`

	// TimeUnit is the unit of every duration below
	TimeUnit string `json:"time_unit"`

	// TotalRuntime is the time spent in the root location
	TotalRuntime int64 `json:"total_runtime"`

	// Locations are sorted in the order they were first pushed
	Locations []LocationStats `json:"locations"`
}

// LocationStats is a copy of the aggregates of a Location. Avg, Min and Max are
// zero when Visits is zero.
type LocationStats struct {
	Path   string `json:"path"`
	Name   string `json:"name"`
	Depth  int    `json:"depth"`
	Visits int64  `json:"visits"`
	Total  int64  `json:"total"`
	Avg    int64  `json:"avg"`
	Min    int64  `json:"min"`
	Max    int64  `json:"max"`
}

const (
	visitsTag = "visits"
	totalTag  = "total"
	avgTag    = "avg"
	minTag    = "min"
	maxTag    = "max"
)

// Snapshot copies the current aggregates of loc.
func (loc *Location) Snapshot() LocationStats {
	stats := LocationStats{
		Path:   loc.path,
		Name:   loc.name,
		Depth:  loc.depth,
		Visits: loc.visits,
		Total:  loc.total,
	}
	if loc.visits > 0 {
		stats.Avg = loc.total / loc.visits
		stats.Min = loc.min
		stats.Max = loc.max
	}
	return stats
}

// Stats returns a snapshot of the last session. It fails while the session is running.
func (p *Profiler) Stats() (Stats, error) {
	total, err := p.TotalRuntime()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Label:        p.label,
		TimeUnit:     p.config.TimeUnit.String(),
		TotalRuntime: total,
		Locations:    make([]LocationStats, len(p.locations.storage)),
	}
	for i, loc := range p.locations.storage {
		stats.Locations[i] = loc.Snapshot()
	}
	return stats, nil
}

// Metrics flattens the stats into a map of key value metrics, keyed by
// "<path>.<aggregate>". Aggregates that are meaningless without visits are left out.
func (stats Stats) Metrics() map[string]any {
	tags := make(map[string]any, len(stats.Locations)*5)
	for _, loc := range stats.Locations {
		tags[key(loc.Path, visitsTag)] = loc.Visits
		tags[key(loc.Path, totalTag)] = loc.Total
		if loc.Visits == 0 {
			continue
		}
		tags[key(loc.Path, avgTag)] = loc.Avg
		tags[key(loc.Path, minTag)] = loc.Min
		tags[key(loc.Path, maxTag)] = loc.Max
	}
	return tags
}

func key(path string, aggregate string) string {
	return fmt.Sprintf("%s.%s", path, aggregate)
}
