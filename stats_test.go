// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package profiler_test

import (
	"testing"
	"time"

	profiler "github.com/DataDog/go-runtimeprofiler"

	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	p, clock := newManualProfiler(t)
	require.NoError(t, p.Start())
	for _, d := range []time.Duration{2, 4} {
		require.NoError(t, p.Push("a"))
		clock.Advance(d * time.Second)
		_, err := p.Pop()
		require.NoError(t, err)
	}
	require.NoError(t, p.Stop())

	stats, err := p.Stats()
	require.NoError(t, err)
	require.Equal(t, profiler.Stats{
		Label:        "test",
		TimeUnit:     "seconds",
		TotalRuntime: 6,
		Locations: []profiler.LocationStats{
			{Path: "root", Name: "root", Depth: 1, Visits: 1, Total: 6, Avg: 6, Min: 6, Max: 6},
			{Path: "root/a", Name: "/a", Depth: 2, Visits: 2, Total: 6, Avg: 3, Min: 2, Max: 4},
		},
	}, stats)

	t.Run("metrics", func(t *testing.T) {
		require.Equal(t, map[string]any{
			"root.visits":   int64(1),
			"root.total":    int64(6),
			"root.avg":      int64(6),
			"root.min":      int64(6),
			"root.max":      int64(6),
			"root/a.visits": int64(2),
			"root/a.total":  int64(6),
			"root/a.avg":    int64(3),
			"root/a.min":    int64(2),
			"root/a.max":    int64(4),
		}, stats.Metrics())
	})

	t.Run("metrics-without-visits", func(t *testing.T) {
		stats := profiler.Stats{Locations: []profiler.LocationStats{{Path: "root"}}}
		require.Equal(t, map[string]any{"root.visits": int64(0), "root.total": int64(0)}, stats.Metrics())
	})
}
