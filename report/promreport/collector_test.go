// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package promreport_test

import (
	"strings"
	"testing"
	"time"

	profiler "github.com/DataDog/go-runtimeprofiler"
	"github.com/DataDog/go-runtimeprofiler/profilererrors"
	"github.com/DataDog/go-runtimeprofiler/report/promreport"
	"github.com/DataDog/go-runtimeprofiler/timer"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func session(t *testing.T, label string, durations ...time.Duration) *profiler.Profiler {
	var clock timer.ManualClock
	p, err := profiler.New(label, profiler.WithClock(&clock), profiler.WithTimeUnit(timer.Seconds))
	require.NoError(t, err)
	require.NoError(t, p.Start())
	for _, d := range durations {
		require.NoError(t, p.Push("a"))
		clock.Advance(d)
		_, err := p.Pop()
		require.NoError(t, err)
	}
	require.NoError(t, p.Stop())
	return p
}

func TestCollector(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Zero(t, testutil.CollectAndCount(promreport.NewCollector("test")))
	})

	t.Run("exports", func(t *testing.T) {
		collector := promreport.NewCollector("test")
		require.NoError(t, collector.Update(session(t, "p", 2*time.Second, 4*time.Second)))

		registry := prometheus.NewPedanticRegistry()
		require.NoError(t, registry.Register(collector))

		expected := `
# HELP test_location_visits_total Number of times a profiled location was popped.
# TYPE test_location_visits_total counter
test_location_visits_total{location="/a",path="root/a",profiler="p",unit="s"} 2
test_location_visits_total{location="root",path="root",profiler="p",unit="s"} 1
# HELP test_location_time_max Longest visit of a profiled location.
# TYPE test_location_time_max gauge
test_location_time_max{location="/a",path="root/a",profiler="p",unit="s"} 4
test_location_time_max{location="root",path="root",profiler="p",unit="s"} 6
# HELP test_runtime_total Duration of the last profiling session.
# TYPE test_runtime_total gauge
test_runtime_total{profiler="p",unit="s"} 6
`
		require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected),
			"test_location_visits_total", "test_location_time_max", "test_runtime_total"))
		require.Equal(t, 9, testutil.CollectAndCount(collector))
	})

	t.Run("update-replaces", func(t *testing.T) {
		collector := promreport.NewCollector("test")
		require.NoError(t, collector.Update(session(t, "p", time.Second)))
		require.NoError(t, collector.Update(session(t, "p", time.Second, time.Second)))
		require.NoError(t, collector.Update(session(t, "other")))

		require.Equal(t, 2, testutil.CollectAndCount(collector, "test_runtime_total"))
		require.Equal(t, 3, testutil.CollectAndCount(collector, "test_location_visits_total"))
	})

	t.Run("unvisited", func(t *testing.T) {
		p, err := profiler.New("unbalanced", profiler.WithClock(&timer.ManualClock{}))
		require.NoError(t, err)
		require.NoError(t, p.Start())
		require.NoError(t, p.Push("open"))
		require.NoError(t, p.Push("leaf"))
		require.ErrorIs(t, p.Stop(), profilererrors.ErrUnbalancedStack)

		collector := promreport.NewCollector("test")
		require.NoError(t, collector.Update(p))
		require.Equal(t, 3, testutil.CollectAndCount(collector, "test_location_visits_total"))
		require.Equal(t, 1, testutil.CollectAndCount(collector, "test_location_time_min"))
	})

	t.Run("still-running", func(t *testing.T) {
		p, err := profiler.New("running")
		require.NoError(t, err)
		require.NoError(t, p.Start())

		collector := promreport.NewCollector("test")
		require.ErrorIs(t, collector.Update(p), profilererrors.ErrStillRunning)
		require.Zero(t, testutil.CollectAndCount(collector))
	})
}
