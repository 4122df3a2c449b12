// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package promreport exposes the result of profiling sessions as Prometheus metrics.
package promreport

import (
	"sync"

	profiler "github.com/DataDog/go-runtimeprofiler"
	"github.com/DataDog/go-runtimeprofiler/report"

	"github.com/prometheus/client_golang/prometheus"
)

var locationLabels = []string{"profiler", "location", "path", "unit"}

// Collector is a prometheus.Collector exporting the last session given to Update.
// Profilers are not safe for concurrent use, so the Collector never reads one
// while being scraped: it works on a copy taken by Update.
type Collector struct {
	visits  *prometheus.Desc
	total   *prometheus.Desc
	min     *prometheus.Desc
	max     *prometheus.Desc
	runtime *prometheus.Desc

	mu       sync.RWMutex
	sessions map[string]session
	order    []string
}

type session struct {
	unit  string
	stats profiler.Stats
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns an empty Collector whose metric names are prefixed by namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		visits: prometheus.NewDesc(prometheus.BuildFQName(namespace, "location", "visits_total"),
			"Number of times a profiled location was popped.", locationLabels, nil),
		total: prometheus.NewDesc(prometheus.BuildFQName(namespace, "location", "time_total"),
			"Time spent in a profiled location, nested locations included.", locationLabels, nil),
		min: prometheus.NewDesc(prometheus.BuildFQName(namespace, "location", "time_min"),
			"Shortest visit of a profiled location.", locationLabels, nil),
		max: prometheus.NewDesc(prometheus.BuildFQName(namespace, "location", "time_max"),
			"Longest visit of a profiled location.", locationLabels, nil),
		runtime: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "runtime_total"),
			"Duration of the last profiling session.", []string{"profiler", "unit"}, nil),
		sessions: make(map[string]session),
	}
}

// Update replaces the exported session of the profiler labelled src.Label() with
// the current content of src. It must be called from the goroutine driving src,
// once its session is stopped.
func (c *Collector) Update(src report.Source) error {
	stats, err := report.Snapshot(src)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sessions[stats.Label]; !ok {
		c.order = append(c.order, stats.Label)
	}
	c.sessions[stats.Label] = session{
		unit:  src.TimingPrecision().Abbreviation(),
		stats: stats,
	}
	return nil
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.visits
	ch <- c.total
	ch <- c.min
	ch <- c.max
	ch <- c.runtime
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, label := range c.order {
		s := c.sessions[label]
		ch <- prometheus.MustNewConstMetric(c.runtime, prometheus.GaugeValue, float64(s.stats.TotalRuntime), label, s.unit)

		for _, loc := range s.stats.Locations {
			labels := []string{label, loc.Name, loc.Path, s.unit}
			ch <- prometheus.MustNewConstMetric(c.visits, prometheus.CounterValue, float64(loc.Visits), labels...)
			ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(loc.Total), labels...)
			if loc.Visits == 0 {
				continue
			}
			ch <- prometheus.MustNewConstMetric(c.min, prometheus.GaugeValue, float64(loc.Min), labels...)
			ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(loc.Max), labels...)
		}
	}
}
