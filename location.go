// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package profiler

import (
	"math"

	"github.com/DataDog/go-runtimeprofiler/profilererrors"
	"github.com/DataDog/go-runtimeprofiler/timer"

	"github.com/pkg/errors"
)

// Location accumulates the timings of every visit to one full path of a
// profiling session. All durations are expressed in Unit(). Only the Profiler
// owning it updates a Location.
type Location struct {
	path  string
	name  string
	depth int
	unit  timer.Unit

	// stopwatch is armed by push and read by pop
	stopwatch *timer.Stopwatch

	// children are the locations pushed on top of this one, by name
	children map[string]*Location

	total  int64
	min    int64
	max    int64
	visits int64
}

func newLocation(path, name string, depth int, unit timer.Unit, clock timer.Clock) *Location {
	return &Location{
		path:      path,
		name:      name,
		depth:     depth,
		unit:      unit,
		stopwatch: timer.NewStopwatch(clock),
		min:       math.MaxInt64,
		max:       math.MinInt64,
	}
}

func (loc *Location) adopt(name string, child *Location) {
	if loc.children == nil {
		loc.children = make(map[string]*Location)
	}
	loc.children[name] = child
}

func (loc *Location) push() {
	loc.stopwatch.Snap(loc.unit)
}

func (loc *Location) pop() {
	elapsed := loc.stopwatch.Snap(loc.unit)
	loc.visits++
	loc.total += elapsed
	loc.min = min(loc.min, elapsed)
	loc.max = max(loc.max, elapsed)
}

// Path is the full path of the location, its identity in a session.
func (loc *Location) Path() string {
	return loc.path
}

// Name is the last segment of the path, leading separator included.
func (loc *Location) Name() string {
	return loc.name
}

// Depth is the number of open frames, root included, when the location was first pushed.
func (loc *Location) Depth() int {
	return loc.depth
}

// Unit is the unit of Total, Min, Max and Avg.
func (loc *Location) Unit() timer.Unit {
	return loc.unit
}

// Visits is the number of times the location was popped.
func (loc *Location) Visits() int64 {
	return loc.visits
}

// Total is the sum of the time spent between each push and its matching pop.
func (loc *Location) Total() int64 {
	return loc.total
}

// Min is the shortest visit. It is math.MaxInt64 until the first pop.
func (loc *Location) Min() int64 {
	return loc.min
}

// Max is the longest visit. It is math.MinInt64 until the first pop.
func (loc *Location) Max() int64 {
	return loc.max
}

// Avg is Total divided by Visits, truncated toward zero.
func (loc *Location) Avg() (int64, error) {
	if loc.visits == 0 {
		return 0, errors.Wrapf(profilererrors.ErrNoVisits, "%q", loc.path)
	}
	return loc.total / loc.visits, nil
}
