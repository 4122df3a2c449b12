// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package timer

import (
	"time"
)

// Stopwatch measures the time elapsed between consecutive snapshots.
// It is not safe for concurrent use.
type Stopwatch struct {
	clock Clock

	// last is the clock reading of the previous snapshot, or of the last reset
	last time.Duration

	// start is the clock reading of the last reset
	start time.Duration
}

// NewStopwatch returns a Stopwatch reading the given clock, already reset.
func NewStopwatch(clock Clock) *Stopwatch {
	return (&Stopwatch{clock: clock}).Reset()
}

// Reset sets both the snapshot anchor and the lifetime start to now.
func (sw *Stopwatch) Reset() *Stopwatch {
	now := sw.clock.Now()
	sw.last = now
	sw.start = now
	return sw
}

// Snap returns the time elapsed since the previous snapshot (or reset),
// expressed in unit and truncated toward zero, then moves the anchor to now.
// The clock is read exactly once.
func (sw *Stopwatch) Snap(unit Unit) int64 {
	now := sw.clock.Now()
	elapsed := now - sw.last
	sw.last = now
	return unit.Convert(elapsed)
}

// Lifetime returns the time elapsed since the last reset, expressed in unit.
// It does not move the snapshot anchor.
func (sw *Stopwatch) Lifetime(unit Unit) int64 {
	return unit.Convert(sw.clock.Now() - sw.start)
}
