// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package timer

import (
	"time"
)

// Clock is a monotonic time source. Now returns the time elapsed since an
// arbitrary origin that stays fixed for the lifetime of the Clock.
type Clock interface {
	Now() time.Duration
}

// runtimeClock reads the monotonic clock of the Go runtime. lastRequest caches
// the previous instant so that new readings are derived from it with
// time.Since, which avoids the REALTIME part of time.Now().
type runtimeClock struct {
	origin      time.Time
	lastRequest time.Time
}

// NewClock returns the default Clock, backed by the monotonic reading the Go
// runtime attaches to time.Now().
func NewClock() Clock {
	now := time.Now()
	return &runtimeClock{
		origin:      now,
		lastRequest: now,
	}
}

func (ct *runtimeClock) Now() time.Duration {
	// If the diff is greater than ~2^32 then the monotonic clock has wrapped around
	// and time.Since will do a call to time.Now() for us.
	ct.lastRequest = ct.lastRequest.Add(time.Since(ct.lastRequest))
	return ct.lastRequest.Sub(ct.origin)
}

// ManualClock is a Clock that only moves when told to. It is meant for tests
// that need exact durations.
type ManualClock struct {
	now time.Duration
}

var _ Clock = (*ManualClock)(nil)

// Now returns the current reading of the clock.
func (ct *ManualClock) Now() time.Duration {
	return ct.now
}

// Advance moves the clock forward by d.
func (ct *ManualClock) Advance(d time.Duration) {
	ct.now += d
}
