// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

//go:build linux

package timer

import (
	"time"

	"golang.org/x/sys/unix"
)

// rawClock reads CLOCK_MONOTONIC_RAW, which unlike CLOCK_MONOTONIC is not
// slewed by NTP adjustments.
type rawClock struct{}

// NewRawClock returns a Clock reading CLOCK_MONOTONIC_RAW. If the kernel
// refuses the clock id, the default Clock is returned instead.
func NewRawClock() Clock {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		return NewClock()
	}
	return rawClock{}
}

func (rawClock) Now() time.Duration {
	var ts unix.Timespec
	// Already probed in NewRawClock
	_ = unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts)
	return time.Duration(ts.Nano())
}
