// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package timer_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/DataDog/go-runtimeprofiler/profilererrors"
	"github.com/DataDog/go-runtimeprofiler/timer"

	"github.com/stretchr/testify/require"
)

func TestStopwatch(t *testing.T) {
	t.Run("snap-measures-since-reset", func(t *testing.T) {
		var clock timer.ManualClock
		sw := timer.NewStopwatch(&clock)
		clock.Advance(1500 * time.Nanosecond)
		require.EqualValues(t, 1500, sw.Snap(timer.Nanoseconds))
	})

	t.Run("snap-rearms", func(t *testing.T) {
		var clock timer.ManualClock
		sw := timer.NewStopwatch(&clock)
		clock.Advance(time.Second)
		require.EqualValues(t, 1, sw.Snap(timer.Seconds))
		clock.Advance(2 * time.Second)
		require.EqualValues(t, 2, sw.Snap(timer.Seconds))
		require.Zero(t, sw.Snap(timer.Seconds))
	})

	t.Run("snap-truncates", func(t *testing.T) {
		var clock timer.ManualClock
		sw := timer.NewStopwatch(&clock)
		clock.Advance(1999 * time.Microsecond)
		require.EqualValues(t, 1, sw.Snap(timer.Milliseconds))
	})

	t.Run("lifetime-survives-snaps", func(t *testing.T) {
		var clock timer.ManualClock
		sw := timer.NewStopwatch(&clock)
		clock.Advance(time.Minute)
		sw.Snap(timer.Nanoseconds)
		clock.Advance(time.Minute)
		sw.Snap(timer.Nanoseconds)
		require.EqualValues(t, 2, sw.Lifetime(timer.Minutes))
	})

	t.Run("reset-chains", func(t *testing.T) {
		var clock timer.ManualClock
		sw := timer.NewStopwatch(&clock)
		clock.Advance(time.Hour)
		require.Zero(t, sw.Reset().Snap(timer.Nanoseconds))
		require.Zero(t, sw.Lifetime(timer.Nanoseconds))
	})

	t.Run("real-clock", func(t *testing.T) {
		sw := timer.NewStopwatch(timer.NewClock())
		time.Sleep(time.Millisecond)
		require.GreaterOrEqual(t, sw.Snap(timer.Microseconds), int64(1000))
	})
}

func TestUnit(t *testing.T) {
	t.Run("convert", func(t *testing.T) {
		d := 2*24*time.Hour + 3*time.Hour
		require.EqualValues(t, d.Nanoseconds(), timer.Nanoseconds.Convert(d))
		require.EqualValues(t, d.Microseconds(), timer.Microseconds.Convert(d))
		require.EqualValues(t, d.Milliseconds(), timer.Milliseconds.Convert(d))
		require.EqualValues(t, 183600, timer.Seconds.Convert(d))
		require.EqualValues(t, 3060, timer.Minutes.Convert(d))
		require.EqualValues(t, 51, timer.Hours.Convert(d))
		require.EqualValues(t, 2, timer.Days.Convert(d))
	})

	t.Run("names", func(t *testing.T) {
		require.Equal(t, "ms", timer.Milliseconds.Abbreviation())
		require.Equal(t, "millisecond", timer.Milliseconds.Singular())
		require.Equal(t, "milliseconds", timer.Milliseconds.String())
		require.Equal(t, "us", timer.Microseconds.Abbreviation())
		require.Equal(t, "d", timer.Days.Abbreviation())
	})

	t.Run("named", func(t *testing.T) {
		for _, unit := range timer.Units {
			for _, name := range []string{unit.String(), unit.Singular(), unit.Abbreviation()} {
				got, err := timer.UnitNamed(name)
				require.NoError(t, err, name)
				require.Equal(t, unit, got, name)
			}
		}

		got, err := timer.UnitNamed(" Seconds ")
		require.NoError(t, err)
		require.Equal(t, timer.Seconds, got)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := timer.UnitNamed("fortnight")
		require.ErrorIs(t, err, profilererrors.ErrUnknownUnit)
		require.False(t, timer.Unit(42).Valid())
		require.Equal(t, "Unit(42)", timer.Unit(42).String())
	})
}

func BenchmarkStopwatch(b *testing.B) {
	b.Run("stopwatch.Snap()", func(b *testing.B) {
		sw := timer.NewStopwatch(timer.NewClock())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			runtime.KeepAlive(sw.Snap(timer.Nanoseconds))
		}
	})
}
