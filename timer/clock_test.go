// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package timer

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClock(t *testing.T) {
	t.Run("runtime-is-monotonic", func(t *testing.T) {
		clock := NewClock()
		prev := clock.Now()
		for i := 0; i < 1000; i++ {
			now := clock.Now()
			require.GreaterOrEqual(t, now, prev)
			prev = now
		}
	})

	t.Run("runtime-tracks-elapsed", func(t *testing.T) {
		clock := NewClock()
		first := clock.Now()
		time.Sleep(time.Millisecond)
		require.GreaterOrEqual(t, clock.Now()-first, time.Millisecond)
	})

	t.Run("raw-is-monotonic", func(t *testing.T) {
		clock := NewRawClock()
		first := clock.Now()
		time.Sleep(time.Millisecond)
		require.GreaterOrEqual(t, clock.Now()-first, time.Millisecond)
	})

	t.Run("manual-only-moves-on-advance", func(t *testing.T) {
		var clock ManualClock
		require.Zero(t, clock.Now())
		clock.Advance(3 * time.Second)
		require.Equal(t, 3*time.Second, clock.Now())
		require.Equal(t, 3*time.Second, clock.Now())
	})
}

// Benchmark time.Now() vs the clocks
func BenchmarkNow(b *testing.B) {
	b.Run("time.Now()", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			runtime.KeepAlive(time.Now())
		}
	})

	ct := NewClock()
	b.Run("clock.Now()", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			runtime.KeepAlive(ct.Now())
		}
	})

	raw := NewRawClock()
	b.Run("raw.Now()", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			runtime.KeepAlive(raw.Now())
		}
	})
}
