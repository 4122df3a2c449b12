// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package profiler

import "github.com/DataDog/go-runtimeprofiler/internal/log"

// SetLogLevel sets the level of the messages the profilers of the process emit,
// one of "trace", "debug", "info", "warn", "error" or "off". Unknown names turn
// logging off. The initial level is read from the PROFILER_LOG_LEVEL environment
// variable, and defaults to "off".
func SetLogLevel(name string) {
	log.SetLevel(log.LevelNamed(name))
}
