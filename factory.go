// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package profiler

import (
	"strings"

	"github.com/DataDog/go-runtimeprofiler/timer"
)

// LocationFactory creates the Location of a full path.
type LocationFactory struct {
	Separator string
	Unit      timer.Unit
	Clock     timer.Clock
}

// Create returns a Location for path with no visit recorded yet.
func (factory LocationFactory) Create(path string, depth int) *Location {
	return newLocation(path, ShortName(path, factory.Separator), depth, factory.Unit, factory.Clock)
}

// ShortName returns the part of path starting at its last separator. The separator
// is kept so that locations sharing a name under different parents still read as
// sub-locations. A path without separator is returned as is.
func ShortName(path, separator string) string {
	i := strings.LastIndex(path, separator)
	if i == -1 {
		return path
	}
	return path[i:]
}
