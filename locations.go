// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package profiler

// locations store every Location of a session, in the order they were first pushed
type locations struct {
	lookup  map[string]*Location
	storage []*Location
}

func newLocations() locations {
	return locations{
		lookup: make(map[string]*Location),
	}
}

func (locs *locations) getOrCreate(path string, depth int, factory LocationFactory) *Location {
	if loc, ok := locs.lookup[path]; ok {
		return loc
	}
	loc := factory.Create(path, depth)
	locs.lookup[path] = loc
	locs.storage = append(locs.storage, loc)
	return loc
}

func (locs *locations) reset() {
	clear(locs.lookup)
	clear(locs.storage)
	locs.storage = locs.storage[:0]
}
