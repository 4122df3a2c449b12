// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/DataDog/go-runtimeprofiler/profilererrors"

	"github.com/pkg/errors"
)

// Unit is the precision at which elapsed times are stored and reported.
// The zero value is Nanoseconds.
type Unit uint8

const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

// Units lists every known Unit, finest first.
var Units = [...]Unit{Nanoseconds, Microseconds, Milliseconds, Seconds, Minutes, Hours, Days}

// UnitNamed returns the unit matching the given name. The plural and singular
// names as well as the abbreviation are accepted, case-insensitively.
func UnitNamed(name string) (Unit, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, unit := range Units {
		if name == unit.String() || name == unit.Singular() || name == unit.Abbreviation() {
			return unit, nil
		}
	}
	return 0, errors.Wrapf(profilererrors.ErrUnknownUnit, "%q", name)
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return u <= Days
}

// Duration returns the length of one u.
func (u Unit) Duration() time.Duration {
	switch u {
	case Nanoseconds:
		return time.Nanosecond
	case Microseconds:
		return time.Microsecond
	case Milliseconds:
		return time.Millisecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	case Days:
		return 24 * time.Hour
	default:
		return time.Nanosecond
	}
}

// Convert returns d expressed in u, truncated toward zero.
func (u Unit) Convert(d time.Duration) int64 {
	return int64(d / u.Duration())
}

// Abbreviation returns the short symbol of u, as used in report headers.
func (u Unit) Abbreviation() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Minutes:
		return "m"
	case Hours:
		return "h"
	case Days:
		return "d"
	default:
		return "?"
	}
}

// Singular returns the singular name of u, e.g. "millisecond".
func (u Unit) Singular() string {
	return strings.TrimSuffix(u.String(), "s")
}

func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "nanoseconds"
	case Microseconds:
		return "microseconds"
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}
