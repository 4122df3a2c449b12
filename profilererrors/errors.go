// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package profilererrors holds the errors returned by the profiler and its
// collaborators. Callers are expected to match them with errors.Is since most
// of them are returned wrapped with additional context.
package profilererrors

import (
	"errors"
	"fmt"
)

// Misuse of the read accessors or the configuration layer
var (
	ErrNoVisits      = errors.New("location has no recorded visit")
	ErrUnknownUnit   = errors.New("unknown time unit")
	ErrInvalidConfig = errors.New("invalid profiler configuration")
)

// ProfilerError is a violation of the profiler state machine. None of them
// can be retried: the session has to be fixed by the caller, or discarded.
type ProfilerError int

// Errors the profiler state machine can return.
const (
	ErrNotStarted ProfilerError = iota + 1
	ErrAlreadyStarted
	ErrInvalidLocationName
	ErrDepthExceeded
	ErrEmptyStack
	ErrUnbalancedStack
	ErrStillRunning
)

// Error returns the string representation of the ProfilerError.
func (e ProfilerError) Error() string {
	switch e {
	case ErrNotStarted:
		return "profiler not started"
	case ErrAlreadyStarted:
		return "profiler already started"
	case ErrInvalidLocationName:
		return "invalid location name"
	case ErrDepthExceeded:
		return "max depth exceeded"
	case ErrEmptyStack:
		return "profiler stack already empty, mismatched push/pop?"
	case ErrUnbalancedStack:
		return "profiler stopped before path was fully popped, mismatched push/pop?"
	case ErrStillRunning:
		return "profiler still running"
	default:
		return fmt.Sprintf("unknown profiler error %d", e)
	}
}
