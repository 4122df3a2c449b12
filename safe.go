// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package profiler

import (
	"fmt"

	"github.com/pkg/errors"
)

// PanicError wraps the value recovered from a panic of a function timed with
// [Profiler.Timed].
type PanicError struct {
	// Location is the name the panicking function was timed under.
	Location string
	// Err is the recovered panic value.
	Err error
}

// Unwrap the error and return it.
// Required by errors.Is and errors.As functions.
func (e *PanicError) Unwrap() error {
	return e.Err
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic while timing %q: %v", e.Location, e.Err)
}

// tryCall calls f and recovers from any panic occurring while it executes,
// returning it as a *PanicError.
func tryCall(name string, f func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch actual := r.(type) {
		case error:
			err = errors.WithStack(actual)
		case string:
			err = errors.New(actual)
		default:
			err = errors.Errorf("%v", r)
		}

		err = &PanicError{Location: name, Err: err}
	}()
	return f()
}
