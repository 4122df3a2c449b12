// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package profiler is a hierarchical execution-time profiler. Code regions are
// delimited by Push and Pop calls; every region is identified by the full path
// of the regions enclosing it and accumulates its visit count as well as the
// total, min and max time spent in it.
//
//	p, _ := profiler.New("startup")
//	_ = p.Start()
//	_ = p.Push("load")
//	...
//	_, _ = p.Swap("parse")
//	...
//	_, _ = p.Pop()
//	_ = p.Stop()
//
// The time of a Location runs from its push to its matching pop, and therefore
// includes the time of the locations nested in it. The implicit root location
// spans the whole session.
//
// A Profiler must be driven by a single goroutine. Profile concurrent code with
// one Profiler per goroutine.
package profiler

import (
	"slices"
	"strings"

	"github.com/DataDog/go-runtimeprofiler/internal/log"
	"github.com/DataDog/go-runtimeprofiler/profilererrors"
	"github.com/DataDog/go-runtimeprofiler/timer"

	"github.com/pkg/errors"
)

// Profiler records the time spent in a tree of nested locations between Start and Stop.
type Profiler struct {
	label   string
	config  Config
	factory LocationFactory

	started bool

	// fullPath is the path of the innermost open frame, empty iff stack is empty
	fullPath string

	// stack holds the Location of every open frame, innermost last
	stack []*Location

	locations
}

// New creates a stopped Profiler labelled label.
func New(label string, options ...Option) (*Profiler, error) {
	config := newConfig(options...)
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Profiler{
		label:  label,
		config: config,
		factory: LocationFactory{
			Separator: config.Separator,
			Unit:      config.TimeUnit,
			Clock:     config.Clock,
		},
		stack:     make([]*Location, 0, min(config.MaxDepth, 16)),
		locations: newLocations(),
	}, nil
}

func (p *Profiler) logFields() log.Fields {
	return log.Fields{"profiler": p.label, "path": p.fullPath}
}

// Start discards the data of the previous session, if any, and opens the root frame.
func (p *Profiler) Start() error {
	if p.started {
		return errors.Wrapf(profilererrors.ErrAlreadyStarted, "%q", p.label)
	}

	p.locations.reset()
	clear(p.stack)
	p.stack = p.stack[:0]
	p.fullPath = ""
	p.started = true
	p.push(RootLocation)

	log.Debugf(p.logFields(), "session started")
	return nil
}

// Stop closes the root frame and ends the session. The profiler is stopped when
// Stop returns, even with an error: ErrEmptyStack means the root frame had already
// been popped, ErrUnbalancedStack that frames were still open under it. In both
// cases the recorded data should not be trusted.
func (p *Profiler) Stop() error {
	if !p.started {
		return errors.Wrapf(profilererrors.ErrNotStarted, "stopping %q", p.label)
	}

	p.started = false
	if _, err := p.pop(); err != nil {
		log.Warnf(p.logFields(), "session stopped with an empty stack")
		return errors.WithMessagef(err, "stopping %q", p.label)
	}

	if p.fullPath != "" {
		log.Warnf(p.logFields(), "session stopped with %d open frames", len(p.stack))
		return errors.Wrapf(profilererrors.ErrUnbalancedStack, "remainder %q", p.fullPath)
	}

	log.Debugf(p.logFields(), "session stopped")
	return nil
}

// Push opens a frame for the location name, nested in the current frame. Nothing
// is changed when an error is returned.
func (p *Profiler) Push(name string) error {
	if !p.started {
		return errors.Wrapf(profilererrors.ErrNotStarted, "pushing %q", name)
	}

	if err := p.checkName(name); err != nil {
		return err
	}

	if len(p.stack)+1 > p.config.MaxDepth {
		log.Warnf(p.logFields(), "max depth %d reached while pushing %q", p.config.MaxDepth, name)
		return errors.Wrapf(profilererrors.ErrDepthExceeded, "pushing %q over max depth %d", name, p.config.MaxDepth)
	}

	p.push(name)
	return nil
}

func (p *Profiler) checkName(name string) error {
	if strings.Contains(name, p.config.Separator) {
		return errors.Wrapf(profilererrors.ErrInvalidLocationName, "%q contains the path separator %q", name, p.config.Separator)
	}
	return nil
}

func (p *Profiler) push(name string) {
	var loc *Location
	if len(p.stack) == 0 {
		loc = p.locations.getOrCreate(name, 1, p.factory)
	} else {
		parent := p.stack[len(p.stack)-1]
		// The full path is only built on the first visit, later pushes reuse the child's.
		if loc = parent.children[name]; loc == nil {
			loc = p.locations.getOrCreate(parent.path+p.config.Separator+name, len(p.stack)+1, p.factory)
			parent.adopt(name, loc)
		}
	}

	p.fullPath = loc.path
	p.stack = append(p.stack, loc)
	loc.push()
}

// Pop closes the current frame and returns its Location.
func (p *Profiler) Pop() (*Location, error) {
	if !p.started {
		return nil, errors.Wrap(profilererrors.ErrNotStarted, "popping")
	}
	return p.pop()
}

func (p *Profiler) pop() (*Location, error) {
	if len(p.stack) == 0 {
		return nil, errors.WithStack(profilererrors.ErrEmptyStack)
	}

	last := len(p.stack) - 1
	loc := p.stack[last]
	loc.pop()

	p.stack[last] = nil
	p.stack = p.stack[:last]
	if last == 0 {
		p.fullPath = ""
	} else {
		p.fullPath = p.stack[last-1].path
	}

	return loc, nil
}

// Swap pops the current frame and pushes name in its place. It returns the
// popped Location. Nothing is changed when an error is returned.
func (p *Profiler) Swap(name string) (*Location, error) {
	if !p.started {
		return nil, errors.Wrapf(profilererrors.ErrNotStarted, "swapping to %q", name)
	}

	// Popping then pushing never changes the depth, so the name is the only
	// thing left that could make the push fail.
	if err := p.checkName(name); err != nil {
		return nil, err
	}

	loc, err := p.pop()
	if err != nil {
		return nil, err
	}

	p.push(name)
	return loc, nil
}

// SwapIf behaves like Swap, unless the root frame is the only one open: name is
// then pushed without popping anything, and swapped is false.
func (p *Profiler) SwapIf(name string) (popped *Location, swapped bool, err error) {
	if !p.started {
		return nil, false, errors.Wrapf(profilererrors.ErrNotStarted, "swapping to %q", name)
	}

	if len(p.stack) == 1 {
		return nil, false, p.Push(name)
	}

	popped, err = p.Swap(name)
	return popped, err == nil, err
}

// TotalRuntime returns the time spent in the root frame of the last session.
func (p *Profiler) TotalRuntime() (int64, error) {
	if p.started {
		return 0, errors.Wrapf(profilererrors.ErrStillRunning, "%q", p.label)
	}

	root, ok := p.locations.lookup[RootLocation]
	if !ok {
		return 0, errors.Wrapf(profilererrors.ErrNotStarted, "%q has no recorded session", p.label)
	}
	return root.Total(), nil
}

// Label returns the label given to New.
func (p *Profiler) Label() string {
	return p.label
}

// TimingPrecision returns the unit of every duration recorded by the profiler.
func (p *Profiler) TimingPrecision() timer.Unit {
	return p.config.TimeUnit
}

// Separator returns the string joining location names into full paths.
func (p *Profiler) Separator() string {
	return p.config.Separator
}

// MaxDepth returns the maximum number of open frames, root included.
func (p *Profiler) MaxDepth() int {
	return p.config.MaxDepth
}

// Started reports whether a session is running.
func (p *Profiler) Started() bool {
	return p.started
}

// Depth returns the number of open frames, root included.
func (p *Profiler) Depth() int {
	return len(p.stack)
}

// FullPath returns the path of the current frame, or "" when no frame is open.
func (p *Profiler) FullPath() string {
	return p.fullPath
}

// Current returns the Location of the current frame, if any.
func (p *Profiler) Current() (*Location, bool) {
	if len(p.stack) == 0 {
		return nil, false
	}
	return p.stack[len(p.stack)-1], true
}

// Lookup returns the Location recorded for the full path, if any.
func (p *Profiler) Lookup(path string) (*Location, bool) {
	loc, ok := p.locations.lookup[path]
	return loc, ok
}

// Entries returns the locations of the session in the order they were first
// pushed. The returned slice is a copy, but the Locations keep being updated
// while the session is running.
func (p *Profiler) Entries() []*Location {
	return slices.Clone(p.locations.storage)
}

// Timed pushes name, calls timedFunc and pops name once it returns. A panic of
// timedFunc is recovered and returned as a *PanicError, leaving the stack
// balanced. The popped Location is returned along with the error of timedFunc,
// if any. When timedFunc leaves the stack unbalanced, nothing is popped and
// ErrUnbalancedStack is returned.
func (p *Profiler) Timed(name string, timedFunc func(p *Profiler) error) (*Location, error) {
	if err := p.Push(name); err != nil {
		return nil, err
	}
	pushed := p.stack[len(p.stack)-1]
	depth := len(p.stack)

	err := tryCall(name, func() error { return timedFunc(p) })

	if len(p.stack) != depth || p.stack[depth-1] != pushed {
		log.Errorf(p.logFields(), "timed function %q left the stack unbalanced", name)
		unbalanced := errors.Wrapf(profilererrors.ErrUnbalancedStack, "timing %q, expected %q on top, got %q", name, pushed.path, p.fullPath)
		if err != nil {
			return nil, errors.WithMessage(unbalanced, err.Error())
		}
		return nil, unbalanced
	}

	return p.pop()
}
