// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package report renders the result of a profiling session as CSV, HTML,
// Markdown, JSON or a console table.
package report

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	profiler "github.com/DataDog/go-runtimeprofiler"
	"github.com/DataDog/go-runtimeprofiler/timer"

	"github.com/pkg/errors"
)

// Source is the read-only view of a profiling session the reports are built from.
type Source interface {
	Label() string
	TimingPrecision() timer.Unit
	Entries() []*profiler.Location
	TotalRuntime() (int64, error)
}

var _ Source = (*profiler.Profiler)(nil)

// Format renders a Source into a file format.
type Format interface {
	// Extension is the file extension of the format, leading dot included.
	Extension() string
	Write(w io.Writer, src Source) error
}

// Formats able to print the time at which the report was written.
type datedFormat interface {
	writeAt(w io.Writer, src Source, at time.Time) error
}

// Built-in formats.
var (
	CSV      Format = csvFormat{}
	HTML     Format = htmlFormat{}
	Markdown Format = markdownFormat{}
	JSON     Format = jsonFormat{}
)

// TimestampLayout is the layout of the timestamp suffixed to report file names.
const TimestampLayout = "2006-01-02-15-04-05.000"

const noValue = "-"

var now = time.Now

// PrepareDir creates dir if it does not exist yet. It fails if dir exists but is
// not a directory.
func PrepareDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "preparing report directory")
	}
	return nil
}

// FileName returns the name of the report of label written at the given time.
func FileName(label string, at time.Time, extension string) string {
	return label + "_" + at.Format(TimestampLayout) + extension
}

// WriteToDir writes the report of src in format to a new file of the existing
// directory dir, and returns its path. The file name is the label of src suffixed
// with the current time, so that successive reports do not collide.
func WriteToDir(format Format, src Source, dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", errors.Wrap(err, "report directory")
	}
	if !info.IsDir() {
		return "", errors.Errorf("report directory %s is not a directory", dir)
	}

	at := now()
	var buf bytes.Buffer
	if dated, ok := format.(datedFormat); ok {
		err = dated.writeAt(&buf, src, at)
	} else {
		err = format.Write(&buf, src)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(src.Label(), at, format.Extension()))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s report", format.Extension())
	}
	return path, nil
}

// row is the rendering of a Location shared by the tabular formats
type row struct {
	Location string
	Visits   int64
	Total    string
	Avg      string
	Min      string
	Max      string
	Percent  string
	Path     string
	Depth    int
}

func newRow(loc *profiler.Location, runtime int64) row {
	r := row{
		Location: loc.Name(),
		Visits:   loc.Visits(),
		Total:    strconv.FormatInt(loc.Total(), 10),
		Avg:      noValue,
		Min:      noValue,
		Max:      noValue,
		Percent:  percentOf(loc.Total(), runtime),
		Path:     loc.Path(),
		Depth:    loc.Depth(),
	}
	if avg, err := loc.Avg(); err == nil {
		r.Avg = strconv.FormatInt(avg, 10)
		r.Min = strconv.FormatInt(loc.Min(), 10)
		r.Max = strconv.FormatInt(loc.Max(), 10)
	}
	return r
}

// rows fails while the session of src is running, since the root location is
// still open and the percentages would be meaningless.
func rows(src Source) ([]row, error) {
	runtime, err := src.TotalRuntime()
	if err != nil {
		return nil, err
	}

	entries := src.Entries()
	rows := make([]row, len(entries))
	for i, loc := range entries {
		rows[i] = newRow(loc, runtime)
	}
	return rows, nil
}

// percentOf returns total as a percentage of runtime, with at most 3 decimals.
func percentOf(total, runtime int64) string {
	if runtime == 0 {
		return "0"
	}
	percent := float64(total) / float64(runtime) * 100
	return strconv.FormatFloat(math.Round(percent*1000)/1000, 'f', -1, 64)
}

// Snapshot builds the same Stats as [profiler.Profiler.Stats] out of any Source.
// It fails while the session of src is running.
func Snapshot(src Source) (profiler.Stats, error) {
	runtime, err := src.TotalRuntime()
	if err != nil {
		return profiler.Stats{}, err
	}

	entries := src.Entries()
	stats := profiler.Stats{
		Label:        src.Label(),
		TimeUnit:     src.TimingPrecision().String(),
		TotalRuntime: runtime,
		Locations:    make([]profiler.LocationStats, len(entries)),
	}
	for i, loc := range entries {
		stats.Locations[i] = loc.Snapshot()
	}
	return stats, nil
}
