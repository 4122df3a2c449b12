// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/DataDog/go-runtimeprofiler/timer"
)

type csvFormat struct{}

func (csvFormat) Extension() string {
	return ".csv"
}

// CSVHeader returns the header row of the CSV report for the given unit.
func CSVHeader(unit timer.Unit) []string {
	abbr := unit.Abbreviation()
	return []string{
		"Location",
		"Visits",
		fmt.Sprintf("Total (%s)", abbr),
		fmt.Sprintf("Avg (%s)", abbr),
		fmt.Sprintf("Min (%s)", abbr),
		fmt.Sprintf("Max (%s)", abbr),
		"Path",
	}
}

func (csvFormat) Write(w io.Writer, src Source) error {
	rows, err := rows(src)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader(src.TimingPrecision())); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.Location, strconv.FormatInt(r.Visits, 10), r.Total, r.Avg, r.Min, r.Max, r.Path}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
