// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// ConsoleMode selects the columns printed by Print.
type ConsoleMode int

const (
	// ConsoleFull prints every aggregate along with the share of the total runtime.
	ConsoleFull ConsoleMode = iota
	// ConsoleAvgOnly prints visits, avg, min and max. It does not need the session
	// to be stopped.
	ConsoleAvgOnly
)

// AllDepths disables the depth filter of Print.
const AllDepths = math.MaxInt

// Print writes the label of src followed by a table of its locations. Locations
// created deeper than maxPathDepth are skipped.
func Print(w io.Writer, src Source, mode ConsoleMode, maxPathDepth int) error {
	var (
		table *tablewriter.Table
		lines [][]string
	)

	switch mode {
	case ConsoleFull:
		rows, err := rows(src)
		if err != nil {
			return err
		}
		table = newConsoleTable(w, "Location", "Visits", "Avg", "Min", "Max", "Runtime", "% of Runtime")
		for _, r := range rows {
			if r.Depth > maxPathDepth {
				continue
			}
			lines = append(lines, []string{r.Location, strconv.FormatInt(r.Visits, 10), r.Avg, r.Min, r.Max, r.Total, r.Percent + "%"})
		}

	case ConsoleAvgOnly:
		table = newConsoleTable(w, "Location", "Visits", "Avg", "Min", "Max")
		for _, loc := range src.Entries() {
			if loc.Depth() > maxPathDepth {
				continue
			}
			r := newRow(loc, 0)
			lines = append(lines, []string{r.Location, strconv.FormatInt(r.Visits, 10), r.Avg, r.Min, r.Max})
		}

	default:
		return errors.Errorf("unknown console mode %d", mode)
	}

	fmt.Fprintf(w, "%s (%s)\n", src.Label(), src.TimingPrecision().Abbreviation())
	table.AppendBulk(lines)
	table.Render()
	return nil
}

func newConsoleTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_RIGHT
	}
	alignment[0] = tablewriter.ALIGN_LEFT
	table.SetColumnAlignment(alignment)
	return table
}
