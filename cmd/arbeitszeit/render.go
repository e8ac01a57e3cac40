package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/username/arbeitszeit/internal/ledger"
)

var displayHeaders = []string{
	"Date",
	"Is Holiday",
	"Start Time",
	"End Time",
	"Break Time",
	"Vacation",
	"Sick Leave",
	"Notes",
}

// renderTable writes the records as a fixed-width table. Absent values are
// shown as the placeholder; the substitution is display-only and never
// written back to disk.
func renderTable(w io.Writer, records []ledger.DayRecord, placeholder string) {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, displayRow(record, placeholder))
	}

	widths := make([]int, len(displayHeaders))
	for i, h := range displayHeaders {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	printRow(w, displayHeaders, widths)
	for _, row := range rows {
		printRow(w, row, widths)
	}
}

func displayRow(r ledger.DayRecord, placeholder string) []string {
	orElse := func(value string) string {
		if value == "" {
			return placeholder
		}
		return value
	}

	isHoliday := "False"
	if r.IsHoliday {
		isHoliday = "True"
	}

	return []string{
		r.Date,
		isHoliday,
		orElse(r.StartTime),
		orElse(r.EndTime),
		orElse(r.BreakTime),
		orElse(r.Vacation),
		orElse(r.SickLeave),
		orElse(r.Notes),
	}
}

func printRow(w io.Writer, row []string, widths []int) {
	for i, cell := range row {
		if i == len(row)-1 {
			fmt.Fprint(w, cell)
			break
		}
		pad := widths[i] - utf8.RuneCountInString(cell)
		fmt.Fprintf(w, "%s%*s  ", cell, pad, "")
	}
	fmt.Fprintln(w)
}
