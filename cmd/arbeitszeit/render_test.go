package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/username/arbeitszeit/internal/ledger"
)

func TestRenderTable(t *testing.T) {
	records := []ledger.DayRecord{
		{Date: "2025-06-09", IsHoliday: true, Notes: "Pfingstmontag"},
		{Date: "2025-06-10", StartTime: "09:00", EndTime: "17:30", BreakTime: "00:45"},
		{Date: "2025-06-11", Vacation: "0.5"},
	}

	var buf bytes.Buffer
	renderTable(&buf, records, "-")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4 (header + 3 records)", len(lines))
	}

	if !strings.HasPrefix(lines[0], "Date") || !strings.Contains(lines[0], "Sick Leave") {
		t.Errorf("header = %q, want column names", lines[0])
	}

	holidayRow := lines[1]
	if !strings.Contains(holidayRow, "True") || !strings.Contains(holidayRow, "Pfingstmontag") {
		t.Errorf("holiday row = %q, want True and holiday name", holidayRow)
	}

	workRow := lines[2]
	for _, want := range []string{"2025-06-10", "09:00", "17:30", "00:45"} {
		if !strings.Contains(workRow, want) {
			t.Errorf("work row = %q, missing %q", workRow, want)
		}
	}

	// Absent values are rendered as the placeholder
	vacationRow := lines[3]
	if !strings.Contains(vacationRow, "0.5") {
		t.Errorf("vacation row = %q, missing fraction", vacationRow)
	}
	if strings.Count(vacationRow, "-") < 4 {
		t.Errorf("vacation row = %q, want placeholder for absent values", vacationRow)
	}
}

func TestRenderTable_CustomPlaceholder(t *testing.T) {
	records := []ledger.DayRecord{
		{Date: "2025-06-10"},
	}

	var buf bytes.Buffer
	renderTable(&buf, records, "n/a")

	if got := strings.Count(buf.String(), "n/a"); got != 6 {
		t.Errorf("placeholder count = %d, want 6 (start, end, break, vacation, sick, notes)", got)
	}
}

func TestDisplayRow_KeepsValues(t *testing.T) {
	record := ledger.DayRecord{
		Date:      "2025-06-10",
		StartTime: "08:00",
		EndTime:   "16:00",
		BreakTime: "00:30",
		Vacation:  "1.0",
		SickLeave: "0.5",
		Notes:     "on site",
	}

	row := displayRow(record, "-")

	want := []string{"2025-06-10", "False", "08:00", "16:00", "00:30", "1.0", "0.5", "on site"}
	for i, cell := range row {
		if cell != want[i] {
			t.Errorf("row[%d] = %q, want %q", i, cell, want[i])
		}
	}
}
