package ledger

import "fmt"

// columns is the fixed on-disk column order of a month file.
var columns = []string{
	"Date",
	"Is Holiday",
	"Start Time",
	"End Time",
	"Break Time",
	"Vacation",
	"Sick Leave",
	"Notes",
}

// DayRecord represents one calendar date's logged work data.
// All values are kept as text, exactly as stored on disk; absent values
// are empty strings.
type DayRecord struct {
	Date      string // ISO YYYY-MM-DD, unique within its month file
	IsHoliday bool   // set at creation, never mutated afterward
	StartTime string // HH:MM or empty
	EndTime   string // HH:MM or empty
	BreakTime string // HH:MM or empty
	Vacation  string // "0.5", "1.0" or empty
	SickLeave string // "0.5", "1.0" or empty
	Notes     string // holiday name at creation, free text otherwise
}

// Field identifies one of the mutable DayRecord columns. Keeping the set
// closed makes an invalid field name impossible at the call site.
type Field int

const (
	FieldStartTime Field = iota
	FieldEndTime
	FieldBreakTime
	FieldVacation
	FieldSickLeave
)

// String returns the on-disk column name of the field
func (f Field) String() string {
	switch f {
	case FieldStartTime:
		return "Start Time"
	case FieldEndTime:
		return "End Time"
	case FieldBreakTime:
		return "Break Time"
	case FieldVacation:
		return "Vacation"
	case FieldSickLeave:
		return "Sick Leave"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// set assigns value to exactly the named field
func (r *DayRecord) set(field Field, value string) {
	switch field {
	case FieldStartTime:
		r.StartTime = value
	case FieldEndTime:
		r.EndTime = value
	case FieldBreakTime:
		r.BreakTime = value
	case FieldVacation:
		r.Vacation = value
	case FieldSickLeave:
		r.SickLeave = value
	}
}

// row serializes the record in on-disk column order
func (r DayRecord) row() []string {
	isHoliday := "False"
	if r.IsHoliday {
		isHoliday = "True"
	}
	return []string{
		r.Date,
		isHoliday,
		r.StartTime,
		r.EndTime,
		r.BreakTime,
		r.Vacation,
		r.SickLeave,
		r.Notes,
	}
}

// parseRow builds a record from an on-disk row
func parseRow(row []string) (DayRecord, error) {
	if len(row) != len(columns) {
		return DayRecord{}, fmt.Errorf("row has %d columns, want %d", len(row), len(columns))
	}
	return DayRecord{
		Date:      row[0],
		IsHoliday: row[1] == "True",
		StartTime: row[2],
		EndTime:   row[3],
		BreakTime: row[4],
		Vacation:  row[5],
		SickLeave: row[6],
		Notes:     row[7],
	}, nil
}
