package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/username/arbeitszeit/internal/holiday"
	"github.com/username/arbeitszeit/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	lockSuffix = ".lock"
	tmpSuffix  = ".tmp"
)

// Store is the monthly record store: one CSV file per calendar month,
// one row per calendar day. Every operation is a full open-transform-close
// cycle against that file; there is no in-memory state between calls.
type Store struct {
	root     string
	provider holiday.Provider
	logger   *zap.Logger
}

// NewStore creates a new Store rooted at the given data directory
func NewStore(root string, provider holiday.Provider, logger *zap.Logger) *Store {
	return &Store{
		root:     root,
		provider: provider,
		logger:   logger,
	}
}

// FilePath returns the canonical month file path for the given date:
// <root>/schedule_<YYYY>-<MM>.csv
func (s *Store) FilePath(date time.Time) string {
	return filepath.Join(s.root, fmt.Sprintf("schedule_%d-%02d.csv", date.Year(), int(date.Month())))
}

// Create builds the month file for the given date's month: one row per
// calendar day, holidays annotated from the provider. It fails with
// ErrMonthExists if the file is already present.
func (s *Store) Create(date time.Time) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	path := s.FilePath(date)

	lock := flock.New(path + lockSuffix)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock month file: %w", err)
	}
	defer lock.Unlock()

	return s.createLocked(date, path)
}

// createLocked does the Create work; the caller holds the file lock.
func (s *Store) createLocked(date time.Time, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrMonthExists, path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat month file: %w", err)
	}

	// One provider query serves all 12 months of the year.
	holidays, err := s.provider.Year(date.Year())
	if err != nil {
		return fmt.Errorf("failed to query holidays for %d: %w", date.Year(), err)
	}

	numDays := dateutil.DaysInMonth(date.Year(), date.Month())
	records := make([]DayRecord, 0, numDays)
	for day := 1; day <= numDays; day++ {
		iso := fmt.Sprintf("%d-%02d-%02d", date.Year(), int(date.Month()), day)
		records = append(records, DayRecord{
			Date:      iso,
			IsHoliday: holidays.Contains(iso),
			Notes:     holidays.Name(iso),
		})
	}

	if err := s.writeAll(path, records); err != nil {
		return err
	}

	s.logger.Info("Month file created",
		zap.String("path", path),
		zap.Int("days", numDays))

	return nil
}

// LogStart records the start time (HH:MM, 24-hour) for the given date
func (s *Store) LogStart(date time.Time, value string) error {
	normalized, err := NormalizeClock(value)
	if err != nil {
		return err
	}
	return s.update(date, FieldStartTime, normalized)
}

// LogEnd records the end time (HH:MM, 24-hour) for the given date
func (s *Store) LogEnd(date time.Time, value string) error {
	normalized, err := NormalizeClock(value)
	if err != nil {
		return err
	}
	return s.update(date, FieldEndTime, normalized)
}

// LogBreak records the break duration for the given date. The value is
// either a minute count ("90") or a clock literal ("01:30").
func (s *Store) LogBreak(date time.Time, value string) error {
	normalized, err := NormalizeBreak(value)
	if err != nil {
		return err
	}
	return s.update(date, FieldBreakTime, normalized)
}

// LogVacation records a half (0.5) or full (1.0) vacation day
func (s *Store) LogVacation(date time.Time, value float64) error {
	formatted, err := FormatFraction(value)
	if err != nil {
		return err
	}
	return s.update(date, FieldVacation, formatted)
}

// LogSick records a half (0.5) or full (1.0) sick-leave day
func (s *Store) LogSick(date time.Time, value float64) error {
	formatted, err := FormatFraction(value)
	if err != nil {
		return err
	}
	return s.update(date, FieldSickLeave, formatted)
}

// update sets exactly one field of exactly one day's record and rewrites
// the whole month file. If the month file does not exist yet it is created
// first: the first log of a month transparently initializes the full,
// holiday-annotated file. The whole read-modify-write happens under an
// exclusive advisory lock.
func (s *Store) update(date time.Time, field Field, value string) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	path := s.FilePath(date)

	lock := flock.New(path + lockSuffix)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock month file: %w", err)
	}
	defer lock.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.createLocked(date, path); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat month file: %w", err)
	}

	records, err := s.readAll(path)
	if err != nil {
		return err
	}

	iso := dateutil.FormatISO(date)
	idx := -1
	for i := range records {
		if records[i].Date == iso {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s in %s", ErrRecordNotFound, iso, path)
	}

	records[idx].set(field, value)

	if err := s.writeAll(path, records); err != nil {
		return err
	}

	s.logger.Info("Field updated",
		zap.String("date", iso),
		zap.String("field", field.String()),
		zap.String("value", value))

	return nil
}

// Window returns the contiguous run of day records ending at the anchor
// date (inclusive), at most size entries long, clipped at the start of the
// month. A negative size returns the whole month. The month file is never
// created here; a missing file yields ErrMonthNotFound.
func (s *Store) Window(anchor time.Time, size int) ([]DayRecord, error) {
	records, err := s.readAll(s.FilePath(anchor))
	if err != nil {
		return nil, err
	}

	if size < 0 {
		return records, nil
	}

	end := anchor.Day()
	if end > len(records) {
		end = len(records)
	}
	start := end - size
	if start < 0 {
		start = 0
	}

	return records[start:end], nil
}

// readAll loads every day record from the month file at path
func (s *Store) readAll(path string) ([]DayRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMonthNotFound, path)
		}
		return nil, fmt.Errorf("failed to open month file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse month file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("month file %s is empty", path)
	}

	records := make([]DayRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to parse month file %s: %w", path, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// writeAll rewrites the month file at path from the given records. The
// data goes to a temp file first and replaces the target atomically, so a
// mid-write crash never leaves a half-written file behind.
func (s *Store) writeAll(path string, records []DayRecord) error {
	tmpPath := path + tmpSuffix

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		if err := w.Write(record.row()); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record %s: %w", record.Date, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush month file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace month file: %w", err)
	}

	return nil
}
