package ledger

import "errors"

// Domain errors surfaced by the store. Callers match them with errors.Is.
var (
	// ErrMonthExists is returned when Create targets a month file that
	// already exists. Creation is deliberately not idempotent so logged
	// data is never clobbered.
	ErrMonthExists = errors.New("month file already exists")

	// ErrMonthNotFound is returned when a read targets a month file that
	// does not exist. Reads never auto-create.
	ErrMonthNotFound = errors.New("month file not found")

	// ErrRecordNotFound is returned when an update targets a date that is
	// missing from an otherwise present month file. Month files always
	// carry one row per calendar day, so this indicates a hand-edited file.
	ErrRecordNotFound = errors.New("no record for date")

	// ErrInvalidTimeFormat is returned for clock or break values that do
	// not parse as HH:MM (or, for breaks, as a minute count).
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrNegativeDuration is returned for break values below zero minutes.
	ErrNegativeDuration = errors.New("break time cannot be negative")

	// ErrInvalidFraction is returned for vacation or sick-leave values
	// other than 0.5 (half day) and 1.0 (full day).
	ErrInvalidFraction = errors.New("value must be 0.5 (half day) or 1.0 (full day)")
)
