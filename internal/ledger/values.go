package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeClock validates a 24-hour clock value and normalizes it to
// zero-padded HH:MM ("9:05" becomes "09:05").
func NormalizeClock(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q (expected HH:MM, e.g. 09:00)", ErrInvalidTimeFormat, value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q (expected HH:MM, e.g. 09:00)", ErrInvalidTimeFormat, value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q (expected HH:MM, e.g. 09:00)", ErrInvalidTimeFormat, value)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %q (expected HH:MM, e.g. 09:00)", ErrInvalidTimeFormat, value)
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// NormalizeBreak accepts either a non-negative minute count ("90") or a
// clock literal ("01:30") and normalizes both to HH:MM.
func NormalizeBreak(value string) (string, error) {
	if strings.Contains(value, ":") {
		return NormalizeClock(value)
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%w: %q (expected minutes, e.g. 60, or HH:MM, e.g. 01:00)", ErrInvalidTimeFormat, value)
	}
	if minutes < 0 {
		return "", fmt.Errorf("%w: %d minutes", ErrNegativeDuration, minutes)
	}

	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// FormatFraction validates a half/full-day value and formats it for storage.
func FormatFraction(value float64) (string, error) {
	if value != 0.5 && value != 1.0 {
		return "", fmt.Errorf("%w: got %v", ErrInvalidFraction, value)
	}
	return strconv.FormatFloat(value, 'f', 1, 64), nil
}
