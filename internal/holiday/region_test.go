package holiday

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{2025, time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)},
		{2026, time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		result := easterSunday(tt.year)

		if !result.Equal(tt.want) {
			t.Errorf("easterSunday(%d) = %v, want %v", tt.year, result, tt.want)
		}
	}
}

func TestRegionProvider_Bavaria2025(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	provider, err := NewRegionProvider("DE", "BY", logger)
	if err != nil {
		t.Fatalf("NewRegionProvider() error = %v", err)
	}

	set, err := provider.Year(2025)
	if err != nil {
		t.Fatalf("Year(2025) error = %v", err)
	}

	want := map[string]string{
		"2025-01-01": "Neujahr",
		"2025-01-06": "Heilige Drei Könige",
		"2025-04-18": "Karfreitag",
		"2025-04-21": "Ostermontag",
		"2025-05-01": "Tag der Arbeit",
		"2025-05-29": "Christi Himmelfahrt",
		"2025-06-09": "Pfingstmontag",
		"2025-06-19": "Fronleichnam",
		"2025-08-15": "Mariä Himmelfahrt",
		"2025-10-03": "Tag der Deutschen Einheit",
		"2025-11-01": "Allerheiligen",
		"2025-12-25": "1. Weihnachtstag",
		"2025-12-26": "2. Weihnachtstag",
	}

	for date, name := range want {
		if got := set.Name(date); got != name {
			t.Errorf("set[%s] = %q, want %q", date, got, name)
		}
	}

	if len(set) != len(want) {
		t.Errorf("holiday count = %d, want %d", len(set), len(want))
	}

	if set.Contains("2025-10-31") {
		t.Error("Reformationstag should not be a holiday in Bavaria")
	}
}

func TestRegionProvider_NationwideOnly(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	provider, err := NewRegionProvider("DE", "", logger)
	if err != nil {
		t.Fatalf("NewRegionProvider() error = %v", err)
	}

	set, err := provider.Year(2025)
	if err != nil {
		t.Fatalf("Year(2025) error = %v", err)
	}

	if len(set) != 9 {
		t.Errorf("nationwide holiday count = %d, want 9", len(set))
	}

	if set.Contains("2025-06-19") {
		t.Error("Fronleichnam should not be in the nationwide set")
	}
}

func TestRegionProvider_BussUndBettag(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	provider, err := NewRegionProvider("DE", "SN", logger)
	if err != nil {
		t.Fatalf("NewRegionProvider() error = %v", err)
	}

	set, err := provider.Year(2025)
	if err != nil {
		t.Fatalf("Year(2025) error = %v", err)
	}

	// Wednesday before November 23
	if got := set.Name("2025-11-19"); got != "Buß- und Bettag" {
		t.Errorf("set[2025-11-19] = %q, want Buß- und Bettag", got)
	}
}

func TestRegionProvider_Austria(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	provider, err := NewRegionProvider("AT", "", logger)
	if err != nil {
		t.Fatalf("NewRegionProvider() error = %v", err)
	}

	set, err := provider.Year(2025)
	if err != nil {
		t.Fatalf("Year(2025) error = %v", err)
	}

	if got := set.Name("2025-10-26"); got != "Nationalfeiertag" {
		t.Errorf("set[2025-10-26] = %q, want Nationalfeiertag", got)
	}

	if got := set.Name("2025-06-19"); got != "Fronleichnam" {
		t.Errorf("set[2025-06-19] = %q, want Fronleichnam", got)
	}
}

func TestNewRegionProvider_Invalid(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name        string
		country     string
		subdivision string
	}{
		{"unsupported country", "FR", ""},
		{"unknown subdivision", "DE", "XX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegionProvider(tt.country, tt.subdivision, logger)
			if err == nil {
				t.Errorf("NewRegionProvider(%q, %q) expected error, got nil", tt.country, tt.subdivision)
			}
		})
	}
}
