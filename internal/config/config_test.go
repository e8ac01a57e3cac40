package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[general]
data_path = "/var/lib/arbeitszeit"
show_days_after_log = 7

[holidays]
provider = "region"
country = "DE"
subdivision = "BY"

[display]
nan_replacement = "--"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.DataPath != "/var/lib/arbeitszeit" {
		t.Errorf("DataPath = %q, want /var/lib/arbeitszeit", cfg.General.DataPath)
	}
	if cfg.General.ShowDaysAfterLog != 7 {
		t.Errorf("ShowDaysAfterLog = %d, want 7", cfg.General.ShowDaysAfterLog)
	}
	if cfg.Holidays.Subdivision != "BY" {
		t.Errorf("Subdivision = %q, want BY", cfg.Holidays.Subdivision)
	}
	if cfg.Display.NaNReplacement != "--" {
		t.Errorf("NaNReplacement = %q, want --", cfg.Display.NaNReplacement)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[general]
data_path = "/data"

[holidays]
country = "DE"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.ShowDaysAfterLog != 5 {
		t.Errorf("default ShowDaysAfterLog = %d, want 5", cfg.General.ShowDaysAfterLog)
	}
	if cfg.Holidays.Provider != "region" {
		t.Errorf("default Provider = %q, want region", cfg.Holidays.Provider)
	}
	if cfg.Display.NaNReplacement != "-" {
		t.Errorf("default NaNReplacement = %q, want -", cfg.Display.NaNReplacement)
	}
	if cfg.Logging.LogLevel != "info" {
		t.Errorf("default LogLevel = %q, want info", cfg.Logging.LogLevel)
	}
}

func TestLoad_RelativeDataPath(t *testing.T) {
	path := writeConfig(t, `
[general]
data_path = "data"

[holidays]
country = "DE"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := filepath.Join(filepath.Dir(path), "data")
	if cfg.General.DataPath != want {
		t.Errorf("DataPath = %q, want %q (relative to config file)", cfg.General.DataPath, want)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing data_path",
			`
[holidays]
country = "DE"
`,
		},
		{
			"missing country",
			`
[general]
data_path = "/data"
`,
		},
		{
			"unknown provider",
			`
[general]
data_path = "/data"

[holidays]
provider = "crystal-ball"
country = "DE"
`,
		},
		{
			"api provider without url",
			`
[general]
data_path = "/data"

[holidays]
provider = "api"
country = "DE"
`,
		},
		{
			"negative window size",
			`
[general]
data_path = "/data"
show_days_after_log = -3

[holidays]
country = "DE"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			if _, err := Load(path); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestGetCacheTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  string
		want time.Duration
	}{
		{"empty defaults to 24h", "", 24 * time.Hour},
		{"valid duration", "1h30m", 90 * time.Minute},
		{"invalid falls back to 24h", "soonish", 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &HolidaysConfig{CacheTTL: tt.ttl}

			if got := c.GetCacheTTL(); got != tt.want {
				t.Errorf("GetCacheTTL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("ARBEITSZEIT_TEST_DIR", "/mnt/ledger")

	cfg := &Config{
		General: GeneralConfig{DataPath: "$ARBEITSZEIT_TEST_DIR/data"},
	}
	cfg.ExpandEnvVars()

	if cfg.General.DataPath != "/mnt/ledger/data" {
		t.Errorf("DataPath = %q, want /mnt/ledger/data", cfg.General.DataPath)
	}
}
