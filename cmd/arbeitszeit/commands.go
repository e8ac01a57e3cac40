package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/arbeitszeit/internal/config"
	"github.com/username/arbeitszeit/internal/holiday"
	"github.com/username/arbeitszeit/internal/ledger"
	"github.com/username/arbeitszeit/pkg/dateutil"
)

// cmdEnv bundles everything a subcommand needs for one invocation
type cmdEnv struct {
	cfg   *config.Config
	store *ledger.Store
	date  time.Time
}

func newEnv() (*cmdEnv, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()

	provider, err := buildProvider(cfg)
	if err != nil {
		return nil, err
	}

	date := dateutil.Today()
	if dateFlag != "" {
		date, err = dateutil.ParseDate(dateFlag)
		if err != nil {
			return nil, err
		}
	}

	return &cmdEnv{
		cfg:   cfg,
		store: ledger.NewStore(cfg.General.DataPath, provider, logger),
		date:  date,
	}, nil
}

// buildProvider initializes the holiday provider based on type
func buildProvider(cfg *config.Config) (holiday.Provider, error) {
	switch cfg.Holidays.Provider {
	case "region":
		return holiday.NewRegionProvider(cfg.Holidays.Country, cfg.Holidays.Subdivision, logger)

	case "api":
		return holiday.NewAPIProvider(
			cfg.Holidays.APIURL,
			cfg.Holidays.Country,
			cfg.Holidays.Subdivision,
			cfg.Holidays.GetCacheTTL(),
			logger,
		), nil

	case "composite":
		primary := holiday.NewAPIProvider(
			cfg.Holidays.APIURL,
			cfg.Holidays.Country,
			cfg.Holidays.Subdivision,
			cfg.Holidays.GetCacheTTL(),
			logger,
		)
		fallback, err := holiday.NewRegionProvider(cfg.Holidays.Country, cfg.Holidays.Subdivision, logger)
		if err != nil {
			return nil, err
		}
		return holiday.NewCompositeProvider(primary, fallback, logger), nil

	default:
		return nil, fmt.Errorf("unknown holiday provider type: %s", cfg.Holidays.Provider)
	}
}

// showWindow prints the trailing window of records ending at the env date
func (e *cmdEnv) showWindow(size int) error {
	records, err := e.store.Window(e.date, size)
	if err != nil {
		return err
	}
	renderTable(os.Stdout, records, e.cfg.Display.NaNReplacement)
	return nil
}

func createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create the schedule file for the month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			if err := env.store.Create(env.date); err != nil {
				return err
			}

			fmt.Printf("Created schedule for %d-%02d\n", env.date.Year(), int(env.date.Month()))
			return nil
		},
	}
}

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start TIME",
		Short: "Log start time (HH:MM)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			if err := env.store.LogStart(env.date, args[0]); err != nil {
				return err
			}
			if err := env.showWindow(env.cfg.General.ShowDaysAfterLog); err != nil {
				return err
			}

			fmt.Printf("\nLogged start time %s for %s\n", args[0], dateutil.FormatISO(env.date))
			return nil
		},
	}
}

func endCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end TIME",
		Short: "Log end time (HH:MM)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			if err := env.store.LogEnd(env.date, args[0]); err != nil {
				return err
			}
			if err := env.showWindow(env.cfg.General.ShowDaysAfterLog); err != nil {
				return err
			}

			fmt.Printf("\nLogged end time %s for %s\n", args[0], dateutil.FormatISO(env.date))
			return nil
		},
	}
}

func breakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "break TIME",
		Short: "Log break time (minutes or HH:MM)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			if err := env.store.LogBreak(env.date, args[0]); err != nil {
				return err
			}
			if err := env.showWindow(env.cfg.General.ShowDaysAfterLog); err != nil {
				return err
			}

			fmt.Printf("\nLogged break time %s for %s\n", args[0], dateutil.FormatISO(env.date))
			return nil
		},
	}
}

func vacationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vacation DAYS",
		Short: "Log vacation (0.5 or 1.0 days)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ledger.ErrInvalidFraction, args[0])
			}

			if err := env.store.LogVacation(env.date, value); err != nil {
				return err
			}
			if err := env.showWindow(env.cfg.General.ShowDaysAfterLog); err != nil {
				return err
			}

			fmt.Printf("\nLogged %s day vacation for %s\n", args[0], dateutil.FormatISO(env.date))
			return nil
		},
	}
}

func sickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sick DAYS",
		Short: "Log sick leave (0.5 or 1.0 days)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ledger.ErrInvalidFraction, args[0])
			}

			if err := env.store.LogSick(env.date, value); err != nil {
				return err
			}
			if err := env.showWindow(env.cfg.General.ShowDaysAfterLog); err != nil {
				return err
			}

			fmt.Printf("\nLogged %s day sick leave for %s\n", args[0], dateutil.FormatISO(env.date))
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [DAYS]",
		Short: "Show the schedule (whole month, or the last DAYS entries)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			size := -1 // whole month
			if len(args) == 1 {
				size, err = strconv.Atoi(args[0])
				if err != nil || size <= 0 {
					return fmt.Errorf("invalid day count %q", args[0])
				}
			}

			return env.showWindow(size)
		},
	}
}
