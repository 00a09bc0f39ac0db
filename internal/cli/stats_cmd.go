package cli

import (
	"fmt"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/cli/formatter"
	"github.com/alexanderramin/worktime/internal/intent"
	"github.com/spf13/cobra"
)

func newTodayCmd(a *App, id *identity) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvent(cmd, a, id, app.EventQuery, app.Today())
		},
	}
}

func newWeekCmd(a *App, id *identity) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: fmt.Sprintf("Show the last %d days", intent.WeekDays),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvent(cmd, a, id, app.EventQuery, app.LastNDays(intent.WeekDays))
		},
	}
}

func newMonthCmd(a *App, id *identity) *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: fmt.Sprintf("Show the last %d days", intent.MonthDays),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvent(cmd, a, id, app.EventQuery, app.LastNDays(intent.MonthDays))
		},
	}
}

func newStatsCmd(a *App, id *identity) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show all-time totals, or the last N days with --days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := app.AllTime()
			if cmd.Flags().Changed("days") {
				if err := validateDays(days); err != nil {
					return err
				}
				rng = app.LastNDays(days)
			}
			return runEvent(cmd, a, id, app.EventQuery, rng)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Limit to the last N days")
	return cmd
}

func newAllCmd(a *App, id *identity) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Show every user's totals (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDays(days); err != nil {
				return err
			}
			return runEvent(cmd, a, id, app.EventQuery, app.AllUsersLastNDays(days))
		},
	}

	cmd.Flags().IntVar(&days, "days", intent.AllUsersDays, "Window length in days")
	return cmd
}

func newOpenCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "List records still waiting for a check-out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Attendance == nil {
				return fmt.Errorf("attendance service is not configured")
			}
			records, err := a.Attendance.OpenRecords(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOpenRecords(records, a.location(), a.now(), a.interactive()))
			return nil
		},
	}
}

func validateDays(days int) error {
	if days < 1 || days > intent.MaxDays {
		return fmt.Errorf("invalid --days %d: must be between 1 and %d", days, intent.MaxDays)
	}
	return nil
}
