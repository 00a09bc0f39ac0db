package cli

import (
	"fmt"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/cli/formatter"
	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/spf13/cobra"
)

func newComeCmd(a *App, id *identity) *cobra.Command {
	return &cobra.Command{
		Use:   "come",
		Short: "Check in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvent(cmd, a, id, app.EventCheckIn, app.Range{})
		},
	}
}

func newEndCmd(a *App, id *identity) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Check out of the open session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvent(cmd, a, id, app.EventCheckOut, app.Range{})
		},
	}
}

// runEvent sends one event through the handler and prints its result.
func runEvent(cmd *cobra.Command, a *App, id *identity, kind app.EventKind, rng app.Range) error {
	if err := id.validate(); err != nil {
		return err
	}
	if a.Events == nil {
		return fmt.Errorf("event handler is not configured")
	}

	res, err := a.Events.Handle(cmd.Context(), app.Event{
		UserID:   id.UserID,
		UserName: id.displayName(),
		Kind:     kind,
		Range:    rng,
		Now:      a.now(),
	})
	if err != nil {
		return err
	}

	switch res.(type) {
	case app.NotCheckedInError:
		return fmt.Errorf("user %d: %w; run 'worktime come' first", id.UserID, domain.ErrNotCheckedIn)
	case app.Unauthorized:
		return fmt.Errorf("user %d: %w", id.UserID, domain.ErrUnauthorized)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResult(res, a.interactive()))
	return nil
}
