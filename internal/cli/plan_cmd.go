package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var tripArg string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Rearrange the itinerary interactively",
		Long: `Open a full-screen planner where items are moved, parked, and
restored with the keyboard. Every change is saved as you make it and
the downstream times resettle immediately.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("plan needs a terminal; use item mv / park / restore instead")
			}

			ctx := context.Background()
			trip, err := resolveTrip(ctx, app, tripArg)
			if err != nil {
				return err
			}
			it, err := app.Itineraries.Load(ctx, trip.ID)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newPlanModel(app, trip, it), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	return cmd
}
