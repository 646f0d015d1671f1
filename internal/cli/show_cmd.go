package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jchau/itin/internal/cli/formatter"
)

func newShowCmd(app *App) *cobra.Command {
	var tripArg string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a trip's itinerary, day by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trip, err := resolveTrip(ctx, app, tripArg)
			if err != nil {
				return err
			}
			it, err := app.Itineraries.Load(ctx, trip.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatItinerary(trip, it))
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	return cmd
}
