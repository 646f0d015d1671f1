package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jchau/itin/internal/cli/formatter"
	"github.com/jchau/itin/internal/domain"
)

const dateLayout = "2006-01-02"

func newTripCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Manage trips",
	}

	cmd.AddCommand(
		newTripAddCmd(app),
		newTripListCmd(app),
		newTripInspectCmd(app),
		newTripRenameCmd(app),
		newTripArchiveCmd(app),
		newTripRemoveCmd(app),
	)

	return cmd
}

func newTripAddCmd(app *App) *cobra.Command {
	var name, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse(dateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			t := &domain.Trip{
				Name:      name,
				StartDate: startDate,
				Status:    domain.TripActive,
			}
			if end != "" {
				endDate, err := time.Parse(dateLayout, end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				t.EndDate = &endDate
			}

			if err := app.Trips.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created trip %s [%s]\n", formatter.Bold(t.Name), formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Trip name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newTripListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := app.Trips.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(trips) == 0 {
				fmt.Println(formatter.Dim("No trips. Create one with `itin trip add`."))
				return nil
			}

			rows := make([][]string, 0, len(trips))
			for _, t := range trips {
				end := ""
				if t.EndDate != nil {
					end = t.EndDate.Format(dateLayout)
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					formatter.Bold(t.Name),
					t.StartDate.Format(dateLayout),
					end,
					string(t.Status),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", "START", "END", "STATUS"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived trips")
	return cmd
}

func newTripInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <trip>",
		Short: "Show a trip's details and item counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			trip, err := resolveTrip(ctx, app, input)
			if err != nil {
				return err
			}
			it, err := app.Itineraries.Load(ctx, trip.ID)
			if err != nil {
				return err
			}

			end := ""
			if trip.EndDate != nil {
				end = trip.EndDate.Format(dateLayout)
			}
			pairs := [][2]string{
				{"ID", trip.ID},
				{"Name", trip.Name},
				{"Start", trip.StartDate.Format(dateLayout)},
				{"End", end},
				{"Status", string(trip.Status)},
				{"Items", fmt.Sprintf("%d scheduled, %d parked", len(it.Items), len(it.Parked))},
			}
			fmt.Print(formatter.RenderKV(pairs))
			return nil
		},
	}
	return cmd
}

func newTripRenameCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <trip> <name>",
		Short: "Rename a trip",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trip, err := resolveTrip(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trips.Rename(ctx, trip.ID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed %s to %s\n", trip.Name, formatter.Bold(args[1]))
			return nil
		},
	}
	return cmd
}

func newTripArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <trip>",
		Short: "Archive a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trip, err := resolveTrip(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trips.Archive(ctx, trip.ID); err != nil {
				return err
			}
			fmt.Printf("Archived %s\n", trip.Name)
			return nil
		},
	}
	return cmd
}

func newTripRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <trip>",
		Short: "Delete a trip and its itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trip, err := resolveTrip(ctx, app, args[0])
			if err != nil {
				return err
			}
			if !force {
				return fmt.Errorf("deleting %q removes its whole itinerary; pass --force to confirm", trip.Name)
			}
			if err := app.Trips.Delete(ctx, trip.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", trip.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation")
	return cmd
}
