package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jchau/itin/internal/cli/formatter"
	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the itinerary in other shapes",
	}

	cmd.AddCommand(
		newExportGridCmd(app),
		newExportCSVCmd(app),
		newExportICSCmd(app),
	)

	return cmd
}

type gridFlags struct {
	trip string
	date string
	wake string
	bed  string
	rest string
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.trip, "trip", "", "Trip name or ID")
	cmd.Flags().StringVar(&f.date, "date", "", "Only this date (YYYY-MM-DD); default all days")
	cmd.Flags().StringVar(&f.wake, "wake", "", "Awake window start (HH:MM)")
	cmd.Flags().StringVar(&f.bed, "sleep", "", "Awake window end (HH:MM)")
	cmd.Flags().StringVar(&f.rest, "rest-label", "", "Label for slots outside the awake window")
}

func (f *gridFlags) build(ctx context.Context, app *App) (*domain.Trip, []export.Slot, error) {
	trip, err := resolveTrip(ctx, app, f.trip)
	if err != nil {
		return nil, nil, err
	}
	it, err := app.Itineraries.Load(ctx, trip.ID)
	if err != nil {
		return nil, nil, err
	}

	var awake export.AwakeWindow
	awake.WakeAt, awake.SleepAt = app.Config.AwakeWindowTimes()
	opts := export.GridOptions{Awake: &awake, RestLabel: app.Config.RestLabel}

	if f.date != "" {
		opts.Date, err = time.Parse(dateLayout, f.date)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid date %q: %w", f.date, err)
		}
	}
	if f.wake != "" {
		if awake.WakeAt, err = domain.ParseTimeOfDay(f.wake); err != nil {
			return nil, nil, err
		}
	}
	if f.bed != "" {
		if awake.SleepAt, err = domain.ParseTimeOfDay(f.bed); err != nil {
			return nil, nil, err
		}
	}
	if f.rest != "" {
		opts.RestLabel = f.rest
	}

	return trip, export.BuildGrid(it, opts), nil
}

func newExportGridCmd(app *App) *cobra.Command {
	var flags gridFlags
	var full bool

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the day as a 15-minute grid",
		Long: `Project the committed sequence onto the fixed 96-slot day grid
(15 minutes per slot). By default equal consecutive slots collapse
into one row; --full prints all 96.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, slots, err := flags.build(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header(trip.Name))
			fmt.Print(formatter.FormatGrid(slots, !full))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&full, "full", false, "Print every slot instead of collapsing runs")
	return cmd
}

func newExportCSVCmd(app *App) *cobra.Command {
	var flags gridFlags
	var out string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write the 96-slot grid as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, slots, err := flags.build(context.Background(), app)
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := export.WriteGridCSV(w, slots); err != nil {
				return err
			}
			if out != "" && out != "-" {
				fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func newExportICSCmd(app *App) *cobra.Command {
	var tripArg, out string

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Write the itinerary as an iCalendar file",
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

			cal := export.BuildICS(trip, it)
			if out == "" || out == "-" {
				fmt.Print(cal)
				return nil
			}
			if err := os.WriteFile(out, []byte(cal), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default stdout)")
	return cmd
}
