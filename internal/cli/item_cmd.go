package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jchau/itin/internal/cli/formatter"
	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/service"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage schedule items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemSetCmd(app),
		newItemInspectCmd(app),
		newItemRemoveCmd(app),
		newItemMoveCmd(app),
		newItemParkCmd(app),
		newItemRestoreCmd(app),
		newItemLegsCmd(app),
	)

	return cmd
}

type timingFlags struct {
	date     string
	start    string
	duration string
}

func (f *timingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Date (YYYY-MM-DD), defaults to the predecessor's date")
	cmd.Flags().StringVar(&f.start, "start", "", "Start time (HH:MM), defaults to the predecessor's end")
	cmd.Flags().StringVar(&f.duration, "duration", "", "Duration (hh:mm or minutes), defaults to the configured default")
}

func (f *timingFlags) parse() (date time.Time, start *domain.TimeOfDay, dur *domain.Duration, err error) {
	if f.date != "" {
		date, err = time.Parse(dateLayout, f.date)
		if err != nil {
			return date, nil, nil, fmt.Errorf("invalid date %q: %w", f.date, err)
		}
	}
	if f.start != "" {
		t, perr := domain.ParseTimeOfDay(f.start)
		if perr != nil {
			return date, nil, nil, perr
		}
		start = &t
	}
	if f.duration != "" {
		d, perr := domain.ParseDuration(f.duration)
		if perr != nil {
			return date, nil, nil, perr
		}
		dur = &d
	}
	return date, start, dur, nil
}

func newItemAddCmd(app *App) *cobra.Command {
	var (
		tripArg string
		transit bool
		timing  timingFlags

		title, note                                          string
		location, area, category, photoRef, goal, open, mapU string
		origin, destination, mode                            string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the end of the itinerary",
		Long: `Add a spot (default) or, with --transit, a transit connection.
Without --title the command opens an interactive form when run in a
terminal. New items start where the previous one ends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trip, err := resolveTrip(ctx, app, tripArg)
			if err != nil {
				return err
			}
			date, start, dur, err := timing.parse()
			if err != nil {
				return err
			}

			if title == "" && origin == "" && app.interactive() {
				return runAddForm(ctx, app, trip, transit)
			}

			var it *domain.Itinerary
			if transit {
				it, err = app.Itineraries.AddTransit(ctx, trip.ID, service.NewTransitRequest{
					Title:       title,
					Date:        date,
					Start:       start,
					Duration:    dur,
					Origin:      origin,
					Destination: destination,
					Mode:        domain.TransitMode(mode),
					Note:        note,
				})
			} else {
				it, err = app.Itineraries.AddSpot(ctx, trip.ID, service.NewSpotRequest{
					Title:        title,
					Date:         date,
					Start:        start,
					Duration:     dur,
					Location:     location,
					Area:         area,
					Category:     category,
					PhotoRef:     photoRef,
					Goal:         goal,
					OpeningHours: open,
					MapURL:       mapU,
					Note:         note,
				})
			}
			if err != nil {
				return err
			}

			added := it.Items[len(it.Items)-1]
			fmt.Printf("%s Added %s (%s–%s)\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(itemLabel(added)),
				added.Start, added.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	cmd.Flags().BoolVar(&transit, "transit", false, "Add a transit connection instead of a spot")
	timing.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	cmd.Flags().StringVar(&location, "location", "", "Spot location")
	cmd.Flags().StringVar(&area, "area", "", "Area or district")
	cmd.Flags().StringVar(&category, "category", "", "Spot category (food, shopping, ...)")
	cmd.Flags().StringVar(&photoRef, "photo", "", "Photo reference")
	cmd.Flags().StringVar(&goal, "goal", "", "What to do there")
	cmd.Flags().StringVar(&open, "open", "", "Opening hours")
	cmd.Flags().StringVar(&mapU, "map", "", "Map URL")
	cmd.Flags().StringVar(&origin, "from", "", "Transit origin")
	cmd.Flags().StringVar(&destination, "to", "", "Transit destination")
	cmd.Flags().StringVar(&mode, "mode", "", "Transit mode (metro, jr, bus, walk, taxi)")

	return cmd
}

func newItemSetCmd(app *App) *cobra.Command {
	var tripArg string
	var title, date, start, duration, end, note string
	var location, area, category, photoRef, goal, open, mapU string
	var origin, destination, mode string

	cmd := &cobra.Command{
		Use:   "set <item>",
		Short: "Edit an item's fields",
		Long: `Edit fields of one item. Time fields follow the sync rules:
--start and --duration rederive the end time; --end keeps the typed
end and derives the duration instead. Other items are not retimed
until you resequence (mv, plan, or a reorder).`,
		Args: cobra.ExactArgs(1),
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
			id, err := resolveItem(it, args[0])
			if err != nil {
				return err
			}

			var patch service.ItemPatch
			strFlag := func(name string, val *string, dst **string) {
				if cmd.Flags().Changed(name) {
					*dst = val
				}
			}
			strFlag("title", &title, &patch.Title)
			strFlag("note", &note, &patch.Note)
			strFlag("location", &location, &patch.Location)
			strFlag("area", &area, &patch.Area)
			strFlag("category", &category, &patch.Category)
			strFlag("photo", &photoRef, &patch.PhotoRef)
			strFlag("goal", &goal, &patch.Goal)
			strFlag("open", &open, &patch.OpeningHours)
			strFlag("map", &mapU, &patch.MapURL)
			strFlag("from", &origin, &patch.Origin)
			strFlag("to", &destination, &patch.Destination)

			if cmd.Flags().Changed("mode") {
				m := domain.TransitMode(mode)
				patch.Mode = &m
			}
			if date != "" {
				d, err := time.Parse(dateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				patch.Date = &d
			}
			if start != "" {
				t, err := domain.ParseTimeOfDay(start)
				if err != nil {
					return err
				}
				patch.Start = &t
			}
			if duration != "" {
				d, err := domain.ParseDuration(duration)
				if err != nil {
					return err
				}
				patch.Duration = &d
			}
			if end != "" {
				t, err := domain.ParseTimeOfDay(end)
				if err != nil {
					return err
				}
				patch.End = &t
			}

			it, err = app.Itineraries.UpdateItem(ctx, trip.ID, id, patch)
			if err != nil {
				return err
			}
			item := it.Find(id)
			fmt.Printf("%s %s now %s–%s (%s)\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(itemLabel(item)),
				item.Start, item.End, item.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&duration, "duration", "", "Duration (hh:mm or minutes)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM); derives the duration")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	cmd.Flags().StringVar(&location, "location", "", "Spot location")
	cmd.Flags().StringVar(&area, "area", "", "Area or district")
	cmd.Flags().StringVar(&category, "category", "", "Spot category")
	cmd.Flags().StringVar(&photoRef, "photo", "", "Photo reference")
	cmd.Flags().StringVar(&goal, "goal", "", "What to do there")
	cmd.Flags().StringVar(&open, "open", "", "Opening hours")
	cmd.Flags().StringVar(&mapU, "map", "", "Map URL")
	cmd.Flags().StringVar(&origin, "from", "", "Transit origin")
	cmd.Flags().StringVar(&destination, "to", "", "Transit destination")
	cmd.Flags().StringVar(&mode, "mode", "", "Transit mode")

	return cmd
}

func newItemInspectCmd(app *App) *cobra.Command {
	var tripArg string

	cmd := &cobra.Command{
		Use:   "inspect <item>",
		Short: "Show all of an item's fields",
		Args:  cobra.ExactArgs(1),
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
			id, err := resolveItem(it, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatItemInspect(it.Find(id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	var tripArg string

	cmd := &cobra.Command{
		Use:   "rm <item>",
		Short: "Remove an item; successors close the gap",
		Args:  cobra.ExactArgs(1),
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
			id, err := resolveItem(it, args[0])
			if err != nil {
				return err
			}
			label := itemLabel(it.Find(id))
			if _, err := app.Itineraries.RemoveItem(ctx, trip.ID, id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", label)
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	return cmd
}

func newItemMoveCmd(app *App) *cobra.Command {
	var tripArg string

	cmd := &cobra.Command{
		Use:   "mv <item> <position>",
		Short: "Move an item to a new position (1-based) and resequence",
		Args:  cobra.ExactArgs(2),
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
			id, err := resolveItem(it, args[0])
			if err != nil {
				return err
			}
			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}

			it, err = app.Itineraries.MoveItem(ctx, trip.ID, id, pos-1)
			if err != nil {
				return err
			}
			item := it.Find(id)
			fmt.Printf("%s %s now runs %s–%s\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(itemLabel(item)), item.Start, item.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	return cmd
}

func newItemParkCmd(app *App) *cobra.Command {
	var tripArg string

	cmd := &cobra.Command{
		Use:   "park <item>",
		Short: "Move an item to the not-yet-scheduled holding area",
		Args:  cobra.ExactArgs(1),
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
			id, err := resolveItem(it, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Itineraries.ParkItem(ctx, trip.ID, id); err != nil {
				return err
			}
			fmt.Printf("Parked %s; it keeps its times until restored\n", itemLabel(it.Find(id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	return cmd
}

func newItemRestoreCmd(app *App) *cobra.Command {
	var tripArg string
	var pos int

	cmd := &cobra.Command{
		Use:   "restore <item>",
		Short: "Re-insert a parked item into the sequence",
		Args:  cobra.ExactArgs(1),
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
			id, err := resolveItem(it, args[0])
			if err != nil {
				return err
			}

			at := len(it.Items)
			if cmd.Flags().Changed("at") {
				at = pos - 1
			}
			it, err = app.Itineraries.RestoreItem(ctx, trip.ID, id, at)
			if err != nil {
				return err
			}
			item := it.Find(id)
			fmt.Printf("%s Restored %s at %s–%s\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(itemLabel(item)), item.Start, item.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	cmd.Flags().IntVar(&pos, "at", 0, "Position to restore at (1-based, default end)")
	return cmd
}

func newItemLegsCmd(app *App) *cobra.Command {
	var tripArg, mode, line, from, to string
	var clear bool

	cmd := &cobra.Command{
		Use:   "legs <item>",
		Short: "List or edit a transit item's legs",
		Long: `Without flags, list the item's legs. With --from and --to, append
a leg; with --clear, drop them all. Legs describe the route only and
never affect the timing of the sequence.`,
		Args: cobra.ExactArgs(1),
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
			id, err := resolveItem(it, args[0])
			if err != nil {
				return err
			}
			item := it.Find(id)
			if item.Kind != domain.KindTransit {
				return fmt.Errorf("%s is not a transit item", itemLabel(item))
			}

			switch {
			case clear:
				if _, err := app.Itineraries.UpdateItem(ctx, trip.ID, id, service.ItemPatch{Legs: []domain.Leg{}}); err != nil {
					return err
				}
				fmt.Printf("Cleared legs of %s\n", formatter.Bold(itemLabel(item)))

			case from != "" || to != "":
				if from == "" || to == "" {
					return fmt.Errorf("--from and --to go together")
				}
				legs := append(append([]domain.Leg{}, item.Legs...), domain.Leg{
					Mode:     domain.TransitMode(mode),
					Line:     line,
					BoardAt:  from,
					AlightAt: to,
				})
				if _, err := app.Itineraries.UpdateItem(ctx, trip.ID, id, service.ItemPatch{Legs: legs}); err != nil {
					return err
				}
				fmt.Printf("%s now has %d legs\n", formatter.Bold(itemLabel(item)), len(legs))

			default:
				if len(item.Legs) == 0 {
					fmt.Println(formatter.Dim("No legs."))
					return nil
				}
				rows := make([][]string, 0, len(item.Legs))
				for i, leg := range item.Legs {
					rows = append(rows, []string{
						fmt.Sprintf("%d", i+1),
						formatter.ModeIcon(leg.Mode) + " " + string(leg.Mode),
						leg.Line,
						leg.BoardAt,
						leg.AlightAt,
					})
				}
				fmt.Print(formatter.RenderTable([]string{"#", "MODE", "LINE", "FROM", "TO"}, rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tripArg, "trip", "", "Trip name or ID")
	cmd.Flags().StringVar(&mode, "mode", string(domain.ModeMetro), "Leg mode")
	cmd.Flags().StringVar(&line, "line", "", "Line or service name")
	cmd.Flags().StringVar(&from, "from", "", "Boarding stop")
	cmd.Flags().StringVar(&to, "to", "", "Alighting stop")
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove all legs")

	return cmd
}

func itemLabel(item *domain.ScheduleItem) string {
	if item == nil {
		return "(gone)"
	}
	if item.Title != "" {
		return item.Title
	}
	if item.Kind == domain.KindTransit {
		return fmt.Sprintf("%s → %s", item.Origin, item.Destination)
	}
	return formatter.TruncID(item.ID)
}
