package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jchau/itin/internal/cli/formatter"
	"github.com/jchau/itin/internal/domain"
	"github.com/jchau/itin/internal/service"
)

// itinHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func itinHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("%s is required", title)
			}
			return nil
		})
}

// timeInput accepts empty or a clock time; overflowing minutes are
// fine ("01:90" normalizes later), only garbage is rejected.
func timeInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			_, err := domain.ParseTimeOfDay(s)
			return err
		})
}

func durationInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("1:30 or 90").
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			_, err := domain.ParseDuration(s)
			return err
		})
}

func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-01-05").
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			if _, err := time.Parse(dateLayout, s); err != nil {
				return fmt.Errorf("use YYYY-MM-DD format")
			}
			return nil
		})
}

func categorySelect(value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(domain.SpotCategories)+1)
	options = append(options, huh.NewOption("(none)", ""))
	for _, c := range domain.SpotCategories {
		options = append(options, huh.NewOption(c, c))
	}
	return huh.NewSelect[string]().
		Title("Category").
		Options(options...).
		Value(value)
}

func modeSelect(value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(domain.TransitModes))
	for _, m := range domain.TransitModes {
		options = append(options, huh.NewOption(string(m), string(m)))
	}
	return huh.NewSelect[string]().
		Title("Mode").
		Options(options...).
		Value(value)
}

// runAddForm walks the user through adding one item interactively.
func runAddForm(ctx context.Context, app *App, trip *domain.Trip, transit bool) error {
	var title, date, start, duration, note string
	var location, area, category string
	var origin, destination, mode string

	timing := huh.NewGroup(
		dateInput("Date (blank for same day as the previous item)", &date),
		timeInput("Start (blank to follow the previous item)", "10:00", &start),
		durationInput("Duration (blank for the default)", &duration),
	)

	var form *huh.Form
	if transit {
		mode = app.Config.DefaultTransitMode
		form = huh.NewForm(
			huh.NewGroup(
				requiredInput("From", "Shinjuku", &origin),
				requiredInput("To", "Asakusa", &destination),
				modeSelect(&mode),
				huh.NewInput().Title("Note").Value(&note),
			),
			timing,
		).WithTheme(itinHuhTheme()).WithShowHelp(false)
	} else {
		form = huh.NewForm(
			huh.NewGroup(
				requiredInput("Title", "Senso-ji", &title),
				huh.NewInput().Title("Location").Value(&location),
				huh.NewInput().Title("Area").Value(&area),
				categorySelect(&category),
				huh.NewInput().Title("Note").Value(&note),
			),
			timing,
		).WithTheme(itinHuhTheme()).WithShowHelp(false)
	}

	if err := form.Run(); err != nil {
		return err
	}

	var day time.Time
	if date != "" {
		var err error
		if day, err = time.Parse(dateLayout, date); err != nil {
			return err
		}
	}
	var startAt *domain.TimeOfDay
	if start != "" {
		t, err := domain.ParseTimeOfDay(start)
		if err != nil {
			return err
		}
		startAt = &t
	}
	var dur *domain.Duration
	if duration != "" {
		d, err := domain.ParseDuration(duration)
		if err != nil {
			return err
		}
		dur = &d
	}

	var it *domain.Itinerary
	var err error
	if transit {
		it, err = app.Itineraries.AddTransit(ctx, trip.ID, service.NewTransitRequest{
			Date:        day,
			Start:       startAt,
			Duration:    dur,
			Origin:      origin,
			Destination: destination,
			Mode:        domain.TransitMode(mode),
			Note:        note,
		})
	} else {
		it, err = app.Itineraries.AddSpot(ctx, trip.ID, service.NewSpotRequest{
			Title:    title,
			Date:     day,
			Start:    startAt,
			Duration: dur,
			Location: location,
			Area:     area,
			Category: category,
			Note:     note,
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
}
