package formatter

import (
	"fmt"
	"strings"

	"github.com/jchau/itin/internal/domain"
)

const dateLayout = "2006-01-02"

// FormatItinerary renders the committed sequence as numbered cards,
// followed by the parked holding area if it is non-empty.
func FormatItinerary(trip *domain.Trip, it *domain.Itinerary) string {
	var b strings.Builder

	b.WriteString(Header(trip.Name))
	b.WriteString("\n")

	if len(it.Items) == 0 && len(it.Parked) == 0 {
		b.WriteString(Dim("No items yet. Add one with `itin item add`.") + "\n")
		return b.String()
	}

	lastDate := ""
	for i, item := range it.Items {
		date := item.Date.Format(dateLayout)
		if date != lastDate {
			b.WriteString("\n" + StyleYellow.Render(date) + "\n")
			lastDate = date
		}
		b.WriteString(formatCard(i, item))
	}

	if len(it.Parked) > 0 {
		b.WriteString("\n" + Dim("─── not yet scheduled ───") + "\n")
		for _, item := range it.Parked {
			b.WriteString(formatParkedCard(item))
		}
	}

	return b.String()
}

func formatCard(pos int, item *domain.ScheduleItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s  %s",
		Dim(fmt.Sprintf("%2d.", pos+1)),
		timeSpan(item),
		KindTag(item.Kind),
		Bold(title(item)),
	)
	if item.End < item.Start && item.Duration > 0 {
		b.WriteString(" " + StyleYellow.Render("(past midnight)"))
	}
	b.WriteString("\n")

	if detail := cardDetail(item); detail != "" {
		b.WriteString("      " + Dim(detail) + "\n")
	}
	return b.String()
}

func formatParkedCard(item *domain.ScheduleItem) string {
	return fmt.Sprintf("  %s  %s  %s  %s\n",
		Dim("·"),
		Dim(timeSpan(item)),
		KindTag(item.Kind),
		title(item),
	)
}

func cardDetail(item *domain.ScheduleItem) string {
	if item.Kind == domain.KindTransit {
		route := fmt.Sprintf("%s %s → %s", ModeIcon(item.Mode), item.Origin, item.Destination)
		if n := len(item.Legs); n > 1 {
			route += fmt.Sprintf("  (%d legs)", n)
		}
		return route
	}
	var parts []string
	if item.Location != "" {
		parts = append(parts, "📍 "+item.Location)
	}
	if item.Area != "" {
		parts = append(parts, item.Area)
	}
	if item.Goal != "" {
		parts = append(parts, "🎯 "+item.Goal)
	}
	return strings.Join(parts, "  ")
}

func title(item *domain.ScheduleItem) string {
	if item.Title != "" {
		return item.Title
	}
	if item.Kind == domain.KindTransit && (item.Origin != "" || item.Destination != "") {
		return fmt.Sprintf("%s → %s", item.Origin, item.Destination)
	}
	return "(untitled)"
}

func timeSpan(item *domain.ScheduleItem) string {
	return fmt.Sprintf("%s–%s (%s)", item.Start, item.End, item.Duration)
}

// FormatItemInspect renders a single item's full field set.
func FormatItemInspect(item *domain.ScheduleItem) string {
	pairs := [][2]string{
		{"id", TruncID(item.ID)},
		{"kind", string(item.Kind)},
		{"title", title(item)},
		{"date", item.Date.Format(dateLayout)},
		{"start", item.Start.String()},
		{"end", item.End.String()},
		{"duration", item.Duration.String()},
	}
	if item.Kind == domain.KindTransit {
		pairs = append(pairs,
			[2]string{"route", fmt.Sprintf("%s → %s", item.Origin, item.Destination)},
			[2]string{"mode", string(item.Mode)},
		)
		for i, leg := range item.Legs {
			pairs = append(pairs, [2]string{
				fmt.Sprintf("leg %d", i+1),
				fmt.Sprintf("%s %s: %s → %s", ModeIcon(leg.Mode), leg.Line, leg.BoardAt, leg.AlightAt),
			})
		}
	} else {
		if item.Location != "" {
			pairs = append(pairs, [2]string{"location", item.Location})
		}
		if item.Area != "" {
			pairs = append(pairs, [2]string{"area", item.Area})
		}
		if item.Category != "" {
			pairs = append(pairs, [2]string{"category", item.Category})
		}
		if item.PhotoRef != "" {
			pairs = append(pairs, [2]string{"photo", item.PhotoRef})
		}
		if item.Goal != "" {
			pairs = append(pairs, [2]string{"goal", item.Goal})
		}
		if item.OpeningHours != "" {
			pairs = append(pairs, [2]string{"open", item.OpeningHours})
		}
		if item.MapURL != "" {
			pairs = append(pairs, [2]string{"map", item.MapURL})
		}
	}
	if item.Note != "" {
		pairs = append(pairs, [2]string{"note", item.Note})
	}
	return RenderKV(pairs)
}
