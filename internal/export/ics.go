package export

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/jchau/itin/internal/domain"
)

// BuildICS renders the committed sequence as an iCalendar document,
// one VEVENT per item. Items whose interval wraps midnight end on the
// following calendar day. Parked items are left out: an unscheduled
// card has no business on a calendar.
func BuildICS(trip *domain.Trip, it *domain.Itinerary) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//itin//travel itinerary//EN")
	if trip != nil {
		cal.SetName(trip.Name)
	}

	now := time.Now().UTC()
	for _, item := range it.Items {
		ev := cal.AddEvent(item.ID)
		ev.SetDtStampTime(now)
		ev.SetSummary(eventSummary(item))

		start := onDate(item.Date, item.Start)
		end := onDate(item.Date, item.End)
		if item.End <= item.Start && item.Duration > 0 {
			end = end.AddDate(0, 0, 1)
		}
		ev.SetStartAt(start)
		ev.SetEndAt(end)

		if loc := itemPlace(item); loc != "" {
			ev.SetLocation(loc)
		}
		if desc := eventDescription(item); desc != "" {
			ev.SetDescription(desc)
		}
	}
	return cal.Serialize()
}

func eventSummary(item *domain.ScheduleItem) string {
	if item.Title != "" {
		return item.Title
	}
	if item.Kind == domain.KindTransit {
		return fmt.Sprintf("%s → %s", item.Origin, item.Destination)
	}
	return "(untitled)"
}

func eventDescription(item *domain.ScheduleItem) string {
	var lines []string
	if item.Kind == domain.KindTransit {
		if item.Mode != "" {
			lines = append(lines, "mode: "+string(item.Mode))
		}
		for _, leg := range item.Legs {
			lines = append(lines, fmt.Sprintf("%s %s: %s → %s",
				leg.Mode, leg.Line, leg.BoardAt, leg.AlightAt))
		}
	} else {
		if item.Goal != "" {
			lines = append(lines, "goal: "+item.Goal)
		}
		if item.OpeningHours != "" {
			lines = append(lines, "open: "+item.OpeningHours)
		}
		if item.MapURL != "" {
			lines = append(lines, item.MapURL)
		}
	}
	if item.Note != "" {
		lines = append(lines, item.Note)
	}
	return strings.Join(lines, "\n")
}

func onDate(date time.Time, t domain.TimeOfDay) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, time.UTC)
}
