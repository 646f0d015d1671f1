package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jchau/itin/internal/domain"
)

// csvHeader is the spreadsheet column layout: one row per slot, item
// fields repeated for every slot the item covers.
var csvHeader = []string{"slot", "title", "kind", "place", "note"}

// WriteGridCSV serializes a slot grid as CSV.
func WriteGridCSV(w io.Writer, slots []Slot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range slots {
		row := []string{s.Start.String(), s.Label, "", "", ""}
		if s.Item != nil {
			row[2] = string(s.Item.Kind)
			row[3] = itemPlace(s.Item)
			row[4] = s.Item.Note
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %s: %w", s.Start, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func itemPlace(item *domain.ScheduleItem) string {
	if item.Kind == domain.KindTransit {
		if item.Origin == "" && item.Destination == "" {
			return ""
		}
		return fmt.Sprintf("%s → %s", item.Origin, item.Destination)
	}
	return domain.CoalesceStr(item.Location, item.Area)
}
