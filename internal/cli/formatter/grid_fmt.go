package formatter

import "github.com/jchau/itin/internal/export"

// FormatGrid renders the 96-slot export table for the terminal.
// Compact mode collapses runs of identical labels into one row.
func FormatGrid(slots []export.Slot, compact bool) string {
	headers := []string{"SLOT", "ITEM"}
	var rows [][]string

	for i := 0; i < len(slots); i++ {
		s := slots[i]
		label := s.Label
		if s.Item == nil && label != "" {
			label = Dim(label)
		}
		if s.Item != nil {
			label = KindStyle(s.Item.Kind).Render(label)
		}

		if compact {
			j := i
			for j+1 < len(slots) && sameRun(slots[j+1], s) {
				j++
			}
			span := s.Start.String()
			if j > i {
				span += "–" + slots[j].Start.String()
			}
			rows = append(rows, []string{span, label})
			i = j
			continue
		}
		rows = append(rows, []string{s.Start.String(), label})
	}

	return RenderTable(headers, rows)
}

func sameRun(a, b export.Slot) bool {
	return a.Item == b.Item && a.Label == b.Label
}
