package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jchau/itin/internal/domain"
)

// itemColumns is the canonical SELECT column list for schedule_items.
const itemColumns = `id, trip_id, kind, title, date, start_min, duration_min, end_min,
		position, detached, note, location, area, category, photo_ref, goal,
		opening_hours, map_url, origin, destination, mode, created_at, updated_at`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db *sql.DB
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(db *sql.DB) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM schedule_items WHERE id = ?`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	legs, err := r.loadLegs(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	item.Legs = legs[id]
	return item, nil
}

// LoadItinerary reads a trip's full itinerary: committed items ordered
// by position, parked items after them, transit legs attached.
func (r *SQLiteItemRepo) LoadItinerary(ctx context.Context, tripID string) (*domain.Itinerary, error) {
	query := `SELECT ` + itemColumns + ` FROM schedule_items
		WHERE trip_id = ? ORDER BY detached, position`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("loading itinerary: %w", err)
	}
	defer rows.Close()

	it := &domain.Itinerary{TripID: tripID}
	var ids []string
	for rows.Next() {
		item, detached, err := scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		if detached {
			it.Parked = append(it.Parked, item)
		} else {
			it.Items = append(it.Items, item)
		}
		ids = append(ids, item.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading itinerary: %w", err)
	}

	legsByItem, err := r.loadLegs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range it.Items {
		item.Legs = legsByItem[item.ID]
	}
	for _, item := range it.Parked {
		item.Legs = legsByItem[item.ID]
	}
	return it, nil
}

// ReplaceAll rewrites a trip's itinerary rows in one transaction so a
// cascade commits atomically: positions, times and the detached flag
// all land together or not at all.
func (r *SQLiteItemRepo) ReplaceAll(ctx context.Context, tripID string, it *domain.Itinerary) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting itinerary transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_items WHERE trip_id = ?`, tripID); err != nil {
		return fmt.Errorf("clearing itinerary: %w", err)
	}

	for pos, item := range it.Items {
		if err := insertItem(ctx, tx, tripID, item, pos, false); err != nil {
			return err
		}
	}
	for pos, item := range it.Parked {
		if err := insertItem(ctx, tx, tripID, item, pos, true); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing itinerary: %w", err)
	}
	committed = true
	return nil
}

func insertItem(ctx context.Context, tx *sql.Tx, tripID string, item *domain.ScheduleItem, pos int, detached bool) error {
	query := `INSERT INTO schedule_items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, query,
		item.ID,
		tripID,
		string(item.Kind),
		item.Title,
		item.Date.Format(dateLayout),
		int(item.Start),
		int(item.Duration),
		int(item.End),
		pos,
		boolToInt(detached),
		item.Note,
		item.Location,
		item.Area,
		item.Category,
		item.PhotoRef,
		item.Goal,
		item.OpeningHours,
		item.MapURL,
		item.Origin,
		item.Destination,
		string(item.Mode),
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule item %s: %w", item.ID, err)
	}

	for i, leg := range item.Legs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO transit_legs (item_id, leg_index, mode, line, board_at, alight_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID, i, string(leg.Mode), leg.Line, leg.BoardAt, leg.AlightAt)
		if err != nil {
			return fmt.Errorf("inserting transit leg %d of %s: %w", i, item.ID, err)
		}
	}
	return nil
}

func (r *SQLiteItemRepo) loadLegs(ctx context.Context, itemIDs []string) (map[string][]domain.Leg, error) {
	legs := make(map[string][]domain.Leg)
	if len(itemIDs) == 0 {
		return legs, nil
	}

	query := `SELECT item_id, mode, line, board_at, alight_at FROM transit_legs
		WHERE item_id IN (` + placeholders(len(itemIDs)) + `) ORDER BY item_id, leg_index`
	args := make([]interface{}, len(itemIDs))
	for i, id := range itemIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading transit legs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID, mode string
		var leg domain.Leg
		if err := rows.Scan(&itemID, &mode, &leg.Line, &leg.BoardAt, &leg.AlightAt); err != nil {
			return nil, fmt.Errorf("scanning transit leg: %w", err)
		}
		leg.Mode = domain.TransitMode(mode)
		legs[itemID] = append(legs[itemID], leg)
	}
	return legs, rows.Err()
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	s := "?"
	for i := 1; i < n; i++ {
		s += ", ?"
	}
	return s
}

func scanItem(row rowScanner) (*domain.ScheduleItem, error) {
	item, _, err := scanItemRow(row)
	return item, err
}

func scanItemRow(row rowScanner) (*domain.ScheduleItem, bool, error) {
	var item domain.ScheduleItem
	var kind, date, mode, createdAt, updatedAt string
	var startMin, durationMin, endMin, position, detached int

	err := row.Scan(
		&item.ID, &item.TripID, &kind, &item.Title, &date,
		&startMin, &durationMin, &endMin, &position, &detached,
		&item.Note, &item.Location, &item.Area, &item.Category, &item.PhotoRef,
		&item.Goal, &item.OpeningHours, &item.MapURL,
		&item.Origin, &item.Destination, &mode, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, fmt.Errorf("schedule item: %w", ErrNotFound)
		}
		return nil, false, fmt.Errorf("scanning schedule item: %w", err)
	}

	item.Kind = domain.ItemKind(kind)
	item.Date = parseDate(date)
	item.Start = domain.TimeOfDay(startMin)
	item.Duration = domain.Duration(durationMin)
	item.End = domain.TimeOfDay(endMin)
	item.Mode = domain.TransitMode(mode)
	item.CreatedAt = parseTimestamp(createdAt)
	item.UpdatedAt = parseTimestamp(updatedAt)
	return &item, detached != 0, nil
}
