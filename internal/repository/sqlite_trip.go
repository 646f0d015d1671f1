package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jchau/itin/internal/domain"
)

const tripColumns = `id, name, start_date, end_date, status, created_at, updated_at`

// SQLiteTripRepo implements TripRepo using a SQLite database.
type SQLiteTripRepo struct {
	db *sql.DB
}

// NewSQLiteTripRepo creates a new SQLiteTripRepo.
func NewSQLiteTripRepo(db *sql.DB) *SQLiteTripRepo {
	return &SQLiteTripRepo{db: db}
}

func (r *SQLiteTripRepo) Create(ctx context.Context, t *domain.Trip) error {
	query := `INSERT INTO trips (` + tripColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.StartDate.Format(dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		string(t.Status),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return nil
}

func (r *SQLiteTripRepo) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = ?`
	return r.scanTrip(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTripRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips`
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY start_date, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		t, err := r.scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r *SQLiteTripRepo) Update(ctx context.Context, t *domain.Trip) error {
	query := `UPDATE trips SET name = ?, start_date = ?, end_date = ?, status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.StartDate.Format(dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		string(t.Status),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating trip: %w", err)
	}
	return requireRow(res, "trip")
}

func (r *SQLiteTripRepo) Archive(ctx context.Context, id string) error {
	query := `UPDATE trips SET status = 'archived', updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("archiving trip: %w", err)
	}
	return requireRow(res, "trip")
}

func (r *SQLiteTripRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	return requireRow(res, "trip")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *SQLiteTripRepo) scanTrip(row rowScanner) (*domain.Trip, error) {
	var t domain.Trip
	var startDate, createdAt, updatedAt, status string
	var endDate sql.NullString

	err := row.Scan(&t.ID, &t.Name, &startDate, &endDate, &status, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trip: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning trip: %w", err)
	}

	t.StartDate = parseDate(startDate)
	t.EndDate = parseNullableTime(endDate, dateLayout)
	t.Status = domain.TripStatus(status)
	t.CreatedAt = parseTimestamp(createdAt)
	t.UpdatedAt = parseTimestamp(updatedAt)
	return &t, nil
}

func requireRow(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
