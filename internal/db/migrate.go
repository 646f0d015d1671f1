package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date   TEXT,
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','archived')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_items (
		id            TEXT PRIMARY KEY,
		trip_id       TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		kind          TEXT NOT NULL CHECK(kind IN ('spot','transit')),
		title         TEXT NOT NULL DEFAULT '',
		date          TEXT NOT NULL,
		start_min     INTEGER NOT NULL DEFAULT 0,
		duration_min  INTEGER NOT NULL DEFAULT 0 CHECK(duration_min >= 0),
		end_min       INTEGER NOT NULL DEFAULT 0,
		position      INTEGER NOT NULL DEFAULT 0,
		detached      INTEGER NOT NULL DEFAULT 0,
		note          TEXT NOT NULL DEFAULT '',
		location      TEXT NOT NULL DEFAULT '',
		area          TEXT NOT NULL DEFAULT '',
		category      TEXT NOT NULL DEFAULT '',
		photo_ref     TEXT NOT NULL DEFAULT '',
		goal          TEXT NOT NULL DEFAULT '',
		opening_hours TEXT NOT NULL DEFAULT '',
		map_url       TEXT NOT NULL DEFAULT '',
		origin        TEXT NOT NULL DEFAULT '',
		destination   TEXT NOT NULL DEFAULT '',
		mode          TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_items_trip ON schedule_items(trip_id, detached, position)`,

	`CREATE TABLE IF NOT EXISTS transit_legs (
		item_id   TEXT NOT NULL REFERENCES schedule_items(id) ON DELETE CASCADE,
		leg_index INTEGER NOT NULL,
		mode      TEXT NOT NULL DEFAULT '',
		line      TEXT NOT NULL DEFAULT '',
		board_at  TEXT NOT NULL DEFAULT '',
		alight_at TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (item_id, leg_index)
	)`,
}
