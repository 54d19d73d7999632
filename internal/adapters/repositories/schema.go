package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"
)

// Initialize the island schema. The DDL is shared by SQLite and PostgreSQL.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createIslandsQuery := `
	CREATE TABLE IF NOT EXISTS islands (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		population DOUBLE PRECISION NOT NULL,
		last_visit TEXT NOT NULL,
		has_activities BOOLEAN NOT NULL
	);
	`

	createActivitiesQuery := `
	CREATE TABLE IF NOT EXISTS activities (
		island_id TEXT NOT NULL REFERENCES islands(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		hours DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (island_id, position)
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		position INTEGER PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		hours DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_routes_origin
	ON routes(origin);
	`

	statements := []string{
		createIslandsQuery,
		createActivitiesQuery,
		createRoutesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored dataset with the contents of a JSON dataset file.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string, asOf time.Time) error {
	f, err := os.Open(jsonPath)
	if err != nil {
		return fmt.Errorf("seed islands: read %q: %w", jsonPath, err)
	}
	defer f.Close()

	ds, err := ParseDataset(f)
	if err != nil {
		return fmt.Errorf("seed islands: %w", err)
	}

	return SeedDataset(ctx, db, dialect, ds, asOf)
}

// Replace the stored dataset in a single transaction. Declaration order is kept
// in the position columns.
func SeedDataset(ctx context.Context, db *sql.DB, dialect Dialect, ds *Dataset, asOf time.Time) error {
	if db == nil {
		return errors.New("seed islands: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed islands: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"activities", "routes", "islands"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("seed islands: clear %s: %w", table, err)
		}
	}

	islandStmt, err := tx.PrepareContext(ctx, dialect.Rebind(`
	INSERT INTO islands (
		id,
		position,
		population,
		last_visit,
		has_activities
	)
	VALUES (?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed islands: prepare island insert: %w", err)
	}
	defer islandStmt.Close()

	activityStmt, err := tx.PrepareContext(ctx, dialect.Rebind(`
	INSERT INTO activities (island_id, position, hours)
	VALUES (?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed islands: prepare activity insert: %w", err)
	}
	defer activityStmt.Close()

	for i, isl := range ds.DomainIslands(asOf) {
		lastVisit := isl.LastVisit.UTC().Format(time.RFC3339Nano)
		if _, err := islandStmt.ExecContext(ctx, isl.ID, i, isl.Population, lastVisit, isl.Activities != nil); err != nil {
			return fmt.Errorf("seed islands: insert island=%q: %w", isl.ID, err)
		}
		for j, hours := range isl.Activities {
			if _, err := activityStmt.ExecContext(ctx, isl.ID, j, hours); err != nil {
				return fmt.Errorf("seed islands: insert activity island=%q #%d: %w", isl.ID, j+1, err)
			}
		}
	}

	routeStmt, err := tx.PrepareContext(ctx, dialect.Rebind(`
	INSERT INTO routes (position, origin, destination, hours)
	VALUES (?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed islands: prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	for i, e := range ds.DomainEdges() {
		if _, err := routeStmt.ExecContext(ctx, i, e.From, e.To, e.Hours); err != nil {
			return fmt.Errorf("seed islands: insert route %s->%s: %w", e.From, e.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed islands: commit tx: %w", err)
	}

	return nil
}
