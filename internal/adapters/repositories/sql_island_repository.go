package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"island-route-service/internal/domain"
	"island-route-service/internal/platform/obs"
	"time"
)

// SQL-backed implementation of the IslandRepository port for SQLite and PostgreSQL.
type SQLIslandRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLIslandRepository(db *sql.DB, dialect Dialect) *SQLIslandRepository {
	return &SQLIslandRepository{DB: db, Dialect: dialect}
}

// Return all islands in declaration order, each with its ordered activities.
func (s *SQLIslandRepository) ListIslands(ctx context.Context) (_ []domain.Island, err error) {
	defer obs.Time(ctx, "islands.repo.ListIslands")(&err)

	if s.DB == nil {
		return nil, errors.New("sql island repository: DB is nil")
	}

	query := `
	SELECT
		id,
		population,
		last_visit,
		has_activities
	FROM islands
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list islands: query islands table: %w", err)
	}
	defer rows.Close()

	islands := make([]domain.Island, 0, 16)
	index := make(map[string]int)
	for rows.Next() {
		var (
			id         string
			population float64
			lastVisit  string
			hasActs    bool
		)
		if err := rows.Scan(&id, &population, &lastVisit, &hasActs); err != nil {
			return nil, fmt.Errorf("list islands: scan row: %w", err)
		}

		visited, err := time.Parse(time.RFC3339Nano, lastVisit)
		if err != nil {
			return nil, fmt.Errorf("list islands: island=%q last_visit=%q: %w", id, lastVisit, err)
		}

		isl := domain.Island{ID: id, Population: population, LastVisit: visited}
		if hasActs {
			isl.Activities = []float64{}
		}
		index[id] = len(islands)
		islands = append(islands, isl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list islands: row iteration: %w", err)
	}

	actRows, err := s.DB.QueryContext(ctx, `
	SELECT island_id, hours
	FROM activities
	ORDER BY island_id, position;
	`)
	if err != nil {
		return nil, fmt.Errorf("list islands: query activities table: %w", err)
	}
	defer actRows.Close()

	for actRows.Next() {
		var id string
		var hours float64
		if err := actRows.Scan(&id, &hours); err != nil {
			return nil, fmt.Errorf("list islands: scan activity row: %w", err)
		}

		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("list islands: activity references unknown island %q", id)
		}
		islands[i].Activities = append(islands[i].Activities, hours)
	}
	if err := actRows.Err(); err != nil {
		return nil, fmt.Errorf("list islands: activity row iteration: %w", err)
	}

	return islands, nil
}

// Return all directed routes in declaration order.
func (s *SQLIslandRepository) ListRoutes(ctx context.Context) (_ []domain.Edge, err error) {
	defer obs.Time(ctx, "islands.repo.ListRoutes")(&err)

	if s.DB == nil {
		return nil, errors.New("sql island repository: DB is nil")
	}

	query := `
	SELECT
		origin,
		destination,
		hours
	FROM routes
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, s.Dialect.Rebind(query))
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	edges := make([]domain.Edge, 0, 32)
	for rows.Next() {
		var e domain.Edge
		if err := rows.Scan(&e.From, &e.To, &e.Hours); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return edges, nil
}
