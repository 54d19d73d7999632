package ports

import (
	"context"
	"island-route-service/internal/domain"
)

// Port: a read-only boundary for loading the island graph from a data source.
type IslandRepository interface {
	// Retrieve all islands with their metadata and activities, in declaration order.
	ListIslands(ctx context.Context) ([]domain.Island, error)
	// Retrieve all directed travel legs, in declaration order.
	ListRoutes(ctx context.Context) ([]domain.Edge, error)
}
