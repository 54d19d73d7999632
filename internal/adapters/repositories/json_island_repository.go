package repositories

import (
	"context"
	"fmt"
	"island-route-service/internal/domain"
	"os"
	"time"
)

// JSON dataset file implementation of the IslandRepository port.
// The file is read on every call; AsOf resolves days-since values.
type JSONIslandRepository struct {
	Path string
	AsOf time.Time
}

func NewJSONIslandRepository(path string, asOf time.Time) *JSONIslandRepository {
	return &JSONIslandRepository{Path: path, AsOf: asOf}
}

func (j *JSONIslandRepository) load() (*Dataset, error) {
	f, err := os.Open(j.Path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", j.Path, err)
	}
	defer f.Close()

	ds, err := ParseDataset(f)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", j.Path, err)
	}
	return ds, nil
}

// Return all islands declared in the dataset file.
func (j *JSONIslandRepository) ListIslands(ctx context.Context) ([]domain.Island, error) {
	ds, err := j.load()
	if err != nil {
		return nil, fmt.Errorf("list islands: %w", err)
	}
	return ds.DomainIslands(j.AsOf), nil
}

// Return all directed routes declared in the dataset file.
func (j *JSONIslandRepository) ListRoutes(ctx context.Context) ([]domain.Edge, error) {
	ds, err := j.load()
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return ds.DomainEdges(), nil
}
