package repositories

import (
	"context"
	"island-route-service/internal/domain"
	"island-route-service/internal/platform/db"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONIslandRepository(t *testing.T) {
	repo := NewJSONIslandRepository("testdata/polynesia.json", asOf)

	islands, err := repo.ListIslands(context.Background())
	require.NoError(t, err)
	require.Len(t, islands, 4)
	assert.Equal(t, "Fiji", islands[3].ID)

	routes, err := repo.ListRoutes(context.Background())
	require.NoError(t, err)
	assert.Len(t, routes, 8)
}

func TestJSONIslandRepositoryMissingFile(t *testing.T) {
	repo := NewJSONIslandRepository(filepath.Join(t.TempDir(), "absent.json"), asOf)

	_, err := repo.ListIslands(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSQLIslandRepositoryRoundTripSqlite(t *testing.T) {
	ctx := context.Background()

	conn, err := db.OpenSqlite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitSchema(ctx, conn))
	require.NoError(t, SeedFromJSON(ctx, conn, DialectSqlite, "testdata/polynesia.json", asOf))

	repo := NewSQLIslandRepository(conn, DialectSqlite)

	islands, err := repo.ListIslands(ctx)
	require.NoError(t, err)
	assert.Equal(t, loadTestdata(t).DomainIslands(asOf), islands)

	routes, err := repo.ListRoutes(ctx)
	require.NoError(t, err)
	assert.Equal(t, loadTestdata(t).DomainEdges(), routes)
}

func TestSeedDatasetReplacesPreviousData(t *testing.T) {
	ctx := context.Background()

	conn, err := db.OpenSqlite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitSchema(ctx, conn))
	require.NoError(t, SeedFromJSON(ctx, conn, DialectSqlite, "testdata/polynesia.json", asOf))

	days := 3
	small := &Dataset{
		Islands: []IslandSeed{
			{ID: "Niue", Population: 50, DaysSince: &days, Activities: []float64{}},
			{ID: "Tonga", Population: 70},
		},
		Routes: []RouteSeed{{From: "Niue", To: "Tonga", Hours: 3.5}},
	}
	require.NoError(t, SeedDataset(ctx, conn, DialectSqlite, small, asOf))

	repo := NewSQLIslandRepository(conn, DialectSqlite)
	islands, err := repo.ListIslands(ctx)
	require.NoError(t, err)
	require.Len(t, islands, 2)
	assert.NotNil(t, islands[0].Activities)
	assert.Empty(t, islands[0].Activities)
	assert.Nil(t, islands[1].Activities)

	routes, err := repo.ListRoutes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Edge{{From: "Niue", To: "Tonga", Hours: 3.5}}, routes)
}

func TestSQLIslandRepositoryNilDB(t *testing.T) {
	repo := NewSQLIslandRepository(nil, DialectSqlite)

	_, err := repo.ListIslands(context.Background())
	assert.Error(t, err)
	_, err = repo.ListRoutes(context.Background())
	assert.Error(t, err)
}
