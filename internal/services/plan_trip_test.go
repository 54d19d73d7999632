package services

import (
	"context"
	"errors"
	"island-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIslandRepo struct {
	islands    []domain.Island
	routes     []domain.Edge
	islandsErr error
	routesErr  error
}

func (f *fakeIslandRepo) ListIslands(ctx context.Context) ([]domain.Island, error) {
	return f.islands, f.islandsErr
}

func (f *fakeIslandRepo) ListRoutes(ctx context.Context) ([]domain.Edge, error) {
	return f.routes, f.routesErr
}

func polynesiaRepo(t *testing.T) *fakeIslandRepo {
	t.Helper()

	store, _ := polynesia(t)
	repo := &fakeIslandRepo{routes: store.Edges()}
	for _, id := range store.Islands() {
		isl, _ := store.Island(id)
		repo.islands = append(repo.islands, isl)
	}
	return repo
}

func TestPlanTripAllStrategies(t *testing.T) {
	repo := polynesiaRepo(t)

	report, err := PlanTrip(context.Background(), PlanTripRequest{
		Start:      hawaii,
		Budget:     mustBudget(t, 30),
		Now:        refNow,
		Strategies: AllStrategies,
		Quantity:   100,
	}, repo)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, refNow, report.Now)
	assert.Equal(t, hawaii, report.Start)

	require.NotNil(t, report.Leader)
	assert.Equal(t, []string{hawaii, tahiti, fiji, samoa}, report.Leader.Route)
	assert.Equal(t, 83400.0, report.Leader.Score)

	require.NotNil(t, report.Itinerary)
	assert.Equal(t, []string{hawaii, fiji, samoa, tahiti}, report.Itinerary.Route)

	require.NotNil(t, report.Teaching)
	assert.Equal(t, 183800.0, report.Teaching.Score)

	require.NotNil(t, report.Distribution)
	assert.Equal(t, hawaii, report.Distribution.Source)
	assert.Equal(t, 100.0, report.Distribution.Total())
}

func TestPlanTripSingleStrategy(t *testing.T) {
	repo := polynesiaRepo(t)

	report, err := PlanTrip(context.Background(), PlanTripRequest{
		Start:              hawaii,
		Now:                refNow,
		Strategies:         []Strategy{StrategyDistribute},
		DistributionSource: fiji,
		Quantity:           10,
	}, repo)
	require.NoError(t, err)

	assert.Nil(t, report.Leader)
	assert.Nil(t, report.Itinerary)
	assert.Nil(t, report.Teaching)
	require.NotNil(t, report.Distribution)
	assert.Equal(t, fiji, report.Distribution.Source)
}

func TestPlanTripErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("islands error", func(t *testing.T) {
		_, err := PlanTrip(context.Background(), PlanTripRequest{Start: "A", Strategies: AllStrategies}, &fakeIslandRepo{islandsErr: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("routes error", func(t *testing.T) {
		_, err := PlanTrip(context.Background(), PlanTripRequest{Start: "A", Strategies: AllStrategies}, &fakeIslandRepo{routesErr: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty start", func(t *testing.T) {
		_, err := PlanTrip(context.Background(), PlanTripRequest{Start: " ", Strategies: AllStrategies}, polynesiaRepo(t))
		assert.ErrorIs(t, err, domain.ErrUnknownLocation)
	})

	t.Run("unknown start", func(t *testing.T) {
		_, err := PlanTrip(context.Background(), PlanTripRequest{Start: "Atlantis", Strategies: []Strategy{StrategyLeader}}, polynesiaRepo(t))
		assert.ErrorIs(t, err, domain.ErrUnknownLocation)
	})

	t.Run("invalid graph", func(t *testing.T) {
		repo := &fakeIslandRepo{routes: []domain.Edge{{From: "A", To: "B", Hours: -1}}}
		_, err := PlanTrip(context.Background(), PlanTripRequest{Start: "A", Strategies: AllStrategies}, repo)
		assert.ErrorIs(t, err, domain.ErrInvalidGraph)
	})

	t.Run("bad quantity", func(t *testing.T) {
		_, err := PlanTrip(context.Background(), PlanTripRequest{Start: hawaii, Strategies: AllStrategies, Quantity: -5}, polynesiaRepo(t))
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})
}

func TestParseStrategies(t *testing.T) {
	got, err := ParseStrategies("all")
	require.NoError(t, err)
	assert.Equal(t, AllStrategies, got)

	got, err = ParseStrategies("")
	require.NoError(t, err)
	assert.Equal(t, AllStrategies, got)

	got, err = ParseStrategies(" Teaching ")
	require.NoError(t, err)
	assert.Equal(t, []Strategy{StrategyTeaching}, got)

	_, err = ParseStrategies("fastest")
	assert.Error(t, err)
}
