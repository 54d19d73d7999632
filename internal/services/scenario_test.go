package services

import (
	"island-route-service/internal/domain"
	"island-route-service/internal/graph"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

const (
	hawaii = "Hawai'i"
	tahiti = "Tahiti"
	samoa  = "Samoa"
	fiji   = "Fiji"
)

func daysAgo(days int) time.Time {
	return refNow.Add(-time.Duration(days) * 24 * time.Hour)
}

func both(a, b string, hours float64) []domain.Edge {
	return []domain.Edge{{From: a, To: b, Hours: hours}, {From: b, To: a, Hours: hours}}
}

// polynesia builds the four-island sample graph used throughout the tests.
func polynesia(t *testing.T) (*graph.Store, Scorer) {
	t.Helper()

	islands := []domain.Island{
		{ID: hawaii, Population: 1200, LastVisit: daysAgo(12), Activities: []float64{1.0, 0.75}},
		{ID: tahiti, Population: 1000, LastVisit: daysAgo(20), Activities: []float64{1.5}},
		{ID: samoa, Population: 800, LastVisit: daysAgo(5), Activities: []float64{0.5, 1.0}},
		{ID: fiji, Population: 1500, LastVisit: daysAgo(30), Activities: []float64{0.75, 0.75, 0.5}},
	}

	var edges []domain.Edge
	edges = append(edges, both(hawaii, tahiti, 7)...)
	edges = append(edges, both(tahiti, samoa, 6)...)
	edges = append(edges, both(tahiti, fiji, 4)...)
	edges = append(edges, both(samoa, fiji, 2.5)...)

	store, err := graph.NewStore(islands, edges)
	require.NoError(t, err)
	return store, NewScorer(store, refNow)
}

func mustBudget(t *testing.T, hours float64) domain.Budget {
	t.Helper()

	b, err := domain.Hours(hours)
	require.NoError(t, err)
	return b
}

func mustStore(t *testing.T, islands []domain.Island, edges []domain.Edge) *graph.Store {
	t.Helper()

	s, err := graph.NewStore(islands, edges)
	require.NoError(t, err)
	return s
}
