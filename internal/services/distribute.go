package services

import (
	"cmp"
	"fmt"
	"island-route-service/internal/domain"
	"island-route-service/internal/graph"
	"math"
	"slices"
)

// DistributeResources pushes quantity from source down the shortest-path tree.
//
// Islands are processed breadth-first from the source. An island with k children
// hands its whole holding to them in k equal shares; a leaf keeps what it received.
// Every island in the store appears in the result, unreachable ones with zero, so the
// total is conserved.
func DistributeResources(store *graph.Store, source string, quantity float64) (*domain.Distribution, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 0 {
		return nil, fmt.Errorf("distribute resources: quantity=%v: %w", quantity, domain.ErrInvalidQuantity)
	}

	tree, err := ShortestPaths(store, source)
	if err != nil {
		return nil, fmt.Errorf("distribute resources: %w", err)
	}

	islands := store.Islands()
	held := make(map[string]float64, len(islands))
	for _, id := range islands {
		held[id] = 0
	}
	held[source] = quantity

	children := tree.Children()
	queue := []string{source}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		receivers := children[id]
		if len(receivers) == 0 {
			continue
		}

		share := held[id] / float64(len(receivers))
		held[id] = 0
		for _, child := range receivers {
			held[child] += share
			queue = append(queue, child)
		}
	}

	return &domain.Distribution{
		Source:      source,
		Initial:     quantity,
		Quantities:  held,
		TravelTimes: tree.Dist,
		Order:       presentationOrder(islands, tree.Dist),
	}, nil
}

// presentationOrder sorts reachable islands by travel time, then unreachable ones, ties by id.
func presentationOrder(islands []string, dist map[string]float64) []string {
	order := slices.Clone(islands)
	slices.SortFunc(order, func(a, b string) int {
		da, okA := dist[a]
		db, okB := dist[b]
		if okA != okB {
			if okA {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(da, db); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return order
}
