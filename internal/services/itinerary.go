package services

import (
	"fmt"
	"island-route-service/internal/domain"
	"island-route-service/internal/graph"
	"math"
)

// BestItinerary builds a single-visit route greedily by experiences per hour.
//
// The start island's activities are consumed before the loop regardless of the
// budget. Each step recomputes shortest paths from the current island, then picks
// the unvisited, reachable activity island with the highest
// count / (travel + activity time) that still fits the budget. The first island in
// insertion order wins ties. The route ends when no island qualifies.
func BestItinerary(store *graph.Store, start string, budget domain.Budget) (*domain.Itinerary, error) {
	if store == nil {
		return nil, fmt.Errorf("best itinerary: store is nil: %w", domain.ErrInvalidGraph)
	}
	if !store.Has(start) {
		return nil, fmt.Errorf("best itinerary: start %q: %w", start, domain.ErrUnknownLocation)
	}

	startActs := store.Activities(start)
	it := &domain.Itinerary{
		Route:       []string{start},
		TotalHours:  sumHours(startActs),
		Experiences: len(startActs),
	}
	visited := map[string]bool{start: true}
	candidates := store.ActivityIslands()

	for {
		current := it.Route[len(it.Route)-1]
		tree, err := ShortestPaths(store, current)
		if err != nil {
			return nil, fmt.Errorf("best itinerary: from %q: %w", current, err)
		}

		var bestIsland string
		bestRatio := -1.0

		for _, isl := range candidates {
			if visited[isl] {
				continue
			}
			travel, ok := tree.Distance(isl)
			if !ok {
				continue
			}

			acts := store.Activities(isl)
			cost := travel + sumHours(acts)
			if !budget.Allows(it.TotalHours + cost) {
				continue
			}

			// Select by experiences gained per hour spent (greedy step).
			r := ratio(len(acts), cost)
			if r > bestRatio {
				bestRatio = r
				bestIsland = isl
			}
		}

		if bestIsland == "" {
			break
		}

		travel, _ := tree.Distance(bestIsland)
		acts := store.Activities(bestIsland)
		it.TotalHours += travel + sumHours(acts)
		it.Experiences += len(acts)
		it.Route = append(it.Route, bestIsland)
		visited[bestIsland] = true
	}

	return it, nil
}

// ratio treats a zero-cost island as infinitely attractive when it offers anything.
func ratio(gain int, cost float64) float64 {
	if cost <= 0 {
		if gain > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(gain) / cost
}

func sumHours(hours []float64) float64 {
	total := 0.0
	for _, h := range hours {
		total += h
	}
	return total
}
