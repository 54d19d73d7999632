package services

import (
	"fmt"
	"island-route-service/internal/domain"
	"island-route-service/internal/graph"
	"slices"
)

// searchFrame is one pending node of the depth-first search. Each frame owns its
// route prefix, so sibling branches never share visited state.
type searchFrame struct {
	island  string
	elapsed float64
	score   float64
	route   []string
}

// PrioritizedLeaderRoute explores every simple path from start that fits the budget
// and returns the visited prefix with the highest accumulated priority score.
//
// On arrival at an island its activities are taken in listed order while they fit,
// stopping at the first one that does not; then the island's priority is added.
// A higher score wins; equal scores prefer less elapsed time; remaining ties keep the
// first candidate found. Neighbors are explored in edge order, so results are
// reproducible. The search is exponential in graph size and meant for small graphs.
func PrioritizedLeaderRoute(
	store *graph.Store,
	scorer Scorer,
	start string,
	budget domain.Budget,
) (*domain.LeaderRoute, error) {
	if store == nil {
		return nil, fmt.Errorf("leader route: store is nil: %w", domain.ErrInvalidGraph)
	}
	if !store.Has(start) {
		return nil, fmt.Errorf("leader route: start %q: %w", start, domain.ErrUnknownLocation)
	}

	var best *domain.LeaderRoute

	stack := []searchFrame{{island: start, route: []string{start}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		elapsed := f.elapsed
		for _, hours := range store.Activities(f.island) {
			if !budget.Allows(elapsed + hours) {
				break
			}
			elapsed += hours
		}
		score := f.score + scorer.Priority(f.island)

		if best == nil || score > best.Score || (score == best.Score && elapsed < best.TotalHours) {
			best = &domain.LeaderRoute{Route: f.route, TotalHours: elapsed, Score: score}
		}

		// Push in reverse so neighbors are explored in edge order.
		nbrs := store.Neighbors(f.island)
		for i := len(nbrs) - 1; i >= 0; i-- {
			n := nbrs[i]
			if slices.Contains(f.route, n.To) || !budget.Allows(elapsed+n.Hours) {
				continue
			}

			route := make([]string, len(f.route), len(f.route)+1)
			copy(route, f.route)
			stack = append(stack, searchFrame{
				island:  n.To,
				elapsed: elapsed + n.Hours,
				score:   score,
				route:   append(route, n.To),
			})
		}
	}

	return best, nil
}
