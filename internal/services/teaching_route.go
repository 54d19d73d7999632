package services

import (
	"cmp"
	"fmt"
	"island-route-service/internal/domain"
	"island-route-service/internal/graph"
	"slices"
)

// TeachingRoute walks the graph consuming activities one at a time and may revisit islands.
//
// While the next unconsumed activity of the current island fits the budget it is
// consumed in place, adding the island's priority to the score. Otherwise the walker
// moves along the outgoing edge whose target has the highest priority among those it
// can afford; equal priorities keep edge order. Each island's activities are drained
// in order and never replenished.
//
// The walk stops when nothing can be consumed and no move is affordable. With an
// unbounded budget it also stops after as many consecutive moves without consuming
// anything as there are islands in the store. With a bounded budget it also stops
// when a move would return to an island at an elapsed time already seen since the
// last consumed activity, which only zero-hour cycles can produce.
func TeachingRoute(
	store *graph.Store,
	scorer Scorer,
	start string,
	budget domain.Budget,
) (*domain.TeachingRoute, error) {
	if store == nil {
		return nil, fmt.Errorf("teaching route: store is nil: %w", domain.ErrInvalidGraph)
	}
	if !store.Has(start) {
		return nil, fmt.Errorf("teaching route: start %q: %w", start, domain.ErrUnknownLocation)
	}

	res := &domain.TeachingRoute{Route: []string{start}}
	consumed := make(map[string]int)
	current := start
	idleMoves := 0
	maxIdle := store.Len()
	seen := map[walkState]bool{{island: start}: true}

	for {
		acts := store.Activities(current)
		if next := consumed[current]; next < len(acts) && budget.Allows(res.TotalHours+acts[next]) {
			gain := scorer.Priority(current)
			res.Log = append(res.Log, domain.TeachingEntry{
				Island:        current,
				ActivityIndex: next,
				Hours:         acts[next],
				StartedAt:     res.TotalHours,
				Score:         gain,
			})
			res.TotalHours += acts[next]
			res.Score += gain
			consumed[current] = next + 1
			idleMoves = 0
			clear(seen)
			seen[walkState{island: current, elapsed: res.TotalHours}] = true
			continue
		}

		if !budget.Bounded && idleMoves >= maxIdle {
			break
		}

		move, ok := nextMove(store, scorer, current, res.TotalHours, budget)
		if !ok {
			break
		}

		arrival := walkState{island: move.To, elapsed: res.TotalHours + move.Hours}
		if budget.Bounded {
			if seen[arrival] {
				break
			}
			seen[arrival] = true
		}

		res.TotalHours = arrival.elapsed
		res.Route = append(res.Route, move.To)
		current = move.To
		idleMoves++
	}

	return res, nil
}

// walkState identifies a position of the walker between two consumed activities.
type walkState struct {
	island  string
	elapsed float64
}

// nextMove ranks the outgoing edges of current by descending target priority and
// returns the first one that fits the budget.
func nextMove(
	store *graph.Store,
	scorer Scorer,
	current string,
	elapsed float64,
	budget domain.Budget,
) (domain.Neighbor, bool) {
	ranked := slices.Clone(store.Neighbors(current))
	slices.SortStableFunc(ranked, func(a, b domain.Neighbor) int {
		return cmp.Compare(scorer.Priority(b.To), scorer.Priority(a.To))
	})

	for _, n := range ranked {
		if budget.Allows(elapsed + n.Hours) {
			return n, true
		}
	}
	return domain.Neighbor{}, false
}
