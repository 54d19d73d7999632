package services

import (
	"container/heap"
	"fmt"
	"island-route-service/internal/domain"
	"island-route-service/internal/graph"
)

// PathTree is the result of a single-source shortest-path run.
//
// Dist and Prev only contain reachable islands. Prev[source] is the empty string.
// Order lists reachable islands in the order they were first discovered, which
// keeps anything derived from the tree deterministic.
type PathTree struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
	Order  []string
}

// Return the travel time from the source to id and whether id is reachable.
func (p *PathTree) Distance(id string) (float64, bool) {
	d, ok := p.Dist[id]
	return d, ok
}

// Build parent -> children lists. Children appear in discovery order.
func (p *PathTree) Children() map[string][]string {
	children := make(map[string][]string, len(p.Order))
	for _, id := range p.Order {
		parent := p.Prev[id]
		if parent == "" {
			continue
		}
		children[parent] = append(children[parent], id)
	}
	return children
}

// ShortestPaths runs Dijkstra from source over the store.
//
// A candidate time is accepted only when strictly lower than the best known one,
// so among equal-cost paths the first discovered predecessor is kept.
// Weights are non-negative because the store rejects anything else.
func ShortestPaths(store *graph.Store, source string) (*PathTree, error) {
	if store == nil {
		return nil, fmt.Errorf("shortest paths: store is nil: %w", domain.ErrInvalidGraph)
	}
	if !store.Has(source) {
		return nil, fmt.Errorf("shortest paths: source %q: %w", source, domain.ErrUnknownLocation)
	}

	tree := &PathTree{
		Source: source,
		Dist:   map[string]float64{source: 0},
		Prev:   map[string]string{source: ""},
		Order:  []string{source},
	}

	pq := &travelQueue{}
	heap.Push(pq, travelItem{id: source, hours: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(travelItem)

		// Stale entry: a shorter time was recorded after this one was pushed.
		if item.hours > tree.Dist[item.id] {
			continue
		}

		for _, n := range store.Neighbors(item.id) {
			candidate := item.hours + n.Hours
			best, seen := tree.Dist[n.To]
			if seen && candidate >= best {
				continue
			}
			if !seen {
				tree.Order = append(tree.Order, n.To)
			}
			tree.Dist[n.To] = candidate
			tree.Prev[n.To] = item.id
			heap.Push(pq, travelItem{id: n.To, hours: candidate})
		}
	}

	return tree, nil
}

type travelItem struct {
	id    string
	hours float64
	seq   int
}

// travelQueue is a min-heap on hours; seq breaks ties in push order.
type travelQueue struct {
	items []travelItem
	next  int
}

func (q *travelQueue) Len() int { return len(q.items) }

func (q *travelQueue) Less(i, j int) bool {
	if q.items[i].hours != q.items[j].hours {
		return q.items[i].hours < q.items[j].hours
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *travelQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *travelQueue) Push(x any) {
	it := x.(travelItem)
	it.seq = q.next
	q.next++
	q.items = append(q.items, it)
}

func (q *travelQueue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}
