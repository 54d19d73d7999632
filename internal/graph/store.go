package graph

import (
	"fmt"
	"island-route-service/internal/domain"
	"math"
	"strings"
)

// Store is an immutable directed travel graph with per-island metadata.
//
// It is built once per planning run and only read afterwards, so a single
// Store may be shared by concurrent planning calls.
type Store struct {
	islands   map[string]domain.Island
	declared  map[string]bool
	adjacency map[string][]domain.Neighbor
	order     []string
	withActs  []string
	edgeCount int
}

// NewStore validates islands and edges and builds a Store.
//
// Islands are kept in the order given; edge endpoints that were not declared are
// appended in first-seen order with no metadata. Duplicate island ids, empty ids,
// self-loops, negative or non-finite weights and durations, and populations that are
// not finite and positive fail with ErrInvalidGraph.
func NewStore(islands []domain.Island, edges []domain.Edge) (*Store, error) {
	s := &Store{
		islands:   make(map[string]domain.Island, len(islands)),
		declared:  make(map[string]bool, len(islands)),
		adjacency: make(map[string][]domain.Neighbor),
	}

	for i, isl := range islands {
		id := strings.TrimSpace(isl.ID)
		if id == "" {
			return nil, fmt.Errorf("new store: island at index %d: empty id: %w", i, domain.ErrInvalidGraph)
		}
		if s.declared[id] {
			return nil, fmt.Errorf("new store: duplicate island %q: %w", id, domain.ErrInvalidGraph)
		}
		if math.IsNaN(isl.Population) || math.IsInf(isl.Population, 0) || isl.Population <= 0 {
			return nil, fmt.Errorf("new store: island %q population=%v: %w", id, isl.Population, domain.ErrInvalidGraph)
		}

		var acts []float64
		if isl.Activities != nil {
			acts = make([]float64, len(isl.Activities))
			for j, a := range isl.Activities {
				if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
					return nil, fmt.Errorf("new store: island %q activity #%d duration=%v: %w", id, j+1, a, domain.ErrInvalidGraph)
				}
				acts[j] = a
			}
			s.withActs = append(s.withActs, id)
		}

		isl.ID = id
		isl.Activities = acts
		s.islands[id] = isl
		s.declared[id] = true
		s.order = append(s.order, id)
	}

	for i, e := range edges {
		from := strings.TrimSpace(e.From)
		to := strings.TrimSpace(e.To)
		if from == "" || to == "" {
			return nil, fmt.Errorf("new store: edge #%d has empty endpoint: %w", i+1, domain.ErrInvalidGraph)
		}
		if from == to {
			return nil, fmt.Errorf("new store: self-loop on %q: %w", from, domain.ErrInvalidGraph)
		}
		if math.IsNaN(e.Hours) || math.IsInf(e.Hours, 0) || e.Hours < 0 {
			return nil, fmt.Errorf("new store: edge %s->%s weight=%v: %w", from, to, e.Hours, domain.ErrInvalidGraph)
		}

		s.ensure(from)
		s.ensure(to)
		s.adjacency[from] = append(s.adjacency[from], domain.Neighbor{To: to, Hours: e.Hours})
		s.edgeCount++
	}

	return s, nil
}

func (s *Store) ensure(id string) {
	if _, ok := s.islands[id]; ok {
		return
	}
	s.islands[id] = domain.Island{ID: id}
	s.order = append(s.order, id)
}

// Report whether the island appears in the store, as a declared island or an edge endpoint.
func (s *Store) Has(id string) bool {
	_, ok := s.islands[id]
	return ok
}

// Return the outgoing edges of id in insertion order. Unknown islands and
// islands without outgoing edges yield an empty slice. The slice is shared and
// must not be modified.
func (s *Store) Neighbors(id string) []domain.Neighbor {
	return s.adjacency[id]
}

// Return the activity durations of id, or nil when none are defined.
// The slice is shared and must not be modified.
func (s *Store) Activities(id string) []float64 {
	return s.islands[id].Activities
}

func (s *Store) Island(id string) (domain.Island, bool) {
	isl, ok := s.islands[id]
	return isl, ok
}

// Report whether id was declared with metadata rather than only seen on an edge.
func (s *Store) Declared(id string) bool {
	return s.declared[id]
}

// Return every island id in first-seen order.
func (s *Store) Islands() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Return the ids whose activity list is defined (possibly empty), in insertion order.
func (s *Store) ActivityIslands() []string {
	out := make([]string, len(s.withActs))
	copy(out, s.withActs)
	return out
}

func (s *Store) Len() int { return len(s.order) }

func (s *Store) EdgeCount() int { return s.edgeCount }

// Return every edge in insertion order grouped by origin.
func (s *Store) Edges() []domain.Edge {
	out := make([]domain.Edge, 0, s.edgeCount)
	for _, from := range s.order {
		for _, n := range s.adjacency[from] {
			out = append(out, domain.Edge{From: from, To: n.To, Hours: n.Hours})
		}
	}
	return out
}
