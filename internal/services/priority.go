package services

import (
	"island-route-service/internal/graph"
	"math"
	"time"
)

// Scorer computes island priority against a reference time fixed for the whole run.
type Scorer struct {
	store *graph.Store
	now   time.Time
}

func NewScorer(store *graph.Store, now time.Time) Scorer {
	return Scorer{store: store, now: now}
}

func (s Scorer) Now() time.Time { return s.now }

// Priority returns population × whole days since the last visit.
// Islands without metadata score zero.
func (s Scorer) Priority(id string) float64 {
	isl, ok := s.store.Island(id)
	if !ok || !s.store.Declared(id) {
		return 0
	}
	return isl.Population * float64(DaysSince(isl.LastVisit, s.now))
}

// DaysSince returns the number of whole days elapsed between last and now,
// rounding toward negative infinity.
func DaysSince(last, now time.Time) int {
	days := now.Sub(last).Hours() / 24
	return int(math.Floor(days))
}
