package domain

import (
	"fmt"
	"math"
)

// Time budget for a planning run, in hours.
// The zero value is unbounded.
type Budget struct {
	Limit   float64
	Bounded bool
}

func Unbounded() Budget { return Budget{} }

// Create a bounded budget. Negative or NaN limits are rejected.
func Hours(limit float64) (Budget, error) {
	if math.IsNaN(limit) || limit < 0 {
		return Budget{}, fmt.Errorf("budget: limit must be non-negative, got %v", limit)
	}
	if math.IsInf(limit, 1) {
		return Unbounded(), nil
	}
	return Budget{Limit: limit, Bounded: true}, nil
}

// Report whether total elapsed hours t stays within the budget.
func (b Budget) Allows(t float64) bool {
	return !b.Bounded || t <= b.Limit
}

func (b Budget) String() string {
	if !b.Bounded {
		return "unbounded"
	}
	return fmt.Sprintf("%.2fh", b.Limit)
}
