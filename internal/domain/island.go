package domain

import "time"

// Represents a single location ("island") in the travel graph.
// Activities holds the durations (hours) of the experiences offered there, in the
// order they are consumed. A nil Activities slice means no activities are defined;
// an empty non-nil slice means the island is defined as an activity location with none.
type Island struct {
	ID         string
	Population float64
	LastVisit  time.Time
	Activities []float64
}
