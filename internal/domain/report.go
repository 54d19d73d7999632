package domain

import "time"

// Aggregated output of one planning run. Strategies that were not requested are nil.
type TripReport struct {
	RunID        string
	Now          time.Time
	Start        string
	Budget       Budget
	Leader       *LeaderRoute
	Itinerary    *Itinerary
	Teaching     *TeachingRoute
	Distribution *Distribution
}
