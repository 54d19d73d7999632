package domain

// Result of the exhaustive search: the simple path whose visited prefix
// accumulated the highest priority score within the budget.
type LeaderRoute struct {
	Route      []string
	TotalHours float64
	Score      float64
}

// Result of the single-visit greedy builder.
// Experiences counts the activities consumed along the route, including the start island's.
type Itinerary struct {
	Route       []string
	TotalHours  float64
	Experiences int
}

// Represents one activity consumed by the revisit-capable builder.
type TeachingEntry struct {
	Island        string
	ActivityIndex int
	Hours         float64
	StartedAt     float64
	Score         float64
}

// Result of the revisit-capable greedy builder.
// Route records every island the traveller stands on, in order; consecutive
// duplicates never occur because consuming an activity does not extend the route.
type TeachingRoute struct {
	Route      []string
	TotalHours float64
	Score      float64
	Log        []TeachingEntry
}

// Final quantities after pushing a resource down the shortest-path tree.
// Order lists every island for presentation: reachable ones by travel time,
// then unreachable ones.
type Distribution struct {
	Source      string
	Initial     float64
	Quantities  map[string]float64
	TravelTimes map[string]float64
	Order       []string
}

// Return the sum of all distributed quantities.
func (d *Distribution) Total() float64 {
	total := 0.0
	for _, id := range d.Order {
		total += d.Quantities[id]
	}
	return total
}
