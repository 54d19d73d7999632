package report

import (
	"island-route-service/internal/domain"
	"time"
)

type TripResponse struct {
	RunID        string                 `json:"run_id"`
	Now          time.Time              `json:"now"`
	Start        string                 `json:"start"`
	BudgetHours  *float64               `json:"budget_hours"`
	Leader       *LeaderRouteResponse   `json:"leader_route,omitempty"`
	Itinerary    *ItineraryResponse     `json:"itinerary,omitempty"`
	Teaching     *TeachingRouteResponse `json:"teaching_route,omitempty"`
	Distribution *DistributionResponse  `json:"distribution,omitempty"`
}

type LeaderRouteResponse struct {
	Route      []string `json:"route"`
	TotalHours float64  `json:"total_hours"`
	Score      float64  `json:"score"`
}

type ItineraryResponse struct {
	Route       []string `json:"route"`
	TotalHours  float64  `json:"total_hours"`
	Experiences int      `json:"experiences"`
}

type TeachingEntryResponse struct {
	Island        string  `json:"island"`
	ActivityIndex int     `json:"activity_index"`
	Hours         float64 `json:"hours"`
	StartedAt     float64 `json:"started_at"`
	Score         float64 `json:"score"`
}

type TeachingRouteResponse struct {
	Route      []string                `json:"route"`
	TotalHours float64                 `json:"total_hours"`
	Score      float64                 `json:"score"`
	Log        []TeachingEntryResponse `json:"log"`
}

// One island's share. TravelHours is null for islands the source cannot reach.
type AllocationResponse struct {
	Island      string   `json:"island"`
	TravelHours *float64 `json:"travel_hours"`
	Quantity    float64  `json:"quantity"`
}

type DistributionResponse struct {
	Source      string               `json:"source"`
	Initial     float64              `json:"initial"`
	Total       float64              `json:"total"`
	Allocations []AllocationResponse `json:"allocations"`
}

// FromDomain maps a trip report onto its wire representation.
func FromDomain(r *domain.TripReport) TripResponse {
	res := TripResponse{
		RunID: r.RunID,
		Now:   r.Now,
		Start: r.Start,
	}
	if r.Budget.Bounded {
		limit := r.Budget.Limit
		res.BudgetHours = &limit
	}

	if l := r.Leader; l != nil {
		res.Leader = &LeaderRouteResponse{Route: l.Route, TotalHours: l.TotalHours, Score: l.Score}
	}

	if it := r.Itinerary; it != nil {
		res.Itinerary = &ItineraryResponse{Route: it.Route, TotalHours: it.TotalHours, Experiences: it.Experiences}
	}

	if tr := r.Teaching; tr != nil {
		entries := make([]TeachingEntryResponse, 0, len(tr.Log))
		for _, e := range tr.Log {
			entries = append(entries, TeachingEntryResponse{
				Island:        e.Island,
				ActivityIndex: e.ActivityIndex,
				Hours:         e.Hours,
				StartedAt:     e.StartedAt,
				Score:         e.Score,
			})
		}
		res.Teaching = &TeachingRouteResponse{Route: tr.Route, TotalHours: tr.TotalHours, Score: tr.Score, Log: entries}
	}

	if d := r.Distribution; d != nil {
		allocs := make([]AllocationResponse, 0, len(d.Order))
		for _, id := range d.Order {
			a := AllocationResponse{Island: id, Quantity: d.Quantities[id]}
			if t, ok := d.TravelTimes[id]; ok {
				a.TravelHours = &t
			}
			allocs = append(allocs, a)
		}
		res.Distribution = &DistributionResponse{
			Source:      d.Source,
			Initial:     d.Initial,
			Total:       d.Total(),
			Allocations: allocs,
		}
	}

	return res
}
