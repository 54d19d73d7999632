package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"island-route-service/internal/domain"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type IslandSeed struct {
	ID         string     `json:"id" validate:"required"`
	Population float64    `json:"population" validate:"gt=0"`
	LastVisit  *time.Time `json:"last_visit" validate:"excluded_with=DaysSince"`
	DaysSince  *int       `json:"days_since" validate:"omitempty,gte=0"`
	Activities []float64  `json:"activities" validate:"omitempty,dive,gte=0"`
}

type RouteSeed struct {
	From          string  `json:"from" validate:"required"`
	To            string  `json:"to" validate:"required,nefield=From"`
	Hours         float64 `json:"hours" validate:"gte=0"`
	Bidirectional bool    `json:"bidirectional"`
}

// Dataset is the JSON interchange format for an island graph.
type Dataset struct {
	Islands []IslandSeed `json:"islands" validate:"dive"`
	Routes  []RouteSeed  `json:"routes" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseDataset decodes and validates a dataset. Unknown fields are rejected.
func ParseDataset(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("parse dataset: decode json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("parse dataset: body must contain only one JSON object")
	}

	for i := range ds.Islands {
		ds.Islands[i].ID = strings.TrimSpace(ds.Islands[i].ID)
	}
	for i := range ds.Routes {
		ds.Routes[i].From = strings.TrimSpace(ds.Routes[i].From)
		ds.Routes[i].To = strings.TrimSpace(ds.Routes[i].To)
	}

	if err := validate.Struct(&ds); err != nil {
		return nil, fmt.Errorf("parse dataset: validate: %w", err)
	}

	seen := make(map[string]struct{}, len(ds.Islands))
	for i, isl := range ds.Islands {
		if _, ok := seen[isl.ID]; ok {
			return nil, fmt.Errorf("parse dataset: duplicate island %q at index %d", isl.ID, i+1)
		}
		seen[isl.ID] = struct{}{}
	}

	return &ds, nil
}

// Convert seeds to domain islands. Days-since values are resolved against asOf;
// islands with neither a last visit nor days-since were visited at asOf.
func (d *Dataset) DomainIslands(asOf time.Time) []domain.Island {
	out := make([]domain.Island, 0, len(d.Islands))
	for _, s := range d.Islands {
		last := asOf
		switch {
		case s.LastVisit != nil:
			last = *s.LastVisit
		case s.DaysSince != nil:
			last = asOf.Add(-time.Duration(*s.DaysSince) * 24 * time.Hour)
		}

		var acts []float64
		if s.Activities != nil {
			acts = append([]float64{}, s.Activities...)
		}

		out = append(out, domain.Island{
			ID:         s.ID,
			Population: s.Population,
			LastVisit:  last,
			Activities: acts,
		})
	}
	return out
}

// Convert route seeds to directed edges, expanding bidirectional routes in place.
func (d *Dataset) DomainEdges() []domain.Edge {
	out := make([]domain.Edge, 0, 2*len(d.Routes))
	for _, r := range d.Routes {
		out = append(out, domain.Edge{From: r.From, To: r.To, Hours: r.Hours})
		if r.Bidirectional {
			out = append(out, domain.Edge{From: r.To, To: r.From, Hours: r.Hours})
		}
	}
	return out
}
