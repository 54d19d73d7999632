package services

import (
	"context"
	"fmt"
	"island-route-service/internal/domain"
	"island-route-service/internal/graph"
	"island-route-service/internal/platform/obs"
	"island-route-service/internal/ports"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Strategy string

const (
	StrategyLeader     Strategy = "leader"
	StrategyItinerary  Strategy = "itinerary"
	StrategyTeaching   Strategy = "teaching"
	StrategyDistribute Strategy = "distribute"
)

// AllStrategies lists every strategy in report order.
var AllStrategies = []Strategy{StrategyLeader, StrategyItinerary, StrategyTeaching, StrategyDistribute}

// Expand a strategy name; "all" selects every strategy.
func ParseStrategies(name string) ([]Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "all" || name == "" {
		return AllStrategies, nil
	}
	for _, s := range AllStrategies {
		if string(s) == name {
			return []Strategy{s}, nil
		}
	}
	return nil, fmt.Errorf("parse strategies: unknown strategy %q", name)
}

type PlanTripRequest struct {
	Start      string
	Budget     domain.Budget
	Now        time.Time
	Strategies []Strategy

	// Distribution inputs. An empty source falls back to Start.
	DistributionSource string
	Quantity           float64
}

// LoadStore reads islands and routes through the repository port and builds the graph store.
func LoadStore(ctx context.Context, repo ports.IslandRepository) (_ *graph.Store, err error) {
	defer obs.Time(ctx, "plan.LoadStore")(&err)

	islands, err := repo.ListIslands(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: list islands: %w", err)
	}

	routes, err := repo.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: list routes: %w", err)
	}

	store, err := graph.NewStore(islands, routes)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	return store, nil
}

// PlanTrip loads the graph once and runs the requested strategies against it.
//
// The reference time is fixed for the whole run (req.Now, or the wall clock when zero)
// so every strategy scores islands identically. Strategies run concurrently; each owns
// its own visited sets, cursors and totals, and the store is only read. The first
// failure is returned and no partial report is produced.
func PlanTrip(ctx context.Context, req PlanTripRequest, repo ports.IslandRepository) (_ *domain.TripReport, err error) {
	runID := uuid.NewString()
	ctx = obs.WithRunID(ctx, runID)
	defer obs.Time(ctx, "plan.PlanTrip")(&err)

	if strings.TrimSpace(req.Start) == "" && needsStart(req.Strategies) {
		return nil, fmt.Errorf("plan trip: start must be non-empty: %w", domain.ErrUnknownLocation)
	}

	store, err := LoadStore(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	scorer := NewScorer(store, now)

	report := &domain.TripReport{
		RunID:  runID,
		Now:    scorer.Now(),
		Start:  req.Start,
		Budget: req.Budget,
	}

	slog.InfoContext(ctx, "planning trip",
		"run_id", runID,
		"start", req.Start,
		"budget", req.Budget.String(),
		"islands", store.Len(),
		"routes", store.EdgeCount(),
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range req.Strategies {
		g.Go(func() (err error) {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer obs.Time(gctx, "plan."+string(s))(&err)

			switch s {
			case StrategyLeader:
				r, err := PrioritizedLeaderRoute(store, scorer, req.Start, req.Budget)
				if err != nil {
					return err
				}
				report.Leader = r
				slog.InfoContext(gctx, "leader route planned", "run_id", runID, "stops", len(r.Route), "hours", r.TotalHours, "score", r.Score)
			case StrategyItinerary:
				r, err := BestItinerary(store, req.Start, req.Budget)
				if err != nil {
					return err
				}
				report.Itinerary = r
				slog.InfoContext(gctx, "itinerary planned", "run_id", runID, "stops", len(r.Route), "hours", r.TotalHours, "experiences", r.Experiences)
			case StrategyTeaching:
				r, err := TeachingRoute(store, scorer, req.Start, req.Budget)
				if err != nil {
					return err
				}
				report.Teaching = r
				slog.InfoContext(gctx, "teaching route planned", "run_id", runID, "moves", len(r.Route)-1, "lessons", len(r.Log), "score", r.Score)
			case StrategyDistribute:
				source := req.DistributionSource
				if source == "" {
					source = req.Start
				}
				r, err := DistributeResources(store, source, req.Quantity)
				if err != nil {
					return err
				}
				report.Distribution = r
				slog.InfoContext(gctx, "resources distributed", "run_id", runID, "source", source, "total", r.Total())
			default:
				return fmt.Errorf("unknown strategy %q", s)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	return report, nil
}

func needsStart(strategies []Strategy) bool {
	for _, s := range strategies {
		if s != StrategyDistribute {
			return true
		}
	}
	return false
}
