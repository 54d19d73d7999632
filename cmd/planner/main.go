package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"island-route-service/internal/adapters/repositories"
	"island-route-service/internal/config"
	"island-route-service/internal/domain"
	"island-route-service/internal/platform/db"
	"island-route-service/internal/platform/logging"
	"island-route-service/internal/ports"
	"island-route-service/internal/report"
	"island-route-service/internal/services"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
)

// main is the composition root: it resolves configuration, wires the island
// repository for the configured source and prints the trip report.
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("planner failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(stderr, "No .env file found (using environment variables)")
	}

	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", config.Get("PLANNER_CONFIG", ""), "path to a YAML config file")
		strategy   = fs.String("strategy", "", "leader|itinerary|teaching|distribute|all")
		start      = fs.String("start", "", "start island")
		budget     = fs.Float64("budget", 0, "time budget in hours; negative means unbounded")
		source     = fs.String("source", "", "distribution source island (defaults to -start)")
		quantity   = fs.Float64("quantity", 0, "quantity to distribute")
		format     = fs.String("format", "text", "report format: text|json")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	// Flags override the file and environment only when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			cfg.Plan.Strategy = *strategy
		case "start":
			cfg.Plan.Start = *start
		case "budget":
			cfg.Plan.Budget = *budget
		case "source":
			cfg.Distribution.Source = *source
		case "quantity":
			cfg.Distribution.Quantity = *quantity
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	outFormat, err := report.ParseFormat(*format)
	if err != nil {
		return err
	}

	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repo, closeRepo, err := openRepository(cfg.Source, req.Now)
	if err != nil {
		return err
	}
	defer closeRepo()

	trip, err := services.PlanTrip(ctx, req, repo)
	if err != nil {
		return err
	}

	return report.Write(stdout, trip, outFormat)
}

func buildRequest(cfg *config.Config) (services.PlanTripRequest, error) {
	strategies, err := services.ParseStrategies(cfg.Plan.Strategy)
	if err != nil {
		return services.PlanTripRequest{}, err
	}

	budget := domain.Unbounded()
	if cfg.Plan.Budget >= 0 {
		budget, err = domain.Hours(cfg.Plan.Budget)
		if err != nil {
			return services.PlanTripRequest{}, err
		}
	}

	now, err := cfg.ReferenceTime(time.Now())
	if err != nil {
		return services.PlanTripRequest{}, err
	}

	return services.PlanTripRequest{
		Start:              cfg.Plan.Start,
		Budget:             budget,
		Now:                now,
		Strategies:         strategies,
		DistributionSource: cfg.Distribution.Source,
		Quantity:           cfg.Distribution.Quantity,
	}, nil
}

// openRepository wires the IslandRepository port for the configured source.
// The returned func releases any database handle.
func openRepository(src config.SourceConfig, asOf time.Time) (ports.IslandRepository, func(), error) {
	var (
		conn    *sql.DB
		dialect repositories.Dialect
		err     error
	)

	switch src.Driver {
	case "json":
		return repositories.NewJSONIslandRepository(src.Path, asOf), func() {}, nil
	case "sqlite":
		conn, err = db.OpenSqlite(src.Path)
		dialect = repositories.DialectSqlite
	case "postgres":
		conn, err = db.Open(src.DSN)
		dialect = repositories.DialectPostgres
	default:
		return nil, nil, fmt.Errorf("open repository: unknown source driver %q", src.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := conn.Close(); err != nil {
			slog.Warn("close database failed", "driver", src.Driver, "err", err)
		}
	}
	return repositories.NewSQLIslandRepository(conn, dialect), closeFn, nil
}
