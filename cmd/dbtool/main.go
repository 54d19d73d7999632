package main

import (
	"context"
	"database/sql"
	"flag"
	"island-route-service/internal/adapters/repositories"
	"island-route-service/internal/config"
	"island-route-service/internal/platform/db"
	"island-route-service/internal/platform/logging"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found (using environment variables)")
	}

	driver := flag.String("driver", config.Get("DB_DRIVER", "sqlite"), "sqlite|postgres")
	target := flag.String("db", config.Get("DATABASE_URL", "data/islands.db"), "sqlite file path or postgres URL")
	seedPath := flag.String("seed", config.Get("SEED_PATH", "data/seeds/islands.json"), "JSON dataset to load")
	flag.Parse()

	logger, err := logging.New(os.Stderr, config.Get("PLANNER_LOG_LEVEL", "info"), config.Get("PLANNER_LOG_FORMAT", "text"))
	if err != nil {
		slog.Error("configure logging", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	dialect, err := repositories.ParseDialect(*driver)
	if err != nil {
		slog.Error("parse driver", "err", err)
		os.Exit(1)
	}
	if strings.TrimSpace(*target) == "" {
		slog.Error("database target is required")
		os.Exit(1)
	}

	var conn *sql.DB
	if dialect == repositories.DialectPostgres {
		conn, err = db.Open(*target)
	} else {
		conn, err = db.OpenSqlite(*target)
	}
	if err != nil {
		slog.Error("open database", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := initAndSeed(context.Background(), conn, dialect, *seedPath); err != nil {
		slog.Error("init and seed", "err", err)
		conn.Close()
		os.Exit(1)
	}
}

// Days-since values in the dataset are resolved against the seeding time.
func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	slog.Info("initializing database schema", "dialect", dialect)
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	slog.Info("schema ready")

	slog.Info("seeding database", "seed", seedPath)
	if err := repositories.SeedFromJSON(ctx, conn, dialect, seedPath, time.Now().UTC()); err != nil {
		return err
	}
	slog.Info("seeding complete")

	return nil
}
