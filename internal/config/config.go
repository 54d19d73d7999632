package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "PLANNER_"

type Config struct {
	Source       SourceConfig       `koanf:"source"`
	Plan         PlanConfig         `koanf:"plan"`
	Distribution DistributionConfig `koanf:"distribution"`
	Log          LogConfig          `koanf:"log"`
}

// SourceConfig selects where the island dataset is read from.
type SourceConfig struct {
	Driver string `koanf:"driver" validate:"oneof=json sqlite postgres"`
	Path   string `koanf:"path" validate:"required_unless=Driver postgres"`
	DSN    string `koanf:"dsn" validate:"required_if=Driver postgres"`
}

// PlanConfig holds the planning run parameters. A negative budget means unbounded.
// Now pins the reference time (RFC 3339); empty means the wall clock at start-up.
type PlanConfig struct {
	Strategy string  `koanf:"strategy" validate:"oneof=leader itinerary teaching distribute all"`
	Start    string  `koanf:"start" validate:"required"`
	Budget   float64 `koanf:"budget"`
	Now      string  `koanf:"now" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// DistributionConfig defaults Source to the plan start when empty.
type DistributionConfig struct {
	Source   string  `koanf:"source"`
	Quantity float64 `koanf:"quantity" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

func Default() Config {
	return Config{
		Source: SourceConfig{Driver: "json", Path: "data/seeds/islands.json"},
		Plan:   PlanConfig{Strategy: "all", Start: "Hawai'i", Budget: -1},
		Distribution: DistributionConfig{
			Quantity: 100,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads an optional YAML file, then PLANNER_* environment overrides
// (PLANNER_PLAN_BUDGET -> plan.budget), on top of Default.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s failed", path)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	c.Plan.Start = strings.TrimSpace(c.Plan.Start)
	c.Distribution.Source = strings.TrimSpace(c.Distribution.Source)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Reference time for the run: Plan.Now when set, otherwise now.
func (c *Config) ReferenceTime(now time.Time) (time.Time, error) {
	if c.Plan.Now == "" {
		return now, nil
	}
	t, err := time.Parse(time.RFC3339, c.Plan.Now)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse plan.now %q", c.Plan.Now)
	}
	return t, nil
}

// Get returns the environment value for key or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
