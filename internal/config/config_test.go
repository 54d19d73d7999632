package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
source:
  driver: sqlite
  path: data/app.db
plan:
  strategy: leader
  start: Tahiti
  budget: 12.5
`)
	t.Setenv("PLANNER_PLAN_BUDGET", "30")
	t.Setenv("PLANNER_LOG_FORMAT", "JSON")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Source.Driver)
	assert.Equal(t, "data/app.db", cfg.Source.Path)
	assert.Equal(t, "leader", cfg.Plan.Strategy)
	assert.Equal(t, "Tahiti", cfg.Plan.Start)
	assert.Equal(t, 30.0, cfg.Plan.Budget)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 100.0, cfg.Distribution.Quantity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"strategy":       "plan:\n  strategy: random\n",
		"postgres dsn":   "source:\n  driver: postgres\n",
		"driver":         "source:\n  driver: mongo\n",
		"quantity":       "distribution:\n  quantity: -3\n",
		"reference time": "plan:\n  now: yesterday\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestReferenceTime(t *testing.T) {
	wall := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cfg := Default()
	got, err := cfg.ReferenceTime(wall)
	require.NoError(t, err)
	assert.Equal(t, wall, got)

	cfg.Plan.Now = "2026-01-01T08:00:00Z"
	got, err = cfg.ReferenceTime(wall)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC), got)
}

func TestGet(t *testing.T) {
	t.Setenv("PLANNER_TEST_KEY", "value")
	assert.Equal(t, "value", Get("PLANNER_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("PLANNER_TEST_MISSING", "fallback"))
}
