package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buddies/internal/config"
	"github.com/katalvlaran/buddies/matching"
	"github.com/katalvlaran/buddies/schedule"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.Sources{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "blossom", cfg.Algo)
	assert.Equal(t, 30*time.Second, cfg.TimeLimit)
}

func TestLoad_Layering(t *testing.T) {
	file := writeFile(t, "buddies.yaml", "algo: exhaustive\ntrio: last\ntime_limit: 5s\nplaceholder_weight: 50\n")

	cfg, err := config.Load(config.Sources{File: file})
	require.NoError(t, err)
	assert.Equal(t, "exhaustive", cfg.Algo)
	assert.Equal(t, "last", cfg.Trio)
	assert.Equal(t, 5*time.Second, cfg.TimeLimit)
	assert.Equal(t, 50.0, cfg.PlaceholderWeight)
	assert.Equal(t, "text", cfg.Format, "unset keys keep their default")

	// Environment beats the file.
	t.Setenv("BUDDIES_ALGO", "blossom")
	t.Setenv("BUDDIES_TIME_LIMIT", "1m")
	cfg, err = config.Load(config.Sources{File: file})
	require.NoError(t, err)
	assert.Equal(t, "blossom", cfg.Algo)
	assert.Equal(t, time.Minute, cfg.TimeLimit)
	assert.Equal(t, "last", cfg.Trio)
}

func TestLoad_DotEnv(t *testing.T) {
	// t.Setenv registers cleanup; the empty value is then replaced by .env
	// only if unset, so clear it first.
	t.Setenv("BUDDIES_FORMAT", "")
	require.NoError(t, os.Unsetenv("BUDDIES_FORMAT"))

	env := writeFile(t, ".env", "BUDDIES_FORMAT=table\n")
	cfg, err := config.Load(config.Sources{DotEnv: env})
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Format)

	_, err = config.Load(config.Sources{DotEnv: filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "colour: red\n",
		"bad algo":      "algo: greedy\n",
		"bad trio":      "trio: random\n",
		"neg limit":     "time_limit: -1s\n",
		"zero scale":    "scale: 0\n",
		"neg weight":    "placeholder_weight: -3\n",
		"bad backtrack": "max_backtracks: -5\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(config.Sources{File: writeFile(t, "c.yaml", body)})
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(config.Sources{File: filepath.Join(t.TempDir(), "none.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)

	t.Setenv("BUDDIES_MAX_BACKTRACKS", "lots")
	_, err = config.Load(config.Sources{})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfig_ScheduleOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Algo = "exhaustive"
	cfg.Trio = "last"
	cfg.TimeLimit = time.Second

	opts, err := cfg.ScheduleOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, matching.Exhaustive, opts.Matching.Algo)
	assert.Equal(t, time.Second, opts.Matching.TimeLimit)
	assert.Equal(t, schedule.TrioLast, opts.TrioPolicy)
	assert.Equal(t, schedule.DefaultMaxBacktracks, opts.MaxBacktracks)
	assert.Len(t, cfg.GraphOptions(), 1)
}
