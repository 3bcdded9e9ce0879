// Package config resolves run settings from defaults, an optional YAML file,
// a .env file and BUDDIES_* environment variables, in that order.
// Command-line flags are applied last by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/buddies/core"
	"github.com/katalvlaran/buddies/matching"
	"github.com/katalvlaran/buddies/schedule"
)

// EnvPrefix prefixes every environment variable, e.g. BUDDIES_ALGO.
const EnvPrefix = "BUDDIES"

// ErrInvalidConfig wraps YAML decoding and validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full set of run settings.
type Config struct {
	Algo              string        `yaml:"algo" split_words:"true" validate:"oneof=blossom exhaustive"`
	Trio              string        `yaml:"trio" split_words:"true" validate:"oneof=lightest last"`
	Format            string        `yaml:"format" split_words:"true" validate:"oneof=text table"`
	TimeLimit         time.Duration `yaml:"time_limit" split_words:"true" validate:"gte=0"`
	MaxBacktracks     int           `yaml:"max_backtracks" split_words:"true" validate:"gte=-1"`
	Scale             float64       `yaml:"scale" split_words:"true" validate:"gt=0"`
	PlaceholderWeight float64       `yaml:"placeholder_weight" split_words:"true" validate:"gte=0"`
	Lenient           bool          `yaml:"lenient" split_words:"true"`
	ShowMatrix        bool          `yaml:"show_matrix" split_words:"true"`
	DOTFile           string        `yaml:"dot_file" split_words:"true"`
	Debug             bool          `yaml:"debug" split_words:"true"`
	LogFile           string        `yaml:"log_file" split_words:"true"`
	NoColor           bool          `yaml:"no_color" split_words:"true"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Algo:              matching.Blossom.String(),
		Trio:              schedule.TrioLightest.String(),
		Format:            "text",
		TimeLimit:         30 * time.Second,
		MaxBacktracks:     schedule.DefaultMaxBacktracks,
		Scale:             matching.DefaultScale,
		PlaceholderWeight: core.DefaultPlaceholderWeight,
	}
}

// Sources names the optional inputs of Load. Empty paths are skipped.
type Sources struct {
	// File is a YAML document; unknown keys are rejected.
	File string
	// DotEnv is loaded into the process environment without overriding
	// variables that are already set. A missing file is not an error.
	DotEnv string
}

// Load layers the sources over Default and validates the result.
func Load(src Sources) (Config, error) {
	cfg := Default()

	if src.File != "" {
		b, err := os.ReadFile(src.File)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", src.File, err)
		}
		if err = decodeYAML(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, src.File, err)
		}
	}

	if src.DotEnv != "" {
		if err := godotenv.Load(src.DotEnv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", src.DotEnv, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decodeYAML(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ScheduleOptions converts c into scheduler options. log may be nil.
func (c Config) ScheduleOptions(log *slog.Logger) (schedule.Options, error) {
	algo, err := matching.ParseAlgo(c.Algo)
	if err != nil {
		return schedule.Options{}, err
	}
	trio, err := schedule.ParseTrioPolicy(c.Trio)
	if err != nil {
		return schedule.Options{}, err
	}

	return schedule.Options{
		Matching: matching.Options{
			Algo:      algo,
			TimeLimit: c.TimeLimit,
			Scale:     c.Scale,
		},
		MaxBacktracks: c.MaxBacktracks,
		TrioPolicy:    trio,
		Logger:        log,
	}, nil
}

// GraphOptions converts c into graph build options.
func (c Config) GraphOptions() []core.GraphOption {
	return []core.GraphOption{core.WithPlaceholderWeight(c.PlaceholderWeight)}
}
