package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/buddies/core"
	"github.com/katalvlaran/buddies/csvio"
	"github.com/katalvlaran/buddies/internal/config"
	"github.com/katalvlaran/buddies/internal/logger"
	"github.com/katalvlaran/buddies/render"
	"github.com/katalvlaran/buddies/schedule"
)

var (
	heading = color.New(color.FgCyan, color.OpBold)
	warning = color.New(color.FgYellow)
)

// resolveConfig loads file, dotenv and environment settings, then applies
// the flags the user actually set.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(config.Sources{File: f.configFile, DotEnv: f.envFile})
	if err != nil {
		return config.Config{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("show-matrix") {
		cfg.ShowMatrix = f.showMatrix
	}
	if fl.Changed("dot") {
		cfg.DOTFile = f.dotFile
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("debug") {
		cfg.Debug = f.debug
	}
	if fl.Changed("lenient") {
		cfg.Lenient = f.lenient
	}
	if fl.Changed("algo") {
		cfg.Algo = f.algo
	}
	if fl.Changed("trio") {
		cfg.Trio = f.trio
	}
	if fl.Changed("time-limit") {
		cfg.TimeLimit = f.timeLimit
	}
	if fl.Changed("max-backtracks") {
		cfg.MaxBacktracks = f.maxBacktracks
	}
	if fl.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if fl.Changed("no-color") {
		cfg.NoColor = f.noColor
	}

	return cfg, cfg.Validate()
}

func run(ctx context.Context, stdout, stderr io.Writer, path string, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.NoColor {
		color.Disable()
	}

	cleanup, err := logger.Setup(logger.Config{File: cfg.LogFile, Out: stderr, Debug: cfg.Debug})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = cleanup() }()
	log := logger.L()

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, heading.Render("BUDDY PAIRING"))

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, heading.Render("LOADING CSV..."))
	edges, err := csvio.ReadFile(path, csvio.Options{SkipMalformed: cfg.Lenient})
	if err != nil {
		return err
	}
	g, err := core.Build(edges, cfg.GraphOptions()...)
	if err != nil {
		return err
	}
	log.Info("graph.loaded", slog.String("path", path), slog.Int("rows", len(edges)), slog.Int("participants", len(g.Participants())))
	fmt.Fprintln(stdout, "Members:", render.Members(g))

	if cfg.ShowMatrix {
		fmt.Fprintln(stdout, "Closeness Matrix:")
		if err = render.Matrix(stdout, g); err != nil {
			return err
		}
	}
	if cfg.DOTFile != "" {
		if err = writeDOT(cfg.DOTFile, g); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "The graph was saved as %q.\n", cfg.DOTFile)
	}
	if g.HasPlaceholder() {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, warning.Render("\tWARNING: Odd number of members.\n\tEach set has one trio; trios may include re-encounter(s)."))
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, heading.Render("CREATING PAIRS..."))
	opts, err := cfg.ScheduleOptions(log)
	if err != nil {
		return err
	}
	started := time.Now()
	s, err := schedule.Compute(ctx, g, opts)
	if err != nil {
		return err
	}
	log.Info("schedule.done",
		slog.Int("rounds", len(s.Rounds)),
		slog.Int("backtracks", s.Backtracks),
		slog.Float64("cost", s.TotalCost()),
		slog.Duration("elapsed", time.Since(started)),
	)

	switch cfg.Format {
	case "table":
		err = render.Table(stdout, s)
	default:
		err = render.Text(stdout, s)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)

	return nil
}

func writeDOT(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.DOT(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
