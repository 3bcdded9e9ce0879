package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// Execute runs the buddies root command on os.Args and exits with status 1
// on any error. Error text has already been printed by cobra.
func Execute() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// flags holds raw flag values; only flags the user set override the config.
type flags struct {
	configFile    string
	envFile       string
	showMatrix    bool
	dotFile       string
	format        string
	debug         bool
	lenient       bool
	algo          string
	trio          string
	timeLimit     time.Duration
	maxBacktracks int
	logFile       string
	noColor       bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "buddies <csv_file>",
		Short: "Round-robin buddy pairing from closeness ratings",
		Long: "Reads \"name,name,weight\" rows and prints one set of pairs per round so that\n" +
			"everyone meets everyone exactly once, each round as light as possible.\n" +
			"An odd group gets one trio per round.",
		Args:         cobra.ExactArgs(1),
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), stdout, stderr, args[0], cfg)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVar(&f.configFile, "config", "", "YAML settings file")
	fl.StringVar(&f.envFile, "env-file", ".env", "dotenv file with BUDDIES_* variables (ignored if missing)")
	fl.BoolVarP(&f.showMatrix, "show-matrix", "m", false, "show the closeness matrix")
	fl.StringVar(&f.dotFile, "dot", "", "write the closeness graph in Graphviz DOT format to this file")
	fl.StringVar(&f.format, "format", "text", "output format: text|table")
	fl.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fl.BoolVar(&f.lenient, "lenient", false, "skip rows that do not have exactly three fields")
	fl.StringVar(&f.algo, "algo", "blossom", "matching engine: blossom|exhaustive")
	fl.StringVar(&f.trio, "trio", "lightest", "trio host pair: lightest|last")
	fl.DurationVar(&f.timeLimit, "time-limit", 30*time.Second, "time budget for one matching (0 = none)")
	fl.IntVar(&f.maxBacktracks, "max-backtracks", 10000, "rounds that may be undone to repair a dead end (-1 = none)")
	fl.StringVar(&f.logFile, "log-file", "", "write JSON logs to this file instead of stderr")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	return cmd
}
