// A command line tool to check files for expected lines
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = struct {
	cobra.Command
	cfgFile string
	verbose int
	quiet   bool
}{
	Command: cobra.Command{
		Use:   "lineq",
		Short: "Check files for expected lines",
		Long: `A command line tool to check files for expected lines

Files are equivalent to the expected lines if they have the same number of
lines and each line matches one expected line. No expected line matches more
than one line.

Line Order (-l):
   any         lines match expected lines in any order
   as-in-file  line i must match expected line i

Column Order (-c):
   as-in-file  lines must be equal to expected lines
   any         same number of columns and same set of column values
   permuted    columns are a permutation of the expected columns

Configuration is read from flags, LINEQ_* environment variables, e.g.
LINEQ_COLUMN_ORDER=permuted, and the file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	},
}

// cfg holds the merged configuration of the running command
var cfg = viper.New()

var log = slog.New(slog.NewTextHandler(os.Stderr, nil))

// errMismatch makes lineq exit with status 1
var errMismatch = errors.New("mismatch")

func init() {
	rootCmd.PersistentPreRunE = setup
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootCmd.cfgFile, "config", "", "Read configuration from file")
	pf.CountVarP(&rootCmd.verbose, "verbose", "v", "Increase log level")
	pf.BoolVarP(&rootCmd.quiet, "quiet", "q", false, "Suppress log output")
}

func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	switch {
	case rootCmd.quiet:
		level = slog.Level(100)
	case rootCmd.verbose > 0:
		level = slog.LevelDebug
	}
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg.SetEnvPrefix("LINEQ")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	if rootCmd.cfgFile != "" {
		cfg.SetConfigFile(rootCmd.cfgFile)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		log.Debug("read config", "file", cfg.ConfigFileUsed())
	}
	return cfg.BindPFlags(cmd.Flags())
}

func main() {
	err := rootCmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, errMismatch):
		os.Exit(1)
	default:
		log.Error(err.Error())
		os.Exit(2)
	}
}
