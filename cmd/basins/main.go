// Command basins finds the low points and basins of two heightmaps and
// prints four lines: the risk level sums of the test and full datasets,
// then the products of their three largest basins.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-basins/config"
)

type options struct {
	configPath string
	testInput  string
	fullInput  string
	top        int
	wall       int
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var (
		opts   options
		logger *zap.Logger
		cfg    config.Config
	)
	cmd := &cobra.Command{
		Use:   "basins",
		Short: "Survey heightmap low points and basins",
		Long: `Reads the embedded sample and full heightmaps (or the files given by
--test-input and --input), then prints the risk level sum of each and the
product of each map's largest basins.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err = newLogger(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cfg, logger)
		},
	}

	defaults := config.Defaults()
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	f.StringVar(&opts.testInput, "test-input", "", "sample heightmap file (default: embedded)")
	f.StringVarP(&opts.fullInput, "input", "i", "", "full heightmap file, .zst accepted (default: embedded)")
	f.IntVar(&opts.top, "top", defaults.Top, "number of largest basins to multiply")
	f.IntVar(&opts.wall, "wall", defaults.Wall, "lowest height that bounds a basin")
	f.StringVar(&opts.logLevel, "log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "shorthand for --log-level=debug")

	return cmd
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("test-input") {
		cfg.TestInput = opts.testInput
	}
	if f.Changed("input") {
		cfg.FullInput = opts.fullInput
	}
	if f.Changed("top") {
		cfg.Top = opts.top
	}
	if f.Changed("wall") {
		cfg.Wall = opts.wall
	}
	if f.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	cfg.Normalize()

	return cfg, cfg.Validate()
}

func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	lvl, err := lc.ZapLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "basins:", err)
		os.Exit(1)
	}
}
