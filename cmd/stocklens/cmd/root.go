// Package cmd holds the stocklens CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"StockLens/internal/analysis"
	"StockLens/internal/collector"
	"StockLens/internal/config"
	"StockLens/internal/loader"
	"StockLens/internal/logger"
	"StockLens/internal/notifier"
	"StockLens/internal/recorder"
	"StockLens/internal/scheduler"
)

var (
	cfgFile  string
	dataDir  string
	dbPath   string
	symbols  []string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "stocklens",
	Short: "Load daily stock records and analyse them",
	Long: `StockLens reads daily trading records from .csv and .trp files and runs
high/low, moving average, gap-up, average volume and RSI analyses per symbol.

Commands:
    analyse     run the analyses once and print the report
    watch       run the analyses on the configured cron schedule
    version     print the version`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; the environment may already be set.
		_ = godotenv.Load()
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yaml or $CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory scanned for source files")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite file recording runs (disabled when empty)")
	rootCmd.PersistentFlags().StringSliceVarP(&symbols, "symbol", "s", nil, "only report these symbols (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "trace, debug, info, warn or error")

	rootCmd.AddCommand(analyseCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file, applies command-line overrides, validates
// the result and initializes logging.
func loadConfig(sources []string) (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if len(sources) > 0 {
		// Explicit files are taken relative to the working directory.
		cfg.Data.Dir = "."
		cfg.Data.Sources = sources
	}
	if len(symbols) > 0 {
		cfg.Data.Symbols = symbols
	}
	if dbPath != "" {
		cfg.Database.SQLitePath = dbPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

// newScheduler wires collector, engine, recorder and notifier from cfg.
func newScheduler(cfg *config.Config, n notifier.Notifier) (*scheduler.Scheduler, recorder.Recorder, error) {
	eng, err := analysis.NewEngine(cfg.Analysis)
	if err != nil {
		return nil, nil, fmt.Errorf("build analysers: %w", err)
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		} else {
			rec = sr
		}
	}

	col := collector.New(loader.FileOpener{}, cfg.Data)
	return scheduler.New(col, eng, rec, n, cfg.Data.Symbols), rec, nil
}
