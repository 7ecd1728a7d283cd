package cmd

import (
	"github.com/spf13/cobra"

	"StockLens/internal/notifier"
)

var analyseCmd = &cobra.Command{
	Use:     "analyse [files...]",
	Aliases: []string{"analyze"},
	Short:   "Run the analyses once",
	Long: `Load the given files (or every .csv/.trp file in the data directory),
run the configured analysers per symbol and print the report.

Examples:
  stocklens analyse data_files/march1.csv data_files/feb1.trp
  stocklens analyse --symbol ADV --symbol YOW
  stocklens analyse --db runs.db`,
	RunE: runAnalyse,
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	sched, rec, err := newScheduler(cfg, notifier.NewWriterNotifier(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	defer rec.Close()

	return sched.RunOnce()
}
