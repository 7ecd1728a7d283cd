package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"StockLens/internal/notifier"
)

var runNow bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the analyses on the configured schedule",
	Long: `Run the analyses every time the schedule.cron expression fires, until
interrupted with Ctrl+C. The expression has six fields, seconds first.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&runNow, "now", false, "also run once immediately")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	sched, rec, err := newScheduler(cfg, notifier.NewWriterNotifier(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	defer rec.Close()

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if runNow {
		if err := sched.RunOnce(); err != nil {
			log.Error().Err(err).Msg("initial analysis failed")
		}
	}

	log.Info().Msg("stocklens is watching. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	return nil
}
