package scheduler

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"StockLens/internal/analysis"
	"StockLens/internal/collector"
	"StockLens/internal/notifier"
	"StockLens/internal/recorder"
)

// Scheduler runs the collect → evaluate → record → notify cycle, on demand or
// on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Engine    *analysis.Engine
	Recorder  recorder.Recorder
	Notifier  notifier.Notifier
	Symbols   []string // empty means every loaded symbol

	mu sync.Mutex // one cycle at a time; the engine's analysers are stateful
}

// New creates a Scheduler.
func New(col *collector.Collector, eng *analysis.Engine, rec recorder.Recorder, n notifier.Notifier, symbols []string) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{})),
		),
		Collector: col,
		Engine:    eng,
		Recorder:  rec,
		Notifier:  n,
		Symbols:   symbols,
	}
}

// Register schedules the cycle with a six-field cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.task); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	log.Info().Str("cron", spec).Msg("analysis task registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) task() {
	if err := s.RunOnce(); err != nil {
		log.Error().Err(err).Msg("scheduled analysis failed")
	}
}

// RunOnce performs a single cycle. Recording failures are logged and do not
// fail the run.
func (s *Scheduler) RunOnce() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	runID := uuid.NewString()
	logger := log.With().Str("run", runID).Logger()
	logger.Info().Msg("running analysis")

	reg, results, err := s.Collector.Collect()
	failed := 0
	for _, res := range results {
		evt := &recorder.LoadEvent{
			RunID:    runID,
			Source:   res.Source,
			Format:   res.Format,
			Records:  res.Records,
			Duration: res.Duration.Milliseconds(),
		}
		if res.Err != nil {
			evt.Error = res.Err.Error()
			failed++
		}
		if rerr := s.Recorder.RecordLoad(evt); rerr != nil {
			logger.Error().Err(rerr).Str("source", res.Source).Msg("record load event")
		}
	}
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	symbols := s.Symbols
	if len(symbols) == 0 {
		symbols = reg.Symbols()
	}
	for _, sym := range symbols {
		h, ok := reg.Lookup(sym)
		if !ok {
			logger.Warn().Str("symbol", sym).Msg("symbol not found in any source")
			continue
		}
		rep := s.Engine.Evaluate(h)
		if err := s.Recorder.RecordReport(runID, rep); err != nil {
			logger.Error().Err(err).Str("symbol", sym).Msg("record report")
		}
		if err := s.Notifier.Send(notifier.FormatReport(rep)); err != nil {
			return err
		}
	}

	return s.Notifier.Send(notifier.FormatSummary(runID, reg.Len(), len(results), failed))
}

// cronLogger routes cron's internal logging through zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
