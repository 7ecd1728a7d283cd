package recorder

import "StockLens/internal/model"

// LoadEvent records the outcome of loading one source.
type LoadEvent struct {
	RunID    string
	Source   string
	Format   string
	Records  int
	Duration int64  // milliseconds
	Error    string // empty on success
}

// Recorder persists run history for later inspection.
type Recorder interface {
	RecordLoad(evt *LoadEvent) error
	RecordReport(runID string, rep *model.Report) error
	Close() error
}
