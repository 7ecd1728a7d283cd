package recorder

import "StockLens/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordLoad(_ *LoadEvent) error                { return nil }
func (n *NoopRecorder) RecordReport(_ string, _ *model.Report) error { return nil }
func (n *NoopRecorder) Close() error                                 { return nil }
