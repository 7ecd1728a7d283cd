package analysis

import "StockLens/internal/model"

// Analyser names, also used as config keys and finding labels.
const (
	NameHighLow       = "high_low"
	NameMovingAverage = "moving_average"
	NameGapUp         = "gap_up"
	NameAverageVolume = "average_volume"
	NameRSI           = "rsi"
)

// Names lists every analyser in evaluation order.
var Names = []string{NameHighLow, NameMovingAverage, NameGapUp, NameAverageVolume, NameRSI}

// Analyser consumes a symbol's records in ascending date order. Each
// implementation also exposes a typed Result method. Analysers hold mutable
// state and must not be shared between goroutines.
type Analyser interface {
	Name() string
	// Process consumes one record.
	Process(rec model.Record)
	// Reset clears accumulated state so the analyser can be reused.
	Reset()
}
