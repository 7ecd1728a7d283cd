package analysis

import (
	"math"

	"StockLens/internal/model"
)

// HighLow tracks the highest high and lowest low seen.
type HighLow struct {
	high, low float64
	count     int
}

// NewHighLow creates a HighLow analyser.
func NewHighLow() *HighLow {
	h := &HighLow{}
	h.Reset()
	return h
}

func (h *HighLow) Name() string { return NameHighLow }

func (h *HighLow) Process(rec model.Record) {
	h.high = math.Max(h.high, rec.High)
	h.low = math.Min(h.low, rec.Low)
	h.count++
}

func (h *HighLow) Reset() {
	h.high = math.Inf(-1)
	h.low = math.Inf(1)
	h.count = 0
}

// Result returns the extremes, or ErrInsufficientData if nothing was processed.
func (h *HighLow) Result() (high, low float64, err error) {
	if h.count == 0 {
		return 0, 0, ErrInsufficientData
	}
	return h.high, h.low, nil
}
