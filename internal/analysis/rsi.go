package analysis

import (
	"fmt"

	"StockLens/internal/calculator"
	"StockLens/internal/model"
)

// RSI is the Wilder relative strength index of the closing prices.
type RSI struct {
	period int
	closes []float64
}

// NewRSI validates period and creates the analyser.
func NewRSI(period int) (*RSI, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriod, period)
	}
	return &RSI{period: period}, nil
}

func (r *RSI) Name() string { return NameRSI }

func (r *RSI) Process(rec model.Record) {
	r.closes = append(r.closes, rec.Close)
}

func (r *RSI) Reset() {
	r.closes = r.closes[:0]
}

// Result needs at least period+1 closes.
func (r *RSI) Result() (float64, error) {
	if len(r.closes) < r.period+1 {
		return 0, fmt.Errorf("%w: %d of %d closes", ErrInsufficientData, len(r.closes), r.period+1)
	}
	return calculator.CalculateRSI(r.closes, r.period)
}
