package analysis

import (
	"fmt"

	"StockLens/internal/calculator"
	"StockLens/internal/model"
)

// MovingAverage is the simple average of the last Window closing prices.
type MovingAverage struct {
	window int
	closes []float64
}

// NewMovingAverage validates window and creates the analyser.
func NewMovingAverage(window int) (*MovingAverage, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	return &MovingAverage{window: window, closes: make([]float64, 0, window)}, nil
}

func (m *MovingAverage) Name() string { return NameMovingAverage }

// Window returns the number of closes averaged.
func (m *MovingAverage) Window() int { return m.window }

func (m *MovingAverage) Process(rec model.Record) {
	if len(m.closes) == m.window {
		copy(m.closes, m.closes[1:])
		m.closes = m.closes[:m.window-1]
	}
	m.closes = append(m.closes, rec.Close)
}

func (m *MovingAverage) Reset() {
	m.closes = m.closes[:0]
}

// Result returns the trailing average, or ErrInsufficientData while fewer than
// Window records have been processed.
func (m *MovingAverage) Result() (float64, error) {
	if len(m.closes) < m.window {
		return 0, fmt.Errorf("%w: %d of %d closes", ErrInsufficientData, len(m.closes), m.window)
	}
	return calculator.CalculateSMA(m.closes, m.window)
}
