package analysis

import (
	"StockLens/internal/calculator"
	"StockLens/internal/model"
)

// AverageVolume is the mean traded volume across all processed days.
type AverageVolume struct {
	sum   float64
	count int
}

func NewAverageVolume() *AverageVolume { return &AverageVolume{} }

func (a *AverageVolume) Name() string { return NameAverageVolume }

func (a *AverageVolume) Process(rec model.Record) {
	a.sum += float64(rec.Volume)
	a.count++
}

func (a *AverageVolume) Reset() {
	a.sum, a.count = 0, 0
}

// Result returns sum/count, or ErrInsufficientData with no records.
func (a *AverageVolume) Result() (float64, error) {
	if a.count == 0 {
		return 0, ErrInsufficientData
	}
	return calculator.CalculateMean(a.sum, a.count)
}
