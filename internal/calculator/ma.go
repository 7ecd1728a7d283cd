package calculator

import "errors"

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// CalculateMean returns the arithmetic mean of a running total over count samples.
func CalculateMean(sum float64, count int) (float64, error) {
	if count <= 0 {
		return 0, errors.New("no samples")
	}
	return sum / float64(count), nil
}
