package analysis

import "errors"

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrNoQualifyingData = errors.New("no qualifying data")
	ErrInvalidWindow    = errors.New("moving average window must be positive")
	ErrInvalidPeriod    = errors.New("rsi period must be positive")
	ErrUnknownAnalyser  = errors.New("unknown analyser")
)
