package stock

import "errors"

var (
	ErrDuplicateDate = errors.New("duplicate date")
	ErrInvalidSymbol = errors.New("invalid symbol: code shorter than 3 characters")
)
