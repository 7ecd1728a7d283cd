package model

import "errors"

// ErrFieldParse is returned when a date, price or volume token is not numeric.
var ErrFieldParse = errors.New("field parse error")
