package loader

import (
	"errors"
	"fmt"
)

var (
	ErrSourceExtension = errors.New("source extension mismatch")
	ErrRecordFormat    = errors.New("record format error")
	ErrBlockAlignment  = errors.New("line count is not a multiple of the block size")
)

// LoadError reports which source, and where in it, a load failed.
type LoadError struct {
	Source string
	Line   int // 1-based, 0 when the failure is not tied to one line
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
