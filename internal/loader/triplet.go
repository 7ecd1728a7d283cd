package loader

import (
	"fmt"
	"strings"

	"StockLens/internal/model"
	"StockLens/internal/stock"
)

const (
	tripletBlock  = 6
	tripletTokens = 3
)

// parseTriplet reads blocks of six SYMBOL:FIELD:VALUE lines. Values are taken
// by position (date, open, high, low, close, volume); the field names are not
// checked. Every line's symbol must be long enough; the record takes the
// symbol of the last line of its block.
func parseTriplet(lines []string) ([]stock.Entry, int, error) {
	if len(lines)%tripletBlock != 0 {
		return nil, 0, fmt.Errorf("%w: %d lines, block size %d", ErrBlockAlignment, len(lines), tripletBlock)
	}

	entries := make([]stock.Entry, 0, len(lines)/tripletBlock)
	for start := 0; start < len(lines); start += tripletBlock {
		var (
			values [6]string
			symbol string
		)
		for j := 0; j < tripletBlock; j++ {
			tokens := strings.Split(strings.TrimSpace(lines[start+j]), ":")
			if len(tokens) != tripletTokens {
				return nil, start + j + 1, fmt.Errorf("%w: want %d tokens, got %d", ErrRecordFormat, tripletTokens, len(tokens))
			}
			symbol = strings.TrimSpace(tokens[0])
			if len(symbol) < stock.MinSymbolLength {
				return nil, start + j + 1, fmt.Errorf("%w: symbol %q too short", ErrRecordFormat, symbol)
			}
			values[j] = tokens[2]
		}
		last := start + tripletBlock

		rec, err := model.ParseRecord(values)
		if err != nil {
			return nil, last, err
		}
		entries = append(entries, stock.Entry{Symbol: symbol, Record: rec})
	}
	return entries, 0, nil
}
