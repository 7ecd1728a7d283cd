package loader

import (
	"fmt"
	"strings"

	"StockLens/internal/model"
	"StockLens/internal/stock"
)

const delimitedFields = 7

func parseDelimited(lines []string) ([]stock.Entry, int, error) {
	entries := make([]stock.Entry, 0, len(lines))
	for i, raw := range lines {
		fields := strings.Split(strings.TrimSpace(raw), ",")
		if len(fields) != delimitedFields {
			return nil, i + 1, fmt.Errorf("%w: want %d fields, got %d", ErrRecordFormat, delimitedFields, len(fields))
		}
		symbol := strings.TrimSpace(fields[0])
		if len(symbol) < stock.MinSymbolLength {
			return nil, i + 1, fmt.Errorf("%w: symbol %q too short", ErrRecordFormat, symbol)
		}

		var values [6]string
		copy(values[:], fields[1:])
		rec, err := model.ParseRecord(values)
		if err != nil {
			return nil, i + 1, err
		}
		entries = append(entries, stock.Entry{Symbol: symbol, Record: rec})
	}
	return entries, 0, nil
}
