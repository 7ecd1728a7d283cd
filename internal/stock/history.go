package stock

import (
	"fmt"
	"sort"

	"StockLens/internal/model"
)

// MinSymbolLength is the shortest symbol code accepted anywhere in the system.
const MinSymbolLength = 3

// Processor consumes records one at a time. Every analyser satisfies it.
type Processor interface {
	Process(rec model.Record)
}

// History is the chronologically ordered set of records for one symbol.
// It is not safe for concurrent mutation; the Registry serialises writes.
type History struct {
	symbol  string
	records []model.Record
}

func newHistory(symbol string) *History {
	return &History{symbol: symbol}
}

// Symbol returns the symbol code.
func (h *History) Symbol() string { return h.symbol }

// Len returns the number of stored records.
func (h *History) Len() int { return len(h.records) }

// Records returns a copy of the records in ascending date order.
func (h *History) Records() []model.Record {
	out := make([]model.Record, len(h.records))
	copy(out, h.records)
	return out
}

// First and Last return the earliest and latest record.
func (h *History) First() (model.Record, bool) {
	if len(h.records) == 0 {
		return model.Record{}, false
	}
	return h.records[0], true
}

func (h *History) Last() (model.Record, bool) {
	if len(h.records) == 0 {
		return model.Record{}, false
	}
	return h.records[len(h.records)-1], true
}

// Insert adds rec at its chronological position. A record whose day is
// already present is rejected with ErrDuplicateDate.
func (h *History) Insert(rec model.Record) error {
	i, found := h.position(rec)
	if found {
		return fmt.Errorf("%w: %s %s", ErrDuplicateDate, h.symbol, rec.Date)
	}
	// Sources are normally pre-sorted, so the append path is the common one.
	if i == len(h.records) {
		h.records = append(h.records, rec)
		return nil
	}
	h.records = append(h.records, model.Record{})
	copy(h.records[i+1:], h.records[i:])
	h.records[i] = rec
	return nil
}

// Has reports whether a record for the same day is stored.
func (h *History) Has(rec model.Record) bool {
	_, found := h.position(rec)
	return found
}

func (h *History) position(rec model.Record) (int, bool) {
	i := sort.Search(len(h.records), func(i int) bool {
		return !h.records[i].Before(rec)
	})
	return i, i < len(h.records) && h.records[i].Day() == rec.Day()
}

// Analyse feeds every record to p in ascending date order. It does not reset
// p or read its result; both are left to the caller.
func (h *History) Analyse(p Processor) {
	for _, rec := range h.records {
		p.Process(rec)
	}
}
