package stock

import (
	"fmt"
	"sort"
	"sync"

	"StockLens/internal/model"
)

// Entry is a parsed record together with the symbol it belongs to.
type Entry struct {
	Symbol string
	Record model.Record
}

// Registry maps symbol codes to their histories.
type Registry struct {
	mu        sync.Mutex
	histories map[string]*History
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{histories: make(map[string]*History)}
}

// GetOrCreate returns the history for symbol, creating an empty one if needed.
// Codes shorter than MinSymbolLength are rejected with ErrInvalidSymbol.
func (r *Registry) GetOrCreate(symbol string) (*History, error) {
	if len(symbol) < MinSymbolLength {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreate(symbol), nil
}

func (r *Registry) getOrCreate(symbol string) *History {
	h, ok := r.histories[symbol]
	if !ok {
		h = newHistory(symbol)
		r.histories[symbol] = h
	}
	return h
}

// Lookup returns the history for symbol without creating one.
func (r *Registry) Lookup(symbol string) (*History, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.histories[symbol]
	return h, ok
}

// Symbols returns every known symbol in lexical order.
func (r *Registry) Symbols() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.histories))
	for s := range r.histories {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of symbols.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.histories)
}

// Commit inserts a batch of entries. Either every entry is inserted or, on
// any invalid symbol or duplicate date, none is.
func (r *Registry) Commit(entries []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]map[int64]struct{})
	for _, e := range entries {
		if len(e.Symbol) < MinSymbolLength {
			return fmt.Errorf("%w: %q", ErrInvalidSymbol, e.Symbol)
		}
		days, ok := seen[e.Symbol]
		if !ok {
			days = make(map[int64]struct{})
			seen[e.Symbol] = days
		}
		if _, dup := days[e.Record.Day()]; dup {
			return fmt.Errorf("%w: %s %s", ErrDuplicateDate, e.Symbol, e.Record.Date)
		}
		days[e.Record.Day()] = struct{}{}
		if h, ok := r.histories[e.Symbol]; ok && h.Has(e.Record) {
			return fmt.Errorf("%w: %s %s", ErrDuplicateDate, e.Symbol, e.Record.Date)
		}
	}

	for _, e := range entries {
		// Cannot fail: duplicates were ruled out above.
		if err := r.getOrCreate(e.Symbol).Insert(e.Record); err != nil {
			return err
		}
	}
	return nil
}
