package analysis

import "StockLens/internal/model"

// GapUp finds the latest day whose open exceeds the previous close by more
// than Delta.
type GapUp struct {
	delta     float64
	prevClose float64
	seen      int
	latest    model.Record
	found     bool
}

// NewGapUp creates a GapUp analyser with the given threshold.
func NewGapUp(delta float64) *GapUp {
	return &GapUp{delta: delta}
}

func (g *GapUp) Name() string { return NameGapUp }

// Delta returns the threshold.
func (g *GapUp) Delta() float64 { return g.delta }

func (g *GapUp) Process(rec model.Record) {
	if g.seen > 0 && rec.Open-g.prevClose > g.delta {
		g.latest = rec
		g.found = true
	}
	g.prevClose = rec.Close
	g.seen++
}

func (g *GapUp) Reset() {
	*g = GapUp{delta: g.delta}
}

// Result returns the most recent gap-up day, or ErrNoQualifyingData.
func (g *GapUp) Result() (model.Record, error) {
	if !g.found {
		return model.Record{}, ErrNoQualifyingData
	}
	return g.latest, nil
}
