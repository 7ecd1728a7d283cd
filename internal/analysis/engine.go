package analysis

import (
	"fmt"

	"StockLens/internal/config"
	"StockLens/internal/model"
	"StockLens/internal/stock"
)

// Engine runs a fixed set of analysers over symbol histories.
type Engine struct {
	analysers []Analyser
}

// NewEngine builds the analyser set named in cfg, in the order given.
func NewEngine(cfg config.AnalysisConfig) (*Engine, error) {
	var set []Analyser
	for _, name := range cfg.Analysers {
		a, err := build(name, cfg)
		if err != nil {
			return nil, err
		}
		set = append(set, a)
	}
	return NewEngineWith(set...), nil
}

// NewEngineWith wraps already constructed analysers.
func NewEngineWith(analysers ...Analyser) *Engine {
	return &Engine{analysers: analysers}
}

func build(name string, cfg config.AnalysisConfig) (Analyser, error) {
	switch name {
	case NameHighLow:
		return NewHighLow(), nil
	case NameMovingAverage:
		return NewMovingAverage(cfg.MovingAverageWindow)
	case NameGapUp:
		return NewGapUp(cfg.GapUpDelta), nil
	case NameAverageVolume:
		return NewAverageVolume(), nil
	case NameRSI:
		return NewRSI(cfg.RSIPeriod)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnalyser, name)
	}
}

// Analysers returns the configured analysers.
func (e *Engine) Analysers() []Analyser { return e.analysers }

// Evaluate resets each analyser, walks the history through it and collects
// its result. An analyser that cannot produce a value contributes a finding
// carrying the error instead.
func (e *Engine) Evaluate(h *stock.History) *model.Report {
	rep := &model.Report{Symbol: h.Symbol(), Days: h.Len()}
	if first, ok := h.First(); ok {
		rep.First = first.Date
	}
	if last, ok := h.Last(); ok {
		rep.Last = last.Date
	}

	for _, a := range e.analysers {
		a.Reset()
		h.Analyse(a)
		rep.Findings = append(rep.Findings, findings(a)...)
	}
	return rep
}

func findings(a Analyser) []model.Finding {
	name := a.Name()
	switch v := a.(type) {
	case *HighLow:
		high, low, err := v.Result()
		if err != nil {
			return []model.Finding{failed(name, "high", err), failed(name, "low", err)}
		}
		return []model.Finding{
			{Analyser: name, Metric: "high", Value: high},
			{Analyser: name, Metric: "low", Value: low},
		}
	case *MovingAverage:
		metric := fmt.Sprintf("sma_%d", v.Window())
		avg, err := v.Result()
		if err != nil {
			return []model.Finding{failed(name, metric, err)}
		}
		return []model.Finding{{Analyser: name, Metric: metric, Value: avg}}
	case *GapUp:
		day, err := v.Result()
		if err != nil {
			return []model.Finding{failed(name, "latest", err)}
		}
		return []model.Finding{{Analyser: name, Metric: "latest", Value: day.Open, Date: day.Date}}
	case *AverageVolume:
		avg, err := v.Result()
		if err != nil {
			return []model.Finding{failed(name, "mean", err)}
		}
		return []model.Finding{{Analyser: name, Metric: "mean", Value: avg}}
	case *RSI:
		metric := fmt.Sprintf("rsi_%d", v.period)
		rsi, err := v.Result()
		if err != nil {
			return []model.Finding{failed(name, metric, err)}
		}
		return []model.Finding{{Analyser: name, Metric: metric, Value: rsi}}
	default:
		return []model.Finding{failed(name, "result", ErrUnknownAnalyser)}
	}
}

func failed(analyser, metric string, err error) model.Finding {
	return model.Finding{Analyser: analyser, Metric: metric, Err: err.Error()}
}
