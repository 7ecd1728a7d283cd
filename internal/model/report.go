package model

// Finding is one named output of one analyser. Err is set instead of Value
// when the analyser could not produce a result.
type Finding struct {
	Analyser string
	Metric   string
	Value    float64
	Date     string // set when the finding points at a trading day
	Err      string
}

// OK reports whether the finding carries a value.
func (f Finding) OK() bool { return f.Err == "" }

// Report is the result of evaluating every configured analyser over one symbol.
type Report struct {
	Symbol   string
	Days     int
	First    string
	Last     string
	Findings []Finding
}

// Finding returns the first finding matching analyser and metric.
func (r *Report) Finding(analyser, metric string) (Finding, bool) {
	for _, f := range r.Findings {
		if f.Analyser == analyser && f.Metric == metric {
			return f, true
		}
	}
	return Finding{}, false
}
