package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockLens/internal/config"
	"StockLens/internal/stock"
)

func TestNewEngine_FromConfig(t *testing.T) {
	e, err := NewEngine(config.AnalysisConfig{
		Analysers:           []string{NameHighLow, NameMovingAverage, NameRSI},
		MovingAverageWindow: 2,
		RSIPeriod:           3,
	})
	require.NoError(t, err)
	require.Len(t, e.Analysers(), 3)
	assert.Equal(t, NameMovingAverage, e.Analysers()[1].Name())
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := NewEngine(config.AnalysisConfig{Analysers: []string{"macd"}})
	assert.ErrorIs(t, err, ErrUnknownAnalyser)

	_, err = NewEngine(config.AnalysisConfig{Analysers: []string{NameMovingAverage}})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewEngine(config.AnalysisConfig{Analysers: []string{NameRSI}})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestEvaluate(t *testing.T) {
	reg := stock.NewRegistry()
	var entries []stock.Entry
	for _, b := range sampleBars(t) {
		entries = append(entries, stock.Entry{Symbol: "ADV", Record: b})
	}
	require.NoError(t, reg.Commit(entries))
	h, _ := reg.Lookup("ADV")

	e, err := NewEngine(config.AnalysisConfig{
		Analysers:           Names,
		MovingAverageWindow: 2,
		GapUpDelta:          0.1,
		RSIPeriod:           10,
	})
	require.NoError(t, err)

	rep := e.Evaluate(h)
	assert.Equal(t, "ADV", rep.Symbol)
	assert.Equal(t, 4, rep.Days)
	assert.Equal(t, "20200101", rep.First)
	assert.Equal(t, "20200104", rep.Last)

	high, ok := rep.Finding(NameHighLow, "high")
	require.True(t, ok)
	assert.Equal(t, 15.0, high.Value)

	sma, ok := rep.Finding(NameMovingAverage, "sma_2")
	require.True(t, ok)
	assert.InDelta(t, 9.4, sma.Value, 1e-9)

	gap, ok := rep.Finding(NameGapUp, "latest")
	require.True(t, ok)
	assert.True(t, gap.OK())
	assert.Equal(t, "20200104", gap.Date)

	vol, ok := rep.Finding(NameAverageVolume, "mean")
	require.True(t, ok)
	assert.Equal(t, 400.0, vol.Value)

	// Four closes are not enough for a 10-period RSI.
	rsi, ok := rep.Finding(NameRSI, "rsi_10")
	require.True(t, ok)
	assert.False(t, rsi.OK())
	assert.Contains(t, rsi.Err, ErrInsufficientData.Error())
}

func TestEvaluate_ReusesAnalysersAcrossSymbols(t *testing.T) {
	reg := stock.NewRegistry()
	require.NoError(t, reg.Commit([]stock.Entry{
		{Symbol: "AAA", Record: bar(t, "20200101", 1, 50, 1, 1, 10)},
		{Symbol: "BBB", Record: bar(t, "20200101", 1, 5, 1, 1, 20)},
	}))
	e := NewEngineWith(NewHighLow(), NewAverageVolume())

	a, _ := reg.Lookup("AAA")
	b, _ := reg.Lookup("BBB")
	e.Evaluate(a)
	rep := e.Evaluate(b)

	high, _ := rep.Finding(NameHighLow, "high")
	assert.Equal(t, 5.0, high.Value)
	vol, _ := rep.Finding(NameAverageVolume, "mean")
	assert.Equal(t, 20.0, vol.Value)
}

func TestEvaluate_EmptyHistory(t *testing.T) {
	reg := stock.NewRegistry()
	h, err := reg.GetOrCreate("NIL")
	require.NoError(t, err)
	rep := NewEngineWith(NewHighLow(), NewGapUp(0)).Evaluate(h)

	assert.Equal(t, 0, rep.Days)
	require.Len(t, rep.Findings, 3)
	for _, fd := range rep.Findings {
		assert.False(t, fd.OK())
	}
}
