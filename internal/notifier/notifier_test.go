package notifier

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockLens/internal/model"
)

func TestFormatReport(t *testing.T) {
	out := FormatReport(&model.Report{
		Symbol: "ADV", Days: 3, First: "20200101", Last: "20200103",
		Findings: []model.Finding{
			{Analyser: "high_low", Metric: "high", Value: 15},
			{Analyser: "gap_up", Metric: "latest", Value: 11.5, Date: "20200102"},
			{Analyser: "rsi", Metric: "rsi_14", Err: "insufficient data"},
		},
	})

	assert.Contains(t, out, "ADV")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "15.0000")
	assert.Contains(t, out, "11.5000 on 20200102")
	assert.Contains(t, out, "n/a: insufficient data")
}

func TestFormatReport_Empty(t *testing.T) {
	out := FormatReport(&model.Report{Symbol: "NIL"})
	assert.Contains(t, out, "no records")
}

func TestFormatSummary(t *testing.T) {
	assert.Contains(t, FormatSummary("abc", 2, 3, 0), "2 symbols from 3 sources")
	assert.Contains(t, FormatSummary("abc", 2, 3, 1), "1 skipped")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)
	require.NoError(t, n.Send("one\n"))
	require.NoError(t, n.Send("two\n"))
	assert.Equal(t, "one\ntwo\n", buf.String())

	assert.Error(t, NewWriterNotifier(failingWriter{}).Send("x"))
}
