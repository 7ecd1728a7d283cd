package recorder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockLens/internal/model"
)

func openTemp(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "stocklens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_RecordLoad(t *testing.T) {
	r := openTemp(t)
	require.NoError(t, r.RecordLoad(&LoadEvent{RunID: "run-1", Source: "a.csv", Format: "delimited", Records: 4, Duration: 2}))
	require.NoError(t, r.RecordLoad(&LoadEvent{RunID: "run-1", Source: "b.trp", Format: "triplet", Error: "bad block"}))

	var n int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM load_events WHERE run_id = ?`, "run-1").Scan(&n))
	assert.Equal(t, 2, n)

	var msg string
	require.NoError(t, r.db.QueryRow(`SELECT error FROM load_events WHERE source = ?`, "b.trp").Scan(&msg))
	assert.Equal(t, "bad block", msg)
}

func TestSQLiteRecorder_RecordReport(t *testing.T) {
	r := openTemp(t)
	rep := &model.Report{
		Symbol: "ADV", Days: 3, First: "20200101", Last: "20200103",
		Findings: []model.Finding{
			{Analyser: "high_low", Metric: "high", Value: 15},
			{Analyser: "gap_up", Metric: "latest", Value: 11.5, Date: "20200102"},
			{Analyser: "rsi", Metric: "rsi_14", Err: "insufficient data"},
		},
	}
	require.NoError(t, r.RecordReport("run-2", rep))

	var n int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM analysis_results WHERE symbol = 'ADV'`).Scan(&n))
	assert.Equal(t, 3, n)

	var value float64
	var date string
	require.NoError(t, r.db.QueryRow(
		`SELECT value, value_date FROM analysis_results WHERE analyser = 'gap_up'`).Scan(&value, &date))
	assert.Equal(t, 11.5, value)
	assert.Equal(t, "20200102", date)
}

func TestSQLiteRecorder_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocklens.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.RecordLoad(&LoadEvent{RunID: "x", Source: "a.csv"}))
	require.NoError(t, r.Close())

	r, err = NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()
	var n int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM load_events`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordLoad(&LoadEvent{}))
	assert.NoError(t, r.RecordReport("x", &model.Report{}))
	assert.NoError(t, r.Close())
}
