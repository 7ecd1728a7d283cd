package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile, dataDir, dbPath, logLevel, symbols = "", "", "", "", nil
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stocklens dev\n", out)
}

func TestAnalyse(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "march1.csv")
	require.NoError(t, os.WriteFile(csv, []byte("ADV,20200101,10,12,9,11,500\nADV,20200102,11,15,10,14,700\n"), 0644))
	db := filepath.Join(dir, "runs.db")

	out, err := run(t, "analyse", "--config", filepath.Join(dir, "absent.yaml"), "--db", db, "--log-level", "error", csv)
	require.NoError(t, err)
	assert.Contains(t, out, "ADV")
	assert.Contains(t, out, "15.0000")
	assert.FileExists(t, db)
}

func TestAnalyse_BadSource(t *testing.T) {
	dir := t.TempDir()
	trp := filepath.Join(dir, "feb1.trp")
	require.NoError(t, os.WriteFile(trp, []byte("ADV:date:20200101\n"), 0644))

	_, err := run(t, "analyse", "--config", filepath.Join(dir, "absent.yaml"), "--log-level", "error", trp)
	assert.Error(t, err)
}

func TestAnalyse_InvalidSymbolFlag(t *testing.T) {
	_, err := run(t, "analyse", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "--symbol", "AB")
	assert.Error(t, err)
}
