package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/stream-ops/orders-cli/internal/report"
)

func writeFixture(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestNormalizeCommand(t *testing.T) {
	dir := t.TempDir()

	fileA := writeFixture(t, dir, "a.xlsx", buildWorkbook(t,
		[]string{"كود الاوردر", "اسم العميل", "المدينة", "الكمية"},
		[][]string{
			{"A1", "سارة", "حولي", "2"},
			{"", "", "", "1"},
		}))
	fileB := writeFixture(t, dir, "b.xlsx", buildWorkbook(t,
		[]string{"كود الاوردر", "رقم الموبايل"},
		[][]string{
			{"B2", "0200"},
		}))

	outDir := t.TempDir()
	normalizeInputs = nil // array flags accumulate across Execute calls
	rootCmd.SetArgs([]string{"normalize", "--in", fileA, "--in", fileB, "--out", outDir})
	require.NoError(t, rootCmd.Execute())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	// Normalized plus grouped workbook.
	require.Len(t, entries, 2)

	normalizedName := report.FileName(cfg.Output.NormalizedLabel, time.Now())
	var found bool
	for _, e := range entries {
		if e.Name() == normalizedName {
			found = true
			f, err := xlsx.OpenFile(filepath.Join(outDir, e.Name()))
			require.NoError(t, err)
			require.Len(t, f.Sheets, 1)
			// Header + three data rows (continuation row kept).
			assert.Len(t, f.Sheets[0].Rows, 4)
		}
		assert.True(t, strings.HasSuffix(e.Name(), ".xlsx"))
	}
	assert.True(t, found, "normalized workbook not written")
}

func TestNormalizeCommand_Flat(t *testing.T) {
	dir := t.TempDir()
	file := writeFixture(t, dir, "a.xlsx", buildWorkbook(t,
		[]string{"كود الاوردر"},
		[][]string{{"A1"}}))

	outDir := t.TempDir()
	normalizeInputs = nil
	rootCmd.SetArgs([]string{"normalize", "--in", file, "--out", outDir, "--flat"})
	require.NoError(t, rootCmd.Execute())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Reset the sticky flag for other tests.
	normalizeFlat = false
}

func TestNormalizeCommand_MissingInput(t *testing.T) {
	outDir := t.TempDir()
	normalizeInputs = nil
	rootCmd.SetArgs([]string{"normalize", "--in", filepath.Join(outDir, "nope.xlsx"), "--out", outDir})
	require.Error(t, rootCmd.Execute())
}
