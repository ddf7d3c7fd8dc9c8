package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/config"
	"github.com/pennywise-dev/pennywise/internal/inflation"
	"github.com/pennywise-dev/pennywise/internal/ledger"
)

const (
	testRates    = "../../testdata/rates.csv"
	testExpenses = "../../testdata/expenses.csv"
)

func runPennywise(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// withData appends flags pointing at the testdata rate table and expenses.
// No pennywise.yaml exists in this directory, so defaults apply.
func withData(t *testing.T, args ...string) []string {
	t.Helper()
	return append(args, "--rates", testRates, "--expenses", testExpenses)
}

func TestInit_WritesConfigAndExpenses(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "budget")
	out, _, err := runPennywise(t, "init", dir, "--rates-file", "cpi.csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized pennywise project")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "cpi.csv", cfg.RatesFile)
	assert.Equal(t, "expenses.csv", cfg.ExpensesFile)

	f, err := os.Open(filepath.Join(dir, "expenses.csv"))
	require.NoError(t, err)
	defer f.Close()
	expenses, err := ledger.ReadExpenses(f)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runPennywise(t, "init", dir)
	require.NoError(t, err)

	_, _, err = runPennywise(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCategory(t *testing.T) {
	out, _, err := runPennywise(t, withData(t, "category", "food")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Amount")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "300.00")
	assert.Contains(t, out, "45.50")
	assert.NotContains(t, out, "travel")
	assert.NotContains(t, out, "1200.00")
}

func TestCategory_NoMatch(t *testing.T) {
	out, _, err := runPennywise(t, withData(t, "category", "yachts")...)
	require.NoError(t, err)
	assert.Contains(t, out, `No expenses in category "yachts"`)
}

func TestCategories(t *testing.T) {
	out, _, err := runPennywise(t, withData(t, "categories")...)
	require.NoError(t, err)
	assert.Equal(t, "food\nrent\ntravel\n", out)
}

func TestSummaryMonth(t *testing.T) {
	out, _, err := runPennywise(t, withData(t, "summary", "month", "march", "2019")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Expense Summary for March 2019")
	assert.Contains(t, out, "Amount Spent")
	assert.Contains(t, out, "145.50")
	assert.Contains(t, out, "1200.00")
	assert.NotContains(t, out, "travel")
}

func TestSummaryMonth_NoData(t *testing.T) {
	out, _, err := runPennywise(t, withData(t, "summary", "month", "June", "2019")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrNoData)
	assert.Empty(t, out, "no chart for an empty period")
}

func TestSummaryMonth_BadInput(t *testing.T) {
	_, _, err := runPennywise(t, withData(t, "summary", "month", "Smarch", "2019")...)
	require.Error(t, err)

	_, _, err = runPennywise(t, withData(t, "summary", "month", "March", "20x9")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing year")
}

func TestSummaryYear(t *testing.T) {
	out, _, err := runPennywise(t, withData(t, "summary", "year", "2019")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Expense Summary for 2019")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[2], "Jan"))
	assert.True(t, strings.HasSuffix(lines[2], "-"), "January has no data")
	assert.True(t, strings.HasSuffix(lines[4], "1345.50"), "March totals every category")
	assert.True(t, strings.HasSuffix(lines[5], "200.00"))
}

func TestSummaryYear_NoData(t *testing.T) {
	_, _, err := runPennywise(t, withData(t, "summary", "year", "2027")...)
	assert.ErrorIs(t, err, ledger.ErrNoData)
}

func TestAdjust_Table(t *testing.T) {
	out, _, err := runPennywise(t, withData(t, "adjust", "2019")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Adjusted Amount")
	assert.Contains(t, out, "103.00")
	assert.Contains(t, out, "206.00")
	assert.Contains(t, out, "1236.00")
}

func TestAdjust_CSV(t *testing.T) {
	out, _, err := runPennywise(t, withData(t, "adjust", "2019", "--csv")...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, ledger.AdjustedHeader, lines[0])
	assert.Equal(t, "100.00,food,Mar,2019,3,103.00", lines[1])
}

func TestAdjust_Unavailable(t *testing.T) {
	_, _, err := runPennywise(t, withData(t, "adjust", "2021")...)
	assert.ErrorIs(t, err, ledger.ErrAdjustmentUnavailable)
}

func TestAdjust_MissingAverage(t *testing.T) {
	_, _, err := runPennywise(t, withData(t, "adjust", "2010")...)
	assert.ErrorIs(t, err, inflation.ErrRateUnavailable)
}

func TestInflate(t *testing.T) {
	out, _, err := runPennywise(t, withData(t, "inflate", "100", "food", "March", "2019")...)
	require.NoError(t, err)
	assert.Equal(t, "your inflation adjusted expense is 103.00\n", out)
}

func TestInflate_MissingRate(t *testing.T) {
	_, _, err := runPennywise(t, withData(t, "inflate", "100", "food", "June", "2021")...)
	assert.ErrorIs(t, err, inflation.ErrRateUnavailable)
}

func TestConfigFile_RelativePaths(t *testing.T) {
	dir := t.TempDir()
	copyFile(t, testRates, filepath.Join(dir, "rates.csv"))
	copyFile(t, testExpenses, filepath.Join(dir, "spent.csv"))

	cfg := config.Default()
	cfg.RatesFile = "rates.csv"
	cfg.ExpensesFile = "spent.csv"
	cfgPath := filepath.Join(dir, config.FileName)
	require.NoError(t, config.Save(cfgPath, cfg))

	out, _, err := runPennywise(t, "categories", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "food\nrent\ntravel\n", out)
}

func TestConfigFile_ExplicitMissing(t *testing.T) {
	_, _, err := runPennywise(t, "categories", "--config", filepath.Join(t.TempDir(), "gone.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMissingExpensesFile_StartsEmpty(t *testing.T) {
	_, stderr, err := runPennywise(t, "summary", "year", "2019",
		"--rates", testRates,
		"--expenses", filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, ledger.ErrNoData)
	assert.Contains(t, stderr, "expenses file not found")
}

func TestLogLevelFlag(t *testing.T) {
	_, stderr, err := runPennywise(t, withData(t, "categories", "--log-level", "debug")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded rate table")
	assert.Contains(t, stderr, "loaded expenses")
}

func TestLogLevelFlag_Invalid(t *testing.T) {
	_, _, err := runPennywise(t, withData(t, "categories", "--log-level", "loud")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestVersion(t *testing.T) {
	out, _, err := runPennywise(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}

func copyFile(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}
