package commands

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/sieread/internal/config"
)

const samplePath = "../../testdata/sample.se"

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

// run executes the root command in-process with a config path that does
// not exist, so defaults apply.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestAccounts_Text(t *testing.T) {
	out, stderr, err := run(t, "accounts", samplePath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6, "header + 5 accounts with balances")
	assert.True(t, strings.HasPrefix(lines[0], "Account"))
	assert.Contains(t, lines[1], "1910")
	assert.Contains(t, lines[1], "1500.00")
	assert.Contains(t, lines[1], "2750.00")
	assert.Contains(t, lines[2], "Företagskonto")

	// Change sits between the opening and closing balances.
	assert.Contains(t, lines[0], "Change")
	change := strings.Index(lines[1], "1250.00")
	assert.Greater(t, change, strings.Index(lines[1], "1500.00"))
	assert.Less(t, change, strings.Index(lines[1], "2750.00"))
	assert.Contains(t, lines[2], "-3125.00")

	// Columns line up even with multi-byte names.
	assert.Equal(t, strings.Index(lines[1], "2750.00")+len("2750.00"), len(lines[1]))

	// Anomalies go to the log.
	assert.Contains(t, stderr, "opening balance for unknown account 1510")
	assert.Contains(t, stderr, "unknown-trans-account")
}

func TestAccounts_HidesZeroBalances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.se")
	data := "#KONTO 1910 Kassa\n#KONTO 1930 Bank\n#IB 0 1910 10\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, _, err := run(t, "accounts", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1910")
	assert.NotContains(t, out, "1930")

	out, _, err = run(t, "accounts", "--all", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1930")
}

func TestAccounts_Single(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.se")
	data := "#KONTO 1910 Kassa\n#KONTO 1930 Bank\n#IB 0 1910 10\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, _, err := run(t, "accounts", "--account", "1930", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "1930")
	assert.Contains(t, lines[1], "Bank")

	_, _, err = run(t, "accounts", "--account", "2440", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 2440 not found")
}

func TestAccounts_CSV(t *testing.T) {
	out, _, err := run(t, "accounts", "--format", "csv", "--all", samplePath)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"account_number", "account_name", "opening_balance", "closing_balance"}, records[0])
	assert.Equal(t, []string{"1930", "Företagskonto", "25000.00", "21875.00"}, records[2])
}

func TestAccounts_CSVRejectsManyFiles(t *testing.T) {
	_, _, err := run(t, "accounts", "--format", "csv", samplePath, samplePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one file")
}

func TestAccounts_BadFormat(t *testing.T) {
	_, _, err := run(t, "accounts", "--format", "xml", samplePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestAccounts_MissingFile(t *testing.T) {
	_, _, err := run(t, "accounts", filepath.Join(t.TempDir(), "missing.se"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAccounts_EmptyDir(t *testing.T) {
	_, _, err := run(t, "accounts", t.TempDir())
	require.ErrorIs(t, err, errNoFiles)
}

func TestAccounts_Directory(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024.se"), data, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2023.se"), []byte("#KONTO 1910 Kassa\n#IB 0 1910 1\n"), 0o644))

	out, _, err := run(t, "accounts", dir)
	require.NoError(t, err)
	first := strings.Index(out, "== "+filepath.Join(dir, "2023.se"))
	second := strings.Index(out, "== "+filepath.Join(dir, "2024.se"))
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
}

func TestVerifications_Text(t *testing.T) {
	out, _, err := run(t, "verifications", samplePath)
	require.NoError(t, err)
	assert.Contains(t, out, "A-1      20240105   Kontantförsäljning")
	assert.Contains(t, out, "B-1      20240215   Övrigt")
	assert.Contains(t, out, "    5010            5000.00")
}

func TestVerifications_Filters(t *testing.T) {
	out, _, err := run(t, "ver", "--serie", "B", samplePath)
	require.NoError(t, err)
	assert.Contains(t, out, "B-1")
	assert.NotContains(t, out, "A-1")

	out, _, err = run(t, "ver", "--account", "1910", samplePath)
	require.NoError(t, err)
	assert.Contains(t, out, "A-1")
	assert.NotContains(t, out, "A-2")

	out, _, err = run(t, "ver", "--id", "A-2", samplePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Hyra januari")
	assert.NotContains(t, out, "A-1")

	_, _, err = run(t, "ver", "--id", "C-1", samplePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verification C-1 not found")
}

func TestVerifications_AccountZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.se")
	data := lines(
		"#KONTO 1910 Kassa",
		`#VER A 1 20240101 "Kassa in"`,
		"#TRANS 1910 {} 10",
		`#VER A 2 20240102 "Trasigt konto"`,
		"#TRANS x {} 5",
	)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, _, err := run(t, "ver", path)
	require.NoError(t, err)
	assert.Contains(t, out, "A-1")
	assert.Contains(t, out, "A-2")

	out, stderr, err := run(t, "ver", "--account", "0", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Trasigt konto")
	assert.NotContains(t, out, "Kassa in")
	assert.Contains(t, stderr, "account not in chart")

	_, stderr, err = run(t, "ver", "--account", "1910", path)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "account not in chart")
}

func TestVerifications_CSV(t *testing.T) {
	out, _, err := run(t, "verifications", "--format", "csv", samplePath)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8, "header + 7 postings")
	assert.Equal(t, []string{"A-1", "A", "1", "20240105", "Kontantförsäljning", "1910", "1250.00"}, records[1])
}

func TestCheck(t *testing.T) {
	out, stderr, err := run(t, "check", samplePath)
	require.NoError(t, err)
	assert.Contains(t, out, samplePath+": 5 accounts, 3 verifications, 2 anomalies")
	assert.Contains(t, out, "  series: A, B\n")
	assert.Contains(t, out, "  unknown-ib-account: 1\n  unknown-trans-account: 1\n")
	assert.Contains(t, out, "line 16 [unknown-ib-account]: opening balance for unknown account 1510")
	assert.Contains(t, out, "line 32 [unknown-trans-account]")
	assert.NotContains(t, stderr, "unknown account")
}

func TestCheck_CSV(t *testing.T) {
	out, _, err := run(t, "check", "--csv", samplePath)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"16", "unknown-ib-account", "1510", "opening balance for unknown account 1510"}, records[1])
}

func TestCheck_Strict(t *testing.T) {
	_, _, err := run(t, "check", "--strict", samplePath)
	require.ErrorIs(t, err, errAnomaliesFound)

	clean := filepath.Join(t.TempDir(), "clean.se")
	require.NoError(t, os.WriteFile(clean, []byte("#KONTO 1910 Kassa\n"), 0o644))
	_, _, err = run(t, "check", "--strict", clean)
	require.NoError(t, err)
}

func TestCheck_NoVerifications(t *testing.T) {
	clean := filepath.Join(t.TempDir(), "clean.se")
	require.NoError(t, os.WriteFile(clean, []byte("#KONTO 1910 Kassa\n#KONTO 1930 Bank\n"), 0o644))

	out, _, err := run(t, "check", clean)
	require.NoError(t, err)
	assert.Equal(t, clean+": 2 accounts, 0 verifications, 0 anomalies\n", out)
}

func TestConfig_Explicit(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.FileName)
	cfg := config.Default()
	cfg.Report.Format = config.FormatCSV
	cfg.Report.ShowZeroBalances = true
	require.NoError(t, config.Save(cfgPath, cfg))

	out, _, err := run(t, "--config", cfgPath, "accounts", samplePath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "account_number,"))
}

func TestConfig_ExplicitMissing(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "accounts", samplePath)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogLevel(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "error", "accounts", samplePath)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = run(t, "--log-level", "debug", "accounts", samplePath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "parsed")

	_, _, err = run(t, "--log-level", "loud", "accounts", samplePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuring logger")
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "books")
	out, _, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote ")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, _, err = run(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = run(t, "init", "--force", dir)
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none, built: unknown)")
}
