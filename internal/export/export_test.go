package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/domain"
	"github.com/SuperTinCan/CapitalOneAssistant/internal/export"
	"github.com/SuperTinCan/CapitalOneAssistant/internal/generate"
)

func testDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	cfg := generate.DefaultConfig()
	cfg.Users = 2
	cfg.TxPerUser = 25
	cfg.Seed = 7
	cfg.Now = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	g, err := generate.New(cfg)
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	return g.Run()
}

func writeDataset(t *testing.T, ds *domain.Dataset) string {
	t.Helper()
	dir := t.TempDir()
	if err := export.WriteDataset(dir, ds); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}
	return dir
}

// ─── Record comparison ────────────────────────────────────────────────────────

func sameAccount(a, b domain.Account) bool {
	return a.UserID == b.UserID &&
		a.Name == b.Name &&
		a.AccountType == b.AccountType &&
		a.OpenedAt.Equal(b.OpenedAt) &&
		a.AccountBalance == b.AccountBalance &&
		a.AvgMonthlySpend == b.AvgMonthlySpend &&
		a.StdMonthlySpend == b.StdMonthlySpend &&
		a.CardStatus == b.CardStatus &&
		a.ReportedPriority == b.ReportedPriority &&
		a.TrueRiskFlag == b.TrueRiskFlag &&
		a.ChargebackHistory == b.ChargebackHistory &&
		a.LastLoginIPCountry == b.LastLoginIPCountry &&
		a.DeviceFingerprint == b.DeviceFingerprint
}

func sameTransaction(a, b domain.Transaction) bool {
	return a.TxnID == b.TxnID &&
		a.UserID == b.UserID &&
		a.Timestamp.Equal(b.Timestamp) &&
		a.Amount == b.Amount &&
		a.Currency == b.Currency &&
		a.Merchant == b.Merchant &&
		a.MerchantCategory == b.MerchantCategory &&
		a.City == b.City &&
		a.Country == b.Country &&
		a.Channel == b.Channel &&
		a.IsForeign == b.IsForeign &&
		a.IsHighAmount == b.IsHighAmount &&
		a.Velocity24h == b.Velocity24h &&
		a.DeviceFingerprint == b.DeviceFingerprint &&
		a.IPCountry == b.IPCountry &&
		a.MerchantRiskScore == b.MerchantRiskScore &&
		a.LabelFraud == b.LabelFraud &&
		a.UserReportedIssue == b.UserReportedIssue
}

// ─── Round trips ──────────────────────────────────────────────────────────────

func TestWriteDataset_ProducesEveryArtifact(t *testing.T) {
	ds := testDataset(t)
	dir := writeDataset(t, ds)

	for _, name := range []string{
		export.AccountsJSON, export.TransactionsJSON,
		export.AccountsCSV, export.TransactionsCSV, export.ManifestJSON,
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("artifact %s missing: %v", name, err)
		}
	}
}

func TestRoundTrip_JSON(t *testing.T) {
	ds := testDataset(t)
	dir := writeDataset(t, ds)

	accounts, err := export.ReadAccountsJSON(filepath.Join(dir, export.AccountsJSON))
	if err != nil {
		t.Fatalf("read accounts: %v", err)
	}
	txns, err := export.ReadTransactionsJSON(filepath.Join(dir, export.TransactionsJSON))
	if err != nil {
		t.Fatalf("read transactions: %v", err)
	}

	if len(accounts) != len(ds.Accounts) || len(txns) != len(ds.Transactions) {
		t.Fatalf("record counts changed: %d/%d accounts, %d/%d transactions",
			len(accounts), len(ds.Accounts), len(txns), len(ds.Transactions))
	}
	for i := range accounts {
		if !sameAccount(accounts[i], ds.Accounts[i]) {
			t.Fatalf("account %d changed in JSON round trip:\n got %+v\nwant %+v",
				i, accounts[i], ds.Accounts[i])
		}
	}
	for i := range txns {
		if !sameTransaction(txns[i], ds.Transactions[i]) {
			t.Fatalf("transaction %d changed in JSON round trip:\n got %+v\nwant %+v",
				i, txns[i], ds.Transactions[i])
		}
	}
}

func TestRoundTrip_CSV(t *testing.T) {
	ds := testDataset(t)
	dir := writeDataset(t, ds)

	accounts, err := export.ReadAccountsCSV(filepath.Join(dir, export.AccountsCSV))
	if err != nil {
		t.Fatalf("read accounts: %v", err)
	}
	txns, err := export.ReadTransactionsCSV(filepath.Join(dir, export.TransactionsCSV))
	if err != nil {
		t.Fatalf("read transactions: %v", err)
	}

	if len(accounts) != len(ds.Accounts) || len(txns) != len(ds.Transactions) {
		t.Fatalf("record counts changed: %d/%d accounts, %d/%d transactions",
			len(accounts), len(ds.Accounts), len(txns), len(ds.Transactions))
	}
	for i := range accounts {
		if !sameAccount(accounts[i], ds.Accounts[i]) {
			t.Fatalf("account %d changed in CSV round trip:\n got %+v\nwant %+v",
				i, accounts[i], ds.Accounts[i])
		}
	}
	for i := range txns {
		if !sameTransaction(txns[i], ds.Transactions[i]) {
			t.Fatalf("transaction %d changed in CSV round trip:\n got %+v\nwant %+v",
				i, txns[i], ds.Transactions[i])
		}
	}
}

// IDs must be identical and identically ordered across the two formats.
func TestExports_StableIDsAcrossFormats(t *testing.T) {
	ds := testDataset(t)
	dir := writeDataset(t, ds)

	fromJSON, err := export.ReadTransactionsJSON(filepath.Join(dir, export.TransactionsJSON))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	fromCSV, err := export.ReadTransactionsCSV(filepath.Join(dir, export.TransactionsCSV))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	if len(fromJSON) != len(fromCSV) {
		t.Fatalf("formats disagree on record count: %d vs %d", len(fromJSON), len(fromCSV))
	}
	for i := range fromJSON {
		if fromJSON[i].TxnID != fromCSV[i].TxnID {
			t.Fatalf("row %d: json id %s, csv id %s", i, fromJSON[i].TxnID, fromCSV[i].TxnID)
		}
	}
}

func TestManifest_RoundTrip(t *testing.T) {
	ds := testDataset(t)
	dir := writeDataset(t, ds)

	m, err := export.ReadManifest(filepath.Join(dir, export.ManifestJSON))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if m.RunID != ds.RunID || m.Seed != ds.Seed {
		t.Errorf("manifest identity mismatch: %+v", m)
	}
	if m.Accounts != len(ds.Accounts) || m.Transactions != len(ds.Transactions) {
		t.Errorf("manifest counts mismatch: %+v", m)
	}
}

// ─── Failure modes ────────────────────────────────────────────────────────────

func TestWriteDataset_UncreatableDir_Fails(t *testing.T) {
	ds := testDataset(t)

	// A regular file where the directory should go makes MkdirAll fail on
	// every platform, regardless of the process's privileges.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := export.WriteDataset(blocker, ds); err == nil {
		t.Fatal("expected error writing into a non-directory path")
	}
}

func TestWriteDataset_PublishFailure_LeavesNoPartials(t *testing.T) {
	ds := testDataset(t)
	dir := t.TempDir()

	// A non-empty directory squatting on the first artifact name makes its
	// rename fail after all temp files were staged.
	squat := filepath.Join(dir, export.AccountsJSON)
	if err := os.MkdirAll(filepath.Join(squat, "occupied"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := export.WriteDataset(dir, ds); err == nil {
		t.Fatal("expected publish error")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() == export.AccountsJSON {
			continue // the squatter itself
		}
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("staged temp file %s left behind", e.Name())
			continue
		}
		t.Errorf("partial artifact %s left behind", e.Name())
	}
}
