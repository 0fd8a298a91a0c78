// Package export serializes a generated dataset to its flat-file artifacts:
// hierarchical JSON and tabular CSV for both accounts and transactions, plus
// a small run manifest. It also provides the matching readers used by the
// inspection server and round-trip tests.
//
// All artifacts are staged as temp files and renamed into place only after
// every write succeeds, so a failed run never leaves partial exports behind.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/domain"
)

// Artifact file names, fixed per run and overwritten by the next run.
const (
	AccountsJSON     = "accounts.json"
	TransactionsJSON = "transactions.json"
	AccountsCSV      = "accounts.csv"
	TransactionsCSV  = "transactions.csv"
	ManifestJSON     = "manifest.json"
	FraudScoresCSV   = "fraud_scores.csv" // produced downstream, only ever read here
)

// Manifest identifies one generation run.
type Manifest struct {
	RunID        string    `json:"run_id"`
	GeneratedAt  time.Time `json:"generated_at"`
	Seed         int64     `json:"seed"`
	Accounts     int       `json:"accounts"`
	Transactions int       `json:"transactions"`
}

// Tabular layouts. Column order is fixed and matches the record field order.
var accountHeader = []string{
	"user_id", "name", "account_type", "opened_at", "account_balance",
	"avg_monthly_spend", "std_monthly_spend", "card_status",
	"reported_priority", "true_risk_flag", "chargeback_history",
	"last_login_ip_country", "device_fingerprint",
}

var transactionHeader = []string{
	"txn_id", "user_id", "timestamp", "amount", "currency", "merchant",
	"merchant_category", "city", "country", "channel", "is_foreign",
	"is_high_amount", "velocity_24h", "device_fingerprint", "ip_country",
	"merchant_risk_score", "label_fraud", "user_reported_issue",
}

const openedAtLayout = "2006-01-02"

// ─── Writing ──────────────────────────────────────────────────────────────────

// WriteDataset writes every artifact for the dataset into dir, creating the
// directory if needed. Either all artifacts land or none do.
func WriteDataset(dir string, ds *domain.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	artifacts := []struct {
		name  string
		write func(io.Writer) error
	}{
		{AccountsJSON, func(w io.Writer) error { return encodeJSON(w, ds.Accounts) }},
		{TransactionsJSON, func(w io.Writer) error { return encodeJSON(w, ds.Transactions) }},
		{AccountsCSV, func(w io.Writer) error { return writeAccountsCSV(w, ds.Accounts) }},
		{TransactionsCSV, func(w io.Writer) error { return writeTransactionsCSV(w, ds.Transactions) }},
		{ManifestJSON, func(w io.Writer) error {
			return encodeJSON(w, Manifest{
				RunID:        ds.RunID,
				GeneratedAt:  ds.GeneratedAt,
				Seed:         ds.Seed,
				Accounts:     len(ds.Accounts),
				Transactions: len(ds.Transactions),
			})
		}},
	}

	// Stage everything first; only a fully written set gets renamed in.
	staged := make([]string, 0, len(artifacts))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for _, a := range artifacts {
		tmp, err := writeTemp(dir, a.name, a.write)
		if err != nil {
			cleanup()
			return fmt.Errorf("write %s: %w", a.name, err)
		}
		staged = append(staged, tmp)
	}

	for i, a := range artifacts {
		if err := os.Rename(staged[i], filepath.Join(dir, a.name)); err != nil {
			// Roll back what this run already published so the directory
			// never holds a partial artifact set.
			for _, prev := range artifacts[:i] {
				os.Remove(filepath.Join(dir, prev.name))
			}
			for _, tmp := range staged[i:] {
				os.Remove(tmp)
			}
			return fmt.Errorf("publish %s: %w", a.name, err)
		}
	}
	return nil
}

func writeTemp(dir, name string, write func(io.Writer) error) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeAccountsCSV(w io.Writer, accounts []domain.Account) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(accountHeader); err != nil {
		return err
	}
	for i := range accounts {
		a := &accounts[i]
		rec := []string{
			a.UserID,
			a.Name,
			a.AccountType,
			a.OpenedAt.Format(openedAtLayout),
			formatMoney(a.AccountBalance),
			formatMoney(a.AvgMonthlySpend),
			formatMoney(a.StdMonthlySpend),
			a.CardStatus,
			a.ReportedPriority,
			strconv.FormatBool(a.TrueRiskFlag),
			strconv.Itoa(a.ChargebackHistory),
			a.LastLoginIPCountry,
			a.DeviceFingerprint,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTransactionsCSV(w io.Writer, txns []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionHeader); err != nil {
		return err
	}
	for i := range txns {
		t := &txns[i]
		rec := []string{
			t.TxnID,
			t.UserID,
			t.Timestamp.Format(time.RFC3339),
			formatMoney(t.Amount),
			t.Currency,
			t.Merchant,
			t.MerchantCategory,
			t.City,
			t.Country,
			t.Channel,
			strconv.FormatBool(t.IsForeign),
			strconv.FormatBool(t.IsHighAmount),
			strconv.Itoa(t.Velocity24h),
			t.DeviceFingerprint,
			t.IPCountry,
			formatMoney(t.MerchantRiskScore),
			strconv.FormatBool(t.LabelFraud),
			strconv.FormatBool(t.UserReportedIssue),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatMoney renders a cent-precision value with exactly two decimals.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
