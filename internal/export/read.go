package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/domain"
)

// ─── JSON readers ─────────────────────────────────────────────────────────────

// ReadAccountsJSON loads the hierarchical account export.
func ReadAccountsJSON(path string) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := readJSON(path, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ReadTransactionsJSON loads the hierarchical transaction export.
func ReadTransactionsJSON(path string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	if err := readJSON(path, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// ReadManifest loads the run manifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	err := readJSON(path, &m)
	return m, err
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ─── CSV readers ──────────────────────────────────────────────────────────────

// ReadAccountsCSV loads the tabular account export.
func ReadAccountsCSV(path string) ([]domain.Account, error) {
	rows, err := readCSV(path, accountHeader)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(rows))
	for i, rec := range rows {
		a, err := parseAccountRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// ReadTransactionsCSV loads the tabular transaction export.
func ReadTransactionsCSV(path string) ([]domain.Transaction, error) {
	rows, err := readCSV(path, transactionHeader)
	if err != nil {
		return nil, err
	}

	txns := make([]domain.Transaction, 0, len(rows))
	for i, rec := range rows {
		t, err := parseTransactionRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// ReadFraudScoresCSV loads the downstream fraud-scoring table. The label
// column accepts both 0/1 and true/false encodings.
func ReadFraudScoresCSV(path string) ([]domain.FraudScore, error) {
	rows, err := readCSV(path, []string{"txn_id", "fraud_score", "fraud_label"})
	if err != nil {
		return nil, err
	}

	scores := make([]domain.FraudScore, 0, len(rows))
	for i, rec := range rows {
		score, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: fraud_score: %w", path, i+2, err)
		}
		label, err := strconv.ParseBool(rec[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: fraud_label: %w", path, i+2, err)
		}
		scores = append(scores, domain.FraudScore{TxnID: rec[0], FraudScore: score, FraudLabel: label})
	}
	return scores, nil
}

// readCSV reads all data rows of a file after verifying the header matches
// the expected fixed column order.
func readCSV(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	for i, col := range header {
		if rows[0][i] != col {
			return nil, fmt.Errorf("%s: column %d is %q, want %q", path, i, rows[0][i], col)
		}
	}
	return rows[1:], nil
}

func parseAccountRecord(rec []string) (domain.Account, error) {
	var a domain.Account
	var err error

	a.UserID = rec[0]
	a.Name = rec[1]
	a.AccountType = rec[2]
	if a.OpenedAt, err = time.ParseInLocation(openedAtLayout, rec[3], time.UTC); err != nil {
		return a, fmt.Errorf("opened_at: %w", err)
	}
	if a.AccountBalance, err = strconv.ParseFloat(rec[4], 64); err != nil {
		return a, fmt.Errorf("account_balance: %w", err)
	}
	if a.AvgMonthlySpend, err = strconv.ParseFloat(rec[5], 64); err != nil {
		return a, fmt.Errorf("avg_monthly_spend: %w", err)
	}
	if a.StdMonthlySpend, err = strconv.ParseFloat(rec[6], 64); err != nil {
		return a, fmt.Errorf("std_monthly_spend: %w", err)
	}
	a.CardStatus = rec[7]
	a.ReportedPriority = rec[8]
	if a.TrueRiskFlag, err = strconv.ParseBool(rec[9]); err != nil {
		return a, fmt.Errorf("true_risk_flag: %w", err)
	}
	if a.ChargebackHistory, err = strconv.Atoi(rec[10]); err != nil {
		return a, fmt.Errorf("chargeback_history: %w", err)
	}
	a.LastLoginIPCountry = rec[11]
	a.DeviceFingerprint = rec[12]
	return a, nil
}

func parseTransactionRecord(rec []string) (domain.Transaction, error) {
	var t domain.Transaction
	var err error

	t.TxnID = rec[0]
	t.UserID = rec[1]
	if t.Timestamp, err = time.Parse(time.RFC3339, rec[2]); err != nil {
		return t, fmt.Errorf("timestamp: %w", err)
	}
	if t.Amount, err = strconv.ParseFloat(rec[3], 64); err != nil {
		return t, fmt.Errorf("amount: %w", err)
	}
	t.Currency = rec[4]
	t.Merchant = rec[5]
	t.MerchantCategory = rec[6]
	t.City = rec[7]
	t.Country = rec[8]
	t.Channel = rec[9]
	if t.IsForeign, err = strconv.ParseBool(rec[10]); err != nil {
		return t, fmt.Errorf("is_foreign: %w", err)
	}
	if t.IsHighAmount, err = strconv.ParseBool(rec[11]); err != nil {
		return t, fmt.Errorf("is_high_amount: %w", err)
	}
	if t.Velocity24h, err = strconv.Atoi(rec[12]); err != nil {
		return t, fmt.Errorf("velocity_24h: %w", err)
	}
	t.DeviceFingerprint = rec[13]
	t.IPCountry = rec[14]
	if t.MerchantRiskScore, err = strconv.ParseFloat(rec[15], 64); err != nil {
		return t, fmt.Errorf("merchant_risk_score: %w", err)
	}
	if t.LabelFraud, err = strconv.ParseBool(rec[16]); err != nil {
		return t, fmt.Errorf("label_fraud: %w", err)
	}
	if t.UserReportedIssue, err = strconv.ParseBool(rec[17]); err != nil {
		return t, fmt.Errorf("user_reported_issue: %w", err)
	}
	return t, nil
}
