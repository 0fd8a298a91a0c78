// Package store provides an in-memory view over one exported dataset.
//
// Design rationale: a generation run produces an immutable snapshot, so the
// store is built once at load time and never written again — no locking is
// needed. A per-account secondary index gives O(1) lookup of an account's
// transactions while the newest-first ordering is computed once per index
// at load time rather than per request.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/domain"
	"github.com/SuperTinCan/CapitalOneAssistant/internal/export"
)

// Errors reported while indexing a dataset. Any of these means the export
// pair is inconsistent and should be regenerated.
var (
	ErrDuplicateAccount     = errors.New("duplicate account id")
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	ErrUnknownAccount       = errors.New("transaction references unknown account")
)

// Store is an immutable, indexed view of one dataset.
type Store struct {
	manifest export.Manifest

	accounts     map[string]*domain.Account
	accountOrder []string // export order

	transactions map[string]*domain.Transaction
	txByUser     map[string][]*domain.Transaction // newest first

	scores map[string]domain.FraudScore
}

// New indexes the given records. It verifies the dataset invariants:
// account and transaction identifiers are unique and every transaction
// references an exported account.
func New(accounts []domain.Account, txns []domain.Transaction) (*Store, error) {
	s := &Store{
		accounts:     make(map[string]*domain.Account, len(accounts)),
		transactions: make(map[string]*domain.Transaction, len(txns)),
		txByUser:     make(map[string][]*domain.Transaction),
		scores:       make(map[string]domain.FraudScore),
	}

	for i := range accounts {
		a := &accounts[i]
		if _, exists := s.accounts[a.UserID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, a.UserID)
		}
		s.accounts[a.UserID] = a
		s.accountOrder = append(s.accountOrder, a.UserID)
	}

	for i := range txns {
		t := &txns[i]
		if _, exists := s.transactions[t.TxnID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTransaction, t.TxnID)
		}
		if _, exists := s.accounts[t.UserID]; !exists {
			return nil, fmt.Errorf("%w: %s owned by %s", ErrUnknownAccount, t.TxnID, t.UserID)
		}
		s.transactions[t.TxnID] = t
		s.txByUser[t.UserID] = append(s.txByUser[t.UserID], t)
	}

	for _, list := range s.txByUser {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Timestamp.After(list[j].Timestamp)
		})
	}

	return s, nil
}

// Load builds a store from an export directory. The fraud-score table and
// the manifest are optional; everything else is required.
func Load(dir string) (*Store, error) {
	accounts, err := export.ReadAccountsJSON(filepath.Join(dir, export.AccountsJSON))
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	txns, err := export.ReadTransactionsJSON(filepath.Join(dir, export.TransactionsJSON))
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	s, err := New(accounts, txns)
	if err != nil {
		return nil, err
	}

	if m, err := export.ReadManifest(filepath.Join(dir, export.ManifestJSON)); err == nil {
		s.manifest = m
	}

	scores, err := export.ReadFraudScoresCSV(filepath.Join(dir, export.FraudScoresCSV))
	switch {
	case err == nil:
		for _, sc := range scores {
			s.scores[sc.TxnID] = sc
		}
	case os.IsNotExist(err):
		// No scoring table yet; joins fall back to the 0.0 / false defaults.
	default:
		return nil, fmt.Errorf("load fraud scores: %w", err)
	}

	return s, nil
}

// Manifest returns the run manifest, zero-valued if none was exported.
func (s *Store) Manifest() export.Manifest {
	return s.manifest
}

// GetAccount retrieves one account by user ID.
func (s *Store) GetAccount(userID string) (*domain.Account, bool) {
	a, ok := s.accounts[userID]
	return a, ok
}

// Accounts returns every account in export order.
func (s *Store) Accounts() []domain.Account {
	out := make([]domain.Account, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		out = append(out, *s.accounts[id])
	}
	return out
}

// RecentTransactions returns up to limit of the account's transactions,
// newest first, each left-joined with its fraud score. Transactions without
// a score carry 0.0 / false. A limit <= 0 returns all of them.
func (s *Store) RecentTransactions(userID string, limit int) []domain.ScoredTransaction {
	list := s.txByUser[userID]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}

	out := make([]domain.ScoredTransaction, len(list))
	for i, t := range list {
		st := domain.ScoredTransaction{Transaction: *t}
		if sc, ok := s.scores[t.TxnID]; ok {
			st.FraudScore = sc.FraudScore
			st.FraudLabel = sc.FraudLabel
		}
		out[i] = st
	}
	return out
}

// Summary holds headline metrics over the loaded dataset.
type Summary struct {
	RunID            string  `json:"run_id,omitempty"`
	Accounts         int     `json:"accounts"`
	Transactions     int     `json:"transactions"`
	FraudLabeled     int     `json:"fraud_labeled"`
	FraudRate        float64 `json:"fraud_rate"`
	TrueRiskAccounts int     `json:"true_risk_accounts"`
	ScoredCount      int     `json:"scored_count"`
}

// Summarize computes dataset-wide metrics.
func (s *Store) Summarize() Summary {
	sum := Summary{
		RunID:        s.manifest.RunID,
		Accounts:     len(s.accounts),
		Transactions: len(s.transactions),
		ScoredCount:  len(s.scores),
	}
	for _, t := range s.transactions {
		if t.LabelFraud {
			sum.FraudLabeled++
		}
	}
	for _, a := range s.accounts {
		if a.TrueRiskFlag {
			sum.TrueRiskAccounts++
		}
	}
	if sum.Transactions > 0 {
		sum.FraudRate = float64(sum.FraudLabeled) / float64(sum.Transactions)
	}
	return sum
}
