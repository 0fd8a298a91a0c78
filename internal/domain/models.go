// Package domain contains all core types used across the application.
// Keeping the record schemas in one place makes the generation rules and
// the export field order easy to reason about.
package domain

import "time"

// ─── Constants ───────────────────────────────────────────────────────────────

// Currency is fixed for the whole dataset; every synthetic account operates
// in the bank's home market.
const Currency = "USD"

// Account types.
const (
	AccountChecking = "checking"
	AccountSavings  = "savings"
)

// Card statuses.
const (
	CardActive = "active"
	CardFrozen = "frozen"
)

// Self-reported priority levels. These are what the user claims, not what
// the data shows — a fraction of users exaggerate to "high" regardless of
// their actual risk.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Transaction channels.
const (
	ChannelPOS    = "POS"
	ChannelOnline = "online"
	ChannelATM    = "atm"
)

// Geography. Transactions are mostly domestic with a rare foreign draw;
// injected fraud bursts originate from the high-risk set.
const (
	CountryDomestic = "US"
	CountryForeign  = "JP"
)

// HighRiskCountries are the origins used by the large-foreign-burst
// fraud pattern.
var HighRiskCountries = []string{"RU", "CN", "NG"}

// LoginCountries are the plausible last-login IP countries for accounts.
var LoginCountries = []string{"US", "CA", "GB"}

// ─── Core domain types ────────────────────────────────────────────────────────

// Account is one synthetic bank-account holder with their spending-behaviour
// baselines. Records are created once per generation run and never mutated
// afterwards, except that the fraud injector may set TrueRiskFlag.
type Account struct {
	UserID             string    `json:"user_id"`
	Name               string    `json:"name"`
	AccountType        string    `json:"account_type"` // checking | savings
	OpenedAt           time.Time `json:"opened_at"`    // date precision
	AccountBalance     float64   `json:"account_balance"`
	AvgMonthlySpend    float64   `json:"avg_monthly_spend"`
	StdMonthlySpend    float64   `json:"std_monthly_spend"` // always a fraction of the average
	CardStatus         string    `json:"card_status"`       // active | frozen
	ReportedPriority   string    `json:"reported_priority"` // low | medium | high
	TrueRiskFlag       bool      `json:"true_risk_flag"`    // set only by the fraud injector
	ChargebackHistory  int       `json:"chargeback_history"`
	LastLoginIPCountry string    `json:"last_login_ip_country"`
	DeviceFingerprint  string    `json:"device_fingerprint"` // shared by all the account's transactions
}

// Transaction is one synthetic purchase/withdrawal event tied to an account.
//
// IsForeign and IsHighAmount are derived fields and are kept consistent with
// Country and Amount at all times, including after fraud-pattern rewrites.
type Transaction struct {
	TxnID             string    `json:"txn_id"`  // unique per run: t_<user>_<00042>
	UserID            string    `json:"user_id"` // always references an exported account
	Timestamp         time.Time `json:"timestamp"`
	Amount            float64   `json:"amount"` // > 0, cent precision
	Currency          string    `json:"currency"`
	Merchant          string    `json:"merchant"`
	MerchantCategory  string    `json:"merchant_category"`
	City              string    `json:"city"`
	Country           string    `json:"country"`
	Channel           string    `json:"channel"` // POS | online | atm
	IsForeign         bool      `json:"is_foreign"`
	IsHighAmount      bool      `json:"is_high_amount"` // amount > 2.5 × owner's avg monthly spend
	Velocity24h       int       `json:"velocity_24h"`   // sampled 1-6, not computed from neighbours
	DeviceFingerprint string    `json:"device_fingerprint"`
	IPCountry         string    `json:"ip_country"`
	MerchantRiskScore float64   `json:"merchant_risk_score"`
	LabelFraud        bool      `json:"label_fraud"`
	UserReportedIssue bool      `json:"user_reported_issue"` // always false at generation time
}

// Dataset is the complete, immutable output of one generation run.
type Dataset struct {
	RunID        string        `json:"run_id"`
	GeneratedAt  time.Time     `json:"generated_at"`
	Seed         int64         `json:"seed"`
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
}

// ─── Fraud-score join (downstream artifact) ───────────────────────────────────

// FraudScore is one row of the separately produced fraud-scoring table.
// It is consumed, never produced, by this repository.
type FraudScore struct {
	TxnID      string  `json:"txn_id"`
	FraudScore float64 `json:"fraud_score"`
	FraudLabel bool    `json:"fraud_label"`
}

// ScoredTransaction is a transaction left-joined with its fraud score.
// Transactions without a score default to 0.0 / false.
type ScoredTransaction struct {
	Transaction
	FraudScore float64 `json:"fraud_score"`
	FraudLabel bool    `json:"fraud_label"`
}
