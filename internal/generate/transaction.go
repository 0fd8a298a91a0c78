package generate

import (
	"fmt"
	"time"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/catalog"
	"github.com/SuperTinCan/CapitalOneAssistant/internal/domain"
)

// Transaction synthesis ranges.
const (
	lookbackMinutes = 60 * 24 * 90 // timestamps fall within the last 90 days

	smallAmountMean = 20.0 // exponential mean of the everyday-purchase regime
	minLargeAmount  = 200.0
	maxLargeAmount  = 5000.0
	minAmount       = 0.01 // exponential draws can round to zero; amounts must stay positive

	riskNoiseLow  = -0.02
	riskNoiseHigh = 0.05

	highAmountFactor = 2.5

	minVelocity = 1
	maxVelocity = 6
)

// Transactions synthesizes an ordered batch of count transactions for the
// given account. Order is generation order, not chronological. Every record
// carries the account's device fingerprint; the fraud injector runs
// separately and may later rewrite a subset.
func (g *Generator) Transactions(acct *domain.Account, count int) []domain.Transaction {
	txns := make([]domain.Transaction, count)
	for i := range txns {
		txns[i] = g.newTransaction(acct, i)
	}
	return txns
}

func (g *Generator) newTransaction(acct *domain.Account, seq int) domain.Transaction {
	ts := g.now.Add(-time.Duration(g.rng.Intn(lookbackMinutes+1)) * time.Minute)

	cat := g.pickCategory()
	amount := g.drawAmount()

	country := domain.CountryDomestic
	if g.rng.Float64() < g.cfg.ForeignRate {
		country = domain.CountryForeign
	}

	return domain.Transaction{
		TxnID:             txnID(acct.UserID, seq),
		UserID:            acct.UserID,
		Timestamp:         ts,
		Amount:            amount,
		Currency:          domain.Currency,
		Merchant:          pick(g.rng, catalog.Merchants(cat)),
		MerchantCategory:  cat,
		City:              g.faker.City(),
		Country:           country,
		Channel:           pick(g.rng, []string{domain.ChannelPOS, domain.ChannelOnline, domain.ChannelATM}),
		IsForeign:         country != domain.CountryDomestic,
		IsHighAmount:      isHighAmount(amount, acct.AvgMonthlySpend),
		Velocity24h:       minVelocity + g.rng.Intn(maxVelocity-minVelocity+1),
		DeviceFingerprint: acct.DeviceFingerprint,
		IPCountry:         country, // mirrors the transaction country outside injected patterns
		MerchantRiskScore: round2(catalog.RiskWeight(cat) + g.uniform(riskNoiseLow, riskNoiseHigh)),
		LabelFraud:        g.rng.Float64() < g.cfg.BaselineFraudRate,
		UserReportedIssue: false,
	}
}

// txnID builds the stable, zero-padded per-account ordinal identifier.
func txnID(userID string, seq int) string {
	return fmt.Sprintf("t_%s_%05d", userID, seq)
}

// drawAmount implements the two-regime amount model: frequent small
// purchases from an exponential distribution, occasional large ones from a
// uniform range. Cent precision, floored so amounts stay positive.
func (g *Generator) drawAmount() float64 {
	var amount float64
	if g.rng.Float64() < g.cfg.LargeAmountRate {
		amount = g.uniform(minLargeAmount, maxLargeAmount)
	} else {
		amount = g.rng.ExpFloat64() * smallAmountMean
	}
	amount = round2(amount)
	if amount < minAmount {
		amount = minAmount
	}
	return amount
}

// pickCategory draws a category using the catalog's fixed weight vector.
func (g *Generator) pickCategory() string {
	cats := catalog.Categories()
	total := 0
	for _, w := range catalog.Weights {
		total += w
	}
	r := g.rng.Intn(total)
	for i, w := range catalog.Weights {
		r -= w
		if r < 0 {
			return cats[i]
		}
	}
	return cats[len(cats)-1]
}

func isHighAmount(amount, avgMonthlySpend float64) bool {
	return amount > avgMonthlySpend*highAmountFactor
}
