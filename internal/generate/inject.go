package generate

import (
	"time"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/domain"
)

// Large-foreign-burst pattern ranges.
const (
	burstMinAmount = 1500.0
	burstMaxAmount = 5000.0
	burstRiskScore = 0.95
)

// Card-testing pattern ranges.
const (
	cardTestMinAmount = 0.5
	cardTestMaxAmount = 5.0
)

// InjectPatterns post-processes a freshly synthesized batch with the two
// narrative fraud patterns. Each pattern fires independently with its
// configured rate; both may fire on the same account and their index
// selections may overlap.
//
// The input batch is never mutated: the rewritten copy is returned along
// with whether any pattern fired, and the caller decides what to do with
// the account's true-risk flag. Derived fields touched by a rewrite
// (IsForeign, IsHighAmount) are re-derived, never left stale.
//
// The caller must guarantee len(txns) is large enough for the card-testing
// block offset; Config.Validate enforces this before generation starts.
func (g *Generator) InjectPatterns(acct *domain.Account, txns []domain.Transaction) ([]domain.Transaction, bool) {
	out := append([]domain.Transaction(nil), txns...)
	fired := false

	// Pattern A: one large purchase routed through a high-risk country.
	if g.rng.Float64() < g.cfg.BurstPatternRate {
		g.rewriteForeignBurst(acct, out)
		fired = true
	}

	// Pattern B: a rapid-fire run of tiny purchases probing a stolen card.
	if g.rng.Float64() < g.cfg.CardTestPatternRate {
		g.rewriteCardTest(acct, out)
		fired = true
	}

	return out, fired
}

func (g *Generator) rewriteForeignBurst(acct *domain.Account, txns []domain.Transaction) {
	idx := g.rng.Intn(len(txns))
	tx := &txns[idx]

	origin := pick(g.rng, domain.HighRiskCountries)
	tx.Amount = round2(g.uniform(burstMinAmount, burstMaxAmount))
	tx.Country = origin
	tx.IPCountry = origin
	tx.IsForeign = true
	tx.IsHighAmount = isHighAmount(tx.Amount, acct.AvgMonthlySpend)
	tx.MerchantRiskScore = burstRiskScore
	tx.LabelFraud = true
}

func (g *Generator) rewriteCardTest(acct *domain.Account, txns []domain.Transaction) {
	// Offset range matches the minimum-batch guard in Config.Validate.
	offset := g.rng.Intn(len(txns) - minBatchForCardTest + 1)

	for k := 0; k < cardTestBlockSize; k++ {
		tx := &txns[offset+k]
		tx.Amount = round2(g.uniform(cardTestMinAmount, cardTestMaxAmount))
		// One-minute steps ending at generation time.
		tx.Timestamp = g.now.Add(-time.Duration(cardTestBlockSize-1-k) * time.Minute)
		tx.IsHighAmount = isHighAmount(tx.Amount, acct.AvgMonthlySpend)
		tx.LabelFraud = true
	}
}
