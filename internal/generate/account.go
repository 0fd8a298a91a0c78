package generate

import (
	"time"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/domain"
)

// Account synthesis ranges.
const (
	minMonthlySpend = 300.0
	maxMonthlySpend = 2000.0
	minSpendStdFrac = 0.2
	maxSpendStdFrac = 0.8
	maxBalance      = 10000.0
	maxChargebacks  = 2
)

// NewAccount synthesizes one fully populated account for the given user ID.
// It has no side effects beyond the returned record; TrueRiskFlag always
// starts false and only the fraud injector may set it.
func (g *Generator) NewAccount(userID string) domain.Account {
	avg := round2(g.uniform(minMonthlySpend, maxMonthlySpend))

	acct := domain.Account{
		UserID:          userID,
		Name:            g.faker.Name(),
		AccountType:     pick(g.rng, []string{domain.AccountChecking, domain.AccountSavings}),
		OpenedAt:        g.openDate(),
		AccountBalance:  round2(g.uniform(0, maxBalance)), // liquidity is uncoupled from spend
		AvgMonthlySpend: avg,
		// Volatility is proportional to the average so low-spend accounts
		// never get implausibly large variance.
		StdMonthlySpend:    round2(avg * g.uniform(minSpendStdFrac, maxSpendStdFrac)),
		CardStatus:         pick(g.rng, []string{domain.CardActive, domain.CardFrozen}),
		ReportedPriority:   pick(g.rng, []string{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}),
		TrueRiskFlag:       false,
		ChargebackHistory:  g.rng.Intn(maxChargebacks + 1),
		LastLoginIPCountry: pick(g.rng, domain.LoginCountries),
		DeviceFingerprint:  g.faker.Lexify("dev_???"),
	}

	// Some users exaggerate severity to get attention. The override is
	// deliberately decoupled from true risk.
	if g.rng.Float64() < g.cfg.PriorityExaggerationRate {
		acct.ReportedPriority = domain.PriorityHigh
	}

	return acct
}

// openDate draws an account opening date between 1 and 6 years before
// generation time, truncated to day precision.
func (g *Generator) openDate() time.Time {
	days := 365 + g.rng.Intn(5*365+1)
	d := g.now.AddDate(0, 0, -days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
