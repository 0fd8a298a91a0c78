package generate

import (
	"errors"
	"fmt"
	"time"
)

// Design-default rates and ranges for the synthesizers and the injector.
const (
	DefaultBaselineFraudRate        = 0.02
	DefaultForeignRate              = 0.03
	DefaultLargeAmountRate          = 0.05
	DefaultPriorityExaggerationRate = 0.12
	DefaultBurstPatternRate         = 0.20
	DefaultCardTestPatternRate      = 0.15
)

// cardTestBlockSize is the length of the contiguous block rewritten by the
// card-testing pattern; minBatchForCardTest is the smallest batch whose
// random block offset is non-degenerate.
const (
	cardTestBlockSize   = 8
	minBatchForCardTest = 20
)

// Config holds every tunable of a generation run. It is passed explicitly
// into the generator — there is no package-level state — so concurrent runs
// with different parameters cannot interfere.
type Config struct {
	Users     int   // number of accounts to synthesize
	TxPerUser int   // transactions per account
	Seed      int64 // seeds the shared random source; equal seeds give equal datasets

	// Now pins the generation instant. The zero value means the current
	// time; fixing it together with Seed makes two runs byte-identical.
	Now time.Time

	BaselineFraudRate float64 // Bernoulli rate of background fraud labels
	ForeignRate       float64 // chance a transaction is foreign
	LargeAmountRate   float64 // chance of the large-purchase amount regime

	PriorityExaggerationRate float64 // chance a user over-reports priority as "high"

	BurstPatternRate    float64 // chance of the large-foreign-burst pattern per account
	CardTestPatternRate float64 // chance of the card-testing pattern per account
}

// DefaultConfig returns a Config with the design-default rates.
func DefaultConfig() Config {
	return Config{
		Users:                    5,
		TxPerUser:                1000,
		Seed:                     42,
		BaselineFraudRate:        DefaultBaselineFraudRate,
		ForeignRate:              DefaultForeignRate,
		LargeAmountRate:          DefaultLargeAmountRate,
		PriorityExaggerationRate: DefaultPriorityExaggerationRate,
		BurstPatternRate:         DefaultBurstPatternRate,
		CardTestPatternRate:      DefaultCardTestPatternRate,
	}
}

// ErrBatchTooSmall is returned when the card-testing pattern could fire on a
// batch too small to hold its block at a random offset. Treating this as a
// configuration error keeps the injected fraud rate predictable instead of
// silently skipping injections.
var ErrBatchTooSmall = fmt.Errorf(
	"card-testing pattern needs at least %d transactions per user", minBatchForCardTest)

// Validate checks the configuration before any generation begins.
func (c Config) Validate() error {
	if c.Users <= 0 {
		return errors.New("users must be positive")
	}
	if c.TxPerUser <= 0 {
		return errors.New("transactions per user must be positive")
	}
	for _, r := range []struct {
		name string
		v    float64
	}{
		{"baseline fraud rate", c.BaselineFraudRate},
		{"foreign rate", c.ForeignRate},
		{"large amount rate", c.LargeAmountRate},
		{"priority exaggeration rate", c.PriorityExaggerationRate},
		{"burst pattern rate", c.BurstPatternRate},
		{"card test pattern rate", c.CardTestPatternRate},
	} {
		if r.v < 0 || r.v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", r.name, r.v)
		}
	}
	if c.CardTestPatternRate > 0 && c.TxPerUser < minBatchForCardTest {
		return ErrBatchTooSmall
	}
	return nil
}
