// Command generate synthesizes a population of bank-account holders with
// transaction histories and injected fraud patterns, then exports it as
// JSON and CSV under the output directory.
//
// Usage:
//
//	go run ./cmd/generate [flags]
//
// Flags:
//
//	-users  Number of accounts to synthesize (default: 5)
//	-txns   Transactions per account (default: 1000)
//	-seed   Random seed; equal seeds produce equal datasets (default: 42)
//	-out    Output directory (default: data)
//
// The fraud knobs (-fraud-rate, -burst-rate, -cardtest-rate) exist mainly
// for producing evaluation datasets with known label distributions.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/export"
	"github.com/SuperTinCan/CapitalOneAssistant/internal/generate"
)

func main() {
	cfg := generate.DefaultConfig()

	flag.IntVar(&cfg.Users, "users", cfg.Users, "number of accounts to synthesize")
	flag.IntVar(&cfg.TxPerUser, "txns", cfg.TxPerUser, "transactions per account")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.Float64Var(&cfg.BaselineFraudRate, "fraud-rate", cfg.BaselineFraudRate, "baseline fraud label rate")
	flag.Float64Var(&cfg.BurstPatternRate, "burst-rate", cfg.BurstPatternRate, "large-foreign-burst pattern rate")
	flag.Float64Var(&cfg.CardTestPatternRate, "cardtest-rate", cfg.CardTestPatternRate, "card-testing pattern rate")
	outDir := flag.String("out", "data", "output directory")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	gen, err := generate.New(cfg)
	if err != nil {
		slog.Error("configuration rejected", "error", err)
		os.Exit(1)
	}

	ds := gen.Run()

	if err := export.WriteDataset(*outDir, ds); err != nil {
		slog.Error("export failed", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	flagged := 0
	for _, a := range ds.Accounts {
		if a.TrueRiskFlag {
			flagged++
		}
	}

	slog.Info("dataset written",
		"dir", *outDir,
		"run_id", ds.RunID,
		"seed", ds.Seed,
		"accounts", len(ds.Accounts),
		"transactions", len(ds.Transactions),
		"true_risk_accounts", flagged,
	)
}
