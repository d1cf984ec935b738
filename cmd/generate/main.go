package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"creditflow360/internal/config"
	"creditflow360/internal/export"
	"creditflow360/internal/generator"
	"creditflow360/pkg/id"
)

func main() {
	cfg := config.Load()

	seed := flag.Int64("seed", cfg.GenSeed, "random seed for the run")
	customers := flag.Int("customers", cfg.GenCustomers, "number of customers to generate (0 = default)")
	loans := flag.Int("loans", cfg.GenLoans, "number of loan applications to generate (0 = default)")
	transactions := flag.Int("transactions", cfg.GenTransactions, "number of transactions to generate (0 = default)")
	fraudRate := flag.Float64("fraud-rate", cfg.GenTargetFraudRate, "target share of loans carrying a fraud mark")
	asOfRaw := flag.String("as-of", "", "generation anchor date, YYYY-MM-DD (default: today)")
	outDir := flag.String("output-dir", cfg.ExportDir, "directory for CSV/JSON exports")
	flag.Parse()

	asOf := cfg.GenAsOf
	if *asOfRaw != "" {
		ts, err := time.Parse("2006-01-02", *asOfRaw)
		if err != nil {
			log.Fatalf("invalid -as-of %q: %v", *asOfRaw, err)
		}
		asOf = ts.UTC()
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC().Truncate(24 * time.Hour)
	}

	eng, err := generator.NewEngine(generator.Config{
		Seed:            *seed,
		NumCustomers:    *customers,
		NumLoans:        *loans,
		NumTransactions: *transactions,
		TargetFraudRate: *fraudRate,
		AsOf:            asOf,
	})
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	started := time.Now()
	ds, err := eng.GenerateAll()
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	runID := id.NewID32()
	files, err := export.NewWriter(*outDir).Export(ds, runID)
	if err != nil {
		log.Fatalf("export: %v", err)
	}

	fmt.Printf("run %s completed in %s\n", runID, time.Since(started).Round(time.Millisecond))
	fmt.Printf("  customers:    %d\n", len(ds.Customers))
	fmt.Printf("  loans:        %d (approved %d / rejected %d)\n",
		len(ds.Loans), ds.Quality.Summary.ApprovedLoans, ds.Quality.Summary.RejectedLoans)
	fmt.Printf("  collateral:   %d\n", len(ds.Collateral))
	fmt.Printf("  transactions: %d\n", len(ds.Transactions))
	fmt.Printf("  fraud alerts: %d (marked loans %d)\n", len(ds.FraudAlerts), ds.Quality.Summary.FraudLoans)
	fmt.Printf("  quality:      %.4f\n", ds.Quality.OverallScore)
	for _, f := range files {
		fmt.Printf("  wrote %s\n", f)
	}
}
