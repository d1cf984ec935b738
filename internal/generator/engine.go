package generator

import (
	"fmt"
	"log"
	"time"

	"creditflow360/internal/domain/collateral"
	"creditflow360/internal/domain/customer"
	"creditflow360/internal/domain/fraud"
	"creditflow360/internal/domain/loan"
	"creditflow360/internal/domain/product"
	"creditflow360/internal/domain/transaction"
)

// Config sizes one generation run. Zero counts fall back to the standard
// portfolio shape; AsOf anchors every date so two runs with the same config
// produce identical output.
type Config struct {
	Seed            int64
	NumCustomers    int
	NumLoans        int
	NumTransactions int
	TargetFraudRate float64
	AsOf            time.Time
}

const (
	defaultNumCustomers    = 50000
	defaultNumLoans        = 200000
	defaultNumTransactions = 1000000
	defaultTargetFraudRate = 0.03
)

func (c *Config) Validate() error {
	if c.NumCustomers == 0 {
		c.NumCustomers = defaultNumCustomers
	}
	if c.NumLoans == 0 {
		c.NumLoans = defaultNumLoans
	}
	if c.NumTransactions == 0 {
		c.NumTransactions = defaultNumTransactions
	}
	if c.TargetFraudRate == 0 {
		c.TargetFraudRate = defaultTargetFraudRate
	}
	if c.NumCustomers < 0 || c.NumLoans < 0 || c.NumTransactions < 0 {
		return fmt.Errorf("generator: negative record count in config")
	}
	if c.TargetFraudRate < 0 || c.TargetFraudRate > 1 {
		return fmt.Errorf("generator: target fraud rate %v outside [0,1]", c.TargetFraudRate)
	}
	if c.AsOf.IsZero() {
		return fmt.Errorf("generator: as-of anchor is required")
	}
	return nil
}

// Dataset is the complete output of one run.
type Dataset struct {
	Customers    []customer.Customer
	Loans        []loan.Loan
	Collateral   []collateral.Collateral
	Transactions []transaction.Transaction
	FraudAlerts  []fraud.Alert
	Quality      QualityReport
}

// Engine runs the full pipeline: customers, loans with collateral,
// transactions, fraud scan, enrichment, validation. Every stage gets its
// own seeded source so adding records to one stage never shifts another.
type Engine struct {
	cfg     Config
	catalog *product.Catalog
}

func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, catalog: product.Default()}, nil
}

func (e *Engine) GenerateAll() (*Dataset, error) {
	start := time.Now()
	log.Printf("generation run starting: seed=%d customers=%d loans=%d transactions=%d",
		e.cfg.Seed, e.cfg.NumCustomers, e.cfg.NumLoans, e.cfg.NumTransactions)

	customers := NewCustomerGenerator(e.cfg.Seed, e.cfg.AsOf).Generate(e.cfg.NumCustomers)
	log.Printf("generated %d customers", len(customers))

	loans, collaterals, err := NewLoanGenerator(e.cfg.Seed, e.catalog, e.cfg.AsOf).
		Generate(customers, e.cfg.NumLoans)
	if err != nil {
		return nil, fmt.Errorf("generating loans: %w", err)
	}
	log.Printf("generated %d loans, %d collateral records", len(loans), len(collaterals))

	txns := NewTransactionGenerator(e.cfg.Seed, e.cfg.AsOf).
		GenerateAll(loans, customers, e.cfg.NumTransactions)
	log.Printf("generated %d transactions", len(txns))

	alerts, patches := NewFraudGenerator(e.cfg.Seed, e.cfg.AsOf).GenerateAll(loans, customers)
	applyFraudPatches(loans, patches)
	log.Printf("generated %d fraud alerts, flagged %d loans", len(alerts), len(patches))

	quality := BuildQualityReport(customers, loans, txns, alerts, e.cfg.AsOf)
	quality.TargetFraudRate = e.cfg.TargetFraudRate
	log.Printf("quality score %.1f%%, run took %s", quality.OverallScore*100, time.Since(start).Round(time.Millisecond))

	return &Dataset{
		Customers:    customers,
		Loans:        loans,
		Collateral:   collaterals,
		Transactions: txns,
		FraudAlerts:  alerts,
		Quality:      quality,
	}, nil
}

// applyFraudPatches writes the fraud marks back onto the loan slice. This
// is the only place loans are mutated after the loan stage.
func applyFraudPatches(loans []loan.Loan, patches []LoanPatch) {
	if len(patches) == 0 {
		return
	}
	byID := make(map[string]*loan.Loan, len(loans))
	for i := range loans {
		byID[loans[i].LoanID] = &loans[i]
	}
	for _, p := range patches {
		l, ok := byID[p.LoanID]
		if !ok {
			continue
		}
		l.Fraud = &loan.FraudMark{
			Type:          string(p.Type),
			DetectionDate: p.DetectionDate,
		}
	}
}
