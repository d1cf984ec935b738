package warehouse

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"creditflow360/internal/domain/product"
	"creditflow360/internal/generator"
)

const batchSize = 500

// Loader writes a generated dataset into the star schema.
type Loader struct{ db *gorm.DB }

func NewLoader(db *gorm.DB) *Loader { return &Loader{db: db} }

// Migrate creates or updates every warehouse table.
func (l *Loader) Migrate() error {
	return l.db.AutoMigrate(
		&DimCustomer{}, &DimProduct{}, &DimCollateral{},
		&FactLoan{}, &FactTransaction{}, &FactFraudAlert{},
	)
}

// LoadAll loads dimensions first, then facts, in one transaction: a failed
// run leaves no partial tables behind.
func (l *Loader) LoadAll(ctx context.Context, ds *generator.Dataset, catalog *product.Catalog) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		loader := &Loader{db: tx}
		if err := loader.LoadProducts(ctx, catalog); err != nil {
			return fmt.Errorf("loading dim_product: %w", err)
		}
		if err := loader.LoadCustomers(ctx, ds); err != nil {
			return fmt.Errorf("loading dim_customer: %w", err)
		}
		if err := loader.LoadCollateral(ctx, ds); err != nil {
			return fmt.Errorf("loading dim_collateral: %w", err)
		}
		if err := loader.LoadLoans(ctx, ds); err != nil {
			return fmt.Errorf("loading fact_loan: %w", err)
		}
		if err := loader.LoadTransactions(ctx, ds); err != nil {
			return fmt.Errorf("loading fact_transaction: %w", err)
		}
		if err := loader.LoadFraudAlerts(ctx, ds); err != nil {
			return fmt.Errorf("loading fact_fraud_alert: %w", err)
		}
		return nil
	})
}

func (l *Loader) LoadProducts(ctx context.Context, catalog *product.Catalog) error {
	products := catalog.Products()
	rows := make([]DimProduct, 0, len(products))
	for i := range products {
		rows = append(rows, ProductRow(&products[i]))
	}
	return l.db.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}

func (l *Loader) LoadCustomers(ctx context.Context, ds *generator.Dataset) error {
	rows := make([]DimCustomer, 0, len(ds.Customers))
	for i := range ds.Customers {
		rows = append(rows, CustomerRow(&ds.Customers[i]))
	}
	return l.db.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}

func (l *Loader) LoadCollateral(ctx context.Context, ds *generator.Dataset) error {
	if len(ds.Collateral) == 0 {
		return nil
	}
	rows := make([]DimCollateral, 0, len(ds.Collateral))
	for i := range ds.Collateral {
		rows = append(rows, CollateralRow(&ds.Collateral[i]))
	}
	return l.db.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}

func (l *Loader) LoadLoans(ctx context.Context, ds *generator.Dataset) error {
	rows := make([]FactLoan, 0, len(ds.Loans))
	for i := range ds.Loans {
		rows = append(rows, LoanRow(&ds.Loans[i]))
	}
	return l.db.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}

func (l *Loader) LoadTransactions(ctx context.Context, ds *generator.Dataset) error {
	if len(ds.Transactions) == 0 {
		return nil
	}
	rows := make([]FactTransaction, 0, len(ds.Transactions))
	for i := range ds.Transactions {
		rows = append(rows, TransactionRow(&ds.Transactions[i]))
	}
	return l.db.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}

func (l *Loader) LoadFraudAlerts(ctx context.Context, ds *generator.Dataset) error {
	if len(ds.FraudAlerts) == 0 {
		return nil
	}
	rows := make([]FactFraudAlert, 0, len(ds.FraudAlerts))
	for i := range ds.FraudAlerts {
		rows = append(rows, FraudAlertRow(&ds.FraudAlerts[i]))
	}
	return l.db.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}

// Counts returns per-table row counts, used by run status reporting.
func (l *Loader) Counts(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, 6)
	for _, m := range []interface{ TableName() string }{
		DimCustomer{}, DimProduct{}, DimCollateral{},
		FactLoan{}, FactTransaction{}, FactFraudAlert{},
	} {
		var n int64
		if err := l.db.WithContext(ctx).Table(m.TableName()).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("counting %s: %w", m.TableName(), err)
		}
		out[m.TableName()] = n
	}
	return out, nil
}
