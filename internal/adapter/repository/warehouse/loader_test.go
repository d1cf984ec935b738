package warehouse

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"creditflow360/internal/domain/loan"
	"creditflow360/internal/domain/product"
	"creditflow360/internal/generator"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func smallDataset(t *testing.T) *generator.Dataset {
	t.Helper()
	eng, err := generator.NewEngine(generator.Config{
		Seed:         42,
		NumCustomers: 50,
		NumLoans:     30,
		AsOf:         time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ds, err := eng.GenerateAll()
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	return ds
}

func TestLoader_LoadAll(t *testing.T) {
	db := openTestDB(t)
	loader := NewLoader(db)
	if err := loader.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	ds := smallDataset(t)
	ctx := context.Background()

	if err := loader.LoadAll(ctx, ds, product.Default()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	counts, err := loader.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts["dim_customer"] != int64(len(ds.Customers)) {
		t.Fatalf("dim_customer rows %d, want %d", counts["dim_customer"], len(ds.Customers))
	}
	if counts["fact_loan"] != int64(len(ds.Loans)) {
		t.Fatalf("fact_loan rows %d, want %d", counts["fact_loan"], len(ds.Loans))
	}
	if counts["fact_transaction"] != int64(len(ds.Transactions)) {
		t.Fatalf("fact_transaction rows %d, want %d", counts["fact_transaction"], len(ds.Transactions))
	}
	if counts["dim_product"] != 11 {
		t.Fatalf("dim_product rows %d, want 11", counts["dim_product"])
	}
}

func TestLoader_RejectedLoanRow(t *testing.T) {
	db := openTestDB(t)
	loader := NewLoader(db)
	if err := loader.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	ds := smallDataset(t)
	ctx := context.Background()
	if err := loader.LoadLoans(ctx, ds); err != nil {
		t.Fatalf("LoadLoans: %v", err)
	}

	// A rejected loan must load with every disbursement column NULL.
	var rejectedID string
	for i := range ds.Loans {
		if ds.Loans[i].Status == loan.StatusRejected {
			rejectedID = ds.Loans[i].LoanID
			break
		}
	}
	if rejectedID == "" {
		t.Skip("no rejected loan in this dataset")
	}

	var row FactLoan
	if err := db.Where("loan_id = ?", rejectedID).First(&row).Error; err != nil {
		t.Fatalf("fetch rejected row: %v", err)
	}
	if row.DisbursementDate != nil || row.EMIAmount != nil || row.PD != nil || row.CurrentBalance != nil {
		t.Fatalf("rejected loan carries disbursement columns: %+v", row)
	}
	if row.Status != string(loan.StatusRejected) {
		t.Fatalf("status %q", row.Status)
	}
}

func TestLoader_DisbursedLoanRow(t *testing.T) {
	db := openTestDB(t)
	loader := NewLoader(db)
	if err := loader.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	ds := smallDataset(t)
	ctx := context.Background()
	if err := loader.LoadLoans(ctx, ds); err != nil {
		t.Fatalf("LoadLoans: %v", err)
	}

	var src *loan.Loan
	for i := range ds.Loans {
		if ds.Loans[i].Disbursed() {
			src = &ds.Loans[i]
			break
		}
	}
	if src == nil {
		t.Fatal("no disbursed loan in dataset")
	}

	var row FactLoan
	if err := db.Where("loan_id = ?", src.LoanID).First(&row).Error; err != nil {
		t.Fatalf("fetch disbursed row: %v", err)
	}
	if row.EMIAmount == nil || *row.EMIAmount != src.Terms.EMIAmount {
		t.Fatalf("EMI column %v, want %v", row.EMIAmount, src.Terms.EMIAmount)
	}
	if row.DaysPastDue == nil || *row.DaysPastDue != src.Terms.DaysPastDue {
		t.Fatalf("DPD column %v, want %d", row.DaysPastDue, src.Terms.DaysPastDue)
	}
	if row.DPDBucket != src.Terms.DPDBucket {
		t.Fatalf("bucket %q, want %q", row.DPDBucket, src.Terms.DPDBucket)
	}
}
