package generator

import (
	"testing"

	"creditflow360/internal/domain/loan"
	"creditflow360/internal/domain/product"
	"creditflow360/internal/domain/transaction"
)

func TestTransactionGenerator_Deterministic(t *testing.T) {
	custs := NewCustomerGenerator(42, testAsOf).Generate(100)
	loans, _, err := NewLoanGenerator(42, product.Default(), testAsOf).Generate(custs, 40)
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}

	a := NewTransactionGenerator(42, testAsOf).GenerateAll(loans, custs, 0)
	b := NewTransactionGenerator(42, testAsOf).GenerateAll(loans, custs, 0)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].TransactionID != b[i].TransactionID || a[i].Amount != b[i].Amount || a[i].Status != b[i].Status {
			t.Fatalf("transaction %d differs between runs", i)
		}
	}
}

func TestTransactionGenerator_RejectedLoanHasNoHistory(t *testing.T) {
	g := NewTransactionGenerator(1, testAsOf)
	l := loan.Loan{LoanID: "LOAN0000000001", CustomerID: "CUST00000001", Status: loan.StatusRejected}

	custs := NewCustomerGenerator(1, testAsOf).Generate(1)
	if got := g.GenerateForLoan(&l, custs[0]); got != nil {
		t.Fatalf("rejected loan produced %d transactions", len(got))
	}
}

func TestTransactionGenerator_Series(t *testing.T) {
	custs := NewCustomerGenerator(17, testAsOf).Generate(200)
	loans, _, err := NewLoanGenerator(17, product.Default(), testAsOf).Generate(custs, 150)
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	txns := NewTransactionGenerator(17, testAsOf).GenerateAll(loans, custs, 0)
	if len(txns) == 0 {
		t.Fatal("no transactions generated")
	}

	byLoan := make(map[string][]transaction.Transaction)
	for _, txn := range txns {
		byLoan[txn.LoanID] = append(byLoan[txn.LoanID], txn)
	}

	for loanID, series := range byLoan {
		if series[0].Type != transaction.TypeDisbursement {
			t.Fatalf("%s: first transaction is %s, want disbursement", loanID, series[0].Type)
		}
		if series[0].Components != nil {
			t.Fatalf("%s: disbursement carries an EMI split", loanID)
		}

		var prevEMI *transaction.Transaction
		for i := range series {
			txn := &series[i]
			if txn.Type != transaction.TypeEMI {
				continue
			}
			if txn.Date.After(testAsOf) {
				t.Fatalf("%s: EMI %s dated after the run anchor", loanID, txn.TransactionID)
			}
			if txn.Components == nil {
				t.Fatalf("%s: EMI %s without component split", loanID, txn.TransactionID)
			}
			if prevEMI != nil && txn.Date.Before(prevEMI.Date) {
				t.Fatalf("%s: EMI dates out of order (%v after %v)", loanID, prevEMI.Date, txn.Date)
			}
			prevEMI = txn
		}
	}
}

func TestTransactionGenerator_StatusReconciliation(t *testing.T) {
	custs := NewCustomerGenerator(23, testAsOf).Generate(200)
	loans, _, err := NewLoanGenerator(23, product.Default(), testAsOf).Generate(custs, 150)
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	txns := NewTransactionGenerator(23, testAsOf).GenerateAll(loans, custs, 0)

	for _, txn := range txns {
		switch txn.Status {
		case transaction.StatusSuccess:
			if txn.Reconciliation != "Matched" || txn.ReconciledDate == nil {
				t.Fatalf("%s: successful but unreconciled", txn.TransactionID)
			}
			if txn.FailureReason != "" {
				t.Fatalf("%s: success with failure reason %q", txn.TransactionID, txn.FailureReason)
			}
		case transaction.StatusFailed, transaction.StatusPending:
			if txn.Reconciliation != "Unmatched" || txn.ReconciledDate != nil {
				t.Fatalf("%s: failed/pending but reconciled", txn.TransactionID)
			}
			if txn.FailureReason == "" {
				t.Fatalf("%s: failed without a reason", txn.TransactionID)
			}
		default:
			t.Fatalf("%s: unknown status %s", txn.TransactionID, txn.Status)
		}
		if txn.Amount <= 0 {
			t.Fatalf("%s: amount %v", txn.TransactionID, txn.Amount)
		}
	}
}

func TestEMIComponents(t *testing.T) {
	// 10,000 EMI against 5,00,000 outstanding at 12%: interest 5,000,
	// principal the remainder.
	comp := emiComponents(10000, 12, 500000, 0)
	if comp.Interest != 5000 {
		t.Fatalf("interest %v, want 5000", comp.Interest)
	}
	if comp.Principal != 5000 {
		t.Fatalf("principal %v, want 5000", comp.Principal)
	}
	if comp.Penalty != 0 || comp.GST != 0 {
		t.Fatalf("current loan carries penalty %v / gst %v", comp.Penalty, comp.GST)
	}

	// 30 days past due: 2% penalty plus 18% GST on the penalty.
	comp = emiComponents(10000, 12, 500000, 30)
	if comp.Penalty != 200 {
		t.Fatalf("penalty %v, want 200", comp.Penalty)
	}
	if comp.GST != 36 {
		t.Fatalf("gst %v, want 36", comp.GST)
	}
}
