package generator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"creditflow360/internal/domain/customer"
	"creditflow360/internal/domain/loan"
	"creditflow360/internal/domain/transaction"
	"creditflow360/internal/rng"
	"creditflow360/pkg/money"
)

// TransactionGenerator synthesizes the payment history of disbursed loans:
// one disbursement, the elapsed EMI series, and occasional prepayments.
type TransactionGenerator struct {
	rng  *rng.Source
	asOf time.Time
}

func NewTransactionGenerator(seed int64, asOf time.Time) *TransactionGenerator {
	return &TransactionGenerator{rng: rng.New(seed), asOf: asOf.UTC()}
}

// GenerateAll walks disbursed Active/Overdue/NPA loans in input order and
// emits their transaction history until target is reached. target <= 0
// means no cap.
func (g *TransactionGenerator) GenerateAll(loans []loan.Loan, customers []customer.Customer, target int) []transaction.Transaction {
	byID := make(map[string]customer.Customer, len(customers))
	for _, c := range customers {
		byID[c.CustomerID] = c
	}

	var out []transaction.Transaction
	for i := range loans {
		l := &loans[i]
		if !l.Disbursed() {
			continue
		}
		cust, ok := byID[l.CustomerID]
		if !ok {
			continue
		}
		out = append(out, g.GenerateForLoan(l, cust)...)
		if target > 0 && len(out) >= target {
			break
		}
	}
	return out
}

// GenerateForLoan emits the full series for one loan. Loans without
// disbursement yield an empty sequence. EMI transactions come out in
// chronological month order.
func (g *TransactionGenerator) GenerateForLoan(l *loan.Loan, cust customer.Customer) []transaction.Transaction {
	if !l.Disbursed() {
		return nil
	}
	t := l.Terms

	var out []transaction.Transaction
	out = append(out, g.disbursementTxn(l))

	monthsElapsed := int(g.asOf.Sub(t.DisbursementDate).Hours() / 24 / 30)
	totalEMIs := min(monthsElapsed, t.TenureMonths)

	for month := 1; month <= totalEMIs; month++ {
		emiDate := t.FirstEMIDate.AddDate(0, 0, 30*(month-1))
		if emiDate.After(g.asOf) {
			continue
		}
		out = append(out, g.emiTxn(l, month, totalEMIs, emiDate))
	}

	// 20% of current loans prepay part of the balance near generation time.
	if g.rng.Probability(0.2) && l.Status == loan.StatusActive && t.CurrentBalance > 0 {
		out = append(out, g.prepaymentTxn(l))
	}

	return out
}

func (g *TransactionGenerator) disbursementTxn(l *loan.Loan) transaction.Transaction {
	t := l.Terms
	amount := t.NetDisbursed
	if amount <= 0 {
		amount = l.Amount
	}
	reconciled := t.DisbursementDate.AddDate(0, 0, 1)
	return transaction.Transaction{
		TransactionID:    g.txnID(t.DisbursementDate),
		LoanID:           l.LoanID,
		CustomerID:       l.CustomerID,
		Date:             t.DisbursementDate,
		Type:             transaction.TypeDisbursement,
		Mode:             rng.Weighted(g.rng, transactionModes, transactionModeWeights),
		Amount:           amount,
		PaymentReference: g.reference("REF", t.DisbursementDate),
		BankName:         rng.Pick(g.rng, bankNames),
		BankAccountLast4: fmt.Sprintf("%d", g.rng.IntBetween(1000, 9999)),
		Status:           transaction.StatusSuccess,
		Reconciliation:   "Matched",
		ReconciledDate:   &reconciled,
	}
}

func (g *TransactionGenerator) emiTxn(l *loan.Loan, month, totalEMIs int, emiDate time.Time) transaction.Transaction {
	t := l.Terms

	// Recent EMIs on a defaulted loan fail more often.
	successProb := 0.95
	if t.DaysPastDue > 0 && month > totalEMIs-2 {
		successProb = 0.70
	}
	success := g.rng.Probability(successProb)

	// Decreasing-balance interest approximation; the penalty applies only
	// to the most recent EMI of a delinquent loan.
	outstanding := t.CurrentBalance * math.Pow(0.9, float64(month)/float64(totalEMIs))
	dpd := 0
	if month == totalEMIs {
		dpd = t.DaysPastDue
	}
	comp := emiComponents(t.EMIAmount, t.InterestRate, outstanding, dpd)
	if t.DaysPastDue == 0 {
		comp.Penalty = 0
		comp.GST = 0
	}

	txn := transaction.Transaction{
		TransactionID:    g.txnID(emiDate),
		LoanID:           l.LoanID,
		CustomerID:       l.CustomerID,
		Date:             emiDate,
		Type:             transaction.TypeEMI,
		Mode:             rng.Weighted(g.rng, transactionModes, transactionModeWeights),
		Amount:           t.EMIAmount,
		Components:       &comp,
		PaymentReference: g.reference("EMI", emiDate),
		BankName:         rng.Pick(g.rng, bankNames),
		BankAccountLast4: fmt.Sprintf("%d", g.rng.IntBetween(1000, 9999)),
	}

	if success {
		reconciled := emiDate.AddDate(0, 0, 1)
		txn.Status = transaction.StatusSuccess
		txn.Reconciliation = "Matched"
		txn.ReconciledDate = &reconciled
	} else {
		txn.Status = rng.Pick(g.rng, []transaction.Status{transaction.StatusFailed, transaction.StatusPending})
		txn.FailureReason = rng.Pick(g.rng, failureReasons)
		txn.Reconciliation = "Unmatched"
	}
	return txn
}

func (g *TransactionGenerator) prepaymentTxn(l *loan.Loan) transaction.Transaction {
	t := l.Terms
	amount := money.Round2(t.CurrentBalance * g.rng.Uniform(0.2, 0.5))
	date := g.asOf.AddDate(0, 0, -g.rng.IntBetween(1, 30))
	reconciled := date.AddDate(0, 0, 1)
	return transaction.Transaction{
		TransactionID: g.txnID(date),
		LoanID:        l.LoanID,
		CustomerID:    l.CustomerID,
		Date:          date,
		Type:          transaction.TypePrepayment,
		Mode: rng.Weighted(g.rng,
			[]string{"NEFT", "RTGS", "UPI"},
			[]float64{0.5, 0.3, 0.2}),
		Amount:           amount,
		Components:       &transaction.Components{Principal: amount},
		PaymentReference: g.reference("PRE", date),
		BankName:         rng.Pick(g.rng, bankNames),
		BankAccountLast4: fmt.Sprintf("%d", g.rng.IntBetween(1000, 9999)),
		Status:           transaction.StatusSuccess,
		Reconciliation:   "Matched",
		ReconciledDate:   &reconciled,
	}
}

// emiComponents splits an EMI into principal/interest/penalty/GST. The
// penalty rate is 2% per 30 days past due; GST (18%) applies to the penalty
// only.
func emiComponents(amount, annualRate, outstanding float64, daysPastDue int) transaction.Components {
	monthlyRate := annualRate / 12 / 100

	var interest, principal float64
	if monthlyRate > 0 {
		interest = outstanding * monthlyRate
		principal = amount - interest
	} else {
		principal = amount
	}

	penalty := 0.0
	if daysPastDue > 0 {
		penalty = amount * 0.02 * (float64(daysPastDue) / 30)
	}

	return transaction.Components{
		Principal: money.Round2(principal),
		Interest:  money.Round2(interest),
		Penalty:   money.Round2(penalty),
		GST:       money.Round2(penalty * 0.18),
	}
}

func (g *TransactionGenerator) txnID(date time.Time) string {
	return "TXN" + date.Format("060102") + strings.ToUpper(g.rng.Hex(8))
}

func (g *TransactionGenerator) reference(prefix string, date time.Time) string {
	return fmt.Sprintf("%s%s%d", prefix, date.Format("060102"), g.rng.IntBetween(1000, 9999))
}
