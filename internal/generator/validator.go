package generator

import (
	"fmt"
	"strings"
	"time"

	"creditflow360/internal/domain/customer"
	"creditflow360/internal/domain/fraud"
	"creditflow360/internal/domain/loan"
	"creditflow360/internal/domain/transaction"
)

// Report is the validation result for one output table. Checks counts the
// offending records per named check; errors fail a check, warnings do not.
type Report struct {
	Table        string         `json:"table"`
	TotalRecords int            `json:"total_records"`
	Checks       map[string]int `json:"checks"`
	Warnings     []string       `json:"warnings"`
	Errors       []string       `json:"errors"`
	PassRate     float64        `json:"pass_rate"`
}

func (r *Report) finish() {
	if len(r.Checks) == 0 {
		return
	}
	r.PassRate = 1 - float64(len(r.Errors))/float64(len(r.Checks))
}

// QualityReport aggregates the per-table reports plus portfolio-level
// counts; OverallScore is the mean of the table pass rates.
type QualityReport struct {
	GeneratedAt time.Time `json:"generated_at"`

	Summary struct {
		Customers     int `json:"customers"`
		Loans         int `json:"loans"`
		Transactions  int `json:"transactions"`
		FraudAlerts   int `json:"fraud_alerts"`
		ApprovedLoans int `json:"approved_loans"`
		RejectedLoans int `json:"rejected_loans"`
		ActiveLoans   int `json:"active_loans"`
		NPALoans      int `json:"npa_loans"`
		FraudLoans    int `json:"fraud_loans"`
	} `json:"summary"`

	Customers    Report `json:"customers"`
	Loans        Report `json:"loans"`
	Transactions Report `json:"transactions"`
	FraudAlerts  Report `json:"fraud_alerts"`

	// Advisory only: the scenario conversion rates are open-loop, so the
	// actual marked-loan share can drift from the configured target.
	TargetFraudRate float64 `json:"target_fraud_rate"`
	ActualFraudRate float64 `json:"actual_fraud_rate"`

	OverallScore float64 `json:"overall_quality_score"`
}

// ValidateCustomers checks identity completeness, uniqueness and the hard
// attribute ranges of the customer dimension.
func ValidateCustomers(customers []customer.Customer) Report {
	r := Report{Table: "dim_customer", TotalRecords: len(customers), Checks: map[string]int{}}

	var missingIdentity, invalidScore, invalidAge, negativeIncome, invalidEmail int
	seen := make(map[string]struct{}, len(customers))
	duplicates := 0
	for _, c := range customers {
		if c.CustomerID == "" || c.FirstName == "" || c.LastName == "" || c.DateOfBirth.IsZero() {
			missingIdentity++
		}
		if _, dup := seen[c.CustomerID]; dup {
			duplicates++
		}
		seen[c.CustomerID] = struct{}{}
		if c.CreditScore < 300 || c.CreditScore > 900 {
			invalidScore++
		}
		if c.Age < 18 || c.Age > 100 {
			invalidAge++
		}
		if c.AnnualIncome < 0 {
			negativeIncome++
		}
		if !strings.Contains(c.Email, "@") {
			invalidEmail++
		}
	}

	r.check("missing_identity_fields", missingIdentity, &r.Errors, "Missing identity fields: %d")
	r.check("duplicate_customer_ids", duplicates, &r.Errors, "Duplicate customer IDs: %d")
	r.check("invalid_credit_scores", invalidScore, &r.Errors, "Invalid credit scores: %d")
	r.check("invalid_age", invalidAge, &r.Errors, "Invalid age: %d")
	r.check("negative_income", negativeIncome, &r.Errors, "Negative income: %d")
	r.check("invalid_email", invalidEmail, &r.Errors, "Invalid email: %d")

	r.finish()
	return r
}

// ValidateLoans checks keys and amounts across all loans and rate/tenure
// bounds on the disbursed subset; delinquency consistency issues are
// warnings, not errors.
func ValidateLoans(loans []loan.Loan) Report {
	r := Report{Table: "fact_loan", TotalRecords: len(loans), Checks: map[string]int{}}

	var missingCustomer, zeroAmount, invalidRate, invalidTenure, bucketMismatch, npaMismatch int
	for i := range loans {
		l := &loans[i]
		if l.CustomerID == "" {
			missingCustomer++
		}
		if l.Amount <= 0 {
			zeroAmount++
		}
		if !l.Disbursed() {
			continue
		}
		t := l.Terms
		if t.InterestRate < 5 || t.InterestRate > 30 {
			invalidRate++
		}
		if t.TenureMonths < 1 || t.TenureMonths > 360 {
			invalidTenure++
		}
		if t.DaysPastDue == 0 && t.DPDBucket != "0" {
			bucketMismatch++
		}
		if t.DaysPastDue > 90 && !t.NPAFlag {
			npaMismatch++
		}
	}

	r.check("missing_customer_id", missingCustomer, &r.Errors, "Missing customer ID: %d")
	r.check("zero_loan_amount", zeroAmount, &r.Errors, "Zero or negative loan amount: %d")
	r.check("invalid_interest_rate", invalidRate, &r.Errors, "Invalid interest rate: %d")
	r.check("invalid_tenure", invalidTenure, &r.Errors, "Invalid tenure: %d")
	r.check("dpd_bucket_mismatch", bucketMismatch, &r.Warnings, "DPD bucket mismatch: %d")
	r.check("npa_flag_mismatch", npaMismatch, &r.Warnings, "NPA flag mismatch: %d")

	r.finish()
	return r
}

// ValidateTransactions checks references, amounts and enum validity on the
// transaction fact.
func ValidateTransactions(txns []transaction.Transaction) Report {
	r := Report{Table: "fact_transaction", TotalRecords: len(txns), Checks: map[string]int{}}

	validTypes := map[transaction.Type]struct{}{
		transaction.TypeEMI: {}, transaction.TypePrepayment: {},
		transaction.TypeDisbursement: {}, transaction.TypePenalty: {},
		transaction.TypeProcessingFee: {},
	}
	validStatuses := map[transaction.Status]struct{}{
		transaction.StatusSuccess: {}, transaction.StatusFailed: {}, transaction.StatusPending: {},
	}

	var missingLoan, zeroAmount, invalidType, invalidStatus int
	for _, t := range txns {
		if t.LoanID == "" {
			missingLoan++
		}
		if t.Amount <= 0 {
			zeroAmount++
		}
		if _, ok := validTypes[t.Type]; !ok {
			invalidType++
		}
		if _, ok := validStatuses[t.Status]; !ok {
			invalidStatus++
		}
	}

	r.check("missing_loan_id", missingLoan, &r.Errors, "Missing loan ID: %d")
	r.check("zero_amount", zeroAmount, &r.Errors, "Zero or negative amount: %d")
	r.check("invalid_transaction_type", invalidType, &r.Errors, "Invalid transaction type: %d")
	r.check("invalid_status", invalidStatus, &r.Errors, "Invalid transaction status: %d")

	r.finish()
	return r
}

// ValidateFraudAlerts checks score range, score/level band consistency and
// investigation status validity. An empty alert set is a warning only.
func ValidateFraudAlerts(alerts []fraud.Alert) Report {
	r := Report{Table: "fact_fraud_alert", TotalRecords: len(alerts), Checks: map[string]int{}}

	if len(alerts) == 0 {
		r.Warnings = append(r.Warnings, "No fraud alerts generated")
		return r
	}

	validStatuses := map[fraud.InvestigationStatus]struct{}{
		fraud.StatusNew: {}, fraud.StatusInProgress: {},
		fraud.StatusConfirmed: {}, fraud.StatusFalsePositive: {},
	}

	var invalidScore, inconsistentLevel, invalidStatus int
	for _, a := range alerts {
		if a.RiskScore < 1 || a.RiskScore > 100 {
			invalidScore++
		}
		if fraud.LevelFor(a.RiskScore) != a.RiskLevel {
			inconsistentLevel++
		}
		if _, ok := validStatuses[a.Investigation]; !ok {
			invalidStatus++
		}
	}

	r.check("invalid_risk_score", invalidScore, &r.Errors, "Invalid risk score: %d")
	r.check("inconsistent_risk_level", inconsistentLevel, &r.Warnings, "Inconsistent risk level: %d")
	r.check("invalid_status", invalidStatus, &r.Errors, "Invalid investigation status: %d")

	r.finish()
	return r
}

// BuildQualityReport runs every validator and aggregates the results with
// portfolio counts. generatedAt is the run anchor, not wall-clock time, so
// the report is reproducible.
func BuildQualityReport(
	customers []customer.Customer,
	loans []loan.Loan,
	txns []transaction.Transaction,
	alerts []fraud.Alert,
	generatedAt time.Time,
) QualityReport {
	q := QualityReport{GeneratedAt: generatedAt}

	q.Summary.Customers = len(customers)
	q.Summary.Loans = len(loans)
	q.Summary.Transactions = len(txns)
	q.Summary.FraudAlerts = len(alerts)
	for i := range loans {
		l := &loans[i]
		if l.Disbursed() {
			q.Summary.ApprovedLoans++
			if l.Terms.NPAFlag {
				q.Summary.NPALoans++
			}
		}
		switch l.Status {
		case loan.StatusRejected:
			q.Summary.RejectedLoans++
		case loan.StatusActive, loan.StatusOverdue:
			q.Summary.ActiveLoans++
		}
		if l.Fraud != nil {
			q.Summary.FraudLoans++
		}
	}

	if q.Summary.ApprovedLoans > 0 {
		q.ActualFraudRate = float64(q.Summary.FraudLoans) / float64(q.Summary.ApprovedLoans)
	}

	q.Customers = ValidateCustomers(customers)
	q.Loans = ValidateLoans(loans)
	q.Transactions = ValidateTransactions(txns)
	q.FraudAlerts = ValidateFraudAlerts(alerts)

	total := 0.0
	for _, rep := range []Report{q.Customers, q.Loans, q.Transactions, q.FraudAlerts} {
		total += rep.PassRate
	}
	q.OverallScore = total / 4

	return q
}

func (r *Report) check(name string, count int, sink *[]string, format string) {
	r.Checks[name] = count
	if count > 0 {
		*sink = append(*sink, fmt.Sprintf(format, count))
	}
}
