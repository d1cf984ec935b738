package loan

import "time"

type Status string

const (
	StatusActive   Status = "Active"
	StatusOverdue  Status = "Overdue"
	StatusNPA      Status = "NPA"
	StatusRejected Status = "Rejected"
)

// Loan is one application. Application-stage fields are always present;
// everything that only exists after disbursement lives in Terms, which is
// nil for rejected applications. Downstream loaders treat Terms == nil as
// the definition of "rejected", so nothing here may partially populate it.
type Loan struct {
	LoanID          string    `json:"loan_id"`
	CustomerID      string    `json:"customer_id"`
	ProductID       string    `json:"product_id"`
	BranchID        string    `json:"branch_id"`
	ApplicationDate time.Time `json:"application_date"`
	Amount          float64   `json:"loan_amount"`
	Purpose         string    `json:"loan_purpose"`
	BureauScore     int       `json:"bureau_score_at_origination"`
	InternalRating  string    `json:"internal_risk_rating"`
	Status          Status    `json:"loan_status"`

	Terms *DisbursedTerms `json:"terms,omitempty"`
	Fraud *FraudMark      `json:"fraud,omitempty"`
}

// DisbursedTerms carries every disbursement-dependent field of an approved
// loan, including the delinquency and risk block.
type DisbursedTerms struct {
	DisbursementDate time.Time `json:"disbursement_date"`
	FirstEMIDate     time.Time `json:"first_emi_date"`

	SanctionedAmount float64 `json:"sanctioned_amount"`
	InterestRate     float64 `json:"interest_rate"`
	TenureMonths     int     `json:"tenure_months"`
	EMIAmount        float64 `json:"emi_amount"`
	ProcessingFee    float64 `json:"processing_fee"`
	GSTOnFee         float64 `json:"gst_on_fee"`
	NetDisbursed     float64 `json:"net_disbursed_amount"`

	CollateralID     string  `json:"collateral_id,omitempty"`
	CollateralValue  float64 `json:"collateral_value,omitempty"`
	LoanToValueRatio float64 `json:"loan_to_value_ratio,omitempty"`

	CoApplicantPresent bool    `json:"co_applicant_present"`
	CoApplicantIncome  float64 `json:"co_applicant_income,omitempty"`

	ProbabilityOfDefault float64 `json:"probability_of_default"`
	LossGivenDefault     float64 `json:"loss_given_default"`
	ExposureAtDefault    float64 `json:"exposure_at_default"`
	ExpectedLoss         float64 `json:"expected_loss"`

	CurrentBalance float64    `json:"current_balance"`
	OverdueAmount  float64    `json:"overdue_amount"`
	DaysPastDue    int        `json:"days_past_due"`
	DPDBucket      string     `json:"dpd_bucket"`
	NPAFlag        bool       `json:"npa_flag"`
	NPADate        *time.Time `json:"npa_date,omitempty"`

	RestructuringFlag bool   `json:"restructuring_flag"`
	WrittenOffFlag    bool   `json:"written_off_flag"`
	CollectionTier    int    `json:"collection_tier"`
	CollectionAgent   string `json:"assigned_collection_agent,omitempty"`
}

// FraudMark is the enrichment the fraud scan writes back onto a loan. It is
// the only post-generation mutation in the whole pipeline.
type FraudMark struct {
	Type          string    `json:"fraud_type"`
	DetectionDate time.Time `json:"fraud_detection_date"`
}

// Disbursed reports whether the loan went through disbursement; the ETL
// filters on this as the definition of a "real" loan.
func (l *Loan) Disbursed() bool { return l.Terms != nil }

// BucketFor maps days past due to the reporting bucket. Day 90 still falls
// in 61-90; the 90+ bucket starts at day 91 (matching NPA = DPD > 90).
func BucketFor(daysPastDue int) string {
	switch {
	case daysPastDue == 0:
		return "0"
	case daysPastDue <= 30:
		return "1-30"
	case daysPastDue <= 60:
		return "31-60"
	case daysPastDue <= 90:
		return "61-90"
	default:
		return "90+"
	}
}

// StatusFor derives the loan status from delinquency age.
func StatusFor(daysPastDue int) Status {
	switch {
	case daysPastDue > 90:
		return StatusNPA
	case daysPastDue > 30:
		return StatusOverdue
	default:
		return StatusActive
	}
}
