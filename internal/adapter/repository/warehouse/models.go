package warehouse

import (
	"time"

	"creditflow360/internal/domain/collateral"
	"creditflow360/internal/domain/customer"
	"creditflow360/internal/domain/fraud"
	"creditflow360/internal/domain/loan"
	"creditflow360/internal/domain/product"
	"creditflow360/internal/domain/transaction"
)

// Star-schema row models. These are deliberately flat: the nested domain
// structs are unrolled so every column loads into a plain warehouse table.

type DimCustomer struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	CustomerID    string    `gorm:"size:16;uniqueIndex;column:customer_id"`
	FirstName     string    `gorm:"size:64;column:first_name"`
	LastName      string    `gorm:"size:64;column:last_name"`
	DateOfBirth   time.Time `gorm:"column:date_of_birth"`
	Age           int       `gorm:"column:age"`
	Gender        string    `gorm:"size:16;column:gender"`
	MaritalStatus string    `gorm:"size:16;column:marital_status"`
	Education     string    `gorm:"size:32;column:education"`
	Employment    string    `gorm:"size:32;column:employment_type"`
	AnnualIncome  float64   `gorm:"column:annual_income"`
	IncomeTier    string    `gorm:"size:16;column:income_tier"`
	CreditScore   int       `gorm:"column:credit_score"`
	CreditTier    string    `gorm:"size:16;column:credit_tier"`

	City         string `gorm:"size:64;column:city"`
	State        string `gorm:"size:64;column:state"`
	Pincode      string `gorm:"size:8;column:pincode"`
	AddressLine1 string `gorm:"size:128;column:address_line1"`
	AddressLine2 string `gorm:"size:128;column:address_line2"`
	Phone        string `gorm:"size:16;column:phone"`
	Email        string `gorm:"size:128;column:email"`

	Segment            string    `gorm:"size:32;column:customer_segment"`
	ValueTier          string    `gorm:"size:16;column:customer_value_tier"`
	AcquisitionDate    time.Time `gorm:"column:acquisition_date"`
	AcquisitionChannel string    `gorm:"size:32;column:acquisition_channel"`
	IsActive           bool      `gorm:"column:is_active"`

	EffectiveStartDate time.Time  `gorm:"column:effective_start_date"`
	EffectiveEndDate   *time.Time `gorm:"column:effective_end_date"`
	IsCurrent          bool       `gorm:"column:is_current"`
}

func (DimCustomer) TableName() string { return "dim_customer" }

type DimProduct struct {
	ID        uint64  `gorm:"primaryKey;column:id"`
	ProductID string  `gorm:"size:16;uniqueIndex;column:product_id"`
	Name      string  `gorm:"size:64;column:product_name"`
	Type      string  `gorm:"size:32;column:product_type"`
	MinAmount float64 `gorm:"column:min_amount"`
	MaxAmount float64 `gorm:"column:max_amount"`
	MinRate   float64 `gorm:"column:min_interest_rate"`
	MaxRate   float64 `gorm:"column:max_interest_rate"`
	MinTenure int     `gorm:"column:min_tenure_months"`
	MaxTenure int     `gorm:"column:max_tenure_months"`
	Secured   bool    `gorm:"column:collateral_required"`
}

func (DimProduct) TableName() string { return "dim_product" }

type DimCollateral struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	CollateralID string    `gorm:"size:16;uniqueIndex;column:collateral_id"`
	LoanID       string    `gorm:"size:16;index;column:loan_id"`
	Type         string    `gorm:"size:48;column:collateral_type"`
	Value        float64   `gorm:"column:collateral_value"`
	LTV          float64   `gorm:"column:loan_to_value_ratio"`
	Condition    string    `gorm:"size:16;column:collateral_condition"`
	IsPrimary    bool      `gorm:"column:is_primary"`
	Ownership    string    `gorm:"size:32;column:ownership_type"`
	Verified     bool      `gorm:"column:ownership_verified"`
	ValuationOn  time.Time `gorm:"column:valuation_date"`
	Agency       string    `gorm:"size:64;column:valuation_agency"`

	Insured          bool    `gorm:"column:is_insured"`
	InsuranceCompany string  `gorm:"size:64;column:insurance_company"`
	InsuredValue     float64 `gorm:"column:insurance_coverage"`
}

func (DimCollateral) TableName() string { return "dim_collateral" }

// FactLoan carries the application columns for every loan; the
// disbursement block is nullable and left empty for rejected applications.
type FactLoan struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	LoanID          string    `gorm:"size:16;uniqueIndex;column:loan_id"`
	CustomerID      string    `gorm:"size:16;index;column:customer_id"`
	ProductID       string    `gorm:"size:16;index;column:product_id"`
	BranchID        string    `gorm:"size:8;column:branch_id"`
	ApplicationDate time.Time `gorm:"column:application_date"`
	Amount          float64   `gorm:"column:loan_amount"`
	Purpose         string    `gorm:"size:64;column:loan_purpose"`
	BureauScore     int       `gorm:"column:bureau_score_at_origination"`
	InternalRating  string    `gorm:"size:16;column:internal_risk_rating"`
	Status          string    `gorm:"size:16;column:loan_status"`

	DisbursementDate *time.Time `gorm:"column:disbursement_date"`
	FirstEMIDate     *time.Time `gorm:"column:first_emi_date"`
	SanctionedAmount *float64   `gorm:"column:sanctioned_amount"`
	InterestRate     *float64   `gorm:"column:interest_rate"`
	TenureMonths     *int       `gorm:"column:tenure_months"`
	EMIAmount        *float64   `gorm:"column:emi_amount"`
	ProcessingFee    *float64   `gorm:"column:processing_fee"`
	GSTOnFee         *float64   `gorm:"column:gst_on_fee"`
	NetDisbursed     *float64   `gorm:"column:net_disbursed_amount"`

	CollateralID    string   `gorm:"size:16;column:collateral_id"`
	CollateralValue *float64 `gorm:"column:collateral_value"`
	LTV             *float64 `gorm:"column:loan_to_value_ratio"`

	CoApplicantPresent bool     `gorm:"column:co_applicant_present"`
	CoApplicantIncome  *float64 `gorm:"column:co_applicant_income"`

	PD  *float64 `gorm:"column:probability_of_default"`
	LGD *float64 `gorm:"column:loss_given_default"`
	EAD *float64 `gorm:"column:exposure_at_default"`
	EL  *float64 `gorm:"column:expected_loss"`

	CurrentBalance *float64   `gorm:"column:current_balance"`
	OverdueAmount  *float64   `gorm:"column:overdue_amount"`
	DaysPastDue    *int       `gorm:"column:days_past_due"`
	DPDBucket      string     `gorm:"size:8;column:dpd_bucket"`
	NPAFlag        bool       `gorm:"column:npa_flag"`
	NPADate        *time.Time `gorm:"column:npa_date"`

	RestructuringFlag bool   `gorm:"column:restructuring_flag"`
	WrittenOffFlag    bool   `gorm:"column:written_off_flag"`
	CollectionTier    int    `gorm:"column:collection_tier"`
	CollectionAgent   string `gorm:"size:16;column:assigned_collection_agent"`

	FraudFlag          bool       `gorm:"column:fraud_flag"`
	FraudType          string     `gorm:"size:48;column:fraud_type"`
	FraudDetectionDate *time.Time `gorm:"column:fraud_detection_date"`
}

func (FactLoan) TableName() string { return "fact_loan" }

type FactTransaction struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	TransactionID string    `gorm:"size:24;uniqueIndex;column:transaction_id"`
	LoanID        string    `gorm:"size:16;index;column:loan_id"`
	CustomerID    string    `gorm:"size:16;index;column:customer_id"`
	Date          time.Time `gorm:"column:transaction_date"`
	Type          string    `gorm:"size:24;column:transaction_type"`
	Mode          string    `gorm:"size:24;column:transaction_mode"`
	Amount        float64   `gorm:"column:amount"`

	Principal *float64 `gorm:"column:principal_component"`
	Interest  *float64 `gorm:"column:interest_component"`
	Penalty   *float64 `gorm:"column:penalty_component"`
	GST       *float64 `gorm:"column:gst_component"`

	PaymentReference string `gorm:"size:24;column:payment_reference"`
	BankName         string `gorm:"size:64;column:bank_name"`
	BankAccountLast4 string `gorm:"size:4;column:bank_account_last4"`

	Status         string     `gorm:"size:16;column:transaction_status"`
	FailureReason  string     `gorm:"size:64;column:failure_reason"`
	Reconciliation string     `gorm:"size:16;column:reconciliation_status"`
	ReconciledDate *time.Time `gorm:"column:reconciled_date"`
}

func (FactTransaction) TableName() string { return "fact_transaction" }

type FactFraudAlert struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	AlertID       string    `gorm:"size:16;uniqueIndex;column:alert_id"`
	LoanID        string    `gorm:"size:16;index;column:loan_id"`
	CustomerID    string    `gorm:"size:16;index;column:customer_id"`
	DetectionDate time.Time `gorm:"column:detection_date"`

	Type     string `gorm:"size:48;column:alert_type"`
	Category string `gorm:"size:32;column:alert_category"`

	RiskScore int    `gorm:"column:risk_score"`
	RiskLevel string `gorm:"size:16;column:risk_level"`

	DetectionMethod string `gorm:"size:32;column:detection_method"`
	RuleTriggered   string `gorm:"size:128;column:rule_triggered"`
	Description     string `gorm:"size:255;column:alert_description"`

	AssignedTo         string     `gorm:"size:16;column:assigned_to"`
	Investigation      string     `gorm:"size:16;column:investigation_status"`
	InvestigationNotes string     `gorm:"size:128;column:investigation_notes"`
	ResolutionDate     *time.Time `gorm:"column:resolution_date"`

	FinancialImpact float64 `gorm:"column:financial_impact"`
}

func (FactFraudAlert) TableName() string { return "fact_fraud_alert" }

// ----- mappers -----

func CustomerRow(c *customer.Customer) DimCustomer {
	return DimCustomer{
		CustomerID:    c.CustomerID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		DateOfBirth:   c.DateOfBirth,
		Age:           c.Age,
		Gender:        c.Gender,
		MaritalStatus: c.MaritalStatus,
		Education:     c.Education,
		Employment:    string(c.Employment),
		AnnualIncome:  c.AnnualIncome,
		IncomeTier:    c.IncomeTier,
		CreditScore:   c.CreditScore,
		CreditTier:    c.CreditTier,

		City:         c.City,
		State:        c.State,
		Pincode:      c.Pincode,
		AddressLine1: c.AddressLine1,
		AddressLine2: c.AddressLine2,
		Phone:        c.Phone,
		Email:        c.Email,

		Segment:            c.Segment,
		ValueTier:          c.ValueTier,
		AcquisitionDate:    c.AcquisitionDate,
		AcquisitionChannel: c.AcquisitionChannel,
		IsActive:           c.IsActive,

		EffectiveStartDate: c.EffectiveStartDate,
		EffectiveEndDate:   c.EffectiveEndDate,
		IsCurrent:          c.IsCurrent,
	}
}

func ProductRow(p *product.Product) DimProduct {
	return DimProduct{
		ProductID: p.ProductID,
		Name:      p.Name,
		Type:      string(p.Type),
		MinAmount: p.MinAmount,
		MaxAmount: p.MaxAmount,
		MinRate:   p.MinRate,
		MaxRate:   p.MaxRate,
		MinTenure: p.MinTenure,
		MaxTenure: p.MaxTenure,
		Secured:   p.Collateral,
	}
}

func CollateralRow(c *collateral.Collateral) DimCollateral {
	row := DimCollateral{
		CollateralID: c.CollateralID,
		LoanID:       c.LoanID,
		Type:         c.Type,
		Value:        c.Value,
		LTV:          c.LoanToValueRatio,
		Condition:    c.Condition,
		IsPrimary:    c.IsPrimary,
		Ownership:    c.OwnershipType,
		Verified:     c.OwnershipVerified,
		ValuationOn:  c.ValuationDate,
		Agency:       c.ValuationAgency,
	}
	if c.Insurance != nil {
		row.Insured = true
		row.InsuranceCompany = c.Insurance.Company
		row.InsuredValue = c.Insurance.Coverage
	}
	return row
}

func LoanRow(l *loan.Loan) FactLoan {
	row := FactLoan{
		LoanID:          l.LoanID,
		CustomerID:      l.CustomerID,
		ProductID:       l.ProductID,
		BranchID:        l.BranchID,
		ApplicationDate: l.ApplicationDate,
		Amount:          l.Amount,
		Purpose:         l.Purpose,
		BureauScore:     l.BureauScore,
		InternalRating:  l.InternalRating,
		Status:          string(l.Status),
	}

	if t := l.Terms; t != nil {
		row.DisbursementDate = timePtr(t.DisbursementDate)
		row.FirstEMIDate = timePtr(t.FirstEMIDate)
		row.SanctionedAmount = &t.SanctionedAmount
		row.InterestRate = &t.InterestRate
		row.TenureMonths = &t.TenureMonths
		row.EMIAmount = &t.EMIAmount
		row.ProcessingFee = &t.ProcessingFee
		row.GSTOnFee = &t.GSTOnFee
		row.NetDisbursed = &t.NetDisbursed

		row.CollateralID = t.CollateralID
		if t.CollateralID != "" {
			row.CollateralValue = &t.CollateralValue
			row.LTV = &t.LoanToValueRatio
		}

		row.CoApplicantPresent = t.CoApplicantPresent
		if t.CoApplicantPresent {
			row.CoApplicantIncome = &t.CoApplicantIncome
		}

		row.PD = &t.ProbabilityOfDefault
		row.LGD = &t.LossGivenDefault
		row.EAD = &t.ExposureAtDefault
		row.EL = &t.ExpectedLoss

		row.CurrentBalance = &t.CurrentBalance
		row.OverdueAmount = &t.OverdueAmount
		row.DaysPastDue = &t.DaysPastDue
		row.DPDBucket = t.DPDBucket
		row.NPAFlag = t.NPAFlag
		row.NPADate = t.NPADate

		row.RestructuringFlag = t.RestructuringFlag
		row.WrittenOffFlag = t.WrittenOffFlag
		row.CollectionTier = t.CollectionTier
		row.CollectionAgent = t.CollectionAgent
	}

	if l.Fraud != nil {
		row.FraudFlag = true
		row.FraudType = l.Fraud.Type
		row.FraudDetectionDate = timePtr(l.Fraud.DetectionDate)
	}
	return row
}

func TransactionRow(t *transaction.Transaction) FactTransaction {
	row := FactTransaction{
		TransactionID: t.TransactionID,
		LoanID:        t.LoanID,
		CustomerID:    t.CustomerID,
		Date:          t.Date,
		Type:          string(t.Type),
		Mode:          t.Mode,
		Amount:        t.Amount,

		PaymentReference: t.PaymentReference,
		BankName:         t.BankName,
		BankAccountLast4: t.BankAccountLast4,

		Status:         string(t.Status),
		FailureReason:  t.FailureReason,
		Reconciliation: t.Reconciliation,
		ReconciledDate: t.ReconciledDate,
	}
	if c := t.Components; c != nil {
		row.Principal = &c.Principal
		row.Interest = &c.Interest
		row.Penalty = &c.Penalty
		row.GST = &c.GST
	}
	return row
}

func FraudAlertRow(a *fraud.Alert) FactFraudAlert {
	return FactFraudAlert{
		AlertID:       a.AlertID,
		LoanID:        a.LoanID,
		CustomerID:    a.CustomerID,
		DetectionDate: a.DetectionDate,

		Type:     string(a.Type),
		Category: a.Category,

		RiskScore: a.RiskScore,
		RiskLevel: string(a.RiskLevel),

		DetectionMethod: a.DetectionMethod,
		RuleTriggered:   a.RuleTriggered,
		Description:     a.Description,

		AssignedTo:         a.AssignedTo,
		Investigation:      string(a.Investigation),
		InvestigationNotes: a.InvestigationNotes,
		ResolutionDate:     a.ResolutionDate,

		FinancialImpact: a.FinancialImpact,
	}
}

func timePtr(t time.Time) *time.Time { return &t }
