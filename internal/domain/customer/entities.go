package customer

import "time"

type EmploymentType string

const (
	EmploymentSalaried     EmploymentType = "Salaried"
	EmploymentSelfEmployed EmploymentType = "Self-Employed Professional"
	EmploymentBusiness     EmploymentType = "Business Owner"
	EmploymentGovernment   EmploymentType = "Government Employee"
	EmploymentContractual  EmploymentType = "Contractual"
	EmploymentRetired      EmploymentType = "Retired"
	EmploymentHomemaker    EmploymentType = "Homemaker"
)

type Customer struct {
	CustomerID    string         `json:"customer_id"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	DateOfBirth   time.Time      `json:"date_of_birth"`
	Age           int            `json:"age"`
	Gender        string         `json:"gender"`
	MaritalStatus string         `json:"marital_status"`
	Education     string         `json:"education"`
	Employment    EmploymentType `json:"employment_type"`
	AnnualIncome  float64        `json:"annual_income"`
	IncomeTier    string         `json:"income_tier"`
	CreditScore   int            `json:"credit_score"`
	CreditTier    string         `json:"credit_tier"`

	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`

	Segment            string    `json:"customer_segment"`
	ValueTier          string    `json:"customer_value_tier"`
	AcquisitionDate    time.Time `json:"acquisition_date"`
	AcquisitionChannel string    `json:"acquisition_channel"`
	IsActive           bool      `json:"is_active"`

	// SCD type-2 lifecycle fields for the dim_customer load.
	EffectiveStartDate time.Time  `json:"effective_start_date"`
	EffectiveEndDate   *time.Time `json:"effective_end_date"`
	IsCurrent          bool       `json:"is_current"`
}

// TierForIncome maps annual income (INR) to the fixed income tier table.
func TierForIncome(income float64) string {
	switch {
	case income < 300_000:
		return "Low"
	case income < 600_000:
		return "Lower-Middle"
	case income < 1_200_000:
		return "Middle"
	case income < 2_400_000:
		return "Upper-Middle"
	case income < 5_000_000:
		return "High"
	default:
		return "Affluent"
	}
}

// TierForScore maps a bureau score to the fixed credit tier table.
func TierForScore(score int) string {
	switch {
	case score >= 750:
		return "Prime"
	case score >= 650:
		return "Near-Prime"
	case score >= 550:
		return "Sub-Prime"
	default:
		return "Deep-Subprime"
	}
}

// ValueTierFor combines income and credit score into the composite value
// tier: value = income/100k + score/10, banded at 200/150/100.
func ValueTierFor(income float64, score int) string {
	v := income/100_000 + float64(score)/10
	switch {
	case v > 200:
		return "Platinum"
	case v > 150:
		return "Gold"
	case v > 100:
		return "Silver"
	default:
		return "Bronze"
	}
}
