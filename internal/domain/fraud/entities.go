package fraud

import "time"

type AlertType string

const (
	TypeIncomeMismatch    AlertType = "Income Mismatch"
	TypeSharedCollateral  AlertType = "Multiple Applications Same Collateral"
	TypeEarlyDefault      AlertType = "Early Payment Default"
	TypeSyntheticIdentity AlertType = "Synthetic Identity"
)

type RiskLevel string

const (
	LevelCritical RiskLevel = "Critical"
	LevelHigh     RiskLevel = "High"
	LevelMedium   RiskLevel = "Medium"
	LevelLow      RiskLevel = "Low"
)

type InvestigationStatus string

const (
	StatusNew           InvestigationStatus = "New"
	StatusInProgress    InvestigationStatus = "In Progress"
	StatusConfirmed     InvestigationStatus = "Confirmed"
	StatusFalsePositive InvestigationStatus = "False Positive"
)

// Alert is one fraud finding. LoanID is empty for customer-only alerts
// (synthetic identity); CustomerID is always set.
type Alert struct {
	AlertID       string    `json:"alert_id"`
	LoanID        string    `json:"loan_id,omitempty"`
	CustomerID    string    `json:"customer_id"`
	TransactionID string    `json:"transaction_id,omitempty"`
	DetectionDate time.Time `json:"detection_date"`

	Type     AlertType `json:"alert_type"`
	Category string    `json:"alert_category"`

	RiskScore int       `json:"risk_score"`
	RiskLevel RiskLevel `json:"risk_level"`

	DetectionMethod string `json:"detection_method"`
	RuleTriggered   string `json:"rule_triggered"`
	Description     string `json:"alert_description"`

	AssignedTo         string              `json:"assigned_to"`
	Investigation      InvestigationStatus `json:"investigation_status"`
	InvestigationNotes string              `json:"investigation_notes,omitempty"`
	ResolutionDate     *time.Time          `json:"resolution_date,omitempty"`

	FinancialImpact float64 `json:"financial_impact"`
}

// LevelFor maps a risk score to its fixed band. Scores are clamped to
// [1,100] before this is called, so every score lands in exactly one band.
func LevelFor(score int) RiskLevel {
	switch {
	case score >= 80:
		return LevelCritical
	case score >= 60:
		return LevelHigh
	case score >= 40:
		return LevelMedium
	default:
		return LevelLow
	}
}

// CategoryFor returns the reporting category for an alert type.
func CategoryFor(t AlertType) string {
	switch t {
	case TypeIncomeMismatch:
		return "Application Fraud"
	case TypeSharedCollateral:
		return "Application Fraud"
	case TypeEarlyDefault:
		return "Transaction Fraud"
	case TypeSyntheticIdentity:
		return "Identity Fraud"
	default:
		return "Application Fraud"
	}
}

// MethodFor returns the detection method recorded on alerts of a type.
func MethodFor(t AlertType) string {
	switch t {
	case TypeIncomeMismatch:
		return "Rule-based"
	case TypeSharedCollateral:
		return "Network Analysis"
	case TypeEarlyDefault:
		return "Behavioral Analysis"
	case TypeSyntheticIdentity:
		return "Anomaly Detection"
	default:
		return "Rule-based"
	}
}
