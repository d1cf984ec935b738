package transaction

import "time"

type Type string

const (
	TypeDisbursement  Type = "Disbursement"
	TypeEMI           Type = "EMI"
	TypePrepayment    Type = "Prepayment"
	TypePenalty       Type = "Penalty"
	TypeProcessingFee Type = "Processing Fee"
)

type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
	StatusPending Status = "Pending"
)

// Components is the principal/interest/penalty/GST split of an EMI payment.
// Disbursement transactions carry no split.
type Components struct {
	Principal float64 `json:"principal_component"`
	Interest  float64 `json:"interest_component"`
	Penalty   float64 `json:"penalty_component"`
	GST       float64 `json:"gst_component"`
}

type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	LoanID        string    `json:"loan_id"`
	CustomerID    string    `json:"customer_id"`
	Date          time.Time `json:"transaction_date"`
	Type          Type      `json:"transaction_type"`
	Mode          string    `json:"transaction_mode"`
	Amount        float64   `json:"amount"`

	Components *Components `json:"components,omitempty"`

	PaymentReference string `json:"payment_reference"`
	BankName         string `json:"bank_name"`
	BankAccountLast4 string `json:"bank_account_last4"`

	Status         Status     `json:"transaction_status"`
	FailureReason  string     `json:"failure_reason,omitempty"`
	Reconciliation string     `json:"reconciliation_status"`
	ReconciledDate *time.Time `json:"reconciled_date,omitempty"`
}
