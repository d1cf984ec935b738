package run

import "time"

type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type StartInput struct {
	Seed            int64   `json:"seed"`
	NumCustomers    int     `json:"num_customers" validate:"omitempty,min=1,max=1000000"`
	NumLoans        int     `json:"num_loans" validate:"omitempty,min=1,max=5000000"`
	NumTransactions int     `json:"num_transactions" validate:"omitempty,min=1,max=20000000"`
	TargetFraudRate float64 `json:"target_fraud_rate" validate:"omitempty,gt=0,lte=1"`
	AsOf            string  `json:"as_of" validate:"required,rundate"`

	LoadWarehouse bool `json:"load_warehouse"`
	Export        bool `json:"export"`
}

type Summary struct {
	Customers     int `json:"customers"`
	Loans         int `json:"loans"`
	Collateral    int `json:"collateral"`
	Transactions  int `json:"transactions"`
	FraudAlerts   int `json:"fraud_alerts"`
	ApprovedLoans int `json:"approved_loans"`
	RejectedLoans int `json:"rejected_loans"`
	NPALoans      int `json:"npa_loans"`
	FraudLoans    int `json:"fraud_loans"`
}

type RunDTO struct {
	RunID       string     `json:"run_id"`
	Status      Status     `json:"status"`
	Seed        int64      `json:"seed"`
	AsOf        time.Time  `json:"as_of"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Summary      *Summary `json:"summary,omitempty"`
	QualityScore float64  `json:"quality_score,omitempty"`
	Warehoused   bool     `json:"warehoused"`
	ExportFiles  []string `json:"export_files,omitempty"`
	Error        string   `json:"error,omitempty"`
}
