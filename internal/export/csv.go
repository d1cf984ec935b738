// Package export writes a generated dataset to flat CSV files plus a JSON
// quality report and run manifest, mirroring the raw layer of the ETL.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"creditflow360/internal/generator"
)

const dateLayout = "2006-01-02"

type Writer struct{ baseDir string }

func NewWriter(baseDir string) *Writer { return &Writer{baseDir: baseDir} }

// Manifest describes one export so downstream ETL can pick it up without
// listing the directory.
type Manifest struct {
	ManifestID  string         `json:"manifest_id"`
	RunID       string         `json:"run_id"`
	ExportedAt  time.Time      `json:"exported_at"`
	Files       []string       `json:"files"`
	RecordCount map[string]int `json:"record_counts"`
}

// Export writes every table under baseDir/<runID>/ and returns the written
// paths, manifest last.
func (w *Writer) Export(ds *generator.Dataset, runID string) ([]string, error) {
	dir := filepath.Join(w.baseDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	var files []string
	write := func(name string, header []string, rows [][]string) error {
		path := filepath.Join(dir, name)
		if err := writeCSV(path, header, rows); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		files = append(files, path)
		return nil
	}

	if err := write("customers.csv", customerHeader, customerRows(ds)); err != nil {
		return nil, err
	}
	if err := write("loans.csv", loanHeader, loanRows(ds)); err != nil {
		return nil, err
	}
	if err := write("collateral.csv", collateralHeader, collateralRows(ds)); err != nil {
		return nil, err
	}
	if err := write("transactions.csv", transactionHeader, transactionRows(ds)); err != nil {
		return nil, err
	}
	if err := write("fraud_alerts.csv", fraudHeader, fraudRows(ds)); err != nil {
		return nil, err
	}

	qualityPath := filepath.Join(dir, "quality_report.json")
	if err := writeJSON(qualityPath, ds.Quality); err != nil {
		return nil, fmt.Errorf("writing quality report: %w", err)
	}
	files = append(files, qualityPath)

	manifest := Manifest{
		ManifestID: uuid.NewString(),
		RunID:      runID,
		ExportedAt: time.Now().UTC(),
		Files:      files,
		RecordCount: map[string]int{
			"customers":    len(ds.Customers),
			"loans":        len(ds.Loans),
			"collateral":   len(ds.Collateral),
			"transactions": len(ds.Transactions),
			"fraud_alerts": len(ds.FraudAlerts),
		},
	}
	manifestPath := filepath.Join(dir, "manifest.json")
	if err := writeJSON(manifestPath, manifest); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	files = append(files, manifestPath)

	return files, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ----- per-table flattening -----

var customerHeader = []string{
	"customer_id", "first_name", "last_name", "date_of_birth", "age",
	"gender", "marital_status", "education", "employment_type",
	"annual_income", "income_tier", "credit_score", "credit_tier",
	"city", "state", "pincode", "phone", "email",
	"customer_segment", "customer_value_tier", "acquisition_date",
	"acquisition_channel", "is_active",
}

func customerRows(ds *generator.Dataset) [][]string {
	rows := make([][]string, 0, len(ds.Customers))
	for i := range ds.Customers {
		c := &ds.Customers[i]
		rows = append(rows, []string{
			c.CustomerID, c.FirstName, c.LastName,
			c.DateOfBirth.Format(dateLayout), strconv.Itoa(c.Age),
			c.Gender, c.MaritalStatus, c.Education, string(c.Employment),
			num(c.AnnualIncome), c.IncomeTier, strconv.Itoa(c.CreditScore), c.CreditTier,
			c.City, c.State, c.Pincode, c.Phone, c.Email,
			c.Segment, c.ValueTier, c.AcquisitionDate.Format(dateLayout),
			c.AcquisitionChannel, boolStr(c.IsActive),
		})
	}
	return rows
}

var loanHeader = []string{
	"loan_id", "customer_id", "product_id", "branch_id", "application_date",
	"loan_amount", "loan_purpose", "bureau_score_at_origination",
	"internal_risk_rating", "loan_status",
	"disbursement_date", "first_emi_date", "interest_rate", "tenure_months",
	"emi_amount", "processing_fee", "gst_on_fee", "net_disbursed_amount",
	"collateral_id", "collateral_value", "loan_to_value_ratio",
	"probability_of_default", "loss_given_default", "exposure_at_default",
	"expected_loss", "current_balance", "overdue_amount", "days_past_due",
	"dpd_bucket", "npa_flag", "collection_tier",
	"fraud_flag", "fraud_type", "fraud_detection_date",
}

func loanRows(ds *generator.Dataset) [][]string {
	rows := make([][]string, 0, len(ds.Loans))
	for i := range ds.Loans {
		l := &ds.Loans[i]
		row := []string{
			l.LoanID, l.CustomerID, l.ProductID, l.BranchID,
			l.ApplicationDate.Format(dateLayout),
			num(l.Amount), l.Purpose, strconv.Itoa(l.BureauScore),
			l.InternalRating, string(l.Status),
		}
		if t := l.Terms; t != nil {
			row = append(row,
				t.DisbursementDate.Format(dateLayout), t.FirstEMIDate.Format(dateLayout),
				num(t.InterestRate), strconv.Itoa(t.TenureMonths),
				num(t.EMIAmount), num(t.ProcessingFee), num(t.GSTOnFee), num(t.NetDisbursed),
				t.CollateralID, num(t.CollateralValue), num(t.LoanToValueRatio),
				num(t.ProbabilityOfDefault), num(t.LossGivenDefault), num(t.ExposureAtDefault),
				num(t.ExpectedLoss), num(t.CurrentBalance), num(t.OverdueAmount),
				strconv.Itoa(t.DaysPastDue), t.DPDBucket, boolStr(t.NPAFlag),
				strconv.Itoa(t.CollectionTier),
			)
		} else {
			row = append(row, make([]string, 21)...)
		}
		if l.Fraud != nil {
			row = append(row, "true", l.Fraud.Type, l.Fraud.DetectionDate.Format(dateLayout))
		} else {
			row = append(row, "false", "", "")
		}
		rows = append(rows, row)
	}
	return rows
}

var collateralHeader = []string{
	"collateral_id", "loan_id", "collateral_type", "collateral_value",
	"valuation_date", "valuation_agency", "loan_to_value_ratio",
	"condition", "ownership_type", "ownership_verified", "is_primary_collateral",
}

func collateralRows(ds *generator.Dataset) [][]string {
	rows := make([][]string, 0, len(ds.Collateral))
	for i := range ds.Collateral {
		c := &ds.Collateral[i]
		rows = append(rows, []string{
			c.CollateralID, c.LoanID, c.Type, num(c.Value),
			c.ValuationDate.Format(dateLayout), c.ValuationAgency,
			num(c.LoanToValueRatio), c.Condition, c.OwnershipType,
			boolStr(c.OwnershipVerified), boolStr(c.IsPrimary),
		})
	}
	return rows
}

var transactionHeader = []string{
	"transaction_id", "loan_id", "customer_id", "transaction_date",
	"transaction_type", "transaction_mode", "amount",
	"principal_component", "interest_component", "penalty_component", "gst_component",
	"payment_reference", "bank_name", "bank_account_last4",
	"transaction_status", "failure_reason", "reconciliation_status", "reconciled_date",
}

func transactionRows(ds *generator.Dataset) [][]string {
	rows := make([][]string, 0, len(ds.Transactions))
	for i := range ds.Transactions {
		t := &ds.Transactions[i]
		row := []string{
			t.TransactionID, t.LoanID, t.CustomerID, t.Date.Format(dateLayout),
			string(t.Type), t.Mode, num(t.Amount),
		}
		if c := t.Components; c != nil {
			row = append(row, num(c.Principal), num(c.Interest), num(c.Penalty), num(c.GST))
		} else {
			row = append(row, "", "", "", "")
		}
		reconciled := ""
		if t.ReconciledDate != nil {
			reconciled = t.ReconciledDate.Format(dateLayout)
		}
		row = append(row,
			t.PaymentReference, t.BankName, t.BankAccountLast4,
			string(t.Status), t.FailureReason, t.Reconciliation, reconciled,
		)
		rows = append(rows, row)
	}
	return rows
}

var fraudHeader = []string{
	"alert_id", "loan_id", "customer_id", "detection_date",
	"alert_type", "alert_category", "risk_score", "risk_level",
	"detection_method", "rule_triggered", "alert_description",
	"assigned_to", "investigation_status", "investigation_notes",
	"resolution_date", "financial_impact",
}

func fraudRows(ds *generator.Dataset) [][]string {
	rows := make([][]string, 0, len(ds.FraudAlerts))
	for i := range ds.FraudAlerts {
		a := &ds.FraudAlerts[i]
		resolved := ""
		if a.ResolutionDate != nil {
			resolved = a.ResolutionDate.Format(dateLayout)
		}
		rows = append(rows, []string{
			a.AlertID, a.LoanID, a.CustomerID, a.DetectionDate.Format(dateLayout),
			string(a.Type), a.Category, strconv.Itoa(a.RiskScore), string(a.RiskLevel),
			a.DetectionMethod, a.RuleTriggered, a.Description,
			a.AssignedTo, string(a.Investigation), a.InvestigationNotes,
			resolved, num(a.FinancialImpact),
		})
	}
	return rows
}

func num(v float64) string  { return strconv.FormatFloat(v, 'f', -1, 64) }
func boolStr(b bool) string { return strconv.FormatBool(b) }
