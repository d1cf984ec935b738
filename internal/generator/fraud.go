package generator

import (
	"fmt"
	"strings"
	"time"

	"creditflow360/internal/domain/customer"
	"creditflow360/internal/domain/fraud"
	"creditflow360/internal/domain/loan"
	"creditflow360/internal/rng"
	"creditflow360/pkg/money"
)

// LoanPatch is the fraud enrichment to apply back onto a loan. The scan
// itself never mutates the loan slice; the caller applies the patches.
type LoanPatch struct {
	LoanID        string
	Type          fraud.AlertType
	DetectionDate time.Time
}

// FraudGenerator runs the four fraud detection scenarios over a generated
// portfolio and returns alerts plus the loan flags they imply.
type FraudGenerator struct {
	rng  *rng.Source
	asOf time.Time
}

func NewFraudGenerator(seed int64, asOf time.Time) *FraudGenerator {
	return &FraudGenerator{rng: rng.New(seed), asOf: asOf.UTC()}
}

// GenerateAll runs every scenario in a fixed order and resolves confirmed
// alerts afterwards. Patches carry the loan-side enrichment for every alert
// tied to a loan.
func (g *FraudGenerator) GenerateAll(loans []loan.Loan, customers []customer.Customer) ([]fraud.Alert, []LoanPatch) {
	var alerts []fraud.Alert
	alerts = append(alerts, g.incomeMismatch(loans, customers)...)
	alerts = append(alerts, g.sharedCollateral(loans)...)
	alerts = append(alerts, g.earlyDefault(loans)...)
	alerts = append(alerts, g.syntheticIdentity(customers)...)

	g.resolveConfirmed(alerts)

	var patches []LoanPatch
	for _, a := range alerts {
		if a.LoanID == "" {
			continue
		}
		patches = append(patches, LoanPatch{
			LoanID:        a.LoanID,
			Type:          a.Type,
			DetectionDate: a.DetectionDate,
		})
	}
	return alerts, patches
}

// incomeMismatch flags loans where a weak borrower (score < 600, income
// < 8L) borrowed more than 3x declared income. 15% of candidates convert
// into alerts.
func (g *FraudGenerator) incomeMismatch(loans []loan.Loan, customers []customer.Customer) []fraud.Alert {
	highRisk := make(map[string]customer.Customer)
	for _, c := range customers {
		if c.CreditScore < 600 && c.AnnualIncome < 800000 {
			highRisk[c.CustomerID] = c
		}
	}

	var alerts []fraud.Alert
	for i := range loans {
		l := &loans[i]
		c, ok := highRisk[l.CustomerID]
		if !ok {
			continue
		}
		if l.Amount <= c.AnnualIncome*3 {
			continue
		}
		if l.Status != loan.StatusActive && l.Status != loan.StatusOverdue {
			continue
		}
		if !g.rng.Probability(0.15) {
			continue
		}

		dpd := 0
		if l.Disbursed() {
			dpd = l.Terms.DaysPastDue
		}
		score := g.riskScore(fraud.TypeIncomeMismatch, l.Amount, c.CreditScore, dpd)
		alerts = append(alerts, fraud.Alert{
			AlertID:       g.alertID(),
			LoanID:        l.LoanID,
			CustomerID:    l.CustomerID,
			DetectionDate: g.asOf.AddDate(0, 0, -g.rng.IntBetween(1, 30)),
			Type:          fraud.TypeIncomeMismatch,
			Category:      fraud.CategoryFor(fraud.TypeIncomeMismatch),
			RiskScore:     score,
			RiskLevel:     fraud.LevelFor(score),
			DetectionMethod: fraud.MethodFor(fraud.TypeIncomeMismatch),
			RuleTriggered:   rng.Pick(g.rng, fraudRuleTriggers[fraud.TypeIncomeMismatch]),
			Description: fmt.Sprintf(
				"Income of ₹%.0f incompatible with loan amount of ₹%.0f and credit score of %d",
				c.AnnualIncome, l.Amount, c.CreditScore),
			AssignedTo: fmt.Sprintf("ANALYST%02d", g.rng.IntBetween(1, 20)),
			Investigation: rng.Weighted(g.rng,
				[]fraud.InvestigationStatus{fraud.StatusNew, fraud.StatusInProgress, fraud.StatusConfirmed, fraud.StatusFalsePositive},
				[]float64{0.30, 0.25, 0.30, 0.15}),
			FinancialImpact: g.financialImpact(fraud.TypeIncomeMismatch, l.Amount),
		})
	}
	return alerts
}

// sharedCollateral groups disbursed loans by collateral ID (first-seen
// order) and flags groups where two or more distinct customers pledged the
// same collateral. 30% of candidate groups convert; every loan in a flagged
// group gets its own alert, with the impact assessed on the group total.
func (g *FraudGenerator) sharedCollateral(loans []loan.Loan) []fraud.Alert {
	groups := make(map[string][]*loan.Loan)
	var order []string
	for i := range loans {
		l := &loans[i]
		if !l.Disbursed() || l.Terms.CollateralID == "" {
			continue
		}
		id := l.Terms.CollateralID
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], l)
	}

	var alerts []fraud.Alert
	for _, collateralID := range order {
		group := groups[collateralID]
		if len(group) < 2 || !g.rng.Probability(0.3) {
			continue
		}
		customers := make(map[string]struct{})
		total := 0.0
		for _, l := range group {
			customers[l.CustomerID] = struct{}{}
			total += l.Amount
		}
		if len(customers) < 2 {
			continue
		}

		for _, l := range group {
			// Bureau score is irrelevant here; the scenario scores against
			// a neutral 650 and adds a flat collateral-fraud bonus.
			score := g.riskScore(fraud.TypeSharedCollateral, l.Amount, 650, l.Terms.DaysPastDue)
			score = min(100, score+10)
			alerts = append(alerts, fraud.Alert{
				AlertID:       g.alertID(),
				LoanID:        l.LoanID,
				CustomerID:    l.CustomerID,
				DetectionDate: g.asOf.AddDate(0, 0, -g.rng.IntBetween(1, 15)),
				Type:          fraud.TypeSharedCollateral,
				Category:      fraud.CategoryFor(fraud.TypeSharedCollateral),
				RiskScore:     score,
				RiskLevel:     fraud.LevelFor(score),
				DetectionMethod: fraud.MethodFor(fraud.TypeSharedCollateral),
				RuleTriggered:   rng.Pick(g.rng, fraudRuleTriggers[fraud.TypeSharedCollateral]),
				Description: fmt.Sprintf(
					"Collateral %s used for %d applications by %d different customers",
					collateralID, len(group), len(customers)),
				AssignedTo: fmt.Sprintf("ANALYST%02d", g.rng.IntBetween(1, 20)),
				Investigation: rng.Weighted(g.rng,
					[]fraud.InvestigationStatus{fraud.StatusInProgress, fraud.StatusConfirmed, fraud.StatusFalsePositive},
					[]float64{0.4, 0.4, 0.2}),
				FinancialImpact: g.financialImpact(fraud.TypeSharedCollateral, total),
			})
		}
	}
	return alerts
}

// earlyDefault flags loans disbursed within the last 90 days that are
// already more than 30 days past due. 25% of candidates convert.
func (g *FraudGenerator) earlyDefault(loans []loan.Loan) []fraud.Alert {
	cutoff := g.asOf.AddDate(0, 0, -90)

	var alerts []fraud.Alert
	for i := range loans {
		l := &loans[i]
		if !l.Disbursed() || l.Terms.DisbursementDate.Before(cutoff) {
			continue
		}
		if l.Terms.DaysPastDue <= 30 {
			continue
		}
		if l.Status != loan.StatusOverdue && l.Status != loan.StatusNPA {
			continue
		}
		if !g.rng.Probability(0.25) {
			continue
		}

		bureau := l.BureauScore
		if bureau == 0 {
			bureau = 650
		}
		score := g.riskScore(fraud.TypeEarlyDefault, l.Amount, bureau, l.Terms.DaysPastDue)
		alerts = append(alerts, fraud.Alert{
			AlertID:       g.alertID(),
			LoanID:        l.LoanID,
			CustomerID:    l.CustomerID,
			DetectionDate: g.asOf.AddDate(0, 0, -g.rng.IntBetween(1, 7)),
			Type:          fraud.TypeEarlyDefault,
			Category:      fraud.CategoryFor(fraud.TypeEarlyDefault),
			RiskScore:     score,
			RiskLevel:     fraud.LevelFor(score),
			DetectionMethod: fraud.MethodFor(fraud.TypeEarlyDefault),
			RuleTriggered:   rng.Pick(g.rng, fraudRuleTriggers[fraud.TypeEarlyDefault]),
			Description: fmt.Sprintf(
				"Loan defaulted within first 3 months. DPD: %d days", l.Terms.DaysPastDue),
			AssignedTo: fmt.Sprintf("COLLECT%02d", g.rng.IntBetween(1, 30)),
			Investigation: rng.Weighted(g.rng,
				[]fraud.InvestigationStatus{fraud.StatusNew, fraud.StatusInProgress, fraud.StatusConfirmed},
				[]float64{0.5, 0.3, 0.2}),
			FinancialImpact: g.financialImpact(fraud.TypeEarlyDefault, l.Amount),
		})
	}
	return alerts
}

// syntheticIdentity flags recently acquired customers over 25 with a
// deep-subprime score and no credit track record. These alerts are
// customer-only (no loan) and carry zero impact: the fraud was prevented
// at onboarding. 10% of candidates convert.
func (g *FraudGenerator) syntheticIdentity(customers []customer.Customer) []fraud.Alert {
	cutoff := g.asOf.AddDate(0, 0, -180)

	var alerts []fraud.Alert
	for _, c := range customers {
		if c.CreditScore >= 550 || c.Age <= 25 || !c.AcquisitionDate.After(cutoff) {
			continue
		}
		if !g.rng.Probability(0.10) {
			continue
		}

		score := g.riskScore(fraud.TypeSyntheticIdentity, 0, c.CreditScore, 0)
		alerts = append(alerts, fraud.Alert{
			AlertID:       g.alertID(),
			CustomerID:    c.CustomerID,
			DetectionDate: g.asOf.AddDate(0, 0, -g.rng.IntBetween(1, 20)),
			Type:          fraud.TypeSyntheticIdentity,
			Category:      fraud.CategoryFor(fraud.TypeSyntheticIdentity),
			RiskScore:     score,
			RiskLevel:     fraud.LevelFor(score),
			DetectionMethod: fraud.MethodFor(fraud.TypeSyntheticIdentity),
			RuleTriggered:   rng.Pick(g.rng, fraudRuleTriggers[fraud.TypeSyntheticIdentity]),
			Description: fmt.Sprintf(
				"Customer age %d with credit score %d and no credit history",
				c.Age, c.CreditScore),
			AssignedTo: fmt.Sprintf("ANALYST%02d", g.rng.IntBetween(1, 20)),
			Investigation: rng.Weighted(g.rng,
				[]fraud.InvestigationStatus{fraud.StatusNew, fraud.StatusInProgress},
				[]float64{0.6, 0.4}),
		})
	}
	return alerts
}

// resolveConfirmed fills resolution fields on every confirmed alert in a
// single pass after all scenarios ran.
func (g *FraudGenerator) resolveConfirmed(alerts []fraud.Alert) {
	for i := range alerts {
		if alerts[i].Investigation != fraud.StatusConfirmed {
			continue
		}
		outcome := rng.Pick(g.rng, confirmedFraudOutcomes)
		alerts[i].InvestigationNotes = "Fraud confirmed after investigation. " + outcome
		resolved := g.asOf.AddDate(0, 0, -g.rng.IntBetween(1, 30))
		alerts[i].ResolutionDate = &resolved
	}
}

// riskScore builds the alert score from the type's base weight plus
// amount, bureau score and delinquency adjustments, with ±10 noise,
// clamped to [1,100].
func (g *FraudGenerator) riskScore(t fraud.AlertType, amount float64, creditScore, daysPastDue int) int {
	var base int
	switch t {
	case fraud.TypeIncomeMismatch:
		base = 60
	case fraud.TypeSharedCollateral:
		base = 75
	case fraud.TypeSyntheticIdentity:
		base = 85
	case fraud.TypeEarlyDefault:
		base = 55
	default:
		base = 50
	}

	switch {
	case amount > 10000000:
		base += 15
	case amount > 5000000:
		base += 10
	case amount > 1000000:
		base += 5
	}

	switch {
	case creditScore < 550:
		base += 15
	case creditScore < 650:
		base += 10
	case creditScore < 750:
		base += 5
	}

	switch {
	case daysPastDue > 90:
		base += 20
	case daysPastDue > 60:
		base += 15
	case daysPastDue > 30:
		base += 10
	}

	score := base + g.rng.IntBetween(-10, 10)
	return min(100, max(1, score))
}

// financialImpact is the estimated loss exposure of a confirmed case, as a
// type-specific fraction of the exposed amount with ±20% noise.
func (g *FraudGenerator) financialImpact(t fraud.AlertType, amount float64) float64 {
	var pct float64
	switch t {
	case fraud.TypeIncomeMismatch:
		pct = 0.30
	case fraud.TypeSharedCollateral:
		pct = 0.60
	case fraud.TypeSyntheticIdentity:
		pct = 0.80
	case fraud.TypeEarlyDefault:
		pct = 0.40
	default:
		pct = 0.50
	}
	return money.Round2(amount * pct * g.rng.Uniform(0.8, 1.2))
}

func (g *FraudGenerator) alertID() string {
	return "FRD" + strings.ToUpper(g.rng.Hex(10))
}
