package generator

import (
	"fmt"
	"math"
	"time"

	"creditflow360/internal/domain/collateral"
	"creditflow360/internal/domain/customer"
	"creditflow360/internal/domain/loan"
	"creditflow360/internal/domain/product"
	"creditflow360/internal/rng"
	"creditflow360/pkg/money"
)

// approvalRate is the fixed probability an application is approved.
const approvalRate = 0.9

// applicationWindowMonths is how far back application dates reach from the
// run anchor.
const applicationWindowMonths = 30

// LoanGenerator samples customers against the product catalog and produces
// both approved and rejected loan applications, attaching collateral
// packages for secured products.
type LoanGenerator struct {
	rng        *rng.Source
	collateral *CollateralGenerator
	catalog    *product.Catalog
	asOf       time.Time
	branchIDs  []string
}

func NewLoanGenerator(seed int64, catalog *product.Catalog, asOf time.Time) *LoanGenerator {
	branches := make([]string, 0, 25)
	for i := 1; i <= 25; i++ {
		branches = append(branches, fmt.Sprintf("BR%03d", i))
	}
	return &LoanGenerator{
		rng:        rng.New(seed),
		collateral: NewCollateralGenerator(seed, asOf),
		catalog:    catalog,
		asOf:       asOf.UTC(),
		branchIDs:  branches,
	}
}

// eligibility is the underwriting decision for one customer/product pair.
type eligibility struct {
	maxAmount float64
	minAmount float64
	rate      float64
	tenure    int
}

// Generate produces n applications against the customer population. It also
// returns every collateral package created, already stamped with its owning
// loan ID.
func (g *LoanGenerator) Generate(customers []customer.Customer, n int) ([]loan.Loan, []collateral.Collateral, error) {
	active := make([]customer.Customer, 0, len(customers))
	for _, c := range customers {
		if c.IsActive {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return nil, nil, fmt.Errorf("loan generator: no active customers to sample from")
	}

	windowStart := g.asOf.AddDate(0, -applicationWindowMonths, 0)

	loans := make([]loan.Loan, 0, n)
	var packages []collateral.Collateral
	for i := 0; i < n; i++ {
		cust := rng.Pick(g.rng, active)
		prod := g.selectProduct(cust)
		elig := g.assess(cust, prod)

		amount := money.RoundThousand(g.rng.Uniform(
			math.Min(prod.MinAmount, elig.maxAmount),
			math.Min(prod.MaxAmount, elig.maxAmount),
		))
		if amount < 1000 {
			amount = 1000
		}

		applicationDate := g.rng.DateBetween(windowStart, g.asOf)

		l := loan.Loan{
			LoanID:          fmt.Sprintf("LOAN%010d", i+1),
			CustomerID:      cust.CustomerID,
			ProductID:       prod.ProductID,
			BranchID:        rng.Pick(g.rng, g.branchIDs),
			ApplicationDate: applicationDate,
			Amount:          amount,
			Purpose:         rng.Pick(g.rng, loanPurposes[string(prod.Type)]),
			BureauScore:     cust.CreditScore,
			InternalRating:  cust.CreditTier,
		}

		if g.rng.Probability(approvalRate) {
			terms, pkgs := g.disburse(&l, cust, prod, elig)
			l.Terms = terms
			l.Status = loan.StatusFor(terms.DaysPastDue)
			packages = append(packages, pkgs...)
		} else {
			l.Status = loan.StatusRejected
		}

		loans = append(loans, l)
	}
	return loans, packages, nil
}

// selectProduct biases product choice: high-income customers toward
// high-ticket products, business or self-employed customers toward business
// loans; everyone else samples the full catalog.
func (g *LoanGenerator) selectProduct(cust customer.Customer) product.Product {
	switch {
	case cust.AnnualIncome > 2_000_000:
		return rng.Pick(g.rng, g.catalog.Filter(func(p product.Product) bool {
			return p.MinAmount > 1_000_000
		}))
	case cust.Employment == customer.EmploymentBusiness || cust.Employment == customer.EmploymentSelfEmployed:
		return rng.Pick(g.rng, g.catalog.Filter(func(p product.Product) bool {
			return p.Type == product.TypeBusiness
		}))
	default:
		return rng.Pick(g.rng, g.catalog.Products())
	}
}

// assess computes eligibility and pricing. The income multiple is
// credit-score-tiered (3.0 baseline, 4.0 above 650, 5.0 above 750); the
// rate starts at the band midpoint and moves with credit quality, clamped
// back into the product band; tenure is capped by product family.
func (g *LoanGenerator) assess(cust customer.Customer, prod product.Product) eligibility {
	multiple := 3.0
	switch {
	case cust.CreditScore > 750:
		multiple = 5.0
	case cust.CreditScore > 650:
		multiple = 4.0
	}
	maxEligible := cust.AnnualIncome * multiple

	rate := (prod.MinRate + prod.MaxRate) / 2
	switch {
	case cust.CreditScore > 750:
		rate -= 0.5
	case cust.CreditScore < 600:
		rate += 1.0
	}
	rate = math.Max(prod.MinRate, math.Min(prod.MaxRate, rate))

	var tenure int
	switch prod.Type {
	case product.TypeHome:
		tenure = min(prod.MaxTenure, 240)
	case product.TypeAuto:
		tenure = min(prod.MaxTenure, 60)
	default:
		tenure = min(prod.MaxTenure, 48)
	}

	return eligibility{
		maxAmount: math.Min(prod.MaxAmount, maxEligible),
		minAmount: prod.MinAmount,
		rate:      money.Round2(rate),
		tenure:    tenure,
	}
}

// disburse fills in everything that only exists for an approved loan.
func (g *LoanGenerator) disburse(l *loan.Loan, cust customer.Customer, prod product.Product, elig eligibility) (*loan.DisbursedTerms, []collateral.Collateral) {
	amount := l.Amount
	disbursed := l.ApplicationDate.AddDate(0, 0, g.rng.IntBetween(5, 15))
	firstEMI := disbursed.AddDate(0, 0, 30)

	daysPastDue := g.sampleDaysPastDue()
	emi := CalculateEMI(amount, elig.rate, elig.tenure)

	monthsPassed := g.asOf.Sub(disbursed).Hours() / 24 / 30
	paidEMIs := math.Min(monthsPassed, float64(elig.tenure))
	if paidEMIs < 0 {
		paidEMIs = 0
	}
	// 70/30 principal-interest split approximation for the running balance.
	balance := math.Max(0, amount-emi*paidEMIs*0.7)

	overdue := 0.0
	if daysPastDue > 0 {
		overdue = emi * float64(daysPastDue/30)
	}

	fee := money.Round2(amount * 0.01)
	gst := money.Round2(amount * 0.01 * 0.18)

	terms := &loan.DisbursedTerms{
		DisbursementDate: disbursed,
		FirstEMIDate:     firstEMI,

		SanctionedAmount: amount,
		InterestRate:     elig.rate,
		TenureMonths:     elig.tenure,
		EMIAmount:        emi,
		ProcessingFee:    fee,
		GSTOnFee:         gst,
		NetDisbursed:     amount - money.Round2(amount*0.01*1.18),

		CurrentBalance: money.Round2(balance),
		OverdueAmount:  money.Round2(overdue),
		DaysPastDue:    daysPastDue,
		DPDBucket:      loan.BucketFor(daysPastDue),
		NPAFlag:        daysPastDue > 90,
	}

	if terms.NPAFlag {
		npaDate := disbursed.AddDate(0, 0, daysPastDue)
		terms.NPADate = &npaDate
	}

	var packages []collateral.Collateral
	if prod.Collateral && g.rng.Probability(0.8) {
		packages = g.collateral.GenerateMultiple(amount, prod.Type, l.ApplicationDate, cust.City)
		var total float64
		for i := range packages {
			packages[i].LoanID = l.LoanID
			total += packages[i].Value
		}
		terms.CollateralID = packages[0].CollateralID
		terms.CollateralValue = total
		terms.LoanToValueRatio = money.Round2(amount / total * 100)
	}

	pd := CalculatePD(cust.CreditScore, daysPastDue)
	lgd := g.calculateLGD(prod.Type, terms.CollateralValue, amount)
	terms.ProbabilityOfDefault = pd
	terms.LossGivenDefault = lgd
	terms.ExposureAtDefault = amount * 0.9
	terms.ExpectedLoss = money.Round2(amount * pd * lgd)

	switch {
	case daysPastDue > 90 || pd > 0.7:
		terms.CollectionTier = 3
	case daysPastDue > 30 || pd > 0.4:
		terms.CollectionTier = 2
	default:
		terms.CollectionTier = 1
	}

	if g.rng.Probability(0.2) {
		terms.CoApplicantPresent = true
		terms.CoApplicantIncome = float64(g.rng.IntBetween(200_000, 1_000_000))
	}

	if daysPastDue > 60 {
		terms.RestructuringFlag = g.rng.Probability(0.01)
	}
	if daysPastDue > 180 {
		terms.WrittenOffFlag = g.rng.Probability(0.005)
	}
	if daysPastDue > 30 {
		terms.CollectionAgent = fmt.Sprintf("AGENT%03d", g.rng.IntBetween(1, 50))
	}

	return terms, packages
}

// sampleDaysPastDue draws the delinquency bucket from the fixed portfolio
// distribution (70% current / 12% / 8% / 5% / 5%) and a day count within it.
func (g *LoanGenerator) sampleDaysPastDue() int {
	bucket := rng.Weighted(g.rng,
		[]int{0, 1, 2, 3, 4},
		[]float64{0.70, 0.12, 0.08, 0.05, 0.05})
	switch bucket {
	case 0:
		return 0
	case 1:
		return g.rng.IntBetween(1, 30)
	case 2:
		return g.rng.IntBetween(31, 60)
	case 3:
		return g.rng.IntBetween(61, 90)
	default:
		return g.rng.IntBetween(91, 180)
	}
}

// CalculateEMI applies the standard amortizing-loan formula
// P·r·(1+r)^n / ((1+r)^n − 1) with r the monthly rate and annualRate quoted
// in percent.
func CalculateEMI(amount, annualRate float64, tenureMonths int) float64 {
	r := annualRate / 12 / 100
	if r == 0 {
		return money.Round2(amount / float64(tenureMonths))
	}
	pow := math.Pow(1+r, float64(tenureMonths))
	return money.Round2(amount * r * pow / (pow - 1))
}

// CalculatePD is a logistic stand-in centered at score 650 with a
// DPD-driven additive penalty (0.002/day, capped at +0.3), clamped to 0.99.
// Deliberately approximate; the functional shape is part of the contract.
func CalculatePD(creditScore, daysPastDue int) float64 {
	base := 1 / (1 + math.Exp(float64(creditScore-650)/50))
	penalty := 0.0
	if daysPastDue > 0 {
		penalty = math.Min(0.3, float64(daysPastDue)*0.002)
	}
	return money.Round4(math.Min(0.99, base+penalty))
}

// calculateLGD draws loss-given-default from LTV bands when collateral
// exists, otherwise from a product-family range.
func (g *LoanGenerator) calculateLGD(productType product.Type, collateralValue, amount float64) float64 {
	var lgd float64
	switch {
	case collateralValue > 0:
		ltv := amount / collateralValue
		switch {
		case ltv < 0.5:
			lgd = g.rng.Uniform(0.15, 0.30)
		case ltv < 0.7:
			lgd = g.rng.Uniform(0.30, 0.50)
		default:
			lgd = g.rng.Uniform(0.50, 0.70)
		}
	case productType == product.TypeHome:
		lgd = g.rng.Uniform(0.20, 0.40)
	case productType == product.TypeAuto:
		lgd = g.rng.Uniform(0.30, 0.50)
	default:
		lgd = g.rng.Uniform(0.60, 0.80)
	}
	return money.Round4(lgd)
}
