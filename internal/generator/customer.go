package generator

import (
	"fmt"
	"strings"
	"time"

	"creditflow360/internal/domain/customer"
	"creditflow360/internal/rng"
	"creditflow360/pkg/money"
)

// CustomerGenerator produces the synthetic customer population. All sampled
// attributes are internally consistent: income is conditioned on employment
// type and age, and the credit score on age, income and employment.
type CustomerGenerator struct {
	rng  *rng.Source
	asOf time.Time
}

func NewCustomerGenerator(seed int64, asOf time.Time) *CustomerGenerator {
	return &CustomerGenerator{rng: rng.New(seed), asOf: asOf.UTC()}
}

// Generate returns n customers, deterministic for a fixed seed and asOf.
func (g *CustomerGenerator) Generate(n int) []customer.Customer {
	out := make([]customer.Customer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.generateOne(i+1))
	}
	return out
}

func (g *CustomerGenerator) generateOne(seq int) customer.Customer {
	age := g.rng.IntBetween(22, 70)
	gender := rng.Weighted(g.rng, []string{"Male", "Female", "Other"}, []float64{0.48, 0.48, 0.04})
	marital := rng.Weighted(g.rng,
		[]string{"Single", "Married", "Divorced", "Widowed"},
		[]float64{0.35, 0.55, 0.07, 0.03})

	region := rng.Pick(g.rng, indianStates)
	city := rng.Pick(g.rng, region.Cities)

	employment := customer.EmploymentType(rng.Weighted(g.rng, employmentTypes, employmentWeights))
	education := rng.Weighted(g.rng, educationLevels, educationWeights)

	income := g.generateIncome(age, employment)
	score := g.generateCreditScore(age, income, employment)

	acquired := g.rng.DateBetween(g.asOf.AddDate(-3, 0, 0), g.asOf)
	dob := g.asOf.AddDate(0, 0, -age*365)

	first := rng.Pick(g.rng, firstNames)
	last := rng.Pick(g.rng, lastNames)

	addr1 := fmt.Sprintf("%d, %s", g.rng.IntBetween(1, 999), rng.Pick(g.rng, streetNames))
	addr2 := ""
	if g.rng.Probability(0.5) {
		addr2 = fmt.Sprintf("%d, %s", g.rng.IntBetween(1, 99), rng.Pick(g.rng, streetNames))
	}

	return customer.Customer{
		CustomerID:    fmt.Sprintf("CUST%08d", seq),
		FirstName:     first,
		LastName:      last,
		DateOfBirth:   dob,
		Age:           age,
		Gender:        gender,
		MaritalStatus: marital,
		Education:     education,
		Employment:    employment,
		AnnualIncome:  income,
		IncomeTier:    customer.TierForIncome(income),
		CreditScore:   score,
		CreditTier:    customer.TierForScore(score),

		City:         city,
		State:        region.State,
		Pincode:      fmt.Sprintf("%d", g.rng.IntBetween(100000, 999999)),
		AddressLine1: addr1,
		AddressLine2: addr2,
		Phone:        "9" + g.rng.Digits(9),
		Email:        g.generateEmail(first, last, seq, employment),

		Segment:            rng.Pick(g.rng, customerSegments),
		ValueTier:          customer.ValueTierFor(income, score),
		AcquisitionDate:    acquired,
		AcquisitionChannel: rng.Pick(g.rng, acquisitionChannels),
		IsActive:           !g.rng.Probability(0.05),

		EffectiveStartDate: acquired,
		EffectiveEndDate:   nil,
		IsCurrent:          true,
	}
}

// generateIncome samples annual income from the employment-type- and
// age-bracketed bands, perturbs it ±10%, and quotes it to the thousand.
func (g *CustomerGenerator) generateIncome(age int, employment customer.EmploymentType) float64 {
	var base float64
	switch employment {
	case customer.EmploymentSalaried:
		switch {
		case age < 25:
			base = g.rng.Uniform(250_000, 400_000)
		case age < 35:
			base = g.rng.Uniform(400_000, 800_000)
		case age < 50:
			base = g.rng.Uniform(800_000, 1_500_000)
		default:
			base = g.rng.Uniform(600_000, 1_200_000)
		}
	case customer.EmploymentSelfEmployed:
		switch {
		case age < 35:
			base = g.rng.Uniform(500_000, 1_000_000)
		case age < 50:
			base = g.rng.Uniform(1_000_000, 2_500_000)
		default:
			base = g.rng.Uniform(800_000, 2_000_000)
		}
	case customer.EmploymentBusiness:
		switch {
		case age < 35:
			base = g.rng.Uniform(600_000, 1_500_000)
		case age < 50:
			base = g.rng.Uniform(1_500_000, 5_000_000)
		default:
			base = g.rng.Uniform(1_000_000, 3_000_000)
		}
	case customer.EmploymentGovernment:
		base = g.rng.Uniform(400_000, 1_200_000)
	case customer.EmploymentRetired:
		base = g.rng.Uniform(300_000, 800_000)
	default:
		base = g.rng.Uniform(200_000, 500_000)
	}
	return money.RoundThousand(base * g.rng.Uniform(0.9, 1.1))
}

// generateCreditScore draws a base score and applies the fixed age, income
// and employment bonuses, clamped to the bureau range [300,900]. The clamp
// is documented policy, not an error path.
func (g *CustomerGenerator) generateCreditScore(age int, income float64, employment customer.EmploymentType) int {
	score := g.rng.IntBetween(600, 750)

	if age > 35 {
		score += 25
	}
	if age > 50 {
		score += 25
	}

	if income > 1_000_000 {
		score += 30
	}
	if income > 2_500_000 {
		score += 30
	}
	if income > 5_000_000 {
		score += 40
	}

	switch employment {
	case customer.EmploymentGovernment, customer.EmploymentSalaried:
		score += 30
	case customer.EmploymentSelfEmployed:
		score += 20
	case customer.EmploymentBusiness:
		score += 10
	}

	score += g.rng.IntBetween(-50, 50)

	if score < 300 {
		score = 300
	}
	if score > 900 {
		score = 900
	}
	return score
}

func (g *CustomerGenerator) generateEmail(first, last string, seq int, employment customer.EmploymentType) string {
	var domain string
	switch employment {
	case customer.EmploymentGovernment:
		domain = "gov.in"
	case customer.EmploymentBusiness:
		domain = rng.Pick(g.rng, businessEmailDomains)
	default:
		domain = rng.Pick(g.rng, personalEmailDomains)
	}
	return fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), seq, domain)
}
