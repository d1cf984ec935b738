package generator

import (
	"fmt"
	"strings"
	"time"

	"creditflow360/internal/domain/collateral"
	"creditflow360/internal/domain/product"
	"creditflow360/internal/rng"
	"creditflow360/pkg/money"
)

// CollateralGenerator produces security packages for secured loan products.
type CollateralGenerator struct {
	rng  *rng.Source
	asOf time.Time
}

func NewCollateralGenerator(seed int64, asOf time.Time) *CollateralGenerator {
	return &CollateralGenerator{rng: rng.New(seed), asOf: asOf.UTC()}
}

// GeneratePackage builds one collateral package sized so that the loan sits
// at a product-typical LTV against it.
func (g *CollateralGenerator) GeneratePackage(loanAmount float64, productType product.Type, applicationDate time.Time, city string) collateral.Collateral {
	types, ok := collateralTypesByProduct[string(productType)]
	if !ok {
		types = []string{"Fixed Deposit"}
	}
	collateralType := rng.Pick(g.rng, types)

	value := g.collateralValue(loanAmount, productType, collateralType)

	ownership := "Self-owned"
	if strings.Contains(collateralType, "Property") {
		ownership = rng.Pick(g.rng, []string{"Self-owned", "Joint Ownership", "Family-owned", "Partnership"})
	}

	return collateral.Collateral{
		CollateralID: "COL" + strings.ToUpper(g.rng.Hex(10)),
		Type:         collateralType,
		Value:        value,

		ValuationDate:   applicationDate.AddDate(0, 0, -g.rng.IntBetween(7, 15)),
		ValuationAgency: rng.Pick(g.rng, valuationAgencies),
		ValuerName:      fmt.Sprintf("VLR%d", g.rng.IntBetween(100, 999)),
		ValuationReport: "VAL" + strings.ToUpper(g.rng.Hex(10)),

		LoanToValueRatio: money.Round2(loanAmount / value * 100),
		Condition:        rng.Weighted(g.rng, collateralConditions, collateralConditionWeights),

		OwnershipType:     ownership,
		OwnershipVerified: !g.rng.Probability(0.1),
		VerificationDate:  applicationDate.AddDate(0, 0, -g.rng.IntBetween(2, 5)),

		Insurance:     g.insuranceDetails(collateralType, value),
		Property:      g.propertyDetails(collateralType),
		Vehicle:       g.vehicleDetails(collateralType),
		BusinessAsset: g.businessAssetDetails(collateralType),

		IsPrimary: true,
	}
}

// GenerateMultiple returns the package set for a loan: usually one package,
// but 30% of large loans (>5,000,000) split into a 70/30 primary/secondary
// pair.
func (g *CollateralGenerator) GenerateMultiple(loanAmount float64, productType product.Type, applicationDate time.Time, city string) []collateral.Collateral {
	if loanAmount > 5_000_000 && g.rng.Probability(0.3) {
		primary := g.GeneratePackage(loanAmount*0.7, productType, applicationDate, city)
		secondary := g.GeneratePackage(loanAmount*0.3, productType, applicationDate, city)
		secondary.IsPrimary = false
		return []collateral.Collateral{primary, secondary}
	}
	return []collateral.Collateral{g.GeneratePackage(loanAmount, productType, applicationDate, city)}
}

// collateralValue derives value = loanAmount / LTV, where LTV is sampled
// from the product band and shifted by collateral-type modifiers (land
// -0.10, fixed deposit +0.15, shares -0.15), then perturbed ±5% and quoted
// to the thousand.
func (g *CollateralGenerator) collateralValue(loanAmount float64, productType product.Type, collateralType string) float64 {
	var ltv float64
	switch productType {
	case product.TypeHome:
		ltv = g.rng.Uniform(0.65, 0.80)
	case product.TypeAuto:
		ltv = g.rng.Uniform(0.75, 0.90)
	case product.TypeBusiness:
		ltv = g.rng.Uniform(0.60, 0.75)
	case product.TypeEducation:
		ltv = g.rng.Uniform(0.85, 1.0)
	default:
		ltv = 0.70
	}

	switch {
	case strings.Contains(collateralType, "Land"):
		ltv -= 0.10
	case strings.Contains(collateralType, "Fixed Deposit"):
		ltv += 0.15
	case strings.Contains(collateralType, "Shares"):
		ltv -= 0.15
	}

	value := loanAmount / ltv * g.rng.Uniform(0.95, 1.05)
	return money.RoundThousand(value)
}

func (g *CollateralGenerator) insuranceDetails(collateralType string, value float64) *collateral.Insurance {
	insurable := false
	for _, t := range insurableCollateralTypes {
		if t == collateralType {
			insurable = true
			break
		}
	}
	if !insurable {
		return nil
	}

	start := g.asOf.AddDate(0, 0, -g.rng.IntBetween(30, 90))
	return &collateral.Insurance{
		Company:       rng.Pick(g.rng, insurers),
		PolicyNumber:  "POL" + strings.ToUpper(g.rng.Hex(12)),
		AnnualPremium: money.Round2(value * g.rng.Uniform(0.005, 0.015)),
		Coverage:      value,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 365),
		IsActive:      true,
	}
}

func (g *CollateralGenerator) propertyDetails(collateralType string) *collateral.Property {
	if !strings.Contains(collateralType, "Residential") && !strings.Contains(collateralType, "Commercial") {
		return nil
	}

	totalFloors := g.rng.IntBetween(1, 5)
	floorNo := 1
	if totalFloors > 1 {
		floorNo = g.rng.IntBetween(1, totalFloors)
	}

	return &collateral.Property{
		AgeYears: rng.Weighted(g.rng,
			[]int{0, 5, 10, 15, 20, 25},
			[]float64{0.2, 0.3, 0.25, 0.15, 0.07, 0.03}),
		ConstructionType: rng.Pick(g.rng, []string{"RCC Framed", "Load Bearing", "Pre-fabricated"}),
		TotalFloors:      totalFloors,
		FloorNo:          floorNo,
		Furnishing:       rng.Pick(g.rng, []string{"Fully Furnished", "Semi-Furnished", "Unfurnished"}),
		CarpetAreaSqft:   g.rng.IntBetween(500, 2500),
		SuperAreaSqft:    g.rng.IntBetween(600, 3000),
		Bedrooms:         g.rng.IntBetween(1, 4),
		Bathrooms:        g.rng.IntBetween(1, 4),
		Parking: rng.Weighted(g.rng,
			[]string{"Covered", "Open", "None"},
			[]float64{0.4, 0.4, 0.2}),
		OwnershipType: rng.Pick(g.rng, []string{"Freehold", "Leasehold"}),
		Encumbrance:   g.rng.Probability(0.05),
	}
}

func (g *CollateralGenerator) vehicleDetails(collateralType string) *collateral.Vehicle {
	if !strings.Contains(collateralType, "Car") && !strings.Contains(collateralType, "Vehicle") {
		return nil
	}

	brand := rng.Pick(g.rng, carBrands)
	model := rng.Pick(g.rng, carModels[brand])

	currentYear := g.asOf.Year()
	manufactureYear := g.rng.IntBetween(currentYear-5, currentYear)

	state := rng.Pick(g.rng, registrationStates)
	regNo := fmt.Sprintf("%s%d%s%d",
		state,
		g.rng.IntBetween(10, 99),
		rng.Pick(g.rng, []string{"A", "B", "C", "D", "E"}),
		g.rng.IntBetween(1000, 9999))

	kms := g.rng.IntBetween(100, 5000)
	if manufactureYear < currentYear {
		kms = g.rng.IntBetween(5000, 80000)
	}

	return &collateral.Vehicle{
		Brand:             brand,
		Model:             model,
		Variant:           rng.Pick(g.rng, []string{"Base", "Mid", "Top"}),
		FuelType:          rng.Pick(g.rng, []string{"Petrol", "Diesel", "CNG", "Electric"}),
		Transmission:      rng.Pick(g.rng, []string{"Manual", "Automatic"}),
		ManufactureYear:   manufactureYear,
		RegistrationNo:    regNo,
		RegistrationState: state,
		KilometersDriven:  kms,
		Ownership:         rng.Pick(g.rng, []string{"First", "Second", "Third"}),
		InsuranceValidTo:  g.asOf.AddDate(0, 0, g.rng.IntBetween(30, 365)),
	}
}

func (g *CollateralGenerator) businessAssetDetails(collateralType string) *collateral.BusinessAsset {
	var assetTypes []string
	switch {
	case strings.Contains(collateralType, "Machinery"), strings.Contains(collateralType, "Equipment"):
		assetTypes = []string{
			"CNC Machine", "Generator", "Compressor", "Packaging Machine",
			"Textile Machinery", "Printing Press", "Medical Equipment",
		}
	case strings.Contains(collateralType, "Warehouse"):
		assetTypes = []string{"Godown", "Cold Storage", "Distribution Center"}
	case strings.Contains(collateralType, "Inventory"):
		assetTypes = []string{"Raw Material", "Finished Goods", "Spare Parts"}
	default:
		return nil
	}

	return &collateral.BusinessAsset{
		AssetType:         rng.Pick(g.rng, assetTypes),
		Make:              rng.Pick(g.rng, []string{"Indian", "German", "Japanese", "Chinese", "American"}),
		ModelNumber:       "MOD" + strings.ToUpper(g.rng.Hex(6)),
		SerialNumber:      "SER" + strings.ToUpper(g.rng.Hex(8)),
		PurchaseDate:      g.asOf.AddDate(0, 0, -g.rng.IntBetween(180, 1095)),
		PurchaseCost:      float64(g.rng.IntBetween(100_000, 5_000_000)),
		DepreciationRate:  money.Round4(g.rng.Uniform(0.10, 0.25)),
		MaintenanceStatus: rng.Pick(g.rng, []string{"Excellent", "Good", "Needs Service"}),
	}
}
