package collateral

import "time"

// Collateral is one security package pledged against a loan. Type-specific
// sub-records are nil unless the collateral type matches their category.
type Collateral struct {
	CollateralID string  `json:"collateral_id"`
	LoanID       string  `json:"loan_id"`
	Type         string  `json:"collateral_type"`
	Value        float64 `json:"collateral_value"`

	ValuationDate   time.Time `json:"valuation_date"`
	ValuationAgency string    `json:"valuation_agency"`
	ValuerName      string    `json:"valuer_name"`
	ValuationReport string    `json:"valuation_report_number"`

	LoanToValueRatio float64 `json:"loan_to_value_ratio"`
	Condition        string  `json:"condition"`

	OwnershipType     string    `json:"ownership_type"`
	OwnershipVerified bool      `json:"ownership_verified"`
	VerificationDate  time.Time `json:"verification_date"`

	Insurance     *Insurance     `json:"insurance_details,omitempty"`
	Property      *Property      `json:"property_details,omitempty"`
	Vehicle       *Vehicle       `json:"vehicle_details,omitempty"`
	BusinessAsset *BusinessAsset `json:"business_asset_details,omitempty"`

	IsPrimary bool `json:"is_primary_collateral"`
}

type Insurance struct {
	Company       string    `json:"insurance_company"`
	PolicyNumber  string    `json:"policy_number"`
	AnnualPremium float64   `json:"annual_premium"`
	Coverage      float64   `json:"coverage_amount"`
	StartDate     time.Time `json:"policy_start_date"`
	EndDate       time.Time `json:"policy_end_date"`
	IsActive      bool      `json:"is_active"`
}

type Property struct {
	AgeYears         int    `json:"property_age_years"`
	ConstructionType string `json:"construction_type"`
	TotalFloors      int    `json:"total_floors"`
	FloorNo          int    `json:"floor_no"`
	Furnishing       string `json:"furnishing_status"`
	CarpetAreaSqft   int    `json:"carpet_area_sqft"`
	SuperAreaSqft    int    `json:"super_area_sqft"`
	Bedrooms         int    `json:"bedrooms"`
	Bathrooms        int    `json:"bathrooms"`
	Parking          string `json:"parking"`
	OwnershipType    string `json:"ownership_type"`
	Encumbrance      bool   `json:"encumbrance"`
}

type Vehicle struct {
	Brand             string    `json:"brand"`
	Model             string    `json:"model"`
	Variant           string    `json:"variant"`
	FuelType          string    `json:"fuel_type"`
	Transmission      string    `json:"transmission"`
	ManufactureYear   int       `json:"manufacture_year"`
	RegistrationNo    string    `json:"registration_number"`
	RegistrationState string    `json:"registration_state"`
	KilometersDriven  int       `json:"kilometers_driven"`
	Ownership         string    `json:"ownership"`
	InsuranceValidTo  time.Time `json:"insurance_valid_till"`
}

type BusinessAsset struct {
	AssetType         string    `json:"asset_type"`
	Make              string    `json:"make"`
	ModelNumber       string    `json:"model_number"`
	SerialNumber      string    `json:"serial_number"`
	PurchaseDate      time.Time `json:"purchase_date"`
	PurchaseCost      float64   `json:"purchase_cost"`
	DepreciationRate  float64   `json:"depreciation_rate"`
	MaintenanceStatus string    `json:"maintenance_status"`
}
