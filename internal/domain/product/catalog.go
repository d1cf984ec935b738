// Package product holds the static loan product catalog. The catalog is
// reference data: the loan generator reads it, nothing writes it.
package product

import "fmt"

type Type string

const (
	TypeHome      Type = "Home Loan"
	TypeAuto      Type = "Auto Loan"
	TypePersonal  Type = "Personal Loan"
	TypeBusiness  Type = "Business Loan"
	TypeEducation Type = "Education Loan"
)

type Product struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"product_name"`
	Type       Type    `json:"type"`
	MinRate    float64 `json:"min_rate"`
	MaxRate    float64 `json:"max_rate"`
	MinAmount  float64 `json:"min_amount"`
	MaxAmount  float64 `json:"max_amount"`
	MinTenure  int     `json:"min_tenure"`
	MaxTenure  int     `json:"max_tenure"`
	Collateral bool    `json:"collateral_required"`
}

type Catalog struct {
	products []Product
	byID     map[string]Product
}

// NewCatalog validates the entries and builds the ID index. A malformed
// entry is a configuration error and aborts the run.
func NewCatalog(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("product catalog: no products configured")
	}
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		switch {
		case p.ProductID == "":
			return nil, fmt.Errorf("product catalog: entry %q has no product_id", p.Name)
		case p.MinRate <= 0 || p.MaxRate < p.MinRate:
			return nil, fmt.Errorf("product catalog: %s has invalid rate band [%v,%v]", p.ProductID, p.MinRate, p.MaxRate)
		case p.MinAmount <= 0 || p.MaxAmount < p.MinAmount:
			return nil, fmt.Errorf("product catalog: %s has invalid amount band [%v,%v]", p.ProductID, p.MinAmount, p.MaxAmount)
		case p.MinTenure <= 0 || p.MaxTenure < p.MinTenure:
			return nil, fmt.Errorf("product catalog: %s has invalid tenure band [%d,%d]", p.ProductID, p.MinTenure, p.MaxTenure)
		}
		if _, dup := byID[p.ProductID]; dup {
			return nil, fmt.Errorf("product catalog: duplicate product_id %s", p.ProductID)
		}
		byID[p.ProductID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// Default returns the standard CreditFlow360 catalog.
func Default() *Catalog {
	c, err := NewCatalog(defaultProducts)
	if err != nil {
		// The built-in table is validated by tests; reaching this is a bug.
		panic(err)
	}
	return c
}

func (c *Catalog) Products() []Product { return c.products }

func (c *Catalog) ByID(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("product catalog: unknown product_id %s", id)
	}
	return p, nil
}

// Filter returns products matching pred, or all products when none match:
// the loan generator's sampling bias must never leave it with an empty pool.
func (c *Catalog) Filter(pred func(Product) bool) []Product {
	var out []Product
	for _, p := range c.products {
		if pred(p) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return c.products
	}
	return out
}

var defaultProducts = []Product{
	{ProductID: "HL001", Name: "Home Loan Prime", Type: TypeHome, MinRate: 8.5, MaxRate: 10.5, MinAmount: 1_000_000, MaxAmount: 10_000_000, MinTenure: 60, MaxTenure: 240, Collateral: true},
	{ProductID: "HL002", Name: "Home Loan Premium", Type: TypeHome, MinRate: 8.0, MaxRate: 9.5, MinAmount: 2_000_000, MaxAmount: 20_000_000, MinTenure: 60, MaxTenure: 300, Collateral: true},
	{ProductID: "HL003", Name: "Home Loan Plus", Type: TypeHome, MinRate: 8.75, MaxRate: 11.0, MinAmount: 500_000, MaxAmount: 5_000_000, MinTenure: 36, MaxTenure: 180, Collateral: true},

	{ProductID: "AL001", Name: "New Car Loan", Type: TypeAuto, MinRate: 9.5, MaxRate: 12.0, MinAmount: 200_000, MaxAmount: 3_000_000, MinTenure: 12, MaxTenure: 84, Collateral: true},
	{ProductID: "AL002", Name: "Used Car Loan", Type: TypeAuto, MinRate: 11.0, MaxRate: 14.0, MinAmount: 100_000, MaxAmount: 2_000_000, MinTenure: 12, MaxTenure: 60, Collateral: true},

	{ProductID: "PL001", Name: "Personal Loan Standard", Type: TypePersonal, MinRate: 11.0, MaxRate: 16.0, MinAmount: 50_000, MaxAmount: 1_500_000, MinTenure: 6, MaxTenure: 60, Collateral: false},
	{ProductID: "PL002", Name: "Personal Loan Premium", Type: TypePersonal, MinRate: 10.5, MaxRate: 14.0, MinAmount: 100_000, MaxAmount: 2_500_000, MinTenure: 12, MaxTenure: 72, Collateral: false},

	{ProductID: "BL001", Name: "Business Term Loan", Type: TypeBusiness, MinRate: 10.0, MaxRate: 14.0, MinAmount: 500_000, MaxAmount: 50_000_000, MinTenure: 12, MaxTenure: 120, Collateral: true},
	{ProductID: "BL002", Name: "Working Capital Loan", Type: TypeBusiness, MinRate: 11.0, MaxRate: 15.0, MinAmount: 100_000, MaxAmount: 20_000_000, MinTenure: 6, MaxTenure: 60, Collateral: true},

	{ProductID: "EL001", Name: "Education Loan Domestic", Type: TypeEducation, MinRate: 8.0, MaxRate: 11.0, MinAmount: 100_000, MaxAmount: 5_000_000, MinTenure: 12, MaxTenure: 120, Collateral: false},
	{ProductID: "EL002", Name: "Education Loan International", Type: TypeEducation, MinRate: 8.5, MaxRate: 12.0, MinAmount: 500_000, MaxAmount: 20_000_000, MinTenure: 12, MaxTenure: 180, Collateral: true},
}
