package generator

import (
	"strings"
	"testing"

	"creditflow360/internal/domain/product"
)

func TestCollateralGenerator_Package(t *testing.T) {
	g := NewCollateralGenerator(42, testAsOf)
	appDate := testAsOf.AddDate(0, -6, 0)

	for i := 0; i < 100; i++ {
		pkg := g.GeneratePackage(3_000_000, product.TypeHome, appDate, "Mumbai")

		if !strings.HasPrefix(pkg.CollateralID, "COL") || len(pkg.CollateralID) != 13 {
			t.Fatalf("collateral ID %q", pkg.CollateralID)
		}
		if pkg.Value <= 0 {
			t.Fatalf("value %v", pkg.Value)
		}
		// Home LTV band 0.65-0.80 with type modifiers and ±5% noise still
		// leaves the value well above the loan amount.
		if pkg.Value < 3_000_000 {
			t.Fatalf("value %v below loan amount", pkg.Value)
		}
		if pkg.LoanToValueRatio <= 0 || pkg.LoanToValueRatio > 100 {
			t.Fatalf("LTV %v", pkg.LoanToValueRatio)
		}
		if !pkg.ValuationDate.Before(appDate) {
			t.Fatalf("valuation %v not before application %v", pkg.ValuationDate, appDate)
		}
		if !pkg.IsPrimary {
			t.Fatal("single package not primary")
		}

		if strings.Contains(pkg.Type, "Residential") || strings.Contains(pkg.Type, "Commercial") {
			if pkg.Property == nil {
				t.Fatalf("%s package without property details", pkg.Type)
			}
		} else if pkg.Property != nil {
			t.Fatalf("%s package with property details", pkg.Type)
		}
	}
}

func TestCollateralGenerator_MultipleSplit(t *testing.T) {
	g := NewCollateralGenerator(42, testAsOf)
	appDate := testAsOf.AddDate(0, -3, 0)

	sawSplit := false
	for i := 0; i < 200; i++ {
		pkgs := g.GenerateMultiple(8_000_000, product.TypeBusiness, appDate, "Pune")
		switch len(pkgs) {
		case 1:
			if !pkgs[0].IsPrimary {
				t.Fatal("single package not primary")
			}
		case 2:
			sawSplit = true
			if !pkgs[0].IsPrimary || pkgs[1].IsPrimary {
				t.Fatal("split package primary flags wrong")
			}
			if pkgs[0].Value <= pkgs[1].Value {
				t.Fatalf("primary %v not larger than secondary %v", pkgs[0].Value, pkgs[1].Value)
			}
		default:
			t.Fatalf("%d packages", len(pkgs))
		}
	}
	if !sawSplit {
		t.Fatal("large loans never split across 200 draws")
	}

	// Small loans never split.
	for i := 0; i < 50; i++ {
		if pkgs := g.GenerateMultiple(500_000, product.TypeAuto, appDate, "Pune"); len(pkgs) != 1 {
			t.Fatalf("small loan split into %d packages", len(pkgs))
		}
	}
}
