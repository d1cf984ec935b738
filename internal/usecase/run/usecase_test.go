package run

import (
	"context"
	"errors"
	"testing"
	"time"

	"creditflow360/internal/domain/product"
	"creditflow360/internal/generator"
)

// ----- test doubles -----

// mockWarehouse implements Warehouse with function fields.
type mockWarehouse struct {
	MigrateFn func() error
	LoadAllFn func(ctx context.Context, ds *generator.Dataset, catalog *product.Catalog) error
}

func (m *mockWarehouse) Migrate() error {
	if m.MigrateFn != nil {
		return m.MigrateFn()
	}
	return nil
}

func (m *mockWarehouse) LoadAll(ctx context.Context, ds *generator.Dataset, catalog *product.Catalog) error {
	if m.LoadAllFn != nil {
		return m.LoadAllFn(ctx, ds, catalog)
	}
	return nil
}

// mockExporter implements Exporter with function fields.
type mockExporter struct {
	ExportFn func(ds *generator.Dataset, runID string) ([]string, error)
}

func (m *mockExporter) Export(ds *generator.Dataset, runID string) ([]string, error) {
	if m.ExportFn != nil {
		return m.ExportFn(ds, runID)
	}
	return nil, nil
}

func smallInput() StartInput {
	return StartInput{
		Seed:            42,
		NumCustomers:    30,
		NumLoans:        20,
		NumTransactions: 100,
		AsOf:            "2025-06-30",
	}
}

// ----- tests -----

func TestStart_CompletesAndRegisters(t *testing.T) {
	uc := NewUsecase(nil, nil)

	dto, err := uc.Start(context.Background(), smallInput())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if dto.Status != StatusCompleted {
		t.Fatalf("status = %q, want completed", dto.Status)
	}
	if dto.RunID == "" || dto.CompletedAt == nil || dto.Summary == nil {
		t.Fatalf("incomplete dto: %+v", dto)
	}
	if dto.Summary.Customers != 30 || dto.Summary.Loans != 20 {
		t.Fatalf("summary mismatch: %+v", dto.Summary)
	}
	if dto.Summary.ApprovedLoans+dto.Summary.RejectedLoans != dto.Summary.Loans {
		t.Fatalf("approved+rejected != loans: %+v", dto.Summary)
	}
	if dto.QualityScore <= 0 || dto.QualityScore > 1 {
		t.Fatalf("quality score out of range: %v", dto.QualityScore)
	}

	got := uc.Get(dto.RunID)
	if got == nil || got.Status != StatusCompleted {
		t.Fatalf("Get after Start: %+v", got)
	}
}

func TestStart_InvalidAsOf(t *testing.T) {
	uc := NewUsecase(nil, nil)

	in := smallInput()
	in.AsOf = "30-06-2025"
	if _, err := uc.Start(context.Background(), in); err == nil {
		t.Fatal("expected error for bad as_of")
	}
	if runs := uc.List(); len(runs) != 0 {
		t.Fatalf("no run should be registered, got %d", len(runs))
	}
}

func TestStart_LoadsWarehouse(t *testing.T) {
	var migrated bool
	var loaded *generator.Dataset
	wh := &mockWarehouse{
		MigrateFn: func() error { migrated = true; return nil },
		LoadAllFn: func(ctx context.Context, ds *generator.Dataset, catalog *product.Catalog) error {
			loaded = ds
			if catalog == nil {
				t.Error("nil catalog passed to LoadAll")
			}
			return nil
		},
	}
	uc := NewUsecase(wh, nil)

	in := smallInput()
	in.LoadWarehouse = true
	dto, err := uc.Start(context.Background(), in)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !migrated {
		t.Fatal("Migrate was not called")
	}
	if loaded == nil || len(loaded.Customers) != 30 {
		t.Fatalf("LoadAll got wrong dataset: %+v", loaded)
	}
	if !dto.Warehoused {
		t.Fatal("dto.Warehoused should be true")
	}
}

func TestStart_WarehouseFailureMarksRunFailed(t *testing.T) {
	wh := &mockWarehouse{
		LoadAllFn: func(ctx context.Context, ds *generator.Dataset, catalog *product.Catalog) error {
			return errors.New("mysql down")
		},
	}
	uc := NewUsecase(wh, nil)

	in := smallInput()
	in.LoadWarehouse = true
	dto, err := uc.Start(context.Background(), in)
	if err == nil {
		t.Fatal("expected error")
	}
	if dto == nil || dto.Status != StatusFailed {
		t.Fatalf("expected failed run, got %+v", dto)
	}
	if dto.Error == "" {
		t.Fatal("failed run should carry an error message")
	}
	// the failed run is still queryable
	if got := uc.Get(dto.RunID); got == nil || got.Status != StatusFailed {
		t.Fatalf("Get after failure: %+v", got)
	}
}

func TestStart_WarehouseRequestedButMissing(t *testing.T) {
	uc := NewUsecase(nil, nil)

	in := smallInput()
	in.LoadWarehouse = true
	dto, err := uc.Start(context.Background(), in)
	if err == nil {
		t.Fatal("expected error")
	}
	if dto == nil || dto.Status != StatusFailed {
		t.Fatalf("expected failed run, got %+v", dto)
	}
}

func TestStart_Exports(t *testing.T) {
	exp := &mockExporter{
		ExportFn: func(ds *generator.Dataset, runID string) ([]string, error) {
			return []string{"a.csv", "b.csv"}, nil
		},
	}
	uc := NewUsecase(nil, exp)

	in := smallInput()
	in.Export = true
	dto, err := uc.Start(context.Background(), in)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(dto.ExportFiles) != 2 {
		t.Fatalf("export files = %v", dto.ExportFiles)
	}
}

func TestList_NewestFirst(t *testing.T) {
	uc := NewUsecase(nil, nil)

	in := smallInput()
	if _, err := uc.Start(context.Background(), in); err != nil {
		t.Fatalf("Start 1: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	in.Seed = 43
	if _, err := uc.Start(context.Background(), in); err != nil {
		t.Fatalf("Start 2: %v", err)
	}

	runs := uc.List()
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].StartedAt.Before(runs[1].StartedAt) {
		t.Fatal("expected newest first")
	}
	if runs[0].Seed != 43 {
		t.Fatalf("newest run seed = %d, want 43", runs[0].Seed)
	}
}

// Readers hit Get/List while runs execute; meaningful under -race.
func TestConcurrentStartAndRead(t *testing.T) {
	uc := NewUsecase(nil, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		in := StartInput{
			NumCustomers:    10,
			NumLoans:        5,
			NumTransactions: 20,
			AsOf:            "2025-06-30",
		}
		for i := 0; i < 5; i++ {
			in.Seed = int64(i)
			if _, err := uc.Start(context.Background(), in); err != nil {
				t.Errorf("Start: %v", err)
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			if runs := uc.List(); len(runs) != 5 {
				t.Fatalf("expected 5 runs, got %d", len(runs))
			}
			return
		default:
			for _, r := range uc.List() {
				_ = r.Status
				if r.Summary != nil {
					_ = r.Summary.Customers
				}
				if got := uc.Get(r.RunID); got != nil {
					_ = got.QualityScore
				}
			}
		}
	}
}

func TestGet_UnknownReturnsNil(t *testing.T) {
	uc := NewUsecase(nil, nil)
	if got := uc.Get("ffffffffffffffffffffffffffffffff"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
