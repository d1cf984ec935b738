package run

import (
	"context"
	"fmt"
	"sync"
	"time"

	"creditflow360/internal/domain/product"
	"creditflow360/internal/generator"
	"creditflow360/pkg/id"
)

// Warehouse loads a dataset into the star schema. Nil disables loading.
type Warehouse interface {
	Migrate() error
	LoadAll(ctx context.Context, ds *generator.Dataset, catalog *product.Catalog) error
}

// Exporter writes a dataset to flat files and returns the written paths.
// Nil disables export.
type Exporter interface {
	Export(ds *generator.Dataset, runID string) ([]string, error)
}

type Usecase struct {
	warehouse Warehouse
	exporter  Exporter

	mu   sync.RWMutex
	runs map[string]*RunDTO
}

func NewUsecase(w Warehouse, e Exporter) *Usecase {
	return &Usecase{warehouse: w, exporter: e, runs: make(map[string]*RunDTO)}
}

// Start executes a full generation run synchronously and registers its
// outcome. The run stays queryable by ID for the lifetime of the process.
func (u *Usecase) Start(ctx context.Context, in StartInput) (*RunDTO, error) {
	asOf, err := time.Parse("2006-01-02", in.AsOf)
	if err != nil {
		return nil, fmt.Errorf("invalid as_of %q: %w", in.AsOf, err)
	}

	cfg := generator.Config{
		Seed:            in.Seed,
		NumCustomers:    in.NumCustomers,
		NumLoans:        in.NumLoans,
		NumTransactions: in.NumTransactions,
		TargetFraudRate: in.TargetFraudRate,
		AsOf:            asOf.UTC(),
	}
	eng, err := generator.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	dto := &RunDTO{
		RunID:     id.NewID32(),
		Status:    StatusRunning,
		Seed:      cfg.Seed,
		AsOf:      cfg.AsOf,
		StartedAt: time.Now().UTC(),
	}
	u.put(dto)

	ds, err := eng.GenerateAll()
	if err != nil {
		return u.fail(dto, err), err
	}

	if in.LoadWarehouse {
		if u.warehouse == nil {
			err := fmt.Errorf("warehouse load requested but no warehouse configured")
			return u.fail(dto, err), err
		}
		if err := u.warehouse.Migrate(); err != nil {
			err = fmt.Errorf("migrating warehouse: %w", err)
			return u.fail(dto, err), err
		}
		if err := u.warehouse.LoadAll(ctx, ds, product.Default()); err != nil {
			err = fmt.Errorf("loading warehouse: %w", err)
			return u.fail(dto, err), err
		}
		dto.Warehoused = true
	}

	if in.Export {
		if u.exporter == nil {
			err := fmt.Errorf("export requested but no exporter configured")
			return u.fail(dto, err), err
		}
		files, err := u.exporter.Export(ds, dto.RunID)
		if err != nil {
			err = fmt.Errorf("exporting dataset: %w", err)
			return u.fail(dto, err), err
		}
		dto.ExportFiles = files
	}

	dto.Summary = summarize(ds)
	dto.QualityScore = ds.Quality.OverallScore
	dto.Status = StatusCompleted
	done := time.Now().UTC()
	dto.CompletedAt = &done
	u.put(dto)
	return snapshot(dto), nil
}

// Get returns the registered run or nil when unknown.
func (u *Usecase) Get(runID string) *RunDTO {
	u.mu.RLock()
	defer u.mu.RUnlock()
	dto, ok := u.runs[runID]
	if !ok {
		return nil
	}
	return snapshot(dto)
}

// List returns every registered run, newest first.
func (u *Usecase) List() []*RunDTO {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]*RunDTO, 0, len(u.runs))
	for _, dto := range u.runs {
		out = append(out, snapshot(dto))
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].StartedAt.After(out[i].StartedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// put stores an immutable snapshot; Start keeps mutating its own dto after
// registration, so the map must never share that struct with readers.
func (u *Usecase) put(dto *RunDTO) {
	cp := snapshot(dto)
	u.mu.Lock()
	u.runs[cp.RunID] = cp
	u.mu.Unlock()
}

func (u *Usecase) fail(dto *RunDTO, err error) *RunDTO {
	dto.Status = StatusFailed
	dto.Error = err.Error()
	done := time.Now().UTC()
	dto.CompletedAt = &done
	u.put(dto)
	return snapshot(dto)
}

func summarize(ds *generator.Dataset) *Summary {
	s := &Summary{
		Customers:    len(ds.Customers),
		Loans:        len(ds.Loans),
		Collateral:   len(ds.Collateral),
		Transactions: len(ds.Transactions),
		FraudAlerts:  len(ds.FraudAlerts),
	}
	s.ApprovedLoans = ds.Quality.Summary.ApprovedLoans
	s.RejectedLoans = ds.Quality.Summary.RejectedLoans
	s.NPALoans = ds.Quality.Summary.NPALoans
	s.FraudLoans = ds.Quality.Summary.FraudLoans
	return s
}

func snapshot(dto *RunDTO) *RunDTO {
	cp := *dto
	return &cp
}
