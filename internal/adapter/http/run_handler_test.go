package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"creditflow360/internal/usecase/run"
)

func newRunHandler() *RunHandler {
	return NewRunHandler(run.NewUsecase(nil, nil))
}

func postRun(t *testing.T, h *RunHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/runs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.StartRun(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestStartRun_Success(t *testing.T) {
	h := newRunHandler()

	rec := postRun(t, h, `{"seed":42,"num_customers":50,"num_loans":30,"num_transactions":200,"as_of":"2025-06-30"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var dto run.RunDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.RunID == "" || len(dto.RunID) != 32 {
		t.Fatalf("expected 32-char run id, got %q", dto.RunID)
	}
	if dto.Status != run.StatusCompleted {
		t.Fatalf("expected completed, got %q", dto.Status)
	}
	if dto.Summary == nil || dto.Summary.Customers != 50 {
		t.Fatalf("unexpected summary: %+v", dto.Summary)
	}
	if dto.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}
}

func TestStartRun_ValidationFailure(t *testing.T) {
	h := newRunHandler()

	cases := []struct {
		name string
		body string
	}{
		{"missing as_of", `{"seed":1,"num_customers":10,"num_loans":5}`},
		{"bad as_of", `{"as_of":"30-06-2025","num_customers":10,"num_loans":5}`},
		{"negative customers", `{"as_of":"2025-06-30","num_customers":-1}`},
		{"fraud rate above one", `{"as_of":"2025-06-30","target_fraud_rate":1.5}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postRun(t, h, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if resp.Error != "validation failed" {
				t.Fatalf("unexpected error: %q", resp.Error)
			}
			if len(resp.Details) == 0 {
				t.Fatal("expected field errors")
			}
		})
	}
}

func TestStartRun_WarehouseNotConfigured(t *testing.T) {
	h := newRunHandler()

	rec := postRun(t, h, `{"as_of":"2025-06-30","num_customers":10,"num_loans":5,"num_transactions":20,"load_warehouse":true}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
	}

	var dto run.RunDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Status != run.StatusFailed {
		t.Fatalf("expected failed, got %q", dto.Status)
	}
	if dto.Error == "" {
		t.Fatal("expected error message on failed run")
	}
}

func TestGetRun(t *testing.T) {
	h := newRunHandler()
	e := echo.New()

	rec := postRun(t, h, `{"as_of":"2025-06-30","num_customers":10,"num_loans":5,"num_transactions":20}`)
	var created run.RunDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/runs/"+created.RunID, nil)
	getRec := httptest.NewRecorder()
	c := e.NewContext(req, getRec)
	c.SetParamNames("run_id")
	c.SetParamValues(created.RunID)
	if err := h.GetRun(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", getRec.Code)
	}

	var got run.RunDTO
	if err := json.Unmarshal(getRec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.RunID != created.RunID || got.Status != run.StatusCompleted {
		t.Fatalf("unexpected run: %+v", got)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	h := newRunHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/runs/ffffffffffffffffffffffffffffffff", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("run_id")
	c.SetParamValues("ffffffffffffffffffffffffffffffff")
	if err := h.GetRun(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetRun_BadID(t *testing.T) {
	h := newRunHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/runs/not-hex", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("run_id")
	c.SetParamValues("not-hex")
	if err := h.GetRun(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	h := newRunHandler()
	e := echo.New()

	postRun(t, h, `{"seed":1,"as_of":"2025-06-30","num_customers":10,"num_loans":5,"num_transactions":20}`)
	postRun(t, h, `{"seed":2,"as_of":"2025-06-30","num_customers":10,"num_loans":5,"num_transactions":20}`)

	req := httptest.NewRequest(http.MethodGet, "/v1/runs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListRuns(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var runs []run.RunDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &runs); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].StartedAt.Before(runs[1].StartedAt) {
		t.Fatal("expected newest run first")
	}
}
