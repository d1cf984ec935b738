package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"creditflow360/internal/usecase/run"
)

type RunHandler struct {
	uc *run.Usecase
	cv *CustomValidator
}

func NewRunHandler(uc *run.Usecase) *RunHandler {
	return &RunHandler{uc: uc, cv: NewValidator()}
}

// StartRun kicks off a generation run and blocks until it finishes; the
// response carries the run summary or the failure.
func (h *RunHandler) StartRun(c echo.Context) error {
	var req run.StartInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.cv.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Start(c.Request().Context(), req)
	if err != nil {
		if dto != nil {
			// The run was registered before failing; report it with its ID
			// so the client can still fetch it.
			return c.JSON(http.StatusInternalServerError, dto)
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RunHandler) GetRun(c echo.Context) error {
	runID := c.Param("run_id")
	if !reHex32.MatchString(runID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "run_id must be 32-char lowercase hex"})
	}
	dto := h.uc.Get(runID)
	if dto == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "run not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RunHandler) ListRuns(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.List())
}
