package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/domain/storage"
)

// Handler exposes the storage facade as the REST surface. It owns no state
// beyond the store; validation happens here so the store only ever sees
// well-formed input.
type Handler struct{ store storage.Storage }

func NewHandler(store storage.Storage) *Handler { return &Handler{store: store} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handler) GetAuditLogs(c echo.Context) error {
	logs, err := h.store.GetAuditLogs(c.Request().Context())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *Handler) GetDashboardStats(c echo.Context) error {
	stats, err := h.store.GetDashboardStats(c.Request().Context())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// RegisterRoutes wires the REST surface onto e.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)

	e.GET("/api/loan-providers", h.GetLoanProviders)
	e.GET("/api/loan-providers/:id", h.GetLoanProvider)
	e.POST("/api/loan-providers", h.CreateLoanProvider)
	e.PUT("/api/loan-providers/:id", h.UpdateLoanProvider)
	e.DELETE("/api/loan-providers/:id", h.DeleteLoanProvider)

	e.GET("/api/applicants", h.GetApplicants)
	e.GET("/api/applicants/:id", h.GetApplicant)
	e.POST("/api/applicants", h.CreateApplicant)
	e.PUT("/api/applicants/:id", h.UpdateApplicant)
	e.DELETE("/api/applicants/:id", h.DeleteApplicant)

	e.GET("/api/loan-applications", h.GetLoanApplications)
	e.GET("/api/loan-applications/:id", h.GetLoanApplication)
	e.POST("/api/loan-applications", h.CreateLoanApplication)
	e.PUT("/api/loan-applications/:id", h.UpdateLoanApplication)
	e.DELETE("/api/loan-applications/:id", h.DeleteLoanApplication)

	e.GET("/api/audit-logs", h.GetAuditLogs)
	e.GET("/api/dashboard/stats", h.GetDashboardStats)
}
