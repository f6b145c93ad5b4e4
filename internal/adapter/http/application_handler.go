package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/domain/application"
)

type createApplicationReq struct {
	ApplicantID  string  `json:"applicantId" validate:"required,hex32"`
	ProviderID   string  `json:"providerId" validate:"required,hex32"`
	LoanAmount   string  `json:"loanAmount" validate:"required,dec2"`
	LoanPurpose  string  `json:"loanPurpose" validate:"required"`
	LoanTerm     int     `json:"loanTerm" validate:"required,gte=1,lte=480"`
	InterestRate *string `json:"interestRate" validate:"omitempty,dec2"`
	Status       string  `json:"status" validate:"omitempty,oneof=pending under_review approved rejected"`
	Notes        *string `json:"notes"`
}

type updateApplicationReq struct {
	ApplicantID  *string `json:"applicantId" validate:"omitempty,hex32"`
	ProviderID   *string `json:"providerId" validate:"omitempty,hex32"`
	LoanAmount   *string `json:"loanAmount" validate:"omitempty,dec2"`
	LoanPurpose  *string `json:"loanPurpose" validate:"omitempty,min=1"`
	LoanTerm     *int    `json:"loanTerm" validate:"omitempty,gte=1,lte=480"`
	InterestRate *string `json:"interestRate" validate:"omitempty,dec2"`
	Status       *string `json:"status" validate:"omitempty,oneof=pending under_review approved rejected"`
	Notes        *string `json:"notes"`
}

func (h *Handler) GetLoanApplications(c echo.Context) error {
	apps, err := h.store.GetLoanApplications(c.Request().Context())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *Handler) GetLoanApplication(c echo.Context) error {
	app, err := h.store.GetLoanApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, app)
}

// CreateLoanApplication checks the referenced applicant and provider exist
// before inserting, so new applications never start out dangling.
func (h *Handler) CreateLoanApplication(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return respondInvalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}
	ctx := c.Request().Context()
	if _, err := h.store.GetApplicant(ctx, req.ApplicantID); err != nil {
		return respondStoreError(c, err)
	}
	if _, err := h.store.GetLoanProvider(ctx, req.ProviderID); err != nil {
		return respondStoreError(c, err)
	}
	app, err := h.store.CreateLoanApplication(ctx, application.CreateInput{
		ApplicantID:  req.ApplicantID,
		ProviderID:   req.ProviderID,
		LoanAmount:   parseDec(req.LoanAmount),
		LoanPurpose:  req.LoanPurpose,
		LoanTerm:     req.LoanTerm,
		InterestRate: parseDecPtr(req.InterestRate),
		Status:       application.Status(req.Status),
		Notes:        req.Notes,
	})
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusCreated, app)
}

func (h *Handler) UpdateLoanApplication(c echo.Context) error {
	var req updateApplicationReq
	if err := c.Bind(&req); err != nil {
		return respondInvalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}
	var status *application.Status
	if req.Status != nil {
		st := application.Status(*req.Status)
		status = &st
	}
	app, err := h.store.UpdateLoanApplication(c.Request().Context(), c.Param("id"), application.UpdateInput{
		ApplicantID:  req.ApplicantID,
		ProviderID:   req.ProviderID,
		LoanAmount:   parseDecPtr(req.LoanAmount),
		LoanPurpose:  req.LoanPurpose,
		LoanTerm:     req.LoanTerm,
		InterestRate: parseDecPtr(req.InterestRate),
		Status:       status,
		Notes:        req.Notes,
	})
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, app)
}

func (h *Handler) DeleteLoanApplication(c echo.Context) error {
	ok, err := h.store.DeleteLoanApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
