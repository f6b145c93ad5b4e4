package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/domain/applicant"
)

type createApplicantReq struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	Address          string `json:"address" validate:"required"`
	DateOfBirth      string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	SSN              string `json:"ssn" validate:"required"`
	EmploymentStatus string `json:"employmentStatus" validate:"required,oneof=employed unemployed self-employed retired"`
	AnnualIncome     string `json:"annualIncome" validate:"required,dec2"`
	CreditScore      *int   `json:"creditScore" validate:"omitempty,gte=300,lte=850"`
}

type updateApplicantReq struct {
	FirstName        *string `json:"firstName" validate:"omitempty,min=1"`
	LastName         *string `json:"lastName" validate:"omitempty,min=1"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            *string `json:"phone" validate:"omitempty,min=1"`
	Address          *string `json:"address" validate:"omitempty,min=1"`
	DateOfBirth      *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	SSN              *string `json:"ssn" validate:"omitempty,min=4"`
	EmploymentStatus *string `json:"employmentStatus" validate:"omitempty,oneof=employed unemployed self-employed retired"`
	AnnualIncome     *string `json:"annualIncome" validate:"omitempty,dec2"`
	CreditScore      *int    `json:"creditScore" validate:"omitempty,gte=300,lte=850"`
}

func (h *Handler) GetApplicants(c echo.Context) error {
	applicants, err := h.store.GetApplicants(c.Request().Context())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, applicants)
}

func (h *Handler) GetApplicant(c echo.Context) error {
	a, err := h.store.GetApplicant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) CreateApplicant(c echo.Context) error {
	var req createApplicantReq
	if err := c.Bind(&req); err != nil {
		return respondInvalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}
	a, err := h.store.CreateApplicant(c.Request().Context(), applicant.CreateInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		DateOfBirth:      req.DateOfBirth,
		SSN:              req.SSN,
		EmploymentStatus: applicant.EmploymentStatus(req.EmploymentStatus),
		AnnualIncome:     parseDec(req.AnnualIncome),
		CreditScore:      req.CreditScore,
	})
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateApplicant(c echo.Context) error {
	var req updateApplicantReq
	if err := c.Bind(&req); err != nil {
		return respondInvalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}
	var employment *applicant.EmploymentStatus
	if req.EmploymentStatus != nil {
		es := applicant.EmploymentStatus(*req.EmploymentStatus)
		employment = &es
	}
	a, err := h.store.UpdateApplicant(c.Request().Context(), c.Param("id"), applicant.UpdateInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		DateOfBirth:      req.DateOfBirth,
		SSN:              req.SSN,
		EmploymentStatus: employment,
		AnnualIncome:     parseDecPtr(req.AnnualIncome),
		CreditScore:      req.CreditScore,
	})
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteApplicant(c echo.Context) error {
	ok, err := h.store.DeleteApplicant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
