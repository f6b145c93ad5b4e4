package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/domain/provider"
)

type createProviderReq struct {
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required"`
	Address         string  `json:"address" validate:"required"`
	Website         *string `json:"website" validate:"omitempty,url"`
	LicenseNumber   string  `json:"licenseNumber" validate:"required"`
	Status          string  `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	InterestRateMin string  `json:"interestRateMin" validate:"required,dec2"`
	InterestRateMax string  `json:"interestRateMax" validate:"required,dec2"`
	MaxLoanAmount   string  `json:"maxLoanAmount" validate:"required,dec2"`
}

type updateProviderReq struct {
	Name            *string `json:"name" validate:"omitempty,min=1"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone" validate:"omitempty,min=1"`
	Address         *string `json:"address" validate:"omitempty,min=1"`
	Website         *string `json:"website" validate:"omitempty,url"`
	LicenseNumber   *string `json:"licenseNumber" validate:"omitempty,min=1"`
	Status          *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	InterestRateMin *string `json:"interestRateMin" validate:"omitempty,dec2"`
	InterestRateMax *string `json:"interestRateMax" validate:"omitempty,dec2"`
	MaxLoanAmount   *string `json:"maxLoanAmount" validate:"omitempty,dec2"`
}

func (h *Handler) GetLoanProviders(c echo.Context) error {
	providers, err := h.store.GetLoanProviders(c.Request().Context())
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, providers)
}

func (h *Handler) GetLoanProvider(c echo.Context) error {
	p, err := h.store.GetLoanProvider(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateLoanProvider(c echo.Context) error {
	var req createProviderReq
	if err := c.Bind(&req); err != nil {
		return respondInvalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}
	p, err := h.store.CreateLoanProvider(c.Request().Context(), provider.CreateInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Website:         req.Website,
		LicenseNumber:   req.LicenseNumber,
		Status:          provider.Status(req.Status),
		InterestRateMin: parseDec(req.InterestRateMin),
		InterestRateMax: parseDec(req.InterestRateMax),
		MaxLoanAmount:   parseDec(req.MaxLoanAmount),
	})
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateLoanProvider(c echo.Context) error {
	var req updateProviderReq
	if err := c.Bind(&req); err != nil {
		return respondInvalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}
	var status *provider.Status
	if req.Status != nil {
		st := provider.Status(*req.Status)
		status = &st
	}
	p, err := h.store.UpdateLoanProvider(c.Request().Context(), c.Param("id"), provider.UpdateInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Website:         req.Website,
		LicenseNumber:   req.LicenseNumber,
		Status:          status,
		InterestRateMin: parseDecPtr(req.InterestRateMin),
		InterestRateMax: parseDecPtr(req.InterestRateMax),
		MaxLoanAmount:   parseDecPtr(req.MaxLoanAmount),
	})
	if err != nil {
		return respondStoreError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteLoanProvider(c echo.Context) error {
	ok, err := h.store.DeleteLoanProvider(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondStoreError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
