package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loandesk-backend/internal/domain/storage"
)

// respondStoreError maps the store's error taxonomy onto HTTP statuses.
// Anything unrecognized is a storage failure and must not leak driver
// details to the client.
func respondStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, storage.ErrDuplicateEmail):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "email already in use"})
	case errors.Is(err, storage.ErrDanglingReference):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "referenced entity no longer exists"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "operation failed"})
	}
}

func respondInvalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func respondValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data", Details: ToFieldErrors(err)})
}

// parseDec converts a validated decimal string. Inputs reach here only
// after the dec2 validator has passed.
func parseDec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func parseDecPtr(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d := parseDec(*s)
	return &d
}
