package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"stoper/internal/repository"
)

func ErrNotFound(c echo.Context, message string) error {
	if message == "" {
		message = "not found"
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func ErrInternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// ErrSchemaMissing answers 503 with a setup hint so the client can walk
// the operator through running migrations instead of showing a generic
// failure toast.
func ErrSchemaMissing(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"error": "database schema missing",
		"hint":  "run the migrate command to create the tools and withdrawals tables",
	})
}

// ErrPartialReconciliation answers 500 with a distinct body: the ledger
// and the stock count no longer agree and need manual review.
func ErrPartialReconciliation(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "ledger and stock are out of step, manual reconciliation required",
	})
}

func SuccessResponse(c echo.Context, message string) error {
	if message == "" {
		message = "ok"
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// gatewayFailure routes a persistence error to the right response.
func gatewayFailure(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrSchemaMissing) {
		return ErrSchemaMissing(c)
	}
	return ErrInternalServerError(c)
}
