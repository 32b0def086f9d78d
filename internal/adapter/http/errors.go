package http

import (
	"errors"
	"net/http"

	"repayment-engine/internal/domain/loan"
	"repayment-engine/internal/domain/payment"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// writeDomainError maps usecase errors to status codes. Store failures are
// logged with their cause and answered without it.
func writeDomainError(c echo.Context, log logrus.FieldLogger, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: loan.ErrNotFound.Error()})
	case errors.Is(err, payment.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: payment.ErrNotFound.Error()})
	case errors.Is(err, loan.ErrInvalidAmount), errors.Is(err, loan.ErrInvalidTerms):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrPersistence):
		log.WithError(err).WithField("path", c.Path()).Error("request failed")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: loan.ErrPersistence.Error()})
	default:
		log.WithError(err).WithField("path", c.Path()).Error("unexpected error")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// bindAndValidate answers 400/422 itself and reports whether the handler may go on.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
