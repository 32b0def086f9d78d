package http

import (
	"net/http"

	"repayment-engine/internal/usecase/loan"
	"repayment-engine/pkg/calendar"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type LoanHandler struct {
	uc  *loan.Usecase
	log logrus.FieldLogger
}

func NewLoanHandler(uc *loan.Usecase, log logrus.FieldLogger) *LoanHandler {
	return &LoanHandler{uc: uc, log: log}
}

type createLoanReq struct {
	OwnerID      string `json:"owner_id"      validate:"required,hex32"`
	Amount       int64  `json:"amount"        validate:"gt=0"`
	CurrencyCode string `json:"currency_code" validate:"required,iso4217"`
	Terms        int    `json:"terms"         validate:"gte=1,lte=360"`
	// origination date `YYYY-MM-DD`; today when omitted
	ProcessedAt string `json:"processed_at" validate:"omitempty,datetime=2006-01-02"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	in := loan.CreateLoanInput{
		OwnerID:      req.OwnerID,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		Terms:        req.Terms,
	}
	if req.ProcessedAt != "" {
		// format already checked by the validator
		in.ProcessedAt, _ = calendar.ParseDate(req.ProcessedAt)
	}

	dto, err := h.uc.CreateLoan(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
