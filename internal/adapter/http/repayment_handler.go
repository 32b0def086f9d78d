package http

import (
	"net/http"

	"repayment-engine/internal/usecase/repayment"
	"repayment-engine/pkg/calendar"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type RepaymentHandler struct {
	uc  *repayment.Usecase
	log logrus.FieldLogger
}

func NewRepaymentHandler(uc *repayment.Usecase, log logrus.FieldLogger) *RepaymentHandler {
	return &RepaymentHandler{uc: uc, log: log}
}

type repayReq struct {
	Amount int64 `json:"amount" validate:"gt=0"`
	// defaults to the loan's currency
	CurrencyCode string `json:"currency_code" validate:"omitempty,iso4217"`
	// payment date `YYYY-MM-DD`; today when omitted
	ReceivedAt string `json:"received_at" validate:"omitempty,datetime=2006-01-02"`
}

func (h *RepaymentHandler) Repay(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req repayReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	in := repayment.RepayInput{
		LoanID:       loanID,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
	}
	if req.ReceivedAt != "" {
		in.ReceivedAt, _ = calendar.ParseDate(req.ReceivedAt)
	}

	dto, err := h.uc.RepayLoan(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) ListRepayments(c echo.Context) error {
	out, err := h.uc.ListPayments(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RepaymentHandler) GetRepayment(c echo.Context) error {
	dto, err := h.uc.GetPayment(c.Request().Context(), c.Param("loan_id"), c.Param("payment_id"))
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
