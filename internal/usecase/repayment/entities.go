package repayment

import (
	"time"

	"repayment-engine/internal/domain/payment"
	"repayment-engine/pkg/calendar"
)

type RepayInput struct {
	LoanID       string
	Amount       int64
	CurrencyCode string    // empty means the loan's currency
	ReceivedAt   time.Time // zero means now
}

// AllocationDTO describes what one payment did to one installment.
type AllocationDTO struct {
	Sequence          int    `json:"sequence"`
	AppliedAmount     int64  `json:"applied_amount"`
	OutstandingAmount int64  `json:"outstanding_amount"`
	Status            string `json:"status"`
}

type PaymentDTO struct {
	PaymentID       string    `json:"payment_id"`
	LoanID          string    `json:"loan_id"`
	Amount          int64     `json:"amount"`
	AllocatedAmount int64     `json:"allocated_amount"`
	LeftoverAmount  int64     `json:"leftover_amount"`
	CurrencyCode    string    `json:"currency_code"`
	ReceivedAt      string    `json:"received_at"` // YYYY-MM-DD
	CreatedAt       time.Time `json:"created_at"`

	// only set on the RepayLoan response
	LoanOutstanding *int64          `json:"loan_outstanding_amount,omitempty"`
	LoanStatus      string          `json:"loan_status,omitempty"`
	Allocations     []AllocationDTO `json:"allocations,omitempty"`
}

func toDTO(loanID string, p *payment.ReceivedPayment) PaymentDTO {
	return PaymentDTO{
		PaymentID:       p.PaymentID,
		LoanID:          loanID,
		Amount:          p.Amount,
		AllocatedAmount: p.AllocatedAmount,
		LeftoverAmount:  p.Leftover(),
		CurrencyCode:    p.CurrencyCode,
		ReceivedAt:      calendar.FormatDate(p.ReceivedAt),
		CreatedAt:       p.CreatedAt,
	}
}
