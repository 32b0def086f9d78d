package loan

import (
	"time"

	"repayment-engine/internal/domain/installment"
	"repayment-engine/internal/domain/loan"
	"repayment-engine/pkg/calendar"
)

type CreateLoanInput struct {
	OwnerID      string
	Amount       int64
	CurrencyCode string
	Terms        int
	ProcessedAt  time.Time // zero means now
}

type InstallmentDTO struct {
	Sequence          int    `json:"sequence"`
	Amount            int64  `json:"amount"`
	OutstandingAmount int64  `json:"outstanding_amount"`
	CurrencyCode      string `json:"currency_code"`
	DueDate           string `json:"due_date"` // YYYY-MM-DD
	Status            string `json:"status"`
}

type LoanDTO struct {
	LoanID            string           `json:"loan_id"`
	OwnerID           string           `json:"owner_id"`
	Amount            int64            `json:"amount"`
	Terms             int              `json:"terms"`
	OutstandingAmount int64            `json:"outstanding_amount"`
	CurrencyCode      string           `json:"currency_code"`
	Status            string           `json:"status"`
	ProcessedAt       string           `json:"processed_at"` // YYYY-MM-DD
	CreatedAt         time.Time        `json:"created_at"`
	Installments      []InstallmentDTO `json:"installments"`
}

func toDTO(l *loan.Loan, items []installment.Installment) *LoanDTO {
	out := &LoanDTO{
		LoanID:            l.LoanID,
		OwnerID:           l.OwnerID,
		Amount:            l.Amount,
		Terms:             l.Terms,
		OutstandingAmount: l.OutstandingAmount,
		CurrencyCode:      l.CurrencyCode,
		Status:            string(l.Status),
		ProcessedAt:       calendar.FormatDate(l.ProcessedAt),
		CreatedAt:         l.CreatedAt,
		Installments:      make([]InstallmentDTO, 0, len(items)),
	}
	for _, in := range items {
		out.Installments = append(out.Installments, InstallmentDTO{
			Sequence:          in.Sequence,
			Amount:            in.Amount,
			OutstandingAmount: in.OutstandingAmount,
			CurrencyCode:      in.CurrencyCode,
			DueDate:           calendar.FormatDate(in.DueDate),
			Status:            string(in.Status),
		})
	}
	return out
}
