package uow

import (
	"context"

	"repayment-engine/internal/domain/installment"
	"repayment-engine/internal/domain/loan"
	"repayment-engine/internal/domain/payment"
)

// Repos are bound to one transaction.
type Repos struct {
	Loans        loan.Repository
	Installments installment.Repository
	Payments     payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the loan row first, then pass it in; loan.ErrNotFound if missing
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
