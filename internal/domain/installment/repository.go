package installment

import (
	"context"
	"time"
)

type Repository interface {
	// CreateBatch inserts the whole schedule of one loan.
	CreateBatch(ctx context.Context, items []Installment) error

	// ListByLoan returns every installment of a loan, oldest due first.
	ListByLoan(ctx context.Context, loanNumericID uint64) ([]Installment, error)

	// ListOutstandingForUpdate returns installments with outstanding > 0,
	// oldest due first, row-locked for the surrounding transaction.
	ListOutstandingForUpdate(ctx context.Context, loanNumericID uint64) ([]Installment, error)

	// UpdateBalance persists OutstandingAmount and Status of one installment.
	UpdateBalance(ctx context.Context, in *Installment) error

	// SumOutstanding recomputes the loan's outstanding amount from its rows.
	SumOutstanding(ctx context.Context, loanNumericID uint64) (int64, error)

	// ListOverdue returns unpaid installments due before asOf, joined with
	// their loan's public id.
	ListOverdue(ctx context.Context, asOf time.Time, limit int) ([]Overdue, error)
}
