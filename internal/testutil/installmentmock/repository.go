package installmentmock

import (
	"context"
	"time"

	domain "repayment-engine/internal/domain/installment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled; unset writes succeed.
type Repo struct {
	CreateBatchFn              func(ctx context.Context, items []domain.Installment) error
	ListByLoanFn               func(ctx context.Context, loanNumericID uint64) ([]domain.Installment, error)
	ListOutstandingForUpdateFn func(ctx context.Context, loanNumericID uint64) ([]domain.Installment, error)
	UpdateBalanceFn            func(ctx context.Context, in *domain.Installment) error
	SumOutstandingFn           func(ctx context.Context, loanNumericID uint64) (int64, error)
	ListOverdueFn              func(ctx context.Context, asOf time.Time, limit int) ([]domain.Overdue, error)
}

func (m *Repo) CreateBatch(ctx context.Context, items []domain.Installment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, items)
	}
	return nil
}

func (m *Repo) ListByLoan(ctx context.Context, loanNumericID uint64) ([]domain.Installment, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListOutstandingForUpdate(ctx context.Context, loanNumericID uint64) ([]domain.Installment, error) {
	if m.ListOutstandingForUpdateFn != nil {
		return m.ListOutstandingForUpdateFn(ctx, loanNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateBalance(ctx context.Context, in *domain.Installment) error {
	if m.UpdateBalanceFn != nil {
		return m.UpdateBalanceFn(ctx, in)
	}
	return nil
}

func (m *Repo) SumOutstanding(ctx context.Context, loanNumericID uint64) (int64, error) {
	if m.SumOutstandingFn != nil {
		return m.SumOutstandingFn(ctx, loanNumericID)
	}
	return 0, context.Canceled
}

func (m *Repo) ListOverdue(ctx context.Context, asOf time.Time, limit int) ([]domain.Overdue, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, asOf, limit)
	}
	return nil, context.Canceled
}
