package paymentmock

import (
	"context"

	domain "repayment-engine/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.ReceivedPayment) error
	ListByLoanFn     func(ctx context.Context, loanNumericID uint64) ([]domain.ReceivedPayment, error)
	GetByPaymentIDFn func(ctx context.Context, paymentID string) (*domain.ReceivedPayment, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.ReceivedPayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByLoan(ctx context.Context, loanNumericID uint64) ([]domain.ReceivedPayment, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.ReceivedPayment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}
