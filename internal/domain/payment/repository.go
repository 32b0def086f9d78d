package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *ReceivedPayment) error

	// ListByLoan returns a loan's payments in the order they were received.
	ListByLoan(ctx context.Context, loanNumericID uint64) ([]ReceivedPayment, error)

	// GetByPaymentID looks a payment up by its public payment_id.
	GetByPaymentID(ctx context.Context, paymentID string) (*ReceivedPayment, error)
}
