package mysql

import (
	"context"

	paymentDomain "repayment-engine/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.ReceivedPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoan(ctx context.Context, loanNumericID uint64) ([]paymentDomain.ReceivedPayment, error) {
	var out []paymentDomain.ReceivedPayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("received_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.ReceivedPayment, error) {
	var out paymentDomain.ReceivedPayment
	if err := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
