package mysql

import (
	"context"
	"time"

	installmentDomain "repayment-engine/internal/domain/installment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// allocation order; must match installment.Less
const installmentOrder = "due_date ASC, sequence ASC, id ASC"

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) CreateBatch(ctx context.Context, items []installmentDomain.Installment) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *InstallmentRepository) ListByLoan(ctx context.Context, loanNumericID uint64) ([]installmentDomain.Installment, error) {
	var out []installmentDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order(installmentOrder).
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) ListOutstandingForUpdate(ctx context.Context, loanNumericID uint64) ([]installmentDomain.Installment, error) {
	var out []installmentDomain.Installment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ? AND outstanding_amount > 0", loanNumericID).
		Order(installmentOrder).
		Find(&out)
	return out, res.Error
}

// UpdateBalance writes only outstanding_amount and status (updated_at is
// maintained by GORM). A zero outstanding amount is written too.
func (r *InstallmentRepository) UpdateBalance(ctx context.Context, in *installmentDomain.Installment) error {
	return r.db.WithContext(ctx).
		Model(in).
		Select("outstanding_amount", "status").
		Updates(in).Error
}

func (r *InstallmentRepository) SumOutstanding(ctx context.Context, loanNumericID uint64) (int64, error) {
	var total int64
	res := r.db.WithContext(ctx).
		Model(&installmentDomain.Installment{}).
		Select("COALESCE(SUM(outstanding_amount), 0)").
		Where("loan_id = ?", loanNumericID).
		Scan(&total)
	return total, res.Error
}

func (r *InstallmentRepository) ListOverdue(ctx context.Context, asOf time.Time, limit int) ([]installmentDomain.Overdue, error) {
	var out []installmentDomain.Overdue
	q := r.db.WithContext(ctx).
		Table("scheduled_installments AS si").
		Select("si.*, l.loan_id AS public_loan_id").
		Joins("JOIN loans l ON l.id = si.loan_id").
		Where("si.outstanding_amount > 0 AND si.due_date < ?", asOf).
		Order("si.due_date ASC, si.loan_id ASC, si.sequence ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	res := q.Scan(&out)
	return out, res.Error
}
