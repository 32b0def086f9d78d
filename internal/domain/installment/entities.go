package installment

import (
	"time"
)

type Status string

const (
	StatusDue     Status = "due"
	StatusPartial Status = "partial"
	StatusRepaid  Status = "repaid"
)

// Table: scheduled_installments. One row per term; rows are created with the
// loan and only their outstanding amount and status change afterwards.
type Installment struct {
	ID                uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"-"`
	LoanID            uint64    `gorm:"column:loan_id;not null;index:idx_installments_loan_due,priority:1" json:"-"`
	Sequence          int       `gorm:"column:sequence;not null" json:"sequence"`
	Amount            int64     `gorm:"column:amount;not null" json:"amount"`
	OutstandingAmount int64     `gorm:"column:outstanding_amount;not null" json:"outstanding_amount"`
	CurrencyCode      string    `gorm:"column:currency_code;size:3;not null" json:"currency_code"`
	DueDate           time.Time `gorm:"column:due_date;not null;index:idx_installments_loan_due,priority:2" json:"due_date"`
	Status            Status    `gorm:"column:status;size:16;not null;default:due" json:"status"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Installment) TableName() string { return "scheduled_installments" }

// Overdue is an unpaid installment past its due date, carrying the public
// loan_id of its loan so reports can name it.
type Overdue struct {
	Installment
	PublicLoanID string `gorm:"column:public_loan_id"`
}
