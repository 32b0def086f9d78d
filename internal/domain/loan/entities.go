package loan

import (
	"time"
)

type Status string

const (
	StatusDue    Status = "due"
	StatusRepaid Status = "repaid"
)

// StatusFor derives the loan status from its outstanding amount.
func StatusFor(outstanding int64) Status {
	if outstanding == 0 {
		return StatusRepaid
	}
	return StatusDue
}

// Table: loans. Amounts are integer minor currency units.
type Loan struct {
	ID                uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"-"`
	LoanID            string    `gorm:"column:loan_id;size:32;not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	OwnerID           string    `gorm:"column:owner_id;size:32;not null;index:idx_loans_owner" json:"owner_id"`
	Amount            int64     `gorm:"column:amount;not null" json:"amount"`
	Terms             int       `gorm:"column:terms;not null" json:"terms"`
	OutstandingAmount int64     `gorm:"column:outstanding_amount;not null" json:"outstanding_amount"`
	CurrencyCode      string    `gorm:"column:currency_code;size:3;not null" json:"currency_code"`
	Status            Status    `gorm:"column:status;size:16;not null;default:due" json:"status"`
	ProcessedAt       time.Time `gorm:"column:processed_at;not null" json:"processed_at"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
