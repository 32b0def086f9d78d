package payment

import (
	"time"
)

// Table: received_payments. Append-only ledger; Amount is the full amount
// received, including any part that found no installment to pay.
type ReceivedPayment struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	PaymentID string `gorm:"column:payment_id;size:32;not null;uniqueIndex:ux_received_payments_payment_id" json:"payment_id"`
	// FK to loans.id (numeric)
	LoanID          uint64    `gorm:"column:loan_id;not null;index:idx_received_payments_loan" json:"-"`
	Amount          int64     `gorm:"column:amount;not null" json:"amount"`
	AllocatedAmount int64     `gorm:"column:allocated_amount;not null" json:"allocated_amount"`
	CurrencyCode    string    `gorm:"column:currency_code;size:3;not null" json:"currency_code"`
	ReceivedAt      time.Time `gorm:"column:received_at;not null" json:"received_at"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ReceivedPayment) TableName() string { return "received_payments" }

// Leftover is the part of the payment that was not allocated to any installment.
func (p ReceivedPayment) Leftover() int64 { return p.Amount - p.AllocatedAmount }
