package mysql

import (
	"testing"
	"time"

	installmentDomain "repayment-engine/internal/domain/installment"
	loanDomain "repayment-engine/internal/domain/loan"
	paymentDomain "repayment-engine/internal/domain/payment"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with all three tables. The models
// use portable column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every new connection would get its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&loanDomain.Loan{}, &installmentDomain.Installment{}, &paymentDomain.ReceivedPayment{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID, ownerID string) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:            loanID,
		OwnerID:           ownerID,
		Amount:            5000,
		Terms:             3,
		OutstandingAmount: 5000,
		CurrencyCode:      "IDR",
		Status:            loanDomain.StatusDue,
		ProcessedAt:       time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
}

// seedLoanWithSchedule stores a loan and its generated schedule outside any tx.
func seedLoanWithSchedule(t *testing.T, db *gorm.DB, loanID string) (*loanDomain.Loan, []installmentDomain.Installment) {
	t.Helper()
	l := makeLoan(loanID, "ffffffffffffffffffffffffffffffff")
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	items, err := installmentDomain.BuildSchedule(l.Amount, l.Terms, l.CurrencyCode, l.ProcessedAt)
	if err != nil {
		t.Fatalf("build schedule: %v", err)
	}
	for i := range items {
		items[i].LoanID = l.ID
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("seed installments: %v", err)
	}
	return l, items
}
