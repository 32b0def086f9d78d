package db

import (
	"fmt"
	"time"

	"repayment-engine/internal/domain/installment"
	"repayment-engine/internal/domain/loan"
	"repayment-engine/internal/domain/payment"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGorm connects to MySQL. l may be nil, in which case GORM stays silent.
func OpenGorm(dsn string, l gormlogger.Interface) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), l)
}

// OpenGormWithDialector opens any dialector, tunes the pool and pings it.
func OpenGormWithDialector(dial gorm.Dialector, l gormlogger.Interface) (*gorm.DB, error) {
	if l == nil {
		l = gormlogger.Discard
	}
	db, err := gorm.Open(dial, &gorm.Config{Logger: l})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the loans, scheduled_installments and
// received_payments tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&loan.Loan{}, &installment.Installment{}, &payment.ReceivedPayment{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
