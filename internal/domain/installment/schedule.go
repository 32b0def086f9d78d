package installment

import (
	"time"

	"repayment-engine/internal/domain/loan"
	"repayment-engine/pkg/calendar"
)

// Split divides principal into terms integer parts that sum to principal
// exactly. Every part is principal/terms; the last principal%terms parts get
// one extra unit, so 5000 over 3 terms is [1666, 1667, 1667].
func Split(principal int64, terms int) ([]int64, error) {
	if principal <= 0 {
		return nil, loan.ErrInvalidAmount
	}
	if terms <= 0 {
		return nil, loan.ErrInvalidTerms
	}

	base := principal / int64(terms)
	remainder := int(principal % int64(terms))

	parts := make([]int64, terms)
	for i := range parts {
		parts[i] = base
	}
	for i := terms - remainder; i < terms; i++ {
		parts[i]++
	}
	return parts, nil
}

// BuildSchedule returns the unsaved installments for a new loan. Installment i
// (0-based) is due i+1 calendar months after processedAt.
func BuildSchedule(principal int64, terms int, currency string, processedAt time.Time) ([]Installment, error) {
	parts, err := Split(principal, terms)
	if err != nil {
		return nil, err
	}

	out := make([]Installment, terms)
	for i, amount := range parts {
		out[i] = Installment{
			Sequence:          i + 1,
			Amount:            amount,
			OutstandingAmount: amount,
			CurrencyCode:      currency,
			DueDate:           calendar.AddMonths(processedAt, i+1),
			Status:            StatusDue,
		}
	}
	return out, nil
}
