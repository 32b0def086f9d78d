package loan

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidTerms  = errors.New("terms must be greater than zero")
	ErrPersistence   = errors.New("persistence failure")
)

// Persistence tags a store error so callers can match both ErrPersistence and the cause.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// IsDomain reports whether err already carries one of this package's sentinels.
func IsDomain(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidTerms) ||
		errors.Is(err, ErrPersistence)
}
