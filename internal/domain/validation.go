package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrAmountTooLarge = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxTransactionAmount = "1000000000000" // 1 trillion shillings
)

// ValidateAmount validates a monetary amount supplied by a caller.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxTransactionAmount)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
