package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidDisplayName = errors.New("invalid display name")
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxDisplayNameLength = 255
	MaxDocumentAmount    = "1000000000" // 1 billion, far above any optical-shop bill
)

// ValidateDisplayName validates a party display name.
func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidDisplayName)
	}

	if len(name) > MaxDisplayNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidDisplayName, MaxDisplayNameLength)
	}

	return nil
}

// ValidateDocumentAmount validates the amount of an invoice, purchase or
// payment being recorded. Opening balances are exempt: they may be
// negative.
func ValidateDocumentAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxDocumentAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxDocumentAmount)
	}

	return nil
}
