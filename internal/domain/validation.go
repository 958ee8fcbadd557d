package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MaxAccountNameLength = 255
	MinAccountNameLength = 1
)

// NormalizeAccountName strips surrounding whitespace. Callers persist
// the normalized form.
func NormalizeAccountName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateAccountName validates an account holder name. Length limits
// are in characters, not bytes.
func ValidateAccountName(name string) error {
	name = NormalizeAccountName(name)

	length := utf8.RuneCountInString(name)

	if length < MinAccountNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if length > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidateBalance rejects negative balances on creation or overwrite.
func ValidateBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return ErrNegativeBalance
	}

	return nil
}
