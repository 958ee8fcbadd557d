package domain

import (
	"github.com/shopspring/decimal"
)

// Transfer describes a requested money movement between two accounts,
// settled through a bank. It is transient: nothing beyond the bank
// counter is persisted about it.
type Transfer struct {
	OriginAccountID      int64
	DestinationAccountID int64
	Amount               decimal.Decimal
	BankID               int64
}

// Validate checks the transfer request before any account is touched.
func (t *Transfer) Validate() error {
	if t.OriginAccountID == t.DestinationAccountID {
		return ErrSameAccount
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}
