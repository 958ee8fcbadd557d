package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account holding a balance.
// A zero ID means the account has not been persisted yet; the store
// assigns an ID on first save.
type Account struct {
	ID        int64
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Debit subtracts amount from the balance. If the result would be
// negative the balance is left unchanged and ErrInsufficientFunds is
// returned.
func (a *Account) Debit(amount decimal.Decimal) error {
	newBalance := a.Balance.Sub(amount)
	if newBalance.IsNegative() {
		return ErrInsufficientFunds
	}

	a.Balance = newBalance

	return nil
}

// Credit adds amount to the balance. There is no upper bound.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Equal reports data equality: same id, name, and balance.
func (a *Account) Equal(other *Account) bool {
	if other == nil {
		return false
	}

	return a.ID == other.ID && a.Name == other.Name && a.Balance.Equal(other.Balance)
}
