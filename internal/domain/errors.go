package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("not enough money in the account")
	ErrNegativeBalance   = errors.New("account balance cannot be negative")

	// Bank errors
	ErrBankNotFound = errors.New("bank not found")

	// Transfer errors
	ErrSameAccount   = errors.New("cannot transfer to same account")
	ErrInvalidAmount = errors.New("amount must be positive")

	// Validation errors
	ErrInvalidAccountName = errors.New("invalid account name")
)
