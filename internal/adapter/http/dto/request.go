package dto

import (
	"github.com/shopspring/decimal"

	"github.com/amerbank/ledger/internal/usecase"
)

// SaveAccountRequest represents a request to create or overwrite an account.
type SaveAccountRequest struct {
	ID      int64           `json:"id,omitempty"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// ToUseCaseInput converts to use case input.
func (r *SaveAccountRequest) ToUseCaseInput() usecase.SaveAccountInput {
	return usecase.SaveAccountInput{
		ID:      r.ID,
		Name:    r.Name,
		Balance: r.Balance,
	}
}

// TransferRequest represents a request to move money between two accounts.
type TransferRequest struct {
	OriginAccountID      int64           `json:"originAccountId"`
	DestinationAccountID int64           `json:"destinationAccountId"`
	Amount               decimal.Decimal `json:"amount"`
	BankID               int64           `json:"bankId"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		OriginAccountID:      r.OriginAccountID,
		DestinationAccountID: r.DestinationAccountID,
		Amount:               r.Amount,
		BankID:               r.BankID,
	}
}
