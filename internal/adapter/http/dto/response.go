package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amerbank/ledger/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:      a.ID,
		Name:    a.Name,
		Balance: a.Balance,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// BankResponse represents a bank in API responses.
type BankResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	TotalTransfers int64  `json:"totalTransfers"`
}

// BankFromDomain converts a domain bank to a response.
func BankFromDomain(b *domain.Bank) *BankResponse {
	return &BankResponse{
		ID:             b.ID,
		Name:           b.Name,
		TotalTransfers: b.TotalTransfers,
	}
}

// BalanceResponse carries a single account balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// TotalTransfersResponse carries a bank's transfer counter.
type TotalTransfersResponse struct {
	TotalTransfers int64 `json:"totalTransfers"`
}

// TransferReceipt acknowledges a completed transfer, echoing the request.
type TransferReceipt struct {
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	Message     string          `json:"message"`
	Transaction TransferRequest `json:"transaction"`
}

// NewTransferReceipt builds the acknowledgment for a completed transfer.
func NewTransferReceipt(req TransferRequest, at time.Time) TransferReceipt {
	return TransferReceipt{
		Date:        at.Format("2006-01-02"),
		Status:      "OK",
		Message:     "Transfer done successfully",
		Transaction: req,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
