package handler

import (
	"context"
	"net/http"

	"github.com/amerbank/ledger/internal/adapter/http/dto"
	"github.com/amerbank/ledger/internal/domain"
)

// BankService defines the behavior needed by BankHandler.
type BankService interface {
	FindByID(ctx context.Context, id int64) (*domain.Bank, error)
	ReviewTotalTransfers(ctx context.Context, bankID int64) (int64, error)
}

// BankHandler handles bank-related HTTP requests.
type BankHandler struct {
	bankUC BankService
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(bankUC BankService) *BankHandler {
	return &BankHandler{bankUC: bankUC}
}

// Get retrieves a bank by ID.
func (h *BankHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bank ID", err.Error())
		return
	}

	bank, err := h.bankUC.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get bank", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BankFromDomain(bank))
}

// TotalTransfers returns how many transfers a bank has processed.
func (h *BankHandler) TotalTransfers(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bank ID", err.Error())
		return
	}

	total, err := h.bankUC.ReviewTotalTransfers(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get total transfers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TotalTransfersResponse{TotalTransfers: total})
}
