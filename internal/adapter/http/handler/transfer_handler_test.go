package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amerbank/ledger/internal/adapter/http/dto"
	"github.com/amerbank/ledger/internal/domain"
	"github.com/amerbank/ledger/internal/usecase"
)

type transferServiceStub struct {
	transferFn func(ctx context.Context, input usecase.TransferInput) error
}

func (s *transferServiceStub) Transfer(ctx context.Context, input usecase.TransferInput) error {
	return s.transferFn(ctx, input)
}

func transferBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(dto.TransferRequest{
		OriginAccountID:      1,
		DestinationAccountID: 2,
		Amount:               decimal.NewFromInt(100),
		BankID:               1,
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return body
}

func TestTransferHandler_Create_Success(t *testing.T) {
	var captured usecase.TransferInput
	handler := NewTransferHandler(&transferServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) error {
			captured = input
			return nil
		},
	})
	handler.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/transfer", bytes.NewReader(transferBody(t)))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.OriginAccountID != 1 || captured.DestinationAccountID != 2 || captured.BankID != 1 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var receipt dto.TransferReceipt
	if err := json.Unmarshal(rec.Body.Bytes(), &receipt); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if receipt.Status != "OK" {
		t.Fatalf("expected status OK, got %s", receipt.Status)
	}
	if receipt.Message != "Transfer done successfully" {
		t.Fatalf("unexpected message %q", receipt.Message)
	}
	if receipt.Date != "2024-03-15" {
		t.Fatalf("expected date 2024-03-15, got %s", receipt.Date)
	}
	if receipt.Transaction.OriginAccountID != 1 || !receipt.Transaction.Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected transaction to echo the request, got %+v", receipt.Transaction)
	}
}

func TestTransferHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) error {
			t.Fatal("Transfer should not be called for invalid payload")
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/transfer", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferHandler_Create_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"same account", domain.ErrSameAccount, http.StatusBadRequest},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"bank not found", domain.ErrBankNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransferHandler(&transferServiceStub{
				transferFn: func(ctx context.Context, input usecase.TransferInput) error {
					return tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/accounts/transfer", bytes.NewReader(transferBody(t)))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp.Error == "" {
				t.Fatal("expected a populated error field")
			}
		})
	}
}
