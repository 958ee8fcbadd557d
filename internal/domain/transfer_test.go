package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransfer_Validate(t *testing.T) {
	tests := []struct {
		name     string
		transfer Transfer
		wantErr  error
	}{
		{
			name: "valid transfer",
			transfer: Transfer{
				OriginAccountID:      1,
				DestinationAccountID: 2,
				Amount:               decimal.NewFromInt(100),
				BankID:               1,
			},
			wantErr: nil,
		},
		{
			name: "same origin and destination",
			transfer: Transfer{
				OriginAccountID:      1,
				DestinationAccountID: 1,
				Amount:               decimal.NewFromInt(100),
				BankID:               1,
			},
			wantErr: ErrSameAccount,
		},
		{
			name: "zero amount",
			transfer: Transfer{
				OriginAccountID:      1,
				DestinationAccountID: 2,
				Amount:               decimal.Zero,
				BankID:               1,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transfer: Transfer{
				OriginAccountID:      1,
				DestinationAccountID: 2,
				Amount:               decimal.NewFromInt(-50),
				BankID:               1,
			},
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transfer.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
