package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccount_Debit(t *testing.T) {
	tests := []struct {
		name        string
		balance     decimal.Decimal
		debitAmount decimal.Decimal
		wantBalance decimal.Decimal
		expectError bool
	}{
		{
			name:        "debit less than balance",
			balance:     decimal.NewFromInt(1000),
			debitAmount: decimal.NewFromInt(100),
			wantBalance: decimal.NewFromInt(900),
			expectError: false,
		},
		{
			name:        "debit exact balance",
			balance:     decimal.NewFromInt(100),
			debitAmount: decimal.NewFromInt(100),
			wantBalance: decimal.Zero,
			expectError: false,
		},
		{
			name:        "debit more than balance",
			balance:     decimal.NewFromInt(1000),
			debitAmount: decimal.NewFromInt(1200),
			wantBalance: decimal.NewFromInt(1000),
			expectError: true,
		},
		{
			name:        "fractional debit keeps exact decimals",
			balance:     decimal.RequireFromString("10.50"),
			debitAmount: decimal.RequireFromString("0.10"),
			wantBalance: decimal.RequireFromString("10.40"),
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{Balance: tt.balance}

			err := acc.Debit(tt.debitAmount)

			if tt.expectError && err != ErrInsufficientFunds {
				t.Errorf("expected ErrInsufficientFunds, got %v", err)
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if !acc.Balance.Equal(tt.wantBalance) {
				t.Errorf("expected balance %s, got %s", tt.wantBalance, acc.Balance)
			}
		})
	}
}

func TestAccount_Credit(t *testing.T) {
	acc := &Account{Balance: decimal.NewFromInt(2000)}
	acc.Credit(decimal.NewFromInt(100))

	expected := decimal.NewFromInt(2100)
	if !acc.Balance.Equal(expected) {
		t.Errorf("expected balance %s, got %s", expected, acc.Balance)
	}
}

func TestAccount_DebitThenCreditRestoresBalance(t *testing.T) {
	original := decimal.RequireFromString("1234.56")
	amount := decimal.RequireFromString("78.90")

	acc := &Account{Balance: original}

	if err := acc.Debit(amount); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	acc.Credit(amount)

	if !acc.Balance.Equal(original) {
		t.Errorf("expected balance %s restored exactly, got %s", original, acc.Balance)
	}
}

func TestAccount_Equal(t *testing.T) {
	a := &Account{ID: 1, Name: "Kevin", Balance: decimal.NewFromInt(1000)}

	tests := []struct {
		name  string
		other *Account
		want  bool
	}{
		{
			name:  "same data",
			other: &Account{ID: 1, Name: "Kevin", Balance: decimal.RequireFromString("1000")},
			want:  true,
		},
		{
			name:  "different id",
			other: &Account{ID: 2, Name: "Kevin", Balance: decimal.NewFromInt(1000)},
			want:  false,
		},
		{
			name:  "different name",
			other: &Account{ID: 1, Name: "Brando", Balance: decimal.NewFromInt(1000)},
			want:  false,
		},
		{
			name:  "different balance",
			other: &Account{ID: 1, Name: "Kevin", Balance: decimal.NewFromInt(999)},
			want:  false,
		},
		{
			name:  "nil",
			other: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
