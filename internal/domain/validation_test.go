package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name        string
		accountName string
		expectError bool
	}{
		{"valid name", "Karen", false},
		{"empty name", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 256), true},
		{"max length", strings.Repeat("a", 255), false},
		{"max length multibyte", strings.Repeat("é", 255), false},
		{"too long multibyte", strings.Repeat("é", 256), true},
		{"padded name", "  Karen  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccountName(tt.accountName)

			if tt.expectError && !errors.Is(err, ErrInvalidAccountName) {
				t.Errorf("expected ErrInvalidAccountName, got %v", err)
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNormalizeAccountName(t *testing.T) {
	if got := NormalizeAccountName("  Karen  "); got != "Karen" {
		t.Errorf("expected trimmed name Karen, got %q", got)
	}

	if got := NormalizeAccountName("Karen"); got != "Karen" {
		t.Errorf("expected name unchanged, got %q", got)
	}
}

func TestValidateBalance(t *testing.T) {
	if err := ValidateBalance(decimal.NewFromInt(3000)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateBalance(decimal.Zero); err != nil {
		t.Errorf("unexpected error for zero balance: %v", err)
	}

	if err := ValidateBalance(decimal.NewFromInt(-1)); !errors.Is(err, ErrNegativeBalance) {
		t.Errorf("expected ErrNegativeBalance, got %v", err)
	}
}
