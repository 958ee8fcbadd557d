package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/amerbank/ledger/internal/adapter/repository/postgres"
	"github.com/amerbank/ledger/tests/testutil"
)

func TestSeeder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	testDB.TruncateAll(ctx)

	pool := testDB.Pool
	accountRepo := postgres.NewAccountRepository(pool)
	bankRepo := postgres.NewBankRepository(pool)
	seeder := postgres.NewSeeder(pool)

	if err := seeder.Seed(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	kevin, err := accountRepo.GetByName(ctx, "Kevin")
	if err != nil {
		t.Fatalf("expected seeded account Kevin: %v", err)
	}
	if !kevin.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected Kevin balance 1000, got %s", kevin.Balance)
	}

	brando, err := accountRepo.GetByName(ctx, "Brando")
	if err != nil {
		t.Fatalf("expected seeded account Brando: %v", err)
	}
	if !brando.Balance.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected Brando balance 2000, got %s", brando.Balance)
	}

	bank, err := bankRepo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("expected seeded bank: %v", err)
	}
	if bank.Name != "The American Bank" {
		t.Errorf("unexpected bank name: %s", bank.Name)
	}
	if bank.TotalTransfers != 0 {
		t.Errorf("expected fresh bank counter, got %d", bank.TotalTransfers)
	}

	// Running the seeder again must not duplicate rows.
	if err := seeder.Seed(ctx); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	accounts, err := accountRepo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list accounts: %v", err)
	}
	if len(accounts) != 2 {
		t.Errorf("expected 2 accounts after reseed, got %d", len(accounts))
	}
}
