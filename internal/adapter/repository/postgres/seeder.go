package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/amerbank/ledger/internal/domain"
	"github.com/amerbank/ledger/internal/infrastructure/postgres/generated"
)

// Seeder bootstraps demo data into an empty store.
type Seeder struct {
	queries     *generated.Queries
	accountRepo *AccountRepository
	bankRepo    *BankRepository
}

// NewSeeder creates a new Seeder.
func NewSeeder(pool *pgxpool.Pool) *Seeder {
	return &Seeder{
		queries:     generated.New(pool),
		accountRepo: NewAccountRepository(pool),
		bankRepo:    NewBankRepository(pool),
	}
}

// Seed inserts the demo accounts and bank. It is a no-op when the store
// already holds any account or bank.
func (s *Seeder) Seed(ctx context.Context) error {
	accounts, err := s.queries.CountAccounts(ctx)
	if err != nil {
		return err
	}

	banks, err := s.queries.CountBanks(ctx)
	if err != nil {
		return err
	}

	if accounts > 0 || banks > 0 {
		log.Info().Msg("store not empty, skipping demo seed")
		return nil
	}

	now := time.Now().UTC()

	seedAccounts := []*domain.Account{
		{Name: "Kevin", Balance: decimal.NewFromInt(1000), CreatedAt: now, UpdatedAt: now},
		{Name: "Brando", Balance: decimal.NewFromInt(2000), CreatedAt: now, UpdatedAt: now},
	}

	for _, account := range seedAccounts {
		saved, err := s.accountRepo.Save(ctx, account)
		if err != nil {
			return err
		}
		log.Info().Int64("id", saved.ID).Str("name", saved.Name).Msg("seeded account")
	}

	bank := &domain.Bank{Name: "The American Bank", CreatedAt: now, UpdatedAt: now}

	saved, err := s.bankRepo.Save(ctx, bank)
	if err != nil {
		return err
	}
	log.Info().Int64("id", saved.ID).Str("name", saved.Name).Msg("seeded bank")

	return nil
}
