package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amerbank/ledger/internal/domain"
	"github.com/amerbank/ledger/internal/infrastructure/postgres/generated"
	"github.com/amerbank/ledger/internal/usecase"
)

// BankRepository implements usecase.BankRepository.
type BankRepository struct {
	queries *generated.Queries
}

// NewBankRepository creates a new BankRepository.
func NewBankRepository(pool *pgxpool.Pool) *BankRepository {
	return newBankRepositoryWithDB(pool)
}

func newBankRepositoryWithDB(db generated.DBTX) *BankRepository {
	return &BankRepository{queries: generated.New(db)}
}

// Save persists a bank, assigning an ID when the bank has none.
func (r *BankRepository) Save(ctx context.Context, bank *domain.Bank) (*domain.Bank, error) {
	if bank.ID == 0 {
		row, err := r.queries.InsertBank(ctx, generated.InsertBankParams{
			Name:           bank.Name,
			TotalTransfers: bank.TotalTransfers,
			CreatedAt:      timeToPgTimestamptz(bank.CreatedAt),
			UpdatedAt:      timeToPgTimestamptz(bank.UpdatedAt),
		})
		if err != nil {
			return nil, err
		}

		return rowToBank(row), nil
	}

	row, err := r.queries.UpsertBank(ctx, generated.UpsertBankParams{
		ID:             bank.ID,
		Name:           bank.Name,
		TotalTransfers: bank.TotalTransfers,
		CreatedAt:      timeToPgTimestamptz(bank.CreatedAt),
		UpdatedAt:      timeToPgTimestamptz(bank.UpdatedAt),
	})
	if err != nil {
		return nil, err
	}

	return rowToBank(row), nil
}

// GetByID retrieves a bank by ID.
func (r *BankRepository) GetByID(ctx context.Context, id int64) (*domain.Bank, error) {
	row, err := r.queries.GetBankByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBankNotFound
		}

		return nil, err
	}

	return rowToBank(row), nil
}

// GetByIDForUpdate retrieves a bank by ID with a FOR UPDATE lock.
func (r *BankRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Bank, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	row, err := queries.GetBankByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBankNotFound
		}

		return nil, err
	}

	return rowToBank(row), nil
}

// UpdateTotalTransfers updates the transfer counter within a transaction.
func (r *BankRepository) UpdateTotalTransfers(ctx context.Context, tx usecase.Transaction, id int64, totalTransfers int64, updatedAt time.Time) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	return queries.UpdateBankTotalTransfers(ctx, generated.UpdateBankTotalTransfersParams{
		ID:             id,
		TotalTransfers: totalTransfers,
		UpdatedAt:      timeToPgTimestamptz(updatedAt),
	})
}

func rowToBank(row generated.Bank) *domain.Bank {
	return &domain.Bank{
		ID:             row.ID,
		Name:           row.Name,
		TotalTransfers: row.TotalTransfers,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
