package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amerbank/ledger/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	// Save persists an account: inserts and assigns an ID when the
	// account has none, overwrites the row with the same ID otherwise.
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByName(ctx context.Context, name string) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []int64) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	// List returns all accounts in creation order.
	List(ctx context.Context) ([]*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

// BankRepository defines data access for banks.
type BankRepository interface {
	Save(ctx context.Context, bank *domain.Bank) (*domain.Bank, error)
	GetByID(ctx context.Context, id int64) (*domain.Bank, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.Bank, error)
	UpdateTotalTransfers(ctx context.Context, tx Transaction, id int64, totalTransfers int64, updatedAt time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// ErrCacheMiss is returned by Cache.Get when the key is absent. Any
// other error is a cache fault, not a miss.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines caching operations.
type Cache interface {
	// Get returns ErrCacheMiss for absent keys.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
