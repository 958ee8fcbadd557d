package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amerbank/ledger/internal/domain"
	"github.com/amerbank/ledger/internal/infrastructure/metrics"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	cache       Cache
	cacheTTL    time.Duration
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. cache may be nil to
// disable read-through caching.
func NewAccountUseCase(accountRepo AccountRepository, cache Cache, cacheTTL time.Duration, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		metrics:     m,
	}
}

// SaveAccountInput represents input for creating or overwriting an account.
type SaveAccountInput struct {
	ID      int64
	Name    string
	Balance decimal.Decimal
}

// Save creates a new account or overwrites the record with the same ID.
func (uc *AccountUseCase) Save(ctx context.Context, input SaveAccountInput) (*domain.Account, error) {
	name := domain.NormalizeAccountName(input.Name)

	if err := domain.ValidateAccountName(name); err != nil {
		return nil, err
	}

	if err := domain.ValidateBalance(input.Balance); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:        input.ID,
		Name:      name,
		Balance:   input.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := uc.accountRepo.Save(ctx, account)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, accountCacheKey(saved.ID))

	if uc.metrics != nil && input.ID == 0 {
		uc.metrics.AccountsCreated.Inc()
	}

	return saved, nil
}

// FindByID retrieves an account by ID.
func (uc *AccountUseCase) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	if account, ok := uc.cachedAccount(ctx, id); ok {
		return account, nil
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cacheAccount(ctx, account)

	return account, nil
}

// FindByName retrieves an account by holder name. Names are not unique;
// the store returns the oldest match.
func (uc *AccountUseCase) FindByName(ctx context.Context, name string) (*domain.Account, error) {
	return uc.accountRepo.GetByName(ctx, name)
}

// FindAll lists all accounts in creation order.
func (uc *AccountUseCase) FindAll(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx)
}

// DeleteByID removes an account.
func (uc *AccountUseCase) DeleteByID(ctx context.Context, id int64) error {
	if err := uc.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, accountCacheKey(id))

	if uc.metrics != nil {
		uc.metrics.AccountsDeleted.Inc()
	}

	return nil
}

// ReviewBalance returns the current balance of an account.
func (uc *AccountUseCase) ReviewBalance(ctx context.Context, id int64) (decimal.Decimal, error) {
	account, err := uc.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	return account.Balance, nil
}

// cachedAccount returns a cached copy when present. Cache misses and
// decode failures fall through to the store.
func (uc *AccountUseCase) cachedAccount(ctx context.Context, id int64) (*domain.Account, bool) {
	if uc.cache == nil {
		return nil, false
	}

	data, err := uc.cache.Get(ctx, accountCacheKey(id))
	if err != nil {
		// Connection faults fall through to the store without
		// polluting the miss counter.
		if uc.metrics != nil && errors.Is(err, ErrCacheMiss) {
			uc.metrics.CacheMisses.Inc()
		}

		return nil, false
	}

	var account domain.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, false
	}

	if uc.metrics != nil {
		uc.metrics.CacheHits.Inc()
	}

	return &account, true
}

// cacheAccount stores a copy best-effort; failures are ignored.
func (uc *AccountUseCase) cacheAccount(ctx context.Context, account *domain.Account) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(account)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, accountCacheKey(account.ID), data, uc.cacheTTL)
}

func (uc *AccountUseCase) invalidate(ctx context.Context, keys ...string) {
	if uc.cache == nil {
		return
	}

	_ = uc.cache.Delete(ctx, keys...)
}

func accountCacheKey(id int64) string {
	return fmt.Sprintf("account:%d", id)
}

func bankCacheKey(id int64) string {
	return fmt.Sprintf("bank:%d", id)
}
