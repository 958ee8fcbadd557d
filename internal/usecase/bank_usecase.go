package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/amerbank/ledger/internal/domain"
)

// BankUseCase handles bank business logic.
type BankUseCase struct {
	bankRepo BankRepository
	cache    Cache
	cacheTTL time.Duration
}

// NewBankUseCase creates a new BankUseCase. cache may be nil.
func NewBankUseCase(bankRepo BankRepository, cache Cache, cacheTTL time.Duration) *BankUseCase {
	return &BankUseCase{
		bankRepo: bankRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// FindByID retrieves a bank by ID.
func (uc *BankUseCase) FindByID(ctx context.Context, id int64) (*domain.Bank, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, bankCacheKey(id)); err == nil {
			var bank domain.Bank
			if err := json.Unmarshal(data, &bank); err == nil {
				return &bank, nil
			}
		}
	}

	bank, err := uc.bankRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(bank); err == nil {
			_ = uc.cache.Set(ctx, bankCacheKey(id), data, uc.cacheTTL)
		}
	}

	return bank, nil
}

// ReviewTotalTransfers returns the bank's transfer counter.
func (uc *BankUseCase) ReviewTotalTransfers(ctx context.Context, bankID int64) (int64, error) {
	bank, err := uc.FindByID(ctx, bankID)
	if err != nil {
		return 0, err
	}

	return bank.TotalTransfers, nil
}
