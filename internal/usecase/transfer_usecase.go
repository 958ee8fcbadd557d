package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amerbank/ledger/internal/domain"
	"github.com/amerbank/ledger/internal/infrastructure/metrics"
)

// TransferUseCase moves money between two accounts and counts the
// transfer on a bank. The debit, the credit, and the counter increment
// commit in a single database transaction: either all three land or
// none do.
type TransferUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	bankRepo    BankRepository
	retrier     Retrier
	cache       Cache
	metrics     *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase. retrier and cache
// may be nil.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	bankRepo BankRepository,
	retrier Retrier,
	cache Cache,
	m *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		bankRepo:    bankRepo,
		retrier:     retrier,
		cache:       cache,
		metrics:     m,
	}
}

// TransferInput represents a transfer request.
type TransferInput struct {
	OriginAccountID      int64
	DestinationAccountID int64
	Amount               decimal.Decimal
	BankID               int64
}

// Transfer debits the origin account, credits the destination account,
// and increments the bank's transfer counter.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) error {
	start := time.Now()

	transfer := &domain.Transfer{
		OriginAccountID:      input.OriginAccountID,
		DestinationAccountID: input.DestinationAccountID,
		Amount:               input.Amount,
		BankID:               input.BankID,
	}

	// Validate before touching the store.
	if err := transfer.Validate(); err != nil {
		uc.countError(err)
		return err
	}

	op := func() error {
		return uc.execute(ctx, transfer)
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, op)
	} else {
		err = op()
	}

	if err != nil {
		uc.countError(err)
		return err
	}

	uc.invalidate(ctx,
		accountCacheKey(transfer.OriginAccountID),
		accountCacheKey(transfer.DestinationAccountID),
		bankCacheKey(transfer.BankID),
	)

	if uc.metrics != nil {
		uc.metrics.TransfersCompleted.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransferAmount.Observe(transfer.Amount.InexactFloat64())
	}

	return nil
}

// execute runs the transfer sequence inside one transaction.
func (uc *TransferUseCase) execute(ctx context.Context, transfer *domain.Transfer) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Lock both rows in ascending ID order to avoid deadlocks between
	// concurrent opposite-direction transfers.
	ids := []int64{transfer.OriginAccountID, transfer.DestinationAccountID}
	if ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return err
	}

	if len(accounts) != len(ids) {
		return domain.ErrAccountNotFound
	}

	var origin, destination *domain.Account
	for _, a := range accounts {
		switch a.ID {
		case transfer.OriginAccountID:
			origin = a
		case transfer.DestinationAccountID:
			destination = a
		}
	}

	if origin == nil || destination == nil {
		return domain.ErrAccountNotFound
	}

	now := time.Now().UTC()

	if err := origin.Debit(transfer.Amount); err != nil {
		return err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, origin.ID, origin.Balance, now); err != nil {
		return err
	}

	destination.Credit(transfer.Amount)

	if err := uc.accountRepo.UpdateBalance(ctx, tx, destination.ID, destination.Balance, now); err != nil {
		return err
	}

	bank, err := uc.bankRepo.GetByIDForUpdate(ctx, tx, transfer.BankID)
	if err != nil {
		return err
	}

	bank.IncrementTransfers()

	if err := uc.bankRepo.UpdateTotalTransfers(ctx, tx, bank.ID, bank.TotalTransfers, now); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (uc *TransferUseCase) invalidate(ctx context.Context, keys ...string) {
	if uc.cache == nil {
		return
	}

	_ = uc.cache.Delete(ctx, keys...)
}

func (uc *TransferUseCase) countError(err error) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.TransferErrors.WithLabelValues(transferErrorType(err)).Inc()
}

// transferErrorType buckets transfer failures for metrics labels.
func transferErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrBankNotFound):
		return "bank_not_found"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	default:
		return "internal"
	}
}
