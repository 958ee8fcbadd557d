package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amerbank/ledger/internal/domain"
	"github.com/amerbank/ledger/internal/usecase"
)

// ErrCacheMiss is returned by MockCache for absent keys. It is the
// contract sentinel so miss accounting behaves as in production.
var ErrCacheMiss = usecase.ErrCacheMiss

// MockAccountRepository is an in-memory mock of AccountRepository.
// Every method can be overridden through its Func field; the default
// behavior acts on the in-memory map.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	nextID   int64

	SaveFunc              func(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByIDFunc           func(ctx context.Context, id int64) (*domain.Account, error)
	GetByNameFunc         func(ctx context.Context, name string) (*domain.Account, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.Account, error)
	UpdateBalanceFunc     func(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	ListFunc              func(ctx context.Context) ([]*domain.Account, error)
	DeleteFunc            func(ctx context.Context, id int64) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int64]*domain.Account),
	}
}

func (m *MockAccountRepository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if account.ID == 0 {
		m.nextID++
		account.ID = m.nextID
	} else if account.ID > m.nextID {
		m.nextID = account.ID
	}
	stored := *account
	m.accounts[account.ID] = &stored
	return account, nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var match *domain.Account
	for _, acc := range m.accounts {
		if acc.Name == name && (match == nil || acc.ID < match.ID) {
			match = acc
		}
	}
	if match == nil {
		return nil, domain.ErrAccountNotFound
	}
	copied := *match
	return &copied, nil
}

func (m *MockAccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.Account, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			copied := *acc
			accounts = append(accounts, &copied)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		copied := *acc
		accounts = append(accounts, &copied)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(m.accounts, id)
	return nil
}

// Balance reads the stored balance directly, for assertions.
func (m *MockAccountRepository) Balance(id int64) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc.Balance
	}
	return decimal.Zero
}

// MockBankRepository is an in-memory mock of BankRepository.
type MockBankRepository struct {
	mu    sync.RWMutex
	banks map[int64]*domain.Bank

	SaveFunc                 func(ctx context.Context, bank *domain.Bank) (*domain.Bank, error)
	GetByIDFunc              func(ctx context.Context, id int64) (*domain.Bank, error)
	GetByIDForUpdateFunc     func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Bank, error)
	UpdateTotalTransfersFunc func(ctx context.Context, tx usecase.Transaction, id int64, totalTransfers int64, updatedAt time.Time) error
}

func NewMockBankRepository() *MockBankRepository {
	return &MockBankRepository{
		banks: make(map[int64]*domain.Bank),
	}
}

func (m *MockBankRepository) Save(ctx context.Context, bank *domain.Bank) (*domain.Bank, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, bank)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *bank
	m.banks[bank.ID] = &stored
	return bank, nil
}

func (m *MockBankRepository) GetByID(ctx context.Context, id int64) (*domain.Bank, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if bank, ok := m.banks[id]; ok {
		copied := *bank
		return &copied, nil
	}
	return nil, domain.ErrBankNotFound
}

func (m *MockBankRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Bank, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockBankRepository) UpdateTotalTransfers(ctx context.Context, tx usecase.Transaction, id int64, totalTransfers int64, updatedAt time.Time) error {
	if m.UpdateTotalTransfersFunc != nil {
		return m.UpdateTotalTransfersFunc(ctx, tx, id, totalTransfers, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if bank, ok := m.banks[id]; ok {
		bank.TotalTransfers = totalTransfers
		bank.UpdatedAt = updatedAt
	}
	return nil
}

// TotalTransfers reads the stored counter directly, for assertions.
func (m *MockBankRepository) TotalTransfers(id int64) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if bank, ok := m.banks[id]; ok {
		return bank.TotalTransfers
	}
	return 0
}

// MockTransaction is a no-op Transaction recording commit/rollback calls.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockCache is an in-memory mock of Cache.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, keys ...string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if value, ok := m.entries[key]; ok {
		return value, nil
	}
	return nil, ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, keys...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

// Has reports whether a key is cached, for assertions.
func (m *MockCache) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[key]
	return ok
}

// NoRetrier runs the operation exactly once.
type NoRetrier struct{}

func (NoRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}
