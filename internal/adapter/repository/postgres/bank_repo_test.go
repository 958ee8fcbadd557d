package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/amerbank/ledger/internal/domain"
)

func bankRows(t *testing.T) *pgxmock.Rows {
	t.Helper()

	return pgxmock.NewRows([]string{"id", "name", "total_transfers", "created_at", "updated_at"})
}

func TestBankRepositoryGetByID(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()

	mockPool.ExpectQuery("SELECT id, name, total_transfers, created_at, updated_at FROM banks WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(bankRows(t).AddRow(
			int64(1), "The American Bank", int64(5),
			timeToPgTimestamptz(now), timeToPgTimestamptz(now),
		))

	repo := newBankRepositoryWithDB(mockPool)
	bank, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bank.Name != "The American Bank" || bank.TotalTransfers != 5 {
		t.Fatalf("unexpected bank %+v", bank)
	}

	assertExpectations(t, mockPool)
}

func TestBankRepositoryGetByIDNotFound(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectQuery("SELECT id, name, total_transfers, created_at, updated_at FROM banks WHERE id").
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	repo := newBankRepositoryWithDB(mockPool)
	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrBankNotFound) {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
}

func TestBankRepositoryGetByIDForUpdate(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()

	mockPool.ExpectBegin()
	mockPool.ExpectQuery("SELECT id, name, total_transfers, created_at, updated_at FROM banks WHERE id = (.+) FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(bankRows(t).AddRow(
			int64(1), "The American Bank", int64(0),
			timeToPgTimestamptz(now), timeToPgTimestamptz(now),
		))
	mockPool.ExpectCommit()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := newBankRepositoryWithDB(mockPool)
	bank, err := repo.GetByIDForUpdate(context.Background(), tx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bank.ID != 1 {
		t.Fatalf("expected bank 1, got %d", bank.ID)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestBankRepositoryUpdateTotalTransfers(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()

	mockPool.ExpectBegin()
	mockPool.ExpectExec("UPDATE banks").
		WithArgs(int64(1), int64(6), timeToPgTimestamptz(now)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectCommit()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := newBankRepositoryWithDB(mockPool)
	if err := repo.UpdateTotalTransfers(context.Background(), tx, 1, 6, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}
