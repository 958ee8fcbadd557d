package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countBanks = `-- name: CountBanks :one
SELECT COUNT(*) FROM banks
`

func (q *Queries) CountBanks(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countBanks)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const insertBank = `-- name: InsertBank :one
INSERT INTO banks (name, total_transfers, created_at, updated_at)
VALUES ($1, $2, $3, $4)
RETURNING id, name, total_transfers, created_at, updated_at
`

type InsertBankParams struct {
	Name           string             `json:"name"`
	TotalTransfers int64              `json:"total_transfers"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) InsertBank(ctx context.Context, arg InsertBankParams) (Bank, error) {
	row := q.db.QueryRow(ctx, insertBank,
		arg.Name,
		arg.TotalTransfers,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Bank
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.TotalTransfers,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertBank = `-- name: UpsertBank :one
INSERT INTO banks (id, name, total_transfers, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name, total_transfers = EXCLUDED.total_transfers, updated_at = EXCLUDED.updated_at
RETURNING id, name, total_transfers, created_at, updated_at
`

type UpsertBankParams struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	TotalTransfers int64              `json:"total_transfers"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpsertBank(ctx context.Context, arg UpsertBankParams) (Bank, error) {
	row := q.db.QueryRow(ctx, upsertBank,
		arg.ID,
		arg.Name,
		arg.TotalTransfers,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Bank
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.TotalTransfers,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBankByID = `-- name: GetBankByID :one
SELECT id, name, total_transfers, created_at, updated_at FROM banks WHERE id = $1
`

func (q *Queries) GetBankByID(ctx context.Context, id int64) (Bank, error) {
	row := q.db.QueryRow(ctx, getBankByID, id)
	var i Bank
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.TotalTransfers,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBankByIDForUpdate = `-- name: GetBankByIDForUpdate :one
SELECT id, name, total_transfers, created_at, updated_at FROM banks WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetBankByIDForUpdate(ctx context.Context, id int64) (Bank, error) {
	row := q.db.QueryRow(ctx, getBankByIDForUpdate, id)
	var i Bank
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.TotalTransfers,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateBankTotalTransfers = `-- name: UpdateBankTotalTransfers :exec
UPDATE banks
SET total_transfers = $2, updated_at = $3
WHERE id = $1
`

type UpdateBankTotalTransfersParams struct {
	ID             int64              `json:"id"`
	TotalTransfers int64              `json:"total_transfers"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBankTotalTransfers(ctx context.Context, arg UpdateBankTotalTransfersParams) error {
	_, err := q.db.Exec(ctx, updateBankTotalTransfers, arg.ID, arg.TotalTransfers, arg.UpdatedAt)
	return err
}
