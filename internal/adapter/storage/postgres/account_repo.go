package postgres

import (
	"context"
	"errors"
	"fmt"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, owner_id, kind, balance, bank_username, account_number, credential_hash, version, created_at, updated_at`

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new wallet or bank account.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.OwnerID, a.Kind, a.Balance, a.BankUsername, a.AccountNumber,
		a.CredentialHash, a.Version, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account without locking.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.pool.QueryRow(ctx, query, id))
}

// GetWalletByOwner fetches the owner's wallet.
func (r *AccountRepo) GetWalletByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1 AND kind = 'WALLET'`
	return scanAccount(r.pool.QueryRow(ctx, query, ownerID))
}

// GetBankByOwnerAndUsername fetches a linked bank account by its login name.
func (r *AccountRepo) GetBankByOwnerAndUsername(ctx context.Context, ownerID uuid.UUID, bankUsername string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1 AND kind = 'BANK' AND bank_username = $2`
	return scanAccount(r.pool.QueryRow(ctx, query, ownerID, bankUsername))
}

// GetByIDForUpdate fetches an account with a row lock held until tx ends.
// This MUST be called within a transaction.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	return scanAccount(tx.QueryRow(ctx, query, id))
}

// UpdateBalance writes a new balance and bumps the row version.
func (r *AccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance int64) error {
	query := `UPDATE accounts SET balance = $1, version = version + 1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update balance: account %s not found", id)
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.Kind, &a.Balance, &a.BankUsername, &a.AccountNumber,
		&a.CredentialHash, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return a, nil
}
