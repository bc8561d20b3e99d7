package postgres

import (
	"context"
	"testing"
	"time"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(kind domain.AccountKind) *domain.Account {
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := &domain.Account{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Kind:      kind,
		Balance:   domain.DefaultWalletBalance,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if kind == domain.AccountKindBank {
		a.Balance = domain.DefaultBankBalance
		a.BankUsername = "alice.bank"
		a.AccountNumber = "001122334455"
		a.CredentialHash = "$argon2id$bank"
	}
	return a
}

func accountColumnNames() []string {
	return []string{"id", "owner_id", "kind", "balance", "bank_username", "account_number", "credential_hash", "version", "created_at", "updated_at"}
}

func accountRow(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumnNames()).AddRow(
		a.ID, a.OwnerID, a.Kind, a.Balance, a.BankUsername, a.AccountNumber,
		a.CredentialHash, a.Version, a.CreatedAt, a.UpdatedAt,
	)
}

func TestAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := newTestAccount(domain.AccountKindBank)
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(a.ID, a.OwnerID, a.Kind, a.Balance, a.BankUsername, a.AccountNumber,
			a.CredentialHash, a.Version, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, NewAccountRepo(mock).Create(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetWalletByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := newTestAccount(domain.AccountKindWallet)
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE owner_id = \\$1 AND kind = 'WALLET'").
		WithArgs(a.OwnerID).
		WillReturnRows(accountRow(a))

	got, err := NewAccountRepo(mock).GetWalletByOwner(context.Background(), a.OwnerID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.Balance, got.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetBankByOwnerAndUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := newTestAccount(domain.AccountKindBank)
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE owner_id = \\$1 AND kind = 'BANK'").
		WithArgs(a.OwnerID, "alice.bank").
		WillReturnRows(accountRow(a))

	got, err := NewAccountRepo(mock).GetBankByOwnerAndUsername(context.Background(), a.OwnerID, "alice.bank")
	require.NoError(t, err)
	assert.Equal(t, a.CredentialHash, got.CredentialHash)
}

func TestAccountRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := newTestAccount(domain.AccountKindWallet)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id = \\$1 FOR UPDATE").
		WithArgs(a.ID).
		WillReturnRows(accountRow(a))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := NewAccountRepo(mock).GetByIDForUpdate(context.Background(), dbTx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(int64(4200), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(int64(1), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	repo := NewAccountRepo(mock)
	assert.NoError(t, repo.UpdateBalance(context.Background(), dbTx, id, 4200))
	assert.Error(t, repo.UpdateBalance(context.Background(), dbTx, id, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
