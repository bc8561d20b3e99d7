package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Lookups return (nil, nil) when the record does not exist.

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateStepUp(ctx context.Context, id uuid.UUID, secret string, enabled bool) error
}

// AccountRepository defines persistence operations for wallet and bank accounts.
// Methods accepting pgx.Tx run inside the ledger's locked section.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetWalletByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error)
	GetBankByOwnerAndUsername(ctx context.Context, ownerID uuid.UUID, bankUsername string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance int64) error
}

// TransactionRepository defines persistence operations for transactions.
// There is deliberately no update method: records are written once.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
}

// RiskRepository exposes the historical aggregates the risk heuristics read.
type RiskRepository interface {
	// AverageSuccessfulAmount returns the mean amount of the sender's SUCCESS
	// transactions since the given time; ok is false when there are none.
	AverageSuccessfulAmount(ctx context.Context, senderID uuid.UUID, since time.Time) (avg float64, ok bool, err error)
	CountSentSince(ctx context.Context, senderID uuid.UUID, since time.Time) (int, error)
	DistinctSendersSince(ctx context.Context, receiverID uuid.UUID, since time.Time) ([]uuid.UUID, error)
}

// AuditRepository persists audit chain entries in append order.
type AuditRepository interface {
	// LockChain serializes appenders for the lifetime of tx.
	LockChain(ctx context.Context, tx pgx.Tx) error
	Last(ctx context.Context, tx pgx.Tx) (*domain.AuditEntry, error)
	Insert(ctx context.Context, tx pgx.Tx, entry *domain.AuditEntry) error
	ListOrdered(ctx context.Context) ([]domain.AuditEntry, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
