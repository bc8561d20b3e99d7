package postgres

import (
	"context"
	"errors"
	"fmt"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, sender_id, receiver_id, source_account_id, amount, rail, status,
	pin_placeholder, card_last4, hmac, signature, failure_reason,
	risk_score, risk_reasons, risk_evaluated_at, created_at`

// TransactionRepo implements ports.TransactionRepository. Rows are
// insert-only.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a transaction within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	reasons := t.RiskReasons
	if reasons == nil {
		reasons = []string{}
	}
	_, err := tx.Exec(ctx, query,
		t.ID, t.SenderID, t.ReceiverID, t.SourceAccountID, t.Amount, t.Rail, t.Status,
		t.PinPlaceholder, t.CardLast4, t.HMAC, t.Signature, t.FailureReason,
		t.RiskScore, reasons, t.RiskEvaluatedAt, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by id.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t := &domain.Transaction{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.SenderID, &t.ReceiverID, &t.SourceAccountID, &t.Amount, &t.Rail, &t.Status,
		&t.PinPlaceholder, &t.CardLast4, &t.HMAC, &t.Signature, &t.FailureReason,
		&t.RiskScore, &t.RiskReasons, &t.RiskEvaluatedAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}
