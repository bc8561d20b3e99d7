package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RiskRepo implements ports.RiskRepository with aggregate queries over
// the transactions table.
type RiskRepo struct {
	pool Pool
}

// NewRiskRepo creates a new RiskRepo.
func NewRiskRepo(pool Pool) *RiskRepo {
	return &RiskRepo{pool: pool}
}

// AverageSuccessfulAmount returns the mean of the sender's successful
// payments since the given time.
func (r *RiskRepo) AverageSuccessfulAmount(ctx context.Context, senderID uuid.UUID, since time.Time) (float64, bool, error) {
	query := `SELECT COALESCE(AVG(amount), 0)::float8, COUNT(*)
		FROM transactions WHERE sender_id = $1 AND status = 'SUCCESS' AND created_at >= $2`

	var avg float64
	var n int64
	if err := r.pool.QueryRow(ctx, query, senderID, since).Scan(&avg, &n); err != nil {
		return 0, false, fmt.Errorf("average successful amount: %w", err)
	}
	return avg, n > 0, nil
}

// CountSentSince counts the sender's transactions of any status since the given time.
func (r *RiskRepo) CountSentSince(ctx context.Context, senderID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE sender_id = $1 AND created_at >= $2`

	var n int
	if err := r.pool.QueryRow(ctx, query, senderID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sent since: %w", err)
	}
	return n, nil
}

// DistinctSendersSince lists who paid receiverID since the given time.
func (r *RiskRepo) DistinctSendersSince(ctx context.Context, receiverID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	query := `SELECT DISTINCT sender_id FROM transactions WHERE receiver_id = $1 AND created_at >= $2`

	rows, err := r.pool.Query(ctx, query, receiverID, since)
	if err != nil {
		return nil, fmt.Errorf("distinct senders: %w", err)
	}
	defer rows.Close()

	var senders []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan sender id: %w", err)
		}
		senders = append(senders, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sender rows: %w", err)
	}
	return senders, nil
}
