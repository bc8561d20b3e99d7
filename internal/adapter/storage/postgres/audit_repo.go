package postgres

import (
	"context"
	"errors"
	"fmt"

	"paysecure-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// auditChainLockKey identifies the advisory lock that serializes appenders.
const auditChainLockKey int64 = 7300001

const auditColumns = `seq, id, actor_id, action, meta, ts, previous_hash, hash`

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// LockChain takes a transaction-scoped advisory lock on the chain head.
func (r *AuditRepo) LockChain(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, auditChainLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	return nil
}

// Last returns the newest entry, or nil for an empty chain.
func (r *AuditRepo) Last(ctx context.Context, tx pgx.Tx) (*domain.AuditEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_entries ORDER BY seq DESC LIMIT 1`

	e, err := scanAuditEntry(tx.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last audit entry: %w", err)
	}
	return e, nil
}

// Insert appends e and fills in its sequence number.
func (r *AuditRepo) Insert(ctx context.Context, tx pgx.Tx, e *domain.AuditEntry) error {
	query := `INSERT INTO audit_entries (id, actor_id, action, meta, ts, previous_hash, hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING seq`

	err := tx.QueryRow(ctx, query,
		e.ID, e.ActorID, e.Action, string(e.Meta), e.Timestamp, e.PreviousHash, e.Hash,
	).Scan(&e.Seq)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListOrdered returns the whole chain in append order.
func (r *AuditRepo) ListOrdered(ctx context.Context) ([]domain.AuditEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_entries ORDER BY seq ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		e, err := scanAuditEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}
	return entries, nil
}

func scanAuditEntry(row pgx.Row) (*domain.AuditEntry, error) {
	e := &domain.AuditEntry{}
	var meta string
	if err := row.Scan(&e.Seq, &e.ID, &e.ActorID, &e.Action, &meta, &e.Timestamp, &e.PreviousHash, &e.Hash); err != nil {
		return nil, err
	}
	e.Meta = []byte(meta)
	e.Timestamp = e.Timestamp.UTC()
	return e, nil
}
