package service

import (
	"context"
	"fmt"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AuditChainService implements ports.AuditChain over a hash-linked log.
type AuditChainService struct {
	repo       ports.AuditRepository
	transactor ports.DBTransactor
	metrics    ports.Metrics
	now        func() time.Time
	log        zerolog.Logger
}

// NewAuditChainService creates a new AuditChainService.
func NewAuditChainService(repo ports.AuditRepository, transactor ports.DBTransactor, metrics ports.Metrics, log zerolog.Logger) *AuditChainService {
	return &AuditChainService{
		repo:       repo,
		transactor: transactor,
		metrics:    metrics,
		now:        time.Now,
		log:        log,
	}
}

// Append links a new entry to the chain head inside tx. Appenders are
// serialized by the chain lock, so two entries never share a previous hash.
func (s *AuditChainService) Append(ctx context.Context, tx pgx.Tx, actorID string, action domain.AuditAction, meta map[string]any) (*domain.AuditEntry, error) {
	if !action.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown audit action %q", action))
	}
	if actorID == "" {
		actorID = domain.SystemActor
	}

	raw, err := domain.CanonicalMeta(meta)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encode audit meta: %w", err))
	}

	if err := s.repo.LockChain(ctx, tx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock audit chain: %w", err))
	}

	prev, err := s.repo.Last(ctx, tx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("read audit head: %w", err))
	}
	previousHash := domain.GenesisHash
	if prev != nil {
		previousHash = prev.Hash
	}

	entry := &domain.AuditEntry{
		ID:           uuid.New(),
		ActorID:      actorID,
		Action:       action,
		Meta:         raw,
		Timestamp:    s.now().UTC().Truncate(time.Millisecond),
		PreviousHash: previousHash,
	}
	if entry.Hash, err = entry.ComputeHash(); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash audit entry: %w", err))
	}

	if err := s.repo.Insert(ctx, tx, entry); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("insert audit entry: %w", err))
	}

	s.metrics.ObserveAuditAppend(action)
	return entry, nil
}

// Record appends in a transaction of its own.
func (s *AuditChainService) Record(ctx context.Context, actorID string, action domain.AuditAction, meta map[string]any) (*domain.AuditEntry, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin audit tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	entry, err := s.Append(ctx, tx, actorID, action, meta)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit audit tx: %w", err))
	}
	return entry, nil
}

// VerifyChain walks the chain in append order and reports the first entry
// whose link or recomputed hash does not match.
func (s *AuditChainService) VerifyChain(ctx context.Context) (*domain.ChainVerification, error) {
	entries, err := s.repo.ListOrdered(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list audit entries: %w", err))
	}

	result := &domain.ChainVerification{Valid: true, TotalEntries: len(entries)}
	expectedPrev := domain.GenesisHash

	for i := range entries {
		e := &entries[i]
		reason := ""
		if e.PreviousHash != expectedPrev {
			reason = "previous hash does not match preceding entry"
		} else if h, err := e.ComputeHash(); err != nil || h != e.Hash {
			reason = "entry hash does not match its contents"
		}
		if reason != "" {
			idx, seq := i, e.Seq
			result.Valid = false
			result.BrokenAt = &idx
			result.BrokenSeq = &seq
			result.Reason = reason
			s.log.Warn().Int("index", i).Int64("seq", e.Seq).Str("reason", reason).Msg("audit chain broken")
			return result, nil
		}
		expectedPrev = e.Hash
	}

	return result, nil
}
