package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports/mocks"
	"paysecure-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

type auditTestDeps struct {
	svc        *AuditChainService
	repo       *mocks.MockAuditRepository
	transactor *mocks.MockDBTransactor
}

func setupAudit(t *testing.T) *auditTestDeps {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveAuditAppend(gomock.Any()).AnyTimes()
	d := &auditTestDeps{
		repo:       mocks.NewMockAuditRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
	}
	d.svc = NewAuditChainService(d.repo, d.transactor, metrics, zerolog.Nop())
	return d
}

// buildChain links n entries the same way Append does.
func buildChain(t *testing.T, n int) []domain.AuditEntry {
	t.Helper()
	entries := make([]domain.AuditEntry, 0, n)
	prev := domain.GenesisHash
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		meta, err := domain.CanonicalMeta(map[string]any{"amount": 100 * (i + 1)})
		require.NoError(t, err)
		e := domain.AuditEntry{
			Seq:          int64(i + 1),
			ID:           uuid.New(),
			ActorID:      "user-1",
			Action:       domain.AuditActionTransactionSuccess,
			Meta:         meta,
			Timestamp:    base.Add(time.Duration(i) * time.Second),
			PreviousHash: prev,
		}
		e.Hash, err = e.ComputeHash()
		require.NoError(t, err)
		prev = e.Hash
		entries = append(entries, e)
	}
	return entries
}

func TestAuditChain_Append_Genesis(t *testing.T) {
	d := setupAudit(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.repo.EXPECT().LockChain(ctx, tx).Return(nil)
	d.repo.EXPECT().Last(ctx, tx).Return(nil, nil)
	d.repo.EXPECT().Insert(ctx, tx, gomock.Any()).Return(nil)

	entry, err := d.svc.Append(ctx, tx, "user-1", domain.AuditActionLoginSuccess, map[string]any{"ip": "1.1.1.1"})
	require.NoError(t, err)
	assert.Equal(t, domain.GenesisHash, entry.PreviousHash)
	assert.JSONEq(t, `{"ip":"1.1.1.1"}`, string(entry.Meta))

	h, err := entry.ComputeHash()
	require.NoError(t, err)
	assert.Equal(t, h, entry.Hash)
}

func TestAuditChain_Append_LinksToHead(t *testing.T) {
	d := setupAudit(t)
	head := buildChain(t, 1)[0]
	tx := &mockTx{}

	d.repo.EXPECT().LockChain(gomock.Any(), tx).Return(nil)
	d.repo.EXPECT().Last(gomock.Any(), tx).Return(&head, nil)
	d.repo.EXPECT().Insert(gomock.Any(), tx, gomock.Any()).Return(nil)

	entry, err := d.svc.Append(context.Background(), tx, "", domain.AuditActionChainVerified, nil)
	require.NoError(t, err)
	assert.Equal(t, head.Hash, entry.PreviousHash)
	assert.Equal(t, domain.SystemActor, entry.ActorID)
	assert.Equal(t, json.RawMessage("{}"), entry.Meta)
}

func TestAuditChain_Append_RejectsUnknownAction(t *testing.T) {
	d := setupAudit(t)
	_, err := d.svc.Append(context.Background(), &mockTx{}, "u", domain.AuditAction("DELETE_EVERYTHING"), nil)
	assert.Equal(t, "VAL_001", apperror.CodeOf(err))
}

func TestAuditChain_Record_UsesOwnTransaction(t *testing.T) {
	d := setupAudit(t)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.repo.EXPECT().LockChain(gomock.Any(), tx).Return(nil)
	d.repo.EXPECT().Last(gomock.Any(), tx).Return(nil, nil)
	d.repo.EXPECT().Insert(gomock.Any(), tx, gomock.Any()).Return(nil)

	_, err := d.svc.Record(context.Background(), "u", domain.AuditActionOTPInitiated, map[string]any{"amount": 10})
	require.NoError(t, err)
}

func TestAuditChain_Record_InsertFailure(t *testing.T) {
	d := setupAudit(t)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.repo.EXPECT().LockChain(gomock.Any(), tx).Return(nil)
	d.repo.EXPECT().Last(gomock.Any(), tx).Return(nil, nil)
	d.repo.EXPECT().Insert(gomock.Any(), tx, gomock.Any()).Return(errors.New("disk full"))

	_, err := d.svc.Record(context.Background(), "u", domain.AuditActionOTPInitiated, nil)
	assert.Equal(t, "SYS_001", apperror.CodeOf(err))
}

func TestAuditChain_VerifyChain_Intact(t *testing.T) {
	d := setupAudit(t)
	d.repo.EXPECT().ListOrdered(gomock.Any()).Return(buildChain(t, 5), nil)

	res, err := d.svc.VerifyChain(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, 5, res.TotalEntries)
	assert.Nil(t, res.BrokenAt)
}

func TestAuditChain_VerifyChain_Empty(t *testing.T) {
	d := setupAudit(t)
	d.repo.EXPECT().ListOrdered(gomock.Any()).Return(nil, nil)

	res, err := d.svc.VerifyChain(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Zero(t, res.TotalEntries)
}

func TestAuditChain_VerifyChain_MutatedMeta(t *testing.T) {
	d := setupAudit(t)
	chain := buildChain(t, 5)
	chain[2].Meta = json.RawMessage(`{"amount":1}`)
	d.repo.EXPECT().ListOrdered(gomock.Any()).Return(chain, nil)

	res, err := d.svc.VerifyChain(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.NotNil(t, res.BrokenAt)
	assert.Equal(t, 2, *res.BrokenAt)
	assert.Equal(t, int64(3), *res.BrokenSeq)
	assert.Contains(t, res.Reason, "hash")
}

func TestAuditChain_VerifyChain_BrokenLink(t *testing.T) {
	d := setupAudit(t)
	chain := buildChain(t, 3)
	chain[1].PreviousHash = "deadbeef"
	d.repo.EXPECT().ListOrdered(gomock.Any()).Return(chain, nil)

	res, err := d.svc.VerifyChain(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 1, *res.BrokenAt)
	assert.Contains(t, res.Reason, "previous hash")
}
