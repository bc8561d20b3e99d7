package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type riskTestDeps struct {
	svc      *RiskService
	history  *mocks.MockRiskRepository
	users    *mocks.MockUserRepository
	accounts *mocks.MockAccountRepository
	metrics  *mocks.MockMetrics
}

func setupRisk(t *testing.T, timeout time.Duration) *riskTestDeps {
	return setupRiskPool(t, timeout, 8)
}

func setupRiskPool(t *testing.T, timeout time.Duration, poolSize int) *riskTestDeps {
	ctrl := gomock.NewController(t)
	d := &riskTestDeps{
		history:  mocks.NewMockRiskRepository(ctrl),
		users:    mocks.NewMockUserRepository(ctrl),
		accounts: mocks.NewMockAccountRepository(ctrl),
		metrics:  mocks.NewMockMetrics(ctrl),
	}
	d.metrics.EXPECT().ObserveRiskScore(gomock.Any()).AnyTimes()
	svc, err := NewRiskService(d.history, d.users, d.accounts, d.metrics, RiskConfig{PoolSize: poolSize, Timeout: timeout}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	d.svc = svc
	return d
}

type riskFixture struct {
	avg        float64
	hasAvg     bool
	recent     int
	senders    []uuid.UUID
	userAge    time.Duration
	preBalance int64
}

func (d *riskTestDeps) expect(c domain.RiskCandidate, f riskFixture) {
	d.history.EXPECT().AverageSuccessfulAmount(gomock.Any(), c.SenderID, gomock.Any()).Return(f.avg, f.hasAvg, nil).AnyTimes()
	d.history.EXPECT().CountSentSince(gomock.Any(), c.SenderID, gomock.Any()).Return(f.recent, nil)
	d.history.EXPECT().DistinctSendersSince(gomock.Any(), c.ReceiverID, gomock.Any()).Return(f.senders, nil)
	d.users.EXPECT().GetByID(gomock.Any(), c.SenderID).Return(&domain.User{ID: c.SenderID, CreatedAt: c.At.Add(-f.userAge)}, nil)
	d.accounts.EXPECT().GetByID(gomock.Any(), c.SourceAccountID).Return(&domain.Account{ID: c.SourceAccountID, Balance: f.preBalance}, nil)
}

func newCandidate(amount int64) domain.RiskCandidate {
	return domain.RiskCandidate{
		SenderID:        uuid.New(),
		ReceiverID:      uuid.New(),
		SourceAccountID: uuid.New(),
		Amount:          amount,
		Rail:            domain.RailUPI,
		At:              time.Now().UTC(),
	}
}

func reasonTags(reasons []string) []string {
	tags := make([]string, 0, len(reasons))
	for _, r := range reasons {
		for i := 0; i < len(r); i++ {
			if r[i] == ':' {
				tags = append(tags, r[:i])
				break
			}
		}
	}
	return tags
}

func TestRisk_QuietPayment(t *testing.T) {
	d := setupRisk(t, time.Second)
	c := newCandidate(100)
	d.expect(c, riskFixture{avg: 120, hasAvg: true, userAge: 30 * 24 * time.Hour, preBalance: 5000})

	got := d.svc.Score(context.Background(), c)
	assert.Zero(t, got.Score)
	assert.Empty(t, got.Reasons)
	assert.NotNil(t, got.EvaluatedAt)
}

func TestRisk_FullDrainOfWallet(t *testing.T) {
	d := setupRisk(t, time.Second)
	c := newCandidate(5000)
	d.expect(c, riskFixture{userAge: 48 * time.Hour, preBalance: 5000})

	got := d.svc.Score(context.Background(), c)
	assert.Equal(t, 15, got.Score)
	assert.Equal(t, []string{"balance-drain"}, reasonTags(got.Reasons))
}

func TestRisk_FifthTransactionTriggersVelocity(t *testing.T) {
	d := setupRisk(t, time.Second)
	c := newCandidate(10)
	d.expect(c, riskFixture{recent: 4, userAge: 48 * time.Hour, preBalance: 5000})

	got := d.svc.Score(context.Background(), c)
	assert.Equal(t, 30, got.Score)
	assert.Equal(t, []string{"velocity"}, reasonTags(got.Reasons))
}

func TestRisk_FourthTransactionDoesNotTriggerVelocity(t *testing.T) {
	d := setupRisk(t, time.Second)
	c := newCandidate(10)
	d.expect(c, riskFixture{recent: 3, userAge: 48 * time.Hour, preBalance: 5000})

	assert.Zero(t, d.svc.Score(context.Background(), c).Score)
}

func TestRisk_DynamicLargeAmount(t *testing.T) {
	d := setupRisk(t, time.Second)
	c := newCandidate(3500)
	d.expect(c, riskFixture{avg: 200, hasAvg: true, userAge: 48 * time.Hour, preBalance: 100000})

	got := d.svc.Score(context.Background(), c)
	assert.Equal(t, 35, got.Score)
	assert.Equal(t, []string{"large-amount"}, reasonTags(got.Reasons))
}

func TestRisk_AllHeuristicsClampAndOrder(t *testing.T) {
	d := setupRisk(t, time.Second)
	c := newCandidate(6000)
	d.expect(c, riskFixture{
		recent:     9,
		senders:    []uuid.UUID{uuid.New(), uuid.New()},
		userAge:    time.Hour,
		preBalance: 6000,
	})

	got := d.svc.Score(context.Background(), c)
	assert.Equal(t, domain.MaxRiskScore, got.Score)
	assert.Equal(t, []string{"large-amount", "velocity", "new-account", "balance-drain", "fan-in"}, reasonTags(got.Reasons))
}

func TestRisk_FanInCountsCandidateOnce(t *testing.T) {
	d := setupRisk(t, time.Second)
	c := newCandidate(10)
	// the candidate sender already paid this receiver, so only two distinct senders
	d.expect(c, riskFixture{senders: []uuid.UUID{c.SenderID, uuid.New()}, userAge: 48 * time.Hour, preBalance: 5000})

	assert.Zero(t, d.svc.Score(context.Background(), c).Score)
}

func TestRisk_FailingHeuristicIsSkipped(t *testing.T) {
	d := setupRisk(t, time.Second)
	c := newCandidate(5000)
	d.metrics.EXPECT().ObserveRiskHeuristicFailure("new_account")
	d.history.EXPECT().AverageSuccessfulAmount(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, false, nil).AnyTimes()
	d.history.EXPECT().CountSentSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	d.history.EXPECT().DistinctSendersSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	d.accounts.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.Account{Balance: 5000}, nil)

	got := d.svc.Score(context.Background(), c)
	assert.Equal(t, 15, got.Score)
}

func TestRisk_StalledHeuristicKeepsFinishedVerdicts(t *testing.T) {
	d := setupRisk(t, 50*time.Millisecond)
	c := newCandidate(6000)
	d.metrics.EXPECT().ObserveRiskHeuristicFailure("fan_in")
	d.history.EXPECT().AverageSuccessfulAmount(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, false, nil).AnyTimes()
	d.history.EXPECT().CountSentSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(10, nil)
	d.history.EXPECT().DistinctSendersSince(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID, _ time.Time) ([]uuid.UUID, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	d.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.User{CreatedAt: c.At}, nil)
	d.accounts.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.Account{Balance: 6000}, nil)

	got := d.svc.Score(context.Background(), c)
	assert.Equal(t, domain.MaxRiskScore, got.Score) // 40+30+20+15 clamped
	assert.Equal(t, []string{"large-amount", "velocity", "new-account", "balance-drain"}, reasonTags(got.Reasons))
	assert.NotNil(t, got.EvaluatedAt)
}

func TestRisk_NothingFinishedYieldsNotEvaluated(t *testing.T) {
	d := setupRisk(t, 20*time.Millisecond)
	c := newCandidate(10)
	d.metrics.EXPECT().ObserveRiskHeuristicFailure(gomock.Any()).Times(5)
	d.history.EXPECT().AverageSuccessfulAmount(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID, _ time.Time) (float64, bool, error) {
			<-ctx.Done()
			return 0, false, ctx.Err()
		})
	d.history.EXPECT().CountSentSince(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID, _ time.Time) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})
	d.history.EXPECT().DistinctSendersSince(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID, _ time.Time) ([]uuid.UUID, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	d.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID) (*domain.User, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	d.accounts.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID) (*domain.Account, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	got := d.svc.Score(context.Background(), c)
	assert.Zero(t, got.Score)
	assert.Empty(t, got.Reasons)
	assert.Nil(t, got.EvaluatedAt)
}

func TestRisk_SaturatedPoolDoesNotBlock(t *testing.T) {
	d := setupRiskPool(t, 50*time.Millisecond, 1)
	c := newCandidate(10)
	d.metrics.EXPECT().ObserveRiskHeuristicFailure(gomock.Any()).Times(5)
	// large_amount occupies the only worker until the deadline, so every other
	// heuristic is rejected by the pool instead of queueing behind it.
	d.history.EXPECT().AverageSuccessfulAmount(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID, _ time.Time) (float64, bool, error) {
			<-ctx.Done()
			return 0, false, ctx.Err()
		})

	start := time.Now()
	got := d.svc.Score(context.Background(), c)
	assert.Less(t, time.Since(start), time.Second)
	assert.Nil(t, got.EvaluatedAt)
}
