package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/internal/core/ports/mocks"
	"paysecure-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type otpTestDeps struct {
	svc     *OtpService
	store   *mocks.MockOtpStore
	creds   *mocks.MockCredentialVerifier
	metrics *mocks.MockMetrics
	now     time.Time
}

func setupOtp(t *testing.T) *otpTestDeps {
	ctrl := gomock.NewController(t)
	d := &otpTestDeps{
		store:   mocks.NewMockOtpStore(ctrl),
		creds:   mocks.NewMockCredentialVerifier(ctrl),
		metrics: mocks.NewMockMetrics(ctrl),
		now:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	d.metrics.EXPECT().ObserveOTP(gomock.Any()).AnyTimes()
	d.svc = NewOtpService(d.store, d.creds, d.metrics, 2*time.Minute, 10*time.Minute, zerolog.Nop())
	d.svc.now = func() time.Time { return d.now }
	return d
}

func TestOtpService_Initiate(t *testing.T) {
	d := setupOtp(t)
	sender, receiver := uuid.New(), uuid.New()
	bank := &domain.Account{ID: uuid.New(), Kind: domain.AccountKindBank}
	req := ports.OtpInitiateRequest{SenderID: sender, ReceiverID: receiver, Amount: 700, BankUsername: "u", BankPassword: "p"}

	d.creds.EXPECT().VerifyBankCredentials(gomock.Any(), sender, "u", "p").Return(bank, nil)
	d.store.EXPECT().Save(gomock.Any(), gomock.Any(), 12*time.Minute).Return(nil)

	ch, err := d.svc.Initiate(context.Background(), req)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, ch.Code)
	assert.Equal(t, bank.ID, ch.SourceAccountID)
	assert.Equal(t, receiver, ch.ReceiverID)
	assert.Equal(t, int64(700), ch.Amount)
	assert.Equal(t, d.now.Add(2*time.Minute), ch.ExpiresAt)
}

func TestOtpService_Initiate_BadBankCredentials(t *testing.T) {
	d := setupOtp(t)
	d.creds.EXPECT().VerifyBankCredentials(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidCredentials())

	_, err := d.svc.Initiate(context.Background(), ports.OtpInitiateRequest{SenderID: uuid.New(), Amount: 1})
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials()))
}

func TestOtpService_Check(t *testing.T) {
	sender := uuid.New()
	stored := func(now time.Time) *domain.OtpChallenge {
		return &domain.OtpChallenge{SenderID: sender, Code: "123456", ExpiresAt: now.Add(time.Minute)}
	}

	t.Run("match", func(t *testing.T) {
		d := setupOtp(t)
		d.store.EXPECT().Get(gomock.Any(), sender).Return(stored(d.now), nil)
		ch, err := d.svc.Check(context.Background(), sender, "123456")
		require.NoError(t, err)
		assert.Equal(t, "123456", ch.Code)
	})

	t.Run("not found", func(t *testing.T) {
		d := setupOtp(t)
		d.store.EXPECT().Get(gomock.Any(), sender).Return(nil, nil)
		_, err := d.svc.Check(context.Background(), sender, "123456")
		assert.True(t, errors.Is(err, apperror.ErrChallengeNotFound()))
	})

	t.Run("mismatch keeps record", func(t *testing.T) {
		d := setupOtp(t)
		d.store.EXPECT().Get(gomock.Any(), sender).Return(stored(d.now), nil)
		_, err := d.svc.Check(context.Background(), sender, "654321")
		assert.True(t, errors.Is(err, apperror.ErrChallengeMismatch()))
	})

	t.Run("expired deletes record", func(t *testing.T) {
		d := setupOtp(t)
		issuedAt := d.now
		d.now = issuedAt.Add(121 * time.Second)
		ch := &domain.OtpChallenge{SenderID: sender, Code: "123456", ExpiresAt: issuedAt.Add(2 * time.Minute)}
		d.store.EXPECT().Get(gomock.Any(), sender).Return(ch, nil)
		d.store.EXPECT().Delete(gomock.Any(), sender).Return(nil)

		_, err := d.svc.Check(context.Background(), sender, "123456")
		assert.True(t, errors.Is(err, apperror.ErrChallengeExpired()))
	})
}

func TestOtpService_Consume(t *testing.T) {
	d := setupOtp(t)
	ch := &domain.OtpChallenge{SenderID: uuid.New(), Code: "111111"}

	d.store.EXPECT().Claim(gomock.Any(), ch).Return(true, nil)
	require.NoError(t, d.svc.Consume(context.Background(), ch))

	d.store.EXPECT().Claim(gomock.Any(), ch).Return(false, nil)
	err := d.svc.Consume(context.Background(), ch)
	assert.True(t, errors.Is(err, apperror.ErrChallengeNotFound()))
}

func TestGenerateNumericCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateNumericCode(6)
		require.NoError(t, err)
		assert.Len(t, code, 6)
	}
}
