package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports/mocks"
	"paysecure-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTOTPSecret = "JBSWY3DPEHPK3PXP"

func setupStepUp(t *testing.T) (*StepUpService, *mocks.MockUserRepository, *mocks.MockAuditChain) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	audit := mocks.NewMockAuditChain(ctrl)
	return NewStepUpService(users, audit, "PaySecure", zerolog.Nop()), users, audit
}

func TestStepUp_Required(t *testing.T) {
	svc, _, _ := setupStepUp(t)

	assert.False(t, svc.Required(5000, true))
	assert.True(t, svc.Required(5001, true))
	assert.False(t, svc.Required(6000, false))
}

func TestStepUp_Verify_Window(t *testing.T) {
	svc, _, _ := setupStepUp(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	current, err := totp.GenerateCode(testTOTPSecret, now)
	require.NoError(t, err)
	previous, err := totp.GenerateCode(testTOTPSecret, now.Add(-30*time.Second))
	require.NoError(t, err)
	stale, err := totp.GenerateCode(testTOTPSecret, now.Add(-90*time.Second))
	require.NoError(t, err)

	assert.True(t, svc.Verify(current, testTOTPSecret))
	assert.True(t, svc.Verify(previous, testTOTPSecret))
	assert.False(t, svc.Verify(stale, testTOTPSecret))
	assert.False(t, svc.Verify(current, ""))
	assert.False(t, svc.Verify("12345", testTOTPSecret))
}

func TestStepUp_Setup_StoresDisabledSecret(t *testing.T) {
	svc, users, _ := setupStepUp(t)
	user := &domain.User{ID: uuid.New(), Email: "alice@example.com"}

	users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	var stored string
	users.EXPECT().UpdateStepUp(gomock.Any(), user.ID, gomock.Any(), false).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, secret string, _ bool) error {
			stored = secret
			return nil
		})

	setup, err := svc.Setup(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, setup.Secret)
	assert.Contains(t, setup.OTPAuthURL, "otpauth://totp/")
	assert.Contains(t, setup.OTPAuthURL, "PaySecure")
}

func TestStepUp_Setup_AlreadyEnabled(t *testing.T) {
	svc, users, _ := setupStepUp(t)
	user := &domain.User{ID: uuid.New(), StepUpEnabled: true, StepUpSecret: testTOTPSecret}
	users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	_, err := svc.Setup(context.Background(), user.ID)
	assert.Equal(t, "VAL_001", apperror.CodeOf(err))
}

func TestStepUp_Enable(t *testing.T) {
	svc, users, audit := setupStepUp(t)
	now := time.Now()
	svc.now = func() time.Time { return now }
	user := &domain.User{ID: uuid.New(), StepUpSecret: testTOTPSecret}
	code, err := totp.GenerateCode(testTOTPSecret, now)
	require.NoError(t, err)

	users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	users.EXPECT().UpdateStepUp(gomock.Any(), user.ID, testTOTPSecret, true).Return(nil)
	audit.EXPECT().Record(gomock.Any(), user.ID.String(), domain.AuditActionStepUpEnabled, nil).Return(&domain.AuditEntry{}, nil)

	require.NoError(t, svc.Enable(context.Background(), user.ID, code))
}

func TestStepUp_Enable_WrongCodeLeavesDisabled(t *testing.T) {
	svc, users, _ := setupStepUp(t)
	user := &domain.User{ID: uuid.New(), StepUpSecret: testTOTPSecret}
	users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	err := svc.Enable(context.Background(), user.ID, "000000")
	assert.True(t, errors.Is(err, apperror.ErrStepUpInvalid()))
}

func TestStepUp_Enable_WithoutSetup(t *testing.T) {
	svc, users, _ := setupStepUp(t)
	user := &domain.User{ID: uuid.New()}
	users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	err := svc.Enable(context.Background(), user.ID, "123456")
	assert.True(t, errors.Is(err, apperror.ErrStepUpNotConfigured()))
}
