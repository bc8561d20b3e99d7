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

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mocks.NewMockCredentialVerifier(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	audit := mocks.NewMockAuditChain(ctrl)
	svc := NewAuthService(creds, tokens, audit, zerolog.Nop())

	ctx := context.Background()
	user := &domain.User{ID: uuid.New(), Email: "alice@example.com", StepUpEnabled: true}
	expiry := time.Now().Add(time.Hour)

	creds.EXPECT().VerifyPassword(ctx, "alice@example.com", "pw").Return(user, nil)
	tokens.EXPECT().Generate(user.ID, domain.RoleUser).Return("jwt-token", expiry, nil)
	audit.EXPECT().
		Record(ctx, user.ID.String(), domain.AuditActionLoginSuccess, map[string]any{"ip": "10.0.0.1"}).
		Return(&domain.AuditEntry{}, nil)

	res, err := svc.Login(ctx, "alice@example.com", "pw", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
	assert.Equal(t, user.ID, res.UserID)
	assert.True(t, res.StepUpEnabled)
}

func TestAuthService_Login_BadPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mocks.NewMockCredentialVerifier(ctrl)
	svc := NewAuthService(creds, mocks.NewMockTokenService(ctrl), mocks.NewMockAuditChain(ctrl), zerolog.Nop())

	creds.EXPECT().VerifyPassword(gomock.Any(), "a@b.c", "nope").Return(nil, apperror.ErrInvalidCredentials())

	_, err := svc.Login(context.Background(), "a@b.c", "nope", "")
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials()))
}

func TestAuthService_Login_AuditFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mocks.NewMockCredentialVerifier(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	audit := mocks.NewMockAuditChain(ctrl)
	svc := NewAuthService(creds, tokens, audit, zerolog.Nop())

	user := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
	creds.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
	tokens.EXPECT().Generate(user.ID, domain.RoleAdmin).Return("t", time.Now(), nil)
	audit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	res, err := svc.Login(context.Background(), "x", "y", "")
	require.NoError(t, err)
	assert.Equal(t, "t", res.Token)
}

// ==================== CredentialService ====================

func setupCredentials(t *testing.T) (*CredentialService, *mocks.MockUserRepository, *mocks.MockAccountRepository) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	accounts := mocks.NewMockAccountRepository(ctrl)
	return NewCredentialService(users, accounts, NewArgon2HashServiceWithParams(fastArgon2)), users, accounts
}

func TestCredentialService_VerifyPassword(t *testing.T) {
	svc, users, _ := setupCredentials(t)
	user := &domain.User{ID: uuid.New(), Email: "bob@example.com"}
	require.NoError(t, user.SetPassword(svc.hashSvc, "s3cret"))

	users.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(user, nil).Times(2)

	got, err := svc.VerifyPassword(context.Background(), "  Bob@Example.com ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.VerifyPassword(context.Background(), "bob@example.com", "wrong")
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials()))
}

func TestCredentialService_VerifyPassword_UnknownEmail(t *testing.T) {
	svc, users, _ := setupCredentials(t)
	users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	_, err := svc.VerifyPassword(context.Background(), "ghost@example.com", "x")
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials()))
}

func TestCredentialService_VerifyPIN(t *testing.T) {
	svc, _, _ := setupCredentials(t)
	user := &domain.User{ID: uuid.New()}
	require.NoError(t, user.SetPIN(svc.hashSvc, "1234"))

	assert.NoError(t, svc.VerifyPIN(context.Background(), user, "1234"))
	assert.True(t, errors.Is(svc.VerifyPIN(context.Background(), user, "4321"), apperror.ErrInvalidPIN()))
	assert.True(t, errors.Is(svc.VerifyPIN(context.Background(), user, "12a4"), apperror.ErrInvalidPIN()))
	assert.True(t, errors.Is(svc.VerifyPIN(context.Background(), &domain.User{}, "1234"), apperror.ErrInvalidPIN()))
}

func TestCredentialService_VerifyCard(t *testing.T) {
	svc, _, _ := setupCredentials(t)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	valid := ports.CardDetails{Number: "4111111111111111", ExpiryMonth: 12, ExpiryYear: 2027, CVV: "123"}
	assert.NoError(t, svc.VerifyCard(valid, now))

	bad := valid
	bad.Number = "4111111111111112"
	assert.Equal(t, "AUTH_008", apperror.CodeOf(svc.VerifyCard(bad, now)))

	expired := valid
	expired.ExpiryYear, expired.ExpiryMonth = 2026, 2
	assert.Equal(t, "AUTH_008", apperror.CodeOf(svc.VerifyCard(expired, now)))
}

func TestCredentialService_VerifyBankCredentials(t *testing.T) {
	svc, _, accounts := setupCredentials(t)
	owner := uuid.New()
	bank := &domain.Account{ID: uuid.New(), OwnerID: owner, Kind: domain.AccountKindBank, BankUsername: "alice.bank"}
	require.NoError(t, bank.SetCredential(svc.hashSvc, "bankpw"))

	accounts.EXPECT().GetBankByOwnerAndUsername(gomock.Any(), owner, "alice.bank").Return(bank, nil).Times(2)
	accounts.EXPECT().GetBankByOwnerAndUsername(gomock.Any(), owner, "other").Return(nil, nil)

	got, err := svc.VerifyBankCredentials(context.Background(), owner, "alice.bank", "bankpw")
	require.NoError(t, err)
	assert.Equal(t, bank.ID, got.ID)

	_, err = svc.VerifyBankCredentials(context.Background(), owner, "alice.bank", "nope")
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials()))

	_, err = svc.VerifyBankCredentials(context.Background(), owner, "other", "bankpw")
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials()))
}
