package service

import (
	"context"
	"fmt"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	creds    ports.CredentialVerifier
	tokenSvc ports.TokenService
	audit    ports.AuditChain
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	creds ports.CredentialVerifier,
	tokenSvc ports.TokenService,
	audit ports.AuditChain,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		creds:    creds,
		tokenSvc: tokenSvc,
		audit:    audit,
		log:      log,
	}
}

// Login validates the password and issues a session token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password, clientIP string) (*ports.LoginResult, error) {
	user, err := s.creds.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}
	token, expiry, err := s.tokenSvc.Generate(user.ID, role)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	if _, err := s.audit.Record(ctx, user.ID.String(), domain.AuditActionLoginSuccess, map[string]any{
		"ip": clientIP,
	}); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("failed to audit login")
	}

	return &ports.LoginResult{
		Token:         token,
		ExpiresAt:     expiry,
		UserID:        user.ID,
		StepUpEnabled: user.StepUpEnabled,
	}, nil
}
