package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const otpDigits = 6

// OtpService implements ports.OtpChallengeService.
type OtpService struct {
	store     ports.OtpStore
	creds     ports.CredentialVerifier
	metrics   ports.Metrics
	ttl       time.Duration
	retention time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewOtpService creates a new OtpService. Records are kept in the store for
// ttl+retention so an expired challenge can still be reported as expired.
func NewOtpService(store ports.OtpStore, creds ports.CredentialVerifier, metrics ports.Metrics, ttl, retention time.Duration, log zerolog.Logger) *OtpService {
	return &OtpService{
		store:     store,
		creds:     creds,
		metrics:   metrics,
		ttl:       ttl,
		retention: retention,
		now:       time.Now,
		log:       log,
	}
}

// Initiate verifies the bank credentials and replaces the sender's
// outstanding challenge with a fresh one.
func (s *OtpService) Initiate(ctx context.Context, req ports.OtpInitiateRequest) (*domain.OtpChallenge, error) {
	account, err := s.creds.VerifyBankCredentials(ctx, req.SenderID, req.BankUsername, req.BankPassword)
	if err != nil {
		return nil, err
	}

	code, err := generateNumericCode(otpDigits)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate otp: %w", err))
	}

	now := s.now().UTC()
	challenge := &domain.OtpChallenge{
		SenderID:        req.SenderID,
		Code:            code,
		ReceiverID:      req.ReceiverID,
		Amount:          req.Amount,
		SourceAccountID: account.ID,
		ExpiresAt:       now.Add(s.ttl),
		CreatedAt:       now,
	}

	if err := s.store.Save(ctx, challenge, s.ttl+s.retention); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store otp: %w", err))
	}

	s.metrics.ObserveOTP("issued")
	s.log.Debug().
		Str("sender_id", req.SenderID.String()).
		Time("expires_at", challenge.ExpiresAt).
		Msg("otp challenge issued")

	return challenge, nil
}

// Check returns the sender's challenge if it exists, has not expired and
// code matches. An expired challenge is deleted.
func (s *OtpService) Check(ctx context.Context, senderID uuid.UUID, code string) (*domain.OtpChallenge, error) {
	challenge, err := s.store.Get(ctx, senderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load otp: %w", err))
	}
	if challenge == nil {
		s.metrics.ObserveOTP("not_found")
		return nil, apperror.ErrChallengeNotFound()
	}

	if challenge.IsExpired(s.now()) {
		if err := s.store.Delete(ctx, senderID); err != nil {
			s.log.Warn().Err(err).Str("sender_id", senderID.String()).Msg("failed to delete expired otp")
		}
		s.metrics.ObserveOTP("expired")
		return nil, apperror.ErrChallengeExpired()
	}

	if !challenge.Matches(code) {
		s.metrics.ObserveOTP("mismatch")
		return nil, apperror.ErrChallengeMismatch()
	}

	return challenge, nil
}

// Consume claims a checked challenge. Losing the claim to a concurrent
// verifier, or to a newer initiation, reads as not found.
func (s *OtpService) Consume(ctx context.Context, challenge *domain.OtpChallenge) error {
	ok, err := s.store.Claim(ctx, challenge)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("claim otp: %w", err))
	}
	if !ok {
		s.metrics.ObserveOTP("not_found")
		return apperror.ErrChallengeNotFound()
	}
	s.metrics.ObserveOTP("consumed")
	return nil
}

// Invalidate drops the sender's outstanding challenge, if any.
func (s *OtpService) Invalidate(ctx context.Context, senderID uuid.UUID) error {
	if err := s.store.Delete(ctx, senderID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete otp: %w", err))
	}
	return nil
}

func generateNumericCode(digits int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
