package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/pkg/apperror"

	"github.com/google/uuid"
)

// CredentialService implements ports.CredentialVerifier on top of stored
// Argon2id hashes.
type CredentialService struct {
	users    ports.UserRepository
	accounts ports.AccountRepository
	hashSvc  ports.HashService
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(users ports.UserRepository, accounts ports.AccountRepository, hashSvc ports.HashService) *CredentialService {
	return &CredentialService{users: users, accounts: accounts, hashSvc: hashSvc}
}

// VerifyPassword returns the user owning email when password matches.
func (s *CredentialService) VerifyPassword(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials()
	}
	if err := s.check(password, user.PasswordHash, apperror.ErrInvalidCredentials()); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyPIN checks a UPI PIN against the user's stored PIN hash.
func (s *CredentialService) VerifyPIN(_ context.Context, user *domain.User, pin string) error {
	if user == nil || !user.HasPIN() || !domain.IsValidPIN(pin) {
		return apperror.ErrInvalidPIN()
	}
	return s.check(pin, user.PinHash, apperror.ErrInvalidPIN())
}

// VerifyCard applies the card-rail validity rules. There is no stored card
// record to compare against.
func (s *CredentialService) VerifyCard(card ports.CardDetails, now time.Time) error {
	if err := domain.ValidateCard(card.Number, card.ExpiryMonth, card.ExpiryYear, card.CVV, now); err != nil {
		return apperror.ErrInvalidCard(err.Error())
	}
	return nil
}

// VerifyBankCredentials returns the owner's linked bank account matching
// bankUsername when password matches its credential hash.
func (s *CredentialService) VerifyBankCredentials(ctx context.Context, ownerID uuid.UUID, bankUsername string, password string) (*domain.Account, error) {
	account, err := s.accounts.GetBankByOwnerAndUsername(ctx, ownerID, bankUsername)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find bank account: %w", err))
	}
	if account == nil || account.CredentialHash == "" {
		return nil, apperror.ErrInvalidCredentials()
	}
	if err := s.check(password, account.CredentialHash, apperror.ErrInvalidCredentials()); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *CredentialService) check(secret, hash string, mismatch *apperror.AppError) error {
	ok, err := s.hashSvc.Verify(secret, hash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("verify credential: %w", err))
	}
	if !ok {
		return mismatch
	}
	return nil
}
