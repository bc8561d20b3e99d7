package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AccountKind distinguishes a user's wallet from a linked bank account.
type AccountKind string

const (
	AccountKindWallet AccountKind = "WALLET"
	AccountKindBank   AccountKind = "BANK"
)

// Default opening balances for seeded accounts.
const (
	DefaultWalletBalance int64 = 5000
	DefaultBankBalance   int64 = 10000
)

// CredentialHasher produces one-way hashes for secrets stored on accounts and users.
type CredentialHasher interface {
	Hash(secret string) (string, error)
}

// Account holds a non-negative balance. Balances change only through the ledger.
type Account struct {
	ID             uuid.UUID   `json:"id"`
	OwnerID        uuid.UUID   `json:"owner_id"`
	Kind           AccountKind `json:"kind"`
	Balance        int64       `json:"balance"`
	BankUsername   string      `json:"bank_username,omitempty"`
	AccountNumber  string      `json:"account_number,omitempty"`
	CredentialHash string      `json:"-"`
	Version        int64       `json:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// CanDebit reports whether amount can leave the account without going negative.
func (a *Account) CanDebit(amount int64) bool {
	return amount > 0 && a.Balance >= amount
}

// Age returns how long the account has existed at now.
func (a *Account) Age(now time.Time) time.Duration {
	return now.Sub(a.CreatedAt)
}

// SetCredential hashes secret and stores it as the bank login credential.
func (a *Account) SetCredential(h CredentialHasher, secret string) error {
	if a.Kind != AccountKindBank {
		return errors.New("credentials can only be set on bank accounts")
	}
	if secret == "" {
		return errors.New("credential must not be empty")
	}
	hash, err := h.Hash(secret)
	if err != nil {
		return err
	}
	a.CredentialHash = hash
	return nil
}
