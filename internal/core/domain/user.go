package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User owns a wallet, optional bank accounts and the step-up (TOTP) state.
type User struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	PinHash       string    `json:"-"`
	Role          string    `json:"role"`
	StepUpEnabled bool      `json:"step_up_enabled"`
	StepUpSecret  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasPIN reports whether a UPI PIN has been configured.
func (u *User) HasPIN() bool {
	return u.PinHash != ""
}

// SetPassword replaces the login password hash.
func (u *User) SetPassword(h CredentialHasher, password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	hash, err := h.Hash(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// SetPIN replaces the UPI PIN hash. PINs are exactly four digits.
func (u *User) SetPIN(h CredentialHasher, pin string) error {
	if !IsValidPIN(pin) {
		return errors.New("PIN must be exactly 4 digits")
	}
	hash, err := h.Hash(pin)
	if err != nil {
		return err
	}
	u.PinHash = hash
	return nil
}

// IsValidPIN reports whether pin is a 4-digit numeric string.
func IsValidPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
