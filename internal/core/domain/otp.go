package domain

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
)

// OtpChallenge is the single outstanding bank-rail challenge of a sender.
type OtpChallenge struct {
	SenderID        uuid.UUID `json:"sender_id"`
	Code            string    `json:"code"`
	ReceiverID      uuid.UUID `json:"receiver_id"`
	Amount          int64     `json:"amount"`
	SourceAccountID uuid.UUID `json:"source_account_id"`
	ExpiresAt       time.Time `json:"expires_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsExpired reports whether now is past the challenge expiry.
func (c *OtpChallenge) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Matches compares code against the issued one in constant time.
func (c *OtpChallenge) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(c.Code), []byte(code)) == 1
}
