package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Rail is the payment channel a transaction settles through.
type Rail string

const (
	RailUPI  Rail = "UPI"
	RailCard Rail = "CARD"
	RailBank Rail = "BANK"
)

// Valid reports whether r is a known rail.
func (r Rail) Valid() bool {
	switch r {
	case RailUPI, RailCard, RailBank:
		return true
	}
	return false
}

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// PinPlaceholderNone is stored for rails that carry no PIN.
const PinPlaceholderNone = "N/A"

// HighValueThreshold is the amount above which step-up applies.
const HighValueThreshold int64 = 5000

var ErrInvalidTransition = errors.New("transaction status already terminal")

// Transaction is the persisted record of one payment attempt.
// SenderID, ReceiverID, Amount, Rail, PinPlaceholder and CreatedAt feed the
// HMAC and signature and are never changed after insert.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	SenderID        uuid.UUID         `json:"sender_id"`
	ReceiverID      uuid.UUID         `json:"receiver_id"`
	SourceAccountID uuid.UUID         `json:"source_account_id"`
	Amount          int64             `json:"amount"`
	Rail            Rail              `json:"rail"`
	Status          TransactionStatus `json:"status"`
	PinPlaceholder  string            `json:"-"`
	CardLast4       string            `json:"card_last4,omitempty"`
	HMAC            string            `json:"hmac"`
	Signature       *string           `json:"signature,omitempty"`
	FailureReason   string            `json:"failure_reason,omitempty"`
	RiskScore       int               `json:"risk_score"`
	RiskReasons     []string          `json:"risk_reasons"`
	RiskEvaluatedAt *time.Time        `json:"risk_evaluated_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// NewTransaction builds a PENDING transaction stamped at now, truncated to
// millisecond resolution so the stored timestamp round-trips exactly.
func NewTransaction(sender, receiver, source uuid.UUID, amount int64, rail Rail, pinPlaceholder string, now time.Time) *Transaction {
	if pinPlaceholder == "" {
		pinPlaceholder = PinPlaceholderNone
	}
	return &Transaction{
		ID:              uuid.New(),
		SenderID:        sender,
		ReceiverID:      receiver,
		SourceAccountID: source,
		Amount:          amount,
		Rail:            rail,
		Status:          TransactionStatusPending,
		PinPlaceholder:  pinPlaceholder,
		RiskReasons:     []string{},
		CreatedAt:       now.UTC().Truncate(time.Millisecond),
	}
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusSuccess || t.Status == TransactionStatusFailed
}

// MarkSucceeded moves a PENDING transaction to SUCCESS and records the risk verdict.
func (t *Transaction) MarkSucceeded(risk RiskAssessment) error {
	if t.Status != TransactionStatusPending {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, t.Status)
	}
	t.Status = TransactionStatusSuccess
	t.RiskScore = risk.Score
	t.RiskReasons = append([]string{}, risk.Reasons...)
	t.RiskEvaluatedAt = risk.EvaluatedAt
	return nil
}

// MarkFailed moves a PENDING transaction to FAILED. Failed attempts carry no risk verdict.
func (t *Transaction) MarkFailed(reason string) error {
	if t.Status != TransactionStatusPending {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, t.Status)
	}
	t.Status = TransactionStatusFailed
	t.FailureReason = reason
	return nil
}

// HMACPayload is the canonical string covered by the keyed integrity code:
// sender:receiver:amount:rail:pinPlaceholder.
func (t *Transaction) HMACPayload() string {
	return fmt.Sprintf("%s:%s:%d:%s:%s", t.SenderID, t.ReceiverID, t.Amount, t.Rail, t.PinPlaceholder)
}

// SignaturePayload is the canonical string covered by the asymmetric signature:
// sender:receiver:amount:createdAtMillis.
func (t *Transaction) SignaturePayload() string {
	return fmt.Sprintf("%s:%s:%d:%d", t.SenderID, t.ReceiverID, t.Amount, t.CreatedAt.UnixMilli())
}
