package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditAction is the closed set of events recorded on the audit chain.
type AuditAction string

const (
	AuditActionLoginSuccess       AuditAction = "USER_LOGIN_SUCCESS"
	AuditActionStepUpEnabled      AuditAction = "STEP_UP_ENABLED"
	AuditActionOTPInitiated       AuditAction = "OTP_INITIATED"
	AuditActionTransactionSuccess AuditAction = "TRANSACTION_SUCCESS"
	AuditActionTransactionFailed  AuditAction = "TRANSACTION_FAILED"
	AuditActionSignatureVerified  AuditAction = "SIGNATURE_VERIFIED"
	AuditActionChainVerified      AuditAction = "AUDIT_CHAIN_VERIFIED"
)

// Valid reports whether a is part of the enumeration.
func (a AuditAction) Valid() bool {
	switch a {
	case AuditActionLoginSuccess, AuditActionStepUpEnabled, AuditActionOTPInitiated,
		AuditActionTransactionSuccess, AuditActionTransactionFailed,
		AuditActionSignatureVerified, AuditActionChainVerified:
		return true
	}
	return false
}

// GenesisHash is the previous hash of the first entry in the chain.
const GenesisHash = "GENESIS"

// SystemActor is used for entries not attributable to a user.
const SystemActor = "system"

const auditTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// AuditEntry is one hash-linked record. Meta holds the exact JSON bytes that
// were hashed; it is stored verbatim.
type AuditEntry struct {
	Seq          int64           `json:"seq"`
	ID           uuid.UUID       `json:"id"`
	ActorID      string          `json:"actor_id"`
	Action       AuditAction     `json:"action"`
	Meta         json.RawMessage `json:"meta"`
	Timestamp    time.Time       `json:"timestamp"`
	PreviousHash string          `json:"previous_hash"`
	Hash         string          `json:"hash"`
}

type auditHashInput struct {
	ActorID      string          `json:"actorId"`
	Action       AuditAction     `json:"action"`
	Meta         json.RawMessage `json:"meta"`
	PreviousHash string          `json:"previousHash"`
	Timestamp    string          `json:"timestamp"`
}

// ComputeHash returns the SHA-256 hex digest of the entry's canonical form.
func (e *AuditEntry) ComputeHash() (string, error) {
	meta := e.Meta
	if len(meta) == 0 {
		meta = json.RawMessage("{}")
	}
	b, err := json.Marshal(auditHashInput{
		ActorID:      e.ActorID,
		Action:       e.Action,
		Meta:         meta,
		PreviousHash: e.PreviousHash,
		Timestamp:    e.Timestamp.UTC().Format(auditTimeLayout),
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// CanonicalMeta serializes meta with sorted keys. A nil map becomes {}.
func CanonicalMeta(meta map[string]any) (json.RawMessage, error) {
	if meta == nil {
		return json.RawMessage("{}"), nil
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ChainVerification is the result of walking the audit chain.
type ChainVerification struct {
	Valid        bool   `json:"valid"`
	TotalEntries int    `json:"total_entries"`
	BrokenAt     *int   `json:"broken_at,omitempty"`
	BrokenSeq    *int64 `json:"broken_seq,omitempty"`
	Reason       string `json:"reason,omitempty"`
}
