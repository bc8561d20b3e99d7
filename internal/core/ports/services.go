package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// HashService handles credential hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// TokenService handles JWT session tokens.
type TokenService interface {
	Generate(userID uuid.UUID, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

// Signer attests transactions with a keyed digest and an asymmetric signature.
type Signer interface {
	HMAC(payload string) string
	VerifyHMAC(payload string, code string) bool
	Sign(payload string) (string, error)
	Verify(payload string, signature string) bool
	PublicKeyPEM() string
}

// CardDetails is the card-rail secret as submitted by the payer.
type CardDetails struct {
	Number      string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
}

// CredentialVerifier checks user-supplied secrets against stored hashes.
type CredentialVerifier interface {
	VerifyPassword(ctx context.Context, email string, password string) (*domain.User, error)
	VerifyPIN(ctx context.Context, user *domain.User, pin string) error
	VerifyCard(card CardDetails, now time.Time) error
	VerifyBankCredentials(ctx context.Context, ownerID uuid.UUID, bankUsername string, password string) (*domain.Account, error)
}

// StepUpSetup is returned once when a fresh TOTP secret is generated.
type StepUpSetup struct {
	Secret     string
	OTPAuthURL string
}

// StepUpAuthenticator decides and verifies TOTP step-up for high-value payments.
type StepUpAuthenticator interface {
	Required(amount int64, enabled bool) bool
	Verify(code string, secret string) bool
	Setup(ctx context.Context, userID uuid.UUID) (*StepUpSetup, error)
	Enable(ctx context.Context, userID uuid.UUID, code string) error
}

// OtpStore keeps at most one challenge per sender with TTL semantics.
type OtpStore interface {
	Save(ctx context.Context, challenge *domain.OtpChallenge, ttl time.Duration) error
	Get(ctx context.Context, senderID uuid.UUID) (*domain.OtpChallenge, error)
	// Claim deletes the stored challenge only if it is still the one given.
	// It returns false when another caller consumed or replaced it first.
	Claim(ctx context.Context, challenge *domain.OtpChallenge) (bool, error)
	Delete(ctx context.Context, senderID uuid.UUID) error
}

// OtpInitiateRequest binds a bank-rail challenge to its payment.
type OtpInitiateRequest struct {
	SenderID     uuid.UUID
	ReceiverID   uuid.UUID
	Amount       int64
	BankUsername string
	BankPassword string
}

// OtpChallengeService issues and checks bank-rail OTP challenges.
type OtpChallengeService interface {
	Initiate(ctx context.Context, req OtpInitiateRequest) (*domain.OtpChallenge, error)
	// Check returns the outstanding challenge when code matches and it has not expired.
	Check(ctx context.Context, senderID uuid.UUID, code string) (*domain.OtpChallenge, error)
	// Consume removes a checked challenge exactly once.
	Consume(ctx context.Context, challenge *domain.OtpChallenge) error
	Invalidate(ctx context.Context, senderID uuid.UUID) error
}

// Ledger applies debit/credit pairs atomically inside tx.
type Ledger interface {
	Transfer(ctx context.Context, tx pgx.Tx, debitID, creditID uuid.UUID, amount int64) (newDebit int64, newCredit int64, err error)
}

// RiskEngine scores a candidate payment. It never fails; heuristic errors are skipped.
type RiskEngine interface {
	Score(ctx context.Context, candidate domain.RiskCandidate) domain.RiskAssessment
}

// AuditChain appends hash-linked audit entries and validates the chain.
type AuditChain interface {
	// Append links a new entry inside the caller's transaction.
	Append(ctx context.Context, tx pgx.Tx, actorID string, action domain.AuditAction, meta map[string]any) (*domain.AuditEntry, error)
	// Record appends in its own transaction.
	Record(ctx context.Context, actorID string, action domain.AuditAction, meta map[string]any) (*domain.AuditEntry, error)
	VerifyChain(ctx context.Context) (*domain.ChainVerification, error)
}

// EventPublisher emits post-commit transaction events.
type EventPublisher interface {
	PublishTransaction(ctx context.Context, event domain.TransactionEvent) error
	Close() error
}

// Metrics records pipeline counters and distributions.
type Metrics interface {
	ObservePayment(rail domain.Rail, status domain.TransactionStatus)
	ObserveRiskScore(score int)
	ObserveRiskHeuristicFailure(heuristic string)
	ObserveAuditAppend(action domain.AuditAction)
	ObserveOTP(outcome string)
}

// RateLimitResult is the outcome of one admission check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // unix seconds
}

// RateLimitStore counts requests per key within a fixed window.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// --- Service Ports (Business Logic) ---

// PayRequest holds validated input for a UPI or card payment.
type PayRequest struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Amount     int64
	Rail       domain.Rail
	PIN        string
	Card       *CardDetails
	StepUpCode string
	ClientIP   string
}

// BankVerifyRequest completes a bank-rail payment.
type BankVerifyRequest struct {
	SenderID   uuid.UUID
	Code       string
	StepUpCode string
	ClientIP   string
}

// OtpIssued is the result of a bank-rail initiation. Code is set only in demo mode.
type OtpIssued struct {
	ExpiresAt time.Time
	Code      string
}

// SignatureVerification reports the integrity of a stored transaction.
type SignatureVerification struct {
	TransactionID uuid.UUID
	IsValid       bool
	HMACValid     bool
	PublicKey     string
}

// PaymentService is the transaction orchestrator. On InsufficientFunds the
// FAILED transaction is returned together with the error.
type PaymentService interface {
	Pay(ctx context.Context, req PayRequest) (*domain.Transaction, error)
	InitiateBankPayment(ctx context.Context, req OtpInitiateRequest) (*OtpIssued, error)
	VerifyBankOTP(ctx context.Context, req BankVerifyRequest) (*domain.Transaction, error)
	VerifySignature(ctx context.Context, actorID uuid.UUID, transactionID uuid.UUID) (*SignatureVerification, error)
	VerifyAuditChain(ctx context.Context, actorID uuid.UUID) (*domain.ChainVerification, error)
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token         string
	ExpiresAt     time.Time
	UserID        uuid.UUID
	StepUpEnabled bool
}

// AuthService defines session authentication.
type AuthService interface {
	Login(ctx context.Context, email, password, clientIP string) (*LoginResult, error)
}
