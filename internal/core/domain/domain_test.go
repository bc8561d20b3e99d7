package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHasher struct{ err error }

func (h stubHasher) Hash(secret string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + secret, nil
}

func TestRail_Valid(t *testing.T) {
	tests := []struct {
		rail Rail
		want bool
	}{
		{RailUPI, true},
		{RailCard, true},
		{RailBank, true},
		{Rail("CRYPTO"), false},
		{Rail(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.rail), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rail.Valid())
		})
	}
}

func TestNewTransaction_TruncatesToMillis(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 123456789, time.FixedZone("IST", 19800))
	tx := NewTransaction(uuid.New(), uuid.New(), uuid.New(), 100, RailCard, "", now)

	assert.Equal(t, TransactionStatusPending, tx.Status)
	assert.Equal(t, PinPlaceholderNone, tx.PinPlaceholder)
	assert.Equal(t, 123000000, tx.CreatedAt.Nanosecond())
	assert.Equal(t, time.UTC, tx.CreatedAt.Location())
	assert.NotNil(t, tx.RiskReasons)
}

func TestTransaction_StatusTransitions(t *testing.T) {
	t.Run("pending to success", func(t *testing.T) {
		tx := &Transaction{Status: TransactionStatusPending}
		at := time.Now()
		require.NoError(t, tx.MarkSucceeded(RiskAssessment{Score: 35, Reasons: []string{"a"}, EvaluatedAt: &at}))
		assert.Equal(t, TransactionStatusSuccess, tx.Status)
		assert.Equal(t, 35, tx.RiskScore)
		assert.Equal(t, []string{"a"}, tx.RiskReasons)
		assert.True(t, tx.IsTerminal())
	})

	t.Run("pending to failed", func(t *testing.T) {
		tx := &Transaction{Status: TransactionStatusPending}
		require.NoError(t, tx.MarkFailed("insufficient funds"))
		assert.Equal(t, TransactionStatusFailed, tx.Status)
		assert.Equal(t, "insufficient funds", tx.FailureReason)
		assert.Equal(t, 0, tx.RiskScore)
	})

	t.Run("terminal states never move", func(t *testing.T) {
		for _, status := range []TransactionStatus{TransactionStatusSuccess, TransactionStatusFailed} {
			tx := &Transaction{Status: status}
			assert.True(t, errors.Is(tx.MarkSucceeded(RiskAssessment{}), ErrInvalidTransition))
			assert.True(t, errors.Is(tx.MarkFailed("x"), ErrInvalidTransition))
			assert.Equal(t, status, tx.Status)
		}
	})
}

func TestTransaction_CanonicalPayloads(t *testing.T) {
	sender := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	receiver := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	created := time.UnixMilli(1767225600123).UTC()

	tx := &Transaction{
		SenderID:       sender,
		ReceiverID:     receiver,
		Amount:         2500,
		Rail:           RailUPI,
		PinPlaceholder: "cipher",
		CreatedAt:      created,
	}

	assert.Equal(t, sender.String()+":"+receiver.String()+":2500:UPI:cipher", tx.HMACPayload())
	assert.Equal(t, sender.String()+":"+receiver.String()+":2500:1767225600123", tx.SignaturePayload())
}

func TestAccount_CanDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		amount  int64
		want    bool
	}{
		{"exact balance", 5000, 5000, true},
		{"below balance", 5000, 10, true},
		{"above balance", 5000, 5001, false},
		{"zero amount", 5000, 0, false},
		{"negative amount", 5000, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Account{Balance: tt.balance}
			assert.Equal(t, tt.want, a.CanDebit(tt.amount))
		})
	}
}

func TestAccount_SetCredential(t *testing.T) {
	bank := &Account{Kind: AccountKindBank}
	require.NoError(t, bank.SetCredential(stubHasher{}, "bankpass"))
	assert.Equal(t, "hashed:bankpass", bank.CredentialHash)

	wallet := &Account{Kind: AccountKindWallet}
	assert.Error(t, wallet.SetCredential(stubHasher{}, "x"))

	assert.Error(t, bank.SetCredential(stubHasher{}, ""))
	assert.Error(t, (&Account{Kind: AccountKindBank}).SetCredential(stubHasher{err: errors.New("boom")}, "x"))
}

func TestUser_SetPIN(t *testing.T) {
	u := &User{}
	assert.False(t, u.HasPIN())

	require.NoError(t, u.SetPIN(stubHasher{}, "1234"))
	assert.True(t, u.HasPIN())

	for _, bad := range []string{"123", "12345", "12a4", ""} {
		assert.Error(t, u.SetPIN(stubHasher{}, bad), bad)
	}
}

func TestOtpChallenge(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &OtpChallenge{Code: "482913", ExpiresAt: issued.Add(2 * time.Minute)}

	assert.False(t, c.IsExpired(issued.Add(119*time.Second)))
	assert.False(t, c.IsExpired(issued.Add(120*time.Second)))
	assert.True(t, c.IsExpired(issued.Add(121*time.Second)))

	assert.True(t, c.Matches("482913"))
	assert.False(t, c.Matches("482914"))
	assert.False(t, c.Matches(""))
}

func TestRiskAssessment_AddClamps(t *testing.T) {
	var r RiskAssessment
	r.Add(40, "large")
	r.Add(30, "velocity")
	r.Add(20, "new")
	r.Add(15, "drain")

	assert.Equal(t, MaxRiskScore, r.Score)
	assert.Len(t, r.Reasons, 4)
}

func TestAuditAction_Valid(t *testing.T) {
	assert.True(t, AuditActionTransactionSuccess.Valid())
	assert.True(t, AuditActionSignatureVerified.Valid())
	assert.False(t, AuditAction("ADMIN_DELETE_USER").Valid())
}

func TestAuditEntry_ComputeHash(t *testing.T) {
	meta, err := CanonicalMeta(map[string]any{"b": 2, "a": "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":2}`, string(meta))
	assert.Equal(t, `{"a":"x","b":2}`, string(meta))

	entry := &AuditEntry{
		ActorID:      "user-1",
		Action:       AuditActionTransactionSuccess,
		Meta:         meta,
		Timestamp:    time.Date(2026, 1, 1, 0, 0, 0, 5_000_000, time.UTC),
		PreviousHash: GenesisHash,
	}

	h1, err := entry.ComputeHash()
	require.NoError(t, err)
	assert.Len(t, h1, 64)

	h2, err := entry.ComputeHash()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	entry.Meta = json.RawMessage(`{"a":"y","b":2}`)
	h3, err := entry.ComputeHash()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)

	entry.Meta = meta
	entry.PreviousHash = "abc"
	h4, err := entry.ComputeHash()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h4)
}

func TestCanonicalMeta_Nil(t *testing.T) {
	meta, err := CanonicalMeta(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(meta))
}

func TestEventFromTransaction(t *testing.T) {
	tx := NewTransaction(uuid.New(), uuid.New(), uuid.New(), 700, RailBank, "", time.Now())
	require.NoError(t, tx.MarkSucceeded(RiskAssessment{Score: 8, Reasons: []string{"drain"}}))

	ev := EventFromTransaction(tx)
	assert.Equal(t, tx.ID, ev.TransactionID)
	assert.Equal(t, TransactionStatusSuccess, ev.Status)
	assert.Equal(t, 8, ev.RiskScore)
	assert.Equal(t, tx.CreatedAt, ev.OccurredAt)
}

func TestLuhnValid(t *testing.T) {
	assert.True(t, LuhnValid("4111111111111111"))
	assert.True(t, LuhnValid("5555555555554444"))
	assert.False(t, LuhnValid("4111111111111112"))
	assert.False(t, LuhnValid("41111111111x1111"))
	assert.False(t, LuhnValid(""))
}

func TestValidateCard(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		number string
		month  int
		year   int
		cvv    string
		want   error
	}{
		{"valid", "4111111111111111", 12, 2027, "123", nil},
		{"current month still valid", "4111111111111111", 6, 2026, "123", nil},
		{"short number", "411111111111111", 12, 2027, "123", ErrCardNumber},
		{"luhn failure", "4111111111111112", 12, 2027, "123", ErrCardNumber},
		{"bad month", "4111111111111111", 13, 2027, "123", ErrCardExpiry},
		{"expired year", "4111111111111111", 12, 2025, "123", ErrCardExpiry},
		{"expired month", "4111111111111111", 5, 2026, "123", ErrCardExpiry},
		{"short cvv", "4111111111111111", 12, 2027, "12", ErrCardCVV},
		{"alpha cvv", "4111111111111111", 12, 2027, "12a", ErrCardCVV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCard(tt.number, tt.month, tt.year, tt.cvv, now))
		})
	}
}

func TestLastFour(t *testing.T) {
	assert.Equal(t, "1111", LastFour("4111111111111111"))
	assert.Equal(t, "12", LastFour("12"))
}
