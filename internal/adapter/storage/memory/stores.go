package memory

import (
	"context"
	"sync"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"

	"github.com/google/uuid"
)

type otpRecord struct {
	challenge domain.OtpChallenge
	deadline  time.Time
}

// OtpStore implements ports.OtpStore with per-record TTLs.
type OtpStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]otpRecord
	now     func() time.Time
}

// NewOtpStore creates an empty OTP store.
func NewOtpStore() *OtpStore {
	return &OtpStore{records: make(map[uuid.UUID]otpRecord), now: time.Now}
}

// Save stores ch as the sender's only active challenge, replacing any previous one.
func (s *OtpStore) Save(ctx context.Context, ch *domain.OtpChallenge, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[ch.SenderID] = otpRecord{challenge: *ch, deadline: s.now().Add(ttl)}
	return nil
}

// Get returns the sender's live challenge, or nil if none is stored or it has expired.
func (s *OtpStore) Get(ctx context.Context, senderID uuid.UUID) (*domain.OtpChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.live(senderID)
	if !ok {
		return nil, nil
	}
	ch := rec.challenge
	return &ch, nil
}

// Claim removes the record only if it still holds the same challenge.
func (s *OtpStore) Claim(ctx context.Context, ch *domain.OtpChallenge) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.live(ch.SenderID)
	if !ok || !sameChallenge(rec.challenge, *ch) {
		return false, nil
	}
	delete(s.records, ch.SenderID)
	return true, nil
}

// Delete drops the sender's challenge, if any.
func (s *OtpStore) Delete(ctx context.Context, senderID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, senderID)
	return nil
}

// live returns the record if its TTL has not run out. Callers hold s.mu.
func (s *OtpStore) live(senderID uuid.UUID) (otpRecord, bool) {
	rec, ok := s.records[senderID]
	if !ok {
		return otpRecord{}, false
	}
	if !s.now().Before(rec.deadline) {
		delete(s.records, senderID)
		return otpRecord{}, false
	}
	return rec, true
}

func sameChallenge(a, b domain.OtpChallenge) bool {
	return a.SenderID == b.SenderID &&
		a.Code == b.Code &&
		a.ReceiverID == b.ReceiverID &&
		a.Amount == b.Amount &&
		a.SourceAccountID == b.SourceAccountID &&
		a.ExpiresAt.Equal(b.ExpiresAt) &&
		a.CreatedAt.Equal(b.CreatedAt)
}

type fixedWindow struct {
	id    int64
	count int64
}

// RateLimitStore implements ports.RateLimitStore with fixed windows.
type RateLimitStore struct {
	mu      sync.Mutex
	windows map[string]fixedWindow
	now     func() time.Time
}

// NewRateLimitStore creates an empty rate limit store.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{windows: make(map[string]fixedWindow), now: time.Now}
}

// Allow counts one request against key in the current window.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	windowSecs := int64(window / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}
	windowID := s.now().Unix() / windowSecs

	s.mu.Lock()
	w := s.windows[key]
	if w.id != windowID {
		w = fixedWindow{id: windowID}
	}
	w.count++
	s.windows[key] = w
	s.mu.Unlock()

	remaining := limit - w.count
	if remaining < 0 {
		remaining = 0
	}
	return &ports.RateLimitResult{
		Allowed:   w.count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (windowID + 1) * windowSecs,
	}, nil
}
