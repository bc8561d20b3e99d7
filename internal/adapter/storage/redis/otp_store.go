package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:challenge:"

// claimScript deletes the key only if it still holds the expected payload.
var claimScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// OtpStore implements ports.OtpStore. Each sender has at most one record,
// stored as JSON under otp:challenge:<senderID>.
type OtpStore struct {
	client goredis.UniversalClient
}

// NewOtpStore creates a new Redis-backed OTP store.
func NewOtpStore(client goredis.UniversalClient) *OtpStore {
	return &OtpStore{client: client}
}

func otpKey(senderID uuid.UUID) string {
	return otpKeyPrefix + senderID.String()
}

// Save upserts the sender's challenge, replacing any outstanding one.
func (s *OtpStore) Save(ctx context.Context, ch *domain.OtpChallenge, ttl time.Duration) error {
	payload, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("marshal otp challenge: %w", err)
	}
	if err := s.client.Set(ctx, otpKey(ch.SenderID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis otp set: %w", err)
	}
	return nil
}

// Get returns the sender's challenge, or nil if there is none.
func (s *OtpStore) Get(ctx context.Context, senderID uuid.UUID) (*domain.OtpChallenge, error) {
	raw, err := s.client.Get(ctx, otpKey(senderID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis otp get: %w", err)
	}
	ch := &domain.OtpChallenge{}
	if err := json.Unmarshal(raw, ch); err != nil {
		return nil, fmt.Errorf("unmarshal otp challenge: %w", err)
	}
	return ch, nil
}

// Claim atomically removes ch if it is still the stored challenge.
func (s *OtpStore) Claim(ctx context.Context, ch *domain.OtpChallenge) (bool, error) {
	payload, err := json.Marshal(ch)
	if err != nil {
		return false, fmt.Errorf("marshal otp challenge: %w", err)
	}
	n, err := claimScript.Run(ctx, s.client, []string{otpKey(ch.SenderID)}, string(payload)).Int()
	if err != nil {
		return false, fmt.Errorf("redis otp claim: %w", err)
	}
	return n == 1, nil
}

// Delete removes the sender's challenge if present.
func (s *OtpStore) Delete(ctx context.Context, senderID uuid.UUID) error {
	if err := s.client.Del(ctx, otpKey(senderID)).Err(); err != nil {
		return fmt.Errorf("redis otp del: %w", err)
	}
	return nil
}
