package middleware

import (
	"strconv"
	"time"

	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/pkg/apperror"
	"paysecure-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Rate limit categories.
const (
	LimitLogin       = "login"
	LimitPayment     = "payment"
	LimitOTPInitiate = "otp_initiate"
	LimitOTPVerify   = "otp_verify"
	LimitStepUp      = "step_up"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the admission limits per category.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		LimitLogin:       {Limit: 5, Window: time.Minute},
		LimitPayment:     {Limit: 20, Window: time.Minute},
		LimitOTPInitiate: {Limit: 5, Window: 10 * time.Minute},
		LimitOTPVerify:   {Limit: 10, Window: 10 * time.Minute},
		LimitStepUp:      {Limit: 6, Window: time.Minute},
	}
}

// RateLimiter admits requests per client IP and category. If the store is
// unreachable the request is let through.
func RateLimiter(store ports.RateLimitStore, category string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + category

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("category", category).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
