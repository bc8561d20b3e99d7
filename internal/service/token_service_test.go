package service

import (
	"testing"
	"time"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "paysecure-test")
	userID := uuid.New()

	tokenStr, expiresAt, err := svc.Generate(userID, domain.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestJWTTokenService_Rejects(t *testing.T) {
	good := NewJWTTokenService(testJWTSecret, time.Hour, "paysecure-test")

	expired, _, err := NewJWTTokenService(testJWTSecret, -time.Hour, "paysecure-test").Generate(uuid.New(), domain.RoleUser)
	require.NoError(t, err)

	otherSecret, _, err := NewJWTTokenService("secret-2", time.Hour, "paysecure-test").Generate(uuid.New(), domain.RoleUser)
	require.NoError(t, err)

	otherIssuer, _, err := NewJWTTokenService(testJWTSecret, time.Hour, "someone-else").Generate(uuid.New(), domain.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", otherSecret},
		{"wrong issuer", otherIssuer},
		{"garbage", "not.a.valid.jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := good.Validate(tt.token)
			assert.Error(t, err)
		})
	}
}
