package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, expiresIn, err := svc.GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "habitsync", claims.Issuer)
}

func TestService_RejectsExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, _, err := svc.GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestService_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewService("secret-a", time.Hour).GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestService_RejectsGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	_, err := svc.ValidateAccessToken("not.a.token")
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("")
	assert.Error(t, err)
}
