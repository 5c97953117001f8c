package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-passw0rd", hash)

	assert.True(t, CheckPassword(hash, "s3cret-passw0rd"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret-passw0rd"))
}

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	ownerID := uuid.New()

	token, err := manager.Generate(ownerID, "owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, claims.RestaurantID)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	token, err := manager.Generate(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	other := NewTokenManager("different-secret", time.Hour)
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)
	token, err := manager.Generate(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	_, err := manager.Parse("not.a.token")
	assert.Error(t, err)
}

func TestTokenNilOwnerRejected(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	token, err := manager.Generate(uuid.Nil, "owner@example.com")
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.Error(t, err)
}
