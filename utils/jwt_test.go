package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	tok, err := GenerateToken("sess-1", "staff-1", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "staff-1", claims.StaffID)
}

func TestToken_WrongSecretOrExpired(t *testing.T) {
	tok, err := GenerateToken("sess-1", "staff-1", "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(tok, "other")
	assert.Error(t, err)

	expired, err := GenerateToken("sess-1", "staff-1", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.Error(t, err)
}
