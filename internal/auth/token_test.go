package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumanth-0707/Student-Management-System/internal/auth"
)

func TestTokenIssueAndParse(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 30*time.Minute)

	token, expiresAt, err := tm.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenParseWrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenManager("secret-a", time.Minute).Issue(1)
	require.NoError(t, err)

	_, err = auth.NewTokenManager("secret-b", time.Minute).Parse(token)
	assert.Error(t, err)
}

func TestTokenParseExpired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", -time.Minute)

	token, _, err := tm.Issue(1)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestTokenParseGarbage(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Minute)

	_, err := tm.Parse("not-a-token")
	assert.Error(t, err)
}
