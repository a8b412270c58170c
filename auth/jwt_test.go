package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", "groupup-test", time.Hour)

	token, err := m.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := NewManager("secret", "groupup-test", time.Hour)
	other := NewManager("different", "groupup-test", time.Hour)

	token, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", "groupup-test", -time.Minute)

	token, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("secret", "groupup-test", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)

	_, err = m.Verify("")
	assert.Error(t, err)
}
