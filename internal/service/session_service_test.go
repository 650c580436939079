package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_IssueAndValidate(t *testing.T) {
	s := NewJWTSessionService("test-secret", time.Hour, "ownly-test")
	addr := testAddr('a')

	token, expiry, err := s.Issue(addr)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	got, err := s.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestSessionService_Validate_WrongSecret(t *testing.T) {
	issuer := NewJWTSessionService("secret-a", time.Hour, "ownly-test")
	verifier := NewJWTSessionService("secret-b", time.Hour, "ownly-test")

	token, _, err := issuer.Issue(testAddr('a'))
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestSessionService_Validate_Expired(t *testing.T) {
	s := NewJWTSessionService("test-secret", -time.Minute, "ownly-test")

	token, _, err := s.Issue(testAddr('a'))
	require.NoError(t, err)

	_, err = s.Validate(token)
	assert.Error(t, err)
}

func TestSessionService_Validate_Garbage(t *testing.T) {
	s := NewJWTSessionService("test-secret", time.Hour, "ownly-test")

	_, err := s.Validate("not.a.token")
	assert.Error(t, err)
}
