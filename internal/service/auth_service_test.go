package service

import (
	"context"
	"testing"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/config"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSigner(t *testing.T) *session.Signer {
	t.Helper()
	s, err := session.NewSigner("test-secret")
	require.NoError(t, err)
	return s
}

func TestAuthService_PlainPassword(t *testing.T) {
	svc, err := NewAuthService(&config.Config{EmployeePassword: "gravel"}, newSigner(t))
	require.NoError(t, err)
	ctx := context.Background()

	token, err := svc.Login(ctx, "gravel")
	require.NoError(t, err)
	assert.Equal(t, session.StatusValid, svc.Verify(token))

	_, err = svc.Login(ctx, "Gravel")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, session.StatusInvalid, svc.Verify("garbage"))
}

func TestAuthService_HashWinsOverPlain(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("mulch"), bcrypt.MinCost)
	require.NoError(t, err)
	svc, err := NewAuthService(&config.Config{
		EmployeePassword:     "gravel",
		EmployeePasswordHash: string(hash),
	}, newSigner(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Login(ctx, "mulch")
	assert.NoError(t, err)
	_, err = svc.Login(ctx, "gravel")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Misconfigured(t *testing.T) {
	_, err := NewAuthService(&config.Config{}, newSigner(t))
	assert.Error(t, err)

	_, err = NewAuthService(&config.Config{EmployeePasswordHash: "not-a-hash"}, newSigner(t))
	assert.Error(t, err)
}
