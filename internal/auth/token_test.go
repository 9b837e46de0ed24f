package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("testsecret", time.Hour)

	t.Run("Customer", func(t *testing.T) {
		token, err := svc.CreateToken(42, RoleCustomer)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		ident, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "42", ident.UserID)
		assert.Equal(t, RoleCustomer, ident.Role)

		id, err := ident.ParseUserID()
		require.NoError(t, err)
		assert.Equal(t, 42, id)
	})

	t.Run("Supplier", func(t *testing.T) {
		token, err := svc.CreateToken(7, RoleSupplier)
		require.NoError(t, err)

		ident, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "7", ident.UserID)
		assert.Equal(t, RoleSupplier, ident.Role)
	})
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("testsecret", -time.Hour)

	token, err := svc.CreateToken(1, RoleCustomer)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.CreateToken(1, RoleCustomer)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("testsecret", time.Hour)

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_NoSecret(t *testing.T) {
	svc := NewTokenService("", time.Hour)

	_, err := svc.CreateToken(1, RoleCustomer)
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = svc.VerifyToken("whatever")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestIdentity_ParseUserID(t *testing.T) {
	t.Run("Numeric", func(t *testing.T) {
		id, err := Identity{UserID: "15", Role: RoleCustomer}.ParseUserID()
		assert.NoError(t, err)
		assert.Equal(t, 15, id)
	})

	t.Run("NotNumeric", func(t *testing.T) {
		_, err := Identity{UserID: "abc", Role: RoleCustomer}.ParseUserID()
		assert.ErrorIs(t, err, ErrInvalidIdentity)
	})
}
