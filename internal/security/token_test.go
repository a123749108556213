package security_test

import (
	"testing"
	"time"

	"circus-admin/internal/model"
	"circus-admin/internal/security"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := security.NewTokenIssuer("secret", time.Hour)
	p := &security.Principal{UserID: 42, Email: "boss@example.com", Role: model.RoleBoss}

	token, err := issuer.Issue(p)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	parsed, err := issuer.Parse(token.Token)
	require.NoError(t, err)
	assert.Equal(t, p, parsed)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	p := &security.Principal{UserID: 1, Email: "a@example.com", Role: model.RoleVisitor}

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := security.NewTokenIssuer("one", time.Hour).Issue(p)
		require.NoError(t, err)

		_, err = security.NewTokenIssuer("two", time.Hour).Parse(token.Token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := security.NewTokenIssuer("secret", -time.Minute).Issue(p)
		require.NoError(t, err)

		_, err = security.NewTokenIssuer("secret", time.Hour).Parse(token.Token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := security.NewTokenIssuer("secret", time.Hour).Parse("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Unknown role", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":   "1",
			"email": "a@example.com",
			"role":  "JUGGLER",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = security.NewTokenIssuer("secret", time.Hour).Parse(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
