package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/honeynil/CampusMarket/internal/models"
	pkgerrors "github.com/honeynil/CampusMarket/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.GenerateToken(&models.User{ID: 7, Role: models.RoleSeller})
	require.NoError(t, err)

	claims, err := issuer.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, models.RoleSeller, claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	user := &models.User{ID: 7, Role: models.RoleBuyer}

	t.Run("expired", func(t *testing.T) {
		past := NewTokenIssuer("secret", time.Hour)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.GenerateToken(user)
		require.NoError(t, err)

		_, err = issuer.ParseToken(token)
		assert.ErrorIs(t, err, pkgerrors.ErrUnauthenticated)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenIssuer("other", time.Hour).GenerateToken(user)
		require.NoError(t, err)

		_, err = issuer.ParseToken(token)
		assert.ErrorIs(t, err, pkgerrors.ErrUnauthenticated)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, models.TokenClaims{UserID: 7}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.ParseToken(token)
		assert.ErrorIs(t, err, pkgerrors.ErrUnauthenticated)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := issuer.GenerateToken(&models.User{Role: models.RoleBuyer})
		require.NoError(t, err)

		_, err = issuer.ParseToken(token)
		assert.ErrorIs(t, err, pkgerrors.ErrUnauthenticated)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ParseToken("not.a.token")
		assert.ErrorIs(t, err, pkgerrors.ErrUnauthenticated)
	})
}

func TestTokenIssuer_NoSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour).GenerateToken(&models.User{ID: 1})
	assert.Error(t, err)
}
