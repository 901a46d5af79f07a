package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken(42, "staff@example.com", true)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.True(t, claims.IsStaff)
	assert.Equal(t, "42", claims.Subject)

	refresh, err := m.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), refresh.UserID)
	assert.False(t, refresh.IsStaff)
}

func TestManager_ParseToken_Errors(t *testing.T) {
	t.Run("过期Token", func(t *testing.T) {
		m := NewManager("test-secret", -time.Minute, time.Hour)
		pair, err := m.GenerateToken(1, "a@example.com", false)
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("签名密钥不一致", func(t *testing.T) {
		pair, err := NewManager("secret-a", time.Hour, time.Hour).GenerateToken(1, "a@example.com", false)
		require.NoError(t, err)

		_, err = NewManager("secret-b", time.Hour, time.Hour).ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := NewManager("s", time.Hour, time.Hour).ParseToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
