package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymfit_backend/internal/models"
)

var testSecret = strings.Repeat("a", 64)

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()

	tm, err := NewTokenManager(testSecret, 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)
	return tm
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "user-123"},
		Email:     "trainer@example.com",
		Role:      models.UserRoleTrainer,
	}
}

func TestNewTokenManager_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager(strings.Repeat("a", 63), 15*time.Minute, 24*time.Hour)
	assert.Error(t, err)
}

func TestNewTokenManager_RejectsBadTTLs(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager(testSecret, 0, 24*time.Hour)
	assert.Error(t, err, "zero access TTL must be rejected")

	_, err = NewTokenManager(testSecret, 15*time.Minute, 0)
	assert.Error(t, err, "zero refresh TTL must be rejected")

	_, err = NewTokenManager(testSecret, 24*time.Hour, 15*time.Minute)
	assert.Error(t, err, "refresh TTL below access TTL must be rejected")

	_, err = NewTokenManager(testSecret, 15*time.Minute, 15*time.Minute)
	assert.Error(t, err, "equal TTLs must be rejected")
}

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t)
	user := testUser()

	tokenStr, err := tm.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := tm.ParseToken(tokenStr, TokenTypeAccess)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "trainer", claims.Role)
	assert.Equal(t, "trainer@example.com", claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t)

	tokenStr, err := tm.GenerateRefreshToken(testUser())
	require.NoError(t, err)

	claims, err := tm.ParseToken(tokenStr, TokenTypeRefresh)
	require.NoError(t, err)

	assert.Equal(t, "trainer@example.com", claims.Subject)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)

	// A refresh token carries no identity or role claims.
	assert.Empty(t, claims.UserID)
	assert.Empty(t, claims.Role)
}

func TestParseToken_WrongType(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t)
	user := testUser()

	accessToken, err := tm.GenerateAccessToken(user)
	require.NoError(t, err)
	refreshToken, err := tm.GenerateRefreshToken(user)
	require.NoError(t, err)

	_, err = tm.ParseToken(refreshToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType, "refresh token must not pass as access")

	_, err = tm.ParseToken(accessToken, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrWrongTokenType, "access token must not pass as refresh")
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager(testSecret, time.Millisecond, 2*time.Millisecond)
	require.NoError(t, err)

	tokenStr, err := tm.GenerateAccessToken(testUser())
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = tm.ParseToken(tokenStr, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t)
	other, err := NewTokenManager(strings.Repeat("b", 64), 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	tokenStr, err := other.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = tm.ParseToken(tokenStr, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t)

	for _, tokenStr := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tm.ParseToken(tokenStr, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken, "input: %q", tokenStr)
	}
}

func TestAccessTTLSeconds(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t)
	assert.Equal(t, int64(900), tm.AccessTTLSeconds())
}
