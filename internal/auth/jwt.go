package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gymfit_backend/internal/models"
)

// Token types embedded in the token_type claim. A refresh token must never be
// accepted where an access token is required, and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// hs512MinSecretLen - HS512 needs a 512-bit (64 byte) key. Shorter secrets are
// rejected at startup, not at first use.
const hs512MinSecretLen = 64

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims - signed claim set for both access and refresh tokens. Subject holds
// the account email; UserID and Role are only set on access tokens.
type Claims struct {
	UserID    string `json:"user_id,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies stateless auth tokens with a single
// symmetric key. Immutable after construction, safe for concurrent use.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) (*TokenManager, error) {
	if len(secret) < hs512MinSecretLen {
		return nil, errors.New("jwt secret must be at least 64 characters long for HS512")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token TTLs must be positive")
	}
	if refreshTTL <= accessTTL {
		return nil, errors.New("refresh TTL must exceed access TTL")
	}

	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// GenerateAccessToken mints a short-lived token carrying the user's identity
// and role claims.
func (m *TokenManager) GenerateAccessToken(user *models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:    user.ID,
		Role:      string(user.Role),
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(m.secret)
}

// GenerateRefreshToken mints a longer-lived token used solely to obtain a new
// access/refresh pair. It carries no role claim.
func (m *TokenManager) GenerateRefreshToken(user *models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies signature, expiry and the token_type discriminant.
// Callers are expected to collapse all three failures into one generic
// authentication error at the boundary.
func (m *TokenManager) ParseToken(tokenStr, expectedType string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != expectedType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

// AccessTTLSeconds returns the access token lifetime in seconds, as reported
// to clients in the login response.
func (m *TokenManager) AccessTTLSeconds() int64 {
	return int64(m.accessTTL.Seconds())
}
