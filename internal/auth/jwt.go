package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ===========================================================================
// Session token
// The session cookie carries a signed JWT whose jti is the WebSession ID.
// All session state stays in the database.
// ===========================================================================

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const sessionSubject = "web_session"

// Claims session token claims
type Claims struct {
	jwt.RegisteredClaims
}

// SessionID returns the WebSession ID carried by the token
func (c *Claims) SessionID() string {
	return c.ID
}

// TokenService signs and validates session tokens
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with an HMAC secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for the session, valid until expiresAt
func (s *TokenService) Issue(sessionID string, expiresAt time.Time) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   sessionSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate validates the token and returns its claims
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject != sessionSubject || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
