package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/reservation-system/internal/core/domain"
)

// ErrInvalidToken is returned for malformed, expired or badly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims identify a session scope. The session itself lives in the
// key-value store, so logging out invalidates the token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens. Tokens carry no
// expiry: a token lives exactly as long as its session key, which only
// logout removes.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (t *TokenService) Issue(session *domain.Session) (string, error) {
	claims := SessionClaims{
		SessionID: session.ID,
		Username:  session.Account.Username,
		Role:      string(session.Account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  session.Account.Username,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

func (t *TokenService) Parse(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
