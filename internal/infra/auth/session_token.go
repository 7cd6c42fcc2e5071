// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"hafood/config"
	domainerrors "hafood/internal/domain/errors"
	"hafood/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const sessionTokenType = "cart_session"

// sessionClaims are the claims carried by a cart session token.
type sessionClaims struct {
	SessionID string `json:"sid"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

// jwtSessionTokenService is a concrete implementation of the SessionTokenService interface using HS256 JWTs.
type jwtSessionTokenService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Zero means tokens never expire.
	clock  service.Clock
}

// NewJWTSessionTokenService is the constructor for jwtSessionTokenService.
func NewJWTSessionTokenService(cfg *config.Config, clock service.Clock) (service.SessionTokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtSessionTokenService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
		clock:  clock,
	}, nil
}

// Issue signs a token for the session.
func (s *jwtSessionTokenService) Issue(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session id must not be empty")
	}

	now := s.clock.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		Type:      sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  sessionID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Parse verifies the token signature, expiry and type, and returns its session id.
func (s *jwtSessionTokenService) Parse(tokenString string) (string, error) {
	claims := &sessionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return "", domainerrors.ErrInvalidSession.WrapMessage(err.Error())
	}

	if claims.Type != sessionTokenType || claims.SessionID == "" {
		return "", domainerrors.ErrInvalidSession.WrapMessage("token is not a cart session token")
	}

	return claims.SessionID, nil
}
