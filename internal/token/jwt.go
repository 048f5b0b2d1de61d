// Package token implements stateless signing and verification of identity
// tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akarpov/storefront/internal/logger"
	"github.com/akarpov/storefront/internal/model"
)

// SigningKey holds the issuer's key material. It is constructed once at
// startup and never mutated afterwards.
type SigningKey struct {
	secret []byte
}

// NewSigningKey creates key material from the configured secret.
func NewSigningKey(secret string) *SigningKey {
	return &SigningKey{secret: []byte(secret)}
}

// Claims represents the JWT claims carried by an identity token. The subject
// is the user's email.
type Claims struct {
	jwt.RegisteredClaims
}

var _ model.TokenIssuer = (*JWT)(nil)

// JWT implements model.TokenIssuer backed by symmetric HMAC signing.
type JWT struct {
	key    *SigningKey
	ttl    time.Duration
	logger *logger.Logger
	now    func() time.Time
}

// NewJWT creates a token issuer with the provided key material and token
// lifetime.
func NewJWT(key *SigningKey, ttl time.Duration, logger *logger.Logger) *JWT {
	return &JWT{
		key:    key,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Issue signs a new token asserting the given subject.
func (j *JWT) Issue(subject string) (model.Token, error) {
	now := j.now()
	expiresAt := now.Add(j.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(j.key.secret)
	if err != nil {
		return model.Token{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return model.Token{
		Value:     signed,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate verifies signature and expiry and returns the asserted subject.
// Every failure surfaces as model.ErrInvalidToken so callers cannot be used
// as an oracle for why a token was rejected; the distinction is kept in the
// debug log only.
func (j *JWT) Validate(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.key.secret, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			j.logger.Debug("token issuer: token expired")
		} else {
			j.logger.Debug("token issuer: token rejected", "error", err.Error())
		}
		return "", model.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		j.logger.Debug("token issuer: token structurally invalid")
		return "", model.ErrInvalidToken
	}

	return claims.Subject, nil
}

// Refresh validates the presented token and issues a fresh one for the same
// subject. Whether the subject still resolves to a live user is the calling
// service's concern, not the issuer's.
func (j *JWT) Refresh(tokenString string) (model.Token, error) {
	subject, err := j.Validate(tokenString)
	if err != nil {
		return model.Token{}, err
	}

	return j.Issue(subject)
}
